package cs

import "github.com/tzneal/referencing/units"

// AxesConvention is a named policy for the order, direction and units of axes.
// Conventions are also AxisFilters.
type AxesConvention int

// Axes conventions
const (
	// Original is the coordinate system as it was defined, before any convention was applied.
	Original AxesConvention = iota

	// PositiveRange shifts the range of wraparound axes (longitudes) so that the minimum
	// is zero or positive, for example [-180 … 180]° to [0 … 360]°. Axes are not reordered.
	PositiveRange

	// RightHanded reorders axes for approximating a right-handed coordinate system,
	// without changing directions or units. For example (North, East) becomes (East, North)
	// and ellipsoidal axes are ordered (λ, φ, h).
	RightHanded

	// DisplayOriented is RightHanded plus the replacement of "negative" directions by
	// their positive counterparts (South → North, West → East), as expected by
	// display devices. Units are unchanged.
	DisplayOriented

	// Normalized is DisplayOriented plus the replacement of units by metres, degrees
	// and days.
	Normalized
)

var conventionNames = [...]string{
	Original:        "ORIGINAL",
	PositiveRange:   "POSITIVE_RANGE",
	RightHanded:     "RIGHT_HANDED",
	DisplayOriented: "DISPLAY_ORIENTED",
	Normalized:      "NORMALIZED",
}

func (c AxesConvention) String() string {
	if c >= 0 && int(c) < len(conventionNames) {
		return conventionNames[c]
	}
	return "AxesConvention(?)"
}

// Accept returns true: conventions never remove axes.
func (c AxesConvention) Accept(*Axis) bool { return true }

// UnitReplacement returns metre, degree or day for linear, angular and temporal axes under
// Normalized, and unit unchanged otherwise.
func (c AxesConvention) UnitReplacement(_ *Axis, unit units.Unit) units.Unit {
	if c != Normalized {
		return unit
	}
	switch {
	case units.IsLinear(unit):
		return units.Metre
	case units.IsAngular(unit):
		return units.Degree
	case units.IsTemporal(unit):
		return units.Day
	}
	return unit
}

// DirectionReplacement returns the absolute direction under DisplayOriented and
// Normalized when the axis accepts negative values. Intercardinal directions are not
// changed since no policy clearly matches common usage for them. Axes restricted to
// positive values keep their direction.
func (c AxesConvention) DirectionReplacement(axis *Axis, direction AxisDirection) AxisDirection {
	if c != DisplayOriented && c != Normalized {
		return direction
	}
	if !IsIntercardinal(direction) && (axis == nil || axis.Minimum() < 0) {
		return Absolute(direction)
	}
	return direction
}
