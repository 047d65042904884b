package cs

import (
	"math"
	"slices"
	"strconv"

	"github.com/tzneal/referencing/metrics"
	"github.com/tzneal/referencing/units"
)

// normalizeAxis returns an axis with the direction and unit given by the filter.
// The same pointer is returned if the filter changes nothing.
//
// When the direction changes, a new abbreviation is suggested and, if it differs from
// the old one, the name is dropped since names like "Westing" become wrong. The range
// is converted only if the new direction is the same or the opposite of the old one;
// other direction changes make the old range meaningless.
func normalizeAxis(axis *Axis, filter AxisFilter) (*Axis, error) {
	oldUnit := axis.unit
	oldDir := axis.direction
	newUnit := filter.UnitReplacement(axis, oldUnit)
	newDir := filter.DirectionReplacement(axis, oldDir)
	sameDirection := newDir == oldDir
	if sameDirection && newUnit == oldUnit {
		return axis, nil
	}
	c, err := oldUnit.ConverterTo(newUnit)
	if err != nil {
		return nil, errorf(ErrIllegalUnit, "cannot replace %q by %q on axis %q: %v", oldUnit, newUnit, axis.name, err)
	}
	p := AxisProperties{
		Name:         axis.name,
		Abbreviation: axis.abbreviation,
		Direction:    newDir,
		Unit:         newUnit,
	}
	if !sameDirection {
		p.Abbreviation = SuggestAbbreviation(axis.name, newDir, newUnit)
		if p.Abbreviation != axis.abbreviation {
			p.Name = UnnamedAxis
		}
	}
	if opposite, _ := Opposite(oldDir); sameDirection || newDir == opposite {
		min := c.Convert(axis.minimum)
		max := c.Convert(axis.maximum)
		if !sameDirection {
			min, max = -max, -min
		}
		p.Minimum, p.Maximum, p.RangeMeaning = min, max, axis.rangeMeaning
		if min > max {
			// Negative scale factor in the unit conversion.
			p.Minimum, p.Maximum = max, min
		}
	}
	return NewAxis(p)
}

// angularUnitOrder returns -1 if angular axes go first (λ, φ, h), +1 if they go after
// the linear axes (r, θ) and 0 if the unit does not matter.
func angularUnitOrder(t Type) int {
	switch t {
	case Ellipsoidal, Spherical:
		return -1
	case Cylindrical, Polar:
		return +1
	}
	return 0
}

// sortKey wraps an axis with the values used for ordering.
type sortKey struct {
	axis      *Axis
	unitOrder int
	meridian  alongMeridian
	isAlong   bool
}

func newSortKey(axis *Axis, angularUnitOrder int) sortKey {
	k := sortKey{axis: axis}
	if units.IsAngular(axis.unit) {
		k.unitOrder = angularUnitOrder
	}
	k.meridian, k.isAlong = meridianOf(axis.direction)
	return k
}

func compareSortKeys(a, b sortKey) int {
	if c := a.unitOrder - b.unitOrder; c != 0 {
		return c
	}
	d1, d2 := a.axis.direction, b.axis.direction
	if c, ok := angleForCompass(d2, d1); ok {
		return c
	}
	if c, ok := angleForVehicle(d2, d1); ok {
		return c
	}
	var c int
	switch {
	case a.isAlong && b.isAlong:
		c = a.meridian.compare(b.meridian)
	case a.isAlong:
		c = -1
	case b.isAlong:
		c = +1
	}
	if c == 0 {
		c = directionOrder(d1) - directionOrder(d2)
	}
	return c
}

// directionOrder places the vehicle and polar directions right after the compass
// directions, so that (r, θ) and (forward, starboard) come before vertical axes,
// and time last.
func directionOrder(d AxisDirection) int {
	const afterCompass = int(NorthNorthWest) + 1
	switch d {
	case Forward:
		return afterCompass
	case Starboard:
		return afterCompass + 1
	case CounterClockwise:
		return afterCompass + 2
	case Clockwise:
		return afterCompass + 3
	case AwayFrom:
		return afterCompass + 4
	case Future:
		return math.MaxInt32 - 1
	case Past:
		return math.MaxInt32
	}
	if d <= NorthNorthWest {
		return int(d)
	}
	return int(d) + 5
}

// sortAxes reorders axes in place for approximating a right-handed coordinate system.
// It reports whether the order changed.
func sortAxes(axes []*Axis, angularUnitOrder int) bool {
	keys := make([]sortKey, len(axes))
	for i, a := range axes {
		keys[i] = newSortKey(a, angularUnitOrder)
	}
	slices.SortFunc(keys, compareSortKeys)
	changed := false
	for i, k := range keys {
		changed = changed || k.axis != axes[i]
		axes[i] = k.axis
	}
	return changed
}

func isLengthAndAngle(axes []*Axis, i int) bool {
	return units.IsLinear(axes[i].unit) && units.IsAngular(axes[i+1].unit)
}

// normalize returns a coordinate system with the axes modified by the filter and, if
// reorder is true, sorted in right-handed order. A nil filter leaves axes unchanged.
// It returns nil if the result would be the same as cs.
func normalize(c *CoordinateSystem, filter AxisFilter, reorder bool) (*CoordinateSystem, error) {
	if c.typ == Compound {
		return normalizeComponents(c, func(component *CoordinateSystem) (*CoordinateSystem, error) {
			return normalize(component, filter, reorder)
		})
	}
	changed := false
	axes := make([]*Axis, 0, len(c.axes))
	for _, axis := range c.axes {
		a := axis
		if filter != nil {
			if !filter.Accept(axis) {
				continue
			}
			var err error
			if a, err = normalizeAxis(axis, filter); err != nil {
				return nil, err
			}
		}
		changed = changed || a != axis
		axes = append(axes, a)
	}
	n := len(axes)
	if reorder {
		order := angularUnitOrder(c.typ)
		changed = sortAxes(axes, order) || changed
		if order == 1 {
			if n >= 3 && isLengthAndAngle(axes, 1) {
				axes[1], axes[2] = axes[2], axes[1] // (r, z, θ) → (r, θ, z)
				changed = true
			}
			if n >= 2 && axes[1].direction == Clockwise && isLengthAndAngle(axes, 0) {
				axes[0], axes[1] = axes[1], axes[0]
				changed = true
			}
		}
	}
	if !changed && n == len(c.axes) {
		return nil, nil
	}
	if n == 0 {
		return nil, errorf(ErrMismatchedDimension, "no axis of %q accepted by the filter", c.name)
	}
	stripMovedIdentifiers(c, axes)
	t := c.typ
	if n != len(c.axes) {
		t = typeForDimension(t, axes)
	}
	if err := validate(t, axes); err != nil {
		return nil, err
	}
	r := newCS(t, "", axes, nil)
	attachEPSGCode(c, r)
	return r, nil
}

// typeForDimension returns the type of a coordinate system with fewer axes than the
// original one, for example an ellipsoidal CS reduced to its vertical axis.
func typeForDimension(t Type, axes []*Axis) Type {
	n := len(axes)
	if min, max := t.dimensionRange(); n >= min && n <= max {
		return t
	}
	if n == 1 {
		a := axes[0]
		switch {
		case IsVertical(a.direction):
			return Vertical
		case IsTemporal(a.direction) && units.IsTemporal(a.unit):
			return Time
		case units.IsLinear(a.unit):
			return Linear
		}
		return Parametric
	}
	return UserDefined
}

// stripMovedIdentifiers removes the identifiers of axes reused at a different position.
// Authority codes of axes depend on their position in the coordinate system.
func stripMovedIdentifiers(c *CoordinateSystem, axes []*Axis) {
	for i, a := range axes {
		if len(a.identifiers) == 0 {
			continue
		}
		for j, original := range c.axes {
			if original == a && i != j {
				axes[i] = a.withoutIdentifiers()
				log().Debug("stripped axis identifiers after reordering",
					"cs", c.name, "axis", a.name, "from", j, "to", i)
				break
			}
		}
	}
}

// attachEPSGCode gives r the EPSG code matching its axes if c had an EPSG code.
func attachEPSGCode(c, r *CoordinateSystem) {
	if _, ok := c.identifier("EPSG"); !ok {
		return
	}
	if code, ok := EPSGCode(r.typ, r.axes...); ok {
		r.identifiers = []Identifier{{Authority: "EPSG", Code: strconv.Itoa(code)}}
		log().Debug("attached EPSG code to normalized coordinate system", "cs", r.name, "code", code)
	}
}

// normalizeComponents applies fn on each component of a compound coordinate system.
// It returns nil if no component changed.
func normalizeComponents(c *CoordinateSystem, fn func(*CoordinateSystem) (*CoordinateSystem, error)) (*CoordinateSystem, error) {
	changed := false
	components := make([]*CoordinateSystem, len(c.components))
	for i, component := range c.components {
		r, err := fn(component)
		if err != nil {
			return nil, err
		}
		if r == nil {
			r = component
		} else {
			changed = true
		}
		components[i] = r
	}
	if !changed {
		return nil, nil
	}
	return NewCompound("", components...)
}

// shiftAxisRange shifts the range of wraparound axes having a negative minimum, for
// example from [-180 … 180]° to [0 … 360]°. The shift is a multiple of half the range.
// Returns nil if no axis changed.
func shiftAxisRange(c *CoordinateSystem) (*CoordinateSystem, error) {
	if c.typ == Compound {
		return normalizeComponents(c, shiftAxisRange)
	}
	changed := false
	axes := make([]*Axis, len(c.axes))
	for i, axis := range c.axes {
		axes[i] = axis
		if axis.rangeMeaning != Wraparound || !(axis.minimum < 0) {
			continue
		}
		min, max := axis.minimum, axis.maximum
		offset := (max - min) / 2
		offset *= math.Floor(min/offset + 1e-10)
		min -= offset
		max -= offset
		// Also filters NaN when the range is infinite.
		if min < max {
			p := axis.properties()
			p.Minimum, p.Maximum = min, max
			a, err := NewAxis(p)
			if err != nil {
				return nil, err
			}
			axes[i] = a
			changed = true
		}
	}
	if !changed {
		return nil, nil
	}
	return newCS(c.typ, c.name, axes, nil), nil
}

// forConvention computes the coordinate system for the given convention, or nil if
// c already complies.
func forConvention(c *CoordinateSystem, convention AxesConvention) (*CoordinateSystem, error) {
	metrics.ConventionComputed(convention.String())
	switch convention {
	case Normalized, DisplayOriented:
		return normalize(c, convention, true)
	case RightHanded:
		return normalize(c, nil, true)
	case PositiveRange:
		return shiftAxisRange(c)
	case Original:
		return nil, nil
	}
	return nil, errorf(ErrIllegalArgument, "unknown convention %d", int(convention))
}
