package cs

import (
	"math"

	"github.com/tzneal/referencing/units"
)

// epsgEntry is a coordinate system known by its EPSG code.
type epsgEntry struct {
	code       int
	unit       units.Unit
	directions []AxisDirection
}

// epsgCodes is a hard-coded list of frequently used coordinate systems. For
// three-dimensional ellipsoidal coordinate systems the unit is the unit of the
// horizontal axes; the vertical axis is in metres.
var epsgCodes = []epsgEntry{
	{6422, units.Degree, []AxisDirection{North, East}},
	{6424, units.Degree, []AxisDirection{East, North}},
	{6423, units.Degree, []AxisDirection{North, East, Up}},
	{6426, units.Degree, []AxisDirection{East, North, Up}},
	{6403, units.Grad, []AxisDirection{North, East}},
	{4400, units.Metre, []AxisDirection{East, North}},
	{4500, units.Metre, []AxisDirection{North, East}},
	{6500, units.Metre, []AxisDirection{GeocentricX, GeocentricY, GeocentricZ}},
	{6499, units.Metre, []AxisDirection{Up}},
	{6498, units.Metre, []AxisDirection{Down}},
}

// longitudeTolerance is the tolerance in degrees on the range of longitude axes
// (about 1 cm on Earth).
const longitudeTolerance = 0.01 / (1852 * 60)

// EPSGCode returns the EPSG code of a coordinate system of the given type and axes,
// ignoring metadata. Only a few frequently used coordinate systems are known: the
// result is false for all others. Wraparound angular axes must have the [-180 … 180]°
// range of longitudes.
func EPSGCode(t Type, axes ...*Axis) (int, bool) {
	switch len(axes) {
	case 1:
		if t == Vertical && axes[0].unit == units.Metre {
			return EPSGCodeFor(units.Metre, axes[0].direction)
		}
	case 2, 3:
		if len(axes) == 3 && axes[2].unit != units.Metre {
			break
		}
		unit := axes[0].unit
		if unit != axes[1].unit {
			break
		}
		angular := units.IsAngular(unit)
		if !(angular && t == Ellipsoidal) && !(units.IsLinear(unit) && t == Cartesian) {
			break
		}
		directions := make([]AxisDirection, len(axes))
		for i, a := range axes {
			directions[i] = a.direction
			if angular && a.rangeMeaning == Wraparound {
				c, err := a.unit.ConverterTo(units.Degree)
				if err != nil {
					return 0, false
				}
				min, max := c.Convert(a.minimum), c.Convert(a.maximum)
				if (!math.IsInf(min, -1) && math.Abs(min+180) > longitudeTolerance) ||
					(!math.IsInf(max, 1) && math.Abs(max-180) > longitudeTolerance) {
					return 0, false
				}
			}
		}
		return EPSGCodeFor(unit, directions...)
	}
	return 0, false
}

// EPSGCodeFor returns the EPSG code of a coordinate system using the given unit and
// axis directions.
func EPSGCodeFor(unit units.Unit, directions ...AxisDirection) (int, bool) {
next:
	for _, e := range epsgCodes {
		if e.unit != unit || len(e.directions) != len(directions) {
			continue
		}
		for i, d := range e.directions {
			if directions[i] != d {
				continue next
			}
		}
		return e.code, true
	}
	return 0, false
}
