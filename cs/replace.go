package cs

import "github.com/tzneal/referencing/units"

// ReplaceAxes returns a coordinate system with the axes selected and modified by filter.
// If filter is an AxesConvention, this is the same as c.ForConvention. Axes are not
// reordered by other filters. The given coordinate system is returned if nothing changed.
func ReplaceAxes(c *CoordinateSystem, filter AxisFilter) (*CoordinateSystem, error) {
	if convention, ok := filter.(AxesConvention); ok {
		return c.ForConvention(convention)
	}
	r, err := normalize(c, filter, false)
	if err != nil || r == nil {
		return c, err
	}
	return r, nil
}

// ReplaceLinearUnit returns a coordinate system with all linear units replaced by unit.
func ReplaceLinearUnit(c *CoordinateSystem, unit units.Unit) (*CoordinateSystem, error) {
	return ReplaceAxes(c, FilterFuncs{UnitFunc: func(_ *Axis, u units.Unit) units.Unit {
		if units.IsLinear(u) {
			return unit
		}
		return u
	}})
}

// ReplaceAngularUnit returns a coordinate system with all angular units replaced by unit.
func ReplaceAngularUnit(c *CoordinateSystem, unit units.Unit) (*CoordinateSystem, error) {
	return ReplaceAxes(c, FilterFuncs{UnitFunc: func(_ *Axis, u units.Unit) units.Unit {
		if units.IsAngular(u) {
			return unit
		}
		return u
	}})
}

// SingleComponents returns c if it is not compound, or its components recursively.
func SingleComponents(c *CoordinateSystem) []*CoordinateSystem {
	if c == nil {
		return nil
	}
	if c.typ != Compound {
		return []*CoordinateSystem{c}
	}
	var r []*CoordinateSystem
	for _, component := range c.components {
		r = append(r, SingleComponents(component)...)
	}
	return r
}

// AxisDirections returns the directions of all axes of c.
func AxisDirections(c *CoordinateSystem) []AxisDirection {
	d := make([]AxisDirection, len(c.axes))
	for i, a := range c.axes {
		d[i] = a.direction
	}
	return d
}

// SimpleAxisDirections is like AxisDirections, except that directions along a meridian
// are replaced by the direction of their one-letter abbreviation when one is recognized,
// for example East for an axis abbreviated "E" or "λ".
func SimpleAxisDirections(c *CoordinateSystem) []AxisDirection {
	d := AxisDirections(c)
	for i, dir := range d {
		if IsAlongMeridian(dir) {
			if s, ok := simpleDirection(c.axes[i]); ok {
				d[i] = s
			}
		}
	}
	return d
}

// AngularUnit returns the unit of the first angular axis found, searching from the
// last axis, or fallback if there is none.
func AngularUnit(c *CoordinateSystem, fallback units.Unit) units.Unit {
	for i := len(c.axes) - 1; i >= 0; i-- {
		if u := c.axes[i].unit; units.IsAngular(u) {
			return u
		}
	}
	return fallback
}

// HasPrefix reports whether the first axes of c have the given directions, in order.
func HasPrefix(c *CoordinateSystem, directions ...AxisDirection) bool {
	if len(directions) > len(c.axes) {
		return false
	}
	for i, d := range directions {
		if c.axes[i].direction != d {
			return false
		}
	}
	return true
}

// IndexOfColinear returns the index of the first axis of c colinear with direction,
// preferring an axis with exactly that direction, or -1 if none.
func IndexOfColinear(c *CoordinateSystem, direction AxisDirection) int {
	fallback := -1
	for i, a := range c.axes {
		if a.direction == direction {
			return i
		}
		if fallback < 0 && IsColinear(a.direction, direction) {
			fallback = i
		}
	}
	return fallback
}
