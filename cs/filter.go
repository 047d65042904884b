package cs

import "github.com/tzneal/referencing/units"

// AxisFilter selects and modifies the axes of a coordinate system. It is given to
// ReplaceAxes for building a new coordinate system with some axes removed or changed.
// Embed DefaultAxisFilter for keeping the default behavior of the methods not overridden.
type AxisFilter interface {
	// Accept reports whether the given axis shall be kept.
	Accept(axis *Axis) bool

	// UnitReplacement returns the unit to use instead of unit for the given axis.
	UnitReplacement(axis *Axis, unit units.Unit) units.Unit

	// DirectionReplacement returns the direction to use instead of direction for the given axis.
	DirectionReplacement(axis *Axis, direction AxisDirection) AxisDirection
}

// DefaultAxisFilter accepts all axes and changes nothing.
type DefaultAxisFilter struct{}

// Accept returns true.
func (DefaultAxisFilter) Accept(*Axis) bool { return true }

// UnitReplacement returns unit unchanged.
func (DefaultAxisFilter) UnitReplacement(_ *Axis, unit units.Unit) units.Unit { return unit }

// DirectionReplacement returns direction unchanged.
func (DefaultAxisFilter) DirectionReplacement(_ *Axis, direction AxisDirection) AxisDirection {
	return direction
}

// FilterFuncs is an AxisFilter built from functions. Nil functions keep the default behavior.
type FilterFuncs struct {
	AcceptFunc    func(axis *Axis) bool
	UnitFunc      func(axis *Axis, unit units.Unit) units.Unit
	DirectionFunc func(axis *Axis, direction AxisDirection) AxisDirection
}

// Accept calls AcceptFunc if non-nil.
func (f FilterFuncs) Accept(axis *Axis) bool {
	if f.AcceptFunc == nil {
		return true
	}
	return f.AcceptFunc(axis)
}

// UnitReplacement calls UnitFunc if non-nil.
func (f FilterFuncs) UnitReplacement(axis *Axis, unit units.Unit) units.Unit {
	if f.UnitFunc == nil {
		return unit
	}
	return f.UnitFunc(axis, unit)
}

// DirectionReplacement calls DirectionFunc if non-nil.
func (f FilterFuncs) DirectionReplacement(axis *Axis, direction AxisDirection) AxisDirection {
	if f.DirectionFunc == nil {
		return direction
	}
	return f.DirectionFunc(axis, direction)
}
