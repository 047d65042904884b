package cs

import (
	"fmt"

	"github.com/tzneal/referencing/matrix"
)

// SwapAndScaleAxes returns the affine matrix converting coordinates in source to
// coordinates in target. Each target axis must be colinear with exactly one source axis;
// source axes without counterpart are dropped. For example the matrix swapping
// (latitude, longitude) in grads to (longitude, latitude) in degrees is:
//
//	┌   ┐   ┌           ┐ ┌   ┐
//	│ λ │   │ 0   0.9 0 │ │ φ │
//	│ φ │ = │ 0.9 0   0 │ │ λ │
//	│ 1 │   │ 0   0   1 │ │ 1 │
//	└   ┘   └           ┘ └   ┘
//
// Unit conversions with an offset (Celsius to Kelvin) put the offset in the last column.
// The coefficients are composed in double-double precision.
func SwapAndScaleAxes(source, target *CoordinateSystem) (*matrix.Matrix, error) {
	if source == target {
		return matrix.Identity(source.Dimension() + 1), nil
	}
	if source.typ != target.typ && !hasAllTargetTypes(source, target) {
		return nil, errorf(ErrIncompatibleTypes, "%s to %s", source.typ, target.typ)
	}
	m, err := createTransform(source.axes, target.axes)
	if err != nil {
		return nil, err
	}
	srcDim := m.NumCol() - 1
	dstDim := m.NumRow() - 1
	for j := 0; j < dstDim; j++ {
		targetUnit := target.axes[j].unit
		for i := 0; i < srcDim; i++ {
			if m.Element(j, i) == 0 {
				continue // orthogonal axes
			}
			sourceUnit := source.axes[i].unit
			if sourceUnit == targetUnit {
				continue
			}
			c, err := sourceUnit.ConverterTo(targetUnit)
			if err != nil {
				return nil, fmt.Errorf("axis %q to %q: %w", source.axes[i].name, target.axes[j].name, err)
			}
			offset, scale, affine := c.Coefficients()
			if !affine {
				return nil, errorf(ErrNonLinearUnitConversion, "%q to %q", sourceUnit, targetUnit)
			}
			m.ScaleElement(j, i, scale, offset)
		}
	}
	return m, nil
}

// hasAllTargetTypes reports whether each single component of target has a component
// of the same type in source, for example an ellipsoidal target and an
// (ellipsoidal + vertical) compound source.
func hasAllTargetTypes(source, target *CoordinateSystem) bool {
	sources := SingleComponents(source)
next:
	for _, t := range SingleComponents(target) {
		for _, s := range sources {
			if s.typ == t.typ {
				continue next
			}
		}
		return false
	}
	return true
}

// createTransform returns the matrix of +1, -1 and 0 mapping source axes to target axes.
// Axes are matched by direction in three passes: same direction, then opposite
// direction, then directions along a meridian standing for East or North according to
// their abbreviation.
func createTransform(source, target []*Axis) (*matrix.Matrix, error) {
	m := matrix.New(len(target)+1, len(source)+1)
	m.SetElement(len(target), len(source), 1)
	matched := make([]bool, len(target))
	used := make([]bool, len(source))

	match := func(j, i int, sign float64) error {
		if matched[j] {
			return errorf(ErrColinearAxes, "%s and %s both map to %s", source[i].direction, sourceOf(m, source, j).direction, target[j].direction)
		}
		m.SetElement(j, i, sign)
		matched[j] = true
		used[i] = true
		return nil
	}
	for _, pass := range [...]func(src, dst AxisDirection) bool{
		func(src, dst AxisDirection) bool { return src == dst },
		func(src, dst AxisDirection) bool { o, ok := Opposite(dst); return ok && src == o },
	} {
		for j, dst := range target {
			for i, src := range source {
				if pass(src.direction, dst.direction) {
					if err := match(j, i, directionSign(src.direction, dst.direction)); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	var substituted [2]bool // East, North
	for j, dst := range target {
		if matched[j] {
			continue
		}
		d, ok := simpleDirection(dst)
		if !ok {
			continue
		}
		for i, src := range source {
			if used[i] {
				continue
			}
			s, ok := simpleDirection(src)
			if !ok || !IsColinear(s, d) || (!IsAlongMeridian(src.direction) && !IsAlongMeridian(dst.direction)) {
				continue
			}
			slot := 0
			if Absolute(d) == North {
				slot = 1
			}
			if substituted[slot] {
				return nil, errorf(ErrColinearAxes, "more than one axis along a meridian stands for %s", Absolute(d))
			}
			substituted[slot] = true
			if err := match(j, i, directionSign(s, d)); err != nil {
				return nil, err
			}
			break
		}
	}
	for j, ok := range matched {
		if !ok {
			return nil, errorf(ErrUnmappedAxis, "no source axis colinear with %s (%s)", target[j].name, target[j].direction)
		}
	}
	return m, nil
}

func directionSign(src, dst AxisDirection) float64 {
	if src == dst {
		return 1
	}
	return -1
}

func sourceOf(m *matrix.Matrix, source []*Axis, j int) *Axis {
	for i := range source {
		if m.Element(j, i) != 0 {
			return source[i]
		}
	}
	return source[0]
}

// simpleDirection returns East or North (or their opposites) for axes along a meridian,
// using the abbreviation. Other directions are returned unchanged.
func simpleDirection(a *Axis) (AxisDirection, bool) {
	if !IsAlongMeridian(a.direction) {
		return a.direction, IsCardinal(a.direction)
	}
	r := []rune(a.abbreviation)
	if len(r) != 1 {
		return a.direction, false
	}
	d, ok := FromAbbreviation(r[0])
	if !ok || !IsCompass(d) {
		return a.direction, false
	}
	return d, true
}
