// Package cs models coordinate systems and their axes, and computes the changes needed
// for bringing a coordinate system to a conventional axis order, direction and units:
// normalization for a named AxesConvention, custom axis replacements through an
// AxisFilter, and the affine matrix converting coordinates from one coordinate system
// to another (SwapAndScaleAxes).
package cs

import (
	"strings"
	"sync"

	"github.com/tzneal/referencing/units"
)

// Type is the kind of coordinate system.
type Type int

// Coordinate system types
const (
	Cartesian Type = iota + 1
	Affine
	Ellipsoidal
	Spherical
	Cylindrical
	Polar
	Vertical
	Time
	Linear
	Parametric
	UserDefined
	Compound
)

var typeNames = [...]string{
	Cartesian:   "Cartesian",
	Affine:      "Affine",
	Ellipsoidal: "Ellipsoidal",
	Spherical:   "Spherical",
	Cylindrical: "Cylindrical",
	Polar:       "Polar",
	Vertical:    "Vertical",
	Time:        "Time",
	Linear:      "Linear",
	Parametric:  "Parametric",
	UserDefined: "User defined",
	Compound:    "Compound",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// dimensionRange returns the allowed number of axes of each type.
func (t Type) dimensionRange() (min, max int) {
	switch t {
	case Cartesian, Affine, Ellipsoidal, UserDefined, Spherical:
		return 2, 3
	case Cylindrical:
		return 3, 3
	case Polar:
		return 2, 2
	case Vertical, Time, Linear, Parametric:
		return 1, 1
	}
	return 1, 64
}

// CoordinateSystem is an immutable ordered sequence of axes. Compound coordinate systems
// are the concatenation of their components.
type CoordinateSystem struct {
	typ         Type
	name        string
	axes        []*Axis
	components  []*CoordinateSystem
	identifiers []Identifier

	// derived memoizes the coordinate systems computed for each convention.
	// It is shared with the derived coordinate systems that have the same axes.
	derived *conventionCache
}

// New returns a coordinate system of the given type. If name is empty, a name is built
// from the type and axes, for example "Ellipsoidal CS: North (°), East (°).".
func New(t Type, name string, axes ...*Axis) (*CoordinateSystem, error) {
	if t == Compound {
		return nil, errorf(ErrIllegalArgument, "use NewCompound for compound coordinate systems")
	}
	if err := validate(t, axes); err != nil {
		return nil, err
	}
	return newCS(t, name, axes, nil), nil
}

// MustNew is like New but panics on error.
func MustNew(t Type, name string, axes ...*Axis) *CoordinateSystem {
	c, err := New(t, name, axes...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCompound returns a compound coordinate system made of the given components.
func NewCompound(name string, components ...*CoordinateSystem) (*CoordinateSystem, error) {
	if len(components) < 2 {
		return nil, errorf(ErrMismatchedDimension, "compound coordinate system needs at least 2 components, got %d", len(components))
	}
	var axes []*Axis
	for _, c := range components {
		axes = append(axes, c.axes...)
	}
	return newCS(Compound, name, axes, append([]*CoordinateSystem(nil), components...)), nil
}

func newCS(t Type, name string, axes []*Axis, components []*CoordinateSystem) *CoordinateSystem {
	c := &CoordinateSystem{
		typ:        t,
		axes:       append([]*Axis(nil), axes...),
		components: components,
	}
	if name == "" {
		name = c.synthesizedName()
	}
	c.name = name
	c.derived = newConventionCache(c)
	return c
}

func validate(t Type, axes []*Axis) error {
	min, max := t.dimensionRange()
	if len(axes) < min || len(axes) > max {
		return errorf(ErrMismatchedDimension, "%s coordinate system expects %d to %d axes, got %d", t, min, max, len(axes))
	}
	for i, a := range axes {
		if a == nil {
			return errorf(ErrIllegalArgument, "axis %d is nil", i)
		}
		if !validAxis(t, a) {
			return errorf(ErrIllegalUnit, "axis %q with direction %s and unit %q is not allowed in a %s coordinate system",
				a.name, a.direction, a.unit, t)
		}
	}
	for i := 1; i < len(axes); i++ {
		di := axes[i].direction
		if di == Other || di == Unspecified {
			continue
		}
		for j := 0; j < i; j++ {
			dj := axes[j].direction
			if IsColinear(di, dj) && !(IsTemporal(di) && IsTemporal(dj)) {
				return errorf(ErrColinearAxes, "axes %q (%s) and %q (%s)", axes[j].name, dj, axes[i].name, di)
			}
		}
	}
	return nil
}

func validAxis(t Type, a *Axis) bool {
	u := a.unit
	switch t {
	case Cartesian:
		return units.IsLinear(u) || units.IsScale(u)
	case Ellipsoidal, Spherical:
		if IsVertical(a.direction) || a.direction == AwayFrom || a.direction == Towards {
			return units.IsLinear(u)
		}
		return units.IsAngular(u)
	case Cylindrical, Polar:
		if a.direction == Clockwise || a.direction == CounterClockwise {
			return units.IsAngular(u)
		}
		return units.IsLinear(u)
	case Vertical:
		return (IsVertical(a.direction) || a.direction == Other) &&
			(units.IsLinear(u) || u.Kind() == units.KindPressure || units.IsScale(u))
	case Time:
		return IsTemporal(a.direction) && units.IsTemporal(u)
	case Linear:
		return units.IsLinear(u)
	}
	return true
}

// Type returns the kind of this coordinate system.
func (c *CoordinateSystem) Type() Type { return c.typ }

// Name returns the coordinate system name.
func (c *CoordinateSystem) Name() string { return c.name }

// Dimension returns the number of axes.
func (c *CoordinateSystem) Dimension() int { return len(c.axes) }

// Axis returns the axis at the given dimension.
func (c *CoordinateSystem) Axis(i int) *Axis { return c.axes[i] }

// Axes returns a copy of the axes.
func (c *CoordinateSystem) Axes() []*Axis { return append([]*Axis(nil), c.axes...) }

// Components returns the components of a compound coordinate system, or nil.
func (c *CoordinateSystem) Components() []*CoordinateSystem {
	return append([]*CoordinateSystem(nil), c.components...)
}

// Identifiers returns the authority codes of this coordinate system.
func (c *CoordinateSystem) Identifiers() []Identifier {
	return append([]Identifier(nil), c.identifiers...)
}

// WithIdentifiers returns a copy of c with the given authority codes.
func (c *CoordinateSystem) WithIdentifiers(ids ...Identifier) *CoordinateSystem {
	r := newCS(c.typ, c.name, c.axes, c.components)
	r.identifiers = append([]Identifier(nil), ids...)
	return r
}

// identifier returns the code for the given authority, if any.
func (c *CoordinateSystem) identifier(authority string) (string, bool) {
	for _, id := range c.identifiers {
		if strings.EqualFold(id.Authority, authority) {
			return id.Code, true
		}
	}
	return "", false
}

// HasSameAxes reports whether c and other have equal axes in the same order,
// ignoring metadata such as names and identifiers.
func (c *CoordinateSystem) HasSameAxes(other *CoordinateSystem) bool {
	if len(c.axes) != len(other.axes) {
		return false
	}
	for i, a := range c.axes {
		if !a.Equal(other.axes[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether c and other are of the same type and have the same axes,
// ignoring metadata.
func (c *CoordinateSystem) Equal(other *CoordinateSystem) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil || c.typ != other.typ {
		return false
	}
	return c.HasSameAxes(other)
}

// identical reports whether c and other are equal including metadata.
func (c *CoordinateSystem) identical(other *CoordinateSystem) bool {
	if !c.Equal(other) || c.name != other.name || len(c.identifiers) != len(other.identifiers) {
		return false
	}
	for i, a := range c.axes {
		if !a.identical(other.axes[i]) {
			return false
		}
	}
	for i := range c.identifiers {
		if c.identifiers[i] != other.identifiers[i] {
			return false
		}
	}
	return true
}

// synthesizedName returns a name made of the type and axis directions.
func (c *CoordinateSystem) synthesizedName() string {
	var sb strings.Builder
	sb.WriteString(c.typ.String())
	sb.WriteString(" CS")
	sep := ": "
	for _, a := range c.axes {
		sb.WriteString(sep)
		sb.WriteString(a.direction.Label())
		sep = ", "
		if s := a.unit.Symbol(); s != "" {
			sb.WriteString(" (")
			sb.WriteString(s)
			sb.WriteString(")")
		}
	}
	sb.WriteString(".")
	return sb.String()
}

func (c *CoordinateSystem) String() string { return c.name }

// ForConvention returns a coordinate system equivalent to c but with axes arranged
// according to the given convention. If c already complies, c itself is returned.
// Results are cached; the coordinate systems returned for different conventions
// are the same instance when they are equal.
func (c *CoordinateSystem) ForConvention(convention AxesConvention) (*CoordinateSystem, error) {
	return c.derived.get(c, convention)
}

// conventionCache holds the coordinate systems derived from an original one.
type conventionCache struct {
	mu      sync.Mutex
	entries map[AxesConvention]*CoordinateSystem
}

func newConventionCache(original *CoordinateSystem) *conventionCache {
	return &conventionCache{entries: map[AxesConvention]*CoordinateSystem{Original: original}}
}

// get returns the coordinate system for convention, computing it from c if needed.
// c is the owner of the cache or a coordinate system sharing it.
func (cache *conventionCache) get(c *CoordinateSystem, convention AxesConvention) (*CoordinateSystem, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if r, ok := cache.entries[convention]; ok {
		return r, nil
	}
	r, err := forConvention(c, convention)
	if err != nil {
		return nil, err
	}
	switch {
	case r == nil:
		r = c
	case cache.find(r) != nil:
		r = cache.find(r)
	case r.HasSameAxes(c):
		r.derived = cache
	default:
		// Conventions are idempotent, so r complies with the convention it was built for.
		r.derived.entries[Original] = cache.entries[Original]
		r.derived.entries[convention] = r
	}
	cache.entries[convention] = r
	return r, nil
}

func (cache *conventionCache) find(c *CoordinateSystem) *CoordinateSystem {
	for _, existing := range cache.entries {
		if c.identical(existing) {
			return existing
		}
	}
	return nil
}
