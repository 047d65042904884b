package cs

import (
	"math"
	"strconv"
	"strings"

	"github.com/tzneal/referencing/units"
)

// RangeMeaning tells how the minimum and maximum values of an axis are interpreted.
type RangeMeaning int

// RangeMeaning constants
const (
	// Exact means that values outside the range are invalid.
	Exact RangeMeaning = iota
	// Wraparound means that the axis is cyclic, like longitudes.
	Wraparound
)

func (r RangeMeaning) String() string {
	if r == Wraparound {
		return "wraparound"
	}
	return "exact"
}

// Identifier is an authority code, for example EPSG:6422.
type Identifier struct {
	Authority string
	Code      string
}

func (id Identifier) String() string { return id.Authority + ":" + id.Code }

// UnnamedAxis is the name given to axes whose original name became meaningless after a
// change of direction.
const UnnamedAxis = "Unnamed"

// AxisProperties holds the values used for building an Axis.
type AxisProperties struct {
	Name         string
	Abbreviation string // suggested from name, direction and unit if empty
	Direction    AxisDirection
	Unit         units.Unit

	// Minimum and Maximum are the axis range. When both are zero the range is unbounded,
	// except for angular latitude (±90°, exact) and longitude (±180°, wraparound) axes.
	Minimum, Maximum float64
	RangeMeaning     RangeMeaning

	Identifiers []Identifier
}

// Axis is an immutable coordinate system axis. Axes are handled by pointer and
// an unchanged axis is returned as the same pointer by the normalization functions.
type Axis struct {
	name         string
	abbreviation string
	direction    AxisDirection
	unit         units.Unit
	minimum      float64
	maximum      float64
	rangeMeaning RangeMeaning
	identifiers  []Identifier
}

// NewAxis validates the given properties and returns a new axis.
func NewAxis(p AxisProperties) (*Axis, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errorf(ErrIllegalArgument, "missing axis name")
	}
	a := &Axis{
		name:         p.Name,
		abbreviation: p.Abbreviation,
		direction:    p.Direction,
		unit:         p.Unit,
		minimum:      p.Minimum,
		maximum:      p.Maximum,
		rangeMeaning: p.RangeMeaning,
		identifiers:  append([]Identifier(nil), p.Identifiers...),
	}
	if a.abbreviation == "" {
		a.abbreviation = SuggestAbbreviation(p.Name, p.Direction, p.Unit)
	}
	if p.Minimum == 0 && p.Maximum == 0 {
		a.minimum, a.maximum = math.Inf(-1), math.Inf(1)
		a.rangeMeaning = Exact
		if units.IsAngular(p.Unit) {
			if c, err := units.Degree.ConverterTo(p.Unit); err == nil {
				switch Absolute(p.Direction) {
				case North:
					a.minimum, a.maximum = c.Convert(-90), c.Convert(90)
				case East:
					a.minimum, a.maximum = c.Convert(-180), c.Convert(180)
					a.rangeMeaning = Wraparound // 180°E wraps to 180°W
				}
			}
		}
	} else if !(p.Minimum < p.Maximum) {
		return nil, errorf(ErrIllegalRange, "axis %q: [%v … %v]", p.Name, p.Minimum, p.Maximum)
	}
	return a, nil
}

// MustNewAxis is like NewAxis but panics on error. It simplifies the declaration of
// package level axes.
func MustNewAxis(p AxisProperties) *Axis {
	a, err := NewAxis(p)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the axis name, for example "Geodetic latitude".
func (a *Axis) Name() string { return a.name }

// Abbreviation returns the axis abbreviation, for example "φ".
func (a *Axis) Abbreviation() string { return a.abbreviation }

// Direction returns the direction of increasing values.
func (a *Axis) Direction() AxisDirection { return a.direction }

// Unit returns the unit of measurement of axis values.
func (a *Axis) Unit() units.Unit { return a.unit }

// Minimum returns the minimum value, possibly negative infinity.
func (a *Axis) Minimum() float64 { return a.minimum }

// Maximum returns the maximum value, possibly positive infinity.
func (a *Axis) Maximum() float64 { return a.maximum }

// RangeMeaning returns how the range is interpreted.
func (a *Axis) RangeMeaning() RangeMeaning { return a.rangeMeaning }

// Identifiers returns the authority codes of this axis.
func (a *Axis) Identifiers() []Identifier { return append([]Identifier(nil), a.identifiers...) }

// properties returns the properties of this axis, without identifiers.
func (a *Axis) properties() AxisProperties {
	return AxisProperties{
		Name:         a.name,
		Abbreviation: a.abbreviation,
		Direction:    a.direction,
		Unit:         a.unit,
		Minimum:      a.minimum,
		Maximum:      a.maximum,
		RangeMeaning: a.rangeMeaning,
	}
}

// withoutIdentifiers returns a copy of a without authority codes.
func (a *Axis) withoutIdentifiers() *Axis {
	if len(a.identifiers) == 0 {
		return a
	}
	c := *a
	c.identifiers = nil
	return &c
}

// Equal reports whether the two axes have the same direction, unit and range,
// ignoring names, abbreviations and identifiers.
func (a *Axis) Equal(b *Axis) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.direction == b.direction &&
		a.unit == b.unit &&
		a.rangeMeaning == b.rangeMeaning &&
		a.minimum == b.minimum &&
		a.maximum == b.maximum
}

// identical reports whether the two axes are equal including metadata.
func (a *Axis) identical(b *Axis) bool {
	if !a.Equal(b) || a.name != b.name || a.abbreviation != b.abbreviation || len(a.identifiers) != len(b.identifiers) {
		return false
	}
	for i := range a.identifiers {
		if a.identifiers[i] != b.identifiers[i] {
			return false
		}
	}
	return true
}

func (a *Axis) String() string {
	var sb strings.Builder
	sb.WriteString(a.name)
	sb.WriteString(" (")
	sb.WriteString(a.abbreviation)
	sb.WriteString(") ")
	sb.WriteString(a.direction.Label())
	if s := a.unit.Symbol(); s != "" {
		sb.WriteString(" [")
		sb.WriteString(s)
		sb.WriteString("]")
	}
	if !math.IsInf(a.minimum, -1) || !math.IsInf(a.maximum, 1) {
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatFloat(a.minimum, 'g', -1, 64))
		sb.WriteString(" … ")
		sb.WriteString(strconv.FormatFloat(a.maximum, 'g', -1, 64))
		if a.rangeMeaning == Wraparound {
			sb.WriteString(" ↻")
		}
	}
	return sb.String()
}
