package cs

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// alongMeridian is a direction of the form "South along 90°E": a North or South base
// direction following a meridian, positive east.
type alongMeridian struct {
	base     AxisDirection
	meridian s1.Angle
}

var alongMeridianPattern = regexp.MustCompile(
	`(?i)^\s*(north|south)\s+along\s+([+-]?\d+(?:\.\d*)?)\s*(?:°|º|d|deg|degrees?)?\s*(E|W|East|West)?\s*$`)

func parseAlongMeridian(name string) (alongMeridian, bool) {
	m := alongMeridianPattern.FindStringSubmatch(name)
	if m == nil {
		return alongMeridian{}, false
	}
	base := North
	if strings.EqualFold(m[1], "south") {
		base = South
	}
	meridian, err := strconv.ParseFloat(m[2], 64)
	if err != nil || meridian < -180 || meridian > 180 {
		return alongMeridian{}, false
	}
	if strings.EqualFold(m[3], "W") || strings.EqualFold(m[3], "West") {
		meridian = -meridian
	}
	return alongMeridian{base: base, meridian: s1.Angle(meridian) * s1.Degree}, true
}

// meridianOf returns the along-meridian form of d, if d is such a direction.
func meridianOf(d AxisDirection) (alongMeridian, bool) {
	if !IsUserDefined(d) {
		return alongMeridian{}, false
	}
	return parseAlongMeridian(d.String())
}

func (m alongMeridian) String() string {
	deg := degreesE7(m.meridian)
	var sb strings.Builder
	sb.WriteString(m.base.Label())
	sb.WriteString(" along ")
	sb.WriteString(strconv.FormatFloat(math.Abs(deg), 'f', -1, 64))
	sb.WriteString("°")
	switch {
	case deg == 0 || math.Abs(deg) == 180:
	case deg > 0:
		sb.WriteString("E")
	default:
		sb.WriteString("W")
	}
	return sb.String()
}

// degreesE7 returns a in degrees rounded to 1e-7°, so that whole degrees stay exact.
func degreesE7(a s1.Angle) float64 {
	return float64(a.E7()) / 1e7
}

func (m alongMeridian) direction() AxisDirection {
	return userDefined(m.String())
}

// angle returns the arithmetic angle in degrees from m to other, or false when the
// two directions do not have the same base direction.
func (m alongMeridian) angle(other alongMeridian) (float64, bool) {
	if m.base != other.base {
		return 0, false
	}
	d := m.meridian - other.meridian
	a := degreesE7(d.Normalized())
	if math.Abs(a) == 180 {
		// Normalized gives +180 both ways round.
		a = math.Copysign(180, float64(d))
	}
	if m.base != North {
		a = -a
	}
	return a, true
}

// compare orders directions by base direction first, then in the order of a
// right-handed system. Returns 0 when no order can be established.
func (m alongMeridian) compare(other alongMeridian) int {
	if m.base != other.base {
		if m.base < other.base {
			return -1
		}
		return 1
	}
	a, _ := m.angle(other)
	switch {
	case a < 0:
		return +1
	case a > 0:
		return -1
	}
	return 0
}

// DirectionAlongMeridian returns the direction following the given meridian, positive
// east of the prime meridian, toward base which must be North or South.
// For example DirectionAlongMeridian(South, 90*s1.Degree) is "South along 90°E".
func DirectionAlongMeridian(base AxisDirection, meridian s1.Angle) (AxisDirection, error) {
	if base != North && base != South {
		return Other, errorf(ErrIllegalArgument, "base direction must be NORTH or SOUTH, got %s", base)
	}
	if !(math.Abs(meridian.Degrees()) <= 180+1e-9) {
		return Other, errorf(ErrIllegalArgument, "meridian %v outside [-180°, 180°]", meridian)
	}
	return alongMeridian{base: base, meridian: meridian}.direction(), nil
}

// IsAlongMeridian reports whether d is a direction of the form "North along 90°E".
func IsAlongMeridian(d AxisDirection) bool {
	_, ok := meridianOf(d)
	return ok
}
