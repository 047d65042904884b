package cs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/geo/s1"

	"github.com/tzneal/referencing/units"
)

// DirectionAngle is the angle between two axis directions.
type DirectionAngle struct {
	// Degrees is the arithmetic (counterclockwise) angle in the range [-180, 180].
	Degrees float64

	// Elevation is set for the angle between a vertical and a horizontal direction.
	// Such angles are always ±90° and their sign says nothing about handedness.
	Elevation bool
}

// Zenith and Nadir are the angles from a horizontal direction to Up and Down.
var (
	Zenith = DirectionAngle{Degrees: 90, Elevation: true}
	Nadir  = DirectionAngle{Degrees: -90, Elevation: true}
)

// Angle returns the angle as an s1.Angle.
func (a DirectionAngle) Angle() s1.Angle {
	return s1.Angle(a.Degrees) * s1.Degree
}

func (a DirectionAngle) String() string {
	if a.Elevation {
		if a.Degrees > 0 {
			return "zenith"
		}
		return "nadir"
	}
	return fmt.Sprintf("%g°", a.Degrees)
}

// Angle returns the arithmetic angle of the rotation to apply on a line pointing toward
// source for making it point toward target. For example the angle from North to East
// is -90° and from East to North is +90°. The result is false when no angle can be
// computed for the two directions, for example between a compass and a grid direction.
//
// For every pair where a value is returned, Angle(a, b) == -Angle(b, a).
func Angle(source, target AxisDirection) (DirectionAngle, bool) {
	if n, ok := angleForCompass(source, target); ok {
		return DirectionAngle{Degrees: float64(n) * (360.0 / compassCount)}, true
	}
	if n, ok := angleForGeocentric(source, target); ok {
		return DirectionAngle{Degrees: float64(n * 90)}, true
	}
	if n, ok := angleForVehicle(source, target); ok {
		return DirectionAngle{Degrees: float64(n * 90)}, true
	}
	// Grid directions are not checked since the grid geometry may be anything.
	if n, ok := angleForDisplay(source, target); ok {
		return DirectionAngle{Degrees: float64(n * (360 / displayCount))}, true
	}
	srcMeridian, srcOK := meridianOf(source)
	tgtMeridian, tgtOK := meridianOf(target)
	if srcOK && tgtOK {
		if a, ok := srcMeridian.angle(tgtMeridian); ok {
			return DirectionAngle{Degrees: a}, true
		}
		return DirectionAngle{}, false
	}
	switch {
	case IsVertical(target):
		if IsVertical(source) {
			switch {
			case source == target:
				return DirectionAngle{}, true
			case target == Up:
				return DirectionAngle{Degrees: 180}, true
			default:
				return DirectionAngle{Degrees: -180}, true
			}
		}
		if IsCompass(source) || srcOK {
			if target == Up {
				return Zenith, true
			}
			return Nadir, true
		}
	case IsVertical(source):
		if IsCompass(target) || tgtOK {
			if source == Up {
				return Nadir, true
			}
			return Zenith, true
		}
	}
	return DirectionAngle{}, false
}

// angleForCompass returns the angle as a multiple of 360/16.
func angleForCompass(source, target AxisDirection) (int, bool) {
	if !IsCompass(source) || !IsCompass(target) {
		return 0, false
	}
	n := int(source - target)
	if n < -compassCount/2 {
		n += compassCount
	} else if n > compassCount/2 {
		n -= compassCount
	}
	return n, true
}

// angleForGeocentric returns the angle as a multiple of 90°.
func angleForGeocentric(source, target AxisDirection) (int, bool) {
	if !IsGeocentric(source) || !IsGeocentric(target) {
		return 0, false
	}
	n := int(target - source)
	n -= geocentricCount * (n / 2) // -2 → +1, +2 → -1
	return n, true
}

// angleForVehicle returns the angle as a multiple of 90°.
func angleForVehicle(source, target AxisDirection) (int, bool) {
	switch {
	case source == Starboard && target == Forward:
		return +1, true
	case source == Forward && target == Starboard:
		return -1, true
	}
	return 0, false
}

// displayOrder reorders Right, Left, Up, Down as Up, Right, Down, Left.
var displayOrder = [displayCount]int{1, 3, 0, 2}

// angleForDisplay returns the angle as a multiple of 90°.
func angleForDisplay(source, target AxisDirection) (int, bool) {
	src := int(source - DisplayRight)
	tgt := int(target - DisplayRight)
	if src < 0 || src >= displayCount || tgt < 0 || tgt >= displayCount {
		return 0, false
	}
	n := displayOrder[src] - displayOrder[tgt]
	if n < -displayCount/2 {
		n += displayCount
	} else if n > displayCount/2 {
		n -= displayCount
	}
	return n, true
}

// IsColinear reports whether the two directions are the same or opposite.
func IsColinear(d1, d2 AxisDirection) bool {
	return Absolute(d1) == Absolute(d2)
}

var abbreviations = map[AxisDirection]string{
	Future:           "t",
	ColumnPositive:   "i",
	RowPositive:      "j",
	DisplayRight:     "x",
	DisplayUp:        "y",
	Unspecified:      "m",
	Other:            "m",
	AwayFrom:         "r",
	CounterClockwise: "θ",
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// SuggestAbbreviation suggests an abbreviation for an axis of the given name, direction
// and unit. The unit resolves ambiguities such as East being "x" (easting) or "λ"
// (longitude).
func SuggestAbbreviation(name string, direction AxisDirection, unit units.Unit) string {
	if utf8.RuneCountInString(name) == 1 {
		return name // commonly x, y, z, t, i or j
	}
	if hasSuffixFold(name, "radius") {
		return "r"
	}
	if IsCompass(direction) {
		if !IsIntercardinal(direction) && units.IsAngular(unit) {
			if hasPrefixFold(name, "Spherical") {
				if Absolute(direction) == North {
					return "Ω"
				}
				return "θ"
			}
			if Absolute(direction) == North {
				return "φ"
			}
			return "λ"
		}
	} else {
		switch {
		case direction == Up:
			switch {
			case units.IsAngular(unit):
				return "α" // elevation angle
			case hasPrefixFold(name, "Gravity"):
				return "H"
			case hasPrefixFold(name, "Geocentric"):
				return "r"
			}
			return "h"
		case direction == Down:
			return "D"
		case IsGeocentric(direction):
			s := direction.String()
			return s[len(s)-1:]
		}
		if a, ok := abbreviations[Absolute(direction)]; ok {
			return a
		}
	}
	id := direction.identifier()
	if IsUserDefined(direction) {
		id = direction.String()
	}
	return camelCaseToAcronym(id)
}

// camelCaseToAcronym keeps the first letter and the first letter of each following word.
func camelCaseToAcronym(s string) string {
	var sb strings.Builder
	startOfWord := true
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			startOfWord = true
		case startOfWord || unicode.IsUpper(r):
			sb.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		}
	}
	return sb.String()
}

// FromAbbreviation returns the direction for one of the main abbreviations produced by
// SuggestAbbreviation. Latin letters are case-insensitive.
func FromAbbreviation(abbreviation rune) (AxisDirection, bool) {
	if abbreviation >= 'a' && abbreviation <= 'z' {
		abbreviation -= 'a' - 'A'
	}
	switch abbreviation {
	case 'W':
		return West, true
	case 'S':
		return South, true
	case 'θ', 'λ', 'E':
		return East, true
	case 'Ω', 'φ', 'N':
		return North, true
	case 'R', 'H':
		return Up, true
	case 'D':
		return Down, true
	case 'T':
		return Future, true
	}
	return Other, false
}
