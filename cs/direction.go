package cs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// AxisDirection is the direction of positive increments along a coordinate system axis.
// The predefined values follow the ISO 19111 code list order; user-defined directions
// (for example directions along a meridian) are registered at run time and get codes
// above Unspecified.
type AxisDirection int

// Predefined axis directions
const (
	Other AxisDirection = iota
	North
	NorthNorthEast
	NorthEast
	EastNorthEast
	East
	EastSouthEast
	SouthEast
	SouthSouthEast
	South
	SouthSouthWest
	SouthWest
	WestSouthWest
	West
	WestNorthWest
	NorthWest
	NorthNorthWest
	Up
	Down
	GeocentricX
	GeocentricY
	GeocentricZ
	Future
	Past
	ColumnPositive
	ColumnNegative
	RowPositive
	RowNegative
	DisplayRight
	DisplayLeft
	DisplayUp
	DisplayDown
	Forward
	Aft
	Port
	Starboard
	Clockwise
	CounterClockwise
	Towards
	AwayFrom
	Unspecified
)

const (
	compassCount    = 16
	geocentricCount = 3
	displayCount    = 4
)

var directionNames = [...]string{
	"OTHER",
	"NORTH", "NORTH_NORTH_EAST", "NORTH_EAST", "EAST_NORTH_EAST",
	"EAST", "EAST_SOUTH_EAST", "SOUTH_EAST", "SOUTH_SOUTH_EAST",
	"SOUTH", "SOUTH_SOUTH_WEST", "SOUTH_WEST", "WEST_SOUTH_WEST",
	"WEST", "WEST_NORTH_WEST", "NORTH_WEST", "NORTH_NORTH_WEST",
	"UP", "DOWN",
	"GEOCENTRIC_X", "GEOCENTRIC_Y", "GEOCENTRIC_Z",
	"FUTURE", "PAST",
	"COLUMN_POSITIVE", "COLUMN_NEGATIVE", "ROW_POSITIVE", "ROW_NEGATIVE",
	"DISPLAY_RIGHT", "DISPLAY_LEFT", "DISPLAY_UP", "DISPLAY_DOWN",
	"FORWARD", "AFT", "PORT", "STARBOARD",
	"CLOCKWISE", "COUNTER_CLOCKWISE",
	"TOWARDS", "AWAY_FROM",
	"UNSPECIFIED",
}

// registry of user-defined directions.
var userDirections struct {
	sync.Mutex
	names  []string
	byName map[string]AxisDirection
}

// userDefined returns the user-defined direction of the given name, creating it if needed.
func userDefined(name string) AxisDirection {
	key := normalizeName(name)
	userDirections.Lock()
	defer userDirections.Unlock()
	if d, ok := userDirections.byName[key]; ok {
		return d
	}
	if userDirections.byName == nil {
		userDirections.byName = make(map[string]AxisDirection)
	}
	d := Unspecified + 1 + AxisDirection(len(userDirections.names))
	userDirections.names = append(userDirections.names, name)
	userDirections.byName[key] = d
	return d
}

func lookupUserDefined(name string) (AxisDirection, bool) {
	userDirections.Lock()
	defer userDirections.Unlock()
	d, ok := userDirections.byName[normalizeName(name)]
	return d, ok
}

// normalizeName folds case and drops the separators, so that "NORTH_EAST", "North-east",
// "North east" and "northEast" compare equal.
func normalizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// String returns the code name, for example "NORTH_EAST". User-defined directions
// return the name they were registered with.
func (d AxisDirection) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	if IsUserDefined(d) {
		userDirections.Lock()
		defer userDirections.Unlock()
		if i := int(d - Unspecified - 1); i < len(userDirections.names) {
			return userDirections.names[i]
		}
	}
	return "AxisDirection(" + strconv.Itoa(int(d)) + ")"
}

// Label returns a human readable form of the direction, for example "North east".
func (d AxisDirection) Label() string {
	if IsUserDefined(d) {
		return d.String()
	}
	name := strings.ToLower(strings.ReplaceAll(d.String(), "_", " "))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// identifier returns the lower camel case identifier, for example "northEast".
func (d AxisDirection) identifier() string {
	parts := strings.Split(strings.ToLower(d.String()), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// ParseAxisDirection returns the axis direction for the given name. The name is compared
// ignoring case and separators against the code names; in addition the geocentric
// directions are recognized from their EPSG names ("Geocentre > equator/PM",
// "Geocentre > equator/90°E", "Geocentre > north pole") and directions along a meridian
// ("South along 90°E") are created as needed.
func ParseAxisDirection(name string) (AxisDirection, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	key := normalizeName(name)
	for i, n := range directionNames {
		if normalizeName(n) == key {
			return AxisDirection(i), nil
		}
	}
	if d, ok := parseGeocentric(name); ok {
		return d, nil
	}
	if d, ok := lookupUserDefined(name); ok {
		return d, nil
	}
	if m, ok := parseAlongMeridian(name); ok {
		return m.direction(), nil
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

func parseGeocentric(name string) (AxisDirection, bool) {
	head, tail, ok := strings.Cut(name, ">")
	if !ok || !strings.EqualFold(strings.TrimSpace(head), "Geocentre") {
		return Other, false
	}
	tail = strings.TrimSpace(tail)
	if strings.EqualFold(tail, "north pole") {
		return GeocentricZ, true
	}
	place, meridian, ok := strings.Cut(tail, "/")
	if !ok || !strings.EqualFold(strings.TrimSpace(place), "equator") {
		return Other, false
	}
	meridian = strings.TrimSpace(meridian)
	if strings.EqualFold(meridian, "PM") {
		return GeocentricX, true
	}
	digits := strings.IndexFunc(meridian, func(r rune) bool { return r < '0' || r > '9' })
	if digits <= 0 || digits > 5 {
		return Other, false
	}
	n, _ := strconv.Atoi(meridian[:digits])
	suffix := strings.TrimSpace(meridian[digits:])
	if !strings.EqualFold(suffix, "°E") && !strings.EqualFold(suffix, "dE") {
		return Other, false
	}
	switch n {
	case 0:
		return GeocentricX, true
	case 90:
		return GeocentricY, true
	}
	return Other, false
}

var opposites = oppositePairs()

func oppositePairs() map[AxisDirection]AxisDirection {
	m := make(map[AxisDirection]AxisDirection)
	pairs := [...][2]AxisDirection{
		{Up, Down},
		{Future, Past},
		{ColumnPositive, ColumnNegative},
		{RowPositive, RowNegative},
		{DisplayRight, DisplayLeft},
		{DisplayUp, DisplayDown},
		{Forward, Aft},
		{Port, Starboard},
		{Clockwise, CounterClockwise},
		{Towards, AwayFrom},
	}
	for _, p := range pairs {
		m[p[0]] = p[1]
		m[p[1]] = p[0]
	}
	return m
}

// Opposite returns the direction opposite to d, for example South for North.
// If d has no opposite, d itself is returned and ok is false.
func Opposite(d AxisDirection) (opposite AxisDirection, ok bool) {
	if IsCompass(d) {
		return North + (d-North+compassCount/2)%compassCount, true
	}
	if o, found := opposites[d]; found {
		return o, true
	}
	return d, false
}

// IsOpposite reports whether d is the "negative" member of a pair of opposite
// directions, like South, West, Down or Past.
func IsOpposite(d AxisDirection) bool {
	o, ok := Opposite(d)
	return ok && o < d
}

// Absolute maps a direction to the "positive" member of its pair of opposite directions,
// in the way math.Abs maps negative numbers: South→North, West→East, Down→Up,
// Past→Future, Towards→AwayFrom, Clockwise→CounterClockwise. Directions without
// opposite are returned unchanged.
func Absolute(d AxisDirection) AxisDirection {
	o, ok := Opposite(d)
	if !ok {
		return d
	}
	if o < d {
		d = o
	}
	switch d {
	case Clockwise:
		d = CounterClockwise
	case Towards:
		d = AwayFrom
	}
	return d
}

// IsCompass reports whether d is one of the 16 compass directions.
func IsCompass(d AxisDirection) bool {
	return d >= North && d < North+compassCount
}

// IsCardinal reports whether d is North, East, South or West.
func IsCardinal(d AxisDirection) bool {
	return IsCompass(d) && (d-North)&3 == 0
}

// IsIntercardinal reports whether d is a compass direction other than the cardinal ones.
func IsIntercardinal(d AxisDirection) bool {
	return IsCompass(d) && (d-North)&3 != 0
}

// IsVertical reports whether d is Up or Down.
func IsVertical(d AxisDirection) bool { return d == Up || d == Down }

// IsTemporal reports whether d is Future or Past.
func IsTemporal(d AxisDirection) bool { return d == Future || d == Past }

// IsGeocentric reports whether d is one of the geocentric X, Y or Z directions.
func IsGeocentric(d AxisDirection) bool { return d >= GeocentricX && d <= GeocentricZ }

// IsGrid reports whether d is a column or row direction.
func IsGrid(d AxisDirection) bool { return d >= ColumnPositive && d <= RowNegative }

// IsUserDefined reports whether d is not in the predefined code list.
func IsUserDefined(d AxisDirection) bool { return d > Unspecified }
