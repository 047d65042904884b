package cs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"

	"github.com/tzneal/referencing/cs"
	"github.com/tzneal/referencing/units"
)

func allDirections() []cs.AxisDirection {
	var d []cs.AxisDirection
	for i := cs.Other; i <= cs.Unspecified; i++ {
		d = append(d, i)
	}
	for _, name := range []string{"North along 90°E", "North along 0°", "South along 90°E", "South along 180°", "North along 45°W", "North along 90°W"} {
		m, err := cs.ParseAxisDirection(name)
		if err != nil {
			panic(err)
		}
		d = append(d, m)
	}
	return d
}

func TestAngleAntiSymmetry(t *testing.T) {
	directions := allDirections()
	for _, a := range directions {
		for _, b := range directions {
			ab, okAB := cs.Angle(a, b)
			ba, okBA := cs.Angle(b, a)
			if okAB != okBA {
				t.Fatalf("Angle(%s, %s) defined = %v but Angle(%s, %s) defined = %v", a, b, okAB, b, a, okBA)
			}
			if !okAB {
				continue
			}
			if ab.Degrees != -ba.Degrees || ab.Elevation != ba.Elevation {
				t.Errorf("Angle(%s, %s) = %v, Angle(%s, %s) = %v: not anti-symmetric", a, b, ab, b, a, ba)
			}
			if ab.Degrees < -180 || ab.Degrees > 180 {
				t.Errorf("Angle(%s, %s) = %v out of range", a, b, ab)
			}
		}
	}
}

func TestAngleWithSelfAndOpposite(t *testing.T) {
	for _, d := range allDirections() {
		if a, ok := cs.Angle(d, d); ok && a.Degrees != 0 {
			t.Errorf("Angle(%s, %s) = %v, want 0", d, d, a)
		}
		o, ok := cs.Opposite(d)
		if !ok {
			continue
		}
		if a, ok := cs.Angle(d, o); ok && a.Degrees != 180 && a.Degrees != -180 {
			t.Errorf("Angle(%s, %s) = %v, want ±180", d, o, a)
		}
	}
	for d := cs.North; d <= cs.NorthNorthWest; d++ {
		if _, ok := cs.Angle(d, d); !ok {
			t.Errorf("Angle(%s, %s) should be defined", d, d)
		}
	}
}

func TestAngle(t *testing.T) {
	along := func(name string) cs.AxisDirection {
		d, err := cs.ParseAxisDirection(name)
		if err != nil {
			t.Fatalf("ParseAxisDirection(%q): %v", name, err)
		}
		return d
	}
	tests := []struct {
		source, target cs.AxisDirection
		want           cs.DirectionAngle
	}{
		{cs.North, cs.East, cs.DirectionAngle{Degrees: -90}},
		{cs.East, cs.North, cs.DirectionAngle{Degrees: 90}},
		{cs.North, cs.NorthNorthEast, cs.DirectionAngle{Degrees: -22.5}},
		{cs.North, cs.South, cs.DirectionAngle{Degrees: -180}},
		{cs.South, cs.North, cs.DirectionAngle{Degrees: 180}},
		{cs.West, cs.North, cs.DirectionAngle{Degrees: -90}},
		{cs.GeocentricX, cs.GeocentricY, cs.DirectionAngle{Degrees: 90}},
		{cs.GeocentricY, cs.GeocentricX, cs.DirectionAngle{Degrees: -90}},
		{cs.GeocentricX, cs.GeocentricZ, cs.DirectionAngle{Degrees: -90}},
		{cs.Starboard, cs.Forward, cs.DirectionAngle{Degrees: 90}},
		{cs.DisplayRight, cs.DisplayUp, cs.DirectionAngle{Degrees: 90}},
		{cs.DisplayRight, cs.DisplayLeft, cs.DirectionAngle{Degrees: -180}},
		{cs.Up, cs.Down, cs.DirectionAngle{Degrees: -180}},
		{cs.Down, cs.Up, cs.DirectionAngle{Degrees: 180}},
		{cs.North, cs.Up, cs.Zenith},
		{cs.Up, cs.East, cs.Nadir},
		{cs.East, cs.Down, cs.Nadir},
		{along("North along 90°E"), along("North along 0°"), cs.DirectionAngle{Degrees: 90}},
		{along("South along 90°E"), along("South along 180°"), cs.DirectionAngle{Degrees: 90}},
		{along("South along 90°E"), cs.Up, cs.Zenith},
		{along("North along 90°E"), along("North along 90°W"), cs.DirectionAngle{Degrees: 180}},
		{along("North along 90°W"), along("North along 90°E"), cs.DirectionAngle{Degrees: -180}},
		{along("North along 170°E"), along("North along 170°W"), cs.DirectionAngle{Degrees: -20}},
	}
	for _, tt := range tests {
		got, ok := cs.Angle(tt.source, tt.target)
		if !ok {
			t.Errorf("Angle(%s, %s) undefined, want %v", tt.source, tt.target, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Angle(%s, %s) = %v, want %v", tt.source, tt.target, got, tt.want)
		}
		if want := tt.want.Degrees * math.Pi / 180; math.Abs(got.Angle().Radians()-want) > 1e-15 {
			t.Errorf("Angle(%s, %s).Angle() = %v rad, want %v", tt.source, tt.target, got.Angle().Radians(), want)
		}
	}

	for _, pair := range [][2]cs.AxisDirection{
		{cs.North, cs.ColumnPositive},
		{cs.Future, cs.North},
		{cs.Forward, cs.Aft},
		{along("North along 90°E"), along("South along 90°E")},
	} {
		if a, ok := cs.Angle(pair[0], pair[1]); ok {
			t.Errorf("Angle(%s, %s) = %v, want undefined", pair[0], pair[1], a)
		}
	}
}

func TestOppositeAndAbsolute(t *testing.T) {
	tests := []struct {
		d, opposite, absolute cs.AxisDirection
	}{
		{cs.North, cs.South, cs.North},
		{cs.South, cs.North, cs.North},
		{cs.West, cs.East, cs.East},
		{cs.SouthSouthWest, cs.NorthNorthEast, cs.NorthNorthEast},
		{cs.EastSouthEast, cs.WestNorthWest, cs.EastSouthEast},
		{cs.Down, cs.Up, cs.Up},
		{cs.Past, cs.Future, cs.Future},
		{cs.DisplayLeft, cs.DisplayRight, cs.DisplayRight},
		{cs.RowNegative, cs.RowPositive, cs.RowPositive},
		{cs.Clockwise, cs.CounterClockwise, cs.CounterClockwise},
		{cs.CounterClockwise, cs.Clockwise, cs.CounterClockwise},
		{cs.Towards, cs.AwayFrom, cs.AwayFrom},
		{cs.Aft, cs.Forward, cs.Forward},
	}
	for _, tt := range tests {
		o, ok := cs.Opposite(tt.d)
		if !ok || o != tt.opposite {
			t.Errorf("Opposite(%s) = %s, %v, want %s", tt.d, o, ok, tt.opposite)
		}
		if a := cs.Absolute(tt.d); a != tt.absolute {
			t.Errorf("Absolute(%s) = %s, want %s", tt.d, a, tt.absolute)
		}
	}
	for _, d := range []cs.AxisDirection{cs.GeocentricX, cs.Other, cs.Unspecified} {
		if o, ok := cs.Opposite(d); ok || o != d {
			t.Errorf("Opposite(%s) = %s, %v, want itself and false", d, o, ok)
		}
		if a := cs.Absolute(d); a != d {
			t.Errorf("Absolute(%s) = %s, want unchanged", d, a)
		}
	}
	if !cs.IsOpposite(cs.South) || cs.IsOpposite(cs.North) {
		t.Errorf("IsOpposite: South should be an opposite direction, North not")
	}
	if !cs.IsColinear(cs.West, cs.East) || cs.IsColinear(cs.North, cs.East) {
		t.Errorf("IsColinear(West, East) should be true, IsColinear(North, East) false")
	}
}

func TestPredicates(t *testing.T) {
	if !cs.IsCardinal(cs.West) || cs.IsCardinal(cs.NorthEast) {
		t.Errorf("IsCardinal")
	}
	if !cs.IsIntercardinal(cs.NorthEast) || cs.IsIntercardinal(cs.North) || cs.IsIntercardinal(cs.Up) {
		t.Errorf("IsIntercardinal")
	}
	if !cs.IsGrid(cs.RowNegative) || cs.IsGrid(cs.DisplayRight) {
		t.Errorf("IsGrid")
	}
	if !cs.IsGeocentric(cs.GeocentricZ) || cs.IsGeocentric(cs.Up) {
		t.Errorf("IsGeocentric")
	}
	if !cs.IsTemporal(cs.Past) || !cs.IsVertical(cs.Down) {
		t.Errorf("IsTemporal or IsVertical")
	}
}

func TestParseAxisDirection(t *testing.T) {
	tests := []struct {
		name string
		want cs.AxisDirection
	}{
		{"NORTH_EAST", cs.NorthEast},
		{"north east", cs.NorthEast},
		{"north-east", cs.NorthEast},
		{"South-South-West", cs.SouthSouthWest},
		{"northEast", cs.NorthEast},
		{"Counter clockwise", cs.CounterClockwise},
		{"Geocentre > equator/PM", cs.GeocentricX},
		{"Geocentre > equator/0°E", cs.GeocentricX},
		{"Geocentre > equator/90°E", cs.GeocentricY},
		{"Geocentre > equator/90dE", cs.GeocentricY},
		{"Geocentre > north pole", cs.GeocentricZ},
	}
	for _, tt := range tests {
		got, err := cs.ParseAxisDirection(tt.name)
		if err != nil {
			t.Fatalf("ParseAxisDirection(%q): unexpected error %s", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseAxisDirection(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	d1, err := cs.ParseAxisDirection("South along 90°E")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !cs.IsUserDefined(d1) || !cs.IsAlongMeridian(d1) {
		t.Errorf("%s should be a user-defined direction along a meridian", d1)
	}
	d2, _ := cs.ParseAxisDirection("south along 90 deg E")
	d3, _ := cs.DirectionAlongMeridian(cs.South, 90*s1.Degree)
	if d1 != d2 || d1 != d3 {
		t.Errorf("same direction along meridian parsed as %d, %d and %d", d1, d2, d3)
	}
	if d1.String() != "South along 90°E" {
		t.Errorf("String() = %q, want %q", d1.String(), "South along 90°E")
	}
	west, _ := cs.DirectionAlongMeridian(cs.North, -45*s1.Degree)
	if west.String() != "North along 45°W" {
		t.Errorf("String() = %q, want %q", west.String(), "North along 45°W")
	}

	meridians := []struct {
		name, want string
	}{
		{"South along 90 deg East", "South along 90°E"},
		{"South along 90°East", "South along 90°E"},
		{"North along 45 degrees West", "North along 45°W"},
		{"north along 130.5dW", "North along 130.5°W"},
		{"South along 180 deg", "South along 180°"},
		{"South along 180°E", "South along 180°"},
		{"North along 0°E", "North along 0°"},
	}
	for _, tt := range meridians {
		d, err := cs.ParseAxisDirection(tt.name)
		if err != nil {
			t.Fatalf("ParseAxisDirection(%q): unexpected error %s", tt.name, err)
		}
		if !cs.IsAlongMeridian(d) || d.String() != tt.want {
			t.Errorf("ParseAxisDirection(%q) = %q, want %q", tt.name, d, tt.want)
		}
	}

	if _, err := cs.DirectionAlongMeridian(cs.North, 200*s1.Degree); !errors.Is(err, cs.ErrIllegalArgument) {
		t.Errorf("expected ErrIllegalArgument for a meridian of 200°, got %v", err)
	}
	if _, err := cs.ParseAxisDirection("sideways"); !errors.Is(err, cs.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
	if _, err := cs.DirectionAlongMeridian(cs.East, 0); !errors.Is(err, cs.ErrIllegalArgument) {
		t.Errorf("expected ErrIllegalArgument for an East base direction, got %v", err)
	}
}

func TestSuggestAbbreviation(t *testing.T) {
	tests := []struct {
		name      string
		direction cs.AxisDirection
		unit      units.Unit
		want      string
	}{
		{"Geodetic latitude", cs.North, units.Degree, "φ"},
		{"Geodetic longitude", cs.East, units.Degree, "λ"},
		{"Geodetic longitude", cs.West, units.Grad, "λ"},
		{"Spherical latitude", cs.North, units.Degree, "Ω"},
		{"Spherical longitude", cs.East, units.Degree, "θ"},
		{"Easting", cs.East, units.Metre, "E"},
		{"Southing", cs.South, units.Metre, "S"},
		{"Gravity-related height", cs.Up, units.Metre, "H"},
		{"Ellipsoidal height", cs.Up, units.Metre, "h"},
		{"Geocentric radius", cs.Up, units.Metre, "r"},
		{"Elevation", cs.Up, units.Degree, "α"},
		{"Depth", cs.Down, units.Metre, "D"},
		{"Geocentric X", cs.GeocentricX, units.Metre, "X"},
		{"Time", cs.Future, units.Day, "t"},
		{"Time", cs.Past, units.Day, "t"},
		{"Column", cs.ColumnNegative, units.Unity, "i"},
		{"Distance", cs.AwayFrom, units.Metre, "r"},
		{"Bearing", cs.Clockwise, units.Degree, "θ"},
		{"Polar radius", cs.North, units.Metre, "r"},
		{"x", cs.DisplayRight, units.Unity, "x"},
		{"Along", cs.SouthEast, units.Metre, "SE"},
		{"Along", cs.SouthEast, units.Degree, "SE"},
	}
	for _, tt := range tests {
		if got := cs.SuggestAbbreviation(tt.name, tt.direction, tt.unit); got != tt.want {
			t.Errorf("SuggestAbbreviation(%q, %s, %s) = %q, want %q", tt.name, tt.direction, tt.unit, got, tt.want)
		}
	}
}

func TestFromAbbreviation(t *testing.T) {
	tests := []struct {
		abbreviation rune
		want         cs.AxisDirection
	}{
		{'λ', cs.East},
		{'e', cs.East},
		{'φ', cs.North},
		{'Ω', cs.North},
		{'w', cs.West},
		{'S', cs.South},
		{'H', cs.Up},
		{'D', cs.Down},
		{'t', cs.Future},
	}
	for _, tt := range tests {
		got, ok := cs.FromAbbreviation(tt.abbreviation)
		if !ok || got != tt.want {
			t.Errorf("FromAbbreviation(%q) = %s, %v, want %s", tt.abbreviation, got, ok, tt.want)
		}
	}
	if _, ok := cs.FromAbbreviation('q'); ok {
		t.Errorf("FromAbbreviation('q') should not be recognized")
	}
}
