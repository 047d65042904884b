package cs_test

import (
	"errors"
	"testing"

	"github.com/tzneal/referencing/cs"
	"github.com/tzneal/referencing/matrix"
	"github.com/tzneal/referencing/units"
)

func parametric(name string, unit units.Unit) *cs.CoordinateSystem {
	return cs.MustNew(cs.Parametric, "", cs.MustNewAxis(cs.AxisProperties{Name: name, Direction: cs.Up, Unit: unit}))
}

func TestSwapAndScaleAxes(t *testing.T) {
	gradLat := cs.MustNewAxis(cs.AxisProperties{Name: "Latitude", Direction: cs.North, Unit: units.Grad})
	gradLon := cs.MustNewAxis(cs.AxisProperties{Name: "Longitude", Direction: cs.East, Unit: units.Grad})
	westFeet := cs.MustNewAxis(cs.AxisProperties{Name: "Westing", Direction: cs.West, Unit: units.Foot})
	northFeet := cs.MustNewAxis(cs.AxisProperties{Name: "Northing", Direction: cs.North, Unit: units.Foot})
	compound, err := cs.NewCompound("", cs.EllipsoidalLatLon, cs.GravityRelatedUp)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	const ftPerMetre = 1 / 0.3048

	tests := []struct {
		name           string
		source, target *cs.CoordinateSystem
		want           *matrix.Matrix
		tolerance      float64
	}{
		{
			name:   "same instance",
			source: cs.EllipsoidalLatLon, target: cs.EllipsoidalLatLon,
			want: matrix.Identity(3),
		},
		{
			name:   "swap",
			source: cs.EllipsoidalLatLon, target: cs.EllipsoidalLonLat,
			want: matrix.FromRows(
				[]float64{0, 1, 0},
				[]float64{1, 0, 0},
				[]float64{0, 0, 1}),
		},
		{
			name:   "grads to degrees",
			source: cs.MustNew(cs.Ellipsoidal, "", gradLat, gradLon), target: cs.EllipsoidalLonLat,
			want: matrix.FromRows(
				[]float64{0, 0.9, 0},
				[]float64{0.9, 0, 0},
				[]float64{0, 0, 1}),
			tolerance: 1e-15,
		},
		{
			name:   "opposite directions and feet",
			source: cs.ProjectedEastNorth, target: cs.MustNew(cs.Cartesian, "", westFeet, northFeet),
			want: matrix.FromRows(
				[]float64{-ftPerMetre, 0, 0},
				[]float64{0, ftPerMetre, 0},
				[]float64{0, 0, 1}),
			tolerance: 1e-12,
		},
		{
			name:   "unit offset",
			source: parametric("Temperature", units.Celsius), target: parametric("Temperature", units.Kelvin),
			want: matrix.FromRows(
				[]float64{1, 273.15},
				[]float64{0, 1}),
			tolerance: 1e-12,
		},
		{
			name:   "dropped dimension",
			source: compound, target: cs.EllipsoidalLonLat,
			want: matrix.FromRows(
				[]float64{0, 1, 0, 0},
				[]float64{1, 0, 0, 0},
				[]float64{0, 0, 0, 1}),
		},
	}
	for _, tt := range tests {
		m, err := cs.SwapAndScaleAxes(tt.source, tt.target)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", tt.name, err)
		}
		if !m.Equal(tt.want, tt.tolerance) {
			t.Errorf("%s: got\n%s\nwant\n%s", tt.name, m, tt.want)
		}
	}
}

func TestSwapAndScaleAxesRoundTrip(t *testing.T) {
	c := cs.MustNew(cs.Cartesian, "", cs.Southing, cs.Westing)
	normalized, err := c.ForConvention(cs.Normalized)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	forward, err := cs.SwapAndScaleAxes(c, normalized)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	want := matrix.FromRows(
		[]float64{0, -1, 0},
		[]float64{-1, 0, 0},
		[]float64{0, 0, 1})
	if !forward.Equal(want, 0) {
		t.Fatalf("got\n%s\nwant\n%s", forward, want)
	}
	inverse, err := cs.SwapAndScaleAxes(normalized, c)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	product, err := forward.Multiply(inverse)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !product.IsIdentity() {
		t.Errorf("forward × inverse should be identity, got\n%s", product)
	}
}

func TestSwapAndScaleAxesErrors(t *testing.T) {
	tests := []struct {
		name           string
		source, target *cs.CoordinateSystem
		err            error
	}{
		{"types", cs.EllipsoidalLatLon, cs.ProjectedEastNorth, cs.ErrIncompatibleTypes},
		{"unmapped", cs.Geocentric, cs.ProjectedEastNorth, cs.ErrUnmappedAxis},
		{"non-linear", parametric("Level", units.Unity), parametric("Level", units.Decibel), cs.ErrNonLinearUnitConversion},
	}
	for _, tt := range tests {
		if _, err := cs.SwapAndScaleAxes(tt.source, tt.target); !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
		}
	}
}

func TestSwapAndScaleAxesAlongMeridians(t *testing.T) {
	along := func(name string) cs.AxisDirection {
		d, err := cs.ParseAxisDirection(name)
		if err != nil {
			t.Fatalf("ParseAxisDirection(%q): %v", name, err)
		}
		return d
	}
	// Axes of a polar stereographic projection centred on the South pole.
	easting := cs.MustNewAxis(cs.AxisProperties{Name: "Easting", Abbreviation: "E", Direction: along("North along 90°E"), Unit: units.Metre})
	northing := cs.MustNewAxis(cs.AxisProperties{Name: "Northing", Abbreviation: "N", Direction: along("North along 0°"), Unit: units.Metre})
	polar := cs.MustNew(cs.Cartesian, "", easting, northing)

	simple := cs.SimpleAxisDirections(polar)
	if len(simple) != 2 || simple[0] != cs.East || simple[1] != cs.North {
		t.Errorf("SimpleAxisDirections = %v, want [EAST NORTH]", simple)
	}

	m, err := cs.SwapAndScaleAxes(polar, cs.ProjectedEastNorth)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !m.IsIdentity() {
		t.Errorf("got\n%s\nwant identity", m)
	}
	m, err = cs.SwapAndScaleAxes(polar, cs.ProjectedNorthEast)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	want := matrix.FromRows(
		[]float64{0, 1, 0},
		[]float64{1, 0, 0},
		[]float64{0, 0, 1})
	if !m.Equal(want, 0) {
		t.Errorf("got\n%s\nwant\n%s", m, want)
	}

	r, err := polar.ForConvention(cs.RightHanded)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if r.Axis(0) != easting || r.Axis(1) != northing {
		t.Errorf("axes along meridians 90°E then 0° are already right-handed, got %v", r.Axes())
	}
}
