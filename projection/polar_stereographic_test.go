package projection_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/tzneal/referencing/projection"
)

func TestPolarStereographicReference(t *testing.T) {
	k0, err := projection.PolarStereographicScaleFactor(projection.WGS84, -71*s1.Degree)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if math.Abs(k0-0.972769012892) > 1e-11 {
		t.Errorf("scale factor = %v, want 0.972769012892", k0)
	}
	tests := []struct {
		name              string
		params            projection.Parameters
		lon, lat          float64
		easting, northing float64
	}{
		{
			name: "standard parallel 71°S",
			params: projection.Parameters{
				CentralMeridian:  70 * s1.Degree,
				LatitudeOfOrigin: -90 * s1.Degree,
				ScaleFactor:      k0,
				FalseEasting:     6000000,
				FalseNorthing:    6000000,
			},
			lon:      120,
			lat:      -75,
			easting:  7255380.793,
			northing: 7053389.561,
		},
		{
			name: "UPS south",
			params: projection.Parameters{
				LatitudeOfOrigin: -90 * s1.Degree,
				ScaleFactor:      0.994,
				FalseEasting:     2000000,
				FalseNorthing:    2000000,
			},
			lon:      44,
			lat:      -73,
			easting:  3320416.747,
			northing: 3367331.569,
		},
		{
			name: "UPS north",
			params: projection.Parameters{
				LatitudeOfOrigin: 90 * s1.Degree,
				ScaleFactor:      0.994,
				FalseEasting:     2000000,
				FalseNorthing:    2000000,
			},
			lon:      30,
			lat:      85,
			easting:  2277728.696,
			northing: 1518959.788,
		},
	}
	for _, tt := range tests {
		ps, err := projection.NewPolarStereographic(projection.WGS84, tt.params)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", tt.name, err)
		}
		pt := []float64{tt.lon, tt.lat}
		ps.Transform(pt, 0, pt, 0, 1)
		if math.Abs(pt[0]-tt.easting) > 1e-3 || math.Abs(pt[1]-tt.northing) > 1e-3 {
			t.Errorf("%s: got (%.4f, %.4f), want (%.4f, %.4f)", tt.name, pt[0], pt[1], tt.easting, tt.northing)
		}
		if err := ps.InverseTransform(pt, 0, pt, 0, 1); err != nil {
			t.Fatalf("%s: unexpected error %s", tt.name, err)
		}
		if math.Abs(pt[0]-tt.lon) > 1e-9 || math.Abs(pt[1]-tt.lat) > 1e-9 {
			t.Errorf("%s: inverse got (%v, %v), want (%v, %v)", tt.name, pt[0], pt[1], tt.lon, tt.lat)
		}
	}
}

func TestPolarStereographicPoleAndHemisphere(t *testing.T) {
	p := projection.Parameters{LatitudeOfOrigin: 90 * s1.Degree, ScaleFactor: 1, FalseEasting: 100, FalseNorthing: 200}
	ps, err := projection.NewPolarStereographic(projection.WGS84, p)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	x, y := ps.Project(s2.LatLngFromDegrees(90, 45))
	if math.Abs(x-100) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("pole projects to (%v, %v), want the false origin", x, y)
	}
	ll, err := ps.Unproject(100, 200)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if math.Abs(ll.Lat.Degrees()-90) > 1e-12 || math.Abs(ll.Lng.Degrees()) > 1e-12 {
		t.Errorf("false origin unprojects to %s, want the pole on the central meridian", ll)
	}
	x, y = ps.Project(s2.LatLngFromDegrees(-10, 0))
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("opposite hemisphere should give NaN, got (%v, %v)", x, y)
	}

	p.LatitudeOfOrigin = 60 * s1.Degree
	if _, err := projection.NewPolarStereographic(projection.WGS84, p); !errors.Is(err, projection.ErrInvalidParameter) {
		t.Errorf("expected %v, got %v", projection.ErrInvalidParameter, err)
	}
	if _, err := projection.PolarStereographicScaleFactor(projection.WGS84, 0); !errors.Is(err, projection.ErrInvalidParameter) {
		t.Errorf("expected %v, got %v", projection.ErrInvalidParameter, err)
	}
}

func TestPolarStereographicDerivative(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		ps, err := projection.NewPolarStereographic(projection.WGS84, projection.Parameters{
			CentralMeridian:  -45 * s1.Degree,
			LatitudeOfOrigin: s1.Angle(lat) * s1.Degree,
			ScaleFactor:      0.994,
		})
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}
		const h = 1e-5
		project := func(lon, lat float64) (float64, float64) {
			pt := []float64{lon, lat}
			ps.Transform(pt, 0, pt, 0, 1)
			return pt[0], pt[1]
		}
		for lon := -180.0; lon < 180; lon += 30 {
			for _, l := range []float64{10, 45, 70, 85} {
				l = math.Copysign(l, lat)
				d := ps.Derivative(lon, l)
				xe, ye := project(lon+h, l)
				xw, yw := project(lon-h, l)
				xn, yn := project(lon, l+h)
				xs, ys := project(lon, l-h)
				want := [4]float64{(xe - xw) / (2 * h), (xn - xs) / (2 * h), (ye - yw) / (2 * h), (yn - ys) / (2 * h)}
				got := [4]float64{d.Element(0, 0), d.Element(0, 1), d.Element(1, 0), d.Element(1, 1)}
				for i := range want {
					if math.Abs(got[i]-want[i]) > 1e-3+1e-7*math.Abs(want[i]) {
						t.Fatalf("pole %v (%v, %v): derivative %v, finite differences %v", lat, lon, l, got, want)
					}
				}
			}
		}
	}
}

func TestUPSRoundTrip(t *testing.T) {
	ups := projection.DefaultUPS
	const latInc = 0.5
	const lngInc = 0.5
	for lng := -190.0; lng < 190; lng += lngInc {
		for lat := -100.0; lat < 100; lat += latInc {
			geo := s2.LatLngFromDegrees(lat, lng)
			uc, err := ups.ConvertFromGeodetic(geo)
			if err == nil {
				geo2, err := ups.ConvertToGeodetic(uc)
				if err != nil {
					t.Fatalf("expected no error in round trip, got one at %s (%s)", geo, err)
				}
				if geo.Distance(geo2) > 1e-9 {
					t.Fatalf("expected %s, got %s", geo, geo2)
				}
			}
		}
	}
}

func TestUPSErrors(t *testing.T) {
	for _, geo := range []s2.LatLng{s2.LatLngFromDegrees(80, 0), s2.LatLngFromDegrees(-70, 0)} {
		if _, err := projection.DefaultUPS.ConvertFromGeodetic(geo); !errors.Is(err, projection.ErrOutOfRange) {
			t.Errorf("%s: expected %v, got %v", geo, projection.ErrOutOfRange, err)
		}
	}
	for _, uc := range []projection.UPSCoord{
		{Hemisphere: projection.HemisphereInvalid, Easting: 2000000, Northing: 2000000},
		{Hemisphere: projection.HemisphereNorth, Easting: -1, Northing: 2000000},
		{Hemisphere: projection.HemisphereSouth, Easting: 2000000, Northing: 4000001},
		// Too far from the pole.
		{Hemisphere: projection.HemisphereNorth, Easting: 2000000, Northing: 0},
	} {
		if _, err := projection.DefaultUPS.ConvertToGeodetic(uc); !errors.Is(err, projection.ErrOutOfRange) {
			t.Errorf("%s: expected %v, got %v", uc, projection.ErrOutOfRange, err)
		}
	}
	if _, err := projection.NewUPS(projection.Sphere); !errors.Is(err, projection.ErrInvalidParameter) {
		t.Errorf("expected %v, got %v", projection.ErrInvalidParameter, err)
	}
}
