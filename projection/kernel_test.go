package projection

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/tzneal/referencing/internal/doubledouble"
)

func TestMultipleAngleIdentities(t *testing.T) {
	checkIdentities = true
	defer func() { checkIdentities = false }()

	tm, err := NewTransverseMercator(WGS84, Parameters{ScaleFactor: 1})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	for lon := -82.0; lon <= 82; lon += 1.5 {
		for lat := -89.0; lat <= 89; lat += 1.5 {
			pt := []float64{lon, lat}
			tm.Transform(pt, 0, pt, 0, 1)
			if err := tm.InverseTransform(pt, 0, pt, 0, 1); err != nil {
				t.Fatalf("unexpected error at (%v, %v): %s", lon, lat, err)
			}
		}
	}
	// Past 82.6° from the central meridian the inverse is not expected to converge, so only
	// the forward identities are checked.
	for _, lon := range []float64{-89.5, -86, -83, 83, 86, 89.5} {
		for lat := -89.0; lat <= 89; lat += 1.5 {
			pt := []float64{lon, lat}
			tm.Transform(pt, 0, pt, 0, 1)
		}
	}
}

func TestIdentityEquals(t *testing.T) {
	if !identityEquals(0.5, 0.5) {
		t.Errorf("identical values should be equal")
	}
	if !identityEquals(1e6, 1e6*(1+1e-14)) {
		t.Errorf("tolerance should be relative for large values")
	}
	if identityEquals(0, 1e-9) {
		t.Errorf("1e-9 should exceed the tolerance")
	}
	if !identityEquals(math.NaN(), 0) {
		t.Errorf("NaN should not be reported as a mismatch")
	}
}

// On a sphere the series reduce to the conformal coordinates, which must match the
// closed-form formulas.
func TestSeriesOnSphereMatchesClosedForm(t *testing.T) {
	series := &transverseMercatorSeries{b: doubledouble.One}
	var sphere sphericalTransverseMercator
	const rad = math.Pi / 180
	for lon := -85.0; lon <= 85; lon += 5 {
		for lat := -80.0; lat <= 80; lat += 5 {
			x1, y1, j1 := series.transform(lon*rad, lat*rad, true)
			x2, y2, j2 := sphere.transform(lon*rad, lat*rad, true)
			if math.Abs(x1-x2) > 1e-12 || math.Abs(y1-y2) > 1e-12 {
				t.Fatalf("(%v, %v): series gives (%v, %v), closed form (%v, %v)", lon, lat, x1, y1, x2, y2)
			}
			for i := range j1 {
				if math.Abs(j1[i]-j2[i]) > 1e-9*math.Max(1, math.Abs(j2[i])) {
					t.Fatalf("(%v, %v): derivative %d is %v, closed form %v", lon, lat, i, j1[i], j2[i])
				}
			}
			lambda, phi, err := sphere.inverse(x2, y2)
			if err != nil {
				t.Fatalf("unexpected error %s", err)
			}
			if math.Abs(lambda-lon*rad) > 1e-12 || math.Abs(phi-lat*rad) > 1e-12 {
				t.Fatalf("(%v, %v): inverse gives (%v, %v)", lon, lat, lambda/rad, phi/rad)
			}
		}
	}
}

func TestNoConvergence(t *testing.T) {
	// An eccentricity close to 1 slows the latitude iteration down.
	k := &transverseMercatorSeries{e: 0.999, b: doubledouble.One}
	if _, _, err := k.inverse(0, 0.1); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected %v, got %v", ErrNoConvergence, err)
	}

	p := Parameters{ScaleFactor: 1}
	mp, err := newMapProjection("test", WGS84, p, k, p.normalization(), p.denormalization(WGS84, doubledouble.One, doubledouble.Zero), orb.Bound{})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	northing := 0.1 * WGS84.SemiMajorAxis
	pt := []float64{0, 0, 0, northing, 0, 2 * northing}
	err = mp.InverseTransform(pt, 0, pt, 0, 3)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected %v, got %v", ErrNoConvergence, err)
	}
	if pt[0] != 0 || pt[1] != 0 {
		t.Errorf("first point should have been converted, got (%v, %v)", pt[0], pt[1])
	}
	// The error names the point in metres even though the input slice was reused.
	if !strings.Contains(err.Error(), "point 1 (0, 6378") {
		t.Errorf("error should report the input coordinates, got %q", err)
	}
	want := []float64{0, northing, 0, 2 * northing}
	for i, v := range want {
		if math.Abs(pt[2+i]-v) > 1e-6 {
			t.Errorf("unconverted points should be restored, got %v, want %v", pt[2:], want)
			break
		}
	}
}

func TestCoefficients(t *testing.T) {
	s := newTransverseMercatorSeries(WGS84)
	n := WGS84.Flattening() / (2 - WGS84.Flattening())
	if math.Abs(s.cf2-n/2) > n*n {
		t.Errorf("cf2 = %v, want about n/2 = %v", s.cf2, n/2)
	}
	if math.Abs(s.ci2-n/2) > n*n {
		t.Errorf("ci2 = %v, want about n/2 = %v", s.ci2, n/2)
	}
	wantB := (1 + n*n/4 + n*n*n*n/64) / (1 + n)
	if math.Abs(s.b.Float64()-wantB) > 1e-15 {
		t.Errorf("B = %v, want %v", s.b.Float64(), wantB)
	}
	// The meridian offset of the pole is the quarter meridian in units of a, negated.
	if got := -s.meridianOffset(math.Pi / 2).Float64() * WGS84.SemiMajorAxis; math.Abs(got-10001965.729) > 1e-3 {
		t.Errorf("quarter meridian = %.4f, want 10001965.729", got)
	}
}
