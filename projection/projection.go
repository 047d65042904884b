// Package projection implements map projections as a chain of three steps: an affine
// normalization from degrees to radians relative to the central meridian, a non-linear
// kernel working on an ellipsoid of semi-major axis 1, and an affine denormalization
// applying the scale factor, the semi-major axis and the false easting and northing.
// The affine steps are computed with double-double precision.
package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"

	"github.com/tzneal/referencing/internal/doubledouble"
	"github.com/tzneal/referencing/matrix"
	"github.com/tzneal/referencing/metrics"
)

// kernel is the non-linear part of a projection. Longitudes are in radians relative to
// the central meridian.
type kernel interface {
	// transform projects (λ, φ). When derivate is true the Jacobian is returned as
	// [∂x/∂λ, ∂x/∂φ, ∂y/∂λ, ∂y/∂φ]. Points outside the domain give NaN.
	transform(lambda, phi float64, derivate bool) (x, y float64, jacobian [4]float64)

	// inverse is the reverse of transform.
	inverse(x, y float64) (lambda, phi float64, err error)
}

// MapProjection converts (longitude, latitude) in degrees to (x, y) in metres.
type MapProjection struct {
	name       string
	parameters Parameters
	ellipsoid  Ellipsoid
	kernel     kernel

	normalize   *matrix.Matrix
	denormalize *matrix.Matrix

	inverseNormalize   *matrix.Matrix
	inverseDenormalize *matrix.Matrix

	domain orb.Bound
}

// radPerDeg is π/180 in double-double precision.
var radPerDeg = doubledouble.DD{Value: math.Pi, Error: 1.2246467991473532e-16}.Div(doubledouble.Of(180))

// normalization returns the matrix converting (longitude, latitude) in degrees to radians
// relative to the central meridian.
func (p Parameters) normalization() *matrix.Matrix {
	m := matrix.Identity(3)
	m.ConvertAfterDD(0, radPerDeg, doubledouble.Of(-p.centralMeridian()))
	m.ConvertAfterDD(1, radPerDeg, doubledouble.Zero)
	return m
}

// denormalization returns the matrix applying the kernel scale b and northing offset m0,
// both in units of the semi-major axis, then the scale factor, the semi-major axis and
// the false easting and northing.
func (p Parameters) denormalization(e Ellipsoid, b, m0 doubledouble.DD) *matrix.Matrix {
	ka := doubledouble.OfDecimal(p.ScaleFactor).Mul(doubledouble.OfDecimal(e.SemiMajorAxis))
	if p.SouthOrientated {
		ka = ka.Neg()
	}
	m := matrix.Identity(3)
	m.ConvertBeforeDD(0, ka, doubledouble.Zero)
	m.ConvertBeforeDD(1, ka, doubledouble.Zero)
	m.ConvertAfter(0, 1, p.FalseEasting)
	m.ConvertAfter(1, 1, p.FalseNorthing)
	m.ConvertBeforeDD(0, b, doubledouble.Zero)
	m.ConvertBeforeDD(1, b, m0)
	return m
}

func newMapProjection(name string, e Ellipsoid, p Parameters, k kernel, normalize, denormalize *matrix.Matrix, domain orb.Bound) (*MapProjection, error) {
	inverseNormalize, err := normalize.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	inverseDenormalize, err := denormalize.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &MapProjection{
		name:               name,
		parameters:         p,
		ellipsoid:          e,
		kernel:             k,
		normalize:          normalize,
		denormalize:        denormalize,
		inverseNormalize:   inverseNormalize,
		inverseDenormalize: inverseDenormalize,
		domain:             domain,
	}, nil
}

// Name returns the projection name.
func (p *MapProjection) Name() string { return p.name }

// Parameters returns the parameters the projection was built with.
func (p *MapProjection) Parameters() Parameters { return p.parameters }

// Ellipsoid returns the ellipsoid the projection was built with.
func (p *MapProjection) Ellipsoid() Ellipsoid { return p.ellipsoid }

// Domain returns the (longitude, latitude) area in degrees where the projection is
// accurate. Points outside may still be projected with reduced accuracy.
func (p *MapProjection) Domain() orb.Bound { return p.domain }

// Transform projects numPts (longitude, latitude) pairs in degrees read from src starting
// at srcOff, writing (x, y) pairs in metres in dst starting at dstOff. src and dst may be
// the same slice with the same offset. Points outside the domain of the projection give
// (NaN, NaN).
func (p *MapProjection) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) {
	p.normalize.Transform(src, srcOff, dst, dstOff, numPts)
	for i := dstOff; i < dstOff+2*numPts; i += 2 {
		lambda, phi := dst[i], dst[i+1]
		x, y, _ := p.kernel.transform(lambda, phi, false)
		if math.IsNaN(x) && !math.IsNaN(lambda) && !math.IsNaN(phi) {
			metrics.DomainExcursion(p.name)
		}
		dst[i], dst[i+1] = x, y
	}
	p.denormalize.Transform(dst, dstOff, dst, dstOff, numPts)
}

// InverseTransform is the reverse of Transform. It stops at the first point for which
// the computation does not converge and returns an error wrapping ErrNoConvergence. In that
// case the points before the failing one are converted and the others are left in dst with
// their input values, up to rounding.
func (p *MapProjection) InverseTransform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	p.inverseDenormalize.Transform(src, srcOff, dst, dstOff, numPts)
	for n := 0; n < numPts; n++ {
		i := dstOff + 2*n
		lambda, phi, err := p.kernel.inverse(dst[i], dst[i+1])
		if err != nil {
			metrics.NoConvergence(p.name)
			// src may be dst, so the input is recovered from the normalized values.
			p.inverseNormalize.Transform(dst, dstOff, dst, dstOff, n)
			p.denormalize.Transform(dst, i, dst, i, numPts-n)
			return fmt.Errorf("%s: point %d (%v, %v): %w", p.name, n, dst[i], dst[i+1], err)
		}
		dst[i], dst[i+1] = lambda, phi
	}
	p.inverseNormalize.Transform(dst, dstOff, dst, dstOff, numPts)
	return nil
}

// Derivative returns the Jacobian of Transform at (lon, lat) in degrees, in metres per
// degree. The matrix is filled with NaN outside the domain of the projection.
func (p *MapProjection) Derivative(lon, lat float64) *matrix.Matrix {
	pt := []float64{lon, lat}
	p.normalize.Transform(pt, 0, pt, 0, 1)
	_, _, j := p.kernel.transform(pt[0], pt[1], true)
	k := matrix.FromRows(
		[]float64{j[0], j[1]},
		[]float64{j[2], j[3]})
	d, err := linearPart(p.denormalize).Multiply(k)
	if err != nil {
		panic(err) // 2×2 by construction
	}
	d, err = d.Multiply(linearPart(p.normalize))
	if err != nil {
		panic(err)
	}
	return d
}

// linearPart returns the upper-left 2×2 part of an affine matrix.
func linearPart(m *matrix.Matrix) *matrix.Matrix {
	return matrix.FromRows(
		[]float64{m.Element(0, 0), m.Element(0, 1)},
		[]float64{m.Element(1, 0), m.Element(1, 1)})
}

// Project projects a single point.
func (p *MapProjection) Project(ll s2.LatLng) (x, y float64) {
	pt := []float64{ll.Lng.Degrees(), ll.Lat.Degrees()}
	p.Transform(pt, 0, pt, 0, 1)
	return pt[0], pt[1]
}

// Unproject is the reverse of Project. The longitude is normalized to [-180, 180].
func (p *MapProjection) Unproject(x, y float64) (s2.LatLng, error) {
	pt := []float64{x, y}
	if err := p.InverseTransform(pt, 0, pt, 0, 1); err != nil {
		return s2.LatLng{}, err
	}
	lon := math.Remainder(pt[0], 360)
	return s2.LatLng{Lat: s1.Angle(pt[1]) * s1.Degree, Lng: s1.Angle(lon) * s1.Degree}, nil
}

func (p *MapProjection) String() string {
	return fmt.Sprintf("%s[%s, central meridian %v]", p.name, p.ellipsoid, p.parameters.CentralMeridian.Degrees())
}
