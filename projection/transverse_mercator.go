package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"

	"github.com/tzneal/referencing/internal/doubledouble"
)

const (
	// angularTolerance is 1 cm on the Earth, in radians.
	angularTolerance = (0.01 / (1852 * 60)) * math.Pi / 180

	// iterationTolerance is the convergence criterion of the inverse projection.
	iterationTolerance = angularTolerance * 0.25

	// maximumIterations bounds the latitude iteration. Convergence usually takes 4 steps.
	maximumIterations = 18

	// polarAreaLimit is the latitude above which the series lose accuracy.
	polarAreaLimit = 84.0

	// domainLongitude is the half width of the accurate area around the central meridian.
	domainLongitude = 40.0
)

// Range of inverse flattening for which the series were checked against reference data.
const (
	minTestedInverseFlattening = 290
	maxTestedInverseFlattening = 301
)

// checkIdentities makes the series kernel compare every multiple-angle value against the
// direct computation. It panics on mismatch.
var checkIdentities = false

// NewTransverseMercator returns a Transverse Mercator projection on e. A sphere selects
// closed-form formulas instead of the series expansion.
//
// The series are accurate up to about (1−e)·90° ≈ 82.6° from the central meridian.
// Longitudes more than 90° away are projected to NaN. Between those two limits points are
// still projected, and eastings keep increasing along the equator so that the projected
// corners of a bounding box stay in order, but off the equator the results are meaningless
// and the inverse may fail with ErrNoConvergence.
//
// Domain returns ±40° around the central meridian and ±84° of latitude, the area where the
// series keep their millimetre accuracy. It lies well inside the 82.6° limit.
func NewTransverseMercator(e Ellipsoid, p Parameters) (*MapProjection, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !e.IsSphere() && (e.InverseFlattening < minTestedInverseFlattening || e.InverseFlattening > maxTestedInverseFlattening) {
		log().Warn("ellipsoid flattening outside the range the series were tested for",
			"ellipsoid", e.Name, "inverseFlattening", e.InverseFlattening)
	}
	var (
		k     kernel
		b, m0 doubledouble.DD
	)
	phi0 := p.LatitudeOfOrigin.Radians()
	if e.IsSphere() {
		k = sphericalTransverseMercator{}
		b = doubledouble.One
		m0 = doubledouble.Of(-phi0)
	} else {
		s := newTransverseMercatorSeries(e)
		k = s
		b = s.b
		m0 = s.meridianOffset(phi0)
		s.scaleCoefficients()
	}
	cm := (s1.Angle(p.centralMeridian()) * s1.Radian).Degrees()
	domain := orb.Bound{
		Min: orb.Point{cm - domainLongitude, -polarAreaLimit},
		Max: orb.Point{cm + domainLongitude, polarAreaLimit},
	}
	mp, err := newMapProjection("Transverse Mercator", e, p, k, p.normalization(), p.denormalization(e, b, m0), domain)
	if err != nil {
		return nil, err
	}
	log().Debug("created projection", "projection", mp.name, "ellipsoid", e.Name,
		"centralMeridian", p.CentralMeridian, "sphere", e.IsSphere())
	return mp, nil
}

// transverseMercatorSeries is the ellipsoidal kernel. The forward coefficients cf give ξ
// and η as a series in the conformal coordinates (ξ₀, η₀), the inverse coefficients ci the
// reverse. Both are polynomials in the third flattening n.
type transverseMercatorSeries struct {
	e float64 // eccentricity
	b doubledouble.DD

	cf2, cf4, cf6, cf8 float64
	ci2, ci4, ci6, ci8 float64
}

func newTransverseMercatorSeries(e Ellipsoid) *transverseMercatorSeries {
	nDD := doubledouble.One.Div(doubledouble.Of(2*e.InverseFlattening - 1))
	n2DD := nDD.Mul(nDD)
	n4DD := n2DD.Mul(n2DD)
	b := doubledouble.One.Add(n2DD.Div(doubledouble.Of(4))).Add(n4DD.Div(doubledouble.Of(64))).
		Div(doubledouble.One.Add(nDD))

	n := nDD.Float64()
	n2 := n * n
	n3 := n2 * n
	n4 := n2 * n2
	return &transverseMercatorSeries{
		e:   e.Eccentricity(),
		b:   b,
		cf2: 41.0/180*n4 + 5.0/16*n3 - 2.0/3*n2 + n/2,
		cf4: 557.0/1440*n4 - 3.0/5*n3 + 13.0/48*n2,
		cf6: -103.0/140*n4 + 61.0/240*n3,
		cf8: 49561.0 / 161280 * n4,
		ci2: -1.0/360*n4 + 37.0/96*n3 - 2.0/3*n2 + n/2,
		ci4: -437.0/1440*n4 + 1.0/15*n3 + 1.0/48*n2,
		ci6: -37.0/840*n4 + 17.0/480*n3,
		ci8: 4397.0 / 161280 * n4,
	}
}

// meridianOffset returns -B·ξ(φ0), the northing of the latitude of origin on the central
// meridian with opposite sign. It must be called before scaleCoefficients.
func (s *transverseMercatorSeries) meridianOffset(phi0 float64) doubledouble.DD {
	if phi0 == 0 {
		return doubledouble.Zero
	}
	q := math.Asinh(math.Tan(phi0)) - s.e*math.Atanh(s.e*math.Sin(phi0))
	beta := math.Atan(math.Sinh(q))
	series := beta + math.FMA(s.cf2, math.Sin(2*beta),
		math.FMA(s.cf4, math.Sin(4*beta),
			math.FMA(s.cf6, math.Sin(6*beta), s.cf8*math.Sin(8*beta))))
	return s.b.Mul(doubledouble.Of(series)).Neg()
}

// scaleCoefficients folds into the coefficients the factors that computeTrigSeries and
// computeHyperbolicSeries leave out of the 4θ, 6θ and 8θ terms.
func (s *transverseMercatorSeries) scaleCoefficients() {
	s.cf4 *= 4
	s.ci4 *= 4
	s.cf6 *= 16
	s.ci6 *= 16
	s.cf8 *= 64
	s.ci8 *= 64
}

// multipleAngles holds sin and cos of 2θ, 4θ, 6θ and 8θ, or sinh and cosh. The 4θ, 6θ and
// 8θ values are divided by 2, 4 and 8 respectively.
type multipleAngles struct {
	s2, c2, s4, c4, s6, c6, s8, c8 float64
}

// computeTrigSeries uses trig identities to compute sin(2kθ) and cos(2kθ) for k = 1 … 4
// from a single sin and cos.
func computeTrigSeries(theta float64) multipleAngles {
	var m multipleAngles
	m.s2 = math.Sin(2 * theta)
	m.c2 = math.Cos(2 * theta)
	m.s4 = m.s2 * m.c2
	m.c4 = (m.c2*m.c2 - m.s2*m.s2) / 2
	m.s6 = (0.75 - m.s2*m.s2) * m.s2
	m.c6 = (m.c2*m.c2 - 0.75) * m.c2
	m.s8 = m.s4 * m.c4
	m.c8 = 0.125 - m.s4*m.s4
	if checkIdentities {
		assertIdentity("sin(4θ)", m.s4, math.Sin(4*theta)/2)
		assertIdentity("cos(4θ)", m.c4, math.Cos(4*theta)/2)
		assertIdentity("sin(6θ)", m.s6, math.Sin(6*theta)/4)
		assertIdentity("cos(6θ)", m.c6, math.Cos(6*theta)/4)
		assertIdentity("sin(8θ)", m.s8, math.Sin(8*theta)/8)
		assertIdentity("cos(8θ)", m.c8, math.Cos(8*theta)/8)
	}
	return m
}

// computeHyperbolicSeries is computeTrigSeries for sinh and cosh.
func computeHyperbolicSeries(x float64) multipleAngles {
	var m multipleAngles
	m.s2 = math.Sinh(2 * x)
	m.c2 = math.Cosh(2 * x)
	m.s4 = m.c2 * m.s2
	m.c4 = (m.c2*m.c2 + m.s2*m.s2) / 2
	m.c6 = m.c2 * (m.c2*m.c2 - 0.75)
	m.s6 = m.s2 * (m.s2*m.s2 + 0.75)
	m.c8 = m.s4*m.s4 + 0.125
	m.s8 = m.s4 * m.c4
	if checkIdentities {
		assertIdentity("sinh(4x)", m.s4, math.Sinh(4*x)/2)
		assertIdentity("cosh(4x)", m.c4, math.Cosh(4*x)/2)
		assertIdentity("sinh(6x)", m.s6, math.Sinh(6*x)/4)
		assertIdentity("cosh(6x)", m.c6, math.Cosh(6*x)/4)
		assertIdentity("sinh(8x)", m.s8, math.Sinh(8*x)/8)
		assertIdentity("cosh(8x)", m.c8, math.Cosh(8*x)/8)
	}
	return m
}

func identityEquals(actual, expected float64) bool {
	return !(math.Abs(actual-expected) > (angularTolerance/1000)*math.Max(1, math.Abs(expected)))
}

func assertIdentity(name string, actual, expected float64) {
	if !identityEquals(actual, expected) {
		panic(fmt.Sprintf("projection: %s identity gives %v, want %v", name, actual, expected))
	}
}

func (s *transverseMercatorSeries) transform(lambda, phi float64, derivate bool) (x, y float64, jacobian [4]float64) {
	if math.Abs(lambda) > math.Pi/2 && math.Abs(math.Remainder(lambda, 2*math.Pi)) > math.Pi/2 {
		nan := math.NaN()
		return nan, nan, [4]float64{nan, nan, nan, nan}
	}
	sinLambda := math.Sin(lambda)
	eSinPhi := math.Sin(phi) * s.e
	q := math.Asinh(math.Tan(phi)) - math.Atanh(eSinPhi)*s.e
	coshQ := math.Cosh(q)
	eta0 := math.Atanh(sinLambda / coshQ)
	coshEta0 := math.Cosh(eta0)
	xi0 := math.Asin(math.Tanh(q) * coshEta0)

	t := computeTrigSeries(xi0)
	h := computeHyperbolicSeries(eta0)

	x = s.cf8*t.c8*h.s8 + s.cf6*t.c6*h.s6 + s.cf4*t.c4*h.s4 + s.cf2*t.c2*h.s2 + eta0
	y = s.cf8*t.s8*h.c8 + s.cf6*t.s6*h.c6 + s.cf4*t.s4*h.c4 + s.cf2*t.s2*h.c2 + xi0
	if !derivate {
		return x, y, jacobian
	}

	cosPhi := math.Cos(phi)
	cosLambda := math.Cos(lambda)
	sinhQ := math.Sinh(q)
	tanhQ := math.Tanh(q)
	sinhEta0 := math.Sinh(eta0)
	cosh2Q := coshQ * coshQ
	denom := cosh2Q - sinLambda*sinLambda
	sqrtXi := math.Sqrt(1 - tanhQ*tanhQ*coshEta0*coshEta0)

	dQdPhi := 1/cosPhi - s.e*s.e*cosPhi/(1-eSinPhi*eSinPhi)
	dEta0dLambda := cosLambda * coshQ / denom
	dEta0dPhi := -dQdPhi * sinLambda * sinhQ / denom
	dXi0dLambda := sinhQ * sinhEta0 * cosLambda / (denom * sqrtXi)
	dXi0dPhi := (dQdPhi*coshEta0/cosh2Q + dEta0dPhi*sinhEta0*tanhQ) / sqrtXi

	// ∂η/∂v and ∂ξ/∂v for v = λ or φ.
	dEta := func(dEta0, dXi0 float64) float64 {
		term := func(tc, ts, hc, hs float64) float64 { return dEta0*hc*tc - dXi0*ts*hs }
		return dEta0 + 2*(s.cf2*term(t.c2, t.s2, h.c2, h.s2)+
			3*s.cf6*term(t.c6, t.s6, h.c6, h.s6)+
			2*(s.cf4*term(t.c4, t.s4, h.c4, h.s4)+
				2*s.cf8*term(t.c8, t.s8, h.c8, h.s8)))
	}
	dXi := func(dEta0, dXi0 float64) float64 {
		term := func(tc, ts, hc, hs float64) float64 { return dXi0*tc*hc + dEta0*hs*ts }
		return dXi0 + 2*(s.cf2*term(t.c2, t.s2, h.c2, h.s2)+
			3*s.cf6*term(t.c6, t.s6, h.c6, h.s6)+
			2*(s.cf4*term(t.c4, t.s4, h.c4, h.s4)+
				2*s.cf8*term(t.c8, t.s8, h.c8, h.s8)))
	}
	jacobian = [4]float64{
		dEta(dEta0dLambda, dXi0dLambda), dEta(dEta0dPhi, dXi0dPhi),
		dXi(dEta0dLambda, dXi0dLambda), dXi(dEta0dPhi, dXi0dPhi),
	}
	return x, y, jacobian
}

func (s *transverseMercatorSeries) inverse(x, y float64) (lambda, phi float64, err error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN(), math.NaN(), nil
	}
	t := computeTrigSeries(y)
	h := computeHyperbolicSeries(x)

	xi0 := y - (s.ci8*t.s8*h.c8 + s.ci6*t.s6*h.c6 + s.ci4*t.s4*h.c4 + s.ci2*t.s2*h.c2)
	eta0 := x - (s.ci8*t.c8*h.s8 + s.ci6*t.c6*h.s6 + s.ci4*t.c4*h.s4 + s.ci2*t.c2*h.s2)

	beta := math.Asin(math.Sin(xi0) / math.Cosh(eta0))
	q := math.Asinh(math.Tan(beta))
	p := s.e * math.Atanh(s.e*math.Tanh(q))
	qp := q + p
	for it := 0; it < maximumIterations; it++ {
		c := s.e * math.Atanh(s.e*math.Tanh(qp))
		qp = q + c
		if math.Abs(c-p) <= iterationTolerance {
			return math.Asin(math.Tanh(eta0) / math.Cos(beta)), math.Atan(math.Sinh(qp)), nil
		}
		p = c
	}
	return math.NaN(), math.NaN(), ErrNoConvergence
}

// sphericalTransverseMercator is the kernel on a sphere, where closed-form formulas exist.
type sphericalTransverseMercator struct{}

func (sphericalTransverseMercator) transform(lambda, phi float64, derivate bool) (x, y float64, jacobian [4]float64) {
	sinLambda, cosLambda := math.Sincos(lambda)
	if cosLambda < 0 {
		nan := math.NaN()
		return nan, nan, [4]float64{nan, nan, nan, nan}
	}
	sinPhi, cosPhi := math.Sincos(phi)
	tanPhi := sinPhi / cosPhi
	b := cosPhi * sinLambda
	x = math.Atanh(b)
	y = math.Atan2(tanPhi, cosLambda)
	if !derivate {
		return x, y, jacobian
	}
	bm := b*b - 1
	sct := cosLambda*cosLambda + tanPhi*tanPhi
	jacobian = [4]float64{
		-(cosPhi * cosLambda) / bm, (sinPhi * sinLambda) / bm,
		(tanPhi * sinLambda) / sct, cosLambda / (cosPhi * cosPhi * sct),
	}
	return x, y, jacobian
}

func (sphericalTransverseMercator) inverse(x, y float64) (lambda, phi float64, err error) {
	sinhX := math.Sinh(x)
	cosY := math.Cos(y)
	lambda = math.Atan2(sinhX, cosY)
	phi = math.Copysign(math.Asin(math.Sqrt((1-cosY*cosY)/(1+sinhX*sinhX))), y)
	return lambda, phi, nil
}

// UTMParameters returns the parameters of the Universal Transverse Mercator projection for
// a zone in 1 … 60. Southern hemisphere zones have a false northing of 10 000 km.
func UTMParameters(zone int, south bool) (Parameters, error) {
	if zone < 1 || zone > 60 {
		return Parameters{}, fmt.Errorf("%w: zone %d", ErrInvalidParameter, zone)
	}
	p := Parameters{
		CentralMeridian: CentralMeridian(zone),
		ScaleFactor:     utmScaleFactor,
		FalseEasting:    utmFalseEasting,
	}
	if south {
		p.FalseNorthing = utmSouthFalseNorthing
	}
	return p, nil
}

// CentralMeridian returns the central meridian of a UTM zone, in [0°, 360°).
func CentralMeridian(zone int) s1.Angle {
	if zone >= 31 {
		return s1.Angle(6*zone-183) * s1.Degree
	}
	return s1.Angle(6*zone+177) * s1.Degree
}
