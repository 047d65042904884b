package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"

	"github.com/tzneal/referencing/internal/doubledouble"
)

// NewPolarStereographic returns a polar stereographic projection centred on the pole
// given by p.LatitudeOfOrigin, which must be 90° or -90°. The scale factor applies at the
// pole. On the north pole the central meridian points down, on the south pole it points up.
// Points in the hemisphere opposite to the pole are projected to NaN.
func NewPolarStereographic(e Ellipsoid, p Parameters) (*MapProjection, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	south := false
	switch lat := p.LatitudeOfOrigin.Degrees(); {
	case math.Abs(lat-90) < 1e-10:
	case math.Abs(lat+90) < 1e-10:
		south = true
	default:
		return nil, fmt.Errorf("%w: latitude of origin %v is not a pole", ErrInvalidParameter, p.LatitudeOfOrigin)
	}
	k := &polarStereographic{e: e.Eccentricity()}

	// ρ = 2·k0·a·t / K90
	k90 := math.Sqrt(math.Pow(1+k.e, 1+k.e) * math.Pow(1-k.e, 1-k.e))
	b := doubledouble.Of(2).Div(doubledouble.Of(k90))

	normalize := p.normalization()
	denormalize := p.denormalization(e, b, doubledouble.Zero)
	domain := orb.Bound{Min: orb.Point{-180, 0}, Max: orb.Point{180, 90}}
	if south {
		normalize.ConvertAfter(1, -1, 0)
		denormalize.ConvertBefore(1, -1, 0)
		domain = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 0}}
	}
	return newMapProjection("Polar Stereographic", e, p, k, normalize, denormalize, domain)
}

// PolarStereographicScaleFactor returns the scale factor at the pole that gives a true
// scale along standardParallel.
func PolarStereographicScaleFactor(e Ellipsoid, standardParallel s1.Angle) (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	phi := math.Abs(standardParallel.Radians())
	if phi == 0 || phi > math.Pi/2 {
		return 0, fmt.Errorf("%w: standard parallel %v", ErrInvalidParameter, standardParallel)
	}
	es := e.Eccentricity()
	k90 := math.Sqrt(math.Pow(1+es, 1+es) * math.Pow(1-es, 1-es))
	slat := math.Sin(phi)
	return ((1 + slat) / 2) * (k90 / math.Sqrt(math.Pow(1+es*slat, 1+es)*math.Pow(1-es*slat, 1-es))), nil
}

// polarStereographic is the kernel for the north pole. The projection of the south pole
// is obtained by reversing the sign of latitudes and northings.
type polarStereographic struct {
	e float64 // eccentricity
}

// polarPow returns ((1 - e·sinφ) / (1 + e·sinφ))^(e/2).
func (k *polarStereographic) polarPow(esSin float64) float64 {
	return math.Pow((1.0-esSin)/(1.0+esSin), k.e/2)
}

func (k *polarStereographic) transform(lambda, phi float64, derivate bool) (x, y float64, jacobian [4]float64) {
	if phi < 0 {
		nan := math.NaN()
		return nan, nan, [4]float64{nan, nan, nan, nan}
	}
	sinPhi := math.Sin(phi)
	essin := k.e * sinPhi
	powEs := k.polarPow(essin)
	rho := math.Tan(math.Pi/4-phi/2) / powEs
	sinLambda, cosLambda := math.Sincos(lambda)
	x = rho * sinLambda
	y = -rho * cosLambda
	if !derivate {
		return x, y, jacobian
	}
	cosPhi := math.Cos(phi)
	// tan(π/4 - φ/2) / cos φ = 1 / (1 + sin φ)
	dRho := -1/((1+sinPhi)*powEs) + rho*k.e*k.e*cosPhi/(1-essin*essin)
	jacobian = [4]float64{
		rho * cosLambda, dRho * sinLambda,
		rho * sinLambda, -dRho * cosLambda,
	}
	return x, y, jacobian
}

func (k *polarStereographic) inverse(x, y float64) (lambda, phi float64, err error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN(), math.NaN(), nil
	}
	t := math.Hypot(x, y)
	if t == 0 {
		return 0, math.Pi / 2, nil
	}
	lambda = math.Atan2(x, -y)
	phi = math.Pi/2 - 2*math.Atan(t)
	for it := 0; it < maximumIterations; it++ {
		next := math.Pi/2 - 2*math.Atan(t*k.polarPow(k.e*math.Sin(phi)))
		if math.Abs(next-phi) <= iterationTolerance {
			return lambda, next, nil
		}
		phi = next
	}
	return math.NaN(), math.NaN(), ErrNoConvergence
}
