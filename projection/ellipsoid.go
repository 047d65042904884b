package projection

import (
	"fmt"
	"math"
)

// Ellipsoid is the figure of the Earth on which geodetic coordinates are defined.
type Ellipsoid struct {
	Name              string
	SemiMajorAxis     float64 // in metres
	InverseFlattening float64 // +Inf for a sphere
}

// Predefined ellipsoids.
var (
	WGS84             = Ellipsoid{Name: "WGS 84", SemiMajorAxis: 6378137, InverseFlattening: 298.257223563}
	GRS80             = Ellipsoid{Name: "GRS 1980", SemiMajorAxis: 6378137, InverseFlattening: 298.257222101}
	Clarke1866        = Ellipsoid{Name: "Clarke 1866", SemiMajorAxis: 6378206.4, InverseFlattening: 294.9786982}
	International1924 = Ellipsoid{Name: "International 1924", SemiMajorAxis: 6378388, InverseFlattening: 297}
	Airy1830          = Ellipsoid{Name: "Airy 1830", SemiMajorAxis: 6377563.396, InverseFlattening: 299.3249646}

	// Sphere is a sphere of radius 1.
	Sphere = Ellipsoid{Name: "Unit sphere", SemiMajorAxis: 1, InverseFlattening: math.Inf(1)}
)

// Validate checks the ellipsoid parameters.
func (e Ellipsoid) Validate() error {
	if !(e.SemiMajorAxis > 0) || math.IsInf(e.SemiMajorAxis, 1) {
		return fmt.Errorf("%w: semi-major axis must be greater than zero, got %v", ErrInvalidParameter, e.SemiMajorAxis)
	}
	if !(e.InverseFlattening >= 150) {
		return fmt.Errorf("%w: inverse flattening %v out of range", ErrInvalidParameter, e.InverseFlattening)
	}
	return nil
}

// Flattening returns f = (a - b) / a.
func (e Ellipsoid) Flattening() float64 { return 1 / e.InverseFlattening }

// EccentricitySquared returns e² = f·(2 - f).
func (e Ellipsoid) EccentricitySquared() float64 {
	f := e.Flattening()
	return f * (2 - f)
}

// Eccentricity returns e.
func (e Ellipsoid) Eccentricity() float64 { return math.Sqrt(e.EccentricitySquared()) }

// SemiMinorAxis returns b = a·(1 - f).
func (e Ellipsoid) SemiMinorAxis() float64 { return e.SemiMajorAxis * (1 - e.Flattening()) }

// IsSphere reports whether the flattening is zero.
func (e Ellipsoid) IsSphere() bool { return math.IsInf(e.InverseFlattening, 1) }

func (e Ellipsoid) String() string { return e.Name }
