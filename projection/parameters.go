package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Scale factor limits accepted by Validate.
const (
	minScaleFactor = 0.1
	maxScaleFactor = 10.0
)

// Parameters are the parameters of a map projection. Longitudes and latitudes are
// given on the ellipsoid, false easting and northing in metres.
type Parameters struct {
	CentralMeridian  s1.Angle
	LatitudeOfOrigin s1.Angle
	ScaleFactor      float64
	FalseEasting     float64
	FalseNorthing    float64

	// SouthOrientated makes x increase toward west and y toward south. FalseEasting
	// and FalseNorthing are then the false westing and southing.
	SouthOrientated bool
}

// Validate checks that the parameters are in range.
func (p Parameters) Validate() error {
	lat := p.LatitudeOfOrigin.Radians()
	if !(lat >= -math.Pi/2 && lat <= math.Pi/2) {
		return fmt.Errorf("%w: latitude of origin %v out of range", ErrInvalidParameter, p.LatitudeOfOrigin)
	}
	lon := p.CentralMeridian.Radians()
	if !(lon >= -math.Pi && lon <= 2*math.Pi) {
		return fmt.Errorf("%w: central meridian %v out of range", ErrInvalidParameter, p.CentralMeridian)
	}
	if !(p.ScaleFactor >= minScaleFactor && p.ScaleFactor <= maxScaleFactor) {
		return fmt.Errorf("%w: scale factor %v out of range", ErrInvalidParameter, p.ScaleFactor)
	}
	if math.IsNaN(p.FalseEasting) || math.IsInf(p.FalseEasting, 0) ||
		math.IsNaN(p.FalseNorthing) || math.IsInf(p.FalseNorthing, 0) {
		return fmt.Errorf("%w: false easting %v, false northing %v", ErrInvalidParameter, p.FalseEasting, p.FalseNorthing)
	}
	return nil
}

// centralMeridian returns the central meridian in radians in the (-π … π] range.
func (p Parameters) centralMeridian() float64 {
	lon := p.CentralMeridian.Radians()
	if lon > math.Pi {
		lon -= 2 * math.Pi
	}
	return lon
}
