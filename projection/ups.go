package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// UPSCoord is a UPS coordinate with a specified easting/northing in meters and
// hemisphere.
type UPSCoord struct {
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

func (c UPSCoord) String() string {
	return fmt.Sprintf("%s %.3f %.3f", c.Hemisphere, c.Easting, c.Northing)
}

const (
	upsScaleFactor   = 0.994
	upsFalseEasting  = 2000000
	upsFalseNorthing = 2000000

	upsMaxLat       = 90.0 * (math.Pi / 180.0) // 90 degrees in radians
	upsMinNorthLat  = 83.5 * (math.Pi / 180.0)
	upsMaxSouthLat  = -79.5 * (math.Pi / 180.0)
	upsMinEastNorth = 0.0
	upsMaxEastNorth = 4000000.0
)

// UPS is a Universal Polar Stereographic coordinate converter.
type UPS struct {
	ellipsoid Ellipsoid
	north     *MapProjection
	south     *MapProjection
}

// DefaultUPS is a WGS84 ellipsoid based UPS converter.
var DefaultUPS *UPS

func init() {
	var err error
	DefaultUPS, err = NewUPS(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UPS converter: %s", err))
	}
}

// NewUPS constructs a new UPS converter with the specified ellipsoid.
func NewUPS(e Ellipsoid) (*UPS, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.IsSphere() || e.InverseFlattening < 250 || e.InverseFlattening > 350 {
		return nil, fmt.Errorf("%w: inverse flattening must be between 250 and 350, got %v", ErrInvalidParameter, e.InverseFlattening)
	}
	p := Parameters{
		LatitudeOfOrigin: 90 * s1.Degree,
		ScaleFactor:      upsScaleFactor,
		FalseEasting:     upsFalseEasting,
		FalseNorthing:    upsFalseNorthing,
	}
	north, err := NewPolarStereographic(e, p)
	if err != nil {
		return nil, err
	}
	p.LatitudeOfOrigin = -p.LatitudeOfOrigin
	south, err := NewPolarStereographic(e, p)
	if err != nil {
		return nil, err
	}
	return &UPS{ellipsoid: e, north: north, south: south}, nil
}

// ConvertFromGeodetic converts a geodetic coordinate to a UPS coordinate.
func (u *UPS) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (UPSCoord, error) {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()

	switch {
	case latitude < -upsMaxLat || latitude > upsMaxLat,
		latitude < 0 && latitude >= upsMaxSouthLat+epsilonRadians,
		latitude >= 0 && latitude < upsMinNorthLat-epsilonRadians:
		return UPSCoord{}, fmt.Errorf("%w: latitude %v", ErrOutOfRange, geodeticCoordinates.Lat)
	}
	if longitude < -math.Pi || longitude > 2*math.Pi {
		return UPSCoord{}, fmt.Errorf("%w: longitude %v", ErrOutOfRange, geodeticCoordinates.Lng)
	}

	hemisphere := HemisphereNorth
	ps := u.north
	if latitude < 0 {
		hemisphere = HemisphereSouth
		ps = u.south
	}
	easting, northing := ps.Project(geodeticCoordinates)
	return UPSCoord{
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}, nil
}

// ConvertToGeodetic converts UPS (hemisphere, easting, and northing)
// coordinates to geodetic (latitude and longitude) coordinates according to the
// current ellipsoid parameters.
func (u *UPS) ConvertToGeodetic(upsCoordinates UPSCoord) (s2.LatLng, error) {
	easting := upsCoordinates.Easting
	northing := upsCoordinates.Northing

	var ps *MapProjection
	switch upsCoordinates.Hemisphere {
	case HemisphereNorth:
		ps = u.north
	case HemisphereSouth:
		ps = u.south
	default:
		return s2.LatLng{}, fmt.Errorf("%w: hemisphere %v", ErrOutOfRange, upsCoordinates.Hemisphere)
	}
	if !(easting >= upsMinEastNorth && easting <= upsMaxEastNorth) {
		return s2.LatLng{}, fmt.Errorf("%w: easting %v", ErrOutOfRange, easting)
	}
	if !(northing >= upsMinEastNorth && northing <= upsMaxEastNorth) {
		return s2.LatLng{}, fmt.Errorf("%w: northing %v", ErrOutOfRange, northing)
	}

	geodeticCoordinates, err := ps.Unproject(easting, northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	latitude := geodeticCoordinates.Lat.Radians()
	if (latitude < 0 && latitude >= upsMaxSouthLat+epsilonRadians) ||
		(latitude >= 0 && latitude < upsMinNorthLat-epsilonRadians) {
		return s2.LatLng{}, fmt.Errorf("%w: resulting latitude %v", ErrOutOfRange, geodeticCoordinates.Lat)
	}
	return geodeticCoordinates, nil
}
