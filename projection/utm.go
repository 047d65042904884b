package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Hemisphere is the hemisphere of a UTM coordinate.
type Hemisphere int

// Hemispheres.
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

// UTMCoord is a UTM coordinate
type UTMCoord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

func (c UTMCoord) String() string {
	return fmt.Sprintf("%d%s %.3f %.3f", c.Zone, c.Hemisphere, c.Easting, c.Northing)
}

const (
	utmScaleFactor        = 0.9996
	utmFalseEasting       = 500000.0
	utmSouthFalseNorthing = 10000000.0

	utmMinLat      = (-80.5 * math.Pi) / 180.0 // -80.5 degrees in radians
	utmMaxLat      = (84.5 * math.Pi) / 180.0  //  84.5 degrees in radians
	utmMinEasting  = 100000.0
	utmMaxEasting  = 900000.0
	utmMinNorthing = 0.0
	utmMaxNorthing = 10000000.0

	epsilonRadians = 1.75e-7 // approx 1.0e-5 degrees (~1 meter) in radians
)

// UTM is a UTM coordinate converter. Each zone is a Transverse Mercator projection with a
// false northing of zero; the southern hemisphere offset is applied by the converter.
type UTM struct {
	ellipsoid   Ellipsoid
	utmOverride int
	zones       [61]*MapProjection
}

// DefaultUTM is a WGS84 ellipsoid based UTM converter.
var DefaultUTM *UTM

func init() {
	var err error
	DefaultUTM, err = NewUTM(WGS84, 0)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}

// NewUTM receives the ellipsoid and UTM zone override parameter. override is the UTM
// override zone, 0 indicates no override.
func NewUTM(e Ellipsoid, override int) (*UTM, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.IsSphere() || e.InverseFlattening < 250 || e.InverseFlattening > 350 {
		return nil, fmt.Errorf("%w: inverse flattening must be between 250 and 350, got %v", ErrInvalidParameter, e.InverseFlattening)
	}
	if override < 0 || override > 60 {
		return nil, fmt.Errorf("%w: zone override %d", ErrInvalidParameter, override)
	}
	u := &UTM{ellipsoid: e, utmOverride: override}
	for zone := 1; zone <= 60; zone++ {
		p, err := UTMParameters(zone, false)
		if err != nil {
			return nil, err
		}
		u.zones[zone], err = NewTransverseMercator(e, p)
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Zone returns the projection of a zone in 1 … 60, with a false northing of zero.
func (u *UTM) Zone(zone int) (*MapProjection, error) {
	if zone < 1 || zone > 60 {
		return nil, fmt.Errorf("%w: zone %d", ErrOutOfRange, zone)
	}
	return u.zones[zone], nil
}

// selectZone returns the zone of a point. longitude is in [0, 2π).
func (u *UTM) selectZone(latitude, longitude float64, utmZoneOverride int) (int, error) {
	latDegrees := int(latitude * 180.0 / math.Pi)
	lonDegrees := int(longitude * 180.0 / math.Pi)

	var zone int
	if longitude < math.Pi {
		zone = int(31 + (((longitude + 1.0e-10) * 180.0 / math.Pi) / 6.0))
	} else {
		zone = int((((longitude + 1.0e-10) * 180.0 / math.Pi) / 6.0) - 29)
	}
	if zone > 60 {
		zone = 1
	} else if zone < 0 {
		return 0, fmt.Errorf("%w: longitude %v", ErrOutOfRange, s1.Angle(longitude))
	}

	override := utmZoneOverride
	if override == 0 {
		override = u.utmOverride
	}
	// allow UTM zone override up to +/- one zone of the calculated zone
	if override != 0 {
		switch {
		case zone == 1 && override == 60, zone == 60 && override == 1:
			return override, nil
		case zone-1 <= override && override <= zone+1:
			return override, nil
		}
		return 0, fmt.Errorf("%w: zone override %d, computed zone %d", ErrOutOfRange, override, zone)
	}

	// check for special zone cases over southern Norway and Svalbard
	if latDegrees > 55 && latDegrees < 64 && lonDegrees > -1 && lonDegrees < 3 {
		zone = 31
	}
	if latDegrees > 55 && latDegrees < 64 && lonDegrees > 2 && lonDegrees < 12 {
		zone = 32
	}
	if latDegrees > 71 && lonDegrees > -1 && lonDegrees < 9 {
		zone = 31
	}
	if latDegrees > 71 && lonDegrees > 8 && lonDegrees < 21 {
		zone = 33
	}
	if latDegrees > 71 && lonDegrees > 20 && lonDegrees < 33 {
		zone = 35
	}
	if latDegrees > 71 && lonDegrees > 32 && lonDegrees < 42 {
		zone = 37
	}
	return zone, nil
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to UTM projection (zone, hemisphere, easting and northing) coordinates
// according to the current ellipsoid and UTM zone override parameters.
func (u *UTM) ConvertFromGeodetic(geodeticCoordinates s2.LatLng, utmZoneOverride int) (UTMCoord, error) {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < utmMinLat-epsilonRadians || latitude >= utmMaxLat+epsilonRadians {
		return UTMCoord{}, fmt.Errorf("%w: latitude %v", ErrOutOfRange, geodeticCoordinates.Lat)
	}
	if longitude < -math.Pi-epsilonRadians || longitude > 2*math.Pi+epsilonRadians {
		return UTMCoord{}, fmt.Errorf("%w: longitude %v", ErrOutOfRange, geodeticCoordinates.Lng)
	}
	if latitude > -1.0e-9 && latitude < 0 {
		latitude = 0.0
	}
	if longitude < 0 {
		longitude += 2 * math.Pi
	}

	zone, err := u.selectZone(latitude, longitude, utmZoneOverride)
	if err != nil {
		return UTMCoord{}, err
	}
	hemisphere := HemisphereNorth
	falseNorthing := 0.0
	if latitude < 0 {
		falseNorthing = utmSouthFalseNorthing
		hemisphere = HemisphereSouth
	}
	easting, northing := u.zones[zone].Project(s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)})
	northing += falseNorthing
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return UTMCoord{}, fmt.Errorf("%w: easting %v in zone %d", ErrOutOfRange, easting, zone)
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return UTMCoord{}, fmt.Errorf("%w: northing %v in zone %d", ErrOutOfRange, northing, zone)
	}
	return UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}, nil
}

// ConvertToGeodetic converts UTM projection (zone, hemisphere, easting and
// northing) coordinates to geodetic (latitude and longitude) coordinates,
// according to the current ellipsoid parameters.
func (u *UTM) ConvertToGeodetic(utmCoordinates UTMCoord) (s2.LatLng, error) {
	zone := utmCoordinates.Zone
	if zone < 1 || zone > 60 {
		return s2.LatLng{}, fmt.Errorf("%w: zone %d", ErrOutOfRange, zone)
	}
	falseNorthing := 0.0
	switch utmCoordinates.Hemisphere {
	case HemisphereNorth:
	case HemisphereSouth:
		falseNorthing = utmSouthFalseNorthing
	default:
		return s2.LatLng{}, fmt.Errorf("%w: hemisphere %v", ErrOutOfRange, utmCoordinates.Hemisphere)
	}
	easting := utmCoordinates.Easting
	northing := utmCoordinates.Northing
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return s2.LatLng{}, fmt.Errorf("%w: easting %v", ErrOutOfRange, easting)
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return s2.LatLng{}, fmt.Errorf("%w: northing %v", ErrOutOfRange, northing)
	}

	geodeticCoordinates, err := u.zones[zone].Unproject(easting, northing-falseNorthing)
	if err != nil {
		return s2.LatLng{}, err
	}
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < utmMinLat-epsilonRadians || latitude >= utmMaxLat+epsilonRadians {
		return s2.LatLng{}, fmt.Errorf("%w: latitude %v", ErrOutOfRange, geodeticCoordinates.Lat)
	}
	return geodeticCoordinates, nil
}
