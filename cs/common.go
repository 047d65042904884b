package cs

import "github.com/tzneal/referencing/units"

// Frequently used axes.
var (
	GeodeticLatitude = MustNewAxis(AxisProperties{
		Name: "Geodetic latitude", Abbreviation: "φ", Direction: North, Unit: units.Degree,
	})
	GeodeticLongitude = MustNewAxis(AxisProperties{
		Name: "Geodetic longitude", Abbreviation: "λ", Direction: East, Unit: units.Degree,
	})
	EllipsoidalHeight = MustNewAxis(AxisProperties{
		Name: "Ellipsoidal height", Abbreviation: "h", Direction: Up, Unit: units.Metre,
	})
	GravityRelatedHeight = MustNewAxis(AxisProperties{
		Name: "Gravity-related height", Abbreviation: "H", Direction: Up, Unit: units.Metre,
	})
	Depth = MustNewAxis(AxisProperties{
		Name: "Depth", Abbreviation: "D", Direction: Down, Unit: units.Metre,
	})
	Easting = MustNewAxis(AxisProperties{
		Name: "Easting", Abbreviation: "E", Direction: East, Unit: units.Metre,
	})
	Northing = MustNewAxis(AxisProperties{
		Name: "Northing", Abbreviation: "N", Direction: North, Unit: units.Metre,
	})
	Westing = MustNewAxis(AxisProperties{
		Name: "Westing", Abbreviation: "W", Direction: West, Unit: units.Metre,
	})
	Southing = MustNewAxis(AxisProperties{
		Name: "Southing", Abbreviation: "S", Direction: South, Unit: units.Metre,
	})
	GeocentricXAxis = MustNewAxis(AxisProperties{
		Name: "Geocentric X", Abbreviation: "X", Direction: GeocentricX, Unit: units.Metre,
	})
	GeocentricYAxis = MustNewAxis(AxisProperties{
		Name: "Geocentric Y", Abbreviation: "Y", Direction: GeocentricY, Unit: units.Metre,
	})
	GeocentricZAxis = MustNewAxis(AxisProperties{
		Name: "Geocentric Z", Abbreviation: "Z", Direction: GeocentricZ, Unit: units.Metre,
	})
	TimeAxis = MustNewAxis(AxisProperties{
		Name: "Time", Abbreviation: "t", Direction: Future, Unit: units.Day,
	})
)

// Frequently used coordinate systems, identified by their EPSG codes.
var (
	// EllipsoidalLatLon is EPSG:6422, (latitude, longitude) in degrees.
	EllipsoidalLatLon = MustNew(Ellipsoidal, "Ellipsoidal 2D CS. Axes: latitude, longitude. Orientations: north, east. UoM: degree",
		GeodeticLatitude, GeodeticLongitude).WithIdentifiers(Identifier{"EPSG", "6422"})

	// EllipsoidalLonLat is EPSG:6424, (longitude, latitude) in degrees.
	EllipsoidalLonLat = MustNew(Ellipsoidal, "Ellipsoidal 2D CS. Axes: longitude, latitude. Orientations: east, north. UoM: degree",
		GeodeticLongitude, GeodeticLatitude).WithIdentifiers(Identifier{"EPSG", "6424"})

	// EllipsoidalLatLonHeight is EPSG:6423, (latitude, longitude, ellipsoidal height).
	EllipsoidalLatLonHeight = MustNew(Ellipsoidal, "Ellipsoidal 3D CS. Axes: latitude, longitude, ellipsoidal height. Orientations: north, east, up. UoM: degree, degree, metre",
		GeodeticLatitude, GeodeticLongitude, EllipsoidalHeight).WithIdentifiers(Identifier{"EPSG", "6423"})

	// ProjectedEastNorth is EPSG:4400, (easting, northing) in metres.
	ProjectedEastNorth = MustNew(Cartesian, "Cartesian 2D CS. Axes: easting, northing (E,N). Orientations: east, north. UoM: m",
		Easting, Northing).WithIdentifiers(Identifier{"EPSG", "4400"})

	// ProjectedNorthEast is EPSG:4500, (northing, easting) in metres.
	ProjectedNorthEast = MustNew(Cartesian, "Cartesian 2D CS. Axes: northing, easting (N,E). Orientations: north, east. UoM: m",
		Northing, Easting).WithIdentifiers(Identifier{"EPSG", "4500"})

	// Geocentric is EPSG:6500, geocentric (X, Y, Z) in metres.
	Geocentric = MustNew(Cartesian, "Earth centred, earth fixed, righthanded 3D coordinate system",
		GeocentricXAxis, GeocentricYAxis, GeocentricZAxis).WithIdentifiers(Identifier{"EPSG", "6500"})

	// GravityRelatedUp is EPSG:6499, gravity-related height in metres.
	GravityRelatedUp = MustNew(Vertical, "Vertical CS. Axis: height (H). Orientation: up. UoM: m",
		GravityRelatedHeight).WithIdentifiers(Identifier{"EPSG", "6499"})
)
