package models

import "math"

// EarthRadiusKm is the mean earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates validates the given latitude and longitude and returns a Coordinates value
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinates{}, &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return Coordinates{}, &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 { return c.lat }

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 { return c.lon }

// DistanceTo returns the haversine distance to other in kilometers.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	lat1 := toRadians(c.lat)
	lat2 := toRadians(other.lat)
	dLat := toRadians(other.lat - c.lat)
	dLon := toRadians(other.lon - c.lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(1, a)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a lat/lon rectangle used as a cheap pre-filter before exact distance checks.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBoxAround returns a box that contains every point within radiusKm of c.
// A circle crossing the antimeridian gets the full longitude range.
func (c Coordinates) BoundingBoxAround(radiusKm float64) BoundingBox {
	latDelta := radiusKm / 111.0
	lonDelta := 180.0
	if cos := math.Cos(toRadians(c.lat)); cos > 1e-6 {
		lonDelta = math.Min(180, radiusKm/(111.0*cos))
	}
	box := BoundingBox{
		MinLat: math.Max(-90, c.lat-latDelta),
		MaxLat: math.Min(90, c.lat+latDelta),
		MinLon: c.lon - lonDelta,
		MaxLon: c.lon + lonDelta,
	}
	if box.MinLon < -180 || box.MaxLon > 180 {
		box.MinLon, box.MaxLon = -180, 180
	}
	return box
}

// Contains reports whether p lies inside the box.
func (b BoundingBox) Contains(p Coordinates) bool {
	return p.lat >= b.MinLat && p.lat <= b.MaxLat && p.lon >= b.MinLon && p.lon <= b.MaxLon
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
