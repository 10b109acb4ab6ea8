// Package geo provides ground distance math for the matching sweep.
package geo

import "math"

// earthRadiusMeters is Earth's mean radius.
const earthRadiusMeters = 6371000.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the ground distance between two points in meters, using
// an equirectangular approximation: the longitude delta is scaled by the
// cosine of the mean latitude and combined with the latitude delta via the
// Euclidean norm. Accurate at city scale, which is the only range radii
// operate over. Deterministic and symmetric; Distance(p, p) == 0.
func Distance(a, b Point) float64 {
	aLat := radians(a.Latitude)
	aLng := radians(a.Longitude)
	bLat := radians(b.Latitude)
	bLng := radians(b.Longitude)

	dLat := bLat - aLat
	dLng := (bLng - aLng) * math.Cos(0.5*(bLat+aLat))

	return earthRadiusMeters * math.Sqrt(dLat*dLat+dLng*dLng)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
