// Package latlon converts geographic coordinates to unit vectors on the
// sphere and computes great-circle distances, bearings and paths.
//
// Vectors use a frame where the north pole is +Y and the point at latitude 0,
// longitude 0 is +Z; longitude 90 is +X. Angles are in degrees throughout.
// Longitudes are never wrapped: callers needing [-180, 180] apply
// angle.Wrap180 themselves.
package latlon

import "math"

const π = math.Pi

// DegreeRadius is the radius at which distances are expressed in degrees of arc.
const DegreeRadius = 180.0 / π

// EarthRadius is the mean Earth radius in metres.
const EarthRadius = 6371008.8

// Length of a unit in metres, for use as a divisor of metric distances.
const (
	Inches        = 0.0254
	Feet          = 0.3048
	Miles         = 1609.344
	NauticalMiles = 1852.0
)

type LatLonInterface interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) LatLon
	Intermediate(from, to LatLon, fraction float64) LatLon
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (ll LatLon) Vector() Vector {
	return CoordToVector(ll.Lat, ll.Lon)
}

func CoordsToVectors(lls []LatLon) []Vector {
	vs := make([]Vector, len(lls))
	for i, ll := range lls {
		vs[i] = ll.Vector()
	}
	return vs
}
