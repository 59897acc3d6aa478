package latlon

import "github.com/a-bouts/spherical/angle"

// Sphere measures distances in units of its radius.
type Sphere struct {
	Radius float64
}

func (s Sphere) DistanceTo(from, to LatLon) float64 {
	return Haversine(from.Lat, from.Lon, to.Lat, to.Lon, s.Radius)
}

func (s Sphere) BearingTo(from, to LatLon) float64 {
	return Bearing(from.Lat, from.Lon, to.Lat, to.Lon)
}

func (s Sphere) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return s.DistanceTo(from, to), s.BearingTo(from, to)
}

func (s Sphere) Destination(from LatLon, bearing float64, distance float64) LatLon {
	δ := angle.ToDegrees(distance / s.Radius)

	return Project(from.Lat, from.Lon, bearing, δ)
}

func (s Sphere) Intermediate(from, to LatLon, fraction float64) LatLon {
	return Interpolate(from.Lat, from.Lon, to.Lat, to.Lon, fraction)
}
