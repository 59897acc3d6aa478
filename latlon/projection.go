package latlon

import (
	"math"

	"github.com/a-bouts/spherical/angle"
)

// Project returns the point reached from (lat, lon) heading azimuth for an
// angular distance, both in degrees.
func Project(lat, lon, azimuth, distance float64) LatLon {
	v := Vector{
		X: angle.Sin(azimuth) * angle.Sin(distance),
		Y: angle.Cos(azimuth) * angle.Sin(distance),
		Z: angle.Cos(distance),
	}

	v = RotateX(v, lat)
	v = RotateY(v, -lon)

	return v.LatLon()
}

// Interpolate returns the point at fraction t of the great-circle arc between
// two points, moving at constant angular speed. Antipodal points have no
// defined arc and give NaN at t = 0.5.
func Interpolate(lat1, lon1, lat2, lon2, t float64) LatLon {
	v1 := CoordToVector(lat1, lon1)
	v2 := CoordToVector(lat2, lon2)

	h := VectorDistance(v1, v2) / 2
	if h == 0 {
		return LatLon{Lat: lat1, Lon: lon1}
	}

	// map t to the chord parameter of the same point
	l := math.Sqrt(1 - h*h)
	θ := angle.Asin(h)
	s := l * angle.Tan(θ*(1-2*t))
	t2 := (1 - s/h) / 2

	return Normalize(lerp(v1, v2, t2)).LatLon()
}

// Path returns n+1 points evenly spaced along the arc, from and to included.
func Path(from, to LatLon, n int) []LatLon {
	if n < 1 {
		return []LatLon{from, to}
	}
	lls := make([]LatLon, n+1)
	for i := 0; i <= n; i++ {
		lls[i] = Interpolate(from.Lat, from.Lon, to.Lat, to.Lon, float64(i)/float64(n))
	}
	lls[0] = from
	lls[n] = to
	return lls
}
