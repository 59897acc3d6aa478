package latlon

import (
	"math"

	"github.com/a-bouts/spherical/angle"
)

// Haversine returns the great-circle distance between two points on a sphere
// of the given radius, using the spherical law of cosines. With DegreeRadius
// the result is in degrees of arc.
func Haversine(lat1, lon1, lat2, lon2, radius float64) float64 {
	// sin²+cos² often lands just under 1, which acos turns into ~1e-6 degrees
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	c := angle.Sin(lat1)*angle.Sin(lat2) +
		angle.Cos(lat1)*angle.Cos(lat2)*angle.Cos(lon1-lon2)

	// rounding can push c past ±1 for nearly (anti)coincident points
	c = math.Max(-1, math.Min(1, c))

	return angle.ToRadians(angle.Acos(c)) * radius
}

// SignedAngle returns the angle of (adj, opp) from the adjacent axis, in
// (-180, 180].
func SignedAngle(adj, opp float64) float64 {
	l := math.Sqrt(adj*adj + opp*opp)
	if l == 0 {
		return 0
	}
	α := angle.Acos(adj / l)
	if opp < 0 {
		return -α
	}
	return α
}

// UnsignedAngle is SignedAngle in [0, 360).
func UnsignedAngle(adj, opp float64) float64 {
	l := math.Sqrt(adj*adj + opp*opp)
	if l == 0 {
		return 0
	}
	α := angle.Acos(adj / l)
	if opp < 0 {
		return 360 - α
	}
	return α
}

// Bearing returns the initial great-circle bearing from the first point to
// the second, clockwise from north in [0, 360).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	v := CoordToVector(lat2, lon2)

	// bring the origin to lat 0 lon 0, north on +Y and east on +X
	v = RotateY(v, lon1)
	v = RotateX(v, -lat1)

	return UnsignedAngle(v.Y, v.X)
}
