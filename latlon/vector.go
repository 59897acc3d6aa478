package latlon

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/a-bouts/spherical/angle"
)

// Vector is a point on, or a direction from the centre of, the unit sphere.
type Vector r3.Vec

func CoordToVector(lat, lon float64) Vector {
	return Vector{
		X: angle.Sin(lon) * angle.Cos(lat),
		Y: angle.Sin(lat),
		Z: angle.Cos(lon) * angle.Cos(lat),
	}
}

// poleEpsilon is the distance from the Y axis under which a vector is taken
// to be on a pole. cos(90°) is 6e-17, not 0.
const poleEpsilon = 1e-12

// VectorToCoord is the inverse of CoordToVector. On the poles the longitude
// is undefined and 0 is returned.
func VectorToCoord(v Vector) LatLon {
	// rotations can leave y one ulp past ±1
	lat := angle.Asin(math.Max(-1, math.Min(1, v.Y)))
	l := math.Sqrt(v.X*v.X + v.Z*v.Z)
	if l < poleEpsilon {
		return LatLon{Lat: lat, Lon: 0}
	}
	lon := angle.Acos(v.Z / l)
	if v.X < 0 {
		lon = -lon
	}
	return LatLon{Lat: lat, Lon: lon}
}

func (v Vector) LatLon() LatLon {
	return VectorToCoord(v)
}

// VectorDistance is the chord length between a and b.
func VectorDistance(a, b Vector) float64 {
	return r3.Norm(r3.Sub(r3.Vec(a), r3.Vec(b)))
}

func VectorLength(v Vector) float64 {
	return VectorDistance(Vector{}, v)
}

// Normalize scales v to unit length. The zero vector gives NaN components.
func Normalize(v Vector) Vector {
	return Vector(r3.Scale(1/VectorLength(v), r3.Vec(v)))
}

func lerp(a, b Vector, t float64) Vector {
	return Vector(r3.Add(r3.Vec(a), r3.Scale(t, r3.Sub(r3.Vec(b), r3.Vec(a)))))
}
