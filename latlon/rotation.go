package latlon

import "github.com/a-bouts/spherical/angle"

// Rotations about the frame axes. The sign convention is shared by Bearing
// and Project; results are not renormalised.

func RotateX(v Vector, a float64) Vector {
	sin, cos := angle.Sin(a), angle.Cos(a)
	return Vector{
		X: v.X,
		Y: v.Y*cos + v.Z*sin,
		Z: v.Z*cos - v.Y*sin,
	}
}

func RotateY(v Vector, a float64) Vector {
	sin, cos := angle.Sin(a), angle.Cos(a)
	return Vector{
		X: v.X*cos - v.Z*sin,
		Y: v.Y,
		Z: v.Z*cos + v.X*sin,
	}
}

func RotateZ(v Vector, a float64) Vector {
	sin, cos := angle.Sin(a), angle.Cos(a)
	return Vector{
		X: v.X*cos + v.Y*sin,
		Y: v.Y*cos - v.X*sin,
		Z: v.Z,
	}
}
