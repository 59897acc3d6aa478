// Package angle provides degree based trigonometry, rounding and the
// formatting and parsing of angles written in degree-minute-second notation.
package angle

import (
	"fmt"
	"math"
)

const π = math.Pi

// DefaultDigits is the number of decimals kept by callers that do not
// configure their own precision.
const DefaultDigits = 8

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

func Sin(deg float64) float64 {
	return math.Sin(ToRadians(deg))
}

func Cos(deg float64) float64 {
	return math.Cos(ToRadians(deg))
}

func Tan(deg float64) float64 {
	return math.Tan(ToRadians(deg))
}

func Asin(sin float64) float64 {
	return ToDegrees(math.Asin(sin))
}

func Acos(cos float64) float64 {
	return ToDegrees(math.Acos(cos))
}

func Atan(tan float64) float64 {
	return ToDegrees(math.Atan(tan))
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	if math.IsInf(v*p, 0) {
		return v
	}
	return math.Round(v*p) / p
}

// ToMinutes formats deg as "D° M.M'", or "M.M'" below one degree.
func ToMinutes(deg float64) string {
	abs := math.Abs(deg)
	totalMin := Round(abs*60, 1)
	min := Round(math.Mod(totalMin, 60), 1)
	totalDeg := math.Round((totalMin - min) / 60)

	// math.Mod can leave 59.99.. which rounds up to a full degree
	if min >= 60 {
		min -= 60
		totalDeg++
	}

	sign := ""
	if deg < 0 {
		sign = "-"
	}

	if totalDeg > 0 {
		return fmt.Sprintf("%s%d° %.1f'", sign, int64(totalDeg), min)
	}
	return fmt.Sprintf("%s%.1f'", sign, min)
}

func Wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

func Wrap180(d float64) float64 {
	if -180.0 < d && d <= 180.0 {
		return d
	}
	d = Wrap360(d)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}
