package angle

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidAngle = errors.New("invalid angle")

var (
	numberExp       = regexp.MustCompile(`^\d+(\.\d+)?`)
	negativeSignExp = regexp.MustCompile(`(?i)^[-ws]|[ws]$`)
	signExp         = regexp.MustCompile(`(?i)^[-+ewns]|[ewns]$`)
	separatorExp    = regexp.MustCompile(`^([\s\p{Zs}]*[°'"][\s\p{Zs}]*|[\s\p{Zs}]+)`)
)

// Parse reads an angle such as `40° 26' 46" N`, `-10.5°` or `79 58 56 W` and
// returns it in signed decimal degrees. Tokens without a unit suffix take the
// unit following the previous token, degrees then minutes then seconds.
// It returns NaN when some of the text could not be consumed.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	negative := negativeSignExp.MatchString(s)

	// only the first sign found is dropped
	if loc := signExp.FindStringIndex(s); loc != nil {
		s = strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
	}

	unit := 1.0
	sum := 0.0
	for s != "" {
		number := numberExp.FindString(s)
		if number == "" {
			break
		}
		value, err := strconv.ParseFloat(number, 64)
		if err != nil {
			break
		}
		s = s[len(number):]

		if s == "" {
			sum += value * unit
			break
		}

		sep := separatorExp.FindString(s)
		if sep == "" {
			break
		}
		s = s[len(sep):]

		switch strings.TrimSpace(sep) {
		case "°":
			unit = 1
		case "'":
			unit = 1.0 / 60
		case `"`:
			unit = 1.0 / 3600
		}
		sum += value * unit
		unit /= 60
	}

	if s != "" {
		return math.NaN()
	}
	if negative {
		return -sum
	}
	return sum
}

// ParseStrict is Parse for callers that want an error, empty input included.
func ParseStrict(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAngle)
	}
	a := Parse(s)
	if math.IsNaN(a) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
	}
	return a, nil
}
