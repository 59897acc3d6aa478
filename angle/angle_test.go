package angle

import (
	"math"
	"testing"
)

func TestTrig(t *testing.T) {
	if Round(Sin(30), DefaultDigits) != 0.5 {
		t.Errorf("Sin(30) = %f; want 0.5", Sin(30))
	}
	if Round(Cos(60), DefaultDigits) != 0.5 {
		t.Errorf("Cos(60) = %f; want 0.5", Cos(60))
	}
	if Round(Tan(45), DefaultDigits) != 1.0 {
		t.Errorf("Tan(45) = %f; want 1.0", Tan(45))
	}
	if Round(Asin(0.5), DefaultDigits) != 30.0 {
		t.Errorf("Asin(0.5) = %f; want 30", Asin(0.5))
	}
	if Round(Acos(0.5), DefaultDigits) != 60.0 {
		t.Errorf("Acos(0.5) = %f; want 60", Acos(0.5))
	}
	if Round(Atan(1), DefaultDigits) != 45.0 {
		t.Errorf("Atan(1) = %f; want 45", Atan(1))
	}
}

func TestRound(t *testing.T) {
	if r := Round(1.23456789012, 8); r != 1.23456789 {
		t.Errorf("Round(1.23456789012, 8) = %.12f; want 1.23456789", r)
	}
	if r := Round(2.5, 0); r != 3 {
		t.Errorf("Round(2.5, 0) = %f; want 3", r)
	}
	if r := Round(-0.25, 1); r != -0.3 {
		t.Errorf("Round(-0.25, 1) = %f; want -0.3", r)
	}
	if r := Round(0.1+0.2, DefaultDigits); r != 0.3 {
		t.Errorf("Round(0.1+0.2) = %.17f; want 0.3", r)
	}
	if r := Round(1e305, DefaultDigits); r != 1e305 {
		t.Errorf("Round(1e305, 8) = %g; want 1e305", r)
	}
	if r := Round(-math.MaxFloat64, DefaultDigits); r != -math.MaxFloat64 {
		t.Errorf("Round(-MaxFloat64, 8) = %g; want -MaxFloat64", r)
	}
}

func TestToMinutes(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{10.5, "10° 30.0'"},
		{-10.5, "-10° 30.0'"},
		{0.5, "30.0'"},
		{-0.25, "-15.0'"},
		{0, "0.0'"},
		{40.446111, "40° 26.8'"},
		{10.999999, "11° 0.0'"},
		{-1.9999999, "-2° 0.0'"},
		{59.99999, "60° 0.0'"},
	}

	for _, tt := range tests {
		if got := ToMinutes(tt.deg); got != tt.want {
			t.Errorf("ToMinutes(%f) = %q; want %q", tt.deg, got, tt.want)
		}
	}
}

func TestWrap360(t *testing.T) {
	a := Wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("Wrap360(-1) = %f; want 359.0", a)
	}
	b := Wrap360(361.0)
	if b != 1.0 {
		t.Errorf("Wrap360(361.0) = %f; want 1.0", b)
	}
	c := Wrap360(-721.0)
	if c != 359.0 {
		t.Errorf("Wrap360(-721.0) = %f; want 359.0", c)
	}
	if d := Wrap360(360.0); d != 0 {
		t.Errorf("Wrap360(360.0) = %f; want 0", d)
	}
}

func TestWrap180(t *testing.T) {
	if a := Wrap180(190.0); a != -170.0 {
		t.Errorf("Wrap180(190) = %f; want -170", a)
	}
	if a := Wrap180(-180.0); a != 180.0 {
		t.Errorf("Wrap180(-180) = %f; want 180", a)
	}
	if a := Wrap180(-190.0); a != 170.0 {
		t.Errorf("Wrap180(-190) = %f; want 170", a)
	}
	if a := Wrap180(45.0); a != 45.0 {
		t.Errorf("Wrap180(45) = %f; want 45", a)
	}
	if a := math.Round(Wrap180(540.5)*10) / 10; a != 180.5-360 {
		t.Errorf("Wrap180(540.5) = %f; want -179.5", a)
	}
}
