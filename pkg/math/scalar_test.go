package math

import (
	"math"
	"testing"
)

func TestDegRadConversion(t *testing.T) {
	if got := DegToRad(180); !near(got, math.Pi, 1e-6) {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(math.Pi / 2); !near(got, 90, 1e-4) {
		t.Errorf("RadToDeg(pi/2) = %v, want 90", got)
	}
	for _, deg := range []float32{0, 30, 45, 123.5, -270} {
		if got := RadToDeg(DegToRad(deg)); !near(got, deg, 1e-3) {
			t.Errorf("round trip of %v degrees = %v", deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5, 0, 1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5, 0, 1) = %v, want 0.5", got)
	}
}

func TestLerpScalar(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2, 4, 0) = %v, want 2", got)
	}
	if got := Lerp(2, 4, 2); got != 6 {
		t.Errorf("Lerp(2, 4, 2) = %v, want 6 (extrapolated)", got)
	}
}

func TestEqualApproxScalar(t *testing.T) {
	if !EqualApprox(1, 1+5e-7) {
		t.Error("EqualApprox should accept sub-epsilon difference")
	}
	if EqualApprox(1, 1.001) {
		t.Error("EqualApprox should reject difference above epsilon")
	}
}
