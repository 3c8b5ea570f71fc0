package pixelfmt

import (
	"math"
	"testing"
)

func TestSRGBEndpoints(t *testing.T) {
	if got := ToSRGB(0); got != 0 {
		t.Errorf("ToSRGB(0) = %g, want 0", got)
	}
	if got := FromSRGB(0); got != 0 {
		t.Errorf("FromSRGB(0) = %g, want 0", got)
	}
	if got := ToSRGB(1); math.Abs(float64(got-1)) > 1e-6 {
		t.Errorf("ToSRGB(1) = %g, want 1", got)
	}
	if got := FromSRGB(1); math.Abs(float64(got-1)) > 1e-6 {
		t.Errorf("FromSRGB(1) = %g, want 1", got)
	}
}

func TestSRGBLinearSegment(t *testing.T) {
	// Below the breakpoint the curve is the linear ramp x*12.92.
	x := float32(0.002)
	if got, want := ToSRGB(x), x*12.92; math.Abs(float64(got-want)) > 1e-7 {
		t.Errorf("ToSRGB(%g) = %g, want %g", x, got, want)
	}
	y := float32(0.02)
	if got, want := FromSRGB(y), y/12.92; math.Abs(float64(got-want)) > 1e-7 {
		t.Errorf("FromSRGB(%g) = %g, want %g", y, got, want)
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, x := range []float32{0.001, 0.0031308, 0.01, 0.18, 0.5, 0.73, 0.99} {
		got := FromSRGB(ToSRGB(x))
		if math.Abs(float64(got-x)) > 1e-5 {
			t.Errorf("FromSRGB(ToSRGB(%g)) = %g", x, got)
		}
	}
}

func TestSRGBMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := ToSRGB(float32(i) / 100)
		if v < prev {
			t.Fatalf("ToSRGB not monotonic at %d/100", i)
		}
		prev = v
	}
}
