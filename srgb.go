package pixelfmt

import "math"

// ToSRGB applies the sRGB opto-electronic transfer function to a
// linear value. The piecewise breakpoint is 0.0031308; round-tripping
// through 8-bit sRGB storage depends on it exactly.
func ToSRGB(x float32) float32 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*float32(math.Pow(float64(x), 1.0/2.4)) - 0.055
}

// FromSRGB applies the inverse transfer function to an sRGB-encoded
// value. The breakpoint 0.040449907 is ToSRGB(0.0031308).
func FromSRGB(x float32) float32 {
	if x <= 0.040449907 {
		return x / 12.92
	}
	return float32(math.Pow(float64(x+0.055)/1.055, 2.4))
}
