package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixelfmt"
)

func TestToTextureFormat(t *testing.T) {
	tests := []struct {
		f    pixelfmt.PixelFormat
		want gputypes.TextureFormat
		ok   bool
	}{
		{pixelfmt.FormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm, true},
		{pixelfmt.FormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb, true},
		{pixelfmt.FormatD24UnormS8Uint, gputypes.TextureFormatDepth24PlusStencil8, true},
		{pixelfmt.FormatR11G11B10Float, gputypes.TextureFormatRG11B10Ufloat, true},
		{pixelfmt.FormatBC6HUF16, gputypes.TextureFormatBC6HRGBUfloat, true},
		{pixelfmt.FormatEACR11G11Snorm, gputypes.TextureFormatEACRG11Snorm, true},
		// No WebGPU equivalents.
		{pixelfmt.FormatB5G6R5Unorm, gputypes.TextureFormatUndefined, false},
		{pixelfmt.FormatBGRX8Unorm, gputypes.TextureFormatUndefined, false},
		{pixelfmt.FormatPVRTCRGB4, gputypes.TextureFormatUndefined, false},
		{pixelfmt.FormatATCRGB, gputypes.TextureFormatUndefined, false},
		{pixelfmt.FormatRGB32Float, gputypes.TextureFormatUndefined, false},
		{pixelfmt.FormatUnknown, gputypes.TextureFormatUndefined, false},
	}

	for _, tt := range tests {
		got, ok := ToTextureFormat(tt.f)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToTextureFormat(%v) = (%v, %v), want (%v, %v)",
				tt.f, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromTextureFormat(t *testing.T) {
	if got := FromTextureFormat(gputypes.TextureFormatRGBA8Unorm); got != pixelfmt.FormatRGBA8Unorm {
		t.Errorf("FromTextureFormat(RGBA8Unorm) = %v", got)
	}
	if got := FromTextureFormat(gputypes.TextureFormatUndefined); got != pixelfmt.FormatUnknown {
		t.Errorf("FromTextureFormat(Undefined) = %v, want FormatUnknown", got)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	// Every mapped format must survive the round trip; the forward map
	// must therefore also be injective.
	for f := pixelfmt.FormatUnknown + 1; f < pixelfmt.FormatCount; f++ {
		tf, ok := ToTextureFormat(f)
		if !ok {
			continue
		}
		if back := FromTextureFormat(tf); back != f {
			t.Errorf("round trip %v -> %v -> %v", f, tf, back)
		}
	}
}
