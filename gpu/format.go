// Package gpu maps pixelfmt formats to and from the WebGPU texture
// formats defined by github.com/gogpu/gputypes.
//
// The registry is a superset of WebGPU: legacy packed 16-bit layouts,
// BGRX, RGB32, 16-bit UNORM/SNORM, PVRTC, ATC, and the video/palette
// placeholders have no WebGPU equivalent and map to
// gputypes.TextureFormatUndefined.
package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixelfmt"
)

// toTexture holds the forward mapping. Formats absent here are not
// representable in WebGPU.
var toTexture = map[pixelfmt.PixelFormat]gputypes.TextureFormat{
	pixelfmt.FormatRGBA32Float: gputypes.TextureFormatRGBA32Float,
	pixelfmt.FormatRGBA32Uint:  gputypes.TextureFormatRGBA32Uint,
	pixelfmt.FormatRGBA32Sint:  gputypes.TextureFormatRGBA32Sint,

	pixelfmt.FormatRGBA16Float: gputypes.TextureFormatRGBA16Float,
	pixelfmt.FormatRGBA16Uint:  gputypes.TextureFormatRGBA16Uint,
	pixelfmt.FormatRGBA16Sint:  gputypes.TextureFormatRGBA16Sint,

	pixelfmt.FormatRG32Float: gputypes.TextureFormatRG32Float,
	pixelfmt.FormatRG32Uint:  gputypes.TextureFormatRG32Uint,
	pixelfmt.FormatRG32Sint:  gputypes.TextureFormatRG32Sint,

	pixelfmt.FormatD32FloatS8X24Uint: gputypes.TextureFormatDepth32FloatStencil8,

	pixelfmt.FormatR10G10B10A2Unorm: gputypes.TextureFormatRGB10A2Unorm,
	pixelfmt.FormatR10G10B10A2Uint:  gputypes.TextureFormatRGB10A2Uint,
	pixelfmt.FormatR11G11B10Float:   gputypes.TextureFormatRG11B10Ufloat,

	pixelfmt.FormatRGBA8Unorm:     gputypes.TextureFormatRGBA8Unorm,
	pixelfmt.FormatRGBA8UnormSrgb: gputypes.TextureFormatRGBA8UnormSrgb,
	pixelfmt.FormatRGBA8Uint:      gputypes.TextureFormatRGBA8Uint,
	pixelfmt.FormatRGBA8Snorm:     gputypes.TextureFormatRGBA8Snorm,
	pixelfmt.FormatRGBA8Sint:      gputypes.TextureFormatRGBA8Sint,

	pixelfmt.FormatRG16Float: gputypes.TextureFormatRG16Float,
	pixelfmt.FormatRG16Uint:  gputypes.TextureFormatRG16Uint,
	pixelfmt.FormatRG16Sint:  gputypes.TextureFormatRG16Sint,

	pixelfmt.FormatD32Float: gputypes.TextureFormatDepth32Float,
	pixelfmt.FormatR32Float: gputypes.TextureFormatR32Float,
	pixelfmt.FormatR32Uint:  gputypes.TextureFormatR32Uint,
	pixelfmt.FormatR32Sint:  gputypes.TextureFormatR32Sint,

	pixelfmt.FormatD24Unorm:       gputypes.TextureFormatDepth24Plus,
	pixelfmt.FormatD24UnormS8Uint: gputypes.TextureFormatDepth24PlusStencil8,

	pixelfmt.FormatRG8Unorm: gputypes.TextureFormatRG8Unorm,
	pixelfmt.FormatRG8Uint:  gputypes.TextureFormatRG8Uint,
	pixelfmt.FormatRG8Snorm: gputypes.TextureFormatRG8Snorm,
	pixelfmt.FormatRG8Sint:  gputypes.TextureFormatRG8Sint,

	pixelfmt.FormatR16Float: gputypes.TextureFormatR16Float,
	pixelfmt.FormatD16Unorm: gputypes.TextureFormatDepth16Unorm,
	pixelfmt.FormatR16Uint:  gputypes.TextureFormatR16Uint,
	pixelfmt.FormatR16Sint:  gputypes.TextureFormatR16Sint,

	pixelfmt.FormatR8Unorm: gputypes.TextureFormatR8Unorm,
	pixelfmt.FormatR8Uint:  gputypes.TextureFormatR8Uint,
	pixelfmt.FormatR8Snorm: gputypes.TextureFormatR8Snorm,
	pixelfmt.FormatR8Sint:  gputypes.TextureFormatR8Sint,

	pixelfmt.FormatR9G9B9E5SharedExp: gputypes.TextureFormatRGB9E5Ufloat,

	pixelfmt.FormatBGRA8Unorm:     gputypes.TextureFormatBGRA8Unorm,
	pixelfmt.FormatBGRA8UnormSrgb: gputypes.TextureFormatBGRA8UnormSrgb,

	pixelfmt.FormatBC1Unorm:     gputypes.TextureFormatBC1RGBAUnorm,
	pixelfmt.FormatBC1UnormSrgb: gputypes.TextureFormatBC1RGBAUnormSrgb,
	pixelfmt.FormatBC2Unorm:     gputypes.TextureFormatBC2RGBAUnorm,
	pixelfmt.FormatBC2UnormSrgb: gputypes.TextureFormatBC2RGBAUnormSrgb,
	pixelfmt.FormatBC3Unorm:     gputypes.TextureFormatBC3RGBAUnorm,
	pixelfmt.FormatBC3UnormSrgb: gputypes.TextureFormatBC3RGBAUnormSrgb,
	pixelfmt.FormatBC4Unorm:     gputypes.TextureFormatBC4RUnorm,
	pixelfmt.FormatBC4Snorm:     gputypes.TextureFormatBC4RSnorm,
	pixelfmt.FormatBC5Unorm:     gputypes.TextureFormatBC5RGUnorm,
	pixelfmt.FormatBC5Snorm:     gputypes.TextureFormatBC5RGSnorm,
	pixelfmt.FormatBC6HUF16:     gputypes.TextureFormatBC6HRGBUfloat,
	pixelfmt.FormatBC6HSF16:     gputypes.TextureFormatBC6HRGBFloat,
	pixelfmt.FormatBC7Unorm:     gputypes.TextureFormatBC7RGBAUnorm,
	pixelfmt.FormatBC7UnormSrgb: gputypes.TextureFormatBC7RGBAUnormSrgb,

	pixelfmt.FormatETC2RGB8Unorm:       gputypes.TextureFormatETC2RGB8Unorm,
	pixelfmt.FormatETC2RGB8UnormSrgb:   gputypes.TextureFormatETC2RGB8UnormSrgb,
	pixelfmt.FormatETC2RGB8A1Unorm:     gputypes.TextureFormatETC2RGB8A1Unorm,
	pixelfmt.FormatETC2RGB8A1UnormSrgb: gputypes.TextureFormatETC2RGB8A1UnormSrgb,
	pixelfmt.FormatETC2RGBA8Unorm:      gputypes.TextureFormatETC2RGBA8Unorm,
	pixelfmt.FormatETC2RGBA8UnormSrgb:  gputypes.TextureFormatETC2RGBA8UnormSrgb,
	pixelfmt.FormatEACR11Unorm:         gputypes.TextureFormatEACR11Unorm,
	pixelfmt.FormatEACR11Snorm:         gputypes.TextureFormatEACR11Snorm,
	pixelfmt.FormatEACR11G11Unorm:      gputypes.TextureFormatEACRG11Unorm,
	pixelfmt.FormatEACR11G11Snorm:      gputypes.TextureFormatEACRG11Snorm,
}

// fromTexture is the inverse of toTexture, built once at init.
var fromTexture = func() map[gputypes.TextureFormat]pixelfmt.PixelFormat {
	m := make(map[gputypes.TextureFormat]pixelfmt.PixelFormat, len(toTexture))
	for pf, tf := range toTexture {
		m[tf] = pf
	}
	return m
}()

// ToTextureFormat returns the WebGPU texture format equivalent to f.
// The second result is false when f has no WebGPU representation; the
// first result is then TextureFormatUndefined.
func ToTextureFormat(f pixelfmt.PixelFormat) (gputypes.TextureFormat, bool) {
	tf, ok := toTexture[f]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return tf, true
}

// FromTextureFormat returns the registry format equivalent to tf, or
// FormatUnknown when the WebGPU format is not enumerated here.
func FromTextureFormat(tf gputypes.TextureFormat) pixelfmt.PixelFormat {
	pf, ok := fromTexture[tf]
	if !ok {
		return pixelfmt.FormatUnknown
	}
	return pf
}
