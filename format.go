package pixelfmt

import "fmt"

// PixelFormat identifies a GPU-addressable pixel/texel storage format.
//
// The enumeration is closed and densely numbered: FormatUnknown is 0,
// FormatCount is one past the last real format, and ordinals never
// change between versions. The ordinal doubles as the registry index.
type PixelFormat uint32

// FormatFlags is a bit set describing the numeric encoding of a format.
//
// Exactly one of FlagFloat, FlagHalf, FlagFloatRare, FlagInteger
// (optionally with FlagSigned/FlagNormalized), FlagCompressed,
// FlagPalette, or none characterizes a format's encoding family.
// FlagDepth, FlagStencil and FlagSRGB are orthogonal modifiers.
type FormatFlags uint32

const (
	// FlagFloat marks 32-bit IEEE float components.
	FlagFloat FormatFlags = 1 << iota

	// FlagHalf marks 16-bit half-float components.
	FlagHalf

	// FlagFloatRare marks exotic float layouts (shared exponent,
	// packed 11/10-bit floats) with no per-texel codec.
	FlagFloatRare

	// FlagInteger marks integer storage.
	FlagInteger

	// FlagSigned marks signed storage.
	FlagSigned

	// FlagNormalized marks fixed-point storage mapped to [0,1] or [-1,1].
	FlagNormalized

	// FlagDepth marks formats with a depth component.
	FlagDepth

	// FlagStencil marks formats with a stencil component.
	FlagStencil

	// FlagSRGB marks formats stored through the sRGB transfer curve.
	FlagSRGB

	// FlagCompressed marks block-compressed formats. Their texels are
	// not individually addressable; BytesPerPixel is 0.
	FlagCompressed

	// FlagPalette marks palettized formats.
	FlagPalette
)

// flagsCompressedCommon is the flag combination shared by every
// block-compressed normalized-integer format.
const flagsCompressedCommon = FlagCompressed | FlagInteger | FlagNormalized

// The full format enumeration. Ordering is load-bearing: it is the
// registry index and part of the serialized contract.
const (
	// FormatUnknown is the zero sentinel; never a valid storage format.
	FormatUnknown PixelFormat = iota

	// 32 bits per channel.
	FormatRGBA32Float
	FormatRGBA32Uint
	FormatRGBA32Sint
	FormatRGB32Float
	FormatRGB32Uint
	FormatRGB32Sint

	// 16 bits per channel.
	FormatRGBA16Float
	FormatRGBA16Unorm
	FormatRGBA16Uint
	FormatRGBA16Snorm
	FormatRGBA16Sint

	FormatRG32Float
	FormatRG32Uint
	FormatRG32Sint

	FormatD32FloatS8X24Uint

	// Packed 32-bit layouts.
	FormatR10G10B10A2Unorm
	FormatR10G10B10A2Uint
	FormatR11G11B10Float

	// 8 bits per channel.
	FormatRGBA8Unorm
	FormatRGBA8UnormSrgb
	FormatRGBA8Uint
	FormatRGBA8Snorm
	FormatRGBA8Sint

	FormatRG16Float
	FormatRG16Unorm
	FormatRG16Uint
	FormatRG16Snorm
	FormatRG16Sint

	FormatD32Float
	FormatR32Float
	FormatR32Uint
	FormatR32Sint

	FormatD24Unorm
	FormatD24UnormS8Uint

	FormatRG8Unorm
	FormatRG8Uint
	FormatRG8Snorm
	FormatRG8Sint

	FormatR16Float
	FormatD16Unorm
	FormatR16Unorm
	FormatR16Uint
	FormatR16Snorm
	FormatR16Sint

	FormatR8Unorm
	FormatR8Uint
	FormatR8Snorm
	FormatR8Sint
	FormatA8Unorm
	FormatR1Unorm

	FormatR9G9B9E5SharedExp

	FormatR8G8B8G8Unorm
	FormatG8R8G8B8Unorm

	// Block compression (desktop).
	FormatBC1Unorm
	FormatBC1UnormSrgb
	FormatBC2Unorm
	FormatBC2UnormSrgb
	FormatBC3Unorm
	FormatBC3UnormSrgb
	FormatBC4Unorm
	FormatBC4Snorm
	FormatBC5Unorm
	FormatBC5Snorm

	// Legacy 16-bit and BGR-ordered layouts.
	FormatB5G6R5Unorm
	FormatB5G5R5A1Unorm
	FormatBGRA8Unorm
	FormatBGRX8Unorm
	FormatR10G10B10XRBiasA2Unorm
	FormatBGRA8UnormSrgb
	FormatBGRX8UnormSrgb

	FormatBC6HUF16
	FormatBC6HSF16
	FormatBC7Unorm
	FormatBC7UnormSrgb

	// Video/YUV placeholders. Inert metadata: no codec, no sizing.
	FormatAYUV
	FormatY410
	FormatY416
	FormatNV12
	FormatP010
	FormatP016
	Format420Opaque
	FormatYUY2
	FormatY210
	FormatY216
	FormatNV11
	FormatAI44
	FormatIA44
	FormatP8
	FormatA8P8
	FormatB4G4R4A4Unorm
	FormatP208
	FormatV208
	FormatV408

	// Block compression (mobile).
	FormatPVRTCRGB2
	FormatPVRTCRGBA2
	FormatPVRTCRGB4
	FormatPVRTCRGBA4
	FormatPVRTC22BPP
	FormatPVRTC24BPP

	FormatETC1RGB8Unorm
	FormatETC2RGB8Unorm
	FormatETC2RGB8UnormSrgb
	FormatETC2RGBA8Unorm
	FormatETC2RGBA8UnormSrgb
	FormatETC2RGB8A1Unorm
	FormatETC2RGB8A1UnormSrgb
	FormatEACR11Unorm
	FormatEACR11Snorm
	FormatEACR11G11Unorm
	FormatEACR11G11Snorm

	FormatATCRGB
	FormatATCRGBAExplicitAlpha
	FormatATCRGBAInterpolatedAlpha

	// FormatCount is one past the last real format. It is only valid
	// as an iteration/array bound, never as a storage format.
	FormatCount
)

// Descriptor is the immutable registry entry for one PixelFormat.
type Descriptor struct {
	// Name is the stable, globally unique display string.
	Name string

	// Components is the number of logical channels (1-4).
	Components uint32

	// BytesPerPixel is the storage size of one texel in bytes.
	// It is 0 for block-compressed formats and for planar/video
	// placeholders, whose sizes are not computable per texel.
	BytesPerPixel uint32

	// Flags describes the numeric encoding family and modifiers.
	Flags FormatFlags
}

// formatDescs has FormatCount+1 entries: one per format plus the
// terminating FormatCount sentinel row. Row values reproduce the
// reference table bit-for-bit; several rows carry historical quirks
// (component counts, the *_INT name spellings) that are part of the
// compatibility surface.
var formatDescs = [FormatCount + 1]Descriptor{
	FormatUnknown: {"UNKNOWN", 1, 0, 0},

	FormatRGBA32Float: {"RGBA32_FLOAT", 4, 16, FlagFloat},
	FormatRGBA32Uint:  {"RGBA32_UINT", 4, 16, FlagInteger},
	FormatRGBA32Sint:  {"RGBA32_INT", 4, 16, FlagInteger | FlagSigned},
	FormatRGB32Float:  {"RGB32_FLOAT", 3, 12, FlagFloat},
	FormatRGB32Uint:   {"RGB32_UINT", 3, 12, FlagInteger},
	FormatRGB32Sint:   {"RGB32_INT", 3, 12, FlagInteger | FlagSigned},

	FormatRGBA16Float: {"RGBA16_FLOAT", 4, 8, FlagHalf},
	FormatRGBA16Unorm: {"RGBA16_UNORM", 4, 8, FlagInteger | FlagNormalized},
	FormatRGBA16Uint:  {"RGBA16_UINT", 4, 8, FlagInteger},
	FormatRGBA16Snorm: {"RGBA16_SNORM", 4, 8, FlagInteger | FlagSigned | FlagNormalized},
	FormatRGBA16Sint:  {"RGBA16_SINT", 4, 8, FlagInteger | FlagSigned},

	FormatRG32Float: {"RG32_FLOAT", 2, 8, FlagFloat},
	FormatRG32Uint:  {"RG32_UINT", 2, 8, FlagInteger},
	FormatRG32Sint:  {"RG32_SINT", 2, 8, FlagInteger | FlagSigned},

	FormatD32FloatS8X24Uint: {"D32_FLOAT_S8X24_UINT", 2, 8, FlagFloat | FlagDepth | FlagStencil},

	FormatR10G10B10A2Unorm: {"R10G10B10A2_UNORM", 4, 4, FlagInteger | FlagNormalized},
	FormatR10G10B10A2Uint:  {"R10G10B10A2_UINT", 4, 4, FlagInteger},
	FormatR11G11B10Float:   {"R11G11B10_FLOAT", 3, 4, FlagFloatRare},

	FormatRGBA8Unorm:     {"RGBA8_UNORM", 4, 4, FlagInteger | FlagNormalized},
	FormatRGBA8UnormSrgb: {"RGBA8_UNORM_SRGB", 4, 4, FlagInteger | FlagNormalized | FlagSRGB},
	FormatRGBA8Uint:      {"RGBA8_UINT", 4, 4, FlagInteger},
	FormatRGBA8Snorm:     {"RGBA8_SNORM", 4, 4, FlagInteger | FlagSigned | FlagNormalized},
	FormatRGBA8Sint:      {"RGBA8_SINT", 4, 4, FlagInteger | FlagSigned},

	FormatRG16Float: {"RG16_FLOAT", 2, 4, FlagHalf},
	FormatRG16Unorm: {"RG16_UNORM", 2, 4, FlagInteger | FlagNormalized},
	FormatRG16Uint:  {"RG16_UINT", 2, 4, FlagInteger},
	FormatRG16Snorm: {"RG16_SNORM", 2, 4, FlagInteger | FlagSigned | FlagNormalized},
	FormatRG16Sint:  {"RG16_SINT", 2, 4, FlagInteger | FlagSigned},

	FormatD32Float: {"D32_FLOAT", 1, 4, FlagFloat | FlagDepth},
	FormatR32Float: {"R32_FLOAT", 1, 4, FlagFloat},
	FormatR32Uint:  {"R32_UINT", 1, 4, FlagInteger},
	FormatR32Sint:  {"R32_SINT", 1, 4, FlagInteger | FlagSigned},

	FormatD24Unorm:       {"D24_UNORM", 1, 4, FlagInteger | FlagNormalized | FlagDepth},
	FormatD24UnormS8Uint: {"D24_UNORM_S8_UINT", 1, 4, FlagInteger | FlagNormalized | FlagDepth | FlagStencil},

	FormatRG8Unorm: {"RG8_UNORM", 2, 2, FlagInteger | FlagNormalized},
	FormatRG8Uint:  {"RG8_UINT", 2, 2, FlagInteger},
	FormatRG8Snorm: {"RG8_SNORM", 2, 2, FlagInteger | FlagSigned | FlagNormalized},
	FormatRG8Sint:  {"RG8_SINT", 2, 2, FlagInteger | FlagSigned},

	FormatR16Float: {"R16_FLOAT", 1, 2, FlagHalf},
	FormatD16Unorm: {"D16_UNORM", 1, 2, FlagInteger | FlagNormalized | FlagDepth},
	FormatR16Unorm: {"R16_UNORM", 1, 2, FlagInteger | FlagNormalized},
	FormatR16Uint:  {"R16_UINT", 1, 2, FlagInteger},
	FormatR16Snorm: {"R16_SNORM", 1, 2, FlagInteger | FlagSigned | FlagNormalized},
	FormatR16Sint:  {"R16_SINT", 1, 2, FlagInteger | FlagSigned},

	FormatR8Unorm: {"R8_UNORM", 1, 1, FlagInteger | FlagNormalized},
	FormatR8Uint:  {"R8_UINT", 1, 1, FlagInteger},
	FormatR8Snorm: {"R8_SNORM", 1, 1, FlagInteger | FlagSigned | FlagNormalized},
	FormatR8Sint:  {"R8_SINT", 1, 1, FlagInteger | FlagSigned},
	FormatA8Unorm: {"A8_UNORM", 1, 1, FlagInteger | FlagNormalized},
	FormatR1Unorm: {"R1_UNORM", 1, 0, 0},

	FormatR9G9B9E5SharedExp: {"R9G9B9E5_SHAREDEXP", 1, 4, FlagFloatRare},

	FormatR8G8B8G8Unorm: {"R8G8_B8G8_UNORM", 4, 4, FlagInteger | FlagNormalized},
	FormatG8R8G8B8Unorm: {"G8R8_G8B8_UNORM", 4, 4, FlagInteger | FlagSigned | FlagNormalized},

	FormatBC1Unorm:     {"BC1_UNORM", 4, 0, flagsCompressedCommon},
	FormatBC1UnormSrgb: {"BC1_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},
	FormatBC2Unorm:     {"BC2_UNORM", 4, 0, flagsCompressedCommon},
	FormatBC2UnormSrgb: {"BC2_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},
	FormatBC3Unorm:     {"BC3_UNORM", 4, 0, flagsCompressedCommon},
	FormatBC3UnormSrgb: {"BC3_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},
	FormatBC4Unorm:     {"BC4_UNORM", 1, 0, flagsCompressedCommon},
	FormatBC4Snorm:     {"BC4_SNORM", 1, 0, flagsCompressedCommon | FlagSigned},
	FormatBC5Unorm:     {"BC5_UNORM", 2, 0, flagsCompressedCommon},
	FormatBC5Snorm:     {"BC5_SNORM", 2, 0, flagsCompressedCommon | FlagSigned},

	FormatB5G6R5Unorm:            {"B5G6R5_UNORM", 3, 2, FlagInteger | FlagNormalized},
	FormatB5G5R5A1Unorm:          {"B5G5R5A1_UNORM", 3, 2, FlagInteger | FlagNormalized},
	FormatBGRA8Unorm:             {"BGRA8_UNORM", 4, 4, FlagInteger | FlagNormalized},
	FormatBGRX8Unorm:             {"BGRX8_UNORM", 4, 4, FlagInteger | FlagNormalized},
	FormatR10G10B10XRBiasA2Unorm: {"R10G10B10_XR_BIAS_A2_UNORM", 4, 4, FlagFloatRare},

	FormatBGRA8UnormSrgb: {"BGRA8_UNORM_SRGB", 4, 4, FlagInteger | FlagNormalized | FlagSRGB},
	FormatBGRX8UnormSrgb: {"BGRX8_UNORM_SRGB", 3, 4, FlagInteger | FlagNormalized | FlagSRGB},

	FormatBC6HUF16:     {"BC6H_UF16", 3, 0, FlagCompressed | FlagFloatRare},
	FormatBC6HSF16:     {"BC6H_SF16", 3, 0, FlagCompressed | FlagFloatRare | FlagSigned},
	FormatBC7Unorm:     {"BC7_UNORM", 4, 0, flagsCompressedCommon},
	FormatBC7UnormSrgb: {"BC7_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},

	FormatAYUV:          {"AYUV", 3, 0, 0},
	FormatY410:          {"Y410", 3, 0, 0},
	FormatY416:          {"Y416", 3, 0, 0},
	FormatNV12:          {"NV12", 3, 0, 0},
	FormatP010:          {"P010", 3, 0, 0},
	FormatP016:          {"P016", 3, 0, 0},
	Format420Opaque:     {"420_OPAQUE", 3, 0, 0},
	FormatYUY2:          {"YUY2", 3, 0, 0},
	FormatY210:          {"Y210", 3, 0, 0},
	FormatY216:          {"Y216", 3, 0, 0},
	FormatNV11:          {"NV11", 3, 0, 0},
	FormatAI44:          {"AI44", 3, 0, 0},
	FormatIA44:          {"IA44", 3, 0, 0},
	FormatP8:            {"P8", 1, 1, FlagPalette},
	FormatA8P8:          {"A8P8", 1, 2, FlagPalette},
	FormatB4G4R4A4Unorm: {"B4G4R4A4_UNORM", 4, 2, FlagInteger | FlagNormalized},
	FormatP208:          {"P208", 3, 0, 0},
	FormatV208:          {"V208", 3, 0, 0},
	FormatV408:          {"V408", 3, 0, 0},

	FormatPVRTCRGB2:  {"PVRTC_RGB2", 3, 0, flagsCompressedCommon},
	FormatPVRTCRGBA2: {"PVRTC_RGBA2", 4, 0, flagsCompressedCommon},
	FormatPVRTCRGB4:  {"PVRTC_RGB4", 3, 0, flagsCompressedCommon},
	FormatPVRTCRGBA4: {"PVRTC_RGBA4", 4, 0, flagsCompressedCommon},
	FormatPVRTC22BPP: {"PVRTC2_2BPP", 3, 0, flagsCompressedCommon},
	FormatPVRTC24BPP: {"PVRTC2_4BPP", 3, 0, flagsCompressedCommon},

	FormatETC1RGB8Unorm:       {"ETC1_RGB8_UNORM", 3, 0, flagsCompressedCommon},
	FormatETC2RGB8Unorm:       {"ETC2_RGB8_UNORM", 3, 0, flagsCompressedCommon},
	FormatETC2RGB8UnormSrgb:   {"ETC2_RGB8_UNORM_SRGB", 3, 0, flagsCompressedCommon | FlagSRGB},
	FormatETC2RGBA8Unorm:      {"ETC2_RGBA8_UNORM", 4, 0, flagsCompressedCommon},
	FormatETC2RGBA8UnormSrgb:  {"ETC2_RGBA8_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},
	FormatETC2RGB8A1Unorm:     {"ETC2_RGB8A1_UNORM", 4, 0, flagsCompressedCommon},
	FormatETC2RGB8A1UnormSrgb: {"ETC2_RGB8A1_UNORM_SRGB", 4, 0, flagsCompressedCommon | FlagSRGB},
	FormatEACR11Unorm:         {"EAC_R11_UNORM", 1, 0, flagsCompressedCommon},
	FormatEACR11Snorm:         {"EAC_R11_SNORM", 1, 0, flagsCompressedCommon | FlagSigned},
	FormatEACR11G11Unorm:      {"EAC_R11G11_UNORM", 2, 0, flagsCompressedCommon},
	FormatEACR11G11Snorm:      {"EAC_R11G11_SNORM", 2, 0, flagsCompressedCommon | FlagSigned},

	FormatATCRGB:                   {"ATC_RGB", 3, 0, flagsCompressedCommon},
	FormatATCRGBAExplicitAlpha:     {"ATC_RGBA_EXPLICIT_ALPHA", 4, 0, flagsCompressedCommon},
	FormatATCRGBAInterpolatedAlpha: {"ATC_RGBA_INTERPOLATED_ALPHA", 4, 0, flagsCompressedCommon},

	FormatCount: {"COUNT", 1, 0, 0},
}

// DescriptorOf returns the registry entry for f.
//
// Passing a format outside [0, FormatCount) is a programmer error and
// panics.
func DescriptorOf(f PixelFormat) Descriptor {
	if f >= FormatCount {
		panic(fmt.Sprintf("pixelfmt: format %d out of range", uint32(f)))
	}
	return formatDescs[f]
}

// BytesPerPixel returns the storage size of one texel in bytes, or 0
// when per-texel sizing is undefined (compressed and planar formats).
func BytesPerPixel(f PixelFormat) uint32 {
	return DescriptorOf(f).BytesPerPixel
}

// ComponentCount returns the number of logical channels of f.
func ComponentCount(f PixelFormat) uint32 {
	return DescriptorOf(f).Components
}

// Flags returns the flag bits of f.
func Flags(f PixelFormat) FormatFlags {
	return DescriptorOf(f).Flags
}

// String returns the stable display name of f.
// It implements fmt.Stringer; out-of-range values format numerically.
func (f PixelFormat) String() string {
	if f > FormatCount {
		return fmt.Sprintf("PixelFormat(%d)", uint32(f))
	}
	return formatDescs[f].Name
}

// FormatFromName finds the format with the given display name.
//
// The comparison is case-sensitive and exact. Formats whose flags
// intersect exclusion are skipped. A missing name is a valid negative
// result, not an error: FormatUnknown is returned.
func FormatFromName(name string, exclusion FormatFlags) PixelFormat {
	for f := FormatUnknown; f < FormatCount; f++ {
		desc := &formatDescs[f]
		if desc.Flags&exclusion != 0 {
			continue
		}
		if desc.Name == name {
			return f
		}
	}
	return FormatUnknown
}

// IsFloat reports whether f stores 32-bit float components.
func IsFloat(f PixelFormat) bool { return Flags(f)&FlagFloat != 0 }

// IsHalf reports whether f stores 16-bit half-float components.
func IsHalf(f PixelFormat) bool { return Flags(f)&FlagHalf != 0 }

// IsFloatRare reports whether f uses an exotic float layout.
func IsFloatRare(f PixelFormat) bool { return Flags(f)&FlagFloatRare != 0 }

// IsInteger reports whether f stores integer components.
func IsInteger(f PixelFormat) bool { return Flags(f)&FlagInteger != 0 }

// IsNormalized reports whether f is a fixed-point normalized format.
func IsNormalized(f PixelFormat) bool { return Flags(f)&FlagNormalized != 0 }

// IsSigned reports whether f stores signed values.
func IsSigned(f PixelFormat) bool { return Flags(f)&FlagSigned != 0 }

// IsDepth reports whether f has a depth component.
func IsDepth(f PixelFormat) bool { return Flags(f)&FlagDepth != 0 }

// IsStencil reports whether f has a stencil component.
func IsStencil(f PixelFormat) bool { return Flags(f)&FlagStencil != 0 }

// IsSRGB reports whether f stores values through the sRGB curve.
func IsSRGB(f PixelFormat) bool { return Flags(f)&FlagSRGB != 0 }

// IsCompressed reports whether f is block-compressed.
func IsCompressed(f PixelFormat) bool { return Flags(f)&FlagCompressed != 0 }

// IsPalette reports whether f is palettized.
func IsPalette(f PixelFormat) bool { return Flags(f)&FlagPalette != 0 }
