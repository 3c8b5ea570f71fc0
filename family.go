package pixelfmt

// familyTable maps every typed variant of a bit layout to one
// representative "typeless" format. Formats without partners are
// absent and resolve to themselves.
var familyTable = map[PixelFormat]PixelFormat{
	FormatRGBA32Float: FormatRGBA32Uint,
	FormatRGBA32Uint:  FormatRGBA32Uint,
	FormatRGBA32Sint:  FormatRGBA32Uint,

	FormatRGB32Float: FormatRGB32Uint,
	FormatRGB32Uint:  FormatRGB32Uint,
	FormatRGB32Sint:  FormatRGB32Uint,

	FormatRGBA16Float: FormatRGBA16Uint,
	FormatRGBA16Unorm: FormatRGBA16Uint,
	FormatRGBA16Uint:  FormatRGBA16Uint,
	FormatRGBA16Snorm: FormatRGBA16Uint,
	FormatRGBA16Sint:  FormatRGBA16Uint,

	FormatRG32Float: FormatRG32Uint,
	FormatRG32Uint:  FormatRG32Uint,
	FormatRG32Sint:  FormatRG32Uint,

	FormatR10G10B10A2Unorm: FormatR10G10B10A2Uint,
	FormatR10G10B10A2Uint:  FormatR10G10B10A2Uint,

	FormatRGBA8Unorm:     FormatRGBA8Unorm,
	FormatRGBA8UnormSrgb: FormatRGBA8Unorm,
	FormatRGBA8Uint:      FormatRGBA8Unorm,
	FormatRGBA8Snorm:     FormatRGBA8Unorm,
	FormatRGBA8Sint:      FormatRGBA8Unorm,

	FormatRG16Float: FormatRG16Uint,
	FormatRG16Unorm: FormatRG16Uint,
	FormatRG16Uint:  FormatRG16Uint,
	FormatRG16Snorm: FormatRG16Uint,
	FormatRG16Sint:  FormatRG16Uint,

	FormatD32Float: FormatR32Uint,
	FormatR32Float: FormatR32Uint,
	FormatR32Uint:  FormatR32Uint,
	FormatR32Sint:  FormatR32Uint,

	FormatD24Unorm:       FormatD24UnormS8Uint,
	FormatD24UnormS8Uint: FormatD24UnormS8Uint,

	FormatRG8Unorm: FormatRG8Uint,
	FormatRG8Uint:  FormatRG8Uint,
	FormatRG8Snorm: FormatRG8Uint,
	FormatRG8Sint:  FormatRG8Uint,

	FormatR16Float: FormatR16Uint,
	FormatD16Unorm: FormatR16Uint,
	FormatR16Unorm: FormatR16Uint,
	FormatR16Uint:  FormatR16Uint,
	FormatR16Snorm: FormatR16Uint,
	FormatR16Sint:  FormatR16Uint,

	FormatR8Unorm: FormatR8Uint,
	FormatR8Uint:  FormatR8Uint,
	FormatR8Snorm: FormatR8Uint,
	FormatR8Sint:  FormatR8Uint,
	FormatA8Unorm: FormatR8Uint,

	FormatR8G8B8G8Unorm: FormatR8G8B8G8Unorm,
	FormatG8R8G8B8Unorm: FormatR8G8B8G8Unorm,

	FormatBC1Unorm:     FormatBC1Unorm,
	FormatBC1UnormSrgb: FormatBC1Unorm,
	FormatBC2Unorm:     FormatBC2Unorm,
	FormatBC2UnormSrgb: FormatBC2Unorm,
	FormatBC3Unorm:     FormatBC3Unorm,
	FormatBC3UnormSrgb: FormatBC3Unorm,
	FormatBC4Unorm:     FormatBC4Unorm,
	FormatBC4Snorm:     FormatBC4Unorm,
	FormatBC5Unorm:     FormatBC5Unorm,
	FormatBC5Snorm:     FormatBC5Unorm,

	FormatBGRA8Unorm:     FormatBGRA8Unorm,
	FormatBGRA8UnormSrgb: FormatBGRA8Unorm,
	FormatBGRX8Unorm:     FormatBGRX8Unorm,
	FormatBGRX8UnormSrgb: FormatBGRX8Unorm,

	FormatBC6HUF16: FormatBC6HUF16,
	FormatBC6HSF16: FormatBC6HUF16,

	FormatBC7Unorm:     FormatBC7Unorm,
	FormatBC7UnormSrgb: FormatBC7Unorm,
}

// Family returns the canonical "typeless" representative shared by all
// differently-typed variants of f's bit layout. Formats with no family
// partner map to themselves. The mapping is idempotent.
func Family(f PixelFormat) PixelFormat {
	if fam, ok := familyTable[f]; ok {
		return fam
	}
	return f
}
