package pixelfmt

import (
	"fmt"
	"math"
)

// blockBytes maps every 4x4-block compressed format to the byte size
// of one encoded block.
var blockBytes = map[PixelFormat]uint64{
	FormatBC1Unorm:            8,
	FormatBC1UnormSrgb:        8,
	FormatBC4Unorm:            8,
	FormatBC4Snorm:            8,
	FormatEACR11Unorm:         8,
	FormatEACR11Snorm:         8,
	FormatETC1RGB8Unorm:       8,
	FormatETC2RGB8Unorm:       8,
	FormatETC2RGB8UnormSrgb:   8,
	FormatETC2RGB8A1Unorm:     8,
	FormatETC2RGB8A1UnormSrgb: 8,
	FormatATCRGB:              8,

	FormatBC2Unorm:                 16,
	FormatBC2UnormSrgb:             16,
	FormatBC3Unorm:                 16,
	FormatBC3UnormSrgb:             16,
	FormatBC5Unorm:                 16,
	FormatBC5Snorm:                 16,
	FormatBC6HUF16:                 16,
	FormatBC6HSF16:                 16,
	FormatBC7Unorm:                 16,
	FormatBC7UnormSrgb:             16,
	FormatETC2RGBA8Unorm:           16,
	FormatETC2RGBA8UnormSrgb:       16,
	FormatEACR11G11Unorm:           16,
	FormatEACR11G11Snorm:           16,
	FormatATCRGBAExplicitAlpha:     16,
	FormatATCRGBAInterpolatedAlpha: 16,
}

// PVRTC has no discrete sub-blocks; sizing follows the
// IMG_texture_compression_pvrtc extension formulas, with 32 bytes as
// the minimum texture size.
var (
	pvrtc2BPP = map[PixelFormat]bool{
		FormatPVRTCRGB2:  true,
		FormatPVRTCRGBA2: true,
		FormatPVRTC22BPP: true,
	}
	pvrtc4BPP = map[PixelFormat]bool{
		FormatPVRTCRGB4:  true,
		FormatPVRTCRGBA4: true,
		FormatPVRTC24BPP: true,
	}
)

// alignUp rounds value up to the next multiple of mult.
func alignUp(value, mult uint64) uint64 {
	return (value + mult - 1) / mult * mult
}

// SizeBytes returns the byte size of a width x height x depth image
// with the given slice count in format f.
//
// Uncompressed formats use the linear formula with each row aligned up
// to rowAlignment bytes; rowAlignment must be at least 1 or the call
// yields ErrInvalidParams. Block-compressed formats use their family's
// block formula and ignore rowAlignment. A compressed format outside
// the known families has no defined size and yields ErrInvalidParams.
func SizeBytes(width, height, depth, slices uint32, f PixelFormat, rowAlignment uint32) (uint64, error) {
	if !IsCompressed(f) {
		if rowAlignment == 0 {
			return 0, fmt.Errorf("%w: rowAlignment must be at least 1", ErrInvalidParams)
		}
		row := alignUp(uint64(width)*uint64(BytesPerPixel(f)), uint64(rowAlignment))
		return row * uint64(height) * uint64(depth) * uint64(slices), nil
	}

	if bb, ok := blockBytes[f]; ok {
		blocks := uint64((width+3)/4) * uint64((height+3)/4)
		return blocks * bb * uint64(depth) * uint64(slices), nil
	}
	if pvrtc2BPP[f] {
		return (uint64(max(width, 16))*uint64(max(height, 8))*2 + 7) / 8 *
			uint64(depth) * uint64(slices), nil
	}
	if pvrtc4BPP[f] {
		return (uint64(max(width, 8))*uint64(max(height, 8))*4 + 7) / 8 *
			uint64(depth) * uint64(slices), nil
	}

	return 0, fmt.Errorf("%w: no size rule for compressed format %s", ErrInvalidParams, f)
}

// MipChainSizeBytes returns the total byte size of a mip chain that
// starts at width x height x depth and halves each dimension per level
// with a floor of 1. At most numMipmaps levels are counted; the
// 1x1x1 level is counted once and terminates the chain.
func MipChainSizeBytes(width, height, depth, slices uint32, f PixelFormat, numMipmaps uint8, rowAlignment uint32) (uint64, error) {
	var total uint64
	for numMipmaps > 0 {
		size, err := SizeBytes(width, height, depth, slices, f, rowAlignment)
		if err != nil {
			return 0, err
		}
		total += size

		if width == 1 && height == 1 && depth == 1 {
			break
		}
		width = max(1, width>>1)
		height = max(1, height>>1)
		depth = max(1, depth>>1)
		numMipmaps--
	}
	return total, nil
}

// MaxMipmapCount returns the number of mip levels needed to reduce
// maxResolution to 1, the top level included: floor(log2(n)) + 1.
// It returns 0 for a zero resolution (log of zero is undefined).
func MaxMipmapCount(maxResolution uint32) uint8 {
	if maxResolution == 0 {
		return 0
	}
	// float64 log2 is exact at powers of two; float32 is not.
	return uint8(math.Floor(math.Log2(float64(maxResolution)))) + 1
}

// MaxMipmapCount2D is MaxMipmapCount over the larger of width and height.
func MaxMipmapCount2D(width, height uint32) uint8 {
	return MaxMipmapCount(max(width, height))
}

// MaxMipmapCount3D is MaxMipmapCount over the largest of all three
// dimensions.
func MaxMipmapCount3D(width, height, depth uint32) uint8 {
	return MaxMipmapCount(max(width, height, depth))
}

// CompressedBlockWidth returns the block width of f in texels.
//
// 4x4-block families return 4. PVRTC returns 0: the PVRTC decoder uses
// neighboring texel data, so no standalone sub-block exists and
// partial updates/atlasing are unsupported. ETC1 returns 0 when
// apiStrict is set, modeling APIs that do not expose its block
// semantics. Non-compressed formats return 1.
func CompressedBlockWidth(f PixelFormat, apiStrict bool) uint32 {
	if !IsCompressed(f) {
		return 1
	}
	if pvrtc2BPP[f] || pvrtc4BPP[f] {
		return 0
	}
	if f == FormatETC1RGB8Unorm && apiStrict {
		return 0
	}
	return 4
}

// CompressedBlockHeight returns the block height of f in texels.
// Every format currently enumerated uses square blocks; an anisotropic
// block format would need its own rule here.
func CompressedBlockHeight(f PixelFormat, apiStrict bool) uint32 {
	return CompressedBlockWidth(f, apiStrict)
}
