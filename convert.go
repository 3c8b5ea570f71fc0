package pixelfmt

import (
	"fmt"
	"log/slog"
)

// ConvertRegion copies the region described by src into the region
// described by dst, converting from srcFormat to dstFormat. The two
// boxes must span the same extent; violating that is a caller-contract
// error and panics.
//
// Four paths are tried in order, cheapest first:
//
//  1. Whole-buffer copy when both boxes start at the origin, share
//     BytesPerImage and the formats are identical.
//  2. Block-space row copies when either format is compressed. The
//     formats must then be identical (recoding compressed payloads is
//     ErrNotImplemented) and must have addressable blocks (PVRTC does
//     not: ErrNotImplemented).
//  3. Row-by-row copies when the formats are identical.
//  4. Per-texel unpack/re-pack otherwise. This is the only path that
//     converts numerically and it inherits the codec's failure modes;
//     those are checked before any output is written.
//
// The caller guarantees exclusive write access to the destination
// region for the duration of the call and that the regions do not
// overlap destructively.
func ConvertRegion(src *Box, srcFormat PixelFormat, dst *Box, dstFormat PixelFormat) error {
	if !src.EqualSize(dst) {
		panic(fmt.Sprintf("pixelfmt: ConvertRegion extent mismatch: %dx%dx%d vs %dx%dx%d",
			src.Width, src.Height, src.DepthOrSlices(),
			dst.Width, dst.Height, dst.DepthOrSlices()))
	}

	if src.BytesPerImage == dst.BytesPerImage && srcFormat == dstFormat &&
		src.X == 0 && dst.X == 0 &&
		src.Y == 0 && dst.Y == 0 &&
		src.Z == 0 && dst.Z == 0 {
		logConvert("raw", srcFormat, dstFormat, src)
		n := uint64(src.BytesPerImage) * uint64(src.DepthOrSlices())
		copy(dst.Data[:n], src.Data[:n])
		return nil
	}

	// Compressed payloads are opaque: copyable, never recodable.
	if IsCompressed(srcFormat) || IsCompressed(dstFormat) {
		if srcFormat != dstFormat {
			return fmt.Errorf("%w: cannot convert between compressed formats (%s to %s)",
				ErrNotImplemented, srcFormat, dstFormat)
		}
		return copyCompressed(src, dst, dstFormat)
	}

	if srcFormat == dstFormat {
		logConvert("rows", srcFormat, dstFormat, src)
		rowBytes := uint64(src.Width) * uint64(src.BytesPerPixel)
		srcBase := src.offset(src.X, src.Y, src.Z)
		dstBase := dst.offset(dst.X, dst.Y, dst.Z)
		for z := uint32(0); z < src.DepthOrSlices(); z++ {
			sp := srcBase + uint64(z)*uint64(src.BytesPerImage)
			dp := dstBase + uint64(z)*uint64(dst.BytesPerImage)
			for y := uint32(0); y < src.Height; y++ {
				copy(dst.Data[dp:dp+rowBytes], src.Data[sp:sp+rowBytes])
				sp += uint64(src.BytesPerRow)
				dp += uint64(dst.BytesPerRow)
			}
		}
		return nil
	}

	return convertTexels(src, srcFormat, dst, dstFormat)
}

// copyCompressed copies a sub-region of identical compressed formats
// in block-address space: the texel origin is rounded up to block
// indices, then whole stride rows are copied per block row, per slice.
func copyCompressed(src, dst *Box, format PixelFormat) error {
	blockWidth := CompressedBlockWidth(format, false)
	blockHeight := CompressedBlockHeight(format, false)
	if blockWidth == 0 || blockHeight == 0 {
		return fmt.Errorf("%w: %s has no addressable blocks; regions must cover whole images",
			ErrNotImplemented, format)
	}
	logConvert("blocks", format, format, src)

	srcOff := uint64((src.X+blockWidth-1)/blockWidth) +
		uint64((src.Y+blockHeight-1)/blockHeight)*uint64(src.BytesPerRow) +
		uint64(src.Z)*uint64(src.BytesPerImage)
	dstOff := uint64((dst.X+blockWidth-1)/blockWidth) +
		uint64((dst.Y+blockHeight-1)/blockHeight)*uint64(dst.BytesPerRow) +
		uint64(dst.Z)*uint64(dst.BytesPerImage)

	blockRowStart := (src.Y + blockHeight - 1) / blockHeight
	blockRowEnd := (src.Y + src.Height + blockHeight - 1) / blockHeight
	rowBytes := uint64(src.BytesPerRow)

	for z := uint32(0); z < src.DepthOrSlices(); z++ {
		sp, dp := srcOff, dstOff
		for y := blockRowStart; y < blockRowEnd; y++ {
			copy(dst.Data[dp:dp+rowBytes], src.Data[sp:sp+rowBytes])
			sp += uint64(src.BytesPerRow)
			dp += uint64(dst.BytesPerRow)
		}
		srcOff += uint64(src.BytesPerImage)
		dstOff += uint64(dst.BytesPerImage)
	}
	return nil
}

// convertTexels is the brute-force path: every texel is decoded to the
// canonical float color and re-encoded. Both codecs are resolved up
// front so an unsupported format fails before any output is written.
func convertTexels(src *Box, srcFormat PixelFormat, dst *Box, dstFormat PixelFormat) error {
	unpack := &codecs[srcFormat]
	if unpack.unpack == nil {
		return unpack.err
	}
	pack := &codecs[dstFormat]
	if pack.pack == nil {
		return pack.err
	}
	logConvert("texels", srcFormat, dstFormat, src)

	srcBpp := uint64(src.BytesPerPixel)
	dstBpp := uint64(dst.BytesPerPixel)
	srcBase := src.offset(src.X, src.Y, src.Z)
	dstBase := dst.offset(dst.X, dst.Y, dst.Z)

	for z := uint32(0); z < src.DepthOrSlices(); z++ {
		for y := uint32(0); y < src.Height; y++ {
			sp := srcBase + uint64(z)*uint64(src.BytesPerImage) + uint64(y)*uint64(src.BytesPerRow)
			dp := dstBase + uint64(z)*uint64(dst.BytesPerImage) + uint64(y)*uint64(dst.BytesPerRow)
			for x := uint32(0); x < src.Width; x++ {
				rgba := unpack.unpack(src.Data[sp:])
				pack.pack(&rgba, dst.Data[dp:])
				sp += srcBpp
				dp += dstBpp
			}
		}
	}
	return nil
}

func logConvert(path string, srcFormat, dstFormat PixelFormat, src *Box) {
	Logger().Debug("pixelfmt: convert region",
		slog.String("path", path),
		slog.String("src", srcFormat.String()),
		slog.String("dst", dstFormat.String()),
		slog.Uint64("width", uint64(src.Width)),
		slog.Uint64("height", uint64(src.Height)),
		slog.Uint64("depth", uint64(src.DepthOrSlices())))
}
