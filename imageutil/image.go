// Package imageutil bridges pixelfmt boxes and the standard library
// image types, so texture data can be inspected, saved and downscaled
// with ordinary Go imaging code.
//
// Conversions go through pixelfmt's codecs, so any uncompressed format
// with a defined bit layout can be turned into an image. Compressed
// formats must be decoded elsewhere first.
package imageutil

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixelfmt"
)

// ToImage converts the region described by box into an image.Image.
//
// A few layouts map directly onto standard image types:
//
//   - RGBA8_UNORM and RGBA8_UNORM_SRGB become *image.NRGBA
//   - R8_UNORM and A8_UNORM become *image.Gray
//   - RGBA16_UNORM becomes *image.NRGBA64
//
// Everything else is converted to RGBA8_UNORM first via
// pixelfmt.ConvertRegion and returned as *image.NRGBA. Only the first
// depth slice of the box is read. Compressed formats are rejected with
// pixelfmt.ErrInvalidParams.
func ToImage(box *pixelfmt.Box, format pixelfmt.PixelFormat) (image.Image, error) {
	if pixelfmt.IsCompressed(format) {
		return nil, fmt.Errorf("imageutil: cannot image compressed format %s: %w",
			format, pixelfmt.ErrInvalidParams)
	}

	w := int(box.Width)
	h := int(box.Height)

	switch format {
	case pixelfmt.FormatRGBA8Unorm, pixelfmt.FormatRGBA8UnormSrgb:
		// sRGB data passes through unchanged; PNG stores sRGB anyway.
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := box.At(box.X, box.Y+uint32(y), box.Z)
			copy(img.Pix[y*img.Stride:], row[:w*4])
		}
		return img, nil

	case pixelfmt.FormatR8Unorm, pixelfmt.FormatA8Unorm:
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := box.At(box.X, box.Y+uint32(y), box.Z)
			copy(img.Pix[y*img.Stride:], row[:w])
		}
		return img, nil

	case pixelfmt.FormatRGBA16Unorm:
		// image.NRGBA64 stores each component big-endian; box data is
		// little-endian, so swap while copying.
		img := image.NewNRGBA64(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := box.At(box.X, box.Y+uint32(y), box.Z)
			dst := img.Pix[y*img.Stride:]
			for i := 0; i < w*8; i += 2 {
				dst[i] = row[i+1]
				dst[i+1] = row[i]
			}
		}
		return img, nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	dst := pixelfmt.NewBox(box.Width, box.Height, 1, 1, 4, img.Pix)

	src := *box
	src.Depth = 1
	src.NumSlices = 1

	if err := pixelfmt.ConvertRegion(&src, format, &dst, pixelfmt.FormatRGBA8Unorm); err != nil {
		return nil, fmt.Errorf("imageutil: converting %s for imaging: %w", format, err)
	}
	return img, nil
}

// FromImage wraps or converts img into a pixelfmt box.
//
// *image.NRGBA and *image.Gray are wrapped without copying; their pixel
// storage is shared with the returned box. Any other image type is
// redrawn into a fresh RGBA8_UNORM box.
func FromImage(img image.Image) (pixelfmt.Box, pixelfmt.PixelFormat) {
	bounds := img.Bounds()
	w := uint32(bounds.Dx())
	h := uint32(bounds.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		box := pixelfmt.Box{
			Width:         w,
			Height:        h,
			Depth:         1,
			NumSlices:     1,
			BytesPerPixel: 4,
			BytesPerRow:   uint32(src.Stride),
			BytesPerImage: uint32(src.Stride) * h,
			Data:          src.Pix,
		}
		return box, pixelfmt.FormatRGBA8Unorm
	case *image.Gray:
		box := pixelfmt.Box{
			Width:         w,
			Height:        h,
			Depth:         1,
			NumSlices:     1,
			BytesPerPixel: 1,
			BytesPerRow:   uint32(src.Stride),
			BytesPerImage: uint32(src.Stride) * h,
			Data:          src.Pix,
		}
		return box, pixelfmt.FormatR8Unorm
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	draw.Copy(tmp, image.Point{}, img, bounds, draw.Src, nil)
	box := pixelfmt.NewBox(w, h, 1, 1, 4, tmp.Pix)
	return box, pixelfmt.FormatRGBA8Unorm
}

// SavePNG writes the region described by box to a PNG file.
func SavePNG(path string, box *pixelfmt.Box, format pixelfmt.PixelFormat) error {
	img, err := ToImage(box, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// NextMipLevel produces a half-size bilinear downscale of the region in
// box, suitable as the next level of a mipmap chain. Each dimension is
// halved and clamped to 1.
//
// The result is a tightly packed RGBA8_UNORM box regardless of the
// input format; use pixelfmt.ConvertRegion to restore another layout.
func NextMipLevel(box *pixelfmt.Box, format pixelfmt.PixelFormat) (pixelfmt.Box, error) {
	src, err := ToImage(box, format)
	if err != nil {
		return pixelfmt.Box{}, err
	}

	dstW := max(1, int(box.Width)/2)
	dstH := max(1, int(box.Height)/2)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := pixelfmt.NewBox(uint32(dstW), uint32(dstH), 1, 1, 4, dst.Pix)
	return out, nil
}
