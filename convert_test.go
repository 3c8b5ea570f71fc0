package pixelfmt

import (
	"bytes"
	"errors"
	"testing"
)

func TestConvertRegionRawCopy(t *testing.T) {
	src := make([]byte, 8*8*4)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))

	srcBox := NewBox(8, 8, 1, 1, 4, src)
	dstBox := NewBox(8, 8, 1, 1, 4, dst)

	if err := ConvertRegion(&srcBox, FormatRGBA8Unorm, &dstBox, FormatRGBA8Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}
	if !bytes.Equal(dst, src) {
		t.Error("full-image same-format copy is not byte-identical")
	}
}

func TestConvertRegionSubregion(t *testing.T) {
	// Copy a 2x2 window from (1,1) of a 4x4 image into (0,0) of a 2x2
	// image.
	src := make([]byte, 4*4*4)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 2*2*4)

	srcBox := NewBox(4, 4, 1, 1, 4, src)
	srcBox.X, srcBox.Y = 1, 1
	srcBox.Width, srcBox.Height = 2, 2
	dstBox := NewBox(2, 2, 1, 1, 4, dst)

	if err := ConvertRegion(&srcBox, FormatRGBA8Unorm, &dstBox, FormatRGBA8Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}

	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 2; x++ {
			want := src[srcBox.offset(x+1, y+1, 0) : srcBox.offset(x+1, y+1, 0)+4]
			got := dst[dstBox.offset(x, y, 0) : dstBox.offset(x, y, 0)+4]
			if !bytes.Equal(got, want) {
				t.Errorf("texel (%d,%d): got % x, want % x", x, y, got, want)
			}
		}
	}
}

func TestConvertRegionRGBAToBGRA(t *testing.T) {
	src := []byte{
		10, 20, 30, 40,
		50, 60, 70, 80,
	}
	dst := make([]byte, len(src))

	srcBox := NewBox(2, 1, 1, 1, 4, src)
	dstBox := NewBox(2, 1, 1, 1, 4, dst)

	if err := ConvertRegion(&srcBox, FormatRGBA8Unorm, &dstBox, FormatBGRA8Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}

	want := []byte{
		30, 20, 10, 40,
		70, 60, 50, 80,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("got % x, want % x", dst, want)
	}
}

func TestConvertRegionToFloat(t *testing.T) {
	src := []byte{255, 0, 128, 255}
	dst := make([]byte, 16)

	srcBox := NewBox(1, 1, 1, 1, 4, src)
	dstBox := NewBox(1, 1, 1, 1, 16, dst)

	if err := ConvertRegion(&srcBox, FormatRGBA8Unorm, &dstBox, FormatRGBA32Float); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}

	got, err := UnpackColor(FormatRGBA32Float, dst)
	if err != nil {
		t.Fatalf("UnpackColor: %v", err)
	}
	if got[0] != 1 || got[1] != 0 || got[3] != 1 {
		t.Errorf("unexpected color %v", got)
	}
	if diff := got[2] - 128.0/255.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("blue = %g, want %g", got[2], 128.0/255.0)
	}
}

func TestConvertRegionVolume(t *testing.T) {
	// Texel path across a 2x2x2 volume with differing formats.
	src := make([]byte, 2*2*2*4)
	for i := range src {
		src[i] = byte(i * 7)
	}
	dst := make([]byte, 2*2*2*4)

	srcBox := NewBox(2, 2, 2, 1, 4, src)
	dstBox := NewBox(2, 2, 2, 1, 4, dst)

	if err := ConvertRegion(&srcBox, FormatRGBA8Unorm, &dstBox, FormatBGRA8Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}

	// Spot check the last texel of the back slice.
	off := srcBox.offset(1, 1, 1)
	if dst[off] != src[off+2] || dst[off+2] != src[off] {
		t.Error("back slice not converted")
	}
}

func TestConvertRegionCompressedCopy(t *testing.T) {
	// An 8x8 BC1 image is a 2x2 grid of 8-byte blocks.
	src := make([]byte, 2*2*8)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))

	srcBox := Box{
		Width: 8, Height: 8, Depth: 1, NumSlices: 1,
		BytesPerRow:   2 * 8,
		BytesPerImage: 2 * 2 * 8,
		Data:          src,
	}
	dstBox := srcBox
	dstBox.Data = dst

	if err := ConvertRegion(&srcBox, FormatBC1Unorm, &dstBox, FormatBC1Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}
	if !bytes.Equal(dst, src) {
		t.Error("compressed copy is not byte-identical")
	}
}

func TestConvertRegionCompressedSubRegion(t *testing.T) {
	// Copy the bottom half of an 8x8 BC1 image (block row 1) into an
	// 8x4 destination. The differing BytesPerImage and the nonzero
	// origin rule out the whole-buffer path, so this runs in
	// block-address space.
	src := make([]byte, 2*2*8)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 2*8)

	srcBox := Box{
		Y:     4,
		Width: 8, Height: 4, Depth: 1, NumSlices: 1,
		BytesPerRow:   2 * 8,
		BytesPerImage: 2 * 2 * 8,
		Data:          src,
	}
	dstBox := Box{
		Width: 8, Height: 4, Depth: 1, NumSlices: 1,
		BytesPerRow:   2 * 8,
		BytesPerImage: 2 * 8,
		Data:          dst,
	}

	if err := ConvertRegion(&srcBox, FormatBC1Unorm, &dstBox, FormatBC1Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}
	if !bytes.Equal(dst, src[16:32]) {
		t.Errorf("got % x, want second block row % x", dst, src[16:32])
	}
}

func TestConvertRegionCompressedErrors(t *testing.T) {
	box := func(f PixelFormat) (Box, uint64) {
		size, err := SizeBytes(8, 8, 1, 1, f, 4)
		if err != nil {
			t.Fatalf("SizeBytes: %v", err)
		}
		return Box{
			Width: 8, Height: 8, Depth: 1, NumSlices: 1,
			BytesPerRow:   uint32(size),
			BytesPerImage: uint32(size),
			Data:          make([]byte, size),
		}, size
	}

	// Recoding between compressed formats is not supported.
	srcBox, _ := box(FormatBC1Unorm)
	dstBox, _ := box(FormatBC3Unorm)
	err := ConvertRegion(&srcBox, FormatBC1Unorm, &dstBox, FormatBC3Unorm)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("BC1 to BC3: err = %v, want ErrNotImplemented", err)
	}

	// Decompression is not supported either.
	rgbaBox := NewBox(8, 8, 1, 1, 4, make([]byte, 8*8*4))
	err = ConvertRegion(&srcBox, FormatBC1Unorm, &rgbaBox, FormatRGBA8Unorm)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("BC1 to RGBA8: err = %v, want ErrNotImplemented", err)
	}

	// PVRTC has no addressable blocks: sub-region copies are rejected.
	pvrSrc, _ := box(FormatPVRTCRGB4)
	pvrDst, _ := box(FormatPVRTCRGB4)
	pvrSrc.X = 4 // forces the block path rather than the raw path
	err = ConvertRegion(&pvrSrc, FormatPVRTCRGB4, &pvrDst, FormatPVRTCRGB4)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("PVRTC sub-region: err = %v, want ErrNotImplemented", err)
	}
}

func TestConvertRegionCodecErrorBeforeOutput(t *testing.T) {
	src := NewBox(2, 2, 1, 1, 4, make([]byte, 2*2*4))
	dst := NewBox(2, 2, 1, 1, 4, make([]byte, 2*2*4))
	for i := range dst.Data {
		dst.Data[i] = 0xAB
	}

	err := ConvertRegion(&src, FormatRGBA8Unorm, &dst, FormatNV12)
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("err = %v, want ErrNotImplemented", err)
	}
	for i, b := range dst.Data {
		if b != 0xAB {
			t.Fatalf("destination modified at %d despite codec error", i)
		}
	}
}

func TestConvertRegionExtentMismatchPanics(t *testing.T) {
	src := NewBox(2, 2, 1, 1, 4, make([]byte, 16))
	dst := NewBox(4, 4, 1, 1, 4, make([]byte, 64))

	defer func() {
		if recover() == nil {
			t.Fatal("extent mismatch did not panic")
		}
	}()
	_ = ConvertRegion(&src, FormatRGBA8Unorm, &dst, FormatRGBA8Unorm)
}

func TestConvertRegionRowCopyWithStride(t *testing.T) {
	// Same format, different row strides: the row path must honor both
	// strides.
	src := NewBox(2, 2, 1, 1, 4, make([]byte, 2*2*4))
	for i := range src.Data {
		src.Data[i] = byte(i + 1)
	}

	dstData := make([]byte, 16*2)
	dst := Box{
		Width: 2, Height: 2, Depth: 1, NumSlices: 1,
		BytesPerPixel: 4,
		BytesPerRow:   16, // padded
		BytesPerImage: 32,
		Data:          dstData,
	}

	if err := ConvertRegion(&src, FormatRGBA8Unorm, &dst, FormatRGBA8Unorm); err != nil {
		t.Fatalf("ConvertRegion: %v", err)
	}

	if !bytes.Equal(dstData[0:8], src.Data[0:8]) {
		t.Error("first row mismatch")
	}
	if !bytes.Equal(dstData[16:24], src.Data[8:16]) {
		t.Error("second row mismatch")
	}
}
