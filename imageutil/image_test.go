package imageutil

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pixelfmt"
)

func rgbaGradient(w, h int) []byte {
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			data[i+0] = byte(x * 255 / max(w-1, 1))
			data[i+1] = byte(y * 255 / max(h-1, 1))
			data[i+2] = 64
			data[i+3] = 255
		}
	}
	return data
}

func TestToImageRGBA8(t *testing.T) {
	data := rgbaGradient(4, 2)
	box := pixelfmt.NewBox(4, 2, 1, 1, 4, data)

	img, err := ToImage(&box, pixelfmt.FormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	got, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.NRGBA", img)
	}
	if diff := cmp.Diff(data, got.Pix); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestToImageGray(t *testing.T) {
	data := []byte{0, 85, 170, 255}
	box := pixelfmt.NewBox(2, 2, 1, 1, 1, data)

	img, err := ToImage(&box, pixelfmt.FormatR8Unorm)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	got, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.Gray", img)
	}
	if diff := cmp.Diff(data, got.Pix); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestToImageConverts(t *testing.T) {
	// BGRA input must come out with red and blue swapped back.
	data := []byte{64, 128, 255, 255} // B, G, R, A
	box := pixelfmt.NewBox(1, 1, 1, 1, 4, data)

	img, err := ToImage(&box, pixelfmt.FormatBGRA8Unorm)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	got := img.(*image.NRGBA)
	want := []byte{255, 128, 64, 255}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestToImageRGBA16(t *testing.T) {
	// One white texel, little-endian 16-bit components.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	box := pixelfmt.NewBox(1, 1, 1, 1, 8, data)

	img, err := ToImage(&box, pixelfmt.FormatRGBA16Unorm)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	got, ok := img.(*image.NRGBA64)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.NRGBA64", img)
	}
	r, g, b, a := got.NRGBA64At(0, 0).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("got (%#x, %#x, %#x, %#x), want white", r, g, b, a)
	}
}

func TestToImageRejectsCompressed(t *testing.T) {
	box := pixelfmt.NewBox(4, 4, 1, 1, 0, make([]byte, 8))
	_, err := ToImage(&box, pixelfmt.FormatBC1Unorm)
	if !errors.Is(err, pixelfmt.ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
}

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	copy(img.Pix, rgbaGradient(3, 2))

	box, format := FromImage(img)
	if format != pixelfmt.FormatRGBA8Unorm {
		t.Fatalf("format = %v, want RGBA8_UNORM", format)
	}
	if box.Width != 3 || box.Height != 2 {
		t.Fatalf("extent = %dx%d, want 3x2", box.Width, box.Height)
	}
	// The box shares its storage with the image.
	img.Pix[0] = 0xEE
	if box.Data[0] != 0xEE {
		t.Error("box does not share storage with the source image")
	}
}

func TestFromImageGeneric(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	box, format := FromImage(src)
	if format != pixelfmt.FormatRGBA8Unorm {
		t.Fatalf("format = %v, want RGBA8_UNORM", format)
	}
	want := make([]byte, 2*2*4)
	for i := range want {
		want[i] = 255
	}
	if diff := cmp.Diff(want, box.Data); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestImageRoundTrip(t *testing.T) {
	data := rgbaGradient(8, 8)
	box := pixelfmt.NewBox(8, 8, 1, 1, 4, data)

	img, err := ToImage(&box, pixelfmt.FormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	back, format := FromImage(img)
	if format != pixelfmt.FormatRGBA8Unorm {
		t.Fatalf("format = %v", format)
	}
	if diff := cmp.Diff(data, back.Data); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSavePNG(t *testing.T) {
	data := rgbaGradient(4, 4)
	box := pixelfmt.NewBox(4, 4, 1, 1, 4, data)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, &box, pixelfmt.FormatRGBA8Unorm); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("decoded size = %dx%d, want 4x4", b.Dx(), b.Dy())
	}
}

func TestNextMipLevel(t *testing.T) {
	// A solid color must stay that color through the downscale.
	data := make([]byte, 8*8*4)
	for i := 0; i < len(data); i += 4 {
		data[i+0] = 200
		data[i+1] = 100
		data[i+2] = 50
		data[i+3] = 255
	}
	box := pixelfmt.NewBox(8, 8, 1, 1, 4, data)

	mip, err := NextMipLevel(&box, pixelfmt.FormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("NextMipLevel: %v", err)
	}
	if mip.Width != 4 || mip.Height != 4 {
		t.Fatalf("mip extent = %dx%d, want 4x4", mip.Width, mip.Height)
	}
	for i := 0; i < len(mip.Data); i += 4 {
		if mip.Data[i] != 200 || mip.Data[i+1] != 100 || mip.Data[i+2] != 50 || mip.Data[i+3] != 255 {
			t.Fatalf("texel %d = % x, want solid input color", i/4, mip.Data[i:i+4])
		}
	}
}

func TestNextMipLevelClampsToOne(t *testing.T) {
	box := pixelfmt.NewBox(1, 4, 1, 1, 4, make([]byte, 1*4*4))
	mip, err := NextMipLevel(&box, pixelfmt.FormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("NextMipLevel: %v", err)
	}
	if mip.Width != 1 || mip.Height != 2 {
		t.Errorf("mip extent = %dx%d, want 1x2", mip.Width, mip.Height)
	}
}
