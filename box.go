package pixelfmt

// Box is a rectangular or volumetric window into a larger pixel
// buffer: an origin, an extent, the strides that describe the
// surrounding buffer, and the buffer itself. The package never
// allocates or grows Data; it only reads and writes within the
// declared extent.
//
// Z is the depth or slice origin. Depth is the extent of a volume
// texture; NumSlices is the array layer count and is at least 1.
// BytesPerPixel is 0 for block-compressed content.
type Box struct {
	X, Y, Z uint32

	Width, Height, Depth uint32
	NumSlices            uint32

	BytesPerPixel uint32
	BytesPerRow   uint32
	BytesPerImage uint32

	Data []byte
}

// NewBox describes a tightly packed 2D array image of the given
// extent over data.
func NewBox(width, height, depth, slices uint32, bytesPerPixel uint32, data []byte) Box {
	return Box{
		Width:         width,
		Height:        height,
		Depth:         depth,
		NumSlices:     slices,
		BytesPerPixel: bytesPerPixel,
		BytesPerRow:   width * bytesPerPixel,
		BytesPerImage: width * height * bytesPerPixel,
		Data:          data,
	}
}

// DepthOrSlices returns the third extent of the box: depth for
// volume content, the slice count for array content.
func (b *Box) DepthOrSlices() uint32 {
	return max(b.Depth, b.NumSlices)
}

// offset returns the byte offset of the texel at absolute coordinates
// (x, y, z) within Data.
func (b *Box) offset(x, y, z uint32) uint64 {
	return uint64(z)*uint64(b.BytesPerImage) +
		uint64(y)*uint64(b.BytesPerRow) +
		uint64(x)*uint64(b.BytesPerPixel)
}

// At returns the buffer starting at the texel (x, y, z). Coordinates
// are absolute, not relative to the box origin.
func (b *Box) At(x, y, z uint32) []byte {
	return b.Data[b.offset(x, y, z):]
}

// EqualSize reports whether the two boxes span the same extent.
func (b *Box) EqualSize(o *Box) bool {
	return b.Width == o.Width &&
		b.Height == o.Height &&
		b.DepthOrSlices() == o.DepthOrSlices()
}
