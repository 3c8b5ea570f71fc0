package pixelfmt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// storageInt constrains the integer widths the generic codec is
// instantiated for. All multi-byte storage is little-endian.
type storageInt interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32
}

// maxOf returns the largest representable value of T as a float. It is
// the fixed-point scale factor for normalized formats.
func maxOf[T storageInt]() float32 {
	var v T
	switch any(v).(type) {
	case uint8:
		return 255
	case int8:
		return 127
	case uint16:
		return 65535
	case int16:
		return 32767
	case uint32:
		return 4294967295
	case int32:
		return 2147483647
	}
	return 0
}

// putComponent stores the i-th component of a texel whose components
// are all of type T.
func putComponent[T storageInt](dst []byte, i int, v T) {
	switch v := any(v).(type) {
	case uint8:
		dst[i] = v
	case int8:
		dst[i] = uint8(v)
	case uint16:
		binary.LittleEndian.PutUint16(dst[i*2:], v)
	case int16:
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
	case uint32:
		binary.LittleEndian.PutUint32(dst[i*4:], v)
	case int32:
		binary.LittleEndian.PutUint32(dst[i*4:], uint32(v))
	}
}

// getComponent loads the i-th component of a texel whose components
// are all of type T.
func getComponent[T storageInt](src []byte, i int) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = src[i]
	case *int8:
		*p = int8(src[i])
	case *uint16:
		*p = binary.LittleEndian.Uint16(src[i*2:])
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(src[i*2:]))
	case *uint32:
		*p = binary.LittleEndian.Uint32(src[i*4:])
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return v
}

// saturate clamps x to [0, 1].
func saturate(x float32) float32 {
	return min(max(x, 0), 1)
}

// roundf rounds half away from zero, like C's roundf.
func roundf(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// convertFromFloat encodes the first components of rgba into dst,
// selecting the numeric strategy from flags:
//
//   - FlagFloat: stored as 32-bit floats verbatim.
//   - FlagHalf: converted to 16-bit halfs.
//   - FlagNormalized unsigned: saturated to [0,1], sRGB-encoded when
//     flagged, scaled by maxOf(T) and rounded to nearest.
//   - FlagNormalized signed: clamped to [-1,1], scaled by maxOf(T) and
//     rounded to nearest.
//   - otherwise: rounded to the nearest integer and stored as T.
func convertFromFloat[T storageInt](rgba *[4]float32, dst []byte, components int, flags FormatFlags) {
	for i := 0; i < components; i++ {
		switch {
		case flags&FlagFloat != 0:
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(rgba[i]))
		case flags&FlagHalf != 0:
			binary.LittleEndian.PutUint16(dst[i*2:], float16.Fromfloat32(rgba[i]).Bits())
		case flags&FlagNormalized != 0:
			val := rgba[i]
			if flags&FlagSigned == 0 {
				val = saturate(val)
				if flags&FlagSRGB != 0 {
					val = ToSRGB(val)
				}
			} else {
				val = min(max(val, -1), 1)
			}
			putComponent(dst, i, T(roundf(val*maxOf[T]())))
		default:
			putComponent(dst, i, T(roundf(rgba[i])))
		}
	}
}

// convertToFloat is the mirror of convertFromFloat. Components beyond
// the stored count default to 0, except alpha which defaults to 1
// (opaque by default).
func convertToFloat[T storageInt](src []byte, components int, flags FormatFlags) [4]float32 {
	var rgba [4]float32
	for i := 0; i < components; i++ {
		switch {
		case flags&FlagFloat != 0:
			rgba[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
		case flags&FlagHalf != 0:
			rgba[i] = float16.Frombits(binary.LittleEndian.Uint16(src[i*2:])).Float32()
		case flags&FlagNormalized != 0:
			raw := float32(getComponent[T](src, i)) / maxOf[T]()
			if flags&FlagSigned == 0 {
				if flags&FlagSRGB != 0 {
					raw = FromSRGB(raw)
				}
				rgba[i] = raw
			} else {
				// The two most negative codes (e.g. -128 and -127 for
				// int8) both decode to -1, per D3D10 rules.
				rgba[i] = max(raw, -1)
			}
		default:
			rgba[i] = float32(getComponent[T](src, i))
		}
	}
	for i := components; i < 3; i++ {
		rgba[i] = 0
	}
	if components < 4 {
		rgba[3] = 1
	}
	return rgba
}

type packFunc func(rgba *[4]float32, dst []byte)

type unpackFunc func(src []byte) [4]float32

// codecEntry is one row of the per-format dispatch table. Exactly one
// of (pack/unpack) or err is set.
type codecEntry struct {
	pack   packFunc
	unpack unpackFunc
	err    error
}

// genericCodec builds a codec entry around the flag-driven strategy,
// monomorphized for one storage integer type.
func genericCodec[T storageInt](components int, flags FormatFlags) codecEntry {
	return codecEntry{
		pack: func(rgba *[4]float32, dst []byte) {
			convertFromFloat[T](rgba, dst, components, flags)
		},
		unpack: func(src []byte) [4]float32 {
			return convertToFloat[T](src, components, flags)
		},
	}
}

// codecs is resolved once per process; PackColor/UnpackColor index it
// directly, so per-call dispatch is a single table load.
var codecs = buildCodecs()

func buildCodecs() *[FormatCount + 1]codecEntry {
	table := new([FormatCount + 1]codecEntry)
	for f := FormatUnknown; f <= FormatCount; f++ {
		table[f] = codecFor(f)
	}
	return table
}

func codecFor(f PixelFormat) codecEntry {
	if e, ok := packedCodecs[f]; ok {
		return e
	}

	desc := formatDescs[f]
	if noBitLayout[f] {
		return notImplementedEntry(desc.Name)
	}

	switch {
	case desc.Flags&FlagCompressed != 0:
		return codecEntry{err: fmt.Errorf(
			"%w: %s is block-compressed, single texels have no defined packing",
			ErrInvalidParams, desc.Name)}

	case desc.Flags&(FlagFloat|FlagHalf) != 0:
		// Storage type is fixed by the flag; the instantiation type is
		// irrelevant on these paths.
		return genericCodec[uint32](int(desc.Components), desc.Flags)

	case desc.Flags&FlagInteger != 0:
		width := desc.BytesPerPixel / desc.Components
		signed := desc.Flags&FlagSigned != 0
		switch {
		case width == 1 && !signed:
			return genericCodec[uint8](int(desc.Components), desc.Flags)
		case width == 1:
			return genericCodec[int8](int(desc.Components), desc.Flags)
		case width == 2 && !signed:
			return genericCodec[uint16](int(desc.Components), desc.Flags)
		case width == 2:
			return genericCodec[int16](int(desc.Components), desc.Flags)
		case width == 4 && !signed:
			return genericCodec[uint32](int(desc.Components), desc.Flags)
		case width == 4:
			return genericCodec[int32](int(desc.Components), desc.Flags)
		}
	}

	// YUV/planar placeholders, palettes, exotic float layouts and the
	// sentinels: recognized, deliberately not codable.
	return notImplementedEntry(desc.Name)
}

func notImplementedEntry(name string) codecEntry {
	return codecEntry{err: fmt.Errorf("%w: %s has no defined per-texel layout",
		ErrNotImplemented, name)}
}

// noBitLayout lists formats whose flags would otherwise select the
// generic integer strategy but whose actual bit layout is not texel
// separable.
var noBitLayout = map[PixelFormat]bool{
	FormatR1Unorm:           true,
	FormatR9G9B9E5SharedExp: true,
	FormatR8G8B8G8Unorm:     true,
	FormatG8R8G8B8Unorm:     true,
}

// packedCodecs holds the hand-written bit-exact layouts: packed
// multi-field words, BGR byte orders and combined depth/stencil.
var packedCodecs = map[PixelFormat]codecEntry{
	FormatD32FloatS8X24Uint: {
		pack: func(rgba *[4]float32, dst []byte) {
			binary.LittleEndian.PutUint32(dst[0:], math.Float32bits(rgba[0]))
			binary.LittleEndian.PutUint32(dst[4:], uint32(rgba[1])<<24)
		},
		unpack: func(src []byte) [4]float32 {
			return [4]float32{
				math.Float32frombits(binary.LittleEndian.Uint32(src[0:])),
				float32(binary.LittleEndian.Uint32(src[4:]) >> 24),
				0,
				1,
			}
		},
	},

	FormatR10G10B10A2Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			ir := uint32(saturate(rgba[0])*1023.0 + 0.5)
			ig := uint32(saturate(rgba[1])*1023.0 + 0.5)
			ib := uint32(saturate(rgba[2])*1023.0 + 0.5)
			ia := uint32(saturate(rgba[3])*3.0 + 0.5)
			binary.LittleEndian.PutUint32(dst, ia<<30|ib<<20|ig<<10|ir)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint32(src)
			return [4]float32{
				float32(val&0x3FF) / 1023.0,
				float32((val>>10)&0x3FF) / 1023.0,
				float32((val>>20)&0x3FF) / 1023.0,
				float32(val>>30) / 3.0,
			}
		},
	},

	FormatR10G10B10A2Uint: {
		pack: func(rgba *[4]float32, dst []byte) {
			// Plain integer fields: clamp to the field range, truncate.
			ir := uint32(min(max(rgba[0], 0), 1023))
			ig := uint32(min(max(rgba[1], 0), 1023))
			ib := uint32(min(max(rgba[2], 0), 1023))
			ia := uint32(min(max(rgba[3], 0), 3))
			binary.LittleEndian.PutUint32(dst, ia<<30|ib<<20|ig<<10|ir)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint32(src)
			return [4]float32{
				float32(val & 0x3FF),
				float32((val >> 10) & 0x3FF),
				float32((val >> 20) & 0x3FF),
				float32(val >> 30),
			}
		},
	},

	FormatD24Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			binary.LittleEndian.PutUint32(dst, uint32(roundf(rgba[0]*16777215.0)))
		},
		unpack: func(src []byte) [4]float32 {
			depth := float32(binary.LittleEndian.Uint32(src)) / 16777215.0
			return [4]float32{depth, 0, 0, 1}
		},
	},

	FormatD24UnormS8Uint: {
		pack: func(rgba *[4]float32, dst []byte) {
			word := uint32(rgba[1])<<24 | uint32(roundf(rgba[0]*16777215.0))
			binary.LittleEndian.PutUint32(dst, word)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint32(src)
			return [4]float32{
				float32(val&0x00FFFFFF) / 16777215.0,
				float32(val >> 24),
				0,
				1,
			}
		},
	},

	FormatA8Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			convertFromFloat[uint8](rgba, dst, 1, FlagInteger|FlagNormalized)
		},
		unpack: func(src []byte) [4]float32 {
			// Alpha keeps the raw code value, not rescaled.
			return [4]float32{0, 0, 0, float32(src[0])}
		},
	},

	FormatB5G6R5Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			ir := uint16(saturate(rgba[0])*31.0 + 0.5)
			ig := uint16(saturate(rgba[1])*63.0 + 0.5)
			ib := uint16(saturate(rgba[2])*31.0 + 0.5)
			binary.LittleEndian.PutUint16(dst, ir<<11|ig<<5|ib)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint16(src)
			return [4]float32{
				float32((val>>11)&0x1F) / 31.0,
				float32((val>>5)&0x3F) / 63.0,
				float32(val&0x1F) / 31.0,
				1,
			}
		},
	},

	FormatB5G5R5A1Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			ir := uint16(saturate(rgba[0])*31.0 + 0.5)
			ig := uint16(saturate(rgba[1])*31.0 + 0.5)
			ib := uint16(saturate(rgba[2])*31.0 + 0.5)
			// Alpha is a hard threshold, not a scaled field.
			var ia uint16
			if rgba[3] != 0 {
				ia = 1
			}
			binary.LittleEndian.PutUint16(dst, ia<<15|ir<<10|ig<<5|ib)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint16(src)
			alpha := float32(0)
			if val>>15 != 0 {
				alpha = 1
			}
			return [4]float32{
				float32((val>>10)&0x1F) / 31.0,
				float32((val>>5)&0x1F) / 31.0,
				float32(val&0x1F) / 31.0,
				alpha,
			}
		},
	},

	FormatBGRA8Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			dst[0] = uint8(saturate(rgba[2])*255.0 + 0.5)
			dst[1] = uint8(saturate(rgba[1])*255.0 + 0.5)
			dst[2] = uint8(saturate(rgba[0])*255.0 + 0.5)
			dst[3] = uint8(saturate(rgba[3])*255.0 + 0.5)
		},
		unpack: unpackBGRA(4, FlagInteger|FlagNormalized),
	},

	FormatBGRX8Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			dst[0] = uint8(saturate(rgba[2])*255.0 + 0.5)
			dst[1] = uint8(saturate(rgba[1])*255.0 + 0.5)
			dst[2] = uint8(saturate(rgba[0])*255.0 + 0.5)
			dst[3] = 255
		},
		unpack: unpackBGRA(4, FlagInteger|FlagNormalized),
	},

	FormatBGRA8UnormSrgb: {
		pack: func(rgba *[4]float32, dst []byte) {
			dst[0] = uint8(saturate(ToSRGB(rgba[2]))*255.0 + 0.5)
			dst[1] = uint8(saturate(ToSRGB(rgba[1]))*255.0 + 0.5)
			dst[2] = uint8(saturate(ToSRGB(rgba[0]))*255.0 + 0.5)
			dst[3] = uint8(saturate(rgba[3])*255.0 + 0.5)
		},
		unpack: unpackBGRA(4, FlagInteger|FlagNormalized|FlagSRGB),
	},

	FormatBGRX8UnormSrgb: {
		pack: func(rgba *[4]float32, dst []byte) {
			dst[0] = uint8(saturate(ToSRGB(rgba[2]))*255.0 + 0.5)
			dst[1] = uint8(saturate(ToSRGB(rgba[1]))*255.0 + 0.5)
			dst[2] = uint8(saturate(ToSRGB(rgba[0]))*255.0 + 0.5)
			dst[3] = 255
		},
		unpack: unpackBGRA(3, FlagInteger|FlagNormalized|FlagSRGB),
	},

	FormatB4G4R4A4Unorm: {
		pack: func(rgba *[4]float32, dst []byte) {
			ir := uint16(saturate(rgba[0])*15.0 + 0.5)
			ig := uint16(saturate(rgba[1])*15.0 + 0.5)
			ib := uint16(saturate(rgba[2])*15.0 + 0.5)
			// Alpha is derived from the blue input channel. Wrong, but
			// textures packed this way exist; changing it would break
			// bit compatibility.
			ia := uint16(saturate(rgba[2])*15.0 + 0.5)
			binary.LittleEndian.PutUint16(dst, ia<<12|ir<<8|ig<<4|ib)
		},
		unpack: func(src []byte) [4]float32 {
			val := binary.LittleEndian.Uint16(src)
			return [4]float32{
				float32((val>>8)&0xF) / 15.0,
				float32((val>>4)&0xF) / 15.0,
				float32(val&0xF) / 15.0,
				float32((val>>12)&0xF) / 15.0,
			}
		},
	},
}

// unpackBGRA decodes a B,G,R[,A] byte order through the generic
// strategy and swaps red and blue back into place.
func unpackBGRA(components int, flags FormatFlags) unpackFunc {
	return func(src []byte) [4]float32 {
		rgba := convertToFloat[uint8](src, components, flags)
		rgba[0], rgba[2] = rgba[2], rgba[0]
		return rgba
	}
}

// PackColor encodes one texel. rgba holds the canonical float color
// (red, green, blue, alpha); dst must be at least BytesPerPixel(f)
// bytes. Compressed formats return ErrInvalidParams; formats with no
// defined layout return ErrNotImplemented.
func PackColor(rgba [4]float32, f PixelFormat, dst []byte) error {
	if f > FormatCount {
		panic(fmt.Sprintf("pixelfmt: format %d out of range", uint32(f)))
	}
	e := &codecs[f]
	if e.pack == nil {
		return e.err
	}
	e.pack(&rgba, dst)
	return nil
}

// UnpackColor decodes one texel of format f from src into the
// canonical float color. src must be at least BytesPerPixel(f) bytes.
// Undecoded RGB channels are 0; an undecoded alpha channel is 1.
func UnpackColor(f PixelFormat, src []byte) ([4]float32, error) {
	if f > FormatCount {
		panic(fmt.Sprintf("pixelfmt: format %d out of range", uint32(f)))
	}
	e := &codecs[f]
	if e.unpack == nil {
		return [4]float32{}, e.err
	}
	return e.unpack(src), nil
}
