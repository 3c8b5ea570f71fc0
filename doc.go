// Package pixelfmt is a registry and conversion engine for GPU pixel
// formats.
//
// # Overview
//
// pixelfmt describes every GPU-addressable texel format (uncompressed,
// block-compressed, packed, depth/stencil, and YUV placeholders) in an
// immutable registry keyed by [PixelFormat]. On top of the registry it
// provides:
//
//   - storage size and mip-chain layout math ([SizeBytes],
//     [MipChainSizeBytes], [MaxMipmapCount]),
//   - a bit-exact per-texel codec between native encodings and a
//     canonical float RGBA color ([PackColor], [UnpackColor]),
//   - bulk region-to-region conversion over rectangular or volumetric
//     sub-images ([ConvertRegion]),
//   - a "typeless" family resolver for reinterpretation and grouping
//     ([Family]).
//
// # Quick start
//
//	f := pixelfmt.FormatFromName("RGBA8_UNORM", 0)
//	size, _ := pixelfmt.SizeBytes(256, 256, 1, 1, f, 4)
//
//	buf := make([]byte, size)
//	box := pixelfmt.NewBox(256, 256, 1, 1, pixelfmt.BytesPerPixel(f), buf)
//	_ = pixelfmt.PackColor([4]float32{1, 0, 0, 1}, f, box.At(0, 0, 0))
//
// # Compressed formats
//
// Block-compressed payloads (BCn, ETC, EAC, PVRTC, ATC) are opaque:
// the engine computes their sizes and copies their bytes, but never
// encodes, decodes or recodes blocks. Per-texel operations on them
// fail with [ErrInvalidParams]; converting between two different
// compressed formats fails with [ErrNotImplemented].
//
// # Concurrency
//
// Every function is a pure computation over its arguments and the
// read-only registry, safe for unlimited concurrent readers. During
// one ConvertRegion call the caller must guarantee exclusive write
// access to the destination region.
//
// Subpackages: gpu maps formats to WebGPU texture formats
// (github.com/gogpu/gputypes); imageutil bridges boxes to the standard
// image package.
package pixelfmt
