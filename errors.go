package pixelfmt

import "errors"

// Failure kinds surfaced by this package. Wrapped errors carry the
// offending format/operation; test with errors.Is.
var (
	// ErrInvalidParams is returned for structurally valid but
	// unsupported requests: linear sizing of a compressed format
	// outside the known block families, per-texel packing of a
	// compressed format, block-copying a format without discrete
	// blocks.
	ErrInvalidParams = errors.New("pixelfmt: invalid parameters")

	// ErrNotImplemented is returned for recognized but intentionally
	// unsupported format/operation combinations: formats with no
	// defined bit layout and cross-format compressed conversion.
	ErrNotImplemented = errors.New("pixelfmt: not implemented")
)
