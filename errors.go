package texspec

import "errors"

// Package errors.
var (
	// ErrUnknownBackend is returned when decoding a payload for a backend
	// that has no registered decoder.
	ErrUnknownBackend = errors.New("texspec: unknown backend")

	// ErrCorruptTextureInfo is returned when an encoded TextureInfo holds
	// values that no writer produces.
	ErrCorruptTextureInfo = errors.New("texspec: corrupt texture info")
)
