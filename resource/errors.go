package resource

import "errors"

// Pool errors.
var (
	// ErrPoolClosed is returned when a closed pool is asked for a texture.
	ErrPoolClosed = errors.New("resource: pool is closed")

	// ErrNilAllocator is returned by NewPool when no allocator is given.
	ErrNilAllocator = errors.New("resource: allocator is nil")

	// ErrInvalidRequest is returned for an invalid TextureInfo or an empty size.
	ErrInvalidRequest = errors.New("resource: invalid texture request")

	// ErrNotPooled is returned when returning a texture the pool does not
	// have checked out.
	ErrNotPooled = errors.New("resource: texture not checked out from this pool")
)
