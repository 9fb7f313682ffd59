package texspec

import (
	"github.com/gogpu/gputypes"
)

// BackendTextureData is the backend-specific part of a BackendTexture:
// the native resource handle and its memory.
type BackendTextureData interface {
	Backend() gputypes.Backend
}

// BackendTexture wraps a live GPU texture created outside of texspec.
//
// BackendTexture is a value type; copies share the same MutableTextureState.
// The zero value is invalid.
type BackendTexture struct {
	size         gputypes.Extent3D
	info         TextureInfo
	data         BackendTextureData
	mutableState *MutableTextureState
}

// NewBackendTexture assembles a BackendTexture. It is meant to be called by
// backend packages (e.g. vulkan.NewBackendTexture). info and data must come
// from the same backend.
func NewBackendTexture(size gputypes.Extent3D, info TextureInfo, data BackendTextureData, state *MutableTextureState) BackendTexture {
	if state == nil {
		state = NewMutableTextureState(nil)
	}
	return BackendTexture{
		size:         size,
		info:         info,
		data:         data,
		mutableState: state,
	}
}

// IsValid reports whether the BackendTexture wraps a resource.
func (t BackendTexture) IsValid() bool {
	return t.data != nil && t.info.IsValid()
}

// Backend returns the backend the texture was created with.
func (t BackendTexture) Backend() gputypes.Backend {
	return t.info.Backend()
}

// Size returns the texture dimensions.
func (t BackendTexture) Size() gputypes.Extent3D {
	return t.size
}

// Info returns the TextureInfo the texture was created from.
func (t BackendTexture) Info() TextureInfo {
	return t.info
}

// Data returns the backend payload.
func (t BackendTexture) Data() BackendTextureData {
	return t.data
}

// MutableState returns the shared mutable state. It is nil only for the
// zero BackendTexture.
func (t BackendTexture) MutableState() *MutableTextureState {
	return t.mutableState
}
