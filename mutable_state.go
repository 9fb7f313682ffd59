package texspec

import (
	"sync"

	"github.com/gogpu/gputypes"
)

// MutableStateData is the backend-specific content of a MutableTextureState,
// such as the current image layout and owning queue for Vulkan.
type MutableStateData interface {
	Backend() gputypes.Backend
}

// MutableTextureState tracks the parts of a texture that change while the
// texture is alive (layout, queue ownership).
//
// A *MutableTextureState is shared: every BackendTexture that wraps the same
// GPU resource points at the same state, and engine code outside this module
// updates it as commands are recorded. All methods are safe for concurrent
// use. texspec never interprets the payload.
type MutableTextureState struct {
	mu   sync.RWMutex
	data MutableStateData
}

// NewMutableTextureState creates a shared state holding data.
func NewMutableTextureState(data MutableStateData) *MutableTextureState {
	return &MutableTextureState{data: data}
}

// Backend returns the backend of the current payload, or the zero Backend
// if the state is empty.
func (s *MutableTextureState) Backend() gputypes.Backend {
	d := s.Data()
	if d == nil {
		var zero gputypes.Backend
		return zero
	}
	return d.Backend()
}

// Data returns the current payload.
func (s *MutableTextureState) Data() MutableStateData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// SetData replaces the payload.
func (s *MutableTextureState) SetData(data MutableStateData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Set copies the payload of other into s. Holders of s observe the new
// payload; other is not retained.
func (s *MutableTextureState) Set(other *MutableTextureState) {
	if other == nil || other == s {
		return
	}
	s.SetData(other.Data())
}
