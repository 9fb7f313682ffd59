package vulkan

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texspec"
)

// AllocFlags describe properties of an Alloc.
type AllocFlags uint32

// Allocation flags.
const (
	AllocNoncoherent AllocFlags = 1 << iota
	AllocMappable
	AllocLazilyAllocated
)

// Alloc records the device memory bound to an image.
type Alloc struct {
	Memory DeviceMemory
	Offset uint64
	Size   uint64
	Flags  AllocFlags

	// BackendMemory is an opaque handle owned by the memory allocator that
	// made the allocation, or 0.
	BackendMemory uintptr

	// UsesSystemHeap is set when the memory was not suballocated.
	UsesSystemHeap bool
}

// MutableState is the Vulkan payload of a texspec.MutableTextureState.
type MutableState struct {
	Layout           ImageLayout
	QueueFamilyIndex uint32
}

// Backend implements texspec.MutableStateData.
func (MutableState) Backend() gputypes.Backend { return Backend }

// NewMutableTextureState creates a shared state for an image currently in
// layout and owned by queueFamilyIndex.
func NewMutableTextureState(layout ImageLayout, queueFamilyIndex uint32) *texspec.MutableTextureState {
	return texspec.NewMutableTextureState(MutableState{Layout: layout, QueueFamilyIndex: queueFamilyIndex})
}

// MutableStateImageLayout returns the layout held by a Vulkan state.
func MutableStateImageLayout(state *texspec.MutableTextureState) ImageLayout {
	return state.Data().(MutableState).Layout
}

// MutableStateQueueFamilyIndex returns the queue family held by a Vulkan state.
func MutableStateQueueFamilyIndex(state *texspec.MutableTextureState) uint32 {
	return state.Data().(MutableState).QueueFamilyIndex
}

// backendTextureData is the Vulkan implementation of
// texspec.BackendTextureData.
type backendTextureData struct {
	image Image
	alloc Alloc
}

func (backendTextureData) Backend() gputypes.Backend { return Backend }

// NewBackendTexture wraps an existing VkImage. The image's current layout
// and owning queue family go into a new shared state.
func NewBackendTexture(size gputypes.Extent3D, info TextureInfo, layout ImageLayout, queueFamilyIndex uint32, image Image, alloc Alloc) texspec.BackendTexture {
	return texspec.NewBackendTexture(
		size,
		MakeTextureInfo(info),
		backendTextureData{image: image, alloc: alloc},
		NewMutableTextureState(layout, queueFamilyIndex),
	)
}
