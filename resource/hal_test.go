package resource

import (
	"github.com/gogpu/wgpu/hal"
)

// halTexture is a test double for hal.Texture.
type halTexture struct {
	handle uintptr
}

// Destroy implements hal.Resource.
func (t *halTexture) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (t *halTexture) NativeHandle() uintptr { return t.handle }

// halDevice implements vulkan.Device.
type halDevice struct {
	created   int
	destroyed int
}

func (d *halDevice) CreateTexture(_ *hal.TextureDescriptor) (hal.Texture, error) {
	d.created++
	return &halTexture{handle: uintptr(d.created)}, nil
}

func (d *halDevice) DestroyTexture(_ hal.Texture) {
	d.destroyed++
}
