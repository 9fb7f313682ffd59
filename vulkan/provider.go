package vulkan

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/texspec"
)

// ErrNoHALDevice is returned when a device provider does not expose a HAL
// device that can create textures.
var ErrNoHALDevice = errors.New("vulkan: provider does not expose a HAL device")

// NewHALAllocatorFromProvider creates an allocator on the device shared by
// an external provider (e.g. a gogpu App). The provider must implement
// HalDevice() any returning a hal.Device.
func NewHALAllocatorFromProvider(provider gpucontext.DeviceProvider) (*HALAllocator, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	texspec.Logger().Debug("vulkan: allocator attached to shared device")
	return NewHALAllocator(device)
}

// SurfaceTextureInfo describes a color attachment in the provider's
// surface format, suitable for offscreen targets that are later copied
// to the surface. It reports false if the surface format has no Vulkan
// equivalent.
func SurfaceTextureInfo(provider gpucontext.DeviceProvider, sampleCount uint32) (texspec.TextureInfo, bool) {
	format, ok := FormatFromGPU(provider.SurfaceFormat())
	if !ok || format == FormatUndefined {
		return texspec.TextureInfo{}, false
	}
	return MakeTextureInfo(TextureInfo{
		SampleCount:     max(sampleCount, 1),
		Mipmapped:       texspec.MipmappedNo,
		Format:          format,
		ImageTiling:     ImageTilingOptimal,
		ImageUsageFlags: ImageUsageColorAttachment | ImageUsageSampled | ImageUsageTransferSrc,
		SharingMode:     SharingModeExclusive,
		AspectMask:      ImageAspectColor,
	}), true
}
