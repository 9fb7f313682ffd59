package vulkan

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texspec"
)

// HAL bridge errors.
var (
	// ErrNilDevice is returned when creating an allocator without a device.
	ErrNilDevice = errors.New("vulkan: device is nil")

	// ErrUnsupportedFormat is returned when a Vulkan format has no
	// gputypes equivalent.
	ErrUnsupportedFormat = errors.New("vulkan: format has no gputypes equivalent")
)

// formatPairs lists the formats both gputypes and Vulkan can express.
var formatPairs = []struct {
	gpu gputypes.TextureFormat
	vk  Format
}{
	{gputypes.TextureFormatUndefined, FormatUndefined},
	{gputypes.TextureFormatR8Unorm, FormatR8Unorm},
	{gputypes.TextureFormatRGBA8Unorm, FormatR8G8B8A8Unorm},
	{gputypes.TextureFormatRGBA8UnormSrgb, FormatR8G8B8A8Srgb},
	{gputypes.TextureFormatBGRA8Unorm, FormatB8G8R8A8Unorm},
	{gputypes.TextureFormatBGRA8UnormSrgb, FormatB8G8R8A8Srgb},
	{gputypes.TextureFormatR32Float, FormatR32Sfloat},
	{gputypes.TextureFormatRG32Float, FormatR32G32Sfloat},
	{gputypes.TextureFormatRGBA32Float, FormatR32G32B32A32Sfloat},
	{gputypes.TextureFormatDepth24PlusStencil8, FormatD24UnormS8Uint},
}

// FormatFromGPU maps a gputypes format to its Vulkan format.
// It reports false for formats without a mapping.
func FormatFromGPU(f gputypes.TextureFormat) (Format, bool) {
	for _, p := range formatPairs {
		if p.gpu == f {
			return p.vk, true
		}
	}
	return FormatUndefined, false
}

// ToGPU maps a Vulkan format to its gputypes format.
// It reports false for formats without a mapping.
func (f Format) ToGPU() (gputypes.TextureFormat, bool) {
	for _, p := range formatPairs {
		if p.vk == f {
			return p.gpu, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

// AspectOf returns the aspects a full view of an image in format f covers.
func AspectOf(f Format) ImageAspectFlags {
	switch f {
	case FormatD16Unorm, FormatD32Sfloat:
		return ImageAspectDepth
	case FormatS8Uint:
		return ImageAspectStencil
	case FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return ImageAspectDepth | ImageAspectStencil
	default:
		return ImageAspectColor
	}
}

// UsageFromGPU maps gputypes usage to Vulkan usage flags. A render
// attachment becomes a color or a depth/stencil attachment depending on
// aspect.
func UsageFromGPU(usage gputypes.TextureUsage, aspect ImageAspectFlags) ImageUsageFlags {
	var u ImageUsageFlags
	if usage&gputypes.TextureUsageCopySrc != 0 {
		u |= ImageUsageTransferSrc
	}
	if usage&gputypes.TextureUsageCopyDst != 0 {
		u |= ImageUsageTransferDst
	}
	if usage&gputypes.TextureUsageTextureBinding != 0 {
		u |= ImageUsageSampled
	}
	if usage&gputypes.TextureUsageStorageBinding != 0 {
		u |= ImageUsageStorage
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 {
		if aspect&ImageAspectColor != 0 {
			u |= ImageUsageColorAttachment
		} else {
			u |= ImageUsageDepthStencilAttachment
		}
	}
	return u
}

// UsageToGPU maps Vulkan usage flags to gputypes usage. Bits without a
// gputypes equivalent (transient and input attachments) are dropped.
func UsageToGPU(u ImageUsageFlags) gputypes.TextureUsage {
	var usage gputypes.TextureUsage
	if u&ImageUsageTransferSrc != 0 {
		usage |= gputypes.TextureUsageCopySrc
	}
	if u&ImageUsageTransferDst != 0 {
		usage |= gputypes.TextureUsageCopyDst
	}
	if u&ImageUsageSampled != 0 {
		usage |= gputypes.TextureUsageTextureBinding
	}
	if u&ImageUsageStorage != 0 {
		usage |= gputypes.TextureUsageStorageBinding
	}
	if u&(ImageUsageColorAttachment|ImageUsageDepthStencilAttachment) != 0 {
		usage |= gputypes.TextureUsageRenderAttachment
	}
	return usage
}

// TextureInfoFromDescriptor derives the Vulkan TextureInfo a HAL device
// creates for desc: optimal tiling, exclusive sharing, the aspect of the
// format and the mapped usage. Unmapped formats become FormatUndefined.
func TextureInfoFromDescriptor(desc *hal.TextureDescriptor) texspec.TextureInfo {
	format, _ := FormatFromGPU(desc.Format)
	aspect := AspectOf(format)

	mipmapped := texspec.MipmappedNo
	if desc.MipLevelCount > 1 {
		mipmapped = texspec.MipmappedYes
	}
	sampleCount := desc.SampleCount
	if sampleCount == 0 {
		sampleCount = 1
	}

	return MakeTextureInfo(TextureInfo{
		SampleCount:     sampleCount,
		Mipmapped:       mipmapped,
		Format:          format,
		ImageTiling:     ImageTilingOptimal,
		ImageUsageFlags: UsageFromGPU(desc.Usage, aspect),
		SharingMode:     SharingModeExclusive,
		AspectMask:      aspect,
	})
}

// Device is the part of hal.Device needed to create textures.
type Device interface {
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(texture hal.Texture)
}

// halTextureData is a backendTextureData that also remembers the
// hal.Texture it came from, so it can be destroyed through the device.
type halTextureData struct {
	backendTextureData
	texture hal.Texture
}

// HALAllocator creates Vulkan textures through a HAL device.
// It implements resource.Allocator.
type HALAllocator struct {
	device Device
}

// NewHALAllocator returns an allocator backed by device.
func NewHALAllocator(device Device) (*HALAllocator, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &HALAllocator{device: device}, nil
}

// mipLevelCount returns the length of a full mip chain for size.
func mipLevelCount(size gputypes.Extent3D) uint32 {
	largest := max(size.Width, size.Height)
	levels := uint32(1)
	for largest > 1 {
		largest >>= 1
		levels++
	}
	return levels
}

// CreateTexture creates a texture of the given size described by info.
// info must be a Vulkan TextureInfo whose format maps to gputypes.
func (a *HALAllocator) CreateTexture(size gputypes.Extent3D, info texspec.TextureInfo, label string) (texspec.BackendTexture, error) {
	vkInfo, ok := GetTextureInfo(info)
	if !ok {
		return texspec.BackendTexture{}, fmt.Errorf("vulkan: create %q: not a Vulkan texture info", label)
	}
	format, ok := vkInfo.Format.ToGPU()
	if !ok || format == gputypes.TextureFormatUndefined {
		return texspec.BackendTexture{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, vkInfo.Format)
	}

	levels := uint32(1)
	if vkInfo.Mipmapped == texspec.MipmappedYes {
		levels = mipLevelCount(size)
	}
	dimension := gputypes.TextureDimension2D
	if size.DepthOrArrayLayers > 1 && vkInfo.Flags&ImageCreateCubeCompatible == 0 {
		dimension = gputypes.TextureDimension3D
	}
	depth := max(size.DepthOrArrayLayers, 1)

	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              size.Width,
			Height:             size.Height,
			DepthOrArrayLayers: depth,
		},
		MipLevelCount: levels,
		SampleCount:   vkInfo.SampleCount,
		Dimension:     dimension,
		Format:        format,
		Usage:         UsageToGPU(vkInfo.ImageUsageFlags),
	})
	if err != nil {
		return texspec.BackendTexture{}, fmt.Errorf("vulkan: create %q: %w", label, err)
	}

	data := halTextureData{
		backendTextureData: backendTextureData{
			image: Image(tex.NativeHandle()),
			alloc: Alloc{UsesSystemHeap: true},
		},
		texture: tex,
	}
	return texspec.NewBackendTexture(size, info, data,
		NewMutableTextureState(ImageLayoutUndefined, QueueFamilyIgnored)), nil
}

// DestroyTexture releases a texture created by CreateTexture.
// Textures not created by this allocator are ignored.
func (a *HALAllocator) DestroyTexture(tex texspec.BackendTexture) {
	data, ok := tex.Data().(halTextureData)
	if !ok {
		texspec.Logger().Warn("vulkan: destroy of a texture not created by HALAllocator", "info", tex.Info())
		return
	}
	a.device.DestroyTexture(data.texture)
}
