package vulkan

// Format is a VkFormat.
type Format int32

// Formats. Values match the Vulkan headers.
const (
	FormatUndefined              Format = 0
	FormatR4G4B4A4UnormPack16    Format = 2
	FormatB4G4R4A4UnormPack16    Format = 3
	FormatR5G6B5UnormPack16      Format = 4
	FormatR8Unorm                Format = 9
	FormatR8G8Unorm              Format = 16
	FormatR8G8B8A8Unorm          Format = 37
	FormatR8G8B8A8Srgb           Format = 43
	FormatB8G8R8A8Unorm          Format = 44
	FormatB8G8R8A8Srgb           Format = 50
	FormatA2R10G10B10UnormPack32 Format = 58
	FormatA2B10G10R10UnormPack32 Format = 64
	FormatR16Unorm               Format = 70
	FormatR16Sfloat              Format = 76
	FormatR16G16Unorm            Format = 77
	FormatR16G16B16A16Unorm      Format = 91
	FormatR16G16B16A16Sfloat     Format = 97
	FormatR32Sfloat              Format = 100
	FormatR32G32Sfloat           Format = 103
	FormatR32G32B32A32Sfloat     Format = 109
	FormatD16Unorm               Format = 124
	FormatD32Sfloat              Format = 126
	FormatS8Uint                 Format = 127
	FormatD24UnormS8Uint         Format = 129
	FormatD32SfloatS8Uint        Format = 130
	FormatETC2R8G8B8UnormBlock   Format = 147
	FormatG8B8R83Plane420Unorm   Format = 1000156002
	FormatG8B8R82Plane420Unorm   Format = 1000156003
)

// ImageTiling is a VkImageTiling.
type ImageTiling int32

// Image tilings.
const (
	ImageTilingOptimal           ImageTiling = 0
	ImageTilingLinear            ImageTiling = 1
	ImageTilingDRMFormatModifier ImageTiling = 1000158000
)

// String returns the tiling name.
func (t ImageTiling) String() string {
	switch t {
	case ImageTilingOptimal:
		return "optimal"
	case ImageTilingLinear:
		return "linear"
	case ImageTilingDRMFormatModifier:
		return "drm-format-modifier"
	}
	return "unknown"
}

// ImageUsageFlags is a VkImageUsageFlags bit set.
type ImageUsageFlags uint32

// Image usage bits.
const (
	ImageUsageTransferSrc            ImageUsageFlags = 0x00000001
	ImageUsageTransferDst            ImageUsageFlags = 0x00000002
	ImageUsageSampled                ImageUsageFlags = 0x00000004
	ImageUsageStorage                ImageUsageFlags = 0x00000008
	ImageUsageColorAttachment        ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachment ImageUsageFlags = 0x00000020
	ImageUsageTransientAttachment    ImageUsageFlags = 0x00000040
	ImageUsageInputAttachment        ImageUsageFlags = 0x00000080
)

// Contains reports whether every bit of want is set in u.
func (u ImageUsageFlags) Contains(want ImageUsageFlags) bool {
	return u&want == want
}

// SharingMode is a VkSharingMode.
type SharingMode int32

// Sharing modes.
const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// String returns the sharing mode name.
func (m SharingMode) String() string {
	switch m {
	case SharingModeExclusive:
		return "exclusive"
	case SharingModeConcurrent:
		return "concurrent"
	}
	return "unknown"
}

// ImageAspectFlags is a VkImageAspectFlags bit set.
type ImageAspectFlags uint32

// Image aspect bits.
const (
	ImageAspectColor    ImageAspectFlags = 0x00000001
	ImageAspectDepth    ImageAspectFlags = 0x00000002
	ImageAspectStencil  ImageAspectFlags = 0x00000004
	ImageAspectMetadata ImageAspectFlags = 0x00000008
	ImageAspectPlane0   ImageAspectFlags = 0x00000010
	ImageAspectPlane1   ImageAspectFlags = 0x00000020
	ImageAspectPlane2   ImageAspectFlags = 0x00000040
)

// ImageCreateFlags is a VkImageCreateFlags bit set.
type ImageCreateFlags uint32

// Image creation bits.
const (
	ImageCreateSparseBinding   ImageCreateFlags = 0x00000001
	ImageCreateSparseResidency ImageCreateFlags = 0x00000002
	ImageCreateSparseAliased   ImageCreateFlags = 0x00000004
	ImageCreateMutableFormat   ImageCreateFlags = 0x00000008
	ImageCreateCubeCompatible  ImageCreateFlags = 0x00000010
	ImageCreateDisjoint        ImageCreateFlags = 0x00000200
	ImageCreateAlias           ImageCreateFlags = 0x00000400
	ImageCreateProtected       ImageCreateFlags = 0x00000800
)

// ImageLayout is a VkImageLayout.
type ImageLayout int32

// Image layouts.
const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

// Special queue family indices.
const (
	QueueFamilyIgnored  uint32 = ^uint32(0)
	QueueFamilyExternal uint32 = ^uint32(0) - 1
	QueueFamilyForeign  uint32 = ^uint32(0) - 2
)

// Image is a VkImage handle.
type Image uint64

// NullImage is VK_NULL_HANDLE.
const NullImage Image = 0

// DeviceMemory is a VkDeviceMemory handle.
type DeviceMemory uint64

// SamplerYcbcrModelConversion is a VkSamplerYcbcrModelConversion.
type SamplerYcbcrModelConversion int32

// Y'CbCr model conversions.
const (
	SamplerYcbcrModelRGBIdentity   SamplerYcbcrModelConversion = 0
	SamplerYcbcrModelYcbcrIdentity SamplerYcbcrModelConversion = 1
	SamplerYcbcrModelYcbcr709      SamplerYcbcrModelConversion = 2
	SamplerYcbcrModelYcbcr601      SamplerYcbcrModelConversion = 3
	SamplerYcbcrModelYcbcr2020     SamplerYcbcrModelConversion = 4
)

// SamplerYcbcrRange is a VkSamplerYcbcrRange.
type SamplerYcbcrRange int32

// Y'CbCr ranges.
const (
	SamplerYcbcrRangeITUFull   SamplerYcbcrRange = 0
	SamplerYcbcrRangeITUNarrow SamplerYcbcrRange = 1
)

// ChromaLocation is a VkChromaLocation.
type ChromaLocation int32

// Chroma sample locations.
const (
	ChromaLocationCositedEven ChromaLocation = 0
	ChromaLocationMidpoint    ChromaLocation = 1
)

// Filter is a VkFilter.
type Filter int32

// Filters.
const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// ComponentSwizzle is a VkComponentSwizzle.
type ComponentSwizzle int32

// Component swizzles.
const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

// ComponentMapping is a VkComponentMapping.
type ComponentMapping struct {
	R, G, B, A ComponentSwizzle
}

// FormatFeatureFlags is a VkFormatFeatureFlags bit set.
type FormatFeatureFlags uint32

// Format feature bits relevant to Y'CbCr sampling.
const (
	FormatFeatureSampledImage                      FormatFeatureFlags = 0x00000001
	FormatFeatureSampledImageFilterLinear          FormatFeatureFlags = 0x00001000
	FormatFeatureMidpointChromaSamples             FormatFeatureFlags = 0x00020000
	FormatFeatureSampledImageYcbcrConversionLinear FormatFeatureFlags = 0x00040000
	FormatFeatureCositedChromaSamples              FormatFeatureFlags = 0x00800000
)
