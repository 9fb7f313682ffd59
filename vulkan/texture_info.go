package vulkan

import (
	"io"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texspec"
)

// Backend is the texspec backend tag of every Vulkan payload.
const Backend = gputypes.BackendVulkan

func init() {
	texspec.RegisterBackend(Backend, "Vulkan", decodeTextureInfoData)
}

// TextureInfo is the application-facing description of a Vulkan texture.
// Convert it with MakeTextureInfo to pass it to backend-agnostic code.
type TextureInfo struct {
	SampleCount uint32
	Mipmapped   texspec.Mipmapped

	Flags               ImageCreateFlags
	Format              Format
	ImageTiling         ImageTiling
	ImageUsageFlags     ImageUsageFlags
	SharingMode         SharingMode
	AspectMask          ImageAspectFlags
	YcbcrConversionInfo YcbcrConversionInfo
}

// MakeTextureInfo wraps info in a generic texspec.TextureInfo.
func MakeTextureInfo(info TextureInfo) texspec.TextureInfo {
	return texspec.NewTextureInfo(textureInfoData{spec: NewTextureSpec(info)}, info.SampleCount, info.Mipmapped)
}

// SpecToTextureInfo rebuilds the application-facing info from a spec.
func SpecToTextureInfo(spec TextureSpec, sampleCount uint32, mipmapped texspec.Mipmapped) TextureInfo {
	return TextureInfo{
		SampleCount:         sampleCount,
		Mipmapped:           mipmapped,
		Flags:               spec.Flags,
		Format:              spec.Format,
		ImageTiling:         spec.ImageTiling,
		ImageUsageFlags:     spec.ImageUsageFlags,
		SharingMode:         spec.SharingMode,
		AspectMask:          spec.AspectMask,
		YcbcrConversionInfo: spec.YcbcrConversionInfo,
	}
}

// GetTextureInfo extracts the application-facing info from a generic one.
// It reports false if info was not built for Vulkan.
func GetTextureInfo(info texspec.TextureInfo) (TextureInfo, bool) {
	if !info.IsValid() || info.Backend() != Backend {
		return TextureInfo{}, false
	}
	return SpecToTextureInfo(TextureInfoSpec(info), info.NumSamples(), info.Mipmapped()), true
}

// textureInfoData is the Vulkan implementation of texspec.TextureInfoData.
type textureInfoData struct {
	spec TextureSpec
}

func (textureInfoData) Backend() gputypes.Backend { return Backend }

func (d textureInfoData) Equal(other texspec.TextureInfoData) bool {
	return d.spec.Equal(other.(textureInfoData).spec)
}

func (d textureInfoData) IsCompatible(other texspec.TextureInfoData) bool {
	return d.spec.IsCompatible(other.(textureInfoData).spec)
}

func (d textureInfoData) CompatibilityHash() uint64 { return d.spec.compatibilityHash() }

func (d textureInfoData) String() string { return d.spec.String() }

func (d textureInfoData) Serialize(w io.Writer) error { return d.spec.Serialize(w) }

func decodeTextureInfoData(r io.Reader) (texspec.TextureInfoData, error) {
	spec, err := DeserializeTextureSpec(r)
	if err != nil {
		return nil, err
	}
	return textureInfoData{spec: spec}, nil
}
