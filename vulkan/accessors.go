package vulkan

import (
	"github.com/gogpu/texspec"
)

// The functions below read Vulkan data out of generic wrappers. They assume
// the wrapper was built by this package and panic otherwise.

// TextureInfoSpec returns the Vulkan spec carried by info.
func TextureInfoSpec(info texspec.TextureInfo) TextureSpec {
	return info.Data().(textureInfoData).spec
}

// TextureInfoFormat returns the VkFormat carried by info.
func TextureInfoFormat(info texspec.TextureInfo) Format {
	return TextureInfoSpec(info).Format
}

// TextureInfoUsageFlags returns the VkImageUsageFlags carried by info.
func TextureInfoUsageFlags(info texspec.TextureInfo) ImageUsageFlags {
	return TextureInfoSpec(info).ImageUsageFlags
}

// TextureInfoYcbcrConversionInfo returns the Y'CbCr conversion carried by info.
func TextureInfoYcbcrConversionInfo(info texspec.TextureInfo) YcbcrConversionInfo {
	return TextureInfoSpec(info).YcbcrConversionInfo
}

func textureData(tex texspec.BackendTexture) backendTextureData {
	switch d := tex.Data().(type) {
	case halTextureData:
		return d.backendTextureData
	default:
		return d.(backendTextureData)
	}
}

// BackendTextureImage returns the VkImage wrapped by tex.
func BackendTextureImage(tex texspec.BackendTexture) Image {
	return textureData(tex).image
}

// BackendTextureImageLayout returns the current layout recorded in the
// shared state of tex.
func BackendTextureImageLayout(tex texspec.BackendTexture) ImageLayout {
	return MutableStateImageLayout(tex.MutableState())
}

// BackendTextureQueueFamilyIndex returns the queue family that currently
// owns tex.
func BackendTextureQueueFamilyIndex(tex texspec.BackendTexture) uint32 {
	return MutableStateQueueFamilyIndex(tex.MutableState())
}

// BackendTextureMemoryAlloc returns the memory bound to tex.
func BackendTextureMemoryAlloc(tex texspec.BackendTexture) Alloc {
	return textureData(tex).alloc
}

// BackendTextureMutableState returns the shared state of tex. Every copy of
// tex returns the same pointer.
func BackendTextureMutableState(tex texspec.BackendTexture) *texspec.MutableTextureState {
	return tex.MutableState()
}

// SetBackendTextureMutableState copies state into the shared state of tex,
// so every holder of tex observes the new layout and queue family.
func SetBackendTextureMutableState(tex *texspec.BackendTexture, state *texspec.MutableTextureState) {
	tex.MutableState().Set(state)
}
