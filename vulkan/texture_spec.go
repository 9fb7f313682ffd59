package vulkan

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// TextureSpec is the Vulkan-specific description of a texture: the
// attributes a VkImage was (or will be) created with.
//
// TextureSpec is a value type. Once a texture is created from a spec, the
// spec is never changed for the lifetime of the texture.
type TextureSpec struct {
	Flags               ImageCreateFlags
	Format              Format
	ImageTiling         ImageTiling
	ImageUsageFlags     ImageUsageFlags
	SharingMode         SharingMode
	AspectMask          ImageAspectFlags
	YcbcrConversionInfo YcbcrConversionInfo
}

// NewDefaultTextureSpec returns the empty spec: undefined format, optimal
// tiling, exclusive sharing, color aspect, no usage and no conversion.
// It is a placeholder and must not be used to create an image.
func NewDefaultTextureSpec() TextureSpec {
	return TextureSpec{
		Format:      FormatUndefined,
		ImageTiling: ImageTilingOptimal,
		SharingMode: SharingModeExclusive,
		AspectMask:  ImageAspectColor,
	}
}

// NewTextureSpec copies the Vulkan attributes of info. No validation is done.
func NewTextureSpec(info TextureInfo) TextureSpec {
	return TextureSpec{
		Flags:               info.Flags,
		Format:              info.Format,
		ImageTiling:         info.ImageTiling,
		ImageUsageFlags:     info.ImageUsageFlags,
		SharingMode:         info.SharingMode,
		AspectMask:          info.AspectMask,
		YcbcrConversionInfo: info.YcbcrConversionInfo,
	}
}

// Equal reports whether every attribute, including the Y'CbCr conversion,
// is identical.
func (s TextureSpec) Equal(that TextureSpec) bool {
	return s.Flags == that.Flags &&
		s.Format == that.Format &&
		s.ImageTiling == that.ImageTiling &&
		s.ImageUsageFlags == that.ImageUsageFlags &&
		s.SharingMode == that.SharingMode &&
		s.AspectMask == that.AspectMask &&
		s.YcbcrConversionInfo.Equal(that.YcbcrConversionInfo)
}

// IsCompatible reports whether an image created with that can serve a
// request described by s.
//
// All attributes must match except the usage flags: every usage bit of s
// must be set in that, (s.ImageUsageFlags & that.ImageUsageFlags) ==
// s.ImageUsageFlags. The relation is reflexive but not symmetric.
func (s TextureSpec) IsCompatible(that TextureSpec) bool {
	return s.Flags == that.Flags &&
		s.Format == that.Format &&
		s.ImageTiling == that.ImageTiling &&
		s.SharingMode == that.SharingMode &&
		s.AspectMask == that.AspectMask &&
		(s.ImageUsageFlags&that.ImageUsageFlags) == s.ImageUsageFlags &&
		s.YcbcrConversionInfo.Equal(that.YcbcrConversionInfo)
}

// String renders the spec for logs and golden files. The Y'CbCr conversion
// is not included.
func (s TextureSpec) String() string {
	return fmt.Sprintf(
		"flags=0x%08X,format=%d,imageTiling=%d,imageUsageFlags=0x%08X,sharingMode=%d,aspectMask=%d",
		uint32(s.Flags),
		int32(s.Format),
		int32(s.ImageTiling),
		uint32(s.ImageUsageFlags),
		int32(s.SharingMode),
		uint32(s.AspectMask))
}

// compatibilityHash hashes every attribute IsCompatible compares exactly.
// Usage flags are left out, and invalid conversions hash alike.
func (s TextureSpec) compatibilityHash() uint64 {
	key := s
	key.ImageUsageFlags = 0
	if !key.YcbcrConversionInfo.IsValid() {
		key.YcbcrConversionInfo = YcbcrConversionInfo{}
	}

	h := fnv.New64a()
	_ = binary.Write(h, binary.LittleEndian, key.wire())
	if key.YcbcrConversionInfo.IsValid() {
		_ = binary.Write(h, binary.LittleEndian, key.YcbcrConversionInfo.wire())
	}
	return h.Sum64()
}
