package vulkan

// YcbcrConversionInfo describes the sampler Y'CbCr conversion a texture
// needs. Only multi-planar and external formats carry a valid one.
type YcbcrConversionInfo struct {
	// Format is the texture format the conversion applies to. It is
	// FormatUndefined when ExternalFormat is used.
	Format Format

	// ExternalFormat is an Android hardware buffer external format, or 0.
	ExternalFormat uint64

	Model         SamplerYcbcrModelConversion
	Range         SamplerYcbcrRange
	XChromaOffset ChromaLocation
	YChromaOffset ChromaLocation
	ChromaFilter  Filter

	// ForceExplicitReconstruction is a VkBool32.
	ForceExplicitReconstruction uint32

	Components ComponentMapping

	// FormatFeatures are the features of Format (or of ExternalFormat),
	// which decide the filters the conversion may use.
	FormatFeatures FormatFeatureFlags
}

// IsValid reports whether the info describes an actual conversion.
func (y YcbcrConversionInfo) IsValid() bool {
	return y.Model != SamplerYcbcrModelRGBIdentity || y.ExternalFormat != 0
}

// Equal reports whether two infos describe the same conversion.
// Two invalid infos are equal regardless of their other fields.
func (y YcbcrConversionInfo) Equal(other YcbcrConversionInfo) bool {
	if !y.IsValid() && !other.IsValid() {
		return true
	}
	return y == other
}
