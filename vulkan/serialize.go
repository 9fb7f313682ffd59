package vulkan

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptSpec is returned by DeserializeTextureSpec when the source holds
// a value no writer produces.
var ErrCorruptSpec = errors.New("vulkan: corrupt texture spec")

// specWire is the encoded layout of a TextureSpec, in field order.
type specWire struct {
	Flags        uint32
	Format       uint32
	ImageTiling  uint32
	UsageFlags   uint32
	SharingMode  uint32
	AspectMask   uint32
	YcbcrPresent uint32
}

// ycbcrWire is the encoded layout of a valid YcbcrConversionInfo.
type ycbcrWire struct {
	Format                      uint32
	ExternalFormat              uint64
	Model                       uint32
	Range                       uint32
	XChromaOffset               uint32
	YChromaOffset               uint32
	ChromaFilter                uint32
	ForceExplicitReconstruction uint32
	ComponentR                  uint32
	ComponentG                  uint32
	ComponentB                  uint32
	ComponentA                  uint32
	FormatFeatures              uint32
}

func (s TextureSpec) wire() specWire {
	w := specWire{
		Flags:       uint32(s.Flags),
		Format:      uint32(s.Format),
		ImageTiling: uint32(s.ImageTiling),
		UsageFlags:  uint32(s.ImageUsageFlags),
		SharingMode: uint32(s.SharingMode),
		AspectMask:  uint32(s.AspectMask),
	}
	if s.YcbcrConversionInfo.IsValid() {
		w.YcbcrPresent = 1
	}
	return w
}

func (y YcbcrConversionInfo) wire() ycbcrWire {
	return ycbcrWire{
		Format:                      uint32(y.Format),
		ExternalFormat:              y.ExternalFormat,
		Model:                       uint32(y.Model),
		Range:                       uint32(y.Range),
		XChromaOffset:               uint32(y.XChromaOffset),
		YChromaOffset:               uint32(y.YChromaOffset),
		ChromaFilter:                uint32(y.ChromaFilter),
		ForceExplicitReconstruction: y.ForceExplicitReconstruction,
		ComponentR:                  uint32(y.Components.R),
		ComponentG:                  uint32(y.Components.G),
		ComponentB:                  uint32(y.Components.B),
		ComponentA:                  uint32(y.Components.A),
		FormatFeatures:              uint32(y.FormatFeatures),
	}
}

func (w ycbcrWire) info() YcbcrConversionInfo {
	return YcbcrConversionInfo{
		Format:                      Format(int32(w.Format)),
		ExternalFormat:              w.ExternalFormat,
		Model:                       SamplerYcbcrModelConversion(int32(w.Model)),
		Range:                       SamplerYcbcrRange(int32(w.Range)),
		XChromaOffset:               ChromaLocation(int32(w.XChromaOffset)),
		YChromaOffset:               ChromaLocation(int32(w.YChromaOffset)),
		ChromaFilter:                Filter(int32(w.ChromaFilter)),
		ForceExplicitReconstruction: w.ForceExplicitReconstruction,
		Components: ComponentMapping{
			R: ComponentSwizzle(int32(w.ComponentR)),
			G: ComponentSwizzle(int32(w.ComponentG)),
			B: ComponentSwizzle(int32(w.ComponentB)),
			A: ComponentSwizzle(int32(w.ComponentA)),
		},
		FormatFeatures: FormatFeatureFlags(w.FormatFeatures),
	}
}

// Serialize writes s to w as little-endian integers: flags, format, tiling,
// usage flags, sharing mode, aspect mask, a Y'CbCr presence flag and, when
// the conversion is valid, its fields.
//
// Every TextureSpec can be serialized; the only errors returned are those
// of w.
func (s TextureSpec) Serialize(w io.Writer) error {
	hdr := s.wire()
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("vulkan: write texture spec: %w", err)
	}
	if hdr.YcbcrPresent == 0 {
		return nil
	}
	ycbcr := s.YcbcrConversionInfo.wire()
	if err := binary.Write(w, binary.LittleEndian, &ycbcr); err != nil {
		return fmt.Errorf("vulkan: write ycbcr conversion: %w", err)
	}
	return nil
}

// DeserializeTextureSpec reads a TextureSpec written by Serialize.
//
// If r ends before every field is read, the error wraps io.EOF (nothing
// read) or io.ErrUnexpectedEOF. ErrCorruptSpec is returned for an invalid
// presence flag or a conversion that claims presence but is not valid.
// The returned spec must be discarded on error.
func DeserializeTextureSpec(r io.Reader) (TextureSpec, error) {
	var hdr specWire
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return TextureSpec{}, fmt.Errorf("vulkan: read texture spec: %w", err)
	}
	spec := TextureSpec{
		Flags:           ImageCreateFlags(hdr.Flags),
		Format:          Format(int32(hdr.Format)),
		ImageTiling:     ImageTiling(int32(hdr.ImageTiling)),
		ImageUsageFlags: ImageUsageFlags(hdr.UsageFlags),
		SharingMode:     SharingMode(int32(hdr.SharingMode)),
		AspectMask:      ImageAspectFlags(hdr.AspectMask),
	}
	switch hdr.YcbcrPresent {
	case 0:
		return spec, nil
	case 1:
	default:
		return TextureSpec{}, ErrCorruptSpec
	}

	var ycbcr ycbcrWire
	if err := binary.Read(r, binary.LittleEndian, &ycbcr); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return TextureSpec{}, fmt.Errorf("vulkan: read ycbcr conversion: %w", err)
	}
	spec.YcbcrConversionInfo = ycbcr.info()
	if !spec.YcbcrConversionInfo.IsValid() {
		return TextureSpec{}, ErrCorruptSpec
	}
	return spec, nil
}
