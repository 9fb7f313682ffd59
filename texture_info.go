package texspec

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/gogpu/gputypes"
)

// TextureInfoData is the backend-specific part of a TextureInfo.
//
// Each backend provides exactly one implementation. TextureInfo compares the
// backend tags before calling Equal or IsCompatible, so an implementation
// may assume that other was produced by the same backend.
type TextureInfoData interface {
	// Backend returns the backend that produced the payload.
	Backend() gputypes.Backend

	// Equal reports whether both payloads hold identical attributes.
	Equal(other TextureInfoData) bool

	// IsCompatible reports whether a texture created from other can serve
	// a request described by the receiver.
	IsCompatible(other TextureInfoData) bool

	// CompatibilityHash hashes every attribute that IsCompatible requires
	// to match exactly. Compatible payloads have equal hashes.
	CompatibilityHash() uint64

	// String renders the payload for logs.
	String() string

	// Serialize writes the payload in the backend's binary encoding.
	Serialize(w io.Writer) error
}

// TextureInfo is the backend-agnostic description of a texture.
//
// TextureInfo is a value type. The zero value is an invalid TextureInfo
// that describes no backend.
type TextureInfo struct {
	data        TextureInfoData
	sampleCount uint32
	mipmapped   Mipmapped
}

// NewTextureInfo wraps a backend payload. It is meant to be called by backend
// packages; applications use the backend's constructor (e.g.
// vulkan.MakeTextureInfo).
func NewTextureInfo(data TextureInfoData, sampleCount uint32, mipmapped Mipmapped) TextureInfo {
	return TextureInfo{
		data:        data,
		sampleCount: sampleCount,
		mipmapped:   mipmapped,
	}
}

// IsValid reports whether the TextureInfo carries a backend payload.
func (i TextureInfo) IsValid() bool {
	return i.data != nil
}

// Backend returns the backend the TextureInfo was built for.
// It returns the zero Backend for an invalid TextureInfo.
func (i TextureInfo) Backend() gputypes.Backend {
	if i.data == nil {
		var zero gputypes.Backend
		return zero
	}
	return i.data.Backend()
}

// NumSamples returns the sample count.
func (i TextureInfo) NumSamples() uint32 {
	return i.sampleCount
}

// Mipmapped returns the mipmapping mode.
func (i TextureInfo) Mipmapped() Mipmapped {
	return i.mipmapped
}

// Data returns the backend payload. Backend packages type-assert it to
// their own implementation.
func (i TextureInfo) Data() TextureInfoData {
	return i.data
}

// Equal reports whether two TextureInfos are identical.
// Two invalid TextureInfos are equal.
func (i TextureInfo) Equal(other TextureInfo) bool {
	if !i.IsValid() || !other.IsValid() {
		return i.IsValid() == other.IsValid()
	}
	if i.Backend() != other.Backend() {
		return false
	}
	return i.sampleCount == other.sampleCount &&
		i.mipmapped == other.mipmapped &&
		i.data.Equal(other.data)
}

// IsCompatible reports whether a texture described by existing can serve a
// request described by i.
//
// Sample counts must match. A mipmapped request needs a mipmapped texture;
// a request without mipmaps may use either. The backend payloads decide the
// rest. TextureInfos built for different backends are never compatible.
func (i TextureInfo) IsCompatible(existing TextureInfo) bool {
	if !i.IsValid() || !existing.IsValid() {
		return false
	}
	if i.Backend() != existing.Backend() {
		return false
	}
	if i.sampleCount != existing.sampleCount {
		return false
	}
	if i.mipmapped == MipmappedYes && existing.mipmapped == MipmappedNo {
		return false
	}
	return i.data.IsCompatible(existing.data)
}

// CompatibilityHash hashes the attributes that must match exactly for two
// TextureInfos to be compatible. Mipmapping is left out because it is not
// compared exactly.
func (i TextureInfo) CompatibilityHash() uint64 {
	if !i.IsValid() {
		return 0
	}
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(i.Backend()))
	binary.LittleEndian.PutUint32(buf[4:8], i.sampleCount)
	binary.LittleEndian.PutUint64(buf[8:16], i.data.CompatibilityHash())
	_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	return h.Sum64()
}

// String renders the TextureInfo for logs, e.g.
// "Vulkan(flags=0x00000000,...,sampleCount=1,mipmapped=no)".
func (i TextureInfo) String() string {
	if !i.IsValid() {
		return "{invalid}"
	}
	return fmt.Sprintf("%s(%s,sampleCount=%d,mipmapped=%s)",
		BackendName(i.Backend()), i.data.String(), i.sampleCount, i.mipmapped)
}
