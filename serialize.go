package texspec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gputypes"
)

// textureInfoHeader is the fixed-size prefix of an encoded TextureInfo.
type textureInfoHeader struct {
	Valid       uint32
	Backend     uint32
	SampleCount uint32
	Mipmapped   uint32
}

// WriteTextureInfo writes info to w: a validity flag, the backend tag, the
// sample count and the mipmapping mode as little-endian uint32 values,
// followed by the backend payload. An invalid TextureInfo is written as a
// zero header with no payload.
//
// The only errors returned are those of w.
func WriteTextureInfo(w io.Writer, info TextureInfo) error {
	var hdr textureInfoHeader
	if info.IsValid() {
		hdr = textureInfoHeader{
			Valid:       1,
			Backend:     uint32(info.Backend()),
			SampleCount: info.sampleCount,
			Mipmapped:   uint32(info.mipmapped),
		}
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("texspec: write texture info: %w", err)
	}
	if !info.IsValid() {
		return nil
	}
	if err := info.data.Serialize(w); err != nil {
		return fmt.Errorf("texspec: write %s payload: %w", BackendName(info.Backend()), err)
	}
	return nil
}

// ReadTextureInfo reads a TextureInfo written by WriteTextureInfo.
//
// The payload is decoded by the decoder registered for its backend;
// ErrUnknownBackend is returned if there is none. A source that ends early
// yields an error wrapping io.ErrUnexpectedEOF (or io.EOF if nothing was
// read at all).
func ReadTextureInfo(r io.Reader) (TextureInfo, error) {
	var hdr textureInfoHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return TextureInfo{}, fmt.Errorf("texspec: read texture info: %w", err)
	}
	switch hdr.Valid {
	case 0:
		if hdr != (textureInfoHeader{}) {
			return TextureInfo{}, ErrCorruptTextureInfo
		}
		return TextureInfo{}, nil
	case 1:
	default:
		return TextureInfo{}, ErrCorruptTextureInfo
	}
	if hdr.Mipmapped > uint32(MipmappedYes) {
		return TextureInfo{}, ErrCorruptTextureInfo
	}

	backend := gputypes.Backend(hdr.Backend)
	decode, ok := decoderFor(backend)
	if !ok {
		return TextureInfo{}, fmt.Errorf("%w: %d", ErrUnknownBackend, hdr.Backend)
	}
	data, err := decode(r)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return TextureInfo{}, fmt.Errorf("texspec: read %s payload: %w", BackendName(backend), err)
	}
	if data.Backend() != backend {
		return TextureInfo{}, ErrCorruptTextureInfo
	}
	return NewTextureInfo(data, hdr.SampleCount, Mipmapped(hdr.Mipmapped)), nil
}
