package vulkan

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/gogpu/texspec"
)

// =============================================================================
// TextureSpec encoding
// =============================================================================

func TestTextureSpecRoundTrip(t *testing.T) {
	external := colorSpec(ImageUsageSampled)
	external.Format = FormatUndefined
	external.YcbcrConversionInfo = YcbcrConversionInfo{
		ExternalFormat: 0xdeadbeefcafe,
		Model:          SamplerYcbcrModelYcbcr601,
		Components:     ComponentMapping{R: ComponentSwizzleB, B: ComponentSwizzleR},
	}

	planar := TextureSpec{
		Flags:               ImageCreateDisjoint,
		Format:              FormatG8B8R83Plane420Unorm,
		ImageTiling:         ImageTilingOptimal,
		ImageUsageFlags:     ImageUsageSampled | ImageUsageTransferDst,
		SharingMode:         SharingModeExclusive,
		AspectMask:          ImageAspectPlane0 | ImageAspectPlane1 | ImageAspectPlane2,
		YcbcrConversionInfo: nv12Conversion(),
	}

	tests := []struct {
		name string
		spec TextureSpec
		size int
	}{
		{"default", NewDefaultTextureSpec(), 28},
		{"color", colorSpec(ImageUsageSampled | ImageUsageColorAttachment), 28},
		{"linear concurrent", TextureSpec{
			Format:          FormatR16G16B16A16Sfloat,
			ImageTiling:     ImageTilingLinear,
			ImageUsageFlags: ImageUsageTransferSrc,
			SharingMode:     SharingModeConcurrent,
			AspectMask:      ImageAspectColor,
		}, 28},
		{"external ycbcr", external, 28 + 56},
		{"planar ycbcr", planar, 28 + 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.spec.Serialize(&buf); err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if buf.Len() != tt.size {
				t.Errorf("encoded size = %d, want %d", buf.Len(), tt.size)
			}

			got, err := DeserializeTextureSpec(&buf)
			if err != nil {
				t.Fatalf("DeserializeTextureSpec() error = %v", err)
			}
			if !got.Equal(tt.spec) {
				t.Errorf("round trip = %v, want %v", got, tt.spec)
			}
			if got != tt.spec {
				t.Errorf("round trip = %+v, want %+v", got, tt.spec)
			}
			if buf.Len() != 0 {
				t.Errorf("%d bytes left unread", buf.Len())
			}
		})
	}
}

func TestTextureSpecSerializeDropsInvalidConversion(t *testing.T) {
	spec := colorSpec(ImageUsageSampled)
	spec.YcbcrConversionInfo.Range = SamplerYcbcrRangeITUNarrow

	var buf bytes.Buffer
	if err := spec.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	got, err := DeserializeTextureSpec(&buf)
	if err != nil {
		t.Fatalf("DeserializeTextureSpec() error = %v", err)
	}
	if !got.Equal(spec) {
		t.Errorf("round trip = %v, want equal to %v", got, spec)
	}
	if got.YcbcrConversionInfo != (YcbcrConversionInfo{}) {
		t.Errorf("YcbcrConversionInfo = %+v, want zero", got.YcbcrConversionInfo)
	}
}

func TestTextureSpecEncodingIsLittleEndian(t *testing.T) {
	spec := colorSpec(ImageUsageSampled)
	var buf bytes.Buffer
	if err := spec.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	b := buf.Bytes()
	if got := binary.LittleEndian.Uint32(b[4:8]); got != uint32(FormatR8G8B8A8Unorm) {
		t.Errorf("format field = %d, want %d", got, FormatR8G8B8A8Unorm)
	}
	if got := binary.LittleEndian.Uint32(b[12:16]); got != uint32(ImageUsageSampled) {
		t.Errorf("usage field = %#x, want %#x", got, ImageUsageSampled)
	}
}

func TestDeserializeTextureSpecTruncated(t *testing.T) {
	spec := colorSpec(ImageUsageSampled)
	spec.YcbcrConversionInfo = nv12Conversion()

	var buf bytes.Buffer
	if err := spec.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	full := buf.Bytes()

	if _, err := DeserializeTextureSpec(bytes.NewReader(nil)); !errors.Is(err, io.EOF) {
		t.Errorf("empty input: error = %v, want io.EOF", err)
	}
	for n := 1; n < len(full); n++ {
		_, err := DeserializeTextureSpec(bytes.NewReader(full[:n]))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("prefix %d: error = %v, want io.ErrUnexpectedEOF", n, err)
		}
	}
}

func TestDeserializeTextureSpecCorrupt(t *testing.T) {
	t.Run("presence flag", func(t *testing.T) {
		hdr := colorSpec(ImageUsageSampled).wire()
		hdr.YcbcrPresent = 2
		var buf bytes.Buffer
		_ = binary.Write(&buf, binary.LittleEndian, &hdr)

		if _, err := DeserializeTextureSpec(&buf); !errors.Is(err, ErrCorruptSpec) {
			t.Errorf("error = %v, want ErrCorruptSpec", err)
		}
	})

	t.Run("present but invalid conversion", func(t *testing.T) {
		hdr := colorSpec(ImageUsageSampled).wire()
		hdr.YcbcrPresent = 1
		var buf bytes.Buffer
		_ = binary.Write(&buf, binary.LittleEndian, &hdr)
		_ = binary.Write(&buf, binary.LittleEndian, YcbcrConversionInfo{}.wire())

		if _, err := DeserializeTextureSpec(&buf); !errors.Is(err, ErrCorruptSpec) {
			t.Errorf("error = %v, want ErrCorruptSpec", err)
		}
	})
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestTextureSpecSerializeWriterError(t *testing.T) {
	sentinel := errors.New("disk full")
	err := colorSpec(ImageUsageSampled).Serialize(failWriter{err: sentinel})
	if !errors.Is(err, sentinel) {
		t.Errorf("Serialize() error = %v, want %v", err, sentinel)
	}
}

// =============================================================================
// Generic TextureInfo encoding
// =============================================================================

func TestTextureInfoRoundTripThroughRegistry(t *testing.T) {
	if !texspec.IsRegistered(Backend) {
		t.Fatal("Vulkan backend not registered")
	}

	info := MakeTextureInfo(TextureInfo{
		SampleCount:         4,
		Mipmapped:           texspec.MipmappedYes,
		Format:              FormatG8B8R82Plane420Unorm,
		ImageTiling:         ImageTilingOptimal,
		ImageUsageFlags:     ImageUsageSampled,
		SharingMode:         SharingModeExclusive,
		AspectMask:          ImageAspectColor,
		YcbcrConversionInfo: nv12Conversion(),
	})

	var buf bytes.Buffer
	if err := texspec.WriteTextureInfo(&buf, info); err != nil {
		t.Fatalf("WriteTextureInfo() error = %v", err)
	}
	got, err := texspec.ReadTextureInfo(&buf)
	if err != nil {
		t.Fatalf("ReadTextureInfo() error = %v", err)
	}
	if !got.Equal(info) {
		t.Errorf("round trip = %v, want %v", got, info)
	}
	if got.NumSamples() != 4 || got.Mipmapped() != texspec.MipmappedYes {
		t.Errorf("samples, mipmapped = %d, %v, want 4, yes", got.NumSamples(), got.Mipmapped())
	}
	if TextureInfoYcbcrConversionInfo(got) != nv12Conversion() {
		t.Errorf("conversion = %+v, want %+v", TextureInfoYcbcrConversionInfo(got), nv12Conversion())
	}
}

func TestReadTextureInfoTruncatedPayload(t *testing.T) {
	info := MakeTextureInfo(TextureInfo{SampleCount: 1, Format: FormatR8Unorm, AspectMask: ImageAspectColor})

	var buf bytes.Buffer
	if err := texspec.WriteTextureInfo(&buf, info); err != nil {
		t.Fatalf("WriteTextureInfo() error = %v", err)
	}
	full := buf.Bytes()
	for n := 1; n < len(full); n++ {
		if _, err := texspec.ReadTextureInfo(bytes.NewReader(full[:n])); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("prefix %d: error = %v, want io.ErrUnexpectedEOF", n, err)
		}
	}
}
