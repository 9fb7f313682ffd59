package cachefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"

	"github.com/gogpu/texspec"
	"github.com/gogpu/texspec/vulkan"
)

func testInfos() []texspec.TextureInfo {
	base := vulkan.TextureInfo{
		SampleCount:     1,
		Format:          vulkan.FormatR8G8B8A8Unorm,
		ImageTiling:     vulkan.ImageTilingOptimal,
		ImageUsageFlags: vulkan.ImageUsageSampled | vulkan.ImageUsageTransferDst,
		SharingMode:     vulkan.SharingModeExclusive,
		AspectMask:      vulkan.ImageAspectColor,
	}

	msaa := base
	msaa.SampleCount = 4
	msaa.ImageUsageFlags = vulkan.ImageUsageColorAttachment

	video := base
	video.Format = vulkan.FormatG8B8R82Plane420Unorm
	video.Mipmapped = texspec.MipmappedNo
	video.YcbcrConversionInfo = vulkan.YcbcrConversionInfo{
		Format:       vulkan.FormatG8B8R82Plane420Unorm,
		Model:        vulkan.SamplerYcbcrModelYcbcr709,
		Range:        vulkan.SamplerYcbcrRangeITUNarrow,
		ChromaFilter: vulkan.FilterLinear,
	}

	mips := base
	mips.Mipmapped = texspec.MipmappedYes

	return []texspec.TextureInfo{
		vulkan.MakeTextureInfo(base),
		vulkan.MakeTextureInfo(msaa),
		{},
		vulkan.MakeTextureInfo(video),
		vulkan.MakeTextureInfo(mips),
	}
}

func assertSameInfos(t *testing.T, got, want []texspec.TextureInfo) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
		if got[i].Mipmapped() != want[i].Mipmapped() {
			t.Errorf("entry %d mipmapped = %v, want %v", i, got[i].Mipmapped(), want[i].Mipmapped())
		}
	}
}

func TestWriteRead(t *testing.T) {
	want := testInfos()

	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("TXS\x00")) {
		t.Errorf("file starts with %q, want magic", buf.Bytes()[:4])
	}
	if v := binary.LittleEndian.Uint32(buf.Bytes()[4:8]); v != Version {
		t.Errorf("version = %d, want %d", v, Version)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	assertSameInfos(t, got, want)
}

func TestWriteReadEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestReadErrors(t *testing.T) {
	var valid bytes.Buffer
	if err := Write(&valid, testInfos()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	header := func(m [4]byte, version, count uint32) []byte {
		var b bytes.Buffer
		_ = binary.Write(&b, binary.LittleEndian, fileHeader{Magic: m, Version: version, Count: count})
		return b.Bytes()
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotCacheFile},
		{"short header", []byte("TXS"), ErrNotCacheFile},
		{"bad magic", header([4]byte{'K', 'A', 'R', 0}, Version, 0), ErrNotCacheFile},
		{"future version", header(magic, Version+1, 0), ErrVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadMissingEntries(t *testing.T) {
	infos := testInfos()

	// A header announcing more entries than the body holds.
	var body bytes.Buffer
	zw := lz4.NewWriter(&body)
	for _, info := range infos[:2] {
		if err := texspec.WriteTextureInfo(zw, info); err != nil {
			t.Fatalf("WriteTextureInfo() error = %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var file bytes.Buffer
	_ = binary.Write(&file, binary.LittleEndian, fileHeader{Magic: magic, Version: Version, Count: 3})
	file.Write(body.Bytes())

	if _, err := Read(&file); !errors.Is(err, ErrTruncated) {
		t.Errorf("Read() error = %v, want ErrTruncated", err)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteError(t *testing.T) {
	sentinel := errors.New("pipe closed")
	if err := Write(failWriter{err: sentinel}, testInfos()); !errors.Is(err, sentinel) {
		t.Errorf("Write() error = %v, want %v", err, sentinel)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textures.cache")
	want := testInfos()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSameInfos(t, got, want)

	// Saving again replaces the file and leaves no temporary behind.
	if err := Save(path, want[:1]); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want 1", len(entries))
	}
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSameInfos(t, got, want[:1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cache"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
