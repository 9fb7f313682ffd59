// Package cachefile persists TextureInfos between runs.
//
// A cache file starts with a fixed header (the magic "TXS\x00", a format
// version and an entry count, little-endian) followed by an lz4 frame of
// texspec.WriteTextureInfo records. Payloads are decoded through the
// texspec backend registry, so the backend packages of every stored entry
// must be linked in before Read or Load:
//
//	import _ "github.com/gogpu/texspec/vulkan"
//
//	infos, err := cachefile.Load("textures.cache")
package cachefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"

	"github.com/gogpu/texspec"
)

// Version is the format version written by Write.
const Version uint32 = 1

var magic = [4]byte{'T', 'X', 'S', 0}

// Errors returned by Read and Load.
var (
	// ErrNotCacheFile is returned when the source does not start with the
	// cache file magic.
	ErrNotCacheFile = errors.New("cachefile: not a texture cache file")

	// ErrVersion is returned for a file written by another format version.
	ErrVersion = errors.New("cachefile: unsupported version")

	// ErrTruncated is returned when the source ends before every entry the
	// header announces was read.
	ErrTruncated = errors.New("cachefile: truncated")
)

type fileHeader struct {
	Magic   [4]byte
	Version uint32
	Count   uint32
}

// Write writes infos to w as a cache file.
func Write(w io.Writer, infos []texspec.TextureInfo) error {
	if uint64(len(infos)) > math.MaxUint32 {
		return fmt.Errorf("cachefile: %d entries exceed the format limit", len(infos))
	}
	hdr := fileHeader{Magic: magic, Version: Version, Count: uint32(len(infos))}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("cachefile: write header: %w", err)
	}

	zw := lz4.NewWriter(w)
	for i, info := range infos {
		if err := texspec.WriteTextureInfo(zw, info); err != nil {
			return fmt.Errorf("cachefile: entry %d: %w", i, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("cachefile: flush: %w", err)
	}
	return nil
}

// Read reads a cache file written by Write.
func Read(r io.Reader) ([]texspec.TextureInfo, error) {
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrNotCacheFile, err)
		}
		return nil, fmt.Errorf("cachefile: read header: %w", err)
	}
	if hdr.Magic != magic {
		return nil, ErrNotCacheFile
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, hdr.Version)
	}

	zr := lz4.NewReader(r)
	infos := make([]texspec.TextureInfo, 0, min(hdr.Count, 1024))
	for i := range hdr.Count {
		info, err := texspec.ReadTextureInfo(zr)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: entry %d of %d: %w", ErrTruncated, i, hdr.Count, err)
			}
			return nil, fmt.Errorf("cachefile: entry %d: %w", i, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Save writes infos to the file at path. The file is replaced atomically.
func Save(path string, infos []texspec.TextureInfo) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("cachefile: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Write(f, infos); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cachefile: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("cachefile: %w", err)
	}
	texspec.Logger().Debug("cachefile: saved", "path", path, "entries", len(infos))
	return nil
}

// Load reads the cache file at path.
func Load(path string) ([]texspec.TextureInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cachefile: %w", err)
	}
	defer f.Close()

	infos, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	texspec.Logger().Debug("cachefile: loaded", "path", path, "entries", len(infos))
	return infos, nil
}
