// Package loader turns raw bytes (or an archive containing them) into
// the ROM image handed to cartridge.New, and fingerprints the result.
// It is the Go-native home of spec.md's "(c) a byte slice loader for
// ROM" boundary point, generalized to accept the archive formats the
// retrieval pack already depends on.
package loader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// sevenZipSignature is the magic header bodgit/sevenzip looks for.
var sevenZipSignature = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}

// Load returns the raw ROM bytes contained in data. If data is a 7z
// archive, the first regular file entry is extracted and returned
// instead; everything else is returned unmodified, on the assumption
// it is already a bare .gb/.gbc image.
func Load(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, sevenZipSignature) {
		return data, nil
	}

	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("loader: opening 7z archive: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("loader: 7z archive has no entries")
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("loader: opening %s: %w", f.Name, err)
		}
		contents, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("loader: reading %s: %w", f.Name, err)
		}
		return contents, nil
	}

	return nil, fmt.Errorf("loader: 7z archive contains no regular files")
}

// Fingerprint returns a fast, stable identity for a ROM image, used by
// a host to key save files and cached state. xxhash is used in place
// of the teacher's crypto/md5 purely because it is the pack's own
// dependency and is an order of magnitude cheaper for multi-megabyte
// ROM images; the fingerprint need not be cryptographically strong.
func Fingerprint(rom []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(rom))
}
