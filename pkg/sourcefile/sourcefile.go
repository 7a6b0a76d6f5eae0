// Package sourcefile resolves an on-disk ".RTCM3" log — possibly already
// gzip-compressed as a ".RTCM3.gz" sibling of the original_source
// unpack_log.py step — into a path the decoder contract (§6.2) can open
// directly. It performs no network transport; SFTP pull and object-store
// upload remain out of scope (§1, §6.5).
package sourcefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-bkg/basecheck/pkg/analysis"
	"github.com/mholt/archiver/v3"
)

// Resolve returns a path to an uncompressed ".RTCM3" file ready for the
// decoder. If path is already uncompressed it is returned unchanged
// after an existence check (§7 InputNotFound). If path ends in a
// single-stream compressed extension archiver/v3 recognizes (.gz,
// .bz2, .xz, .zst, .lz4, .sz), it is decompressed into dir first.
// Multi-file archive formats (.zip, .tar.gz, ...) are not handled here.
func Resolve(path, dir string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", analysis.ErrInputNotFound, path)
	}

	if !isKnownCompressed(path) {
		return path, nil
	}

	dest := filepath.Join(dir, strings.TrimSuffix(filepath.Base(path), archiveSuffix(path)))
	if err := archiver.DecompressFile(path, dest); err != nil {
		return "", fmt.Errorf("decompress %s: %w", path, err)
	}
	return dest, nil
}

func isKnownCompressed(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".bz2", ".xz", ".zst", ".lz4", ".sz":
		return true
	default:
		return false
	}
}

func archiveSuffix(path string) string {
	return filepath.Ext(path)
}
