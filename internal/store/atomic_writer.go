package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nekotick/synccore/internal/logger"
)

// tempMarker is the fixed suffix appended to a destination path to name its
// in-progress temp artifact. Chosen to be unlikely in user content; the
// predicate below only honours it as a true suffix, so a file whose own name
// merely contains the marker mid-name is never misclassified.
const tempMarker = ".synctmp"

// TempPathFor returns the temp artifact path for finalPath. The mapping is
// deterministic and reversible via [FinalPathFor].
func TempPathFor(finalPath string) string {
	return finalPath + tempMarker
}

// FinalPathFor is the inverse of [TempPathFor]. It returns tempPath unchanged
// when tempPath does not carry the marker as a true suffix.
func FinalPathFor(tempPath string) string {
	if !IsTempFile(tempPath) {
		return tempPath
	}
	return strings.TrimSuffix(tempPath, tempMarker)
}

// IsTempFile reports whether path names a temp artifact: the marker must be
// the exact trailing suffix, and the file name must not be the bare marker
// with no base name in front of it.
func IsTempFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, tempMarker) && base != tempMarker
}

// AssetWriter persists binary assets with the temp-file + rename pattern, so
// a reader of the destination path only ever observes the old content or the
// fully-new content, never a partial write.
type AssetWriter struct {
	fs     FileSystem
	logger *logger.Logger
}

// NewAssetWriter constructs an [AssetWriter] over the given filesystem.
func NewAssetWriter(fsys FileSystem, log *logger.Logger) *AssetWriter {
	return &AssetWriter{fs: fsys, logger: log}
}

// Write stores data at finalPath atomically: the bytes are written to the
// temp artifact, flushed to stable storage, and then renamed over finalPath.
//
// On any failure before the rename the temp artifact is left in place for a
// later [AssetWriter.SweepOrphans] pass; the prior content of finalPath, if
// any, is never touched. A failed rename likewise leaves finalPath intact.
func (w *AssetWriter) Write(finalPath string, data []byte) error {
	if dir := filepath.Dir(finalPath); dir != "." {
		if err := w.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create asset dir: %w", err)
		}
	}

	tempPath := TempPathFor(finalPath)

	f, err := w.fs.OpenWrite(tempPath)
	if err != nil {
		return fmt.Errorf("open temp artifact: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp artifact: %w", err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp artifact: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}

	if err = w.fs.Rename(tempPath, finalPath); err != nil {
		return fmt.Errorf("commit asset write: %w", err)
	}

	return nil
}

// SweepOrphans removes temp artifacts in dir that are older than olderThan,
// i.e. leftovers of writes interrupted by a crash. Per-file removal failures
// are logged and the sweep continues; the number of removed artifacts is
// returned.
func (w *AssetWriter) SweepOrphans(dir string, olderThan time.Duration) (int, error) {
	entries, err := w.fs.ListDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list asset dir: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsTempFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			w.logger.Err(err).Str("path", path).Msg("stat orphan candidate")
			continue
		}
		if info.ModTime().After(cutoff) {
			// Could still belong to an in-flight write.
			continue
		}

		if err := w.fs.Remove(path); err != nil {
			w.logger.Err(err).Str("path", path).Msg("remove orphan temp artifact")
			continue
		}
		removed++
	}

	return removed, nil
}
