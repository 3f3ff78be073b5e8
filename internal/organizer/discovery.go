package organizer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/shelve/internal/tags"
)

// discoverMusicFiles walks the source tree and returns all music files found.
func (o *Organizer) discoverMusicFiles() []string {
	var files []string
	_ = filepath.WalkDir(o.source, func(path string, d os.DirEntry, walkErr error) error {
		// Skip any walk errors - intentionally continuing to scan other paths
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			return nil
		}
		if !tags.IsMusicFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files
}

// discoverSidecars walks the source tree and returns all files whose
// extension is on the configured sidecar list.
func (o *Organizer) discoverSidecars() []string {
	if len(o.sidecarExts) == 0 {
		return nil
	}
	var files []string
	_ = filepath.WalkDir(o.source, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			return nil
		}
		if o.sidecarExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	return files
}
