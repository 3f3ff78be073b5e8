package organizer

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/llehouerou/shelve/internal/errmsg"
)

// removeSidecars deletes every file under the source tree whose extension is
// on the sidecar list, whether or not it was ever a move candidate.
func (o *Organizer) removeSidecars(r *Report) {
	for _, path := range o.discoverSidecars() {
		if !o.dryRun {
			if err := os.Remove(path); err != nil {
				r.fail(path, errmsg.OpDeleteSidecar, err)
				continue
			}
		}
		o.gone[path] = true
		r.Sidecars = append(r.Sidecars, relativePath(o.source, path))
	}
}

// pruneEmptyDirs removes directories under the source root left empty after
// the moves. Directories are visited deepest-first so removing a leaf can
// empty its parent; the source root itself is never removed.
func (o *Organizer) pruneEmptyDirs(r *Report) {
	var dirs []string
	_ = filepath.WalkDir(o.source, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() && path != o.source {
			dirs = append(dirs, path)
		}
		return nil
	})

	// Reverse-lexicographic order puts children before their parents.
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))

	for _, dir := range dirs {
		if !o.dirEmpty(dir) {
			continue
		}
		if !o.dryRun {
			if err := os.Remove(dir); err != nil {
				r.fail(dir, errmsg.OpPruneDir, err)
				continue
			}
		}
		o.gone[dir] = true
		r.PrunedDirs = append(r.PrunedDirs, relativePath(o.source, dir))
	}
}

// dirEmpty reports whether a directory holds nothing but entries already
// removed this run (physically, or on paper during a dry run).
func (o *Organizer) dirEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !o.gone[filepath.Join(dir, e.Name())] {
			return false
		}
	}
	return true
}
