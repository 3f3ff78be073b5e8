// Package organizer moves music files from a source directory into an
// Artist/Album hierarchy under a destination root, removing exact-content
// duplicates, sidecar files, and directories left empty by the moves.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/shelve/internal/errmsg"
	"github.com/llehouerou/shelve/internal/rename"
	"github.com/llehouerou/shelve/internal/tags"
)

// TagReader reads tag metadata from a music file. The organizer only needs
// artist and album; failures are recovered with default labels, never fatal.
type TagReader interface {
	Read(path string) (*tags.Tag, error)
}

// ReaderFunc adapts a function to the TagReader interface.
type ReaderFunc func(path string) (*tags.Tag, error)

func (f ReaderFunc) Read(path string) (*tags.Tag, error) { return f(path) }

// Options configures an Organizer.
type Options struct {
	Source            string
	Destination       string
	SidecarExtensions []string  // lowercase, with leading dot
	DryRun            bool      // report planned actions without touching the filesystem
	Reader            TagReader // nil means tags.Read
}

// Organizer runs the organize workflow. Construct with New.
type Organizer struct {
	source      string
	destination string
	sidecarExts map[string]bool
	dryRun      bool
	reader      TagReader

	// gone tracks source paths removed (or, in dry-run, paths that would be
	// removed) so the prune phase can see through them.
	gone map[string]bool
}

// New creates an Organizer from the given options.
func New(opts Options) *Organizer {
	reader := opts.Reader
	if reader == nil {
		reader = ReaderFunc(tags.Read)
	}
	exts := make(map[string]bool, len(opts.SidecarExtensions))
	for _, ext := range opts.SidecarExtensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Organizer{
		source:      filepath.Clean(opts.Source),
		destination: filepath.Clean(opts.Destination),
		sidecarExts: exts,
		dryRun:      opts.DryRun,
		reader:      reader,
		gone:        make(map[string]bool),
	}
}

// Run executes the workflow: scan, move each music file, delete sidecars,
// prune empty directories. Only a missing source root is fatal; every
// per-file failure is recorded in the report and processing continues.
func (o *Organizer) Run() (*Report, error) {
	info, err := os.Stat(o.source)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", o.source)
	}

	if !o.dryRun {
		if err := os.MkdirAll(o.destination, 0o755); err != nil {
			return nil, fmt.Errorf("destination directory: %w", err)
		}
	}

	report := &Report{}

	for _, path := range o.discoverMusicFiles() {
		o.organizeFile(path, report)
	}

	o.removeSidecars(report)
	o.pruneEmptyDirs(report)

	return report, nil
}

// organizeFile moves a single music file to its computed destination.
func (o *Organizer) organizeFile(path string, r *Report) {
	t, err := o.reader.Read(path)
	if err != nil {
		// Unreadable tags never block the move: file under the default labels.
		r.Notes = append(r.Notes, errmsg.FormatWith(errmsg.OpReadTags, relativePath(o.source, path), err))
		t = &tags.Tag{Path: path}
	}

	dest := rename.DestPath(o.destination, t.FolderArtist(), t.Album, filepath.Base(path))

	duplicate, err := o.findDuplicate(filepath.Dir(dest), path)
	if err != nil {
		r.fail(path, errmsg.OpCompare, err)
		return
	}

	if duplicate {
		if !o.dryRun {
			if err := os.Remove(path); err != nil {
				r.fail(path, errmsg.OpDropSource, err)
				return
			}
		}
		o.gone[path] = true
		r.Duplicates = append(r.Duplicates, relativePath(o.source, path))
		return
	}

	resolved, err := o.availablePath(dest)
	if err != nil {
		r.fail(path, errmsg.OpCompare, err)
		return
	}

	size := int64(0)
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	if !o.dryRun {
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			r.fail(path, errmsg.OpCreateDir, err)
			return
		}
		if err := moveFile(path, resolved); err != nil {
			r.fail(path, errmsg.OpMoveFile, err)
			return
		}
	}

	o.gone[path] = true
	r.Moved = append(r.Moved, relativePath(o.destination, resolved))
	r.BytesMoved += size
}

// findDuplicate reports whether any file already in destDir has content
// byte-identical to src, regardless of name. Identical tags or names alone
// never count as duplicates.
func (o *Organizer) findDuplicate(destDir, src string) (bool, error) {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		same, err := filesIdentical(src, filepath.Join(destDir, e.Name()))
		if err != nil {
			return false, err
		}
		if same {
			return true, nil
		}
	}
	return false, nil
}

// availablePath returns dest if nothing exists there, otherwise the first
// free " (n)" variant before the extension, counting up from 1. No existing
// file is ever overwritten.
func (o *Organizer) availablePath(dest string) (string, error) {
	for n := 0; ; n++ {
		candidate := dest
		if n > 0 {
			candidate = numberedPath(dest, n)
		}

		_, err := os.Lstat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// numberedPath inserts " (n)" before the extension: "song.mp3" -> "song (1).mp3".
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(path, ext), n, ext)
}

// relativePath returns the path relative to root, or the full path if not under root.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
