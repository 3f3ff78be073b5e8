// Package rename computes filesystem-safe destination paths for music files.
// All functions are pure string transformations; no I/O happens here.
package rename

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Fallback labels used when a tag is missing or sanitizes to nothing.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// maxSegmentLen caps folder name length (common filesystem limit is 255 bytes,
// 200 leaves headroom for suffixes).
const maxSegmentLen = 200

var (
	// reIllegalChars matches characters not allowed in file or folder names
	// on at least one common filesystem.
	reIllegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// reMultiSpace matches runs of whitespace.
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// Segment sanitizes a raw tag value into a single path segment.
// Illegal characters become underscores, whitespace is collapsed, and
// leading/trailing spaces and dots are trimmed. Returns "" if nothing
// survives, so callers can apply their fallback label.
func Segment(s string) string {
	s = reIllegalChars.ReplaceAllString(s, "_")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .")
	if r := []rune(s); len(r) > maxSegmentLen {
		s = strings.TrimRight(string(r[:maxSegmentLen]), " .")
	}
	return s
}

// segmentOr sanitizes s and falls back to the given label when the result is empty.
func segmentOr(s, fallback string) string {
	if cleaned := Segment(s); cleaned != "" {
		return cleaned
	}
	return fallback
}

// AlbumPath returns the relative "Artist/Album" directory for the given raw
// tag values, applying the unknown-artist/album fallbacks.
func AlbumPath(artist, album string) string {
	return filepath.Join(
		segmentOr(artist, UnknownArtist),
		segmentOr(album, UnknownAlbum),
	)
}

// DestPath returns the full destination path for a file: the album directory
// under destRoot joined with the file's original base name.
func DestPath(destRoot, artist, album, filename string) string {
	return filepath.Join(destRoot, AlbumPath(artist, album), filename)
}
