// Package tags provides unified tag reading for music files.
// It consolidates metadata handling for MP3, FLAC, M4A, WAV and Ogg formats.
package tags

import (
	"path/filepath"
	"strings"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtM4A  = ".m4a"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
)

// Tag contains the tag metadata read from a music file.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
}

// FolderArtist returns the artist to file the track under.
// Album artist takes priority so compilations stay together.
func (t *Tag) FolderArtist() string {
	if t.AlbumArtist != "" {
		return t.AlbumArtist
	}
	return t.Artist
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtM4A, ExtWAV, ExtOGG:
		return true
	}
	return false
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
