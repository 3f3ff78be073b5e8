package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
func Read(path string) (*Tag, error) {
	ext := strings.ToLower(filepath.Ext(path))

	// dhowden/tag has no WAV support, go straight to taglib
	if ext == ExtWAV {
		return readWithTaglib(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch ext {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		case ExtM4A, ExtFLAC, ExtOGG:
			// dhowden/tag can't parse some files in these containers
			return readWithTaglib(path)
		}
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = m.Artist()
	}

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		AlbumArtist: albumArtist,
		Album:       m.Album(),
		Genre:       m.Genre(),
	}, nil
}
