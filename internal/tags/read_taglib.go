package tags

import (
	"path/filepath"

	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata using TagLib. It serves as the fallback for
// containers dhowden/tag rejects, and as the only reader for WAV files.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	title := tags.get(taglib.Title)
	if title == "" {
		title = filepath.Base(path)
	}

	artist := tags.get(taglib.Artist)
	albumArtist := tags.get(taglib.AlbumArtist)
	if albumArtist == "" {
		albumArtist = artist
	}

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      artist,
		AlbumArtist: albumArtist,
		Album:       tags.get(taglib.Album),
		Genre:       tags.get(taglib.Genre),
	}, nil
}
