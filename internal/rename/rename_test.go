package rename

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pink Floyd", "Pink Floyd"},
		{"AC/DC", "AC_DC"},
		{"Back\\Slash", "Back_Slash"},
		{"Some Band: Greatest Hits", "Some Band_ Greatest Hits"},
		{"What?", "What_"},
		{`Say "Hello"`, "Say _Hello_"},
		{"Bigger > Than < This", "Bigger _ Than _ This"},
		{"Star*Power|Line", "Star_Power_Line"},
		{"  padded  ", "padded"},
		{"Trailing dots...", "Trailing dots"},
		{"Mr. Bungle", "Mr. Bungle"},
		{"Multiple   spaces\tand tabs", "Multiple spaces and tabs"},
		{"", ""},
		{"   ", ""},
		{" . . ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Segment(tt.input)
			if got != tt.expected {
				t.Errorf("Segment(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSegment_NoIllegalCharsSurvive(t *testing.T) {
	inputs := []string{
		"AC/DC", `a<b>c:d"e/f\g|h?i*j`, "///", "???",
	}
	for _, input := range inputs {
		got := Segment(input)
		if strings.ContainsAny(got, `<>:"/\|?*`) {
			t.Errorf("Segment(%q) = %q, still contains illegal characters", input, got)
		}
	}
}

func TestSegment_LongNameTruncated(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := Segment(long)
	if len([]rune(got)) != maxSegmentLen {
		t.Errorf("len(Segment(long)) = %d, want %d", len([]rune(got)), maxSegmentLen)
	}
}

func TestAlbumPath(t *testing.T) {
	tests := []struct {
		name     string
		artist   string
		album    string
		expected string
	}{
		{
			name:     "normal tags",
			artist:   "Pink Floyd",
			album:    "The Wall",
			expected: filepath.Join("Pink Floyd", "The Wall"),
		},
		{
			name:     "slash in artist",
			artist:   "AC/DC",
			album:    "Back in Black",
			expected: filepath.Join("AC_DC", "Back in Black"),
		},
		{
			name:     "empty tags fall back",
			artist:   "",
			album:    "",
			expected: filepath.Join(UnknownArtist, UnknownAlbum),
		},
		{
			name:     "tags that sanitize to nothing fall back",
			artist:   "///",
			album:    " . ",
			expected: filepath.Join("___", UnknownAlbum),
		},
		{
			name:     "whitespace-only artist falls back",
			artist:   "   ",
			album:    "The Wall",
			expected: filepath.Join(UnknownArtist, "The Wall"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlbumPath(tt.artist, tt.album)
			if got != tt.expected {
				t.Errorf("AlbumPath(%q, %q) = %q, want %q", tt.artist, tt.album, got, tt.expected)
			}
		})
	}
}

func TestDestPath(t *testing.T) {
	got := DestPath("/music", "Pink Floyd", "The Wall", "01 - In the Flesh.mp3")
	want := filepath.Join("/music", "Pink Floyd", "The Wall", "01 - In the Flesh.mp3")
	if got != want {
		t.Errorf("DestPath() = %q, want %q", got, want)
	}
}
