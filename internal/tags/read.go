package tags

import (
	"os"
	"strconv"

	"github.com/dhowden/tag"
)

// Read extracts the logical fields from a music file for preview.
// Extraction is best effort: fields the file does not carry stay zero,
// and only a file that cannot be opened at all yields an error.
func Read(path string) (*Tag, error) {
	// dhowden/tag does not parse ASF containers
	if FormatForPath(path) == FormatASF {
		return readASF(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch FormatForPath(path) {
		case FormatMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			// and errors on files with no tag at all
			return readMP3WithID3v2Fallback(path)
		case FormatMP4, FormatFLAC:
			// dhowden/tag can't parse some files (e.g., ffmpeg-created M4A)
			return readWithTaglib(path)
		}
		return nil, err
	}

	track, total := m.Track()

	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Comment:     m.Comment(),
		Year:        yearToText(m.Year()),
		TrackNumber: track,
		TrackTotal:  total,
		Genre:       m.Genre(),
	}

	// Fill the fields dhowden/tag has no accessor for
	switch FormatForPath(path) {
	case FormatMP3:
		readMP3Extended(path, t)
	case FormatFLAC:
		readFLACExtended(path, t)
	case FormatMP4:
		readMP4Extended(path, t)
	}

	return t, nil
}

// yearToText converts a year integer to text, empty for year 0.
func yearToText(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
