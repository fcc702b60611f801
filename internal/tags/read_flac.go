package tags

import (
	"strconv"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// readFLACExtended reads the Vorbis comments dhowden/tag has no
// accessor for and refines multi-valued fields.
func readFLACExtended(path string, t *Tag) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return
	}

	var cmts *flacvorbis.MetaDataBlockVorbisComment
	for _, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			if cmts, err = flacvorbis.ParseFromMetaDataBlock(*meta); err != nil {
				return
			}
			break
		}
	}
	if cmts == nil {
		return
	}

	t.Subtitle = firstComment(cmts, "SUBTITLE")
	if artists, err := cmts.Get("ARTIST"); err == nil && len(artists) > 0 {
		t.Artist = strings.Join(artists, "; ")
	}
	if date := firstComment(cmts, "DATE"); date != "" {
		t.Year = date
	}
	if t.TrackTotal == 0 {
		if n, err := strconv.Atoi(firstComment(cmts, "TRACKTOTAL")); err == nil {
			t.TrackTotal = n
		}
	}
	if rating, err := strconv.Atoi(firstComment(cmts, "RATING")); err == nil {
		t.Rating = starsFromVorbis(rating)
	}
}

// firstComment returns the first value for a Vorbis comment key, empty
// when the key is absent.
func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	if values, err := cmts.Get(key); err == nil && len(values) > 0 {
		return values[0]
	}
	return ""
}
