package tags

import (
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// readMP3Extended reads the ID3v2 frames dhowden/tag does not expose:
// subtitle, the v2.3 date frames, and the POPM rating.
func readMP3Extended(path string, t *Tag) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	t.Subtitle = getID3TextFrame(id3tag, "TIT3")
	if date := getID3Date(id3tag); date != "" {
		t.Year = date
	}
	if rating, ok := getID3Rating(id3tag); ok {
		t.Rating = rating
	}
}

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2
// library. Used when dhowden/tag fails, including on files with no tag.
func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	track, total := parseTrackText(getID3TextFrame(id3tag, id3tag.CommonID("Track number/Position in set")))

	t := &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Subtitle:    getID3TextFrame(id3tag, "TIT3"),
		Artist:      id3tag.Artist(),
		AlbumArtist: getID3TextFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Comment:     getID3Comment(id3tag),
		Year:        getID3Date(id3tag),
		TrackNumber: track,
		TrackTotal:  total,
		Genre:       id3tag.Genre(),
	}
	if rating, ok := getID3Rating(id3tag); ok {
		t.Rating = rating
	}

	return t, nil
}

// getID3Date reads the recording date, trying the ID3v2.4 TDRC frame
// first and falling back to the v2.3 TYER/TDAT pair.
func getID3Date(id3tag *id3v2.Tag) string {
	if date := getID3TextFrame(id3tag, "TDRC"); date != "" {
		return date
	}
	year := getID3TextFrame(id3tag, "TYER")
	if year == "" {
		return ""
	}
	// TDAT is DDMM, convert to YYYY-MM-DD
	if tdat := getID3TextFrame(id3tag, "TDAT"); len(tdat) == 4 {
		return year + "-" + tdat[2:4] + "-" + tdat[0:2]
	}
	return year
}

// getID3Rating reads the POPM rating byte and maps it to stars.
func getID3Rating(id3tag *id3v2.Tag) (int, bool) {
	for _, frame := range id3tag.GetFrames("POPM") {
		if popm, ok := frame.(id3v2.PopularimeterFrame); ok {
			return starsFromPOPM(int(popm.Rating)), true
		}
	}
	return 0, false
}

// getID3Comment reads the first COMM frame text.
func getID3Comment(id3tag *id3v2.Tag) string {
	for _, frame := range id3tag.GetFrames(id3tag.CommonID("Comments")) {
		if comm, ok := frame.(id3v2.CommentFrame); ok {
			return comm.Text
		}
	}
	return ""
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// parseTrackText parses a track number string like "5" or "5/10".
func parseTrackText(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, "/", 2)
	num, _ = strconv.Atoi(parts[0])
	if len(parts) == 2 {
		total, _ = strconv.Atoi(parts[1])
	}
	return num, total
}
