package tags

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// applyMP3 writes the requested fields as ID3v2.3 frames, replacing
// only the frames each field owns. The tag is saved as v2.3 with
// UTF-16 text, the revision Windows Explorer reads. Files with an ID3
// version the library cannot parse fail here instead of being
// stripped, so their remaining frames survive.
func applyMP3(path string, u *Updates) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(3)
	tag.SetDefaultEncoding(id3v2.EncodingUTF16)

	setText := func(id, value string) {
		tag.DeleteFrames(id)
		tag.AddTextFrame(id, tag.DefaultEncoding(), value)
	}

	if u.Title != nil {
		setText("TIT2", *u.Title)
	}
	if u.Subtitle != nil {
		setText("TIT3", *u.Subtitle)
	}
	if u.Comment != nil {
		tag.DeleteFrames(tag.CommonID("Comments"))
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: tag.DefaultEncoding(),
			Language: "eng",
			Text:     *u.Comment,
		})
	}
	if u.Artists != nil {
		setText("TPE1", strings.Join(u.Artists, "; "))
	}
	if u.AlbumArtist != nil {
		setText(tag.CommonID("Band/Orchestra/Accompaniment"), *u.AlbumArtist)
	}
	if u.Album != nil {
		setText("TALB", *u.Album)
	}
	if u.Year != nil {
		// A v2.3 date is the TYER/TDAT pair; drop any stale v2.4 TDRC
		// so readers see the new value
		year, tdat := id3v23Date(*u.Year)
		tag.DeleteFrames("TDRC")
		tag.DeleteFrames("TDAT")
		setText("TYER", year)
		if tdat != "" {
			setText("TDAT", tdat)
		}
	}
	if u.Track != nil {
		setText(tag.CommonID("Track number/Position in set"), u.Track.String())
	}
	if u.Genre != nil {
		setText("TCON", *u.Genre)
	}
	if u.Rating != nil {
		tag.DeleteFrames("POPM")
		tag.AddFrame("POPM", id3v2.PopularimeterFrame{
			Email:   popmEmail,
			Rating:  uint8(popmRating(*u.Rating)),
			Counter: big.NewInt(0),
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}

// id3v23Date splits a validated YYYY[-M[-D]] value into the TYER year
// and, when a full date is present, the DDMM TDAT value.
func id3v23Date(value string) (year, tdat string) {
	parts := strings.Split(value, "-")
	year = parts[0]
	if len(parts) == 3 {
		tdat = pad2(parts[2]) + pad2(parts[1])
	}
	return year, tdat
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
