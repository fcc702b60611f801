package tags

import (
	"fmt"
	"strconv"
	"strings"

	"go.senan.xyz/taglib"
)

// applyASF writes the requested fields through TagLib's property map,
// which translates them to the native WM/* attributes. WriteTags is
// called without the Clear option so properties not named here keep
// their values.
func applyASF(path string, u *Updates) error {
	props := map[string][]string{}

	if u.Title != nil {
		props[taglib.Title] = []string{*u.Title}
	}
	if u.Subtitle != nil {
		props["SUBTITLE"] = []string{*u.Subtitle}
	}
	if u.Comment != nil {
		props["COMMENT"] = []string{*u.Comment}
	}
	if u.Artists != nil {
		props[taglib.Artist] = []string{strings.Join(u.Artists, "; ")}
	}
	if u.AlbumArtist != nil {
		props[taglib.AlbumArtist] = []string{*u.AlbumArtist}
	}
	if u.Album != nil {
		props[taglib.Album] = []string{*u.Album}
	}
	if u.Year != nil {
		props[taglib.Date] = []string{*u.Year}
	}
	if u.Track != nil {
		// Number and total share the WM/TrackNumber attribute in
		// "n/total" form, so a stale total can never outlive an update
		props[taglib.TrackNumber] = []string{u.Track.String()}
	}
	if u.Genre != nil {
		props[taglib.Genre] = []string{*u.Genre}
	}
	if u.Rating != nil {
		props["RATING"] = []string{strconv.Itoa(asfRating(*u.Rating))}
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}

	return nil
}
