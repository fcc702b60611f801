package tags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sorrow446/go-mp4tag"
)

// applyMP4 writes the requested fields using go-mp4tag, which merges:
// only the atoms for fields set here are rewritten. Subtitle and
// rating ride the iTunes freeform atoms because the writer exposes no
// plain atom for them.
func applyMP4(path string, u *Updates) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{Custom: map[string]string{}}
	var remove []string

	if u.Title != nil {
		tags.Title = *u.Title
	}
	if u.Subtitle != nil {
		tags.Custom["SUBTITLE"] = *u.Subtitle
	}
	if u.Comment != nil {
		tags.Comment = *u.Comment
	}
	if u.Artists != nil {
		tags.Artist = strings.Join(u.Artists, "; ")
	}
	if u.AlbumArtist != nil {
		tags.AlbumArtist = *u.AlbumArtist
	}
	if u.Album != nil {
		tags.Album = *u.Album
	}
	if u.Year != nil {
		tags.Date = *u.Year
	}
	if u.Track != nil {
		if u.Track.Number > 0 {
			// trkn is rewritten whole, so a zero total clears any stale one
			tags.TrackNumber = safeInt16(u.Track.Number)
			tags.TrackTotal = safeInt16(u.Track.Total)
		} else {
			remove = append(remove, "trackNumber")
		}
	}
	if u.Genre != nil {
		tags.CustomGenre = *u.Genre
	}
	if u.Rating != nil {
		tags.Custom["RATING"] = strconv.Itoa(mp4Rating(*u.Rating))
	}

	if err := mp4.Write(tags, remove); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// safeInt16 converts int to int16 with bounds checking.
func safeInt16(n int) int16 {
	if n > 32767 {
		return 32767
	}
	if n < -32768 {
		return -32768
	}
	return int16(n)
}
