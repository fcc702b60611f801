package tags

import (
	"strconv"

	"go.senan.xyz/taglib"
)

// readASF reads ASF/WMA metadata entirely through TagLib.
func readASF(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	track, total := tags.parseNumberPair(taglib.TrackNumber)

	t := &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Subtitle:    tags.get("SUBTITLE"),
		Artist:      tags.getJoined(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Comment:     tags.get("COMMENT"),
		Year:        tags.get(taglib.Date),
		TrackNumber: track,
		TrackTotal:  total,
		Genre:       tags.get(taglib.Genre),
	}

	if rating, err := strconv.Atoi(tags.get("RATING", "WM/SharedUserRating")); err == nil {
		t.Rating = starsFromASF(rating)
	}

	return t, nil
}

// readWithTaglib reads MP4 or FLAC metadata using TagLib as fallback
// when dhowden/tag fails.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	track, total := tags.parseNumberPair(taglib.TrackNumber)
	if total == 0 {
		total = tags.getInt("TRACKTOTAL")
	}

	t := &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Subtitle:    tags.get("SUBTITLE"),
		Artist:      tags.getJoined(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Comment:     tags.get("COMMENT"),
		Year:        tags.get(taglib.Date),
		TrackNumber: track,
		TrackTotal:  total,
		Genre:       tags.get(taglib.Genre),
	}

	if rating, err := strconv.Atoi(tags.get("RATING")); err == nil {
		switch FormatForPath(path) {
		case FormatFLAC:
			t.Rating = starsFromVorbis(rating)
		default:
			t.Rating = starsFromMP4(rating)
		}
	}

	return t, nil
}

// readMP4Extended fills the MP4 fields dhowden/tag has no accessor
// for: the subtitle and rating freeform atoms, the full date text and
// the track total.
func readMP4Extended(path string, t *Tag) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return
	}
	tags := taglibTags(rawTags)

	t.Subtitle = tags.get("SUBTITLE")
	// dhowden reduces the date atom to an integer year
	if date := tags.get(taglib.Date); date != "" {
		t.Year = date
	}
	if t.TrackTotal == 0 {
		_, total := tags.parseNumberPair(taglib.TrackNumber)
		t.TrackTotal = total
	}
	if rating, err := strconv.Atoi(tags.get("RATING")); err == nil {
		t.Rating = starsFromMP4(rating)
	}
}
