package tags

import "strconv"

// Track holds a parsed track number update. Total 0 means the value
// carried no total part.
type Track struct {
	Number int
	Total  int
}

// String renders the track in "n/total" or "n" form.
func (t Track) String() string {
	if t.Total > 0 {
		return strconv.Itoa(t.Number) + "/" + strconv.Itoa(t.Total)
	}
	return strconv.Itoa(t.Number)
}

// Updates holds one optional value per logical field. A nil field is
// left untouched on every file; there is no way to blank a field out.
type Updates struct {
	Title       *string
	Subtitle    *string
	Rating      *int // 0-5 stars
	Comment     *string
	Artists     []string
	AlbumArtist *string
	Album       *string
	Year        *string
	Track       *Track
	Genre       *string
}

// Empty reports whether no field is set.
func (u *Updates) Empty() bool {
	return u.Title == nil &&
		u.Subtitle == nil &&
		u.Rating == nil &&
		u.Comment == nil &&
		u.Artists == nil &&
		u.AlbumArtist == nil &&
		u.Album == nil &&
		u.Year == nil &&
		u.Track == nil &&
		u.Genre == nil
}
