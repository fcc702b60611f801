package tags

// Field identifies one editable logical field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldSubtitle    Field = "subtitle"
	FieldRating      Field = "rating"
	FieldComments    Field = "comments"
	FieldArtists     Field = "artists"
	FieldAlbumArtist Field = "album_artist"
	FieldAlbum       Field = "album"
	FieldYear        Field = "year"
	FieldTrack       Field = "track_number"
	FieldGenre       Field = "genre"
)

// FieldDef describes how one field is presented in the editor form.
type FieldDef struct {
	Field       Field
	Label       string
	Placeholder string
	Help        string
}

// FieldDefs lists the editable fields in form order.
var FieldDefs = []FieldDef{
	{
		Field:       FieldTitle,
		Label:       "Title",
		Placeholder: "e.g. Pictures Of You",
		Help:        "Primary track title.",
	},
	{
		Field:       FieldSubtitle,
		Label:       "Subtitle",
		Placeholder: "Optional secondary title",
	},
	{
		Field: FieldRating,
		Label: "Rating",
		Help:  "0-5 star rating as shown in Windows Explorer.",
	},
	{
		Field:       FieldComments,
		Label:       "Comments",
		Placeholder: "Notes about the track",
	},
	{
		Field:       FieldArtists,
		Label:       "Contributing artists",
		Placeholder: "Separate names with commas or semicolons",
	},
	{
		Field:       FieldAlbumArtist,
		Label:       "Album artist",
		Placeholder: "e.g. Anyma",
	},
	{
		Field:       FieldAlbum,
		Label:       "Album",
		Placeholder: "e.g. Genesys II",
	},
	{
		Field:       FieldYear,
		Label:       "Year",
		Placeholder: "e.g. 2024",
	},
	{
		Field:       FieldTrack,
		Label:       "Track number",
		Placeholder: "e.g. 1 or 1/10",
	},
	{
		Field:       FieldGenre,
		Label:       "Genre",
		Placeholder: "e.g. Dance",
	},
}

// Label returns the display label for a field.
func Label(f Field) string {
	for _, def := range FieldDefs {
		if def.Field == f {
			return def.Label
		}
	}
	return string(f)
}
