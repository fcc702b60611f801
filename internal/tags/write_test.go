package tags

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

func TestApply_EmptyUpdates(t *testing.T) {
	path := createTestMP3(t, t.TempDir(), fullUpdates())

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	if err := Apply(path, nil); err != nil {
		t.Errorf("Apply(nil) error: %v", err)
	}
	if err := Apply(path, &Updates{}); err != nil {
		t.Errorf("Apply(empty) error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("empty update set modified the file")
	}
}

func TestApply_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp3")

	if err := Apply(path, fullUpdates()); err == nil {
		t.Error("Apply() expected error for missing file")
	}
}

func TestApply_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.TXT")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := Apply(path, fullUpdates())
	if err == nil {
		t.Fatal("Apply() expected error for unsupported file")
	}
	if got, want := err.Error(), "unsupported file type: .txt"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

// MP3

func TestApplyMP3_SingleFieldPreservesOthers(t *testing.T) {
	path := createTestMP3(t, t.TempDir(), fullUpdates())

	if err := Apply(path, &Updates{Album: strPtr("New Album")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if tag.Album != "New Album" {
		t.Errorf("Album = %q, want %q", tag.Album, "New Album")
	}
	if tag.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", tag.Title, "Test Title")
	}
	if tag.Rating != 4 {
		t.Errorf("Rating = %d, want 4", tag.Rating)
	}
	if tag.TrackNumber != 3 || tag.TrackTotal != 12 {
		t.Errorf("Track = %d/%d, want 3/12", tag.TrackNumber, tag.TrackTotal)
	}
	if tag.Genre != "Dance" {
		t.Errorf("Genre = %q, want %q", tag.Genre, "Dance")
	}
}

func TestApplyMP3_RatingFrame(t *testing.T) {
	for stars := 0; stars <= 5; stars++ {
		t.Run(strconv.Itoa(stars), func(t *testing.T) {
			path := createTestMP3(t, t.TempDir(), &Updates{Rating: intPtr(stars)})

			tag, err := Read(path)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if tag.Rating != stars {
				t.Errorf("Rating = %d, want %d", tag.Rating, stars)
			}

			// The frame itself must carry the Explorer scale byte
			id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
			if err != nil {
				t.Fatalf("open id3 tag: %v", err)
			}
			defer id3tag.Close()

			frames := id3tag.GetFrames("POPM")
			if len(frames) != 1 {
				t.Fatalf("got %d POPM frames, want 1", len(frames))
			}
			popm, ok := frames[0].(id3v2.PopularimeterFrame)
			if !ok {
				t.Fatalf("POPM frame has type %T", frames[0])
			}
			if popm.Email != popmEmail {
				t.Errorf("POPM email = %q, want %q", popm.Email, popmEmail)
			}
			if int(popm.Rating) != popmByStars[stars] {
				t.Errorf("POPM rating = %d, want %d", popm.Rating, popmByStars[stars])
			}
		})
	}
}

func TestApplyMP3_Year(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		wantRead string
	}{
		{"year only", "2024", "2024"},
		{"year and month", "2024-06", "2024"},
		{"full date", "2024-1-5", "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTestMP3(t, t.TempDir(), &Updates{Year: strPtr(tt.year)})

			tag, err := Read(path)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if tag.Year != tt.wantRead {
				t.Errorf("Year = %q, want %q", tag.Year, tt.wantRead)
			}
		})
	}
}

func TestApplyMP3_UnsupportedID3Version(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.mp3")

	// ID3v2.2 header with a 20-byte body, then a bare MP3 frame
	data := append([]byte("ID3"), 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x14)
	data = append(data, make([]byte, 20)...)
	frame := make([]byte, 417)
	frame[0], frame[1], frame[2] = 0xff, 0xfb, 0x90
	data = append(data, frame...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := Apply(path, &Updates{Title: strPtr("New Title")})
	if err == nil {
		t.Fatal("Apply() expected error for ID3v2.2 tag")
	}
	if !errors.Is(err, id3v2.ErrUnsupportedVersion) {
		t.Errorf("error = %v, want ErrUnsupportedVersion", err)
	}

	// The failed write must leave the old tag untouched
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !bytes.Equal(after, data) {
		t.Error("failed write modified the file")
	}
}

// FLAC

func TestApplyFLAC_SingleFieldPreservesOthers(t *testing.T) {
	path := createTestFLAC(t, t.TempDir(), fullUpdates())

	if err := Apply(path, &Updates{Genre: strPtr("House")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if tag.Genre != "House" {
		t.Errorf("Genre = %q, want %q", tag.Genre, "House")
	}
	if tag.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", tag.Title, "Test Title")
	}
	if tag.Artist != "Artist One; Artist Two" {
		t.Errorf("Artist = %q, want %q", tag.Artist, "Artist One; Artist Two")
	}
	if tag.Rating != 4 {
		t.Errorf("Rating = %d, want 4", tag.Rating)
	}
}

func TestApplyFLAC_TrackTotalRemoved(t *testing.T) {
	dir := t.TempDir()
	path := createTestFLAC(t, dir, &Updates{Track: &Track{Number: 3, Total: 12}})

	if err := Apply(path, &Updates{Track: &Track{Number: 7}}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	comments := readVorbisComments(t, path)
	if got := comments["TRACKNUMBER"]; !reflect.DeepEqual(got, []string{"7"}) {
		t.Errorf("TRACKNUMBER = %v, want [7]", got)
	}
	if got, ok := comments["TRACKTOTAL"]; ok {
		t.Errorf("TRACKTOTAL = %v, want removed", got)
	}
}

func TestApplyFLAC_ReplacesDoesNotStack(t *testing.T) {
	dir := t.TempDir()
	path := createTestFLAC(t, dir, &Updates{Artists: []string{"First", "Second"}})

	if err := Apply(path, &Updates{Artists: []string{"Only"}}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	comments := readVorbisComments(t, path)
	if got := comments["ARTIST"]; !reflect.DeepEqual(got, []string{"Only"}) {
		t.Errorf("ARTIST = %v, want [Only]", got)
	}
}

func TestApplyFLAC_PreservesPictures(t *testing.T) {
	dir := t.TempDir()
	path := createTestFLAC(t, dir, nil)

	imgData := []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x43, 0xff, 0xd9}
	pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", imgData, "image/jpeg")
	if err != nil {
		t.Fatalf("create picture: %v", err)
	}

	f, err := goflac.ParseFile(path)
	if err != nil {
		t.Fatalf("parse flac: %v", err)
	}
	picBlock := pic.Marshal()
	f.Meta = append(f.Meta, &picBlock)
	if err := f.Save(path); err != nil {
		t.Fatalf("save flac: %v", err)
	}

	if err := Apply(path, &Updates{Title: strPtr("With Cover")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	f, err = goflac.ParseFile(path)
	if err != nil {
		t.Fatalf("parse flac after write: %v", err)
	}
	var got *flacpicture.MetadataBlockPicture
	for _, meta := range f.Meta {
		if meta.Type == goflac.Picture {
			if got, err = flacpicture.ParseFromMetaDataBlock(*meta); err != nil {
				t.Fatalf("parse picture: %v", err)
			}
			break
		}
	}
	if got == nil {
		t.Fatal("picture block lost after tag write")
	}
	if !bytes.Equal(got.ImageData, imgData) {
		t.Error("picture data changed after tag write")
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tag.Title != "With Cover" {
		t.Errorf("Title = %q, want %q", tag.Title, "With Cover")
	}
}

func TestApplyFLAC_Rating(t *testing.T) {
	dir := t.TempDir()
	path := createTestFLAC(t, dir, nil)

	for stars := 0; stars <= 5; stars++ {
		if err := Apply(path, &Updates{Rating: intPtr(stars)}); err != nil {
			t.Fatalf("Apply(%d stars) error: %v", stars, err)
		}

		comments := readVorbisComments(t, path)
		if got := comments["RATING"]; !reflect.DeepEqual(got, []string{strconv.Itoa(stars)}) {
			t.Errorf("RATING = %v, want [%d]", got, stars)
		}

		tag, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error: %v", err)
		}
		if tag.Rating != stars {
			t.Errorf("Rating = %d, want %d", tag.Rating, stars)
		}
	}
}

func TestApplyFLAC_StripsLeadingID3Header(t *testing.T) {
	dir := t.TempDir()
	path := createTestFLAC(t, dir, nil)

	// Prepend an ID3v2.3 header with a 10-byte body, as some taggers do
	flacData, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	header := append([]byte("ID3"), 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a)
	header = append(header, make([]byte, 10)...)
	if err := os.WriteFile(path, append(header, flacData...), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := Apply(path, &Updates{Title: strPtr("Cleaned")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if len(after) < 4 || string(after[:4]) != "fLaC" {
		t.Error("file does not start with the FLAC marker after write")
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tag.Title != "Cleaned" {
		t.Errorf("Title = %q, want %q", tag.Title, "Cleaned")
	}
}

// readVorbisComments parses the file's Vorbis comment block for
// assertions on raw keys.
func readVorbisComments(t *testing.T, path string) map[string][]string {
	t.Helper()

	f, err := goflac.ParseFile(path)
	if err != nil {
		t.Fatalf("parse flac: %v", err)
	}
	for _, meta := range f.Meta {
		if meta.Type == goflac.VorbisComment {
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				t.Fatalf("parse vorbis comments: %v", err)
			}
			comments := make(map[string][]string)
			for _, comment := range cmts.Comments {
				if idx := strings.Index(comment, "="); idx > 0 {
					key := comment[:idx]
					comments[key] = append(comments[key], comment[idx+1:])
				}
			}
			return comments
		}
	}
	return nil
}

// MP4

func TestApplyM4A_FullWrite(t *testing.T) {
	path := createTestM4A(t, t.TempDir(), fullUpdates())

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	assertFullTag(t, tag)
}

func TestApplyM4A_SingleFieldPreservesOthers(t *testing.T) {
	path := createTestM4A(t, t.TempDir(), fullUpdates())

	if err := Apply(path, &Updates{Title: strPtr("New Title")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if tag.Title != "New Title" {
		t.Errorf("Title = %q, want %q", tag.Title, "New Title")
	}
	if tag.Album != "Test Album" {
		t.Errorf("Album = %q, want %q", tag.Album, "Test Album")
	}
	if tag.TrackNumber != 3 || tag.TrackTotal != 12 {
		t.Errorf("Track = %d/%d, want 3/12", tag.TrackNumber, tag.TrackTotal)
	}
	if tag.Rating != 4 {
		t.Errorf("Rating = %d, want 4", tag.Rating)
	}
}

// ASF

func TestApplyWMA_FullWrite(t *testing.T) {
	path := createTestWMA(t, t.TempDir(), fullUpdates())

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	assertFullTag(t, tag)
}

func TestApplyWMA_SingleFieldPreservesOthers(t *testing.T) {
	path := createTestWMA(t, t.TempDir(), fullUpdates())

	if err := Apply(path, &Updates{Genre: strPtr("Ambient")}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	tag, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if tag.Genre != "Ambient" {
		t.Errorf("Genre = %q, want %q", tag.Genre, "Ambient")
	}
	if tag.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", tag.Title, "Test Title")
	}
	if tag.Artist != "Artist One; Artist Two" {
		t.Errorf("Artist = %q, want %q", tag.Artist, "Artist One; Artist Two")
	}
	if tag.TrackNumber != 3 || tag.TrackTotal != 12 {
		t.Errorf("Track = %d/%d, want 3/12", tag.TrackNumber, tag.TrackTotal)
	}
}

// Helpers

func TestID3v23Date(t *testing.T) {
	tests := []struct {
		value    string
		wantYear string
		wantTDAT string
	}{
		{"2024", "2024", ""},
		{"2024-06", "2024", ""},
		{"2024-06-15", "2024", "1506"},
		{"2024-1-5", "2024", "0501"},
	}

	for _, tt := range tests {
		year, tdat := id3v23Date(tt.value)
		if year != tt.wantYear || tdat != tt.wantTDAT {
			t.Errorf("id3v23Date(%q) = (%q, %q), want (%q, %q)",
				tt.value, year, tdat, tt.wantYear, tt.wantTDAT)
		}
	}
}

func TestDeleteComments(t *testing.T) {
	cmts := flacvorbis.New()
	cmts.Comments = []string{
		"TITLE=Keep",
		"Rating=3",
		"RATING=4",
		"ALBUM=Stay",
		"rating=5",
	}

	deleteComments(cmts, "RATING")

	want := []string{"TITLE=Keep", "ALBUM=Stay"}
	if !reflect.DeepEqual(cmts.Comments, want) {
		t.Errorf("Comments = %v, want %v", cmts.Comments, want)
	}
}

func TestSafeInt16(t *testing.T) {
	tests := []struct {
		in   int
		want int16
	}{
		{0, 0},
		{100, 100},
		{32767, 32767},
		{32768, 32767},
		{100000, 32767},
		{-1, -1},
		{-32768, -32768},
		{-32769, -32768},
	}

	for _, tt := range tests {
		if got := safeInt16(tt.in); got != tt.want {
			t.Errorf("safeInt16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSyncsafeLen(t *testing.T) {
	tests := []struct {
		in   []byte
		want int64
	}{
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{0, 0, 0, 0x0a}, 10},
		{[]byte{0, 0, 0x01, 0x00}, 128},
		{[]byte{0, 0, 0x7f, 0x7f}, 16383},
	}

	for _, tt := range tests {
		if got := syncsafeLen(tt.in); got != tt.want {
			t.Errorf("syncsafeLen(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
