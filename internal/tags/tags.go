// Package tags reads and writes audio file metadata.
// It consolidates per-format handling for MP3, MP4, FLAC, and ASF
// containers behind one logical field model.
package tags

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Format identifies a supported container family. The set is closed;
// everything else maps to FormatOther.
type Format int

const (
	FormatOther Format = iota
	FormatMP3
	FormatMP4
	FormatFLAC
	FormatASF
)

// formatByExt is the dispatch table from lowercased extension to format.
var formatByExt = map[string]Format{
	".mp3":  FormatMP3,
	".m4a":  FormatMP4,
	".m4b":  FormatMP4,
	".m4p":  FormatMP4,
	".m4r":  FormatMP4,
	".m4v":  FormatMP4,
	".mp4":  FormatMP4,
	".flac": FormatFLAC,
	".asf":  FormatASF,
	".wma":  FormatASF,
}

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// FormatForPath resolves the container family from the file extension.
func FormatForPath(path string) Format {
	return formatByExt[strings.ToLower(filepath.Ext(path))]
}

func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatMP4:
		return "MP4"
	case FormatFLAC:
		return "FLAC"
	case FormatASF:
		return "ASF"
	}
	return "Other"
}

// Extensions lists the supported file extensions in sorted order.
var Extensions = func() []string {
	exts := make([]string, 0, len(formatByExt))
	for ext := range formatByExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}()

// IsSupported reports whether the path has a supported audio file extension.
func IsSupported(path string) bool {
	return FormatForPath(path) != FormatOther
}

// SupportedExtensions returns the extension list as display text.
func SupportedExtensions() string {
	return strings.Join(Extensions, ", ")
}

// Tag is the logical view of one audio file's metadata. Values are
// best-effort: fields a file does not carry stay zero.
type Tag struct {
	Path        string
	Title       string
	Subtitle    string
	Artist      string // multiple names joined with "; "
	AlbumArtist string
	Album       string
	Comment     string
	Year        string // YYYY or YYYY-MM-DD
	TrackNumber int
	TrackTotal  int
	Genre       string
	Rating      int // 0-5 stars, 0 when unrated
}

// Stars renders the rating as filled star glyphs, empty when unrated.
func (t *Tag) Stars() string {
	if t.Rating <= 0 {
		return ""
	}
	return strings.Repeat("★", t.Rating)
}

// TrackText renders the track as "n/total" or "n", empty when absent.
func (t *Tag) TrackText() string {
	if t.TrackNumber == 0 && t.TrackTotal == 0 {
		return ""
	}
	if t.TrackTotal > 0 {
		return strconv.Itoa(t.TrackNumber) + "/" + strconv.Itoa(t.TrackTotal)
	}
	return strconv.Itoa(t.TrackNumber)
}

// taglibTags wraps a taglib result map with helper methods.
// This reduces duplication across format-specific readers.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// getJoined returns all values for a key joined with "; ".
func (t taglibTags) getJoined(key string) string {
	return strings.Join(t[key], "; ")
}

// getInt returns the first value as an integer, or 0 if not found or invalid.
func (t taglibTags) getInt(key string) int {
	if values, ok := t[key]; ok && len(values) > 0 {
		if n, err := strconv.Atoi(values[0]); err == nil {
			return n
		}
	}
	return 0
}

// parseNumberPair parses a track number that may be "N" or "N/M" format.
func (t taglibTags) parseNumberPair(key string) (num, total int) {
	s := t.get(key)
	if s == "" {
		return 0, 0
	}
	if idx := strings.Index(s, "/"); idx > 0 {
		num, _ = strconv.Atoi(s[:idx])
		total, _ = strconv.Atoi(s[idx+1:])
		return num, total
	}
	num, _ = strconv.Atoi(s)
	return num, 0
}
