package tags

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// yearPattern accepts YYYY with optional month and day parts.
var yearPattern = regexp.MustCompile(`^\d{4}(-\d{1,2}(-\d{1,2})?)?$`)

// SanitizeText trims surrounding whitespace. An empty result means the
// field was left blank and should be skipped.
func SanitizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseArtists splits a name list on semicolons and commas, trimming
// each part and dropping empties. Nil means skip.
func ParseArtists(raw string) []string {
	text := SanitizeText(raw)
	if text == "" {
		return nil
	}
	var people []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ','
	}) {
		if name := strings.TrimSpace(part); name != "" {
			people = append(people, name)
		}
	}
	return people
}

// ParseYear validates a year value. Empty return with nil error means skip.
func ParseYear(raw string) (string, error) {
	text := SanitizeText(raw)
	if text == "" {
		return "", nil
	}
	if !yearPattern.MatchString(text) {
		return "", errors.New("Use YYYY or YYYY-MM-DD format.")
	}
	return text, nil
}

// ParseTrack parses "n" or "n/total". Nil with nil error means skip.
func ParseTrack(raw string) (*Track, error) {
	text := SanitizeText(raw)
	if text == "" {
		return nil, nil
	}
	first, second := text, ""
	if idx := strings.Index(text, "/"); idx >= 0 {
		first, second = text[:idx], text[idx+1:]
	}
	number, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return nil, errors.New("Track must be an integer.")
	}
	total, totalSet := 0, false
	if s := strings.TrimSpace(second); s != "" {
		total, err = strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("Total tracks must be an integer.")
		}
		totalSet = true
	}
	if number < 0 {
		return nil, errors.New("Track must be positive.")
	}
	if totalSet && total < number {
		return nil, errors.New("Total tracks cannot be smaller than the track number.")
	}
	return &Track{Number: number, Total: total}, nil
}

// ParseRating parses a star rating. Nil with nil error means skip.
func ParseRating(raw string) (*int, error) {
	text := SanitizeText(raw)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n > 5 {
		return nil, errors.New("Use a whole number between 0 and 5.")
	}
	return &n, nil
}

// Collect builds the update set from raw form values, skipping blank
// fields and accumulating "Label: message" validation errors in form
// order.
func Collect(values map[Field]string) (*Updates, []string) {
	u := &Updates{}
	var errs []string
	fail := func(f Field, err error) {
		errs = append(errs, Label(f)+": "+err.Error())
	}
	for _, def := range FieldDefs {
		raw, ok := values[def.Field]
		if !ok {
			continue
		}
		switch def.Field {
		case FieldTitle:
			if v := SanitizeText(raw); v != "" {
				u.Title = &v
			}
		case FieldSubtitle:
			if v := SanitizeText(raw); v != "" {
				u.Subtitle = &v
			}
		case FieldRating:
			r, err := ParseRating(raw)
			if err != nil {
				fail(def.Field, err)
				continue
			}
			u.Rating = r
		case FieldComments:
			if v := SanitizeText(raw); v != "" {
				u.Comment = &v
			}
		case FieldArtists:
			if people := ParseArtists(raw); len(people) > 0 {
				u.Artists = people
			}
		case FieldAlbumArtist:
			if v := SanitizeText(raw); v != "" {
				u.AlbumArtist = &v
			}
		case FieldAlbum:
			if v := SanitizeText(raw); v != "" {
				u.Album = &v
			}
		case FieldYear:
			v, err := ParseYear(raw)
			if err != nil {
				fail(def.Field, err)
				continue
			}
			if v != "" {
				u.Year = &v
			}
		case FieldTrack:
			track, err := ParseTrack(raw)
			if err != nil {
				fail(def.Field, err)
				continue
			}
			u.Track = track
		case FieldGenre:
			if v := SanitizeText(raw); v != "" {
				u.Genre = &v
			}
		}
	}
	return u, errs
}
