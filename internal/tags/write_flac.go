package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// applyFLAC merges the requested fields into the file's Vorbis comment
// block. Comments for other keys and every other metadata block,
// pictures included, are carried over untouched.
func applyFLAC(path string, u *Updates) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		// Some tools prepend an ID3v2 header to FLAC files; strip it
		// and retry before giving up
		id3Size := flacID3Size(path)
		if id3Size == 0 {
			return fmt.Errorf("parse file: %w", err)
		}
		if err := stripLeadingID3(path, id3Size); err != nil {
			return fmt.Errorf("strip ID3v2 header: %w", err)
		}
		if f, err = flac.ParseFile(path); err != nil {
			return fmt.Errorf("parse file after ID3 strip: %w", err)
		}
	}

	// Load the existing comment block so untouched keys survive
	cmtIdx := -1
	var cmts *flacvorbis.MetaDataBlockVorbisComment
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err = flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return fmt.Errorf("parse vorbis comments: %w", err)
			}
			cmtIdx = i
			break
		}
	}
	if cmts == nil {
		cmts = flacvorbis.New()
	}

	set := func(key string, values ...string) error {
		deleteComments(cmts, key)
		for _, v := range values {
			if err := cmts.Add(key, v); err != nil {
				return fmt.Errorf("add %s: %w", strings.ToLower(key), err)
			}
		}
		return nil
	}

	if u.Title != nil {
		if err := set("TITLE", *u.Title); err != nil {
			return err
		}
	}
	if u.Subtitle != nil {
		if err := set("SUBTITLE", *u.Subtitle); err != nil {
			return err
		}
	}
	if u.Comment != nil {
		if err := set("COMMENT", *u.Comment); err != nil {
			return err
		}
	}
	if u.Artists != nil {
		if err := set("ARTIST", u.Artists...); err != nil {
			return err
		}
	}
	if u.AlbumArtist != nil {
		if err := set("ALBUMARTIST", *u.AlbumArtist); err != nil {
			return err
		}
	}
	if u.Album != nil {
		if err := set("ALBUM", *u.Album); err != nil {
			return err
		}
	}
	if u.Year != nil {
		if err := set("DATE", *u.Year); err != nil {
			return err
		}
	}
	if u.Track != nil {
		if err := set("TRACKNUMBER", strconv.Itoa(u.Track.Number)); err != nil {
			return err
		}
		if u.Track.Total > 0 {
			if err := set("TRACKTOTAL", strconv.Itoa(u.Track.Total)); err != nil {
				return err
			}
		} else {
			// A new track value with no total invalidates a stale one
			deleteComments(cmts, "TRACKTOTAL")
		}
	}
	if u.Genre != nil {
		if err := set("GENRE", *u.Genre); err != nil {
			return err
		}
	}
	if u.Rating != nil {
		if err := set("RATING", strconv.Itoa(clampStars(*u.Rating))); err != nil {
			return err
		}
	}

	cmtBlock := cmts.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &cmtBlock
	} else {
		f.Meta = append(f.Meta, &cmtBlock)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}

	return nil
}

// deleteComments removes every comment for a key, matching Vorbis
// field names case-insensitively.
func deleteComments(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) {
	kept := make([]string, 0, len(cmts.Comments))
	for _, comment := range cmts.Comments {
		idx := strings.Index(comment, "=")
		if idx > 0 && strings.EqualFold(comment[:idx], key) {
			continue
		}
		kept = append(kept, comment)
	}
	cmts.Comments = kept
}

// flacID3Size returns the size of a leading ID3v2 header on a file
// that failed FLAC parsing, or 0 when the failure has another cause.
func flacID3Size(path string) int64 {
	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	header := make([]byte, 10)
	if _, err := io.ReadFull(file, header); err != nil {
		return 0
	}
	if string(header[:3]) != id3Magic {
		return 0
	}

	// Bytes 6-9 hold the tag size as a syncsafe integer
	size := int64(10) + syncsafeLen(header[6:10])
	if header[5]&0x40 != 0 {
		// Extended header carries its own syncsafe length
		ext := make([]byte, 4)
		if _, err := file.ReadAt(ext, 10); err != nil {
			return 0
		}
		size += syncsafeLen(ext)
	}

	// Only trust the size if a FLAC stream actually starts there
	magic := make([]byte, 4)
	if _, err := file.ReadAt(magic, size); err != nil || string(magic) != "fLaC" {
		return 0
	}
	return size
}

// syncsafeLen decodes a 4-byte syncsafe integer (7 bits per byte).
func syncsafeLen(b []byte) int64 {
	return int64(b[0]&0x7f)<<21 |
		int64(b[1]&0x7f)<<14 |
		int64(b[2]&0x7f)<<7 |
		int64(b[3]&0x7f)
}

// stripLeadingID3 rewrites the file without its leading ID3v2 header,
// preserving the original permissions.
func stripLeadingID3(path string, id3Size int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if int64(len(data)) <= id3Size {
		return errors.New("file too small to strip ID3v2 header")
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data[id3Size:], info.Mode().Perm())
}
