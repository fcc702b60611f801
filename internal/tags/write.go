package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Apply writes the requested field updates to a music file in place.
// Fields not present in u are preserved exactly; an empty update set
// returns nil without opening the file. Each format writes the field
// in its own native keys, so a write either lands completely or the
// file is reported failed unchanged.
func Apply(path string, u *Updates) error {
	if u == nil || u.Empty() {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch FormatForPath(path) {
	case FormatMP3:
		return applyMP3(path, u)
	case FormatFLAC:
		return applyFLAC(path, u)
	case FormatMP4:
		return applyMP4(path, u)
	case FormatASF:
		return applyASF(path, u)
	}

	return fmt.Errorf("unsupported file type: %s", strings.ToLower(filepath.Ext(path)))
}
