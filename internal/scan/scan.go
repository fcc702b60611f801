// Package scan discovers supported audio files under a user-selected folder.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgirard/etch/internal/tags"
)

// Normalize cleans a user-entered folder path: surrounding whitespace and
// quotes are removed, a leading ~ expands to the home directory, and
// backslash-separated network paths are converted so a pasted
// \\server\share form resolves against a mounted share.
func Normalize(raw string) string {
	value := strings.Trim(strings.TrimSpace(raw), `"'`)
	if value == "" {
		return ""
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~/"))
		}
	}
	if strings.HasPrefix(value, `\\`) {
		value = strings.ReplaceAll(value, `\`, "/")
	}
	if strings.HasPrefix(value, "//") {
		// filepath.Clean would collapse the UNC-style double slash.
		return "//" + filepath.Clean(strings.TrimLeft(value, "/"))
	}
	return filepath.Clean(value)
}

// List returns the sorted absolute paths of all supported audio files in
// dir. With recursive set, nested subfolders are walked as well; unreadable
// subdirectories are skipped. A missing or unreadable root is an error and
// no paths are returned.
func List(dir string, recursive bool) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("folder not found or inaccessible: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("not a directory: %s", abs)
		}
		return nil, fmt.Errorf("folder not found or inaccessible: %w", err)
	}

	var files []string
	if recursive {
		walkRoot := abs
		err = filepath.WalkDir(walkRoot, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				if path == walkRoot {
					return walkErr
				}
				// Unreadable subdirectories are skipped, not fatal.
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !tags.IsSupported(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to read folder contents: %w", err)
		}
	} else {
		entries, readErr := os.ReadDir(abs)
		if readErr != nil {
			return nil, fmt.Errorf("unable to read folder contents: %w", readErr)
		}
		for _, entry := range entries {
			if entry.IsDir() || !tags.IsSupported(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(abs, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
