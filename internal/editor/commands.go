package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgirard/etch/internal/scan"
	"github.com/mgirard/etch/internal/tags"
)

// ScanCmd lists the supported audio files under folder.
func ScanCmd(folder string, recursive bool) tea.Cmd {
	return func() tea.Msg {
		dir := scan.Normalize(folder)
		files, err := scan.List(dir, recursive)
		return ScanResultMsg{Folder: dir, Files: files, Err: err}
	}
}

// PreviewCmd reads tags from the first PreviewLimit files. Files whose
// tags cannot be read produce a path-only row rather than an error.
func PreviewCmd(files []string) tea.Cmd {
	return func() tea.Msg {
		count := min(len(files), PreviewLimit)
		rows := make([]tags.Tag, count)
		for i := range count {
			t, err := tags.Read(files[i])
			if err != nil {
				rows[i] = tags.Tag{Path: files[i]}
				continue
			}
			rows[i] = *t
		}
		return PreviewReadyMsg{Tags: rows}
	}
}

// ApplyFileCmd writes the updates to a single file.
func ApplyFileCmd(index int, path string, u *tags.Updates) tea.Cmd {
	return func() tea.Msg {
		return FileUpdatedMsg{Index: index, Err: tags.Apply(path, u)}
	}
}
