package editor

import "github.com/mgirard/etch/internal/tags"

// ScanResultMsg is sent when a folder scan completes.
type ScanResultMsg struct {
	Folder string // normalized folder that was scanned
	Files  []string
	Err    error
}

// PreviewReadyMsg is sent when preview tags have been read.
type PreviewReadyMsg struct {
	Tags []tags.Tag
}

// FileUpdatedMsg is sent when a single file update completes.
type FileUpdatedMsg struct {
	Index int
	Err   error
}
