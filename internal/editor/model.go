// Package editor implements the bulk tag editing workflow as a Bubble Tea model.
package editor

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mgirard/etch/internal/state"
	"github.com/mgirard/etch/internal/tags"
	"github.com/mgirard/etch/internal/ui/confirm"
	"github.com/mgirard/etch/internal/ui/cursor"
)

// State identifies the current screen of the editor.
type State int

const (
	StateFolder   State = iota // Folder prompt
	StateScanning              // Listing audio files
	StateLoading               // Reading tags for the preview
	StateEdit                  // Field form and preview table
	StateApplying              // Writing metadata file by file
	StateDone                  // Batch summary
)

// PreviewLimit caps how many files are read for the preview table.
const PreviewLimit = 200

// Status describes one file's progress during an apply run.
type Status int

const (
	StatusPending Status = iota
	StatusUpdating
	StatusDone
	StatusFailed
)

// FileStatus tracks the update progress of a single file.
type FileStatus struct {
	Path   string
	Status Status
	Error  string
}

// FailedFile describes a file whose update failed.
type FailedFile struct {
	Name  string
	Path  string
	Error string
}

// Model is the Bubble Tea model driving the whole editing workflow.
type Model struct {
	state State

	store state.Interface

	// Folder selection
	folderInput textinput.Model
	recursive   bool
	folder      string   // normalized folder of the current listing
	files       []string // listing from the last scan

	// Preview table
	preview       []tags.Tag
	previewCursor cursor.Cursor

	// Field form
	inputs   []textinput.Model // one per field, form order
	focus    int
	formErrs []string
	warning  string

	// Validated updates awaiting confirmation
	pending *tags.Updates

	confirm confirm.Model

	// Apply progress
	fileStatus   []FileStatus
	currentFile  int
	successCount int
	failed       []FailedFile

	errorMsg string

	width, height int
}

// New creates the editor model. folder and recursive seed the folder
// prompt, typically from the saved session or the config default.
func New(store state.Interface, folder string, recursive bool) *Model {
	fi := textinput.New()
	fi.Placeholder = "Choose or enter a folder path"
	fi.CharLimit = 512
	fi.Width = 60
	fi.SetValue(folder)
	fi.Focus()

	inputs := make([]textinput.Model, len(tags.FieldDefs))
	for i, def := range tags.FieldDefs {
		ti := textinput.New()
		ti.Placeholder = def.Placeholder
		ti.CharLimit = 256
		ti.Width = 40
		inputs[i] = ti
	}

	return &Model{
		state:         StateFolder,
		store:         store,
		folderInput:   fi,
		recursive:     recursive,
		inputs:        inputs,
		confirm:       confirm.New(),
		previewCursor: cursor.New(2),
	}
}

// SetSize sets the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.folderInput.Width = min(width-8, 60)
	for i := range m.inputs {
		m.inputs[i].Width = min(width-28, 48)
	}
	m.confirm.SetSize(width, height)
	m.previewCursor.EnsureVisible(len(m.preview), m.previewHeight())
}

// State returns the current screen.
func (m *Model) State() State {
	return m.state
}

// Folder returns the folder of the current listing.
func (m *Model) Folder() string {
	return m.folder
}

// Recursive returns whether subfolders are included.
func (m *Model) Recursive() bool {
	return m.recursive
}

// FileCount returns the number of files found by the last scan.
func (m *Model) FileCount() int {
	return len(m.files)
}

// SuccessCount returns the number of files updated so far.
func (m *Model) SuccessCount() int {
	return m.successCount
}

// FailedCount returns the number of files that failed to update.
func (m *Model) FailedCount() int {
	return len(m.failed)
}

// fieldValues snapshots the form inputs keyed by field.
func (m *Model) fieldValues() map[tags.Field]string {
	values := make(map[tags.Field]string, len(m.inputs))
	for i, def := range tags.FieldDefs {
		values[def.Field] = m.inputs[i].Value()
	}
	return values
}
