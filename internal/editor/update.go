package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"

	"github.com/mgirard/etch/internal/errmsg"
	"github.com/mgirard/etch/internal/state"
	"github.com/mgirard/etch/internal/tags"
	"github.com/mgirard/etch/internal/ui/action"
	"github.com/mgirard/etch/internal/ui/confirm"
)

// Init starts the editor at the folder prompt.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages by type.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case action.Msg:
		return m.handleAction(msg)
	case ScanResultMsg:
		return m.handleScanResult(msg)
	case PreviewReadyMsg:
		return m.handlePreviewReady(msg)
	case FileUpdatedMsg:
		return m.handleFileUpdated(msg)
	}
	return m, nil
}

// handleKey dispatches key presses based on the current state.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// The confirm dialog captures all keys while shown
	if m.confirm.Active() {
		return m, m.confirm.Update(msg)
	}

	switch m.state {
	case StateFolder:
		return m.handleFolderKey(msg)
	case StateScanning, StateLoading:
		return m.handleWaitKey(msg)
	case StateEdit:
		return m.handleEditKey(msg)
	case StateApplying:
		// No cancellation mid-batch
		return m, nil
	case StateDone:
		return m.handleDoneKey(msg)
	}
	return m, nil
}

// handleFolderKey handles input on the folder prompt.
func (m *Model) handleFolderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.TrimSpace(m.folderInput.Value()) == "" {
			return m, nil
		}
		m.state = StateScanning
		m.errorMsg = ""
		m.warning = ""
		return m, ScanCmd(m.folderInput.Value(), m.recursive)
	case "ctrl+r":
		m.recursive = !m.recursive
		return m, nil
	case "esc":
		return m.quit()
	default:
		var cmd tea.Cmd
		m.folderInput, cmd = m.folderInput.Update(msg)
		return m, cmd
	}
}

// handleWaitKey handles keys while a scan or preview read is running.
func (m *Model) handleWaitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "esc":
		// In-flight results for the abandoned scan are dropped on arrival
		m.state = StateFolder
		return m, nil
	}
	return m, nil
}

// handleEditKey handles input on the form and preview screen.
func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateFolder
		m.errorMsg = ""
		m.warning = ""
		m.formErrs = nil
		return m, nil
	case "tab", "down":
		m.focusField(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.focus - 1)
		return m, nil
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.submit()
		}
		m.focusField(m.focus + 1)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "ctrl+r":
		m.recursive = !m.recursive
		m.state = StateScanning
		m.warning = ""
		return m, ScanCmd(m.folder, m.recursive)
	case "pgdown", "ctrl+d":
		m.previewCursor.Move(m.previewHeight()/2+1, len(m.preview), m.previewHeight())
		return m, nil
	case "pgup", "ctrl+u":
		m.previewCursor.Move(-m.previewHeight()/2-1, len(m.preview), m.previewHeight())
		return m, nil
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
}

// handleDoneKey handles keys on the summary screen.
func (m *Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Back to editing with a fresh listing of the same folder
		m.state = StateScanning
		m.pending = nil
		return m, ScanCmd(m.folder, m.recursive)
	case "esc", "q":
		return m.quit()
	}
	return m, nil
}

// focusField moves form focus, wrapping at both ends.
func (m *Model) focusField(idx int) {
	count := len(m.inputs)
	idx = ((idx % count) + count) % count
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// submit validates the form and opens the confirmation dialog.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	updates, errs := tags.Collect(m.fieldValues())
	m.formErrs = errs
	m.warning = ""
	if len(errs) > 0 {
		return m, nil
	}
	if updates.Empty() {
		m.warning = "No changes to apply - enter at least one value."
		return m, nil
	}

	m.pending = updates
	m.confirm.Show(
		"Bulk metadata update",
		fmt.Sprintf("Apply metadata to %s?", english.Plural(len(m.files), "file", "")),
		nil, m.width, m.height,
	)
	return m, nil
}

// handleAction routes component actions.
func (m *Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	if msg.Source != "confirm" {
		return m, nil
	}
	result, ok := msg.Action.(confirm.Result)
	if !ok || !result.Confirmed {
		m.pending = nil
		return m, nil
	}
	return m, m.startApply()
}

// handleScanResult handles a completed folder scan.
func (m *Model) handleScanResult(msg ScanResultMsg) (tea.Model, tea.Cmd) {
	if m.state != StateScanning {
		return m, nil
	}

	if msg.Err != nil {
		m.state = StateFolder
		m.errorMsg = errmsg.Format(errmsg.OpFolderScan, msg.Err)
		return m, nil
	}

	m.folder = msg.Folder
	m.files = msg.Files
	m.saveSession()

	if len(msg.Files) == 0 {
		m.state = StateFolder
		m.warning = "No supported audio files were found in the selected folder."
		return m, nil
	}

	m.state = StateLoading
	m.preview = nil
	m.previewCursor.Reset()
	return m, PreviewCmd(msg.Files)
}

// handlePreviewReady handles completion of the preview tag reads.
func (m *Model) handlePreviewReady(msg PreviewReadyMsg) (tea.Model, tea.Cmd) {
	if m.state != StateLoading {
		return m, nil
	}

	m.preview = msg.Tags
	m.previewCursor.Reset()
	m.state = StateEdit

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	return m, nil
}

// startApply begins the sequential per-file update run.
func (m *Model) startApply() tea.Cmd {
	if m.pending == nil || len(m.files) == 0 {
		return nil
	}

	m.state = StateApplying
	m.currentFile = 0
	m.successCount = 0
	m.failed = nil
	m.fileStatus = make([]FileStatus, len(m.files))
	for i, path := range m.files {
		m.fileStatus[i] = FileStatus{Path: path, Status: StatusPending}
	}

	return m.applyNextFile()
}

// applyNextFile issues the command for the next file in the queue.
func (m *Model) applyNextFile() tea.Cmd {
	if m.currentFile >= len(m.files) {
		return nil
	}
	m.fileStatus[m.currentFile].Status = StatusUpdating
	return ApplyFileCmd(m.currentFile, m.files[m.currentFile], m.pending)
}

// handleFileUpdated records one file's outcome and advances the queue.
func (m *Model) handleFileUpdated(msg FileUpdatedMsg) (tea.Model, tea.Cmd) {
	if m.state != StateApplying || msg.Index != m.currentFile {
		return m, nil
	}

	if msg.Err != nil {
		errText := errmsg.Format(errmsg.OpTagUpdate, msg.Err)
		m.fileStatus[msg.Index].Status = StatusFailed
		m.fileStatus[msg.Index].Error = errText
		m.failed = append(m.failed, FailedFile{
			Name:  filepath.Base(m.files[msg.Index]),
			Path:  m.files[msg.Index],
			Error: errText,
		})
	} else {
		m.fileStatus[msg.Index].Status = StatusDone
		m.successCount++
	}

	m.currentFile++
	if m.currentFile < len(m.files) {
		return m, m.applyNextFile()
	}

	m.state = StateDone
	return m, nil
}

// saveSession persists the folder and recursion flag, best effort.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	_ = m.store.SaveSession(state.Session{
		LastFolder:        m.folder,
		IncludeSubfolders: m.recursive,
	})
}

// quit closes the session store and exits the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.store != nil {
		_ = m.store.Close()
	}
	return m, tea.Quit
}
