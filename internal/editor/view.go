package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mgirard/etch/internal/tags"
	"github.com/mgirard/etch/internal/ui/overlay"
	"github.com/mgirard/etch/internal/ui/render"
	"github.com/mgirard/etch/internal/ui/styles"
)

// Symbols for per-file status indicators
const (
	doneSymbol     = "\u2714" // ✔
	failedSymbol   = "\u2717" // ✗
	progressSymbol = "\u21E9" // ⇩
	pendingSymbol  = "\u25CB" // ○
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // orange

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")) // green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))
)

// View renders the current screen.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	switch m.state {
	case StateFolder:
		content = m.renderFolder()
	case StateScanning:
		content = m.renderWait("Scanning " + strings.TrimSpace(m.folderInput.Value()) + "...")
	case StateLoading:
		content = m.renderWait("Reading tags for preview...")
	case StateEdit:
		content = m.renderEdit()
	case StateApplying:
		content = m.renderApplying()
	case StateDone:
		content = m.renderDone()
	}

	if m.confirm.Active() {
		content = overlay.Compose(content, m.confirm.View(), m.width, m.height)
	}

	return content
}

// innerWidth returns the usable content width.
func (m *Model) innerWidth() int {
	return max(m.width-2, 20)
}

// previewHeight returns the number of preview table rows that fit.
func (m *Model) previewHeight() int {
	return max(m.height-24, 3)
}

// banner renders the application title line.
func (m *Model) banner() string {
	name := styles.ApplyBoldGradient("etch", styles.T().Primary, styles.T().Secondary)
	return name + "  " + headerStyle.Render("bulk audio tag editor")
}

// renderFolder renders the folder prompt.
func (m *Model) renderFolder() string {
	innerWidth := m.innerWidth()

	lines := []string{
		m.banner(),
		"",
		render.Separator(innerWidth),
		"",
		labelStyle.Render("Audio folder"),
		m.folderInput.View(),
		"",
		labelStyle.Render("Include subfolders: ") + valueStyle.Render(yesNo(m.recursive)),
		"",
	}

	if m.errorMsg != "" {
		lines = append(lines, errorStyle.Render(m.errorMsg), "")
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render(m.warning), "")
	}

	lines = append(lines,
		dimStyle.Render("Supported extensions: "+tags.SupportedExtensions()),
		"",
		dimStyle.Render("[Enter] Scan   [Ctrl+R] Toggle subfolders   [Esc] Quit"),
	)

	return strings.Join(lines, "\n")
}

// renderWait renders the scanning and loading states.
func (m *Model) renderWait(message string) string {
	lines := []string{
		m.banner(),
		"",
		render.Separator(m.innerWidth()),
		"",
		headerStyle.Render(message),
		"",
		dimStyle.Render("[Esc] Back   [Q] Quit"),
	}
	return strings.Join(lines, "\n")
}

// overviewLine renders the folder summary shown above the form.
func (m *Model) overviewLine() string {
	count := humanize.Comma(int64(len(m.files)))
	return valueStyle.Render("Found "+count+" audio files in ") +
		headerStyle.Render(m.folder) + valueStyle.Render(".")
}

// renderEdit renders the form and preview table.
func (m *Model) renderEdit() string {
	innerWidth := m.innerWidth()

	lines := []string{m.overviewLine()}
	if len(m.files) > PreviewLimit {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("Preview limited to first %d entries.", PreviewLimit)))
	}

	lines = append(lines,
		"",
		titleStyle.Render("Bulk metadata update"),
		dimStyle.Render("Provide only the fields you want to change; leave others blank to skip them."),
		"",
	)

	lines = append(lines, m.renderForm()...)

	if help := tags.FieldDefs[m.focus].Help; help != "" {
		lines = append(lines, dimStyle.Render(help))
	} else {
		lines = append(lines, "")
	}

	for _, e := range m.formErrs {
		lines = append(lines, errorStyle.Render(e))
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render(m.warning))
	}

	lines = append(lines, "")
	lines = append(lines, m.renderPreview(innerWidth)...)

	lines = append(lines,
		"",
		dimStyle.Render("[Ctrl+S] Apply   [Tab] Next field   [PgUp/PgDn] Scroll preview   [Ctrl+R] Subfolders   [Esc] Back"),
	)

	return strings.Join(lines, "\n")
}

// renderForm renders the ten field rows.
func (m *Model) renderForm() []string {
	const labelWidth = 22

	rows := make([]string, 0, len(m.inputs))
	for i, def := range tags.FieldDefs {
		label := render.Pad(def.Label, labelWidth)
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		rows = append(rows, style.Render(label)+m.inputs[i].View())
	}
	return rows
}

// previewWidths holds the preview table column widths.
type previewWidths struct {
	file, title, artists, album, year, track, genre, path int
}

// previewColumns computes column widths for the given content width.
func previewColumns(innerWidth int) previewWidths {
	w := previewWidths{year: 10, track: 5}

	// Seven two-space gaps between eight columns
	rest := innerWidth - w.year - w.track - 14
	w.file = max(rest/5, 8)
	w.title = max(rest/5, 8)
	w.artists = max(rest/6, 6)
	w.album = max(rest/6, 6)
	w.genre = max(rest/8, 5)
	w.path = max(rest-w.file-w.title-w.artists-w.album-w.genre, 8)
	return w
}

// renderPreview renders the preview table of current file metadata.
func (m *Model) renderPreview(innerWidth int) []string {
	w := previewColumns(innerWidth)

	header := strings.Join([]string{
		render.Pad("File", w.file),
		render.Pad("Title", w.title),
		render.Pad("Artists", w.artists),
		render.Pad("Album", w.album),
		render.Pad("Year", w.year),
		render.Pad("Track", w.track),
		render.Pad("Genre", w.genre),
		"Path",
	}, "  ")

	lines := []string{dimStyle.Render(header)}

	height := m.previewHeight()
	start, end := m.previewCursor.VisibleRange(len(m.preview), height)
	for i := start; i < end; i++ {
		row := m.previewRow(&m.preview[i], w)
		if i == m.previewCursor.Pos() {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, valueStyle.Render(row))
		}
	}

	if len(m.preview) > height {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("(%d-%d of %d)", start+1, end, len(m.preview))))
	}

	return lines
}

// previewRow formats one preview table row.
func (m *Model) previewRow(t *tags.Tag, w previewWidths) string {
	return strings.Join([]string{
		render.TruncateAndPad(filepath.Base(t.Path), w.file),
		render.TruncateAndPad(t.Title, w.title),
		render.TruncateAndPad(t.Artist, w.artists),
		render.TruncateAndPad(t.Album, w.album),
		render.TruncateAndPad(t.Year, w.year),
		render.TruncateAndPad(t.TrackText(), w.track),
		render.TruncateAndPad(t.Genre, w.genre),
		render.Truncate(t.Path, w.path),
	}, "  ")
}

// renderApplying renders the per-file progress list.
func (m *Model) renderApplying() string {
	innerWidth := m.innerWidth()

	lines := []string{
		m.overviewLine(),
		"",
		render.Separator(innerWidth),
		"",
		headerStyle.Render("Updating metadata..."),
		"",
	}

	// Sliding window that keeps the active file in view
	maxVisible := max(m.height-12, 5)
	start := min(max(m.currentFile-maxVisible/2, 0), max(len(m.fileStatus)-maxVisible, 0))
	end := min(start+maxVisible, len(m.fileStatus))

	for i := start; i < end; i++ {
		lines = append(lines, m.statusLine(&m.fileStatus[i], innerWidth))
	}
	if end < len(m.fileStatus) {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... and %d more", len(m.fileStatus)-end)))
	}

	completed := m.successCount + len(m.failed)
	lines = append(lines,
		"",
		dimStyle.Render(fmt.Sprintf("Progress: %d/%d files", completed, len(m.fileStatus))),
	)

	return strings.Join(lines, "\n")
}

// statusLine formats one row of the apply progress list.
func (m *Model) statusLine(fs *FileStatus, innerWidth int) string {
	var icon, text string
	var style lipgloss.Style

	switch fs.Status {
	case StatusDone:
		icon = doneSymbol
		text = "Done"
		style = successStyle
	case StatusUpdating:
		icon = progressSymbol
		text = "Updating..."
		style = focusedStyle
	case StatusFailed:
		icon = failedSymbol
		text = fs.Error
		style = errorStyle
	case StatusPending:
		icon = pendingSymbol
		text = "Pending"
		style = dimStyle
	}

	name := render.Truncate(filepath.Base(fs.Path), innerWidth/2)
	return fmt.Sprintf("%s %s  %s", style.Render(icon), valueStyle.Render(name), style.Render(text))
}

// renderDone renders the batch summary.
func (m *Model) renderDone() string {
	innerWidth := m.innerWidth()

	lines := []string{
		m.banner(),
		"",
		render.Separator(innerWidth),
		"",
	}

	if m.successCount > 0 {
		summary := fmt.Sprintf("%s Updated metadata for %d of %d files.", doneSymbol, m.successCount, len(m.files))
		lines = append(lines, successStyle.Render(summary))
	}

	if len(m.failed) > 0 {
		lines = append(lines,
			errorStyle.Render("Some files could not be updated. See details below."),
			"",
		)
		lines = append(lines, m.renderFailures(innerWidth)...)
	}

	lines = append(lines, "", dimStyle.Render("[Enter] Edit again   [Esc] Quit"))

	return strings.Join(lines, "\n")
}

// renderFailures renders the failed file table.
func (m *Model) renderFailures(innerWidth int) []string {
	nameW := innerWidth / 4
	pathW := innerWidth / 3
	errW := max(innerWidth-nameW-pathW-6, 10)

	header := strings.Join([]string{
		render.Pad("File", nameW),
		render.Pad("Path", pathW),
		"Error",
	}, "  ")
	lines := []string{dimStyle.Render(header)}

	maxVisible := max(m.height-12, 5)
	count := min(len(m.failed), maxVisible)
	for i := range count {
		f := &m.failed[i]
		row := strings.Join([]string{
			render.TruncateAndPad(f.Name, nameW),
			render.TruncateAndPad(f.Path, pathW),
			render.Truncate(f.Error, errW),
		}, "  ")
		lines = append(lines, errorStyle.Render(row))
	}
	if len(m.failed) > maxVisible {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... and %d more", len(m.failed)-maxVisible)))
	}

	return lines
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
