package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-costume/debug"
	"go-costume/sequencer"
	"go-costume/theme"
	"go-costume/widgets"
)

const (
	nameWidth   = 18
	defaultCols = 64
	minFrame    = 1
)

type Model struct {
	Doc      *sequencer.Document
	Theme    *theme.Theme
	Title    string
	offset   int // first visible time
	frame    int // time per cell
	cols     int
	showHelp bool
	quitting bool
}

var keyHelp = []widgets.KeySection{
	{Title: "Navigate", Keys: []widgets.KeyBinding{
		{Key: "h / l", Desc: "scroll back / forward a quarter screen"},
		{Key: "g / G", Desc: "jump to start / end"},
	}},
	{Title: "Zoom", Keys: []widgets.KeyBinding{
		{Key: "+ / -", Desc: "halve / double the time per cell"},
	}},
	{Title: "", Keys: []widgets.KeyBinding{
		{Key: "?", Desc: "toggle this help"},
		{Key: "q", Desc: "quit"},
	}},
}

// NewModel previews doc one frame per cell
func NewModel(doc *sequencer.Document, th *theme.Theme, title string, frame int) Model {
	return Model{
		Doc:   doc,
		Theme: th,
		Title: title,
		frame: max(minFrame, frame),
		cols:  defaultCols,
	}
}

// Offset returns the first visible time
func (m Model) Offset() int { return m.offset }

// Frame returns the time covered by one cell
func (m Model) Frame() int { return m.frame }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "l", "right":
			m.offset = min(m.offset+m.frame*m.cols/4, m.lastPage())

		case "h", "left":
			m.offset = max(0, m.offset-m.frame*m.cols/4)

		case "+", "=":
			m.frame = max(minFrame, m.frame/2)

		case "-", "_":
			if m.frame < m.maxFrame() {
				m.frame *= 2
			}
			m.offset = min(m.offset, m.lastPage())

		case "g", "home":
			m.offset = 0

		case "G", "end":
			m.offset = m.lastPage()

		case "?":
			m.showHelp = !m.showHelp
		}
		debug.LogEvery(10, "tui", "offset=%d frame=%d", m.offset, m.frame)

	case tea.WindowSizeMsg:
		m.cols = max(8, msg.Width-nameWidth-2)
	}

	return m, nil
}

// maxFrame is the zoom at which the whole document fits on screen
func (m Model) maxFrame() int {
	return max(minFrame, m.Doc.Duration()/m.cols)
}

// lastPage is the offset that shows the end of the longest zone
func (m Model) lastPage() int {
	return max(0, m.Doc.Duration()-m.frame*m.cols)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	nameStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Width(nameWidth)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	header := headerStyle.Render(fmt.Sprintf("%s  %s  %d-%d / %d  %d per cell",
		m.Title, m.Doc.Music.Filename, m.offset, m.offset+m.frame*m.cols, m.Doc.Duration(), m.frame))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")

	for i := range m.Doc.Pattern.Seqs {
		z := &m.Doc.Pattern.Seqs[i]
		name := z.Name()
		if name == "" {
			name = fmt.Sprintf("zone %d", z.ID)
		}
		out.WriteString(nameStyle.Render(fmt.Sprintf("%2d %s", z.ID, name)))
		out.WriteString(widgets.RenderTimeline(z, m.offset, m.cols, m.frame))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	if m.showHelp {
		out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))
	} else {
		out.WriteString(dimStyle.Render("h/l:scroll  +/-:zoom  g/G:start/end  ?:help  q:quit"))
	}

	return out.String()
}
