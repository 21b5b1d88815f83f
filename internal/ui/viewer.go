package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// chrome: одна строка заголовка и одна строка подвала
const chromeHeight = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	width    int
	ready    bool
}

// NewViewerModel returns a Bubble Tea model that shows content in a
// scrollable full-screen pane.
func NewViewerModel(title, content string) tea.Model {
	return &viewerModel{
		title:   title,
		content: strings.TrimRight(content, "\n"),
		width:   80,
	}
}

// RunViewer blocks until the user leaves the viewer.
func RunViewer(title, content string, out io.Writer) error {
	program := tea.NewProgram(NewViewerModel(title, content), tea.WithAltScreen(), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "home":
			m.viewport.GotoTop()
			return m, nil
		case "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "\n  loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.header(), m.viewport.View(), m.footer())
}

func (m *viewerModel) header() string {
	width := max(m.width-1, 10)
	return titleStyle.Render(runewidth.Truncate(m.title, width, "…"))
}

func (m *viewerModel) footer() string {
	return footerStyle.Render(fmt.Sprintf("%3.f%%  q quit", m.viewport.ScrollPercent()*100))
}
