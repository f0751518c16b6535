package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"topwords/internal/domain"
	"topwords/internal/reporter"
)

// Model is the Bubble Tea model for browsing a ranking.
type Model struct {
	ranking  domain.Ranking
	title    string
	input    textinput.Model
	viewport viewport.Model
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model instance.
func New(ranking domain.Ranking, title string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Dimension number or word, then Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := fmt.Sprintf("%d dimensions. Up/Down to move, Esc to quit.", len(ranking))
	return Model{ranking: ranking, title: title, input: ti, viewport: vp, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Cursor returns the selected dimension.
func (m Model) Cursor() int { return m.cursor }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, lh := listBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input line
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-lh)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.jump(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			m.refresh()
			return m, nil
		case tea.KeyDown:
			m.move(1)
			return m, nil
		case tea.KeyUp:
			m.move(-1)
			return m, nil
		case tea.KeyPgDown:
			m.move(max(1, m.viewport.Height))
			return m, nil
		case tea.KeyPgUp:
			m.move(-max(1, m.viewport.Height))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(m.title)
	list := listBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + list + "\n" + input + "\n" + status
}

func (m *Model) move(delta int) {
	if len(m.ranking) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.ranking)-1)
	m.refresh()
}

// jump moves to a dimension index, or to the next dimension after the
// cursor whose list contains the query word.
func (m *Model) jump(query string) {
	if query == "" || len(m.ranking) == 0 {
		return
	}
	if d, err := strconv.Atoi(query); err == nil {
		if d < 0 || d >= len(m.ranking) {
			m.status = fmt.Sprintf("No dimension %d (0-%d)", d, len(m.ranking)-1)
			return
		}
		m.cursor = d
		m.status = fmt.Sprintf("Dimension %d", d)
		return
	}
	n := len(m.ranking)
	for step := 1; step <= n; step++ {
		d := (m.cursor + step) % n
		for _, w := range m.ranking[d] {
			if w == query {
				m.cursor = d
				m.status = fmt.Sprintf("%q found in dimension %d", query, d)
				return
			}
		}
	}
	m.status = fmt.Sprintf("%q is not a top word of any dimension", query)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderList())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if h := m.viewport.Height; h > 0 && m.cursor >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(m.cursor - h + 1)
	}
}

func (m Model) renderList() string {
	if len(m.ranking) == 0 {
		return "No dimensions."
	}
	lines := make([]string, len(m.ranking))
	for d, words := range m.ranking {
		line := fmt.Sprintf("%4d  %s", d, reporter.FormatList(words))
		if d == m.cursor {
			line = selectedStyle.Render(line)
		}
		lines[d] = line
	}
	return strings.Join(lines, "\n")
}

var (
	listBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
