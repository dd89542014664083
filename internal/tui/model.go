package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textmatch/internal/domain"
)

// MatcherPort is the TUI-facing subset of the matcher service.
type MatcherPort interface {
	SearchVerbose(query string) (domain.Match, error)
	Summary() string
}

// Model is the Bubble Tea model for the interactive search screen.
type Model struct {
	matcher   MatcherPort
	input     textinput.Model
	viewport  viewport.Model
	match     *domain.Match
	summary   string
	status    string
	cursor    int
	ready     bool
	lastQuery string
}

// New creates a new TUI model instance.
func New(matcher MatcherPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		matcher:  matcher,
		input:    ti,
		viewport: vp,
		summary:  matcher.Summary(),
		status:   "Indexed. Type to search.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderMatch())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				match, err := m.matcher.SearchVerbose(q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.match = nil
				} else {
					m.status = fmt.Sprintf("Results for %q", q)
					m.match = &match
					m.cursor = 0
					m.lastQuery = q
				}
				m.viewport.SetContent(m.renderMatch())
				return m, nil
			}
		case "down":
			if m.match != nil && len(m.match.Distances) > 0 {
				m.cursor = (m.cursor + 1) % len(m.match.Distances)
				m.viewport.SetContent(m.renderMatch())
				return m, nil
			}
		case "up":
			if m.match != nil && len(m.match.Distances) > 0 {
				m.cursor = (m.cursor - 1 + len(m.match.Distances)) % len(m.match.Distances)
				m.viewport.SetContent(m.renderMatch())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current match.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("textmatch")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("indexed: " + m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderMatch() string {
	if m.match == nil {
		return "No results yet."
	}
	var b strings.Builder
	if m.match.Found {
		b.WriteString(bestStyle.Render(fmt.Sprintf("closest: %s  distance=%.5f", m.match.DocumentID, m.match.Distance)))
	} else {
		b.WriteString("no document found")
	}
	b.WriteString("\n")
	if len(m.match.Recognized) > 0 {
		b.WriteString("recognized terms: " + strings.Join(m.match.Recognized, ", "))
	} else {
		b.WriteString("recognized terms: (none)")
	}
	b.WriteString("\n\n")
	for i, dd := range m.match.Distances {
		line := fmt.Sprintf("%.5f  %s", dd.Distance, dd.ID)
		switch {
		case i == m.cursor:
			line = cursorStyle.Render("» " + line)
		case dd.ID == m.match.DocumentID:
			line = bestStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	bestStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
