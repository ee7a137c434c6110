package glossary

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	glossarydto "pontutor/internal/modules/glossary/dto"
	"pontutor/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// SelectMsg asks the app to select a term.
type SelectMsg struct{ Key string }

// ─── cards ───────────────────────────────────────────────────────────────────

// Cards renders one card per term and returns the first line of each card.
// cursor < 0 draws no cursor; selected names the term to highlight.
func Cards(terms []glossarydto.TermOutput, cursor int, selected string, s theme.Styler, width int) (string, []int) {
	if len(terms) == 0 {
		return s.Muted("No terms match the search."), nil
	}
	wrap := lipgloss.NewStyle().Width(max(width-2, 8))
	starts := make([]int, len(terms))
	var lines []string
	for i, t := range terms {
		starts[i] = len(lines)
		marker := "  "
		if i == cursor {
			marker = s.Hot("▌ ")
		}
		head := t.Display + " (" + t.ReadAs + ")"
		if t.Key == selected {
			head = s.Hot(head)
		} else {
			head = s.Title(head)
		}
		body := []string{
			head,
			s.Bold(t.Full),
			t.Simple,
			s.Muted("Example: " + t.Example),
		}
		for j, b := range body {
			for _, l := range strings.Split(wrap.Render(b), "\n") {
				prefix := "  "
				if j == 0 && l != "" {
					prefix = marker
					marker = "  "
				}
				lines = append(lines, strings.TrimRight(prefix+l, " "))
			}
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), starts
}

// ─── model ───────────────────────────────────────────────────────────────────

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous term")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next term")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select term")),
}

// Model is the Abbreviations Tutor pane.
type Model struct {
	viewport viewport.Model
	terms    []glossarydto.TermOutput
	starts   []int
	lines    int
	cursor   int
	selected string
	width    int
	height   int
}

func New() Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text)
	return Model{viewport: vp}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(km, keys.Up):
		m.move(-1)
	case key.Matches(km, keys.Down):
		m.move(1)
	case key.Matches(km, keys.Select):
		return m, m.selectCmd()
	}
	return m, nil
}

func (m Model) View() string {
	return theme.Title.Render("Abbreviations Tutor") + "\n" + m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	m.refresh()
}

// SetTerms replaces the visible list, keeping the cursor on the same term
// when it is still listed.
func (m *Model) SetTerms(terms []glossarydto.TermOutput, selected string) {
	current := ""
	if m.cursor < len(m.terms) {
		current = m.terms[m.cursor].Key
	}
	m.terms = terms
	m.selected = selected
	m.cursor = 0
	for i, t := range terms {
		if t.Key == current {
			m.cursor = i
			break
		}
	}
	m.refresh()
}

// Click handles a press on a row of the pane, counted from its title line.
func (m Model) Click(row int) (Model, tea.Cmd) {
	line := row - 1 + m.viewport.YOffset
	if row < 1 || len(m.starts) == 0 || line >= m.lines {
		return m, nil
	}
	idx := len(m.starts) - 1
	for i := 1; i < len(m.starts); i++ {
		if line < m.starts[i] {
			idx = i - 1
			break
		}
	}
	// The blank row before the next card belongs to no card.
	if idx+1 < len(m.starts) && line == m.starts[idx+1]-1 {
		return m, nil
	}
	m.cursor = idx
	m.refresh()
	return m, m.selectCmd()
}

func (m Model) Cursor() int { return m.cursor }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) move(delta int) {
	if len(m.terms) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.terms)) % len(m.terms)
	m.refresh()
}

func (m Model) selectCmd() tea.Cmd {
	if m.cursor >= len(m.terms) {
		return nil
	}
	k := m.terms[m.cursor].Key
	return func() tea.Msg { return SelectMsg{Key: k} }
}

func (m *Model) refresh() {
	if m.width <= 0 {
		return
	}
	content, starts := Cards(m.terms, m.cursor, m.selected, theme.Styled{}, m.width)
	m.starts = starts
	m.lines = len(strings.Split(content, "\n"))
	m.viewport.SetContent(content)
	if m.cursor < len(starts) {
		top := starts[m.cursor]
		bottom := m.lines
		if m.cursor+1 < len(starts) {
			bottom = starts[m.cursor+1]
		}
		switch {
		case top < m.viewport.YOffset:
			m.viewport.SetYOffset(top)
		case bottom > m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(bottom - m.viewport.Height)
		}
	}
}
