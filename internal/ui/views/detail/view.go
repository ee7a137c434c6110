package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	glossarydto "pontutor/internal/modules/glossary/dto"
	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/theme"
)

const Placeholder = "Click any node or term to view its details."

// ─── markdown ────────────────────────────────────────────────────────────────

// Markdown describes the selection shown in the detail panel.
func Markdown(d tutordto.DetailOutput) string {
	var sb strings.Builder
	switch d.Kind {
	case tutordto.DetailNode:
		if d.Node == nil {
			return Placeholder
		}
		sb.WriteString("### Selected Node\n\n")
		sb.WriteString("**" + d.Node.Label + "**\n\n")
		sb.WriteString("Type: " + d.Node.Type + "  \n")
		if d.Node.Ratio != "" {
			sb.WriteString("Split Ratio: " + d.Node.Ratio + "\n")
		}
		if d.Term != nil {
			sb.WriteString("\n---\n\n")
			writeTerm(&sb, *d.Term)
		}
	case tutordto.DetailTerm:
		if d.Term == nil {
			return Placeholder
		}
		writeTerm(&sb, *d.Term)
	default:
		return Placeholder
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeTerm(sb *strings.Builder, t glossarydto.TermOutput) {
	fmt.Fprintf(sb, "### %s (%s)\n\n", t.Display, t.ReadAs)
	sb.WriteString("*" + t.Full + "*\n\n")
	sb.WriteString("**Simple:** " + t.Simple + "\n\n")
	sb.WriteString("**Function:** " + t.Function + "\n\n")
	sb.WriteString("**Example:** " + t.Example + "\n")
}

// Render runs the markdown through glamour. style is a glamour standard
// style name; on any renderer error the source text is returned.
func Render(md, style string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Details / Tutor pane.
type Model struct {
	viewport viewport.Model
	detail   tutordto.DetailOutput
	width    int
	height   int
}

func New() Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text)
	m := Model{viewport: vp}
	m.viewport.SetContent(Placeholder)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize sets the inner size of the pane, title line included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	m.refresh()
}

// SetDetail shows a selection. The scroll position resets only when the
// selection actually changed.
func (m *Model) SetDetail(d tutordto.DetailOutput) {
	changed := identity(d) != identity(m.detail)
	m.detail = d
	m.refresh()
	if changed {
		m.viewport.GotoTop()
	}
}

func (m Model) View() string {
	return theme.Title.Render("Details / Tutor") + "\n" + m.viewport.View()
}

func identity(d tutordto.DetailOutput) string {
	id := d.Kind
	if d.Node != nil {
		id += ":" + d.Node.ID
	}
	if d.Term != nil {
		id += ":" + d.Term.Key
	}
	return id
}

func (m *Model) refresh() {
	if m.width <= 0 {
		return
	}
	m.viewport.SetContent(Render(Markdown(m.detail), "dark", m.width))
}
