package diagram

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/canvas"
	"pontutor/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// SelectMsg asks the app to select a node.
type SelectMsg struct{ ID string }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Left   key.Binding
	Right  key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next node")),
	Prev:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous node")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select node")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll right")),
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Interactive PON Diagram pane. It scrolls a painted canvas
// and keeps a keyboard focus that walks the nodes in dataset order.
type Model struct {
	plan   tutordto.DiagramOutput
	canvas *canvas.Canvas
	focus  int
	top    int
	left   int
	width  int
	height int
}

func New() Model {
	return Model{canvas: &canvas.Canvas{}}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Next):
		m.moveFocus(1)
	case key.Matches(km, keys.Prev):
		m.moveFocus(-1)
	case key.Matches(km, keys.Left):
		m.left = max(m.left-4, 0)
	case key.Matches(km, keys.Right):
		if w, _ := m.canvas.Size(); m.left+m.width < w {
			m.left += 4
		}
	case key.Matches(km, keys.Select):
		if id := m.FocusedID(); id != "" {
			return m, func() tea.Msg { return SelectMsg{ID: id} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	body := m.canvas.Window(m.top, m.left, max(m.height-1, 1), m.width)
	return theme.Title.Render("Interactive PON Diagram") + "\n" + body
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.reveal()
}

// SetDiagram repaints the canvas for a new plan.
func (m *Model) SetDiagram(plan tutordto.DiagramOutput) {
	m.plan = plan
	if m.focus >= len(plan.Nodes) {
		m.focus = 0
	}
	m.repaint()
}

// Click handles a press at a pane-relative cell, the title line being row 0.
func (m Model) Click(row, col int) (Model, tea.Cmd) {
	if row < 1 {
		return m, nil
	}
	id, ok := m.canvas.NodeAt(row-1+m.top, col+m.left)
	if !ok {
		return m, nil
	}
	for i, n := range m.plan.Nodes {
		if n.ID == id {
			m.focus = i
		}
	}
	m.repaint()
	return m, func() tea.Msg { return SelectMsg{ID: id} }
}

func (m Model) FocusedID() string {
	if m.focus < len(m.plan.Nodes) {
		return m.plan.Nodes[m.focus].ID
	}
	return ""
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) moveFocus(delta int) {
	n := len(m.plan.Nodes)
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
	m.repaint()
}

func (m *Model) repaint() {
	m.canvas = canvas.Paint(m.plan, m.FocusedID())
	m.reveal()
}

// reveal scrolls so the focused box is fully visible when it fits.
func (m *Model) reveal() {
	b, ok := m.canvas.BoxOf(m.FocusedID())
	if !ok || m.width <= 0 {
		return
	}
	rows := max(m.height-1, 1)
	switch {
	case b.Top < m.top:
		m.top = b.Top
	case b.Top+b.Height > m.top+rows:
		m.top = b.Top + b.Height - rows
	}
	switch {
	case b.Left < m.left:
		m.left = b.Left
	case b.Left+canvas.BoxWidth > m.left+m.width:
		m.left = b.Left + canvas.BoxWidth - m.width
	}
	m.top = max(m.top, 0)
	m.left = max(m.left, 0)
}
