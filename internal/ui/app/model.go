package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	glossarydto "pontutor/internal/modules/glossary/dto"
	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/components"
	"pontutor/internal/ui/snapshot"
	"pontutor/internal/ui/theme"
	detailview "pontutor/internal/ui/views/detail"
	diagramview "pontutor/internal/ui/views/diagram"
	glossaryview "pontutor/internal/ui/views/glossary"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.

type viewPort interface {
	ID() string
	SelectNode(id string) (tutordto.DetailOutput, error)
	SelectTerm(key string) (tutordto.DetailOutput, error)
	ToggleLayer(id string) ([]tutordto.LayerOutput, error)
	SetQuery(query string) []glossarydto.TermOutput
	State() tutordto.ViewOutput
}

type printPort interface {
	Print(ctx context.Context, title string, view tutordto.ViewOutput, body string) (tutordto.PrintOutput, error)
}

// ─── panes ───────────────────────────────────────────────────────────────────

type paneID int

const (
	paneGlossary paneID = iota
	paneDiagram
	paneDetail
	paneCount
)

const (
	headerHeight = 2
	statusHeight = 1
	printTitle   = "PON Visual Tutor"
)

// ─── async messages ───────────────────────────────────────────────────────────

type printDoneMsg struct {
	out tutordto.PrintOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Search  key.Binding
	Layer   key.Binding
	Print   key.Binding
	Move    key.Binding
	Enter   key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search terms")),
		Layer:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "toggle layer")),
		Print:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
		Move:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Search, k.Layer, k.Print, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Move, k.Enter},
		{k.Search, k.Layer, k.Print},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the top bar, pane focus, the
// help overlay and the command palette. Selection state lives in the view
// port; sub-views only render it and report clicks and key presses.
type Model struct {
	view    viewPort
	printer printPort

	glossView  glossaryview.Model
	diagView   diagramview.Model
	detailView detailview.Model

	state    tutordto.ViewOutput
	search   textinput.Model
	focus    paneID
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	spinner  spinner.Model
	printing bool
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(view viewPort, printer printPort) Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "PON, OLT, splitter, 1:4…"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)

	m := Model{
		view:       view,
		printer:    printer,
		glossView:  glossaryview.New(),
		diagView:   diagramview.New(),
		detailView: detailview.New(),
		search:     ti,
		focus:      paneDiagram,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		spinner:    sp,
		status:     "ready",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// State is the view state the model last rendered.
func (m Model) State() tutordto.ViewOutput { return m.state }

func (m Model) Status() string { return m.status }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts input while open; results of background work
	// still reach the model.
	if m.palette.Visible() && !passesPalette(msg) {
		if _, ok := msg.(tea.MouseMsg); ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.printing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.search.Width = max(m.width/3, 20)
		m.propagateSize()
		return m, nil

	case printDoneMsg:
		m.printing = false
		switch {
		case msg.err != nil && msg.out.Path != "":
			m.status = fmt.Sprintf("print failed (%v), page saved to %s", msg.err, msg.out.Path)
		case msg.err != nil:
			m.status = "print failed: " + msg.err.Error()
		case msg.out.Printed:
			m.status = "sent to printer: " + msg.out.Path
		default:
			m.status = "page saved: " + msg.out.Path
		}
		return m, nil

	case glossaryview.SelectMsg:
		m.selectTerm(msg.Key)
		return m, nil

	case diagramview.SelectMsg:
		m.selectNode(msg.ID)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.search.Focused() {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open("")
			return m, cmd
		case key.Matches(msg, m.keys.Search):
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Tab):
			m.focus = (m.focus + 1) % paneCount
			return m, nil
		case msg.String() == "shift+tab":
			m.focus = (m.focus + paneCount - 1) % paneCount
			return m, nil
		case key.Matches(msg, m.keys.Print):
			cmd := m.printCmd()
			return m, cmd
		case key.Matches(msg, m.keys.Layer):
			n, _ := strconv.Atoi(msg.String())
			if n > len(m.state.Layers) {
				return m, nil
			}
			m.toggleLayer(m.state.Layers[n-1].ID)
			return m, nil
		}
	}

	// Anything left goes to the focused pane.
	var cmd tea.Cmd
	switch m.focus {
	case paneGlossary:
		m.glossView, cmd = m.glossView.Update(msg)
	case paneDiagram:
		m.diagView, cmd = m.diagView.Update(msg)
	case paneDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.search.Blur()
		m.focus = paneGlossary
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.setQuery(m.search.Value())
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pane, row, col, ok := m.paneAt(msg.X, msg.Y)

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		switch pane {
		case paneGlossary:
			m.glossView, cmd = m.glossView.Update(msg)
		case paneDetail:
			m.detailView, cmd = m.detailView.Update(msg)
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y == 0 {
		if id, hit := layerAt(m.state.Layers, msg.X); hit {
			m.toggleLayer(id)
		}
		return m, nil
	}
	if !ok {
		return m, nil
	}
	m.focus = pane
	var cmd tea.Cmd
	switch pane {
	case paneGlossary:
		m.glossView, cmd = m.glossView.Click(row)
	case paneDiagram:
		m.diagView, cmd = m.diagView.Click(row, col)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	contentH := max(m.height-headerHeight-statusHeight, 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.renderPanes(contentH)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) renderHeader() string {
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(barTitle))
	for i, part := range layerParts(m.state.Layers) {
		if i > 0 {
			sb.WriteString(barSep)
		}
		if m.state.Layers[i].On {
			sb.WriteString(part)
		} else {
			sb.WriteString(theme.Muted.Render(part))
		}
	}
	bar := lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(1).Render(sb.String())

	search := m.search.View() + "   " + theme.Muted.Render("p:print  ?:help")
	return bar + "\n" + lipgloss.NewStyle().Width(m.width).MaxHeight(1).Render(search)
}

func (m Model) renderPanes(height int) string {
	gw, dw, tw := m.paneWidths()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.paneStyle(paneGlossary).Width(gw-2).Height(height-2).Render(m.glossView.View()),
		m.paneStyle(paneDiagram).Width(dw-2).Height(height-2).Render(m.diagView.View()),
		m.paneStyle(paneDetail).Width(tw-2).Height(height-2).Render(m.detailView.View()),
	)
}

func (m Model) paneStyle(p paneID) lipgloss.Style {
	if p == m.focus && !m.search.Focused() {
		return theme.PaneActive
	}
	return theme.Pane
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.printing {
		left = m.spinner.View() + theme.Hot.Render(" printing") + "  " + left
	}
	if sel := selectionLabel(m.state.Detail); sel != "" {
		left = theme.Title.Render(sel) + "  " + left
	}
	right := theme.Muted.Render("tab:pane  /:search  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(1).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "select:node":
		if len(parts) < 2 {
			m.status = "usage: select:node <id>"
			return m, nil
		}
		m.selectNode(parts[1])

	case "select:term":
		if len(parts) < 2 {
			m.status = "usage: select:term <key>"
			return m, nil
		}
		m.selectTerm(parts[1])

	case "layer:toggle":
		if len(parts) < 2 {
			m.status = "usage: layer:toggle <id>"
			return m, nil
		}
		m.toggleLayer(parts[1])

	case "search":
		q := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), parts[0]))
		m.search.SetValue(q)
		m.setQuery(q)

	case "search:clear":
		m.search.SetValue("")
		m.setQuery("")

	case "print":
		cmd := m.printCmd()
		return m, cmd

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) selectNode(id string) {
	if _, err := m.view.SelectNode(id); err != nil {
		m.status = "select node: " + err.Error()
		return
	}
	m.status = "selected node " + id
	m.refresh()
}

func (m *Model) selectTerm(k string) {
	if _, err := m.view.SelectTerm(k); err != nil {
		m.status = "select term: " + err.Error()
		return
	}
	m.status = "selected term " + k
	m.refresh()
}

func (m *Model) toggleLayer(id string) {
	layers, err := m.view.ToggleLayer(id)
	if err != nil {
		m.status = "toggle layer: " + err.Error()
		return
	}
	for _, l := range layers {
		if l.ID == id {
			m.status = l.Label + " " + onOff(l.On)
		}
	}
	m.refresh()
}

func (m *Model) setQuery(q string) {
	terms := m.view.SetQuery(q)
	m.status = fmt.Sprintf("%d terms", len(terms))
	m.refresh()
}

// refresh pulls the view state and pushes it into every pane.
func (m *Model) refresh() {
	m.state = m.view.State()
	selected := ""
	if m.state.Detail.Kind == tutordto.DetailTerm && m.state.Detail.Term != nil {
		selected = m.state.Detail.Term.Key
	}
	m.glossView.SetTerms(m.state.Terms, selected)
	m.diagView.SetDiagram(m.state.Diagram)
	m.detailView.SetDetail(m.state.Detail)
}

func (m Model) paneWidths() (glossary, diagram, detail int) {
	glossary = m.width * 27 / 100
	detail = m.width * 27 / 100
	diagram = m.width - glossary - detail
	return glossary, diagram, detail
}

func (m *Model) propagateSize() {
	h := max(m.height-headerHeight-statusHeight-2, 1)
	gw, dw, tw := m.paneWidths()
	m.glossView.SetSize(max(gw-2, 1), h)
	m.diagView.SetSize(max(dw-2, 1), h)
	m.detailView.SetSize(max(tw-2, 1), h)
}

// paneAt maps a screen cell to a pane and a position inside its border.
func (m Model) paneAt(x, y int) (paneID, int, int, bool) {
	row := y - headerHeight - 1
	bodyH := m.height - headerHeight - statusHeight - 2
	if row < 0 || row >= bodyH {
		return 0, 0, 0, false
	}
	gw, dw, tw := m.paneWidths()
	switch {
	case x > 0 && x < gw-1:
		return paneGlossary, row, x - 1, true
	case x > gw && x < gw+dw-1:
		return paneDiagram, row, x - gw - 1, true
	case x > gw+dw && x < gw+dw+tw-1:
		return paneDetail, row, x - gw - dw - 1, true
	}
	return 0, 0, 0, false
}

func (m *Model) printCmd() tea.Cmd {
	if m.printing {
		m.status = "print already running"
		return nil
	}
	m.printing = true
	m.status = "printing…"
	state := m.state
	body := snapshot.Page(state)
	printer := m.printer
	return tea.Batch(func() tea.Msg {
		out, err := printer.Print(context.Background(), printTitle, state, body)
		return printDoneMsg{out: out, err: err}
	}, m.spinner.Tick)
}

// passesPalette reports whether msg is handled by the model even while the
// palette is open.
func passesPalette(msg tea.Msg) bool {
	switch msg.(type) {
	case printDoneMsg, spinner.TickMsg, tea.WindowSizeMsg,
		glossaryview.SelectMsg, diagramview.SelectMsg,
		components.PaletteSubmitMsg, components.PaletteCancelMsg:
		return true
	}
	return false
}

// ─── layer bar ────────────────────────────────────────────────────────────────

const (
	barTitle = "PON Visual Tutor  "
	barSep   = "  "
)

func layerParts(layers []tutordto.LayerOutput) []string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = strconv.Itoa(i+1) + snapshot.Checkbox(l.On) + " " + l.Label
	}
	return parts
}

// layerAt reports the layer whose checkbox label covers column x of the
// top bar.
func layerAt(layers []tutordto.LayerOutput, x int) (string, bool) {
	pos := lipgloss.Width(barTitle)
	for i, part := range layerParts(layers) {
		w := lipgloss.Width(part)
		if x >= pos && x < pos+w {
			return layers[i].ID, true
		}
		pos += w + lipgloss.Width(barSep)
	}
	return "", false
}

func selectionLabel(d tutordto.DetailOutput) string {
	switch d.Kind {
	case tutordto.DetailNode:
		if d.Node != nil {
			return "● " + d.Node.Label
		}
	case tutordto.DetailTerm:
		if d.Term != nil {
			return "● " + d.Term.Display
		}
	}
	return ""
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
