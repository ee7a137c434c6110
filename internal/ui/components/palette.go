package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pontutor/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command line.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is sent when the palette is dismissed with esc.
type PaletteCancelMsg struct{}

// Command is one palette entry. The app's executePalette switch dispatches
// on Name.
type Command struct {
	Name string
	Args string
	Help string
}

func (c Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

var Commands = []Command{
	{Name: "select:node", Args: "<id>", Help: "show a diagram node"},
	{Name: "select:term", Args: "<key>", Help: "show a glossary term"},
	{Name: "layer:toggle", Args: "<id>", Help: "flip OFC, SPLITTER, JB, ONT or ANNOT"},
	{Name: "search", Args: "<query>", Help: "filter the glossary"},
	{Name: "search:clear", Help: "show every term"},
	{Name: "print", Help: "save the page and send it to the printer"},
}

const shownCommands = 6

// Suggest lists the commands that fit what has been typed: a prefix of the
// name, or the full name followed by arguments.
func Suggest(typed string) []Command {
	typed = strings.ToLower(strings.TrimLeft(typed, " "))
	name, _, hasArgs := strings.Cut(typed, " ")
	var out []Command
	for _, c := range Commands {
		fits := strings.HasPrefix(c.Name, name)
		if hasArgs {
			fits = c.Name == name
		}
		if fits {
			out = append(out, c)
		}
		if len(out) == shownCommands {
			break
		}
	}
	return out
}

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	usageStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Palette is the ":" command line shown over the panes.
type Palette struct {
	input textinput.Model
	open  bool
	width int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "command, tab completes"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.open }

// Open shows the palette with text already typed and focuses it.
func (p *Palette) Open(text string) tea.Cmd {
	p.open = true
	p.input.SetValue(text)
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) close() {
	p.open = false
	p.input.Blur()
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.open {
		return p, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEsc:
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case tea.KeyEnter:
			line := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case tea.KeyTab:
			p.complete()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// complete replaces a partial command name with the first suggestion.
func (p *Palette) complete() {
	typed := p.input.Value()
	if strings.Contains(strings.TrimLeft(typed, " "), " ") {
		return
	}
	s := Suggest(typed)
	if len(s) == 0 {
		return
	}
	text := s[0].Name
	if s[0].Args != "" {
		text += " "
	}
	p.input.SetValue(text)
	p.input.CursorEnd()
}

func (p Palette) View() string {
	if !p.open {
		return ""
	}
	lines := []string{theme.Title.Render("Command Palette"), ": " + p.input.View()}
	if s := Suggest(p.input.Value()); len(s) > 0 {
		lines = append(lines, "")
		for _, c := range s {
			lines = append(lines, usageStyle.Render("  "+c.Usage())+theme.Muted.Render("  "+c.Help))
		}
	}
	w := p.width
	if w < 20 {
		w = 64
	}
	return frameStyle.Width(w - 2).Render(strings.Join(lines, "\n"))
}
