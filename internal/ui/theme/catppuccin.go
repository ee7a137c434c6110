package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Bold  = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Overlay0).Faint(true)
)

// Styler decorates text fragments. Views render through it so the same
// layout can be drawn in colour or as plain text for printing.
type Styler interface {
	Title(s string) string
	Muted(s string) string
	Hot(s string) string
	Bold(s string) string
}

type Styled struct{}

func (Styled) Title(s string) string { return Title.Render(s) }
func (Styled) Muted(s string) string { return Muted.Render(s) }
func (Styled) Hot(s string) string   { return Hot.Render(s) }
func (Styled) Bold(s string) string  { return Bold.Render(s) }

type Plain struct{}

func (Plain) Title(s string) string { return s }
func (Plain) Muted(s string) string { return s }
func (Plain) Hot(s string) string   { return s }
func (Plain) Bold(s string) string  { return s }
