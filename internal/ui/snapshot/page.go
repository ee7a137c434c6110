// Package snapshot renders a whole view as plain text for printing and for
// the command line.
package snapshot

import (
	"strings"

	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/canvas"
	"pontutor/internal/ui/theme"
	"pontutor/internal/ui/views/detail"
	"pontutor/internal/ui/views/glossary"
)

const Width = 72

// Page lays the top bar, diagram, glossary and detail panel out one after
// another.
func Page(v tutordto.ViewOutput) string {
	var sb strings.Builder
	sb.WriteString(Layers(v.Layers) + "\n")
	query := "(none)"
	if v.Query != "" {
		query = `"` + v.Query + `"`
	}
	sb.WriteString("Search: " + query + "\n\n")

	sb.WriteString(section("Interactive PON Diagram"))
	sb.WriteString(Diagram(v.Diagram) + "\n\n")

	sb.WriteString(section("Abbreviations Tutor"))
	cards, _ := glossary.Cards(v.Terms, -1, "", theme.Plain{}, Width)
	sb.WriteString(cards + "\n\n")

	sb.WriteString(section("Details / Tutor"))
	sb.WriteString(Detail(v.Detail))
	return sb.String()
}

// Layers renders the toggle bar as checkboxes.
func Layers(layers []tutordto.LayerOutput) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = Checkbox(l.On) + " " + l.Label
	}
	return "Layers: " + strings.Join(parts, "  ")
}

func Checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func Diagram(d tutordto.DiagramOutput) string {
	return canvas.Paint(d, "").Plain()
}

func Detail(d tutordto.DetailOutput) string {
	return detail.Render(detail.Markdown(d), "ascii", Width)
}

func section(title string) string {
	return title + "\n" + strings.Repeat("=", len(title)) + "\n\n"
}
