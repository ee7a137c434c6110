package detail_test

import (
	"strings"
	"testing"

	glossarydto "pontutor/internal/modules/glossary/dto"
	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/views/detail"
)

var ont = glossarydto.TermOutput{
	Key: "ONT", Display: "ONT", ReadAs: "Oh-En-Tee", Full: "Optical Network Terminal",
	Simple: "Ghar ka modem", Function: "Converts light to data", Example: "drop fiber F2S se aati",
}

func TestMarkdownNone(t *testing.T) {
	t.Parallel()
	if got := detail.Markdown(tutordto.DetailOutput{Kind: tutordto.DetailNone}); got != detail.Placeholder {
		t.Fatalf("unexpected none text %q", got)
	}
}

func TestMarkdownNodeWithTerm(t *testing.T) {
	t.Parallel()
	md := detail.Markdown(tutordto.DetailOutput{
		Kind: tutordto.DetailNode,
		Node: &tutordto.NodeDetailOutput{ID: "F1Sa", Label: "Splitter F1Sa", Type: "SPLITTER", Ratio: "1:4"},
		Term: &ont,
	})
	for _, want := range []string{"Selected Node", "Splitter F1Sa", "Type: SPLITTER", "Split Ratio: 1:4", "---", "ONT (Oh-En-Tee)", "Simple:", "Function:", "Example:"} {
		if !strings.Contains(md, want) {
			t.Fatalf("missing %q in:\n%s", want, md)
		}
	}
}

func TestMarkdownNodeWithoutRatioOrTerm(t *testing.T) {
	t.Parallel()
	md := detail.Markdown(tutordto.DetailOutput{
		Kind: tutordto.DetailNode,
		Node: &tutordto.NodeDetailOutput{ID: "JB19", Label: "JB-19", Type: "JB"},
	})
	if strings.Contains(md, "Split Ratio") || strings.Contains(md, "---") {
		t.Fatalf("unexpected ratio or term block:\n%s", md)
	}
}

func TestMarkdownTerm(t *testing.T) {
	t.Parallel()
	md := detail.Markdown(tutordto.DetailOutput{Kind: tutordto.DetailTerm, Term: &ont})
	if strings.Contains(md, "Selected Node") {
		t.Fatalf("term detail must not show node header:\n%s", md)
	}
	if !strings.Contains(md, "Optical Network Terminal") {
		t.Fatalf("missing full name:\n%s", md)
	}
}

func TestRenderASCIIKeepsText(t *testing.T) {
	t.Parallel()
	out := detail.Render(detail.Markdown(tutordto.DetailOutput{Kind: tutordto.DetailTerm, Term: &ont}), "ascii", 60)
	if !strings.Contains(out, "Optical Network Terminal") {
		t.Fatalf("rendered text lost content:\n%s", out)
	}
}
