package canvas_test

import (
	"strings"
	"testing"

	"pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/canvas"
)

func chain(showLabel bool) dto.DiagramOutput {
	return dto.DiagramOutput{
		Nodes: []dto.DiagramNodeOutput{
			{ID: "A", Type: "OLT", Label: "Head end", Caption: "Optical Line Terminal", Icon: "server", X: 60, Y: 60},
			{ID: "B", Type: "SPLITTER", Label: "Splitter", Caption: "Passive Optical Splitter", Icon: "branch", X: 260, Y: 60, Annotation: "Ratio: 1:4"},
		},
		Edges: []dto.DiagramEdgeOutput{
			{From: "A", To: "B", Label: "4F / 6.18KM", ShowLabel: showLabel},
		},
	}
}

func TestPaintStacksChainTopDown(t *testing.T) {
	t.Parallel()
	c := canvas.Paint(chain(true), "")
	lines := strings.Split(c.Plain(), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 rows, got %d:\n%s", len(lines), c.Plain())
	}
	if !strings.Contains(lines[1], "Head end") {
		t.Fatalf("expected source label on row 1, got %q", lines[1])
	}
	if !strings.Contains(lines[6], "│ 4F / 6.18KM") {
		t.Fatalf("expected edge label beside the line, got %q", lines[6])
	}
	if !strings.HasSuffix(lines[7], "▼") {
		t.Fatalf("expected arrow into target, got %q", lines[7])
	}
	if !strings.Contains(c.Plain(), "Ratio: 1:4") {
		t.Fatalf("expected annotation in target box")
	}
}

func TestPaintHidesEdgeLabel(t *testing.T) {
	t.Parallel()
	c := canvas.Paint(chain(false), "")
	if strings.Contains(c.Plain(), "4F / 6.18KM") {
		t.Fatalf("label painted while hidden:\n%s", c.Plain())
	}
	if !strings.Contains(c.Plain(), "│") {
		t.Fatalf("edge line missing:\n%s", c.Plain())
	}
}

func TestPaintSkipsDanglingEdge(t *testing.T) {
	t.Parallel()
	d := chain(true)
	d.Edges = append(d.Edges, dto.DiagramEdgeOutput{From: "B", To: "GHOST", Label: "nowhere", ShowLabel: true})
	c := canvas.Paint(d, "")
	if strings.Contains(c.Plain(), "nowhere") {
		t.Fatalf("dangling edge painted:\n%s", c.Plain())
	}
}

func TestNodeAtHitsDimmedBoxes(t *testing.T) {
	t.Parallel()
	d := chain(true)
	d.Nodes[1].Dimmed = true
	c := canvas.Paint(d, "")

	if id, ok := c.NodeAt(1, 5); !ok || id != "A" {
		t.Fatalf("expected A, got %q %v", id, ok)
	}
	if id, ok := c.NodeAt(9, 5); !ok || id != "B" {
		t.Fatalf("expected dimmed B to stay clickable, got %q %v", id, ok)
	}
	if _, ok := c.NodeAt(5, 14); ok {
		t.Fatalf("edge cell reported as node")
	}
	b, ok := c.BoxOf("B")
	if !ok || b.Top != 8 || b.Left != 0 || b.Height != 5 {
		t.Fatalf("unexpected box %+v", b)
	}
}

func TestWindowKeepsRequestedSize(t *testing.T) {
	t.Parallel()
	c := canvas.Paint(chain(true), "A")
	out := c.Window(-2, -3, 20, 50)
	if got := len(strings.Split(out, "\n")); got != 20 {
		t.Fatalf("expected 20 rows, got %d", got)
	}
}

func TestFocusedBoxUsesDoubleBorder(t *testing.T) {
	t.Parallel()
	c := canvas.Paint(chain(true), "B")
	plain := c.Plain()
	if !strings.Contains(plain, "╔") || !strings.Contains(plain, "╭") {
		t.Fatalf("expected one focused and one plain box:\n%s", plain)
	}
}

func TestLongLabelIsTruncated(t *testing.T) {
	t.Parallel()
	d := chain(true)
	d.Nodes[0].Label = strings.Repeat("x", 60)
	c := canvas.Paint(d, "")
	if !strings.Contains(c.Plain(), "…") {
		t.Fatalf("expected ellipsis:\n%s", c.Plain())
	}
	if w, _ := c.Size(); w != canvas.BoxWidth {
		t.Fatalf("expected width %d, got %d", canvas.BoxWidth, w)
	}
}

func TestEmptyDiagram(t *testing.T) {
	t.Parallel()
	c := canvas.Paint(dto.DiagramOutput{}, "")
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Fatalf("expected empty canvas, got %dx%d", w, h)
	}
	if _, ok := c.NodeAt(0, 0); ok {
		t.Fatalf("empty canvas hit a node")
	}
}
