package markdown_test

import (
	"strings"
	"testing"

	"pontutor/internal/platform/markdown"
)

type snapshotMeta struct {
	Title  string   `yaml:"title"`
	Layers []string `yaml:"layers"`
}

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Render(snapshotMeta{Title: "PON", Layers: []string{"OFC", "ANNOT"}}, "# Diagram\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(doc, "---\ntitle: PON\n") {
		t.Fatalf("unexpected front matter:\n%s", doc)
	}
	var meta snapshotMeta
	body, err := markdown.Split(doc, &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Title != "PON" || len(meta.Layers) != 2 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if strings.TrimSpace(body) != "# Diagram" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSplitWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	var meta snapshotMeta
	body, err := markdown.Split("plain body", &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if body != "plain body" || meta.Title != "" {
		t.Fatalf("unexpected split result %q %+v", body, meta)
	}
}

func TestSplitRejectsUnterminated(t *testing.T) {
	t.Parallel()
	var meta snapshotMeta
	if _, err := markdown.Split("---\ntitle: x\n", &meta); err == nil {
		t.Fatalf("expected missing separator error")
	}
}
