package domain_test

import (
	"testing"

	"pontutor/internal/modules/topology/domain"
)

func TestIconForIsTotal(t *testing.T) {
	t.Parallel()
	cases := map[domain.NodeType]domain.Icon{
		domain.NodeTypeOLT:      domain.IconServer,
		domain.NodeTypeSplitter: domain.IconBranch,
		domain.NodeTypeJB:       domain.IconBoxes,
		domain.NodeTypeONT:      domain.IconHome,
		"FPOI":                  domain.IconInfo,
		"":                      domain.IconInfo,
	}
	for typ, want := range cases {
		if got := domain.IconFor(typ); got != want {
			t.Fatalf("IconFor(%q) = %s, want %s", typ, got, want)
		}
	}
}

func TestLinksSkipDanglingEdges(t *testing.T) {
	t.Parallel()
	topo := domain.Topology{
		Nodes: []domain.Node{{ID: "A"}, {ID: "B"}},
		Edges: []domain.Edge{
			{From: "A", To: "B", Label: "ok"},
			{From: "A", To: "GHOST", Label: "missing to"},
			{From: "GHOST", To: "B", Label: "missing from"},
			{From: "B", To: "A", Label: "back"},
		},
	}
	links := topo.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 resolved links, got %d", len(links))
	}
	if links[0].Label != "ok" || links[1].Label != "back" {
		t.Fatalf("links out of order: %+v", links)
	}
	if links[1].From.ID != "B" || links[1].To.ID != "A" {
		t.Fatalf("unexpected endpoints: %+v", links[1])
	}
}

func TestHasRatioOnlyForSplitters(t *testing.T) {
	t.Parallel()
	if !(domain.Node{Type: domain.NodeTypeSplitter, Ratio: "1:4"}).HasRatio() {
		t.Fatalf("splitter with ratio should report it")
	}
	if (domain.Node{Type: domain.NodeTypeSplitter}).HasRatio() {
		t.Fatalf("splitter without ratio should not")
	}
	if (domain.Node{Type: domain.NodeTypeONT, Ratio: "1:2"}).HasRatio() {
		t.Fatalf("ratio on a non-splitter is ignored")
	}
}

func TestNodeByID(t *testing.T) {
	t.Parallel()
	topo := domain.Topology{Nodes: []domain.Node{{ID: "OLT1", Label: "THUNAG OLT"}}}
	if n, ok := topo.NodeByID("OLT1"); !ok || n.Label != "THUNAG OLT" {
		t.Fatalf("expected OLT1, got %+v (%v)", n, ok)
	}
	if _, ok := topo.NodeByID("nope"); ok {
		t.Fatalf("unknown id must not resolve")
	}
}
