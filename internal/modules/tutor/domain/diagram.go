package domain

import (
	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
)

type DiagramNode struct {
	Node topology.Node
	Icon topology.Icon
	// Caption is the glossary full name for the node type, or the raw type.
	Caption string
	// Dimmed nodes keep their place and stay selectable.
	Dimmed     bool
	Annotation string
	Selected   bool
}

type DiagramEdge struct {
	Link      topology.Link
	ShowLabel bool
}

type Diagram struct {
	Nodes []DiagramNode
	Edges []DiagramEdge
}

// BuildDiagram decides what each node and edge looks like for the given
// layer state and selection. Coordinates are left to the painter.
func BuildDiagram(topo topology.Topology, cat glossary.Catalog, vis Visibility, sel Selection) Diagram {
	selectedID := ""
	if ns, ok := sel.(NodeSelection); ok {
		selectedID = ns.Node.ID
	}

	d := Diagram{Nodes: make([]DiagramNode, 0, len(topo.Nodes))}
	for _, n := range topo.Nodes {
		dn := DiagramNode{
			Node:     n,
			Icon:     topology.IconFor(n.Type),
			Caption:  captionFor(cat, n.Type),
			Dimmed:   !vis.ShowsType(n.Type),
			Selected: n.ID == selectedID,
		}
		if n.HasRatio() && vis.IsOn(topology.LayerAnnot) {
			dn.Annotation = "Ratio: " + n.Ratio
		}
		d.Nodes = append(d.Nodes, dn)
	}

	showLabels := vis.IsOn(topology.LayerOFC)
	links := topo.Links()
	d.Edges = make([]DiagramEdge, 0, len(links))
	for _, l := range links {
		d.Edges = append(d.Edges, DiagramEdge{Link: l, ShowLabel: showLabels})
	}
	return d
}

func captionFor(cat glossary.Catalog, t topology.NodeType) string {
	if term, ok := cat.Lookup(string(t)); ok && term.Full != "" {
		return term.Full
	}
	return string(t)
}
