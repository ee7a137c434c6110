package domain

import (
	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
)

// Handout is the printable study sheet: every term, every node with its
// caption and every resolved segment, independent of any view state.
type Handout struct {
	Terms    []glossary.Term
	Nodes    []HandoutNode
	Segments []topology.Link
}

type HandoutNode struct {
	Node    topology.Node
	Caption string
}

func BuildHandout(cat glossary.Catalog, topo topology.Topology) Handout {
	h := Handout{
		Terms: cat.Terms(),
		Nodes: make([]HandoutNode, 0, len(topo.Nodes)),
	}
	for _, n := range topo.Nodes {
		h.Nodes = append(h.Nodes, HandoutNode{Node: n, Caption: captionFor(cat, n.Type)})
	}
	h.Segments = topo.Links()
	return h
}
