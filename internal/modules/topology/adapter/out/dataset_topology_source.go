package out

import (
	"context"

	"pontutor/internal/modules/topology/domain"
	topologyout "pontutor/internal/modules/topology/port/out"
	"pontutor/internal/platform/dataset"
)

type DatasetTopologySource struct {
	doc dataset.Document
}

func NewDatasetTopologySource(doc dataset.Document) topologyout.TopologySource {
	return &DatasetTopologySource{doc: doc}
}

func (s *DatasetTopologySource) LoadTopology(_ context.Context) (domain.Topology, error) {
	topo := domain.Topology{
		Nodes:  make([]domain.Node, 0, len(s.doc.Nodes)),
		Edges:  make([]domain.Edge, 0, len(s.doc.Edges)),
		Layers: make([]domain.Layer, 0, len(s.doc.Layers)),
	}
	for _, n := range s.doc.Nodes {
		topo.Nodes = append(topo.Nodes, domain.Node{
			ID:    n.ID,
			Type:  domain.NodeType(n.Type),
			Label: n.Label,
			X:     n.X,
			Y:     n.Y,
			Ratio: n.Ratio,
		})
	}
	for _, e := range s.doc.Edges {
		topo.Edges = append(topo.Edges, domain.Edge{From: e.From, To: e.To, Label: e.Label})
	}
	for _, l := range s.doc.Layers {
		topo.Layers = append(topo.Layers, domain.Layer{ID: domain.LayerID(l.ID), Label: l.Label, DefaultOn: l.DefaultOn})
	}
	return topo, nil
}
