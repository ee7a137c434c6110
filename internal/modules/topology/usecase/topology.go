package usecase

import (
	"context"

	"pontutor/internal/modules/topology/domain"
	"pontutor/internal/modules/topology/dto"
	topologyin "pontutor/internal/modules/topology/port/in"
	"pontutor/internal/modules/topology/service"
)

type Interactor struct {
	svc *service.TopologyService
}

func NewInteractor(svc *service.TopologyService) topologyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListNodes(ctx context.Context) ([]dto.NodeOutput, error) {
	topo, err := i.svc.Topology(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NodeOutput, 0, len(topo.Nodes))
	for _, n := range topo.Nodes {
		out = append(out, mapNode(n))
	}
	return out, nil
}

func (i *Interactor) GetNode(ctx context.Context, id string) (dto.NodeOutput, error) {
	n, err := i.svc.Node(ctx, id)
	if err != nil {
		return dto.NodeOutput{}, err
	}
	return mapNode(n), nil
}

func (i *Interactor) ListEdges(ctx context.Context) ([]dto.EdgeOutput, error) {
	topo, err := i.svc.Topology(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EdgeOutput, 0, len(topo.Edges))
	for _, e := range topo.Edges {
		_, fromOK := topo.NodeByID(e.From)
		_, toOK := topo.NodeByID(e.To)
		out = append(out, dto.EdgeOutput{
			From:     e.From,
			To:       e.To,
			Label:    e.Label,
			Resolved: fromOK && toOK,
		})
	}
	return out, nil
}

func (i *Interactor) ListLayers(ctx context.Context) ([]dto.LayerOutput, error) {
	topo, err := i.svc.Topology(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LayerOutput, 0, len(topo.Layers))
	for _, l := range topo.Layers {
		out = append(out, dto.LayerOutput{ID: string(l.ID), Label: l.Label, DefaultOn: l.DefaultOn})
	}
	return out, nil
}

func mapNode(n domain.Node) dto.NodeOutput {
	return dto.NodeOutput{
		ID:    n.ID,
		Type:  string(n.Type),
		Label: n.Label,
		X:     n.X,
		Y:     n.Y,
		Ratio: n.Ratio,
		Icon:  string(domain.IconFor(n.Type)),
	}
}
