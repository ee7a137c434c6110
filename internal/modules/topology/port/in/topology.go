package in

import (
	"context"

	"pontutor/internal/modules/topology/dto"
)

type Usecase interface {
	ListNodes(ctx context.Context) ([]dto.NodeOutput, error)
	GetNode(ctx context.Context, id string) (dto.NodeOutput, error)
	ListEdges(ctx context.Context) ([]dto.EdgeOutput, error)
	ListLayers(ctx context.Context) ([]dto.LayerOutput, error)
}
