package in

import (
	"context"

	"pontutor/internal/modules/topology/dto"
	topologyin "pontutor/internal/modules/topology/port/in"
)

type CLIHandler struct {
	usecase topologyin.Usecase
}

func NewCLIHandler(usecase topologyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListNodes(ctx context.Context) ([]dto.NodeOutput, error) {
	return h.usecase.ListNodes(ctx)
}

func (h CLIHandler) ListEdges(ctx context.Context) ([]dto.EdgeOutput, error) {
	return h.usecase.ListEdges(ctx)
}

func (h CLIHandler) ListLayers(ctx context.Context) ([]dto.LayerOutput, error) {
	return h.usecase.ListLayers(ctx)
}

func (h CLIHandler) GetNode(ctx context.Context, id string) (dto.NodeOutput, error) {
	return h.usecase.GetNode(ctx, id)
}
