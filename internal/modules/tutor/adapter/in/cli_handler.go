package in

import (
	"context"

	"pontutor/internal/modules/tutor/dto"
	tutorin "pontutor/internal/modules/tutor/port/in"
)

type CLIHandler struct {
	usecase tutorin.Usecase
}

func NewCLIHandler(usecase tutorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.ViewOutput, error) {
	return h.usecase.Snapshot(ctx, input)
}

func (h CLIHandler) SelectNode(ctx context.Context, id string) (dto.DetailOutput, error) {
	view, err := h.usecase.Snapshot(ctx, dto.SnapshotInput{SelectNode: id})
	if err != nil {
		return dto.DetailOutput{}, err
	}
	return view.Detail, nil
}

func (h CLIHandler) SelectTerm(ctx context.Context, key string) (dto.DetailOutput, error) {
	view, err := h.usecase.Snapshot(ctx, dto.SnapshotInput{SelectTerm: key})
	if err != nil {
		return dto.DetailOutput{}, err
	}
	return view.Detail, nil
}

func (h CLIHandler) Print(ctx context.Context, title string, view dto.ViewOutput, body string) (dto.PrintOutput, error) {
	return h.usecase.Print(ctx, dto.PrintInput{Title: title, View: view, Body: body})
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Path: path})
}
