package in

import (
	"context"

	glossarydto "pontutor/internal/modules/glossary/dto"
	"pontutor/internal/modules/tutor/dto"
)

// View is one open viewer. Its methods run synchronously on the caller's
// goroutine and must not be called concurrently.
type View interface {
	ID() string
	SelectNode(id string) (dto.DetailOutput, error)
	SelectTerm(key string) (dto.DetailOutput, error)
	ToggleLayer(id string) ([]dto.LayerOutput, error)
	SetQuery(query string) []glossarydto.TermOutput
	State() dto.ViewOutput
}

type Usecase interface {
	OpenView(ctx context.Context) (View, error)
	Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.ViewOutput, error)
	Print(ctx context.Context, input dto.PrintInput) (dto.PrintOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
