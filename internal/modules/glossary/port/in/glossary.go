package in

import (
	"context"

	"pontutor/internal/modules/glossary/dto"
)

type Usecase interface {
	ListTerms(ctx context.Context) ([]dto.TermOutput, error)
	Search(ctx context.Context, input dto.SearchInput) ([]dto.TermOutput, error)
	GetTerm(ctx context.Context, key string) (dto.TermOutput, error)
}
