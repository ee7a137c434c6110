package out

import (
	"context"

	"pontutor/internal/modules/glossary/domain"
)

type TermSource interface {
	LoadTerms(ctx context.Context) ([]domain.Term, error)
}
