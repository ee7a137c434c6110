package in

import (
	"context"

	"pontutor/internal/modules/glossary/dto"
	glossaryin "pontutor/internal/modules/glossary/port/in"
)

type CLIHandler struct {
	usecase glossaryin.Usecase
}

func NewCLIHandler(usecase glossaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, query string) ([]dto.TermOutput, error) {
	return h.usecase.Search(ctx, dto.SearchInput{Query: query})
}

func (h CLIHandler) GetTerm(ctx context.Context, key string) (dto.TermOutput, error) {
	return h.usecase.GetTerm(ctx, key)
}
