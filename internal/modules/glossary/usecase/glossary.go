package usecase

import (
	"context"

	"pontutor/internal/modules/glossary/domain"
	"pontutor/internal/modules/glossary/dto"
	glossaryin "pontutor/internal/modules/glossary/port/in"
	"pontutor/internal/modules/glossary/service"
)

type Interactor struct {
	svc *service.GlossaryService
}

func NewInteractor(svc *service.GlossaryService) glossaryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListTerms(ctx context.Context) ([]dto.TermOutput, error) {
	return i.Search(ctx, dto.SearchInput{})
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.TermOutput, error) {
	terms, err := i.svc.Search(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return mapTerms(terms), nil
}

func (i *Interactor) GetTerm(ctx context.Context, key string) (dto.TermOutput, error) {
	term, err := i.svc.Get(ctx, key)
	if err != nil {
		return dto.TermOutput{}, err
	}
	return mapTerm(term), nil
}

func mapTerm(t domain.Term) dto.TermOutput {
	return dto.TermOutput{
		Key:      t.Key,
		Display:  t.Display,
		ReadAs:   t.ReadAs,
		Full:     t.Full,
		Simple:   t.Simple,
		Function: t.Function,
		Example:  t.Example,
	}
}

func mapTerms(terms []domain.Term) []dto.TermOutput {
	out := make([]dto.TermOutput, 0, len(terms))
	for _, t := range terms {
		out = append(out, mapTerm(t))
	}
	return out
}
