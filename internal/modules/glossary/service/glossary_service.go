package service

import (
	"context"
	"fmt"
	"sync"

	"pontutor/internal/modules/glossary/domain"
	glossaryout "pontutor/internal/modules/glossary/port/out"
	apperrors "pontutor/internal/platform/errors"
)

// GlossaryService loads the term list once and serves it from an immutable
// catalog afterwards.
type GlossaryService struct {
	source glossaryout.TermSource

	once    sync.Once
	catalog domain.Catalog
	err     error
}

func NewGlossaryService(source glossaryout.TermSource) *GlossaryService {
	return &GlossaryService{source: source}
}

func (s *GlossaryService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.once.Do(func() {
		terms, err := s.source.LoadTerms(ctx)
		if err != nil {
			s.err = fmt.Errorf("load terms: %w", err)
			return
		}
		s.catalog = domain.NewCatalog(terms)
	})
	return s.catalog, s.err
}

func (s *GlossaryService) Search(ctx context.Context, query string) ([]domain.Term, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Filter(query), nil
}

func (s *GlossaryService) Get(ctx context.Context, key string) (domain.Term, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return domain.Term{}, err
	}
	term, ok := cat.Lookup(key)
	if !ok {
		return domain.Term{}, fmt.Errorf("term %q: %w", key, apperrors.ErrNotFound)
	}
	return term, nil
}
