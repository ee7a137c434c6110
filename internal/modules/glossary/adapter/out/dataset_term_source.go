package out

import (
	"context"

	"pontutor/internal/modules/glossary/domain"
	glossaryout "pontutor/internal/modules/glossary/port/out"
	"pontutor/internal/platform/dataset"
)

type DatasetTermSource struct {
	doc dataset.Document
}

func NewDatasetTermSource(doc dataset.Document) glossaryout.TermSource {
	return &DatasetTermSource{doc: doc}
}

func (s *DatasetTermSource) LoadTerms(_ context.Context) ([]domain.Term, error) {
	terms := make([]domain.Term, 0, len(s.doc.Terms))
	for _, t := range s.doc.Terms {
		terms = append(terms, domain.Term{
			Key:      t.Key,
			Display:  t.Display,
			ReadAs:   t.ReadAs,
			Full:     t.Full,
			Simple:   t.Simple,
			Function: t.Function,
			Example:  t.Example,
		})
	}
	return terms, nil
}
