package domain_test

import (
	"context"
	"testing"

	glossaryout "pontutor/internal/modules/glossary/adapter/out"
	"pontutor/internal/modules/glossary/domain"
	"pontutor/internal/platform/dataset"
)

func loadTerms(t *testing.T) []domain.Term {
	t.Helper()
	terms, err := glossaryout.NewDatasetTermSource(dataset.Default()).LoadTerms(context.Background())
	if err != nil {
		t.Fatalf("load terms: %v", err)
	}
	return terms
}

func keys(terms []domain.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Key
	}
	return out
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	t.Parallel()
	terms := loadTerms(t)
	for _, q := range []string{"", "   ", "\t\n"} {
		got := keys(domain.Filter(terms, q))
		want := []string{"PON", "OLT", "ONT", "SPLITTER"}
		if len(got) != len(want) {
			t.Fatalf("query %q: expected %v, got %v", q, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("query %q: expected %v, got %v", q, want, got)
			}
		}
	}
}

func TestFilterRatioMatchesOnlySplitter(t *testing.T) {
	t.Parallel()
	got := keys(domain.Filter(loadTerms(t), "1:4"))
	if len(got) != 1 || got[0] != "SPLITTER" {
		t.Fatalf("expected only SPLITTER, got %v", got)
	}
}

func TestFilterIsCaseInsensitiveAcrossFields(t *testing.T) {
	t.Parallel()
	terms := loadTerms(t)
	cases := map[string][]string{
		"passive":       {"PON", "SPLITTER"},
		"OPTICAL LINE":  {"OLT"},
		"  thachi gp  ": {"ONT"},
		"oh‑en‑tee":     {"ONT"},
		"no such thing": {},
	}
	for q, want := range cases {
		got := keys(domain.Filter(terms, q))
		if len(got) != len(want) {
			t.Fatalf("query %q: expected %v, got %v", q, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("query %q: expected %v, got %v", q, want, got)
			}
		}
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	terms := loadTerms(t)
	out := domain.Filter(terms, "")
	out[0].Display = "mutated"
	if terms[0].Display == "mutated" {
		t.Fatalf("filter result must not alias the input slice")
	}
}

func TestIndexLookup(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex(loadTerms(t))
	term, ok := idx.Lookup("SPLITTER")
	if !ok || term.Full != "Passive Optical Splitter" {
		t.Fatalf("expected splitter term, got %+v (%v)", term, ok)
	}
	if _, ok := idx.Lookup("JB"); ok {
		t.Fatalf("JB has no glossary entry")
	}
}

func TestCatalogTermsReturnsCopy(t *testing.T) {
	t.Parallel()
	cat := domain.NewCatalog(loadTerms(t))
	first := cat.Terms()
	first[0].Key = "changed"
	if cat.Terms()[0].Key != "PON" {
		t.Fatalf("catalog must not expose its backing slice")
	}
	if cat.Len() != 4 {
		t.Fatalf("expected 4 terms, got %d", cat.Len())
	}
}
