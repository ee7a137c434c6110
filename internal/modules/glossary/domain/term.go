package domain

import "strings"

// Term is one glossary entry. Key joins against a node's type.
type Term struct {
	Key      string
	Display  string
	ReadAs   string
	Full     string
	Simple   string
	Function string
	Example  string
}

func (t Term) searchText() string {
	return strings.ToLower(strings.Join([]string{
		t.Display, t.Full, t.Simple, t.Function, t.Example, t.ReadAs,
	}, " "))
}

// Matches reports whether the trimmed, case-folded query occurs anywhere in
// the term's display, full, simple, function, example or readAs text. An
// empty query matches everything.
func (t Term) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(t.searchText(), q)
}

// Filter returns the terms matching query, preserving input order. The result
// never aliases terms.
func Filter(terms []Term, query string) []Term {
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out
}

// Index maps Term.Key to Term.
type Index map[string]Term

func NewIndex(terms []Term) Index {
	idx := make(Index, len(terms))
	for _, t := range terms {
		idx[t.Key] = t
	}
	return idx
}

func (i Index) Lookup(key string) (Term, bool) {
	t, ok := i[key]
	return t, ok
}
