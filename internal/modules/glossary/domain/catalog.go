package domain

// Catalog is the ordered term list together with its key index. It is built
// once and only read afterwards, so it can be shared between views.
type Catalog struct {
	terms []Term
	index Index
}

func NewCatalog(terms []Term) Catalog {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return Catalog{terms: cp, index: NewIndex(cp)}
}

// Terms returns a copy of the terms in dataset order.
func (c Catalog) Terms() []Term {
	out := make([]Term, len(c.terms))
	copy(out, c.terms)
	return out
}

func (c Catalog) Len() int { return len(c.terms) }

func (c Catalog) Lookup(key string) (Term, bool) {
	return c.index.Lookup(key)
}

func (c Catalog) Filter(query string) []Term {
	return Filter(c.terms, query)
}
