package domain

import (
	"fmt"

	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
	apperrors "pontutor/internal/platform/errors"
)

// Session is the state of one open view: the live selection, the search
// query and the layer toggles. The catalog and topology it reads are shared
// and never modified.
type Session struct {
	id         string
	catalog    glossary.Catalog
	topology   topology.Topology
	selection  Selection
	query      string
	visibility Visibility
}

func NewSession(id string, cat glossary.Catalog, topo topology.Topology) *Session {
	return &Session{
		id:         id,
		catalog:    cat,
		topology:   topo,
		selection:  NoSelection{},
		visibility: NewVisibility(topo.Layers),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Selection() Selection { return s.selection }

// SelectNode replaces the selection with the node and its resolved term.
func (s *Session) SelectNode(id string) (NodeSelection, error) {
	n, ok := s.topology.NodeByID(id)
	if !ok {
		return NodeSelection{}, fmt.Errorf("node %q: %w", id, apperrors.ErrNotFound)
	}
	sel := NodeSelection{Node: n}
	if term, ok := s.catalog.Lookup(string(n.Type)); ok {
		sel.Term = &term
	}
	s.selection = sel
	return sel, nil
}

func (s *Session) SelectTerm(key string) (TermSelection, error) {
	term, ok := s.catalog.Lookup(key)
	if !ok {
		return TermSelection{}, fmt.Errorf("term %q: %w", key, apperrors.ErrNotFound)
	}
	sel := TermSelection{Term: term}
	s.selection = sel
	return sel, nil
}

func (s *Session) Query() string { return s.query }

func (s *Session) SetQuery(q string) { s.query = q }

// Terms returns the glossary filtered by the current query.
func (s *Session) Terms() []glossary.Term {
	return s.catalog.Filter(s.query)
}

func (s *Session) ToggleLayer(id topology.LayerID) (bool, error) {
	return s.visibility.Toggle(id)
}

func (s *Session) Visibility() Visibility {
	return s.visibility.Clone()
}

func (s *Session) Diagram() Diagram {
	return BuildDiagram(s.topology, s.catalog, s.visibility, s.selection)
}
