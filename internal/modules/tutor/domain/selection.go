package domain

import (
	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
)

// Selection is the detail currently shown by a view. It is always exactly one
// of NoSelection, NodeSelection or TermSelection; callers switch on the
// concrete type.
type Selection interface {
	isSelection()
}

type NoSelection struct{}

// NodeSelection holds a clicked node and the glossary entry for its type.
// Term is nil when the type has no entry (joint boxes, for instance).
type NodeSelection struct {
	Node topology.Node
	Term *glossary.Term
}

type TermSelection struct {
	Term glossary.Term
}

func (NoSelection) isSelection()   {}
func (NodeSelection) isSelection() {}
func (TermSelection) isSelection() {}
