package domain

import (
	"fmt"

	topology "pontutor/internal/modules/topology/domain"
	apperrors "pontutor/internal/platform/errors"
)

type LayerState struct {
	Layer topology.Layer
	On    bool
}

// Visibility is the per-layer on/off state of one view.
type Visibility struct {
	layers []topology.Layer
	on     map[topology.LayerID]bool
}

func NewVisibility(layers []topology.Layer) Visibility {
	v := Visibility{
		layers: make([]topology.Layer, len(layers)),
		on:     make(map[topology.LayerID]bool, len(layers)),
	}
	copy(v.layers, layers)
	for _, l := range layers {
		v.on[l.ID] = l.DefaultOn
	}
	return v
}

// IsOn reports the state of a layer. Unknown layers are off.
func (v Visibility) IsOn(id topology.LayerID) bool {
	return v.on[id]
}

// ShowsType reports whether nodes of type t are drawn at full strength. A type
// without a layer of its own is never dimmed.
func (v Visibility) ShowsType(t topology.NodeType) bool {
	on, known := v.on[topology.LayerForType(t)]
	return !known || on
}

// Toggle flips one layer and returns its new state.
func (v *Visibility) Toggle(id topology.LayerID) (bool, error) {
	on, known := v.on[id]
	if !known {
		return false, fmt.Errorf("layer %q: %w", id, apperrors.ErrNotFound)
	}
	v.on[id] = !on
	return !on, nil
}

// States lists every layer in dataset order with its current state.
func (v Visibility) States() []LayerState {
	out := make([]LayerState, 0, len(v.layers))
	for _, l := range v.layers {
		out = append(out, LayerState{Layer: l, On: v.on[l.ID]})
	}
	return out
}

func (v Visibility) Clone() Visibility {
	c := Visibility{
		layers: v.layers,
		on:     make(map[topology.LayerID]bool, len(v.on)),
	}
	for k, on := range v.on {
		c.on[k] = on
	}
	return c
}
