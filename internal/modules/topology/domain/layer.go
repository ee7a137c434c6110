package domain

type LayerID string

const (
	// LayerOFC controls edge (segment) labels.
	LayerOFC LayerID = "OFC"
	// LayerAnnot controls inline helper annotations such as split ratios.
	LayerAnnot LayerID = "ANNOT"
)

type Layer struct {
	ID        LayerID
	Label     string
	DefaultOn bool
}

// LayerForType returns the layer that dims nodes of type t. Node types and
// layer ids share a namespace.
func LayerForType(t NodeType) LayerID {
	return LayerID(t)
}
