package domain

type NodeType string

const (
	NodeTypeOLT      NodeType = "OLT"
	NodeTypeSplitter NodeType = "SPLITTER"
	NodeTypeJB       NodeType = "JB"
	NodeTypeONT      NodeType = "ONT"
)

// Icon identifies the glyph a node is drawn with.
type Icon string

const (
	IconServer Icon = "server"
	IconBranch Icon = "branch"
	IconBoxes  Icon = "boxes"
	IconHome   Icon = "home"
	IconInfo   Icon = "info"
)

// IconFor maps every node type to an icon. Unknown types get IconInfo.
func IconFor(t NodeType) Icon {
	switch t {
	case NodeTypeOLT:
		return IconServer
	case NodeTypeSplitter:
		return IconBranch
	case NodeTypeJB:
		return IconBoxes
	case NodeTypeONT:
		return IconHome
	default:
		return IconInfo
	}
}

// Node is a diagram vertex. X and Y are layout coordinates in the dataset's
// pixel space; Ratio is only meaningful for splitters.
type Node struct {
	ID    string
	Type  NodeType
	Label string
	X     float64
	Y     float64
	Ratio string
}

func (n Node) HasRatio() bool {
	return n.Type == NodeTypeSplitter && n.Ratio != ""
}

type Edge struct {
	From  string
	To    string
	Label string
}

// Link is an edge whose endpoints both resolved.
type Link struct {
	From  Node
	To    Node
	Label string
}

type Topology struct {
	Nodes  []Node
	Edges  []Edge
	Layers []Layer
}

func (t Topology) NodeByID(id string) (Node, bool) {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Links resolves edges against the node set, in edge order. Edges with an
// unknown endpoint are skipped.
func (t Topology) Links() []Link {
	byID := make(map[string]Node, len(t.Nodes))
	for _, n := range t.Nodes {
		byID[n.ID] = n
	}
	out := make([]Link, 0, len(t.Edges))
	for _, e := range t.Edges {
		from, ok := byID[e.From]
		if !ok {
			continue
		}
		to, ok := byID[e.To]
		if !ok {
			continue
		}
		out = append(out, Link{From: from, To: to, Label: e.Label})
	}
	return out
}
