package dto

import glossarydto "pontutor/internal/modules/glossary/dto"

const (
	DetailNone = "none"
	DetailNode = "node"
	DetailTerm = "term"
)

type LayerOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	On    bool   `json:"on"`
}

type NodeDetailOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Ratio string `json:"ratio,omitempty"`
}

// DetailOutput mirrors the live selection. Kind is one of the Detail*
// constants; Node is set for node selections, Term whenever a term is shown.
type DetailOutput struct {
	Kind string                  `json:"kind"`
	Node *NodeDetailOutput       `json:"node,omitempty"`
	Term *glossarydto.TermOutput `json:"term,omitempty"`
}

type DiagramNodeOutput struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Label      string  `json:"label"`
	Caption    string  `json:"caption"`
	Icon       string  `json:"icon"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Dimmed     bool    `json:"dimmed"`
	Selected   bool    `json:"selected"`
	Annotation string  `json:"annotation,omitempty"`
}

type DiagramEdgeOutput struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Label     string `json:"label"`
	ShowLabel bool   `json:"show_label"`
}

type DiagramOutput struct {
	Nodes []DiagramNodeOutput `json:"nodes"`
	Edges []DiagramEdgeOutput `json:"edges"`
}

type ViewOutput struct {
	SessionID string                   `json:"session_id"`
	Query     string                   `json:"query"`
	Layers    []LayerOutput            `json:"layers"`
	Terms     []glossarydto.TermOutput `json:"terms"`
	Diagram   DiagramOutput            `json:"diagram"`
	Detail    DetailOutput             `json:"detail"`
}

// SnapshotInput describes a one-shot view: layers to switch off, at most one
// of SelectNode/SelectTerm, and a search query.
type SnapshotInput struct {
	Hide       []string
	SelectNode string
	SelectTerm string
	Query      string
}

type PrintInput struct {
	Title string
	View  ViewOutput
	// Body is the rendered plain-text page.
	Body string
}

type PrintOutput struct {
	Path    string `json:"path"`
	Printed bool   `json:"printed"`
	Command string `json:"command,omitempty"`
}

type ExportInput struct {
	Path string
}

type ExportOutput struct {
	Path     string `json:"path"`
	Terms    int    `json:"terms"`
	Nodes    int    `json:"nodes"`
	Segments int    `json:"segments"`
}
