package dto

type NodeOutput struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Ratio string  `json:"ratio,omitempty"`
	Icon  string  `json:"icon"`
}

type EdgeOutput struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Label    string `json:"label"`
	Resolved bool   `json:"resolved"`
}

type LayerOutput struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	DefaultOn bool   `json:"default_on"`
}
