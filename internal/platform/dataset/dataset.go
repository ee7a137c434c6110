// Package dataset holds the glossary and topology records the viewer ships
// with. The default document is compiled into the binary; an alternative
// document of the same shape can be loaded from disk.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "pontutor/internal/platform/errors"
)

//go:embed bharatnet.yaml
var embedded []byte

type Term struct {
	Key      string `yaml:"key" validate:"required"`
	Display  string `yaml:"display" validate:"required"`
	ReadAs   string `yaml:"readAs"`
	Full     string `yaml:"full" validate:"required"`
	Simple   string `yaml:"simple"`
	Function string `yaml:"function"`
	Example  string `yaml:"example"`
}

type Node struct {
	ID    string  `yaml:"id" validate:"required"`
	Type  string  `yaml:"type" validate:"required"`
	Label string  `yaml:"label" validate:"required"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Ratio string  `yaml:"ratio,omitempty"`
}

// Edge endpoints are not checked here; unresolved edges are dropped when the
// diagram is laid out.
type Edge struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

type Layer struct {
	ID        string `yaml:"id" validate:"required"`
	Label     string `yaml:"label" validate:"required"`
	DefaultOn bool   `yaml:"defaultOn"`
}

type Document struct {
	Terms  []Term  `yaml:"terms" validate:"dive"`
	Nodes  []Node  `yaml:"nodes" validate:"dive"`
	Edges  []Edge  `yaml:"edges"`
	Layers []Layer `yaml:"layers" validate:"dive"`
}

var validate = validator.New()

// Default returns the compiled-in BharatNet walkthrough.
func Default() Document {
	doc, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return doc
}

// Load reads the document at path, or the embedded one when path is empty.
func Load(path string) (Document, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read dataset: %w", err)
	}
	doc, err := Parse(b)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func Parse(raw []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: decode: %v", apperrors.ErrInvalidDataset, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (d Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidDataset, err)
	}
	if err := unique("term key", len(d.Terms), func(i int) string { return d.Terms[i].Key }); err != nil {
		return err
	}
	if err := unique("node id", len(d.Nodes), func(i int) string { return d.Nodes[i].ID }); err != nil {
		return err
	}
	return unique("layer id", len(d.Layers), func(i int) string { return d.Layers[i].ID })
}

func unique(what string, n int, key func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: duplicate %s %q", apperrors.ErrInvalidDataset, what, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
