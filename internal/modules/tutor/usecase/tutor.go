package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	glossary "pontutor/internal/modules/glossary/domain"
	glossarydto "pontutor/internal/modules/glossary/dto"
	topology "pontutor/internal/modules/topology/domain"
	"pontutor/internal/modules/tutor/domain"
	"pontutor/internal/modules/tutor/dto"
	tutorin "pontutor/internal/modules/tutor/port/in"
	"pontutor/internal/modules/tutor/service"
	apperrors "pontutor/internal/platform/errors"
)

type Interactor struct {
	svc *service.TutorService
}

func NewInteractor(svc *service.TutorService) tutorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) OpenView(ctx context.Context) (tutorin.View, error) {
	session, err := i.svc.Open(ctx)
	if err != nil {
		return nil, err
	}
	return &view{session: session, logger: i.svc.Logger().With("session", session.ID())}, nil
}

func (i *Interactor) Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.ViewOutput, error) {
	if input.SelectNode != "" && input.SelectTerm != "" {
		return dto.ViewOutput{}, fmt.Errorf("select a node or a term, not both: %w", apperrors.ErrInvalidInput)
	}
	v, err := i.OpenView(ctx)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	for _, id := range input.Hide {
		if _, err := v.ToggleLayer(id); err != nil {
			return dto.ViewOutput{}, err
		}
	}
	if input.SelectNode != "" {
		if _, err := v.SelectNode(input.SelectNode); err != nil {
			return dto.ViewOutput{}, err
		}
	}
	if input.SelectTerm != "" {
		if _, err := v.SelectTerm(input.SelectTerm); err != nil {
			return dto.ViewOutput{}, err
		}
	}
	v.SetQuery(input.Query)
	return v.State(), nil
}

func (i *Interactor) Print(ctx context.Context, input dto.PrintInput) (dto.PrintOutput, error) {
	layersOn := make([]string, 0, len(input.View.Layers))
	for _, l := range input.View.Layers {
		if l.On {
			layersOn = append(layersOn, l.ID)
		}
	}
	res, err := i.svc.Print(ctx, service.PrintJob{
		Title:     input.Title,
		SessionID: input.View.SessionID,
		Selection: describeDetail(input.View.Detail),
		Query:     input.View.Query,
		LayersOn:  layersOn,
		Body:      input.Body,
	})
	out := dto.PrintOutput{Path: res.Path, Printed: err == nil && res.Command != "", Command: res.Command}
	return out, err
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	path := strings.TrimSpace(input.Path)
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return dto.ExportOutput{}, fmt.Errorf("export path %q must end in .xlsx: %w", input.Path, apperrors.ErrInvalidInput)
	}
	h, err := i.svc.Export(ctx, path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Terms: len(h.Terms), Nodes: len(h.Nodes), Segments: len(h.Segments)}, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

type view struct {
	session *domain.Session
	logger  hclog.Logger
}

func (v *view) ID() string { return v.session.ID() }

func (v *view) SelectNode(id string) (dto.DetailOutput, error) {
	sel, err := v.session.SelectNode(id)
	if err != nil {
		return dto.DetailOutput{}, err
	}
	v.logger.Debug("node selected", "node", id, "has_term", sel.Term != nil)
	return mapDetail(sel), nil
}

func (v *view) SelectTerm(key string) (dto.DetailOutput, error) {
	sel, err := v.session.SelectTerm(key)
	if err != nil {
		return dto.DetailOutput{}, err
	}
	v.logger.Debug("term selected", "term", key)
	return mapDetail(sel), nil
}

func (v *view) ToggleLayer(id string) ([]dto.LayerOutput, error) {
	on, err := v.session.ToggleLayer(topology.LayerID(id))
	if err != nil {
		return nil, err
	}
	v.logger.Debug("layer toggled", "layer", id, "on", on)
	return mapLayers(v.session.Visibility()), nil
}

func (v *view) SetQuery(query string) []glossarydto.TermOutput {
	v.session.SetQuery(query)
	return mapTerms(v.session.Terms())
}

func (v *view) State() dto.ViewOutput {
	return dto.ViewOutput{
		SessionID: v.session.ID(),
		Query:     v.session.Query(),
		Layers:    mapLayers(v.session.Visibility()),
		Terms:     mapTerms(v.session.Terms()),
		Diagram:   mapDiagram(v.session.Diagram()),
		Detail:    mapDetail(v.session.Selection()),
	}
}

// ─── mapping ─────────────────────────────────────────────────────────────────

func mapDetail(sel domain.Selection) dto.DetailOutput {
	switch s := sel.(type) {
	case domain.NodeSelection:
		out := dto.DetailOutput{
			Kind: dto.DetailNode,
			Node: &dto.NodeDetailOutput{
				ID:    s.Node.ID,
				Label: s.Node.Label,
				Type:  string(s.Node.Type),
				Ratio: s.Node.Ratio,
			},
		}
		if s.Term != nil {
			t := mapTerm(*s.Term)
			out.Term = &t
		}
		return out
	case domain.TermSelection:
		t := mapTerm(s.Term)
		return dto.DetailOutput{Kind: dto.DetailTerm, Term: &t}
	default:
		return dto.DetailOutput{Kind: dto.DetailNone}
	}
}

func describeDetail(d dto.DetailOutput) string {
	switch {
	case d.Kind == dto.DetailNode && d.Node != nil:
		return "node:" + d.Node.ID
	case d.Kind == dto.DetailTerm && d.Term != nil:
		return "term:" + d.Term.Key
	default:
		return dto.DetailNone
	}
}

func mapTerm(t glossary.Term) glossarydto.TermOutput {
	return glossarydto.TermOutput{
		Key:      t.Key,
		Display:  t.Display,
		ReadAs:   t.ReadAs,
		Full:     t.Full,
		Simple:   t.Simple,
		Function: t.Function,
		Example:  t.Example,
	}
}

func mapTerms(terms []glossary.Term) []glossarydto.TermOutput {
	out := make([]glossarydto.TermOutput, 0, len(terms))
	for _, t := range terms {
		out = append(out, mapTerm(t))
	}
	return out
}

func mapLayers(v domain.Visibility) []dto.LayerOutput {
	states := v.States()
	out := make([]dto.LayerOutput, 0, len(states))
	for _, s := range states {
		out = append(out, dto.LayerOutput{ID: string(s.Layer.ID), Label: s.Layer.Label, On: s.On})
	}
	return out
}

func mapDiagram(d domain.Diagram) dto.DiagramOutput {
	out := dto.DiagramOutput{
		Nodes: make([]dto.DiagramNodeOutput, 0, len(d.Nodes)),
		Edges: make([]dto.DiagramEdgeOutput, 0, len(d.Edges)),
	}
	for _, n := range d.Nodes {
		out.Nodes = append(out.Nodes, dto.DiagramNodeOutput{
			ID:         n.Node.ID,
			Type:       string(n.Node.Type),
			Label:      n.Node.Label,
			Caption:    n.Caption,
			Icon:       string(n.Icon),
			X:          n.Node.X,
			Y:          n.Node.Y,
			Dimmed:     n.Dimmed,
			Selected:   n.Selected,
			Annotation: n.Annotation,
		})
	}
	for _, e := range d.Edges {
		out.Edges = append(out.Edges, dto.DiagramEdgeOutput{
			From:      e.Link.From.ID,
			To:        e.Link.To.ID,
			Label:     e.Link.Label,
			ShowLabel: e.ShowLabel,
		})
	}
	return out
}
