package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"pontutor/internal/modules/tutor/domain"
	tutorout "pontutor/internal/modules/tutor/port/out"
	"pontutor/internal/platform/clock"
	"pontutor/internal/platform/id"
	"pontutor/internal/platform/markdown"
	"pontutor/internal/platform/slug"
)

type TutorService struct {
	glossary tutorout.GlossaryReader
	topology tutorout.TopologyReader
	store    tutorout.SnapshotStore
	launcher tutorout.PrintLauncher
	handouts tutorout.HandoutWriter
	clock    clock.Clock
	ids      id.Generator
	logger   hclog.Logger
}

func NewTutorService(
	glossary tutorout.GlossaryReader,
	topology tutorout.TopologyReader,
	store tutorout.SnapshotStore,
	launcher tutorout.PrintLauncher,
	handouts tutorout.HandoutWriter,
	clk clock.Clock,
	ids id.Generator,
	logger hclog.Logger,
) *TutorService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &TutorService{
		glossary: glossary,
		topology: topology,
		store:    store,
		launcher: launcher,
		handouts: handouts,
		clock:    clk,
		ids:      ids,
		logger:   logger,
	}
}

func (s *TutorService) Logger() hclog.Logger { return s.logger }

// Open starts a fresh view session over the shared datasets.
func (s *TutorService) Open(ctx context.Context) (*domain.Session, error) {
	cat, err := s.glossary.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	topo, err := s.topology.Topology(ctx)
	if err != nil {
		return nil, err
	}
	session := domain.NewSession(s.ids.New(), cat, topo)
	s.logger.Debug("view opened", "session", session.ID(), "terms", cat.Len(), "nodes", len(topo.Nodes))
	return session, nil
}

type snapshotMeta struct {
	Title     string    `yaml:"title"`
	Session   string    `yaml:"session"`
	PrintedAt time.Time `yaml:"printed_at"`
	Selection string    `yaml:"selection"`
	Query     string    `yaml:"query,omitempty"`
	LayersOn  []string  `yaml:"layers_on"`
}

type PrintJob struct {
	Title     string
	SessionID string
	Selection string
	Query     string
	LayersOn  []string
	Body      string
}

type PrintResult struct {
	Path    string
	Command string
}

// Print writes the page as Markdown with YAML front matter and passes the file
// to the launcher. The path is returned even when the launcher fails.
func (s *TutorService) Print(ctx context.Context, job PrintJob) (PrintResult, error) {
	now := s.clock.Now()
	title := job.Title
	if title == "" {
		title = "PON Visual Tutor"
	}
	doc, err := markdown.Render(snapshotMeta{
		Title:     title,
		Session:   job.SessionID,
		PrintedAt: now,
		Selection: job.Selection,
		Query:     job.Query,
		LayersOn:  job.LayersOn,
	}, "# "+title+"\n\n```text\n"+job.Body+"\n```\n")
	if err != nil {
		return PrintResult{}, err
	}
	name := fmt.Sprintf("%s-%s.md", slug.Make(title), now.Format("20060102-150405"))
	path, err := s.store.Write(ctx, name, doc)
	if err != nil {
		return PrintResult{}, fmt.Errorf("write snapshot: %w", err)
	}
	s.logger.Info("snapshot written", "session", job.SessionID, "path", path)

	command, err := s.launcher.Print(ctx, path)
	if err != nil {
		s.logger.Warn("print failed", "path", path, "error", err)
		return PrintResult{Path: path}, err
	}
	if command != "" {
		s.logger.Info("snapshot sent to printer", "command", command)
	}
	return PrintResult{Path: path, Command: command}, nil
}

// Export writes the whole glossary and topology as a workbook.
func (s *TutorService) Export(ctx context.Context, path string) (domain.Handout, error) {
	cat, err := s.glossary.Catalog(ctx)
	if err != nil {
		return domain.Handout{}, err
	}
	topo, err := s.topology.Topology(ctx)
	if err != nil {
		return domain.Handout{}, err
	}
	h := domain.BuildHandout(cat, topo)
	if err := s.handouts.Write(ctx, path, h); err != nil {
		return domain.Handout{}, fmt.Errorf("write handout: %w", err)
	}
	s.logger.Info("handout exported", "path", path, "terms", len(h.Terms), "nodes", len(h.Nodes))
	return h, nil
}
