package bootstrap

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	glossaryinadapter "pontutor/internal/modules/glossary/adapter/in"
	glossaryoutadapter "pontutor/internal/modules/glossary/adapter/out"
	glossaryservice "pontutor/internal/modules/glossary/service"
	glossaryusecase "pontutor/internal/modules/glossary/usecase"
	topologyinadapter "pontutor/internal/modules/topology/adapter/in"
	topologyoutadapter "pontutor/internal/modules/topology/adapter/out"
	topologyservice "pontutor/internal/modules/topology/service"
	topologyusecase "pontutor/internal/modules/topology/usecase"
	tutorinadapter "pontutor/internal/modules/tutor/adapter/in"
	tutoroutadapter "pontutor/internal/modules/tutor/adapter/out"
	tutorservice "pontutor/internal/modules/tutor/service"
	tutorusecase "pontutor/internal/modules/tutor/usecase"
	"pontutor/internal/platform/clock"
	"pontutor/internal/platform/config"
	"pontutor/internal/platform/dataset"
	"pontutor/internal/platform/id"
	"pontutor/internal/platform/logging"
	uiapp "pontutor/internal/ui/app"
)

type App struct {
	GlossaryCLI glossaryinadapter.CLIHandler
	TopologyCLI topologyinadapter.CLIHandler
	TutorCLI    tutorinadapter.CLIHandler
	TutorTUI    tutorinadapter.TUIHandler
	Logger      hclog.Logger

	closer io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	doc, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Debug("dataset loaded", "path", cfg.DatasetPath, "terms", len(doc.Terms), "nodes", len(doc.Nodes))

	glossarySvc := glossaryservice.NewGlossaryService(glossaryoutadapter.NewDatasetTermSource(doc))
	glossaryUC := glossaryusecase.NewInteractor(glossarySvc)

	topologySvc := topologyservice.NewTopologyService(topologyoutadapter.NewDatasetTopologySource(doc))
	topologyUC := topologyusecase.NewInteractor(topologySvc)

	tutorUC := tutorusecase.NewInteractor(tutorservice.NewTutorService(
		glossarySvc,
		topologySvc,
		tutoroutadapter.NewFileSnapshotStore(cfg.PrintDir),
		tutoroutadapter.NewCommandLauncher(cfg.PrintCommand),
		tutoroutadapter.NewXLSXHandoutWriter(),
		clock.SystemClock{},
		id.UUID{},
		logger.Named("tutor"),
	))

	return &App{
		GlossaryCLI: glossaryinadapter.NewCLIHandler(glossaryUC),
		TopologyCLI: topologyinadapter.NewCLIHandler(topologyUC),
		TutorCLI:    tutorinadapter.NewCLIHandler(tutorUC),
		TutorTUI:    tutorinadapter.NewTUIHandler(tutorUC),
		Logger:      logger,
		closer:      closer,
	}, nil
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func RunTUI(ctx context.Context, app *App) error {
	view, err := app.TutorTUI.OpenView(ctx)
	if err != nil {
		return err
	}
	app.Logger.Info("tui started", "session", view.ID())
	model := uiapp.NewModel(view, app.TutorTUI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
