package out

import (
	"context"

	glossary "pontutor/internal/modules/glossary/domain"
	topology "pontutor/internal/modules/topology/domain"
	"pontutor/internal/modules/tutor/domain"
)

type GlossaryReader interface {
	Catalog(ctx context.Context) (glossary.Catalog, error)
}

type TopologyReader interface {
	Topology(ctx context.Context) (topology.Topology, error)
}

type SnapshotStore interface {
	// Write stores content under name and returns the resulting path.
	Write(ctx context.Context, name, content string) (string, error)
}

type PrintLauncher interface {
	// Print hands path to the host print facility and returns the command
	// line it ran, or "" when printing is disabled.
	Print(ctx context.Context, path string) (string, error)
}

type HandoutWriter interface {
	// Write saves the handout as a workbook at path.
	Write(ctx context.Context, path string, h domain.Handout) error
}
