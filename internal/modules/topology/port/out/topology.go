package out

import (
	"context"

	"pontutor/internal/modules/topology/domain"
)

type TopologySource interface {
	LoadTopology(ctx context.Context) (domain.Topology, error)
}
