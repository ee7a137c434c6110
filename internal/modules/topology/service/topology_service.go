package service

import (
	"context"
	"fmt"
	"sync"

	"pontutor/internal/modules/topology/domain"
	topologyout "pontutor/internal/modules/topology/port/out"
	apperrors "pontutor/internal/platform/errors"
)

type TopologyService struct {
	source topologyout.TopologySource

	once     sync.Once
	topology domain.Topology
	err      error
}

func NewTopologyService(source topologyout.TopologySource) *TopologyService {
	return &TopologyService{source: source}
}

// Topology returns the loaded topology. Callers must treat the slices as
// read-only; they are shared by every view.
func (s *TopologyService) Topology(ctx context.Context) (domain.Topology, error) {
	s.once.Do(func() {
		topo, err := s.source.LoadTopology(ctx)
		if err != nil {
			s.err = fmt.Errorf("load topology: %w", err)
			return
		}
		s.topology = topo
	})
	return s.topology, s.err
}

func (s *TopologyService) Node(ctx context.Context, id string) (domain.Node, error) {
	topo, err := s.Topology(ctx)
	if err != nil {
		return domain.Node{}, err
	}
	n, ok := topo.NodeByID(id)
	if !ok {
		return domain.Node{}, fmt.Errorf("node %q: %w", id, apperrors.ErrNotFound)
	}
	return n, nil
}
