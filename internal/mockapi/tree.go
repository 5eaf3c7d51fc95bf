package mockapi

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const treeRootsMs = 80

func (s *Service) FetchTreeRoots(ctx context.Context, seed uint32) ([]types.TreeNode, error) {
	start := time.Now()
	if err := s.sleepMs(ctx, treeRootsMs); err != nil {
		return nil, err
	}
	roots := dataset.TreeRoots(seed)
	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointTreeRoots,
		Seed:      seed,
		OK:        true,
		RequestMs: sinceMs(start),
		Rows:      len(roots),
		Total:     len(roots),
	})
	return roots, nil
}

// FetchTreeChildren expands one node. Latency, failure and children all
// come from a generator derived from (seed, parentID), so a node that fails
// once fails on every retry. Expanded nodes are remembered; failures are not.
// Callers get their own copy of the remembered slice.
func (s *Service) FetchTreeChildren(ctx context.Context, seed uint32, parentID string) ([]types.TreeNode, error) {
	key := treeKey{seed: seed, parentID: parentID}
	if nodes, ok := s.tree.Get(key); ok {
		return slices.Clone(nodes), nil
	}

	start := time.Now()
	r := rng.Derive(seed, parentID)
	if err := s.sleepMs(ctx, 120+r.Float64()*380); err != nil {
		return nil, err
	}
	requestMs := sinceMs(start)

	if rng.Chance(r, treeFailureRate) {
		err := fmt.Errorf("%w: %s", types.ErrLoadChildren, parentID)
		s.record(ctx, types.JournalEntry{
			Endpoint:  types.EndpointTreeChildren,
			Seed:      seed,
			Key:       parentID,
			Message:   err.Error(),
			RequestMs: requestMs,
		})
		return nil, err
	}

	// concurrent expansions of one node that got this far share the compute
	var computeMs float64
	nodes, err := s.tree.GetOrTry(key, func() ([]types.TreeNode, error) {
		nodes, ms, err := actor.Compute(ctx, s.sys, func() ([]types.TreeNode, error) {
			return dataset.TreeChildren(r, parentID, s.now()), nil
		})
		computeMs = ms
		return nodes, err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointTreeChildren,
		Seed:      seed,
		Key:       parentID,
		OK:        true,
		RequestMs: requestMs,
		ComputeMs: computeMs,
		Rows:      len(nodes),
		Total:     len(nodes),
	})
	return slices.Clone(nodes), nil
}
