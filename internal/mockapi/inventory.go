package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/query"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// DatasetParams selects a dataset and the page of it to return.
type DatasetParams struct {
	Query      types.Query    `json:"query"`
	Seed       uint32         `json:"seed"`
	Size       int            `json:"size"`
	ColumnSize int            `json:"columnSize"`
	Mode       types.DataMode `json:"mode"`
}

type (
	InventoryParams = DatasetParams
	ExceptionParams = DatasetParams
)

func (p DatasetParams) Validate() error {
	if err := p.Query.Validate(); err != nil {
		return err
	}
	if p.Mode != types.ModeLocal && p.Mode != types.ModeServer {
		return fmt.Errorf("%w: %q", types.ErrUnsupportedMode, p.Mode)
	}
	if p.Size < 0 {
		return fmt.Errorf("%w: %d", types.ErrUnsupportedSize, p.Size)
	}
	if p.ColumnSize < dataset.BaseColumnCount {
		return fmt.Errorf("%w: %d", types.ErrUnsupportedColumnSize, p.ColumnSize)
	}
	return nil
}

func (p DatasetParams) key() string {
	return fmt.Sprintf("%d|%d|%d", p.Size, p.Seed, p.ColumnSize)
}

// Page is a query result with its timings. RequestMs covers the simulated
// network wait, ComputeMs the filter/sort/paginate work. Rows are copies, but
// InventoryRow.Ext maps are shared with the dataset cache and must be treated
// as read-only.
type Page[T any] struct {
	types.Paged[T]
	RequestMs float64 `json:"requestMs"`
	ComputeMs float64 `json:"computeMs"`
}

type (
	InventoryPage = Page[types.InventoryRow]
	ExceptionPage = Page[types.ExceptionRow]
)

// FetchInventory returns one page of the inventory dataset. Local mode
// skips the network delay since the whole dataset is assumed in memory.
func (s *Service) FetchInventory(ctx context.Context, p InventoryParams) (InventoryPage, error) {
	return fetchPage(ctx, s, types.EndpointInventory, p, 180, 420, func() []types.InventoryRow {
		return s.gen.InventoryRows(p.Size, p.Seed, p.ColumnSize)
	})
}

func (s *Service) FetchExceptions(ctx context.Context, p ExceptionParams) (ExceptionPage, error) {
	return fetchPage(ctx, s, types.EndpointExceptions, p, 160, 360, func() []types.ExceptionRow {
		return s.gen.Exceptions(p.Size, p.Seed, p.ColumnSize)
	})
}

func fetchPage[T query.Record](
	ctx context.Context,
	s *Service,
	endpoint types.Endpoint,
	p DatasetParams,
	baseMs, jitterMs float64,
	rows func() []T,
) (Page[T], error) {
	if err := p.Validate(); err != nil {
		return Page[T]{}, err
	}

	start := time.Now()
	if p.Mode == types.ModeServer {
		if err := s.sleepMs(ctx, baseMs+s.jitter()*jitterMs); err != nil {
			return Page[T]{}, err
		}
	}
	requestMs := sinceMs(start)

	paged, computeMs, err := actor.Compute(ctx, s.sys, func() (types.Paged[T], error) {
		return query.Run(rows(), p.Query), nil
	})
	if err != nil {
		return Page[T]{}, err
	}

	s.record(ctx, types.JournalEntry{
		Endpoint:  endpoint,
		Seed:      p.Seed,
		Key:       p.key(),
		OK:        true,
		RequestMs: requestMs,
		ComputeMs: computeMs,
		Rows:      len(paged.Rows),
		Total:     paged.Total,
	})
	return Page[T]{Paged: paged, RequestMs: requestMs, ComputeMs: computeMs}, nil
}

// FetchPickLines turns one inventory page into editable picking lines.
func (s *Service) FetchPickLines(ctx context.Context, p InventoryParams) (Page[types.PickLine], error) {
	page, err := s.FetchInventory(ctx, p)
	if err != nil {
		return Page[types.PickLine]{}, err
	}
	return Page[types.PickLine]{
		Paged: types.Paged[types.PickLine]{
			Rows:  dataset.BuildPickLines(page.Rows),
			Total: page.Total,
		},
		RequestMs: page.RequestMs,
		ComputeMs: page.ComputeMs,
	}, nil
}
