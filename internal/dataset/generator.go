// Package dataset fabricates the benchmark datasets. Every generator is a
// pure function of its parameters plus the clock used for dates.
package dataset

import (
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/cache"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type datasetKey struct {
	size       int
	seed       uint32
	columnSize int
}

type GeneratorOptional struct {
	// Now is the clock for generated dates. Defaults to time.Now.
	Now func() time.Time
}

// Generator memoizes datasets for the life of the process. Returned slices
// are shared between callers and must be treated as read-only.
type Generator struct {
	now        func() time.Time
	inventory  *cache.Memo[datasetKey, []types.InventoryRow]
	exceptions *cache.Memo[datasetKey, []types.ExceptionRow]
	pickers    *cache.Memo[uint32, []types.Picker]
}

func NewGenerator(opt GeneratorOptional) *Generator {
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{
		now:        now,
		inventory:  cache.NewMemo[datasetKey, []types.InventoryRow](),
		exceptions: cache.NewMemo[datasetKey, []types.ExceptionRow](),
		pickers:    cache.NewMemo[uint32, []types.Picker](),
	}
}

func (g *Generator) Now() time.Time {
	return g.now()
}

func (g *Generator) InventoryRows(size int, seed uint32, columnSize int) []types.InventoryRow {
	return g.inventory.GetOrCompute(datasetKey{size, seed, columnSize}, func() []types.InventoryRow {
		return GenerateInventory(size, seed, columnSize, g.now())
	})
}

// Exceptions is keyed by column size as well, since the inventory feeding
// it depends on it.
func (g *Generator) Exceptions(size int, seed uint32, columnSize int) []types.ExceptionRow {
	return g.exceptions.GetOrCompute(datasetKey{size, seed, columnSize}, func() []types.ExceptionRow {
		inv := g.InventoryRows(min(size, ExceptionInventoryCap), seed, columnSize)
		return GenerateExceptions(size, seed, inv, g.now())
	})
}

func (g *Generator) Pickers(seed uint32) []types.Picker {
	return g.pickers.GetOrCompute(seed, func() []types.Picker {
		return GeneratePickers(seed)
	})
}

// CachedDatasets reports how many datasets are memoized.
func (g *Generator) CachedDatasets() int {
	return g.inventory.Len() + g.exceptions.Len() + g.pickers.Len()
}

func (g *Generator) Clear() {
	g.inventory.Clear()
	g.exceptions.Clear()
	g.pickers.Clear()
}
