package dataset_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

func newGenerator() *dataset.Generator {
	return dataset.NewGenerator(dataset.GeneratorOptional{Now: func() time.Time { return fixedNow }})
}

func TestGenerator_Memoizes(t *testing.T) {
	g := newGenerator()
	a := g.InventoryRows(100, 1, 30)
	b := g.InventoryRows(100, 1, 30)
	require.Len(t, a, 100)
	assert.Same(t, &a[0], &b[0])

	c := g.InventoryRows(100, 1, 60)
	assert.NotSame(t, &a[0], &c[0])
	assert.Equal(t, 2, g.CachedDatasets())

	g.Clear()
	assert.Zero(t, g.CachedDatasets())
	d := g.InventoryRows(100, 1, 30)
	assert.NotSame(t, &a[0], &d[0])
	assert.Equal(t, a, d)
}

func TestGenerator_ConcurrentMisses(t *testing.T) {
	g := newGenerator()
	var wg sync.WaitGroup
	results := make([][]types.InventoryRow, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.InventoryRows(1000, 2, 30)
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		assert.Same(t, &results[0][0], &r[0])
	}
}

func TestGenerator_Exceptions(t *testing.T) {
	g := newGenerator()
	ex := g.Exceptions(100, 9, 30)
	require.Len(t, ex, 100)
	assert.Equal(t, "EX-9-1", ex[0].ID)
	assert.Equal(t, g.InventoryRows(100, 9, 30)[0].SKU, ex[0].SKU)

	again := g.Exceptions(100, 9, 30)
	assert.Same(t, &ex[0], &again[0])

	assert.Len(t, g.Pickers(9), dataset.PickerCount)
}
