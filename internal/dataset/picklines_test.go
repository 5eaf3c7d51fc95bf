package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestBuildPickLines(t *testing.T) {
	inv := dataset.GenerateInventory(5, 1, 30, fixedNow)
	lines := dataset.BuildPickLines(inv)
	require.Len(t, lines, 5)
	for i, l := range lines {
		assert.Equal(t, "PL-"+inv[i].ID, l.LineID)
		assert.Equal(t, inv[i].Available, l.Available)
		assert.Equal(t, types.LineClean, l.RowStatus)
		assert.Equal(t, types.StrategyFIFO, l.Strategy)
		assert.Nil(t, l.PickQty)
	}
}

func TestValidatePickLine(t *testing.T) {
	base := types.PickLine{LineID: "L1", Available: 10, RowStatus: types.LineDirty}

	l := base
	assert.False(t, dataset.ValidatePickLine(&l))
	assert.Equal(t, types.LineError, l.RowStatus)
	require.Len(t, l.Errors, 2)
	assert.Equal(t, "pickQty", l.Errors[0].Field)
	assert.Equal(t, "pickerId", l.Errors[1].Field)

	l = base
	l.PickQty = ptr(11)
	l.PickerID = ptr("P001")
	assert.False(t, dataset.ValidatePickLine(&l))
	assert.Equal(t, "pick quantity exceeds available", l.Errors[0].Message)

	l = base
	l.PickQty = ptr(0)
	l.PickerID = ptr("P001")
	assert.False(t, dataset.ValidatePickLine(&l))

	l = base
	l.PickQty = ptr(10)
	l.PickerID = ptr("P001")
	assert.True(t, dataset.ValidatePickLine(&l))
	assert.Equal(t, types.LineReady, l.RowStatus)
	assert.Empty(t, l.Errors)

	other := base
	other.LineID = "L2"
	dataset.ValidatePickLine(&other)
	ready := dataset.ReadyLines([]types.PickLine{l, other})
	assert.Equal(t, []types.SubmitLine{{LineID: "L1"}}, ready)
}
