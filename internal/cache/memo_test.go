package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key struct {
	Size int
	Seed uint32
}

func TestMemo_GetOrCompute(t *testing.T) {
	m := NewMemo[key, []int]()
	calls := 0
	compute := func() []int {
		calls++
		return []int{1, 2, 3}
	}

	a := m.GetOrCompute(key{10, 1}, compute)
	b := m.GetOrCompute(key{10, 1}, compute)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Len())

	m.GetOrCompute(key{10, 2}, compute)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get(key{10, 1})
	assert.False(t, ok)
}

func TestMemo_ConcurrentMissesShareWork(t *testing.T) {
	m := NewMemo[key, int]()
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.GetOrCompute(key{1, 1}, func() int {
				calls.Add(1)
				<-release
				return 42
			})
		}(i)
	}
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 42, r)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemo_GetOrTryDoesNotCacheFailures(t *testing.T) {
	m := NewMemo[string, string]()
	boom := errors.New("boom")

	_, err := m.GetOrTry("a", func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.Len())

	v, err := m.GetOrTry("a", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	v, err = m.GetOrTry("a", func() (string, error) { return "", boom })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}
