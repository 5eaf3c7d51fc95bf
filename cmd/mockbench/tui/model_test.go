package tui

import (
	"strings"
	"testing"
	"time"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc, err := mockapi.NewService(&types.Context{Utils: &utils.MockUtils{}}, &mockapi.ServiceOptional{
		Sleeper: mockapi.NoopSleeper{},
		Now:     func() time.Time { return time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	m := NewModel(svc, Session{Seed: 1, Size: 100, ColumnSize: 30, Mode: types.ModeServer, PageSize: 10}, nil, nil)
	next, _ := m.Update(bubbletea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

// enter types a line and runs whatever command it produced.
func enter(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.textInput.SetValue(line)
	next, _ := m.Update(bubbletea.KeyMsg{Type: bubbletea.KeyEnter})
	m = next.(Model)

	command, args := strings.Fields(line)[0], strings.Fields(line)[1:]
	if run, ok := dispatch(m.backend, m.session, command, args); ok {
		next, _ = m.Update(run())
		m = next.(Model)
	}
	return m
}

func TestModel_Roots(t *testing.T) {
	m := enter(t, newTestModel(t), "/roots")
	assert.Equal(t, 0, m.pending)
	require.Len(t, m.history, 1+len(dataset.Warehouses))
	assert.Equal(t, "TREE-1-WH-A", m.history[1])
}

func TestModel_InventoryPage(t *testing.T) {
	m := enter(t, newTestModel(t), "/inventory 2")
	require.Len(t, m.history, 1+1+10)
	assert.True(t, strings.HasPrefix(m.history[1], "page 2: 10 of 100 rows"))
}

func TestModel_UnknownCommand(t *testing.T) {
	m := enter(t, newTestModel(t), "/nope")
	require.Len(t, m.history, 2)
	assert.Contains(t, m.history[1], "unknown command")

	m = enter(t, m, "/expand")
	assert.Contains(t, m.history[len(m.history)-1], "missing argument")
}

func TestModel_PerfCountsEntries(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(entryMsg(types.JournalEntry{Endpoint: types.EndpointInventory, OK: true, RequestMs: 10}))
	next, _ = next.(Model).Update(entryMsg(types.JournalEntry{Endpoint: types.EndpointInventory, OK: false, RequestMs: 30}))
	m = enter(t, next.(Model), "/perf")

	require.Len(t, m.journal, 2)
	out := strings.Join(m.history, "\n")
	assert.Contains(t, out, "fetchInventory")
	assert.Contains(t, out, "calls=2")
	assert.Contains(t, out, "fail= 50.0%")
}

func TestModel_Submit(t *testing.T) {
	m := enter(t, newTestModel(t), "/submit 5")
	last := m.history[len(m.history)-1]
	assert.Contains(t, last, "submitted")
	assert.Contains(t, last, "lines in")
}

func TestChannelWriter_DropsWhenFull(t *testing.T) {
	ch := make(chan string, 1)
	w := &ChannelWriter{Ch: ch}
	n, err := w.Write([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = w.Write([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "a", <-ch)
}
