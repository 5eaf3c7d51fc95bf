package utils_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

func TestGenNextJournalPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")
	u := utils.NewDefaultUtils(dir, slog.LevelInfo, &bytes.Buffer{})

	path, seq, err := u.GenNextJournalPath()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq)
	assert.Equal(t, filepath.Join(dir, "journal.000"), path)

	for _, name := range []string{"journal.000", "journal.002", "journal.010", "journal.bak", "other.011"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := u.GetJournalFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "journal.000"),
		filepath.Join(dir, "journal.002"),
		filepath.Join(dir, "journal.010"),
	}, files)

	path, seq, err = u.GenNextJournalPath()
	require.NoError(t, err)
	assert.Equal(t, uint64(11), seq)
	assert.Equal(t, filepath.Join(dir, "journal.011"), path)
}

func TestGenNextJournalPath_Disabled(t *testing.T) {
	u := utils.NewDefaultUtils("", slog.LevelInfo, &bytes.Buffer{})
	files, err := u.GetJournalFiles()
	require.NoError(t, err)
	assert.Empty(t, files)

	_, _, err = u.GenNextJournalPath()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	u := utils.NewDefaultUtils("", utils.ParseLogLevel("warn"), &buf)
	u.GetLogger().Info("hidden")
	u.GetLogger().Warn("shown", "endpoint", "fetchInventory")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "endpoint=fetchInventory")

	assert.Equal(t, slog.LevelInfo, utils.ParseLogLevel("nonsense"))
	assert.Equal(t, slog.LevelDebug, utils.ParseLogLevel("debug"))
}

func TestMockJournal(t *testing.T) {
	j := &utils.MockJournal{}
	require.NoError(t, j.Flush())
	assert.Empty(t, j.Entries())
}
