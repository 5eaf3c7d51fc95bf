package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal/storage"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.000")

	fs, err := storage.NewFileStorage(path, 3)
	require.NoError(t, err)

	data := []byte("hello world")
	require.NoError(t, fs.Write(data))
	require.NoError(t, fs.Flush())
	size, err := fs.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(types.JournalHeaderSize+len(data)), size)
	require.NoError(t, fs.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, content[types.JournalHeaderSize:])

	hdr, err := storage.DecodeHeader(content)
	require.NoError(t, err)
	assert.Equal(t, types.JournalStatusClosed, hdr.Status)
	assert.Equal(t, uint64(3), hdr.SeqNo)
	assert.Equal(t, uint64(len(data)), hdr.DataLength)
}

func TestFileStorage_ReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.001")

	fs1, err := storage.NewFileStorage(path, 1)
	require.NoError(t, err)
	require.NoError(t, fs1.Write([]byte("first ")))
	require.NoError(t, fs1.Close())

	fs2, err := storage.NewFileStorage(path, 99)
	require.NoError(t, err)
	require.NoError(t, fs2.Write([]byte("second")))
	require.NoError(t, fs2.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first second", string(content[types.JournalHeaderSize:]))
	hdr, err := storage.DecodeHeader(content)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), hdr.SeqNo, "reopen keeps the first sequence")
}

func TestFileStorage_Capacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.002")
	fs, err := storage.NewFileStorage(path, 0, storage.FileStorageOps{MaxFileSizeInBytes: types.JournalHeaderSize + 8})
	require.NoError(t, err)
	defer fs.Close()

	assert.True(t, fs.CanWrite(8))
	assert.False(t, fs.CanWrite(9))
}

func TestFileMMapStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.mmap")

	ms, err := storage.NewFileMMapStorage(path, 0, storage.FileMMapStorageOps{MMapFileSizeInBytes: 1024})
	require.NoError(t, err)
	require.NoError(t, ms.Write([]byte("initial data")))
	require.NoError(t, ms.Flush())
	require.NoError(t, ms.Close())

	ms2, err := storage.NewFileMMapStorage(path, 0, storage.FileMMapStorageOps{MMapFileSizeInBytes: 1024})
	require.NoError(t, err)
	require.NoError(t, ms2.Write([]byte(" and more data")))
	require.NoError(t, ms2.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, content, 1024)
	hdr, err := storage.DecodeHeader(content)
	require.NoError(t, err)
	body := content[types.JournalHeaderSize : types.JournalHeaderSize+hdr.DataLength]
	assert.Equal(t, "initial data and more data", string(body))
}

func TestFileMMapStorage_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.full")
	ms, err := storage.NewFileMMapStorage(path, 0, storage.FileMMapStorageOps{MMapFileSizeInBytes: types.JournalHeaderSize + 4})
	require.NoError(t, err)
	defer ms.Close()

	require.NoError(t, ms.Write([]byte("abcd")))
	assert.False(t, ms.CanWrite(1))
	assert.ErrorIs(t, ms.Write([]byte("e")), types.ErrJournalFull)
}

func TestDecodeHeader_Rejects(t *testing.T) {
	_, err := storage.DecodeHeader([]byte("short"))
	assert.Error(t, err)

	_, err = storage.DecodeHeader(make([]byte, types.JournalHeaderSize))
	assert.ErrorContains(t, err, "magic")
}
