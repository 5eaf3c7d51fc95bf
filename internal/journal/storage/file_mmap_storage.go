package storage

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const defaultMmapFileSize int64 = 1024 * 1024 * 10 // 10 MB

// FileMMapStorage writes into a preallocated memory-mapped segment. The
// capacity is the mapped length; a full segment has to be rotated.
type FileMMapStorage struct {
	file   *os.File
	mmap   mmap.MMap
	offset int64
	seqNo  uint64
}

var _ types.Storage = (*FileMMapStorage)(nil)

type FileMMapStorageOps struct {
	MMapFileSizeInBytes int64
}

func NewFileMMapStorage(path string, seqNo uint64, opts ...FileMMapStorageOps) (*FileMMapStorage, error) {
	size := defaultMmapFileSize
	for _, o := range opts {
		if o.MMapFileSizeInBytes > 0 {
			size = o.MMapFileSizeInBytes
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	isNew := info.Size() == 0
	if isNew {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to truncate file: %w", err)
		}
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}
	s := &FileMMapStorage{file: f, mmap: m, seqNo: seqNo}

	if isNew {
		hdr, err := encodeHeader(openHeader(seqNo))
		if err != nil {
			s.Close()
			return nil, err
		}
		copy(s.mmap, hdr)
		s.offset = types.JournalHeaderSize
		return s, nil
	}

	hdr, err := DecodeHeader(m)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	s.seqNo = hdr.SeqNo
	if hdr.Status == types.JournalStatusClosed {
		s.offset = types.JournalHeaderSize + int64(hdr.DataLength)
	} else {
		// left open by a crash: data ends at the zero padding
		s.offset = max(types.JournalHeaderSize, int64(len(bytes.TrimRight(m, "\x00"))))
	}
	return s, nil
}

func (s *FileMMapStorage) Write(data []byte) error {
	if !s.CanWrite(len(data)) {
		return types.ErrJournalFull
	}
	copy(s.mmap[s.offset:], data)
	s.offset += int64(len(data))
	return nil
}

func (s *FileMMapStorage) CanWrite(size int) bool {
	return s.offset+int64(size) <= int64(len(s.mmap))
}

func (s *FileMMapStorage) Size() (int64, error) {
	return s.offset, nil
}

func (s *FileMMapStorage) Flush() error {
	return s.mmap.Flush()
}

func (s *FileMMapStorage) Close() error {
	if s.mmap == nil {
		return nil
	}
	hdr := openHeader(s.seqNo)
	hdr.Status = types.JournalStatusClosed
	hdr.DataLength = uint64(s.offset - types.JournalHeaderSize)
	buf, err := encodeHeader(hdr)
	if err != nil {
		return err
	}
	copy(s.mmap, buf)

	if err := s.mmap.Flush(); err != nil {
		return err
	}
	if err := s.mmap.Unmap(); err != nil {
		s.file.Close()
		return err
	}
	s.mmap = nil
	return s.file.Close()
}
