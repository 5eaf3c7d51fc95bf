package storage

import (
	"fmt"
	"os"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// FileStorage appends to a regular file behind a segment header.
type FileStorage struct {
	file   *os.File
	offset int64
	seqNo  uint64

	maxSizeInBytes int64
}

var _ types.Storage = (*FileStorage)(nil)

type FileStorageOps struct {
	// MaxFileSizeInBytes caps the segment; 0 means unbounded.
	MaxFileSizeInBytes int64
}

func NewFileStorage(path string, seqNo uint64, opts ...FileStorageOps) (*FileStorage, error) {
	var maxSize int64
	for _, o := range opts {
		if o.MaxFileSizeInBytes > 0 {
			maxSize = o.MaxFileSizeInBytes
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

	s := &FileStorage{file: f, seqNo: seqNo, maxSizeInBytes: maxSize}
	if info.Size() == 0 {
		hdr, err := encodeHeader(openHeader(seqNo))
		if err != nil {
			f.Close()
			return nil, err
		}
		if _, err := f.WriteAt(hdr, 0); err != nil {
			f.Close()
			return nil, err
		}
		s.offset = types.JournalHeaderSize
		return s, nil
	}

	buf := make([]byte, types.JournalHeaderSize)
	if _, err := f.ReadAt(buf, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read journal header: %w", err)
	}
	hdr, err := DecodeHeader(buf)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.seqNo = hdr.SeqNo
	s.offset = info.Size()
	if hdr.Status == types.JournalStatusClosed {
		s.offset = types.JournalHeaderSize + int64(hdr.DataLength)
	}
	return s, nil
}

func (s *FileStorage) Write(data []byte) error {
	n, err := s.file.WriteAt(data, s.offset)
	s.offset += int64(n)
	return err
}

func (s *FileStorage) CanWrite(size int) bool {
	if s.maxSizeInBytes <= 0 {
		return true
	}
	return s.offset+int64(size) <= s.maxSizeInBytes
}

func (s *FileStorage) Size() (int64, error) {
	return s.offset, nil
}

func (s *FileStorage) Flush() error {
	return s.file.Sync()
}

// Close stamps the header with the final data length.
func (s *FileStorage) Close() error {
	if s.file == nil {
		return nil
	}
	hdr := openHeader(s.seqNo)
	hdr.Status = types.JournalStatusClosed
	hdr.DataLength = uint64(s.offset - types.JournalHeaderSize)
	buf, err := encodeHeader(hdr)
	if err == nil {
		_, err = s.file.WriteAt(buf, 0)
	}
	if err == nil {
		err = s.file.Sync()
	}
	cerr := s.file.Close()
	s.file = nil
	if err != nil {
		return err
	}
	return cerr
}
