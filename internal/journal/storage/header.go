package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

func encodeHeader(hdr types.JournalHeader) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeHeader reads the segment header at the start of data.
func DecodeHeader(data []byte) (types.JournalHeader, error) {
	var hdr types.JournalHeader
	if len(data) < types.JournalHeaderSize {
		return hdr, fmt.Errorf("journal header truncated: %d bytes", len(data))
	}
	if err := binary.Read(bytes.NewReader(data[:types.JournalHeaderSize]), binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}
	if hdr.Magic != types.JournalMagic {
		return hdr, fmt.Errorf("not a journal segment: magic %#x", hdr.Magic)
	}
	return hdr, nil
}

func openHeader(seqNo uint64) types.JournalHeader {
	return types.JournalHeader{
		Magic:   types.JournalMagic,
		Version: types.JournalVersion1,
		Status:  types.JournalStatusOpen,
		SeqNo:   seqNo,
	}
}
