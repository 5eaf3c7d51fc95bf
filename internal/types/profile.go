package types

import (
	"fmt"
	"slices"
)

// ProfileDataset names the dataset a benchmark profile queries.
type ProfileDataset string

const (
	ProfileInventory  ProfileDataset = "inventory"
	ProfileExceptions ProfileDataset = "exceptions"
)

// BenchProfile is a replayable benchmark scenario.
type BenchProfile struct {
	Name       string         `json:"name"`
	Seed       *uint32        `json:"seed"`
	Mode       DataMode       `json:"mode"`
	Dataset    ProfileDataset `json:"dataset"`
	Size       int            `json:"size"`
	ColumnSize int            `json:"columnSize"`
	Queries    []Query        `json:"queries"`
}

func (p *BenchProfile) ApplyDefaults() {
	if p.Seed == nil {
		seed := DefaultSeed
		p.Seed = &seed
	}
	if p.Mode == "" {
		p.Mode = ModeServer
	}
	if p.Dataset == "" {
		p.Dataset = ProfileInventory
	}
	if p.ColumnSize == 0 {
		p.ColumnSize = 30
	}
}

func (p *BenchProfile) Validate() error {
	if p.Dataset != ProfileInventory && p.Dataset != ProfileExceptions {
		return fmt.Errorf("unknown profile dataset %q", p.Dataset)
	}
	if err := ValidateShape(p.Mode, p.Size, p.ColumnSize); err != nil {
		return err
	}
	for i, q := range p.Queries {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}
	return nil
}

// ValidateShape checks a mode and dataset shape against the supported sets.
func ValidateShape(mode DataMode, size, columnSize int) error {
	if mode != ModeLocal && mode != ModeServer {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if !slices.Contains(DataSizes, size) {
		return fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	if !slices.Contains(ColumnSizes, columnSize) {
		return fmt.Errorf("%w: %d", ErrUnsupportedColumnSize, columnSize)
	}
	return nil
}
