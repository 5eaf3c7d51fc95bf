package config

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// YAMLConfig represents the application's configuration.
type YAMLConfig struct {
	WorkingDir string            `yaml:"working_dir"`
	Seed       *uint32           `yaml:"seed"`
	Mode       types.DataMode    `yaml:"mode"`
	Dataset    YAMLConfigDataset `yaml:"dataset"`
	Latency    YAMLConfigLatency `yaml:"latency"`
	Server     YAMLConfigServer  `yaml:"server"`
	Journal    YAMLConfigJournal `yaml:"journal"`
	LogLevel   string            `yaml:"log_level"`
}

type YAMLConfigDataset struct {
	Size       int `yaml:"size"`
	ColumnSize int `yaml:"column_size"`
}

// YAMLConfigLatency scales every simulated delay; 0 disables them.
type YAMLConfigLatency struct {
	Scale *float64 `yaml:"scale"`
}

type YAMLConfigServer struct {
	Listen string `yaml:"listen"`
}

// YAMLConfigJournal represents the configuration for the request journal.
type YAMLConfigJournal struct {
	Enabled     bool   `yaml:"enabled"`
	Dir         string `yaml:"dir"`
	Formatter   string `yaml:"formatter"`
	Storage     string `yaml:"storage"`
	MaxFileSize int64  `yaml:"max_file_size"`
	FlushAfter  int    `yaml:"flush_after"`
}

const (
	DefaultListen      = ":50051"
	DefaultMaxFileSize = 10 * 1024 * 1024
	DefaultFlushAfter  = 64
)

// ApplyDefaults fills every unset field.
func (c *YAMLConfig) ApplyDefaults() {
	if c.WorkingDir == "" {
		c.WorkingDir = "."
	}
	if c.Seed == nil {
		seed := types.DefaultSeed
		c.Seed = &seed
	}
	if c.Mode == "" {
		c.Mode = types.ModeServer
	}
	if c.Dataset.Size == 0 {
		c.Dataset.Size = 1000
	}
	if c.Dataset.ColumnSize == 0 {
		c.Dataset.ColumnSize = 30
	}
	if c.Latency.Scale == nil {
		scale := 1.0
		c.Latency.Scale = &scale
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Journal.Dir == "" {
		c.Journal.Dir = filepath.Join(c.WorkingDir, "journal")
	}
	if c.Journal.Formatter == "" {
		c.Journal.Formatter = "json"
	}
	if c.Journal.Storage == "" {
		c.Journal.Storage = "file"
	}
	if c.Journal.MaxFileSize == 0 {
		c.Journal.MaxFileSize = DefaultMaxFileSize
	}
	if c.Journal.FlushAfter == 0 {
		c.Journal.FlushAfter = DefaultFlushAfter
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects values the mock backend cannot serve. Call after
// ApplyDefaults.
func (c *YAMLConfig) Validate() error {
	if err := types.ValidateShape(c.Mode, c.Dataset.Size, c.Dataset.ColumnSize); err != nil {
		return err
	}
	if c.Latency.Scale != nil && *c.Latency.Scale < 0 {
		return fmt.Errorf("latency scale must be >= 0, got %v", *c.Latency.Scale)
	}
	if !lo.Contains([]string{"json", "line"}, c.Journal.Formatter) {
		return fmt.Errorf("unknown journal formatter %q", c.Journal.Formatter)
	}
	if !lo.Contains([]string{"file", "mmap"}, c.Journal.Storage) {
		return fmt.Errorf("unknown journal storage %q", c.Journal.Storage)
	}
	if c.Journal.FlushAfter < 0 {
		return fmt.Errorf("journal flush_after must be >= 0, got %d", c.Journal.FlushAfter)
	}
	return nil
}

func (c *YAMLConfig) SeedValue() uint32 {
	if c.Seed == nil {
		return types.DefaultSeed
	}
	return *c.Seed
}

func (c *YAMLConfig) LatencyScale() float64 {
	if c.Latency.Scale == nil {
		return 1
	}
	return *c.Latency.Scale
}
