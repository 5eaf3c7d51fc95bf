package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type ConfigImpl struct{}

// LoadProfile reads a JSON benchmark profile: a dataset shape plus the
// queries to replay against it.
func (c *ConfigImpl) LoadProfile(path string) (types.BenchProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.BenchProfile{}, err
	}
	defer file.Close()
	var p types.BenchProfile
	if err := json.NewDecoder(file).Decode(&p); err != nil {
		return types.BenchProfile{}, err
	}
	p.ApplyDefaults()
	return p, p.Validate()
}

// LoadYAML reads the config file and applies defaults. The result is not
// validated so callers can override fields from flags first.
func (c *ConfigImpl) LoadYAML(path string) (YAMLConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return YAMLConfig{}, err
	}
	defer file.Close()
	var cfg YAMLConfig
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return YAMLConfig{}, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
