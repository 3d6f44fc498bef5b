// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config loads the configuration file of the replay tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay"
	"gopkg.in/yaml.v3"
)

const DefaultCacheSize = 1024

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Transcoder replay.Config `yaml:"transcoder"`
	// Number of converted sequences remembered for duplicate detection.
	CacheSize int `yaml:"cacheSize"`
	// Directory receiving the generated files; stdout if empty.
	OutputDir string `yaml:"outputDir,omitempty"`
	Verbose   bool   `yaml:"verbose,omitempty"`
}

func Default() *Config {
	return &Config{
		Transcoder: replay.DefaultConfig(),
		CacheSize:  DefaultCacheSize,
	}
}

// Load reads the configuration from the given YAML file. Values missing in
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if err := c.Transcoder.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Save writes the configuration as YAML to the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
