// Copyright 2026 The cardanotx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads process configuration the way
// blinklabs-io/shai's internal/config does: a single struct populated
// from environment variables via envconfig, reachable through a
// package-level singleton rather than threaded through every
// constructor.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// LoggingConfig controls internal/obslog's process-wide logger.
type LoggingConfig struct {
	Level string `envconfig:"LOGGING_LEVEL" default:"info"`
}

// ChainConfig points the example programs under cmd/ at a chain
// context (spec §8.3's scenarios all run against a static snapshot,
// but a real deployment would dial an actual node here).
type ChainConfig struct {
	Network        string `envconfig:"CARDANOTX_NETWORK" default:"mainnet"`
	NodeSocketPath string `envconfig:"CARDANOTX_NODE_SOCKET"`
}

// Config is the top-level process configuration.
type Config struct {
	Logging LoggingConfig
	Chain   ChainConfig
}

var globalConfig *Config

// Load populates and caches the process-wide Config from environment
// variables. Unlike shai's Load, there is no YAML file to read first —
// this module has no topology/indexer/wallet surface to configure, so
// envconfig's env-var pass is the whole story.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("cardanotx", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	globalConfig = cfg
	return cfg, nil
}

// GetConfig returns the cached Config, loading it from the
// environment on first use if Load was never called.
func GetConfig() (*Config, error) {
	if globalConfig == nil {
		return Load()
	}
	return globalConfig, nil
}
