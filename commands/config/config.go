// Copyright 2026 Lendkey
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/lendkey/lendkey/grant"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where site defaults are read from unless --config
// points elsewhere.
const DefaultPath = "/etc/lendkey/config.yml"

// Config holds site-wide defaults. Command-line flags override these;
// these override the built-in defaults.
type Config struct {
	// DefaultKeyFile is the key file name used when an invocation does
	// not pass --key-file.
	DefaultKeyFile string `yaml:"default_key_file"`
	// LogDir, when set, makes commands append their log output to
	// <LogDir>/lendkey.log in addition to stderr.
	LogDir string `yaml:"log_dir"`
}

// NewConfig parses a YAML config document and fills in defaults for
// unset fields.
func NewConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DefaultKeyFile == "" {
		cfg.DefaultKeyFile = grant.DefaultKeyFileName
	}
	return cfg, nil
}

// Load reads the config file at path. A missing file is not an error:
// the built-in defaults are returned.
func Load(vfs afero.Fs, path string) (*Config, error) {
	exists, err := afero.Exists(vfs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return NewConfig(nil)
	}
	data, err := afero.ReadFile(vfs, path)
	if err != nil {
		return nil, err
	}
	return NewConfig(data)
}
