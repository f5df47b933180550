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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		yamlData string
		want     *Config
		wantErr  bool
	}{
		{
			name: "all fields set",
			yamlData: `---
default_key_file: authorized_keys2
log_dir: /var/log/lendkey
`,
			want: &Config{
				DefaultKeyFile: "authorized_keys2",
				LogDir:         "/var/log/lendkey",
			},
			wantErr: false,
		},
		{
			name:     "empty document gets defaults",
			yamlData: "",
			want: &Config{
				DefaultKeyFile: "authorized_keys",
			},
			wantErr: false,
		},
		{
			name:     "malformed yaml",
			yamlData: "default_key_file: [unclosed",
			want:     nil,
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig([]byte(tc.yamlData))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	mockFs := afero.NewMemMapFs()

	cfg, err := Load(mockFs, DefaultPath)
	require.NoError(t, err)
	require.Equal(t, "authorized_keys", cfg.DefaultKeyFile)
	require.Empty(t, cfg.LogDir)
}

func TestLoadReadsFile(t *testing.T) {
	mockFs := afero.NewMemMapFs()
	err := afero.WriteFile(mockFs, "/etc/lendkey/config.yml",
		[]byte("default_key_file: authorized_keys2\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(mockFs, DefaultPath)
	require.NoError(t, err)
	require.Equal(t, "authorized_keys2", cfg.DefaultKeyFile)
}
