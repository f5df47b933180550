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

package files

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestAppendFileCreatesWhenMissing(t *testing.T) {
	t.Parallel()

	mockFs := afero.NewMemMapFs()
	ops := NewOsOps(mockFs)

	err := ops.AppendFile("/home/deploy/.ssh/authorized_keys", []byte("key-a\n"), ModeKeyFile)
	require.NoError(t, err)

	data, err := ops.ReadFile("/home/deploy/.ssh/authorized_keys")
	require.NoError(t, err)
	require.Equal(t, "key-a\n", string(data))
}

func TestAppendFilePreservesExistingContent(t *testing.T) {
	t.Parallel()

	mockFs := afero.NewMemMapFs()
	ops := NewOsOps(mockFs)
	require.NoError(t, afero.WriteFile(mockFs, "/tmp/keys", []byte("key-a\n"), 0o600))

	err := ops.AppendFile("/tmp/keys", []byte("key-b\n"), ModeKeyFile)
	require.NoError(t, err)

	data, err := ops.ReadFile("/tmp/keys")
	require.NoError(t, err)
	require.Equal(t, "key-a\nkey-b\n", string(data))
}

func TestWriteFileCreatesParentDir(t *testing.T) {
	t.Parallel()

	mockFs := afero.NewMemMapFs()
	ops := NewOsOps(mockFs)

	err := ops.WriteFile("/home/deploy/.ssh/authorized_keys_backup", []byte(""), ModeKeyFile)
	require.NoError(t, err)

	exists, err := ops.Exists("/home/deploy/.ssh/authorized_keys_backup")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestRenameReplacesDestination(t *testing.T) {
	t.Parallel()

	mockFs := afero.NewMemMapFs()
	ops := NewOsOps(mockFs)
	require.NoError(t, afero.WriteFile(mockFs, "/tmp/backup", []byte("original\n"), 0o600))
	require.NoError(t, afero.WriteFile(mockFs, "/tmp/keys", []byte("merged\n"), 0o600))

	err := ops.Rename("/tmp/backup", "/tmp/keys")
	require.NoError(t, err)

	data, err := ops.ReadFile("/tmp/keys")
	require.NoError(t, err)
	require.Equal(t, "original\n", string(data))

	exists, err := ops.Exists("/tmp/backup")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCheckPerms(t *testing.T) {
	t.Parallel()

	mockFs := afero.NewMemMapFs()
	ops := NewOsOps(mockFs)
	require.NoError(t, afero.WriteFile(mockFs, "/tmp/strict", []byte("x"), 0o600))
	require.NoError(t, afero.WriteFile(mockFs, "/tmp/lax", []byte("x"), 0o664))

	require.Empty(t, CheckPerms(ops, "/tmp/strict", PermInfo{Mode: ModeKeyFile}))

	problems := CheckPerms(ops, "/tmp/lax", PermInfo{Mode: ModeKeyFile})
	require.Len(t, problems, 1)
	require.Contains(t, problems[0], "mode 664")

	problems = CheckPerms(ops, "/tmp/missing", PermInfo{Mode: ModeKeyFile})
	require.Len(t, problems, 1)
}
