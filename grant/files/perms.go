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
	"fmt"
	"io/fs"
)

// PermInfo describes the expected filesystem state for a key file: the
// widest acceptable permission bits and the owning uid/gid. Empty
// identifiers mean ownership is not checked.
type PermInfo struct {
	Mode fs.FileMode
	UID  string
	GID  string
}

// CheckPerms compares the file at path against expected and returns a
// human-readable problem per mismatch. It never mutates anything; a
// missing file is reported as a single problem.
func CheckPerms(ops Ops, path string, expected PermInfo) []string {
	info, err := ops.Stat(path)
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", path, err)}
	}

	var problems []string
	if mode := info.Mode().Perm(); mode&^expected.Mode != 0 {
		problems = append(problems, fmt.Sprintf("%s has mode %o, want at most %o", path, mode, expected.Mode))
	}

	if expected.UID != "" || expected.GID != "" {
		uid, gid, err := ops.OwnerIDs(path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: reading ownership: %v", path, err))
			return problems
		}
		// Ownership unknown on this filesystem; nothing to compare.
		if uid == "" && gid == "" {
			return problems
		}
		if expected.UID != "" && uid != expected.UID {
			problems = append(problems, fmt.Sprintf("%s owned by uid %s, want %s", path, uid, expected.UID))
		}
		if expected.GID != "" && gid != expected.GID {
			problems = append(problems, fmt.Sprintf("%s group-owned by gid %s, want %s", path, gid, expected.GID))
		}
	}
	return problems
}
