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

package grant

import (
	"strings"

	"github.com/lendkey/lendkey/grant/files"
)

// Status reports whether a grant is active for the secondary account,
// without mutating anything. The backup file's existence is the single
// source of truth. When the key file exists, lax permissions or foreign
// ownership are appended to the message as advisories.
func (g *Granter) Status(cfg Config) Result {
	if cfg.SecondaryAccount == "" {
		return Failed("status requires a secondary account")
	}

	secondary, secUser, err := g.resolve(cfg.SecondaryAccount, cfg.keyFileName())
	if err != nil {
		return Failed("resolving secondary account %q: %v", cfg.SecondaryAccount, err)
	}

	backupExists, err := g.Ops.Exists(secondary.backup)
	if err != nil {
		return Failed("checking %s: %v", secondary.backup, err)
	}

	state := "disabled"
	if backupExists {
		state = "enabled"
	}
	msg := state + " for " + cfg.SecondaryAccount

	keyFileExists, err := g.Ops.Exists(secondary.keyFile)
	if err != nil {
		return Failed("checking %s: %v", secondary.keyFile, err)
	}
	if !keyFileExists {
		return Ok("%s (no %s)", msg, cfg.keyFileName())
	}

	problems := files.CheckPerms(g.Ops, secondary.keyFile, files.PermInfo{
		Mode: files.ModeKeyFile,
		UID:  secUser.Uid,
		GID:  secUser.Gid,
	})
	if len(problems) > 0 {
		msg += "; warning: " + strings.Join(problems, "; ")
	}
	return Ok("%s", msg)
}
