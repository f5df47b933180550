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
	"bytes"

	"github.com/lendkey/lendkey/grant/files"
	"golang.org/x/crypto/ssh"
)

// Enable grants cfg.SecondaryAccount the master account's key access.
//
// The backup file is written before the key file is touched, so its
// existence always implies the snapshot is complete. If the append that
// follows fails, the intermediate state (backup present, keys possibly
// half-written) is left for the next run or manual inspection; a later
// disable still restores the original content.
func (g *Granter) Enable(cfg Config) Result {
	if cfg.MasterAccount == "" {
		return Failed("enable requires a master account")
	}
	if cfg.SecondaryAccount == "" {
		return Failed("enable requires a secondary account")
	}

	master, _, err := g.resolve(cfg.MasterAccount, cfg.keyFileName())
	if err != nil {
		return Failed("resolving master account %q: %v", cfg.MasterAccount, err)
	}
	secondary, secUser, err := g.resolve(cfg.SecondaryAccount, cfg.keyFileName())
	if err != nil {
		return Failed("resolving secondary account %q: %v", cfg.SecondaryAccount, err)
	}
	g.debugf("enable: master key file %s, secondary key file %s", master.keyFile, secondary.keyFile)

	masterExists, err := g.Ops.Exists(master.keyFile)
	if err != nil {
		return Failed("checking %s: %v", master.keyFile, err)
	}
	if !masterExists {
		return Skipped("no master key, cannot enable")
	}

	backupExists, err := g.Ops.Exists(secondary.backup)
	if err != nil {
		return Failed("checking %s: %v", secondary.backup, err)
	}
	if backupExists {
		return Skipped("already enabled")
	}

	dirExists, err := g.Ops.Exists(secondary.sshDir)
	if err != nil {
		return Failed("checking %s: %v", secondary.sshDir, err)
	}
	if !dirExists {
		g.debugf("enable: creating %s", secondary.sshDir)
		if err := g.Ops.MkdirAllWithPerm(secondary.sshDir, files.ModeSSHDir); err != nil {
			return Failed("creating %s: %v", secondary.sshDir, err)
		}
		if err := g.Ops.Chown(secondary.sshDir, secUser.Uid, secUser.Gid); err != nil {
			return Failed("setting ownership of %s: %v", secondary.sshDir, err)
		}
	}

	// Snapshot the key file before mutating it. A secondary account with
	// no key file yet gets an empty backup, so a later disable restores
	// an empty file rather than removing it.
	var original []byte
	keyFileExists, err := g.Ops.Exists(secondary.keyFile)
	if err != nil {
		return Failed("checking %s: %v", secondary.keyFile, err)
	}
	if keyFileExists {
		original, err = g.Ops.ReadFile(secondary.keyFile)
		if err != nil {
			return Failed("reading %s: %v", secondary.keyFile, err)
		}
	}
	if err := g.Ops.WriteFile(secondary.backup, original, files.ModeKeyFile); err != nil {
		return Failed("writing backup %s: %v", secondary.backup, err)
	}
	if err := g.Ops.Chown(secondary.backup, secUser.Uid, secUser.Gid); err != nil {
		return Failed("setting ownership of %s: %v", secondary.backup, err)
	}

	masterKeys, err := g.Ops.ReadFile(master.keyFile)
	if err != nil {
		return Failed("reading %s: %v", master.keyFile, err)
	}
	if err := g.Ops.AppendFile(secondary.keyFile, masterKeys, files.ModeKeyFile); err != nil {
		return Failed("appending to %s: %v", secondary.keyFile, err)
	}
	if err := g.Ops.Chown(secondary.keyFile, secUser.Uid, secUser.Gid); err != nil {
		return Failed("setting ownership of %s: %v", secondary.keyFile, err)
	}

	return Changed("delegated %d key(s) from %s to %s",
		countAuthorizedKeys(masterKeys), cfg.MasterAccount, cfg.SecondaryAccount)
}

// countAuthorizedKeys reports how many parseable public keys data holds.
// Purely informational: the append above is byte-exact regardless of
// what parses.
func countAuthorizedKeys(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if _, _, _, _, err := ssh.ParseAuthorizedKey(line); err == nil {
			n++
		}
	}
	return n
}
