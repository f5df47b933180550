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

// Package grant temporarily delegates a master account's SSH
// authorized-key access to a secondary account on the local host, and
// revokes it again by restoring the secondary account's original key
// file byte-for-byte.
//
// The sole persisted state is the backup file next to the secondary
// account's key file: its existence means the grant is active. Enable
// snapshots the key file into the backup and appends the master's keys;
// disable moves the backup back over the key file and re-applies the
// secondary account's ownership. Both operations are idempotent: a
// second enable or disable is a skipped no-op.
//
// Invocations against the same (secondary account, key file) pair must
// be serialized by the caller; concurrent invocations race on the
// backup file and the outcome is undefined.
package grant

import (
	"log"
	"os/user"
	"path/filepath"

	"github.com/lendkey/lendkey/grant/files"
	"github.com/spf13/afero"
)

// DefaultKeyFileName is the key file mutated when the invocation does
// not name one.
const DefaultKeyFileName = "authorized_keys"

// backupSuffix is appended to the key file name to form the backup file
// name. Fixed, not configurable.
const backupSuffix = "_backup"

// Config is the immutable per-invocation configuration. It is built once
// at the entry point and passed explicitly; operations never consult
// anything else.
type Config struct {
	Action Action
	// MasterAccount is the account whose keys are delegated. Required
	// for enable, ignored by disable and status.
	MasterAccount string
	// SecondaryAccount is the account receiving (or losing) access.
	SecondaryAccount string
	// KeyFileName is the file name under each account's .ssh directory.
	// Empty means DefaultKeyFileName.
	KeyFileName string
}

func (c Config) keyFileName() string {
	if c.KeyFileName == "" {
		return DefaultKeyFileName
	}
	return c.KeyFileName
}

// Granter executes grant operations against one host. The zero value is
// not usable; construct with New or populate every field.
type Granter struct {
	Ops       files.Ops
	Users     UserLookup
	Verbosity int
}

// New returns a Granter operating on the real host filesystem and user
// database.
func New() *Granter {
	return &Granter{
		Ops:   files.NewOsOps(afero.NewOsFs()),
		Users: OsUserLookup{},
	}
}

// Apply validates cfg and dispatches on its action. Unknown actions are
// rejected before any filesystem access.
func (g *Granter) Apply(cfg Config) Result {
	switch cfg.Action {
	case ActionEnable:
		return g.Enable(cfg)
	case ActionDisable:
		return g.Disable(cfg)
	case ActionStatus:
		return g.Status(cfg)
	default:
		return Failed("unknown action %q, want enable, disable or status", cfg.Action)
	}
}

func (g *Granter) debugf(format string, args ...any) {
	if g.Verbosity >= 1 {
		log.Printf("DEBUG: "+format, args...)
	}
}

// keyPaths holds the resolved locations for one account's key material.
type keyPaths struct {
	sshDir  string
	keyFile string
	backup  string
}

func (g *Granter) resolve(account string, keyFileName string) (keyPaths, *user.User, error) {
	u, err := g.Users.Lookup(account)
	if err != nil {
		return keyPaths{}, nil, err
	}
	sshDir := filepath.Join(u.HomeDir, ".ssh")
	keyFile := filepath.Join(sshDir, keyFileName)
	return keyPaths{
		sshDir:  sshDir,
		keyFile: keyFile,
		backup:  keyFile + backupSuffix,
	}, u, nil
}
