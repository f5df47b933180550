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

// Disable revokes a grant by moving the backup file back over the
// secondary account's key file, discarding everything written to the
// key file during the grant window. The rename consumes the backup, so
// the grant state flips atomically with the content restore.
//
// The process typically runs elevated, so the restored file is chowned
// back to the secondary account; otherwise sshd would refuse the file
// and the account could no longer log in with its own keys.
func (g *Granter) Disable(cfg Config) Result {
	if cfg.SecondaryAccount == "" {
		return Failed("disable requires a secondary account")
	}

	secondary, secUser, err := g.resolve(cfg.SecondaryAccount, cfg.keyFileName())
	if err != nil {
		return Failed("resolving secondary account %q: %v", cfg.SecondaryAccount, err)
	}
	g.debugf("disable: backup %s, key file %s", secondary.backup, secondary.keyFile)

	backupExists, err := g.Ops.Exists(secondary.backup)
	if err != nil {
		return Failed("checking %s: %v", secondary.backup, err)
	}
	if !backupExists {
		return Skipped("no backup file, cannot disable")
	}

	if err := g.Ops.Rename(secondary.backup, secondary.keyFile); err != nil {
		return Failed("restoring %s from %s: %v", secondary.keyFile, secondary.backup, err)
	}
	if err := g.Ops.Chown(secondary.keyFile, secUser.Uid, secUser.Gid); err != nil {
		return Failed("setting ownership of %s: %v", secondary.keyFile, err)
	}

	return Changed("restored original %s for %s", cfg.keyFileName(), cfg.SecondaryAccount)
}
