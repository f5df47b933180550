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

import "os/user"

// UserLookup resolves local account names to user records. Tests inject
// a mock so no real accounts are needed.
type UserLookup interface {
	Lookup(username string) (*user.User, error)
}

// OsUserLookup resolves against the host's user database.
type OsUserLookup struct{}

func (OsUserLookup) Lookup(username string) (*user.User, error) {
	return user.Lookup(username)
}
