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

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lendkey/lendkey/grant"
	"github.com/thediveo/enumflag/v2"
)

// Format selects how a result is rendered on stdout.
type Format enumflag.Flag

const (
	// FormatText prints "<status>: <msg>" for humans.
	FormatText Format = iota
	// FormatJSON prints the runner payload {changed, skipped, msg} as a
	// single JSON object, for consumption by a provisioning runner.
	FormatJSON
)

// FormatIDs maps Format values to their flag spellings.
var FormatIDs = map[Format][]string{
	FormatText: {"text"},
	FormatJSON: {"json"},
}

// renderResult writes res to w in the requested format.
func renderResult(w io.Writer, format Format, res grant.Result) error {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(res.Payload())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s\n", res.Status, res.Msg)
		return err
	}
}
