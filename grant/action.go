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

import "fmt"

// Action selects which operation Apply dispatches to.
type Action int

const (
	ActionUnspecified Action = iota
	ActionEnable
	ActionDisable
	ActionStatus
)

func (a Action) String() string {
	switch a {
	case ActionEnable:
		return "enable"
	case ActionDisable:
		return "disable"
	case ActionStatus:
		return "status"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction maps the runner-facing action parameter onto an Action.
// Unknown values are rejected here, before any filesystem access.
func ParseAction(s string) (Action, error) {
	switch s {
	case "enable":
		return ActionEnable, nil
	case "disable":
		return ActionDisable, nil
	case "status":
		return ActionStatus, nil
	default:
		return ActionUnspecified, fmt.Errorf("unknown action %q, want enable, disable or status", s)
	}
}
