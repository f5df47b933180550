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

// Status classifies the outcome of a single invocation. Every invocation
// reports exactly one status; there is no partial or intermediate state.
type Status int

const (
	// StatusOk means the operation ran, inspected state, and nothing
	// needed to change (status reports use this).
	StatusOk Status = iota
	// StatusChanged means the host was mutated.
	StatusChanged
	// StatusSkipped means a precondition was not met and the operation
	// deliberately did nothing. Not an error.
	StatusSkipped
	// StatusFailed means a filesystem or lookup operation failed. The
	// host may be in an intermediate state; no rollback is attempted.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusChanged:
		return "changed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one grant operation, returned (never thrown)
// so callers branch on it without error-based control flow.
type Result struct {
	Status Status
	Msg    string
}

// Payload is the wire form consumed by the provisioning runner.
type Payload struct {
	Changed bool   `json:"changed"`
	Skipped bool   `json:"skipped"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg"`
}

// Payload converts the result into the runner's record shape.
func (r Result) Payload() Payload {
	return Payload{
		Changed: r.Status == StatusChanged,
		Skipped: r.Status == StatusSkipped,
		Failed:  r.Status == StatusFailed,
		Msg:     r.Msg,
	}
}

func Ok(format string, args ...any) Result {
	return Result{Status: StatusOk, Msg: fmt.Sprintf(format, args...)}
}

func Changed(format string, args ...any) Result {
	return Result{Status: StatusChanged, Msg: fmt.Sprintf(format, args...)}
}

func Skipped(format string, args ...any) Result {
	return Result{Status: StatusSkipped, Msg: fmt.Sprintf(format, args...)}
}

func Failed(format string, args ...any) Result {
	return Result{Status: StatusFailed, Msg: fmt.Sprintf(format, args...)}
}
