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
	"io"

	"github.com/lendkey/lendkey/grant"
	"github.com/spf13/cobra"
)

// StatusCmd reports whether a grant is active. Read-only, so no
// elevation is required.
type StatusCmd struct {
	// Inputs
	Granter      *grant.Granter
	Out          io.Writer
	Format       Format
	SecondaryArg string
	KeyFileArg   string
}

// Run executes the status check and renders the result.
// Returns exit code: 0 for ok, 1 for failed.
func (c *StatusCmd) Run() int {
	res := c.Granter.Apply(grant.Config{
		Action:           grant.ActionStatus,
		SecondaryAccount: c.SecondaryArg,
		KeyFileName:      c.KeyFileArg,
	})
	_ = renderResult(c.Out, c.Format, res)
	if res.Status == grant.StatusFailed {
		return 1
	}
	return 0
}

func NewStatusCmd(opts *rootOptions) *cobra.Command {
	var secondary, keyFile string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether key access is currently delegated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statusCmd := &StatusCmd{
				Granter:      opts.granter(),
				Out:          cmd.OutOrStdout(),
				Format:       opts.Format,
				SecondaryArg: secondary,
				KeyFileArg:   opts.keyFileName(keyFile),
			}
			if statusCmd.Run() != 0 {
				return ErrOperationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&secondary, "secondary", "", "account to inspect")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "key file name under the account's .ssh directory")
	_ = cmd.MarkFlagRequired("secondary")
	return cmd
}
