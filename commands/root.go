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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lendkey/lendkey/commands/config"
	"github.com/lendkey/lendkey/grant"
	"github.com/lendkey/lendkey/grant/files"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// DefaultFs can be set by tests to use an in-memory filesystem. If nil,
// the commands will use the real OS filesystem.
var DefaultFs afero.Fs

// DefaultUserLookup can be set by tests to avoid real account lookups.
// If nil, the host's user database is used.
var DefaultUserLookup grant.UserLookup

// IsElevatedFunc is a testable indirection for elevation checks. By
// default it points to the platform-specific IsElevated implementation
// but tests may override it.
var IsElevatedFunc = IsElevated

// ErrOperationFailed signals a failed result to main. The result itself
// has already been rendered by the time this is returned.
var ErrOperationFailed = errors.New("operation failed")

// rootOptions carries the resolved persistent-flag state into the
// subcommands.
type rootOptions struct {
	Format     Format
	ConfigPath string
	LogDir     string
	Verbosity  int

	cfg *config.Config
}

func (o *rootOptions) fs() afero.Fs {
	if DefaultFs != nil {
		return DefaultFs
	}
	return afero.NewOsFs()
}

func (o *rootOptions) granter() *grant.Granter {
	users := DefaultUserLookup
	if users == nil {
		users = grant.OsUserLookup{}
	}
	return &grant.Granter{
		Ops:       files.NewOsOps(o.fs()),
		Users:     users,
		Verbosity: o.Verbosity,
	}
}

// keyFileName applies the precedence flag > config file > built-in
// default.
func (o *rootOptions) keyFileName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return o.cfg.DefaultKeyFile
}

// setup loads the config file and redirects logging. When a log
// directory is configured, logs go to a file in that directory AND
// stderr.
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.fs(), o.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", o.ConfigPath, err)
	}
	o.cfg = cfg

	logDir := o.LogDir
	if logDir == "" {
		logDir = cfg.LogDir
	}
	if logDir != "" {
		logFilePath := filepath.Join(logDir, "lendkey.log")
		logFile, err := o.fs().OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o660)
		if err != nil {
			log.Printf("Failed to open log for writing: %v \n", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, logFile))
		}
	} else {
		log.SetOutput(os.Stderr)
	}
	return nil
}

// requireElevated renders a failed result when the process lacks the
// privileges to manage another account's files, so a provisioning
// runner sees a proper payload instead of a mid-operation EPERM.
func requireElevated(out io.Writer, format Format, action string) error {
	elevated, err := IsElevatedFunc()
	if err != nil {
		res := grant.Failed("checking privileges: %v", err)
		_ = renderResult(out, format, res)
		return ErrOperationFailed
	}
	if !elevated {
		res := grant.Failed("%s must run elevated (root) to manage another account's key files", action)
		_ = renderResult(out, format, res)
		return ErrOperationFailed
	}
	return nil
}

// NewRootCmd builds the lendkey command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lendkey",
		Short: "Temporarily lend one account's SSH key access to another",
		Long: "lendkey grants a secondary system account the same SSH authorized-key\n" +
			"access as a master account, and later revokes it by restoring the\n" +
			"secondary account's original key file byte-for-byte.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.Var(
		enumflag.New(&opts.Format, "format", FormatIDs, enumflag.EnumCaseInsensitive),
		"format", "output format; one of 'text', 'json'")
	pf.StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the site defaults file")
	pf.StringVar(&opts.LogDir, "log-dir", "", "directory to append lendkey.log to, in addition to stderr")
	pf.CountVarP(&opts.Verbosity, "verbose", "v", "increase logging verbosity")

	rootCmd.AddCommand(NewEnableCmd(opts))
	rootCmd.AddCommand(NewDisableCmd(opts))
	rootCmd.AddCommand(NewStatusCmd(opts))
	return rootCmd
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
