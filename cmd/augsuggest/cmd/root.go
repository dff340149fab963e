// Copyright 2024 The augsuggest Authors
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

// Package cmd implements the augsuggest command line tool: a thin cobra
// tree that wires parsed flags into internal/suggest.Config and internal/
// augeas.Tree and runs the five-stage pipeline over one Augeas-managed
// file.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"augeas.dev/go/suggest/internal/augeas"
	"augeas.dev/go/suggest/internal/augeas/augtest"
	"augeas.dev/go/suggest/internal/errors"
	"augeas.dev/go/suggest/internal/path"
	"augeas.dev/go/suggest/internal/suggest"
)

// New creates the top-level command.
func New(args []string) (*Command, error) {
	cmd := &cobra.Command{
		Use:   "augsuggest",
		Short: "augsuggest suggests content-based path predicates for an Augeas tree and emits a set-script",

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: cmd, root: cmd}
	addGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(newSuggestCmd(c))
	cmd.AddCommand(newVersionCmd(c))

	cmd.SetArgs(args)
	return c, nil
}

// rootWorkingDir avoids repeated calls to [os.Getwd].
var rootWorkingDir = func() string {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot get current directory: %v\n", err)
		os.Exit(1)
	}
	return wd
}()

// Main runs the augsuggest tool and returns the code for passing to
// os.Exit.
func Main() int {
	cmd, _ := New(os.Args[1:])
	if err := cmd.Run(context.Background()); err != nil {
		if err != ErrPrintedError {
			exitOnErr(cmd, err)
		}
		return 1
	}
	return 0
}

// Command wraps a *cobra.Command the way the teacher's own cmd.Command
// does, giving every subcommand a uniform error-printing and exit-code
// story without leaking cobra everywhere it's used.
type Command struct {
	*cobra.Command

	root *cobra.Command

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = len(b) > 0
	return c.Command.OutOrStderr().Write(b)
}

// Stderr returns a writer that should be used for error messages. Writing
// to it results in the command's exit code being 1.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// ErrPrintedError indicates error messages have already been printed
// directly to stderr, so Main should not print them again.
var ErrPrintedError = errors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) error {
	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

// newSuggestCmd implements the one real subcommand: suggest drives all
// five pipeline stages over a single file and writes the resulting
// set-script to --outfile (stdout by default).
func newSuggestCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "emit a set-script that reconstructs an Augeas-managed file's tree",
		Args:  cobra.ExactArgs(1),
		RunE:  mkRunE(c, runSuggest),
	}
	addSuggestFlags(cmd.Flags())
	addOutFlags(cmd.Flags())
	return cmd
}

func runSuggest(cmd *Command, args []string) error {
	file := args[0]
	if !path.IsAbs(file) {
		file = path.Clean(rootWorkingDir + "/" + file)
	}
	lens := flagLens.String(cmd)
	if lens == "" {
		return errors.Newf([]string{file}, "--lens is required")
	}
	cfg := buildConfig(cmd)
	target, err := path.ValidateTarget(cfg.Target)
	if err != nil {
		return err
	}
	cfg.Target = target

	if flagVerbose.Bool(cmd) {
		fmt.Fprintf(cmd.Stderr(), "augsuggest: loading %q with lens %q\n", file, lens)
	}

	tree, closeTree, err := newTree()
	if err != nil {
		return err
	}
	script, diags, err := suggest.Run(tree, lens, file, suggest.FlagNone, cfg)
	if closeErr := closeTree(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	out, err := openOut(cmd)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.WriteString(out, script); err != nil {
		return errors.Wrapf(err, []string{file}, "writing output")
	}

	if !cfg.DiagnosticsInline {
		// These are informational, not fatal: an internal-consistency
		// diagnostic still produces a usable (if degenerate) script, so it
		// must not flip the process exit code to 1. Write past cmd.Stderr's
		// exit-code tracking.
		for _, d := range diags {
			fmt.Fprintf(cmd.Command.ErrOrStderr(), "# %s\n", d.Message)
		}
	}
	return nil
}

// newTree returns the suggest.Tree to drive and a closer to run once
// suggestion is done. It normally opens the real Augeas library; when
// AUGSUGGEST_FAKE_TREE names a JSON file of suggest.PathValue entries it
// instead loads an in-memory augtest.FakeTree, letting script tests drive
// the full CLI without a real Augeas installation.
func newTree() (suggest.Tree, func() error, error) {
	if fixture := os.Getenv("AUGSUGGEST_FAKE_TREE"); fixture != "" {
		data, err := os.ReadFile(fixture)
		if err != nil {
			return nil, nil, errors.Wrapf(err, []string{fixture}, "reading fake tree fixture")
		}
		var entries []suggest.PathValue
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, nil, errors.Wrapf(err, []string{fixture}, "decoding fake tree fixture")
		}
		return augtest.New(entries), func() error { return nil }, nil
	}
	tree := &augeas.Tree{}
	return tree, tree.Close, nil
}
