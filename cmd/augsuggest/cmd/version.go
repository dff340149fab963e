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

package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print augsuggest version",
		RunE:  mkRunE(c, runVersion),
	}
	return cmd
}

// version can be set at build time via -ldflags to inject a release
// version string.
var version string

func runVersion(cmd *Command, args []string) error {
	w := cmd.OutOrStdout()

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("unknown error reading build info")
	}
	fmt.Fprintf(w, "augsuggest version %s\n\n", moduleVersion(bi))
	fmt.Fprintf(w, "go version %s\n", runtime.Version())
	for _, s := range bi.Settings {
		if s.Value == "" {
			continue
		}
		// The padding keeps keys and values aligned; 16 is enough for
		// every key build info currently emits, including "vcs.revision".
		fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
	}
	return nil
}

// moduleVersion returns the augsuggest module's own version as recorded in
// bi, preferring a version baked in at build time via -ldflags.
func moduleVersion(bi *debug.BuildInfo) string {
	if version != "" {
		return version
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "(devel)"
}
