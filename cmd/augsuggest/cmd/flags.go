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
	"fmt"

	"github.com/spf13/pflag"
)

// Flags shared across the suggest command.
const (
	flagPretty  flagName = "pretty"
	flagRegexp  flagName = "regexp"
	flagNoSeq   flagName = "noseq"
	flagTarget  flagName = "target"
	flagLens    flagName = "lens"
	flagInline  flagName = "inline-diagnostics"
	flagVerbose flagName = "verbose"

	flagOutFile flagName = "outfile"
	flagForce   flagName = "force"

	// Hidden flags.
	flagCpuProfile flagName = "cpuprofile"
	flagMemProfile flagName = "memprofile"
)

func addSuggestFlags(f *pflag.FlagSet) {
	f.Bool(string(flagPretty), false,
		"align predicate values and separate sibling groups with blank lines")
	f.Int(string(flagRegexp), 0,
		"relax value predicates to a regexp() match keeping at least N characters of common prefix (0 disables); bare --regexp defaults N to 8")
	f.Lookup(string(flagRegexp)).NoOptDefVal = "8"
	f.Bool(string(flagNoSeq), false,
		"render numeric-leaf positions as /*/ instead of /seq::*/")
	f.String(string(flagTarget), "",
		"rename the loaded subtree to this absolute path before emission")
	f.StringP(string(flagLens), "l", "",
		"Augeas lens to apply to the file (required)")
	f.Bool(string(flagInline), false,
		"emit internal-consistency diagnostics as '# ...' comment lines in the script instead of stderr")
}

func addOutFlags(f *pflag.FlagSet) {
	f.StringP(string(flagOutFile), "o", "-",
		"filename to write the set-script to, or - for stdout")
	f.BoolP(string(flagForce), "f", false, "overwrite outfile if it already exists")
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false, "print progress to stderr")

	f.String(string(flagCpuProfile), "", "write a CPU profile to the specified file before exiting")
	f.MarkHidden(string(flagCpuProfile))
	f.String(string(flagMemProfile), "", "write an allocation profile to the specified file before exiting")
	f.MarkHidden(string(flagMemProfile))
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
