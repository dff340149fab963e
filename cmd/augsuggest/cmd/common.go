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
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"augeas.dev/go/suggest/internal/errors"
	"augeas.dev/go/suggest/internal/suggest"
)

type runFunction func(cmd *Command, args []string) error

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

// exitOnErr prints err to cmd's error writer using the project's own
// errors.Print, localized through x/text the same way the teacher links
// its CLI printer.
func exitOnErr(cmd *Command, err error) {
	if err == nil {
		return
	}
	p := message.NewPrinter(getLang())
	format := func(w io.Writer, format string, args ...interface{}) {
		p.Fprintf(w, format, args...)
	}
	errors.Print(cmd.Stderr(), err, &errors.Config{Format: format})
}

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd

		if cpuprofile := flagCpuProfile.String(c); cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return errors.Wrapf(err, nil, "creating CPU profile")
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return errors.Wrapf(err, nil, "starting CPU profile")
			}
			defer pprof.StopCPUProfile()
		}

		err := f(c, args)

		if memprofile := flagMemProfile.String(c); memprofile != "" {
			mf, ferr := os.Create(memprofile)
			if ferr != nil {
				return errors.Wrapf(ferr, nil, "creating memory profile")
			}
			defer mf.Close()
			runtime.GC()
			if werr := pprof.WriteHeapProfile(mf); werr != nil {
				return errors.Wrapf(werr, nil, "writing memory profile")
			}
		}

		return err
	}
}

// buildConfig reads the suggest.Config fields set by flags registered in
// addSuggestFlags, per SPEC_FULL.md §10.4: the CLI is the only place that
// reads flags, and the Config it builds is threaded by value from there
// into every pipeline stage.
func buildConfig(cmd *Command) suggest.Config {
	return suggest.Config{
		Pretty:            flagPretty.Bool(cmd),
		RegexpMinLen:      flagRegexp.Int(cmd),
		NoSeq:             flagNoSeq.Bool(cmd),
		Target:            flagTarget.String(cmd),
		DiagnosticsInline: flagInline.Bool(cmd),
	}
}

// openOut opens the destination named by --outfile, refusing to overwrite
// an existing file unless --force was given, mirroring the teacher's
// addOutFlags "filename or - for stdout" convention.
func openOut(cmd *Command) (io.WriteCloser, error) {
	name := flagOutFile.String(cmd)
	if name == "" || name == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !flagForce.Bool(cmd) {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, []string{name}, "opening output file")
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
