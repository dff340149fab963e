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

// Package errors defines the error type shared across augsuggest: one
// that carries a path into the Augeas tree alongside its message, so the
// CLI can report which node a problem came from.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// New is a convenience wrapper for [errors.New] in the standard library.
// It does not return an augsuggest Error.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain assignable to target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Message implements the error interface and carries its format and
// arguments separately, should a caller ever want to localize it.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef creates an error message for human consumption.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

// Msg returns the unformatted message and its arguments.
func (m *Message) Msg() (format string, args []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the common error type augsuggest reports: a message together
// with the Augeas path it concerns, when there is one.
type Error interface {
	error
	// Path returns the Augeas path the error concerns, or nil.
	Path() []string
	Msg() (format string, args []interface{})
}

// Path returns the path of err, if err is an Error.
func Path(err error) []string {
	if e := Error(nil); As(err, &e) {
		return e.Path()
	}
	return nil
}

// Newf creates an Error at the given path with the given message.
func Newf(path []string, format string, args ...interface{}) Error {
	return &pathError{path: path, Message: NewMessagef(format, args...)}
}

// Wrapf creates an Error at the given path, wrapping cause for context.
func Wrapf(cause error, path []string, format string, args ...interface{}) Error {
	return &wrapped{main: Newf(path, format, args...), wrap: cause}
}

type pathError struct {
	path []string
	Message
}

func (e *pathError) Path() []string { return e.path }

type wrapped struct {
	main Error
	wrap error
}

func (e *wrapped) Error() string {
	if e.wrap == nil {
		return e.main.Error()
	}
	return fmt.Sprintf("%s: %s", e.main.Error(), e.wrap)
}

func (e *wrapped) Path() []string                        { return e.main.Path() }
func (e *wrapped) Msg() (format string, args []interface{}) { return e.main.Msg() }
func (e *wrapped) Unwrap() error                          { return e.wrap }

// Promote converts a plain error into an Error, attaching msg as context
// if it isn't one already.
func Promote(err error, msg string) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return Wrapf(err, nil, "%s", msg)
}

// List is a list of Errors, itself an error.
type List []Error

// Add appends err to the list, flattening if err is itself a List.
func (p *List) Add(err error) {
	switch e := err.(type) {
	case nil:
		return
	case List:
		*p = append(*p, e...)
	case Error:
		*p = append(*p, e)
	default:
		*p = append(*p, Promote(e, ""))
	}
}

// Err returns an error equivalent to the list, or nil if it is empty.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

func (p List) Error() string {
	format, args := p.Msg()
	return fmt.Sprintf(format, args...)
}

// Msg reports the unformatted message of the first error in the list;
// with more than one error, it is that error followed by a count of the
// rest.
func (p List) Msg() (format string, args []interface{}) {
	switch len(p) {
	case 0:
		return "no errors", nil
	case 1:
		return p[0].Msg()
	default:
		return "%s (and %d more errors)", []interface{}{p[0], len(p) - 1}
	}
}

// Path reports the path of the first error in the list.
func (p List) Path() []string {
	if len(p) == 0 {
		return nil
	}
	return p[0].Path()
}

// Config controls how Print renders an error.
type Config struct {
	// Format formats one line and writes it to w; it defaults to
	// fmt.Fprintf.
	Format func(w io.Writer, format string, args ...interface{})
}

var zeroConfig = &Config{}

// Print writes err to w, one error per line if err is a List, prefixing
// each line with its path when one is present.
func Print(w io.Writer, err error, cfg *Config) {
	if err == nil {
		return
	}
	if cfg == nil {
		cfg = zeroConfig
	}
	fprintf := cfg.Format
	if fprintf == nil {
		fprintf = func(w io.Writer, format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }
	}
	for _, e := range errorsOf(err) {
		if path := strings.Join(e.Path(), "/"); path != "" {
			fprintf(w, "%s: ", path)
		}
		fprintf(w, "%s\n", e.Error())
	}
}

// Details is a convenience wrapper for Print that returns the text.
func Details(err error, cfg *Config) string {
	var b strings.Builder
	Print(&b, err, cfg)
	return b.String()
}

func errorsOf(err error) []Error {
	switch e := err.(type) {
	case List:
		return e
	case Error:
		return []Error{e}
	default:
		return []Error{Promote(err, "")}
	}
}
