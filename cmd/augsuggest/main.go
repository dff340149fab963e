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

// Command augsuggest suggests content-based path predicates for an
// Augeas-managed configuration file and emits a `set`-script that
// reconstructs its tree.
package main

import (
	"os"

	"augeas.dev/go/suggest/cmd/augsuggest/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
