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

package suggest

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestQuoteValuePrefersSingle(t *testing.T) {
	v := "hello"
	qt.Assert(t, qt.Equals(quoteValue(&v), "'hello'"))
}

func TestQuoteValueNil(t *testing.T) {
	qt.Assert(t, qt.Equals(quoteValue(nil), ""))
}

func TestQuoteValueSingleQuoteUsesDouble(t *testing.T) {
	v := "it's fine"
	qt.Assert(t, qt.Equals(quoteValue(&v), `"it's fine"`))
}

func TestQuoteValueBothQuotesEscapesSingle(t *testing.T) {
	v := `a'b"c`
	qt.Assert(t, qt.Equals(quoteValue(&v), `'a\'b"c'`))
}

func TestQuoteValueEscapesControls(t *testing.T) {
	v := "a\nb\tc\\d"
	qt.Assert(t, qt.Equals(quoteValue(&v), `'a\nb\tc\\d'`))
}

func TestRegexEscape(t *testing.T) {
	qt.Assert(t, qt.Equals(regexEscape(`a.b*c[d]e\f`), `a\.b\*c\[d.e.f`))
}
