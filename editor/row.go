//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import "unicode"

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// returns a copy of the row's characters
func (r *Row) Runes() []rune {
	text := make([]rune, len(r.Text))
	copy(text, r.Text)
	return text
}

// IsBlank reports whether the row is empty or holds only whitespace.
func (r *Row) IsBlank() bool {
	for _, c := range r.Text {
		if !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}

// returns the text before a specified column
func (r *Row) TextBefore(col int) string {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col < 0 {
		col = 0
	}
	return string(r.Text[0:col])
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < 0 {
		col = 0
	}
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
