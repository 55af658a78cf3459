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
package screen

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// cellWidth returns the number of screen columns taken by c when it starts
// at screen column x. Tabs run to the next tab stop and other control
// characters are shown as a single '?'.
func cellWidth(c rune, x int) int {
	if c == '\t' {
		return tabWidth - x%tabWidth
	}
	if unicode.IsControl(c) {
		return 1
	}
	return runewidth.RuneWidth(c)
}

// DisplayColumn returns the screen column of character col in line.
func DisplayColumn(line []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += cellWidth(line[i], x)
	}
	return x
}

// fitText cuts text to at most cols screen columns.
func fitText(text string, cols int) string {
	width := 0
	for i, c := range text {
		w := runewidth.RuneWidth(c)
		if width+w > cols {
			return text[0:i]
		}
		width += w
	}
	return text
}
