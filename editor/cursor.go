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

import (
	"unicode"

	red "github.com/timburks/red/types"
)

// A Cursor is a position in a Buffer, kept as row and column indices.
// The column may equal the line length, meaning "after the last character".
// A Cursor never holds on to buffer contents; every method that can leave
// it stale takes the buffer and clamps against it.
type Cursor struct {
	row int
	col int
}

func (c *Cursor) Position() red.Point {
	return red.Point{Row: c.row, Col: c.col}
}

// SetPosition moves the cursor to p, clamped to the buffer.
func (c *Cursor) SetPosition(b *Buffer, p red.Point) {
	c.row = p.Row
	c.col = p.Col
	c.Clamp(b)
}

// Clamp restores 0 <= row < LineCount() and 0 <= col <= LineLength(row).
func (c *Cursor) Clamp(b *Buffer) {
	c.row = clipToRange(c.row, 0, b.LineCount()-1)
	c.col = clipToRange(c.col, 0, b.LineLength(c.row))
}

// MoveBy moves the cursor by a number of rows and columns, stopping at the
// edges of the buffer and of the current line.
func (c *Cursor) MoveBy(b *Buffer, rows, cols int) {
	c.row += rows
	c.col += cols
	c.Clamp(b)
}

// Move moves the cursor one character in a direction.
func (c *Cursor) Move(b *Buffer, direction red.Direction) {
	switch direction {
	case red.MoveUp:
		c.MoveBy(b, -1, 0)
	case red.MoveDown:
		c.MoveBy(b, 1, 0)
	case red.MoveLeft:
		c.MoveBy(b, 0, -1)
	case red.MoveRight:
		c.MoveBy(b, 0, 1)
	}
}

// MoveToBoundary moves left or right to the next place on the current line
// where blanks and non-blanks meet, or up or down to the next blank line.
// It stops at the edges of the line or the buffer and never wraps.
func (c *Cursor) MoveToBoundary(b *Buffer, direction red.Direction) {
	switch direction {
	case red.MoveLeft:
		c.col = previousBoundary(c.line(b), c.col)
	case red.MoveRight:
		c.col = nextBoundary(c.line(b), c.col)
	case red.MoveUp:
		if c.row > 0 {
			c.row--
			for c.row > 0 && !b.IsBlankLine(c.row) {
				c.row--
			}
		}
	case red.MoveDown:
		last := b.LineCount() - 1
		if c.row < last {
			c.row++
			for c.row < last && !b.IsBlankLine(c.row) {
				c.row++
			}
		}
	}
	c.Clamp(b)
}

func (c *Cursor) line(b *Buffer) []rune {
	text, err := b.GetRunes(c.row)
	if err != nil {
		return nil
	}
	return text
}

// positions before the start and past the end of a line count as blank
func isBlankAt(text []rune, col int) bool {
	if col < 0 || col >= len(text) {
		return true
	}
	return unicode.IsSpace(text[col])
}

func nextBoundary(text []rune, col int) int {
	for k := col + 1; k <= len(text); k++ {
		if isBlankAt(text, k) != isBlankAt(text, k-1) {
			return k
		}
	}
	return len(text)
}

func previousBoundary(text []rune, col int) int {
	if col > len(text) {
		col = len(text)
	}
	for k := col - 1; k > 0; k-- {
		if isBlankAt(text, k) != isBlankAt(text, k-1) {
			return k
		}
	}
	return 0
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
