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
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	red "github.com/timburks/red/types"
)

// A Window draws a View into a Display: the visible lines of text, then an
// info bar and a message bar on the last two rows.
type Window struct {
	size   red.Size // size of the text area
	offset red.Size // display offset, in rows and screen columns
}

func NewWindow() *Window {
	return &Window{}
}

// SetSize sets the size of the whole display. The bottom two rows are
// reserved for the bars.
func (w *Window) SetSize(s red.Size) {
	w.size = s
	w.size.Rows -= 2
	if w.size.Rows < 1 {
		w.size.Rows = 1
	}
}

func (w *Window) GetSize() red.Size {
	return w.size
}

func (w *Window) GetOffset() red.Size {
	return w.offset
}

func (w *Window) Render(v red.View, d red.Display) {
	cursor := v.GetCursor()
	cursorCol := DisplayColumn([]rune(v.GetLine(cursor.Row)), cursor.Col)
	w.adjustDisplayOffsetForScrolling(cursor.Row, cursorCol)

	for i := 0; i < w.size.Rows; i++ {
		row := i + w.offset.Rows
		if row < v.GetRowCount() {
			w.renderLine(d, i, v.GetLine(row))
		} else {
			d.SetCell(0, i, '~', false)
		}
	}

	w.renderText(d, w.size.Rows, w.computeInfoBarText(v), true)
	w.renderText(d, w.size.Rows+1, computeMessageBarText(v), false)

	d.SetCursor(red.Point{
		Col: cursorCol - w.offset.Cols,
		Row: cursor.Row - w.offset.Rows,
	})
}

func (w *Window) renderLine(d red.Display, y int, line string) {
	put := func(x int, c rune) {
		if x >= 0 && x < w.size.Cols {
			d.SetCell(x, y, c, false)
		}
	}
	x := 0
	for _, c := range line {
		width := cellWidth(c, x)
		col := x - w.offset.Cols
		switch {
		case c == '\t':
			for j := 0; j < width; j++ {
				put(col+j, ' ')
			}
		case unicode.IsControl(c):
			put(col, '?')
		case width > 0 && col+width <= w.size.Cols:
			put(col, c)
		}
		x += width
		if x-w.offset.Cols >= w.size.Cols {
			break
		}
	}
}

func (w *Window) renderText(d red.Display, y int, text string, reversed bool) {
	x := 0
	for _, c := range fitText(text, w.size.Cols) {
		d.SetCell(x, y, c, reversed)
		x += runewidth.RuneWidth(c)
	}
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(v red.View) string {
	cursor := v.GetCursor()
	finalText := fmt.Sprintf(" %d/%d:%d ", cursor.Row+1, v.GetRowCount(), cursor.Col+1)
	name := v.GetFileName()
	if name == "" {
		name = "[new file]"
	}
	text := fmt.Sprintf(" %s  %s", strings.ToUpper(v.GetMode().String()), name)
	if v.IsDirty() {
		text += " [+]"
	}
	padding := w.size.Cols - runewidth.StringWidth(text) - len(finalText)
	if padding > 0 {
		text += strings.Repeat(" ", padding)
	}
	return text + finalText
}

func computeMessageBarText(v red.View) string {
	if message := v.GetMessage(); message != "" {
		return message
	}
	if v.GetMode() == red.ModeInsert {
		return "-- INSERT --"
	}
	return ""
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling(row, col int) {
	if row < w.offset.Rows {
		// scroll up
		w.offset.Rows = row
	}
	if row-w.offset.Rows >= w.size.Rows {
		// scroll down
		w.offset.Rows = row - w.size.Rows + 1
	}
	if col < w.offset.Cols {
		// scroll left
		w.offset.Cols = col
	}
	if col-w.offset.Cols >= w.size.Cols {
		// scroll right
		w.offset.Cols = col - w.size.Cols + 1
	}
}
