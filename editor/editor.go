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
	"github.com/rs/zerolog/log"

	red "github.com/timburks/red/types"
)

// The Editor manages text editing in a single buffer.
// Every primitive that changes the buffer clamps the cursor before returning,
// and every primitive checks its rows before changing anything, so a failed
// primitive leaves the editor as it found it.
type Editor struct {
	storage   red.Storage
	buffer    *Buffer
	cursor    Cursor
	clipboard Clipboard
	fileName  string
	dirty     bool
}

func NewEditor(storage red.Storage) *Editor {
	return &Editor{
		storage: storage,
		buffer:  NewBuffer(nil),
	}
}

func (e *Editor) ReadFile(path string) error {
	lines, err := e.storage.Load(path)
	if err != nil {
		return err
	}
	e.fileName = path
	e.LoadLines(lines)
	log.Info().Str("file", path).Int("lines", e.buffer.LineCount()).Msg("loaded")
	return nil
}

// WriteFile saves the buffer to path, or to the file it was read from
// when path is empty.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.fileName
	}
	if path == "" {
		return ErrNoFileName
	}
	if err := e.storage.Save(path, e.buffer.Lines()); err != nil {
		return err
	}
	if e.fileName == "" {
		e.fileName = path
	}
	e.dirty = false
	log.Info().Str("file", path).Int("lines", e.buffer.LineCount()).Msg("saved")
	return nil
}

// LoadLines replaces the buffer contents and puts the cursor at the top.
func (e *Editor) LoadLines(lines []string) {
	e.buffer = NewBuffer(lines)
	e.cursor = Cursor{}
	e.dirty = false
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetClipboard() *Clipboard {
	return &e.clipboard
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

func (e *Editor) GetRowCount() int {
	return e.buffer.LineCount()
}

// GetLine returns the text of a row, or "" for rows outside the buffer.
func (e *Editor) GetLine(row int) string {
	line, err := e.buffer.GetLine(row)
	if err != nil {
		return ""
	}
	return line
}

func (e *Editor) GetCursor() red.Point {
	return e.cursor.Position()
}

func (e *Editor) SetCursor(cursor red.Point) {
	e.cursor.SetPosition(e.buffer, cursor)
}

// A Snapshot holds everything a keystroke can change.
type Snapshot struct {
	lines     []string
	cursor    red.Point
	clipboard []string
	dirty     bool
}

func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		lines:     e.buffer.Lines(),
		cursor:    e.cursor.Position(),
		clipboard: e.clipboard.Lines(),
		dirty:     e.dirty,
	}
}

func (e *Editor) Restore(s Snapshot) {
	e.buffer = NewBuffer(s.lines)
	e.cursor.SetPosition(e.buffer, s.cursor)
	e.clipboard = Clipboard{lines: s.clipboard}
	e.dirty = s.dirty
}

// cursor movement

func (e *Editor) MoveCursor(direction red.Direction) {
	e.cursor.Move(e.buffer, direction)
}

func (e *Editor) MoveCursorToBoundary(direction red.Direction) {
	e.cursor.MoveToBoundary(e.buffer, direction)
}

// line editing

func (e *Editor) changed() {
	e.dirty = true
	e.cursor.Clamp(e.buffer)
}

func (e *Editor) DeleteRow() error {
	if err := e.buffer.DeleteLine(e.cursor.row); err != nil {
		return err
	}
	e.changed()
	return nil
}

// CutRow pushes the current row onto the clipboard and deletes it.
func (e *Editor) CutRow() error {
	line, err := e.buffer.GetLine(e.cursor.row)
	if err != nil {
		return err
	}
	if err := e.buffer.DeleteLine(e.cursor.row); err != nil {
		return err
	}
	e.clipboard.Push(line)
	e.changed()
	return nil
}

// CopyRow pushes the current row onto the clipboard.
func (e *Editor) CopyRow() error {
	line, err := e.buffer.GetLine(e.cursor.row)
	if err != nil {
		return err
	}
	e.clipboard.Push(line)
	return nil
}

// PasteRow pops the clipboard into a new row above the cursor. The cursor
// row is unchanged, so it ends up on the pasted line. An empty clipboard
// pastes nothing.
func (e *Editor) PasteRow() error {
	line, ok := e.clipboard.Pop()
	if !ok {
		return nil
	}
	if err := e.buffer.InsertLine(e.cursor.row, line); err != nil {
		e.clipboard.Push(line)
		return err
	}
	e.changed()
	return nil
}

// character editing, used in insert mode

func (e *Editor) currentRow() (*Row, error) {
	text, err := e.buffer.GetLine(e.cursor.row)
	if err != nil {
		return nil, err
	}
	return NewRow(text), nil
}

// InsertChar inserts c at the cursor and moves the cursor past it.
func (e *Editor) InsertChar(c rune) error {
	row, err := e.currentRow()
	if err != nil {
		return err
	}
	line := row.TextBefore(e.cursor.col) + string(c) + row.TextAfter(e.cursor.col)
	if err := e.buffer.ReplaceLine(e.cursor.row, line); err != nil {
		return err
	}
	e.cursor.col++
	e.changed()
	return nil
}

// BreakLine splits the current row at the cursor and moves the cursor to
// the start of the new row.
func (e *Editor) BreakLine() error {
	row, err := e.currentRow()
	if err != nil {
		return err
	}
	if err := e.buffer.InsertLine(e.cursor.row+1, row.TextAfter(e.cursor.col)); err != nil {
		return err
	}
	if err := e.buffer.ReplaceLine(e.cursor.row, row.TextBefore(e.cursor.col)); err != nil {
		return err
	}
	e.cursor.row++
	e.cursor.col = 0
	e.changed()
	return nil
}

// BackspaceChar deletes the character before the cursor. At the start of a
// row it joins the row onto the one above. At the start of the buffer it
// does nothing.
func (e *Editor) BackspaceChar() error {
	if e.cursor.col > 0 {
		row, err := e.currentRow()
		if err != nil {
			return err
		}
		line := row.TextBefore(e.cursor.col-1) + row.TextAfter(e.cursor.col)
		if err := e.buffer.ReplaceLine(e.cursor.row, line); err != nil {
			return err
		}
		e.cursor.col--
		e.changed()
		return nil
	}
	if e.cursor.row == 0 {
		return nil
	}
	previous := e.cursor.row - 1
	col := e.buffer.LineLength(previous)
	if err := e.joinRows(previous); err != nil {
		return err
	}
	e.cursor.row = previous
	e.cursor.col = col
	e.changed()
	return nil
}

// DeleteChar deletes the character under the cursor. At the end of a row
// it joins the next row onto this one.
func (e *Editor) DeleteChar() error {
	row, err := e.currentRow()
	if err != nil {
		return err
	}
	if e.cursor.col < row.Length() {
		line := row.TextBefore(e.cursor.col) + row.TextAfter(e.cursor.col+1)
		if err := e.buffer.ReplaceLine(e.cursor.row, line); err != nil {
			return err
		}
		e.changed()
		return nil
	}
	if e.cursor.row+1 >= e.buffer.LineCount() {
		return nil
	}
	if err := e.joinRows(e.cursor.row); err != nil {
		return err
	}
	e.changed()
	return nil
}

// joins the row after row onto the end of row
func (e *Editor) joinRows(row int) error {
	first, err := e.buffer.GetLine(row)
	if err != nil {
		return err
	}
	second, err := e.buffer.GetLine(row + 1)
	if err != nil {
		return err
	}
	if err := e.buffer.DeleteLine(row + 1); err != nil {
		return err
	}
	return e.buffer.ReplaceLine(row, first+second)
}
