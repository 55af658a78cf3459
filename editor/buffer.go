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
	"fmt"
	"strings"
)

// A Buffer holds the lines of the file being edited.
// It always contains at least one row; an empty file is a single empty row.
// InsertLine, DeleteLine and ReplaceLine are the only ways to change it.
type Buffer struct {
	rows []*Row
}

func NewBuffer(lines []string) *Buffer {
	b := &Buffer{}
	b.load(lines)
	return b
}

func (b *Buffer) load(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}

func (b *Buffer) check(row int) error {
	if row < 0 || row >= len(b.rows) {
		return fmt.Errorf("row %d of %d: %w", row, len(b.rows), ErrOutOfRange)
	}
	return nil
}

func (b *Buffer) LineCount() int {
	return len(b.rows)
}

func (b *Buffer) GetLine(row int) (string, error) {
	if err := b.check(row); err != nil {
		return "", err
	}
	return b.rows[row].String(), nil
}

// GetRunes returns a copy of the characters of a line.
func (b *Buffer) GetRunes(row int) ([]rune, error) {
	if err := b.check(row); err != nil {
		return nil, err
	}
	return b.rows[row].Runes(), nil
}

// LineLength returns the number of characters in a row, or 0 for rows
// outside the buffer.
func (b *Buffer) LineLength(row int) int {
	if b.check(row) != nil {
		return 0
	}
	return b.rows[row].Length()
}

func (b *Buffer) IsBlankLine(row int) bool {
	if b.check(row) != nil {
		return true
	}
	return b.rows[row].IsBlank()
}

// DeleteLine removes a row. Deleting the last remaining row leaves a
// single empty row behind.
func (b *Buffer) DeleteLine(row int) error {
	if err := b.check(row); err != nil {
		return err
	}
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	return nil
}

// InsertLine adds a row before row; row == LineCount() appends.
func (b *Buffer) InsertLine(row int, content string) error {
	if row < 0 || row > len(b.rows) {
		return fmt.Errorf("insert at row %d of %d: %w", row, len(b.rows), ErrOutOfRange)
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[row+1:], b.rows[row:])
	b.rows[row] = NewRow(content)
	return nil
}

func (b *Buffer) ReplaceLine(row int, content string) error {
	if err := b.check(row); err != nil {
		return err
	}
	b.rows[row] = NewRow(content)
	return nil
}

// Lines returns a copy of every line in the buffer.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
