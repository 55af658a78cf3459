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
package types

// Mode is the state of the modal key dispatcher.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Direction selects the way a cursor movement goes.
type Direction int

// Move directions
const (
	MoveUp Direction = iota
	MoveDown
	MoveRight
	MoveLeft
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	default:
		return "unknown"
	}
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A View is the read-only state handed to the render boundary after every key.
type View interface {
	GetMode() Mode
	GetCursor() Point
	GetRowCount() int
	GetLine(row int) string
	GetFileName() string
	GetMessage() string
	IsDirty() bool
}

// A Renderer draws a View. It must never change editor state.
type Renderer interface {
	Render(v View)
}

// Storage is the load/save boundary for the lines of a file.
type Storage interface {
	// Load returns the lines of the file at path. A missing file is not
	// an error; it loads as a single empty line.
	Load(path string) ([]string, error)
	// Save replaces the file at path with lines. It either succeeds
	// completely or leaves the previous file in place.
	Save(path string, lines []string) error
}

// A Display is a grid of character cells that a Window draws into.
type Display interface {
	SetCell(col int, row int, c rune, reversed bool)
	SetCursor(position Point)
}
