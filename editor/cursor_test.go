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
	"testing"

	"github.com/stretchr/testify/assert"

	red "github.com/timburks/red/types"
)

func at(row, col int) red.Point {
	return red.Point{Row: row, Col: col}
}

func TestMoveCursor(t *testing.T) {
	b := NewBuffer([]string{"123", "45", "678"})
	var c Cursor

	// moving left or up at the start does nothing
	c.Move(b, red.MoveLeft)
	assert.Equal(t, at(0, 0), c.Position())
	c.Move(b, red.MoveUp)
	assert.Equal(t, at(0, 0), c.Position())

	c.Move(b, red.MoveRight)
	assert.Equal(t, at(0, 1), c.Position())
	c.Move(b, red.MoveDown)
	assert.Equal(t, at(1, 1), c.Position())
	c.Move(b, red.MoveLeft)
	assert.Equal(t, at(1, 0), c.Position())

	// moving right stops after the last character instead of wrapping
	c.SetPosition(b, at(0, 0))
	for i := 0; i < 5; i++ {
		c.Move(b, red.MoveRight)
	}
	assert.Equal(t, at(0, 3), c.Position())

	// moving down to a shorter line clamps the column
	c.Move(b, red.MoveDown)
	assert.Equal(t, at(1, 2), c.Position())

	// moving left at column 0 does not wrap to the previous line
	c.SetPosition(b, at(2, 0))
	c.Move(b, red.MoveLeft)
	assert.Equal(t, at(2, 0), c.Position())

	// moving down at the last line does nothing
	c.Move(b, red.MoveDown)
	assert.Equal(t, at(2, 0), c.Position())
}

func TestMoveByClamps(t *testing.T) {
	b := NewBuffer([]string{"abc", "de"})
	var c Cursor
	c.MoveBy(b, 10, 10)
	assert.Equal(t, at(1, 2), c.Position())
	c.MoveBy(b, -10, -10)
	assert.Equal(t, at(0, 0), c.Position())
}

func TestSetPositionClamps(t *testing.T) {
	b := NewBuffer([]string{"abc"})
	var c Cursor
	c.SetPosition(b, at(4, 9))
	assert.Equal(t, at(0, 3), c.Position())
}

func TestClampAfterBufferShrinks(t *testing.T) {
	b := NewBuffer([]string{"abc", "defgh"})
	var c Cursor
	c.SetPosition(b, at(1, 5))
	assert.NoError(t, b.DeleteLine(1))
	c.Clamp(b)
	assert.Equal(t, at(0, 3), c.Position())
}

func TestMoveToBoundaryRight(t *testing.T) {
	b := NewBuffer([]string{"hello world"})
	var c Cursor
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 5), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 6), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 11), c.Position())

	// with no boundary left on the line the cursor stays at the line end
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 11), c.Position())
}

func TestMoveToBoundaryRightDoesNotCrossLines(t *testing.T) {
	b := NewBuffer([]string{"abc", "def"})
	var c Cursor
	c.SetPosition(b, at(0, 1))
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 3), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 3), c.Position())
}

func TestMoveToBoundaryLeft(t *testing.T) {
	b := NewBuffer([]string{"hello world"})
	var c Cursor
	c.SetPosition(b, at(0, 11))
	c.MoveToBoundary(b, red.MoveLeft)
	assert.Equal(t, at(0, 6), c.Position())
	c.MoveToBoundary(b, red.MoveLeft)
	assert.Equal(t, at(0, 5), c.Position())
	c.MoveToBoundary(b, red.MoveLeft)
	assert.Equal(t, at(0, 0), c.Position())
	c.MoveToBoundary(b, red.MoveLeft)
	assert.Equal(t, at(0, 0), c.Position())
}

func TestMoveToBoundaryOnBlankRuns(t *testing.T) {
	b := NewBuffer([]string{"  a\tb  "})
	var c Cursor
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 2), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 3), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 4), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 5), c.Position())
	c.MoveToBoundary(b, red.MoveRight)
	assert.Equal(t, at(0, 7), c.Position())
}

func TestMoveToBlankLine(t *testing.T) {
	b := NewBuffer([]string{"one", "two", "", "three", "   ", "four", "five"})
	var c Cursor
	c.SetPosition(b, at(0, 3))
	c.MoveToBoundary(b, red.MoveDown)
	assert.Equal(t, at(2, 0), c.Position())
	c.MoveToBoundary(b, red.MoveDown)
	assert.Equal(t, at(4, 0), c.Position())

	// with no blank line below, the cursor stops on the last line
	c.MoveToBoundary(b, red.MoveDown)
	assert.Equal(t, at(6, 0), c.Position())
	c.MoveToBoundary(b, red.MoveDown)
	assert.Equal(t, at(6, 0), c.Position())

	c.MoveToBoundary(b, red.MoveUp)
	assert.Equal(t, at(4, 0), c.Position())
	c.MoveToBoundary(b, red.MoveUp)
	assert.Equal(t, at(2, 0), c.Position())
	c.MoveToBoundary(b, red.MoveUp)
	assert.Equal(t, at(0, 0), c.Position())
	c.MoveToBoundary(b, red.MoveUp)
	assert.Equal(t, at(0, 0), c.Position())
}
