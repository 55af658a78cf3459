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
	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog/log"

	red "github.com/timburks/red/types"
)

// The Screen draws the state of an editor on the terminal and reads
// key events from it.
type Screen struct {
	window *Window
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Screen{window: NewWindow()}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render implements red.Renderer.
func (s *Screen) Render(v red.View) {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		log.Warn().Err(err).Msg("clear failed")
	}
	var screenSize red.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.window.SetSize(screenSize)
	s.window.Render(v, s)
	if err := termbox.Flush(); err != nil {
		log.Warn().Err(err).Msg("flush failed")
	}
}

// SetCell implements red.Display.
func (s *Screen) SetCell(col int, row int, c rune, reversed bool) {
	if reversed {
		termbox.SetCell(col, row, c, termbox.ColorDefault|termbox.AttrReverse, termbox.ColorDefault)
	} else {
		termbox.SetCell(col, row, c, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// SetCursor implements red.Display.
func (s *Screen) SetCursor(position red.Point) {
	termbox.SetCursor(position.Col, position.Row)
}

// GetNextEvent blocks until the terminal reports an event.
func (s *Screen) GetNextEvent() *red.Event {
	return convertEvent(termbox.PollEvent())
}
