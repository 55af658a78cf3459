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

package commander

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/timburks/red/editor"
	red "github.com/timburks/red/types"
)

// A command is something a key can do.
// Commands that can change the buffer or clipboard are marked as mutating
// so that a failure can be rolled back.
type command struct {
	mutates bool
	run     func(c *Commander, ch rune) error
}

// A binding is a special key or, when key is KeyNone, a character.
type binding struct {
	key red.Key
	ch  rune
}

func char(ch rune) binding {
	return binding{ch: ch}
}

func key(k red.Key) binding {
	return binding{key: k}
}

var commands = map[string]*command{
	"left":                {run: move(red.MoveLeft)},
	"right":               {run: move(red.MoveRight)},
	"up":                  {run: move(red.MoveUp)},
	"down":                {run: move(red.MoveDown)},
	"previous-blank":      {run: moveToBoundary(red.MoveLeft)},
	"next-blank":          {run: moveToBoundary(red.MoveRight)},
	"previous-blank-line": {run: moveToBoundary(red.MoveUp)},
	"next-blank-line":     {run: moveToBoundary(red.MoveDown)},
	"insert-mode":         {run: setMode(red.ModeInsert)},
	"normal-mode":         {run: setMode(red.ModeNormal)},
	"delete-line":         {mutates: true, run: deleteLine},
	"cut-line":            {mutates: true, run: cutLine},
	"copy-line":           {mutates: true, run: copyLine},
	"paste-line":          {mutates: true, run: pasteLine},
	"insert-character":    {mutates: true, run: insertCharacter},
	"break-line":          {mutates: true, run: breakLine},
	"backspace":           {mutates: true, run: backspace},
	"delete-character":    {mutates: true, run: deleteCharacter},
	"save":                {run: save},
	"quit":                {run: quit},
}

// bindings maps each mode's keys to command names. Keys that are not
// listed do nothing, except printable characters in insert mode.
var bindings = map[red.Mode]map[binding]string{
	red.ModeNormal: {
		char('h'):              "left",
		char('l'):              "right",
		char('k'):              "up",
		char('j'):              "down",
		key(red.KeyArrowLeft):  "left",
		key(red.KeyArrowRight): "right",
		key(red.KeyArrowUp):    "up",
		key(red.KeyArrowDown):  "down",
		char('H'):              "previous-blank",
		char('L'):              "next-blank",
		char('K'):              "previous-blank-line",
		char('J'):              "next-blank-line",
		char('i'):              "insert-mode",
		char('d'):              "delete-line",
		char('x'):              "cut-line",
		char('c'):              "copy-line",
		char('v'):              "paste-line",
		char('s'):              "save",
		char('q'):              "quit",
	},
	red.ModeInsert: {
		key(red.KeyEsc):        "normal-mode",
		key(red.KeyEnter):      "break-line",
		key(red.KeyBackspace):  "backspace",
		key(red.KeyDelete):     "delete-character",
		key(red.KeySpace):      "insert-character",
		key(red.KeyTab):        "insert-character",
		key(red.KeyArrowLeft):  "left",
		key(red.KeyArrowRight): "right",
		key(red.KeyArrowUp):    "up",
		key(red.KeyArrowDown):  "down",
	},
}

// CommandNames returns the names of all commands in sorted order.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func move(direction red.Direction) func(c *Commander, ch rune) error {
	return func(c *Commander, ch rune) error {
		c.editor.MoveCursor(direction)
		return nil
	}
}

func moveToBoundary(direction red.Direction) func(c *Commander, ch rune) error {
	return func(c *Commander, ch rune) error {
		c.editor.MoveCursorToBoundary(direction)
		return nil
	}
}

func setMode(m red.Mode) func(c *Commander, ch rune) error {
	return func(c *Commander, ch rune) error {
		c.mode = m
		return nil
	}
}

func deleteLine(c *Commander, ch rune) error {
	return c.editor.DeleteRow()
}

func cutLine(c *Commander, ch rune) error {
	return c.editor.CutRow()
}

func copyLine(c *Commander, ch rune) error {
	return c.editor.CopyRow()
}

func pasteLine(c *Commander, ch rune) error {
	return c.editor.PasteRow()
}

func insertCharacter(c *Commander, ch rune) error {
	if ch == 0 {
		return nil
	}
	return c.editor.InsertChar(ch)
}

func breakLine(c *Commander, ch rune) error {
	return c.editor.BreakLine()
}

func backspace(c *Commander, ch rune) error {
	return c.editor.BackspaceChar()
}

func deleteCharacter(c *Commander, ch rune) error {
	return c.editor.DeleteChar()
}

// save reports failures on the message bar; the buffer stays as it is.
func save(c *Commander, ch rune) error {
	e := c.editor
	if err := e.WriteFile(""); err != nil {
		log.Warn().Err(err).Str("file", e.GetFileName()).Msg("save failed")
		c.message = err.Error()
		if errors.Is(err, editor.ErrNoFileName) {
			c.message = "no file name: run red with a file path to save"
		}
		return nil
	}
	c.message = fmt.Sprintf("%q %dL written", e.GetFileName(), e.GetRowCount())
	return nil
}

// quit stops the event loop without saving.
func quit(c *Commander, ch rune) error {
	c.running = false
	return nil
}
