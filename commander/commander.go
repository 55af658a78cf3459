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
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/timburks/red/editor"
	red "github.com/timburks/red/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor   *editor.Editor
	renderer red.Renderer
	mode     red.Mode
	running  bool
	message  string // status message
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: red.ModeNormal, running: true}
}

// SetRenderer sets the display that is redrawn after every key.
func (c *Commander) SetRenderer(r red.Renderer) {
	c.renderer = r
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) SetMode(m red.Mode) {
	c.mode = m
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

// View

func (c *Commander) GetMode() red.Mode {
	return c.mode
}

func (c *Commander) GetCursor() red.Point {
	return c.editor.GetCursor()
}

func (c *Commander) GetRowCount() int {
	return c.editor.GetRowCount()
}

func (c *Commander) GetLine(row int) string {
	return c.editor.GetLine(row)
}

func (c *Commander) GetFileName() string {
	return c.editor.GetFileName()
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsDirty() bool {
	return c.editor.IsDirty()
}

// Render passes the current state to the renderer, if there is one.
func (c *Commander) Render() {
	if c.renderer != nil {
		c.renderer.Render(c)
	}
}

// ProcessEvent handles one input event to completion and then redraws.
func (c *Commander) ProcessEvent(event *red.Event) error {
	var err error
	switch event.Type {
	case red.EventKey:
		err = c.processKey(event)
	case red.EventError:
		err = event.Err
	}
	c.Render()
	return err
}

// The message from the previous key is cleared before each new key.
func (c *Commander) processKey(event *red.Event) error {
	c.message = ""
	name := c.lookup(event)
	if name == "" {
		return nil
	}
	log.Debug().Str("mode", c.mode.String()).Str("command", name).Msg("dispatch")
	return c.perform(name, charFor(event))
}

// lookup returns the name of the command bound to an event in the current
// mode, or "" when the event does nothing. In insert mode, printable
// characters without a binding insert themselves.
func (c *Commander) lookup(event *red.Event) string {
	b := binding{key: event.Key}
	if event.Key == red.KeyNone {
		b.ch = event.Ch
	}
	if name, ok := bindings[c.mode][b]; ok {
		return name
	}
	if c.mode == red.ModeInsert && event.Key == red.KeyNone && unicode.IsPrint(event.Ch) {
		return "insert-character"
	}
	return ""
}

// Perform runs the named command as if its key had been pressed.
func (c *Commander) Perform(name string) error {
	return c.perform(name, 0)
}

// PerformInsert inserts a character as if it had been typed in insert mode.
func (c *Commander) PerformInsert(ch rune) error {
	return c.perform("insert-character", ch)
}

func (c *Commander) perform(name string, ch rune) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if !cmd.mutates {
		return cmd.run(c, ch)
	}
	snapshot := c.editor.Snapshot()
	err := cmd.run(c, ch)
	if errors.Is(err, editor.ErrOutOfRange) {
		// the keystroke is abandoned and the editor goes back to where it was
		c.editor.Restore(snapshot)
		cursor := c.editor.GetCursor()
		log.Error().Err(err).Str("command", name).Int("row", cursor.Row).Int("col", cursor.Col).Msg("command aborted")
	}
	return err
}

// charFor returns the character a key event would insert.
func charFor(event *red.Event) rune {
	switch event.Key {
	case red.KeySpace:
		return ' '
	case red.KeyTab:
		return '\t'
	default:
		return event.Ch
	}
}
