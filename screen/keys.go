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

	red "github.com/timburks/red/types"
)

// convertEvent turns a termbox event into a logical editor event.
// Events the editor has no use for become resize events, which only redraw.
func convertEvent(event termbox.Event) *red.Event {
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return red.CharEvent(event.Ch)
		}
		return red.KeyEvent(key(event.Key))
	case termbox.EventError:
		return &red.Event{Type: red.EventError, Err: event.Err}
	default:
		return &red.Event{Type: red.EventResize}
	}
}

func key(k termbox.Key) red.Key {
	switch k {
	case termbox.KeyArrowDown:
		return red.KeyArrowDown
	case termbox.KeyArrowLeft:
		return red.KeyArrowLeft
	case termbox.KeyArrowRight:
		return red.KeyArrowRight
	case termbox.KeyArrowUp:
		return red.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return red.KeyBackspace
	case termbox.KeyDelete:
		return red.KeyDelete
	case termbox.KeyCtrlC:
		return red.KeyCtrlC
	case termbox.KeyEnd:
		return red.KeyEnd
	case termbox.KeyEnter:
		return red.KeyEnter
	case termbox.KeyEsc:
		return red.KeyEsc
	case termbox.KeyHome:
		return red.KeyHome
	case termbox.KeyPgdn:
		return red.KeyPgdn
	case termbox.KeyPgup:
		return red.KeyPgup
	case termbox.KeySpace:
		return red.KeySpace
	case termbox.KeyTab:
		return red.KeyTab
	default:
		return red.KeyUnsupported
	}
}
