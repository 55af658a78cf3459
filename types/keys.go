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

// EventType distinguishes the kinds of input events.
type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventError
)

// Key identifies a non-character key. Character keys have Key == KeyNone
// and carry their rune in Event.Ch.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyCtrlC
	KeyUnsupported
)

var keyNames = map[Key]string{
	KeyNone:        "none",
	KeyEsc:         "esc",
	KeyEnter:       "enter",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyTab:         "tab",
	KeySpace:       "space",
	KeyArrowUp:     "arrow-up",
	KeyArrowDown:   "arrow-down",
	KeyArrowLeft:   "arrow-left",
	KeyArrowRight:  "arrow-right",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPgup:        "page-up",
	KeyPgdn:        "page-down",
	KeyCtrlC:       "ctrl-c",
	KeyUnsupported: "unsupported",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyNamed returns the key with the given name, as produced by Key.String.
func KeyNamed(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnsupported, false
}

// An Event is one logical input event.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Err  error
}

// KeyEvent returns the event for a special key.
func KeyEvent(k Key) *Event {
	return &Event{Type: EventKey, Key: k}
}

// CharEvent returns the event for a character key.
func CharEvent(ch rune) *Event {
	return &Event{Type: EventKey, Ch: ch}
}
