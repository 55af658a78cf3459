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

// The Clipboard is a stack of cut and copied lines.
type Clipboard struct {
	lines []string
}

func (c *Clipboard) Push(line string) {
	c.lines = append(c.lines, line)
}

// Pop removes and returns the most recently pushed line.
// It returns false when the clipboard is empty.
func (c *Clipboard) Pop() (string, bool) {
	if len(c.lines) == 0 {
		return "", false
	}
	last := len(c.lines) - 1
	line := c.lines[last]
	c.lines = c.lines[0:last]
	return line, true
}

func (c *Clipboard) Len() int {
	return len(c.lines)
}

// Lines returns the stored lines, oldest first.
func (c *Clipboard) Lines() []string {
	lines := make([]string, len(c.lines))
	copy(lines, c.lines)
	return lines
}
