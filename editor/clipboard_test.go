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
)

func TestClipboardPopEmpty(t *testing.T) {
	var c Clipboard
	line, ok := c.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", line)
	assert.Equal(t, 0, c.Len())
}

func TestClipboardIsLastInFirstOut(t *testing.T) {
	var c Clipboard
	c.Push("first")
	c.Push("second")
	c.Push("third")
	assert.Equal(t, []string{"first", "second", "third"}, c.Lines())

	for _, expected := range []string{"third", "second", "first"} {
		line, ok := c.Pop()
		assert.True(t, ok)
		assert.Equal(t, expected, line)
	}
	_, ok := c.Pop()
	assert.False(t, ok)
}

func TestClipboardPushPopRestoresStack(t *testing.T) {
	var c Clipboard
	c.Push("a")
	before := c.Lines()
	c.Push("x")
	line, ok := c.Pop()
	assert.True(t, ok)
	assert.Equal(t, "x", line)
	assert.Equal(t, before, c.Lines())
}
