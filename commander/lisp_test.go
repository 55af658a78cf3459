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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	red "github.com/timburks/red/types"
)

func TestEvalCommands(t *testing.T) {
	c, _ := setup(t, "abc", "def")
	_, err := c.ParseEval(`(down) (right) (right)`)
	require.NoError(t, err)
	assert.Equal(t, at(1, 2), c.GetCursor())

	value, err := c.ParseEval(`(line-count)`)
	require.NoError(t, err)
	assert.Equal(t, "2", value)

	value, err = c.ParseEval(`(col)`)
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}

func TestEvalKeys(t *testing.T) {
	c, store := setup(t, "abc", "def")
	_, err := c.ParseEval(`(keys "jxi") (keys "new") (key "esc") (keys "s")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"newabc"}, store.files["test.txt"])
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.Equal(t, []string{"def"}, c.GetEditor().GetClipboard().Lines())
	assert.False(t, c.IsDirty())

	_, err = c.ParseEval(`(insert-mode) (insert-character "xy") (normal-mode)`)
	require.NoError(t, err)
	assert.Equal(t, []string{"newxyabc"}, lines(c))
}

func TestEvalLine(t *testing.T) {
	c, _ := setup(t, "abc", "def")
	value, err := c.ParseEval(`(line 1)`)
	require.NoError(t, err)
	assert.Contains(t, value, "def")

	_, err = c.ParseEval(`(line 5)`)
	assert.Error(t, err)
}

func TestEvalErrors(t *testing.T) {
	c, _ := setup(t, "abc")
	_, err := c.ParseEval(`(key "no-such-key")`)
	assert.Error(t, err)
	_, err = c.ParseEval(`(keys 42)`)
	assert.Error(t, err)
	assert.Equal(t, []string{"abc"}, lines(c))
}

func TestEvalFile(t *testing.T) {
	c, store := setup(t, "one", "two")
	path := filepath.Join(t.TempDir(), "script.lsp")
	require.NoError(t, os.WriteFile(path, []byte("(keys \"jd\")\n(save)\n(line-count)\n"), 0644))

	value, err := c.ParseEvalFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1", value)
	assert.Equal(t, []string{"one"}, store.files["test.txt"])

	_, err = c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.lsp"))
	assert.Error(t, err)
}
