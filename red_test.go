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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	defer func() { log.Logger = zerolog.Nop() }()

	path := filepath.Join(t.TempDir(), "redlog")
	closeLog, err := setupLogging(path, true)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	log.Debug().Str("command", "left").Msg("dispatch")
	closeLog()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `"command":"left"`))
	assert.True(t, strings.Contains(string(b), `"time":`))
}

func TestSetupLoggingDisabled(t *testing.T) {
	closeLog, err := setupLogging("", false)
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupLoggingBadPath(t *testing.T) {
	_, err := setupLogging(filepath.Join(t.TempDir(), "missing", "redlog"), false)
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	opts, done, ok := parseFlags([]string{"--debug", "--log", "", "notes.txt"})
	assert.True(t, ok)
	assert.False(t, done)
	assert.Equal(t, options{debug: true, fileName: "notes.txt"}, opts)

	// --version prints and finishes without exiting the process
	_, done, ok = parseFlags([]string{"--version"})
	assert.True(t, ok)
	assert.True(t, done)

	_, done, ok = parseFlags([]string{"a.txt", "b.txt"})
	assert.False(t, ok)
	assert.False(t, done)

	_, _, ok = parseFlags([]string{"--no-such-flag"})
	assert.False(t, ok)
}
