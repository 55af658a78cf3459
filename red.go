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
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/timburks/red/commander"
	"github.com/timburks/red/editor"
	"github.com/timburks/red/screen"
)

// set with -ldflags at build time
var version = "dev"

type options struct {
	logPath  string
	debug    bool
	script   string
	fileName string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, done, ok := parseFlags(os.Args[1:])
	if !ok {
		return 2
	}
	if done {
		return 0
	}

	closeLog, err := setupLogging(opts.logPath, opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "red: %v\n", err)
		return 1
	}
	defer closeLog()

	// The editor manages all text manipulation.
	e := editor.NewEditor(editor.NewFileStore())
	if opts.fileName != "" {
		if err := e.ReadFile(opts.fileName); err != nil {
			log.Error().Err(err).Str("file", opts.fileName).Msg("load failed")
			fmt.Fprintf(os.Stderr, "red: %v\n", err)
			return 1
		}
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if opts.script != "" {
		// Run a script and exit.
		out, err := c.ParseEvalFile(opts.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "red: %v\n", err)
			return 1
		}
		fmt.Println(out)
		return 0
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "red: %v\n", err)
		return 1
	}
	defer s.Close()
	c.SetRenderer(s)

	// Run the main event loop.
	c.Render()
	for c.IsRunning() {
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Error().Err(err).Msg("event failed")
		}
	}
	return 0
}

// parseFlags reports done when a flag such as --version has already
// produced all the output, and !ok when the arguments are unusable.
func parseFlags(args []string) (opts options, done bool, ok bool) {
	var showVersion bool

	flags := flag.NewFlagSet("red", flag.ContinueOnError)
	flags.StringVar(&opts.logPath, "log", defaultLogPath(), "Log file (empty to disable logging)")
	flags.BoolVar(&opts.debug, "debug", false, "Log every dispatched command")
	flags.StringVar(&opts.script, "eval", "", "Run a lisp script against the file instead of editing it")
	flags.BoolVar(&showVersion, "version", false, "Show version information")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: red [options] [file]\n\n")
		fmt.Fprintf(flags.Output(), "Options:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		// -h has already printed the usage
		return opts, errors.Is(err, flag.ErrHelp), errors.Is(err, flag.ErrHelp)
	}

	if showVersion {
		fmt.Printf("red %s\n", version)
		return opts, true, true
	}
	switch flags.NArg() {
	case 0:
	case 1:
		opts.fileName = flags.Arg(0)
	default:
		flags.Usage()
		return opts, false, false
	}
	return opts, false, true
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".redlog")
}

// setupLogging points the global logger at a file, since the terminal
// belongs to the screen.
func setupLogging(path string, debug bool) (func(), error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}
