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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/steelseries/golisp"

	red "github.com/timburks/red/types"
)

// the commander that lisp primitives act on while a script runs
var scripted *Commander

func init() {
	for _, name := range CommandNames() {
		if name == "insert-character" {
			continue
		}
		golisp.MakePrimitiveFunction(name, "0", commandImpl(name))
	}
	golisp.MakePrimitiveFunction("insert-character", "1", InsertCharacterImpl)
	golisp.MakePrimitiveFunction("keys", "1", KeysImpl)
	golisp.MakePrimitiveFunction("key", "1", KeyImpl)
	golisp.MakePrimitiveFunction("line", "1", LineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("row", "0", RowImpl)
	golisp.MakePrimitiveFunction("col", "0", ColImpl)
	golisp.MakePrimitiveFunction("mode", "0", ModeImpl)
	golisp.MakePrimitiveFunction("message", "0", MessageImpl)
}

func active() (*Commander, error) {
	if scripted == nil {
		return nil, errors.New("no editor is running a script")
	}
	return scripted, nil
}

func commandImpl(name string) func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := active()
		if err != nil {
			return nil, err
		}
		if err := c.Perform(name); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func intArg(name string, args *golisp.Data) (int, error) {
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	default:
		return 0, fmt.Errorf("%s requires a number argument", name)
	}
}

// InsertCharacterImpl inserts every character of its argument at the cursor.
func InsertCharacterImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("insert-character", args)
	if err != nil {
		return nil, err
	}
	for _, ch := range text {
		if err := c.PerformInsert(ch); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// KeysImpl presses each character of its argument in turn.
func KeysImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("keys", args)
	if err != nil {
		return nil, err
	}
	for _, ch := range text {
		if err := c.ProcessEvent(red.CharEvent(ch)); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// KeyImpl presses a special key given by name, such as "esc" or "enter".
func KeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	name, err := stringArg("key", args)
	if err != nil {
		return nil, err
	}
	k, ok := red.KeyNamed(name)
	if !ok {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	return nil, c.ProcessEvent(red.KeyEvent(k))
}

func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	row, err := intArg("line", args)
	if err != nil {
		return nil, err
	}
	line, err := c.editor.GetBuffer().GetLine(row)
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(line), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.GetRowCount())), nil
}

func RowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.GetCursor().Row)), nil
}

func ColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.GetCursor().Col)), nil
}

func ModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.GetMode().String()), nil
}

func MessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.GetMessage()), nil
}

// ParseEval evaluates a sequence of lisp expressions against the editor
// and returns the printed value of the last one.
func (c *Commander) ParseEval(source string) (string, error) {
	scripted = c
	defer func() { scripted = nil }()
	value, err := golisp.ParseAndEval("(begin " + source + "\n)")
	if err != nil {
		log.Warn().Err(err).Msg("script failed")
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates the lisp program in a file.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval(string(source))
}
