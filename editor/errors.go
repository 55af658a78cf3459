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
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange means a row outside the buffer was addressed. The cursor
	// is always clamped, so seeing this means an editor invariant broke.
	ErrOutOfRange = errors.New("row out of range")

	// ErrLoadFailed wraps a failure to read an existing file.
	ErrLoadFailed = errors.New("load failed")

	// ErrSaveFailed wraps a failure to persist the buffer.
	ErrSaveFailed = errors.New("save failed")

	// ErrNoFileName means the buffer was never given a file to save to.
	ErrNoFileName = fmt.Errorf("no file name: %w", ErrSaveFailed)
)
