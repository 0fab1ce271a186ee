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
	"io"

	"github.com/zeptex/zeptex/types"
)

// A keyReader assembles single bytes read from a raw-mode terminal into
// key events.
type keyReader struct {
	r io.Reader
}

// next blocks for one keystroke. It returns a nil event for bytes that
// carry no meaning at the prompt (control characters, unrecognized
// escape sequences, a truncated escape); the caller just reads again.
// An error ends the stream.
func (k *keyReader) next() (*types.Event, error) {
	b, err := k.readByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b == '\r' || b == '\n':
		return &types.Event{Type: types.EventKey, Key: types.KeyEnter}, nil
	case b == 0x7f || b == '\b':
		return &types.Event{Type: types.EventKey, Key: types.KeyBackspace}, nil
	case b == 0x1b:
		return k.escape()
	case b >= 0x20 && b < 0x7f:
		return &types.Event{Type: types.EventKey, Ch: rune(b)}, nil
	default:
		return nil, nil
	}
}

// escape reads the two bytes that follow an ESC. Arrow up and down
// become scroll events; any other pair is consumed and dropped. If a
// follow-up byte cannot be read the sequence is abandoned without an
// event.
func (k *keyReader) escape() (*types.Event, error) {
	var seq [2]byte
	for i := range seq {
		b, err := k.readByte()
		if err != nil {
			return nil, nil
		}
		seq[i] = b
	}
	if seq[0] != '[' {
		return nil, nil
	}
	switch seq[1] {
	case 'A':
		return &types.Event{Type: types.EventKey, Key: types.KeyArrowUp}, nil
	case 'B':
		return &types.Event{Type: types.EventKey, Key: types.KeyArrowDown}, nil
	}
	return nil, nil
}

func (k *keyReader) readByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := k.r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
