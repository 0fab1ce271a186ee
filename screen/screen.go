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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/zeptex/zeptex/types"
)

// The Screen owns the terminal: it holds raw mode and the alternate
// screen for the life of the program, turns raw bytes into key events,
// and draws the state of an Editor.
type Screen struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	events   chan *types.Event
	winch    chan os.Signal
	size     types.Size
}

// NewScreen puts the terminal into raw mode and enters the alternate
// screen with the cursor hidden. The caller must Close the screen on
// every exit path so the shell gets its terminal back.
func NewScreen(in, out *os.File) (*Screen, error) {
	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	s := &Screen{
		in:       in,
		out:      out,
		oldState: oldState,
		events:   make(chan *types.Event),
		winch:    make(chan os.Signal, 1),
	}
	fmt.Fprint(s.out, "\x1b[?1049h\x1b[?25l")

	// the 1-buffered channel coalesces bursts of resizes into one redraw
	signal.Notify(s.winch, syscall.SIGWINCH)

	go s.readKeys()

	s.Size()
	return s, nil
}

// Close restores the terminal. Safe to call once on any exit path.
func (s *Screen) Close() {
	signal.Stop(s.winch)
	fmt.Fprint(s.out, "\x1b[?1049l\x1b[?25h")
	term.Restore(int(s.in.Fd()), s.oldState)
}

// Size queries the terminal, falling back to the last known size when
// the query fails.
func (s *Screen) Size() types.Size {
	cols, rows, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return s.size
	}
	s.size = types.Size{Rows: rows, Cols: cols}
	return s.size
}

// GetNextEvent blocks until a key event arrives or the terminal is
// resized. It returns nil when the input stream ends.
func (s *Screen) GetNextEvent() *types.Event {
	select {
	case <-s.winch:
		return &types.Event{Type: types.EventResize, Size: s.Size()}
	case event, ok := <-s.events:
		if !ok {
			return nil
		}
		return event
	}
}

func (s *Screen) readKeys() {
	reader := &keyReader{r: s.in}
	for {
		event, err := reader.next()
		if err != nil {
			close(s.events)
			return
		}
		if event != nil {
			s.events <- event
		}
	}
}
