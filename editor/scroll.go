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
	"github.com/zeptex/zeptex/types"
)

// Scroll arithmetic. The offset is the 0-based index of the first visible
// line and must stay within 0..max(0, count-usable) at all times, so it is
// re-clamped after every buffer mutation and every resize.

func (e *Editor) Offset() int {
	return e.offset
}

func (e *Editor) SetSize(size types.Size) {
	e.size = size
}

func (e *Editor) usableRows() int {
	return types.UsableRows(e.size.Rows)
}

func maxOffset(count, usable int) int {
	if count > usable {
		return count - usable
	}
	return 0
}

// ClampOffset pulls the offset back into range for the current buffer
// size and terminal height.
func (e *Editor) ClampOffset() {
	if limit := maxOffset(e.Buffer.Count(), e.usableRows()); e.offset > limit {
		e.offset = limit
	}
	if e.offset < 0 {
		e.offset = 0
	}
}

// RevealLine scrolls forward until the 1-based line is inside the
// visible window, then re-clamps.
func (e *Editor) RevealLine(index int) {
	if usable := e.usableRows(); index > e.offset+usable {
		e.offset = index - usable
	}
	e.ClampOffset()
}

func (e *Editor) ScrollUp() {
	if e.offset > 0 {
		e.offset--
	}
}

func (e *Editor) ScrollDown() {
	if e.offset < maxOffset(e.Buffer.Count(), e.usableRows()) {
		e.offset++
	}
}
