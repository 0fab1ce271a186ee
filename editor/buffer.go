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

// A Buffer holds the ordered lines being edited.
// Line indices exposed by its methods are 1-based.

type Buffer struct {
	lines []string
}

func NewBuffer() *Buffer {
	return &Buffer{lines: make([]string, 0)}
}

// InsertLine stores text at the given index, shifting later lines toward
// the end. Indices outside 1..count+1 and a full buffer leave the buffer
// unchanged; the return value reports whether anything changed.
func (b *Buffer) InsertLine(index int, text string) bool {
	if len(b.lines) >= types.MaxLines || index < 1 || index > len(b.lines)+1 {
		return false
	}
	b.lines = append(b.lines, "")
	copy(b.lines[index:], b.lines[index-1:])
	b.lines[index-1] = text
	return true
}

// AppendLine adds text as the new last line.
func (b *Buffer) AppendLine(text string) bool {
	return b.InsertLine(len(b.lines)+1, text)
}

// DeleteLine removes the line at the given index, shifting later lines
// down. Indices outside 1..count leave the buffer unchanged.
func (b *Buffer) DeleteLine(index int) bool {
	if index < 1 || index > len(b.lines) {
		return false
	}
	b.lines = append(b.lines[:index-1], b.lines[index:]...)
	return true
}

func (b *Buffer) Line(index int) (string, bool) {
	if index < 1 || index > len(b.lines) {
		return "", false
	}
	return b.lines[index-1], true
}

func (b *Buffer) Count() int {
	return len(b.lines)
}
