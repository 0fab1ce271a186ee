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
package types

// Event types
const (
	EventKey = iota
	EventResize
)

// Keys that the screen distinguishes beyond plain characters
const (
	KeyNone = iota
	KeyEnter
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
)

// Buffer limits, matching the original editor
const (
	MaxLines   = 1000
	MaxLineLen = 1024
)

// ChromeRows is the number of screen rows reserved for the title,
// its surrounding spacing, and the command bar.
const ChromeRows = 5

type Size struct {
	Rows int
	Cols int
}

type Event struct {
	Type int
	Key  int
	Ch   rune
	Size Size // set for EventResize
}

// UsableRows returns the rows available for buffer lines on a terminal
// with the given height, never less than one.
func UsableRows(termRows int) int {
	if termRows > ChromeRows {
		return termRows - ChromeRows
	}
	return 1
}

type Editor interface {
	InsertLine(index int, text string) bool
	AppendLine(text string) bool
	DeleteLine(index int) bool
	Line(index int) (string, bool)
	Count() int

	Offset() int
	SetSize(size Size)
	ClampOffset()
	RevealLine(index int)
	ScrollUp()
	ScrollDown()

	ReadFile(path string) error
	WriteFile(path string) error
	FileName() string
	SetFileName(name string)
}

type Commander interface {
	GetCommand() string
	GetMessage() string
}
