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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/zeptex/zeptex/types"
)

// The Editor manages the buffer being edited and the view over it.
type Editor struct {
	Buffer   *Buffer
	offset   int        // first visible line, 0-based
	size     types.Size // terminal size, as of the last render or resize
	fileName string     // default target for a bare w command
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

func (e *Editor) InsertLine(index int, text string) bool {
	return e.Buffer.InsertLine(index, text)
}

func (e *Editor) AppendLine(text string) bool {
	return e.Buffer.AppendLine(text)
}

// DeleteLine removes a line and pulls the scroll offset back if it now
// points at or beyond the end of the buffer.
func (e *Editor) DeleteLine(index int) bool {
	if !e.Buffer.DeleteLine(index) {
		return false
	}
	if e.offset > 0 && e.offset >= e.Buffer.Count() {
		if count := e.Buffer.Count(); count > 0 {
			e.offset = count - 1
		} else {
			e.offset = 0
		}
	}
	return true
}

func (e *Editor) Line(index int) (string, bool) {
	return e.Buffer.Line(index)
}

func (e *Editor) Count() int {
	return e.Buffer.Count()
}

func (e *Editor) FileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

// ReadFile loads the file line by line, stopping at the line cap and
// truncating lines that exceed the length cap. The file name becomes
// the default save target whether or not the file exists.
func (e *Editor) ReadFile(path string) error {
	e.fileName = path
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for e.Buffer.Count() < types.MaxLines {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			if len(line) > types.MaxLineLen {
				line = line[:types.MaxLineLen]
			}
			e.Buffer.AppendLine(line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
	return nil
}

// WriteFile saves the buffer, one line per output line, newline-terminated.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 1; i <= e.Buffer.Count(); i++ {
		line, _ := e.Buffer.Line(i)
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
