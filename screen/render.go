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
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/zeptex/zeptex/types"
)

const title = "ZEPTEX EDITOR version 1.0"

// hints shown in the command bar, spread across the width
var hints = []string{
	"i N TEXT -- insert line|",
	"d N -- delete line|",
	"↑/↓ scroll|",
	"w <filename> -- save|",
	"q -- Quit|",
}

// Render repaints the whole screen from the editor and commander state.
// There is no differential drawing; every frame clears and redraws.
func (s *Screen) Render(e types.Editor, c types.Commander) {
	size := s.Size()
	e.SetSize(size)
	e.ClampOffset()
	s.out.Write(renderFrame(e, c, size))
}

// renderFrame builds one full frame: title, the visible window of buffer
// lines, the command bar, and the prompt line. It depends only on its
// arguments, so it can be exercised without a terminal.
func renderFrame(e types.Editor, c types.Commander, size types.Size) []byte {
	var frame bytes.Buffer
	frame.WriteString("\x1b[H\x1b[J")

	padding := (size.Cols - runewidth.StringWidth(title)) / 2
	if padding < 0 {
		padding = 0
	}
	frame.WriteString(strings.Repeat(" ", padding))
	frame.WriteString(bold(title))
	frame.WriteString("\r\n\r\n")

	usable := types.UsableRows(size.Rows)
	for i := 0; i < usable; i++ {
		index := e.Offset() + i + 1
		if line, ok := e.Line(index); ok {
			if width := size.Cols - 6; width > 0 {
				line = runewidth.Truncate(line, width, "")
			}
			fmt.Fprintf(&frame, "%3d | %s\r\n", index, line)
		} else {
			frame.WriteString("~\r\n")
		}
	}

	writeCommandBar(&frame, size.Cols)

	if message := c.GetMessage(); message != "" {
		frame.WriteString(": " + message)
	} else {
		frame.WriteString(": " + c.GetCommand())
	}
	return frame.Bytes()
}

// writeCommandBar spreads the hints across the width with equal gaps.
func writeCommandBar(frame *bytes.Buffer, cols int) {
	total := 0
	for _, hint := range hints {
		total += runewidth.StringWidth(hint)
	}
	gap := 1
	if spaces := cols - total; spaces > 0 {
		gap = spaces / (len(hints) - 1)
	}

	frame.WriteString("\r\n")
	for i, hint := range hints {
		frame.WriteString(bold(hint))
		if i < len(hints)-1 {
			frame.WriteString(strings.Repeat(" ", gap))
		}
	}
	frame.WriteString("\r\n")
}

// bold renders the title and hint styling, bright white as the original
// used for its bars.
func bold(s string) string {
	return termenv.String(s).Bold().Foreground(termenv.ANSIBrightWhite).String()
}
