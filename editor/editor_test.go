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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeptex/zeptex/types"
)

func editorWithLines(n int, rows int) *Editor {
	e := NewEditor()
	for i := 1; i <= n; i++ {
		e.AppendLine(fmt.Sprintf("line %d", i))
	}
	e.SetSize(types.Size{Rows: rows, Cols: 80})
	return e
}

func checkClamp(t *testing.T, e *Editor, usable int) {
	t.Helper()
	max := e.Count() - usable
	if max < 0 {
		max = 0
	}
	if e.Offset() < 0 || e.Offset() > max {
		t.Errorf("offset %d outside 0..%d for count %d, usable %d",
			e.Offset(), max, e.Count(), usable)
	}
}

func TestDeletePullsOffsetBack(t *testing.T) {
	e := editorWithLines(10, 6) // one usable row
	e.RevealLine(10)
	if e.Offset() != 9 {
		t.Fatalf("offset after reveal = %d, want 9", e.Offset())
	}
	e.DeleteLine(10)
	if e.Offset() != 8 {
		t.Errorf("offset after deleting the last line = %d, want 8", e.Offset())
	}
	for i := e.Count(); i > 0; i-- {
		e.DeleteLine(i)
	}
	if e.Offset() != 0 {
		t.Errorf("offset on an empty buffer = %d, want 0", e.Offset())
	}
}

func TestClampInvariantUnderMutation(t *testing.T) {
	e := editorWithLines(30, 15) // ten usable rows
	e.RevealLine(30)
	checkClamp(t, e, 10)

	for i := 0; i < 25; i++ {
		e.DeleteLine(1)
		e.ClampOffset()
		checkClamp(t, e, 10)
	}

	for i := 0; i < 40; i++ {
		e.AppendLine("more")
		e.RevealLine(e.Count())
		checkClamp(t, e, 10)
	}

	// shrinking the terminal shrinks the usable window
	e.SetSize(types.Size{Rows: 8, Cols: 80})
	e.ClampOffset()
	checkClamp(t, e, 3)
}

func TestRevealLine(t *testing.T) {
	e := editorWithLines(60, 15) // ten usable rows
	if e.Offset() != 0 {
		t.Fatalf("initial offset = %d", e.Offset())
	}
	e.InsertLine(50, "inserted")
	e.RevealLine(50)
	if e.Offset() != 40 {
		t.Errorf("offset = %d, want 40", e.Offset())
	}
	if first, last := e.Offset()+1, e.Offset()+10; 50 < first || 50 > last {
		t.Errorf("line 50 not visible in %d..%d", first, last)
	}
	checkClamp(t, e, 10)

	// revealing an already-visible line must not move the window
	e.RevealLine(41)
	if e.Offset() != 40 {
		t.Errorf("offset moved to %d for a visible line", e.Offset())
	}
}

func TestScrollBounds(t *testing.T) {
	e := editorWithLines(5, 9) // four usable rows, max offset 1
	e.ScrollUp()
	if e.Offset() != 0 {
		t.Errorf("scroll up at the top moved to %d", e.Offset())
	}
	e.ScrollDown()
	if e.Offset() != 1 {
		t.Errorf("scroll down = %d, want 1", e.Offset())
	}
	e.ScrollDown()
	if e.Offset() != 1 {
		t.Errorf("scroll down at the bottom moved to %d", e.Offset())
	}
	e.ScrollUp()
	if e.Offset() != 0 {
		t.Errorf("scroll up = %d, want 0", e.Offset())
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.txt")
	lines := []string{"first", "", "  two  spaces  ", "last"}

	e := NewEditor()
	for _, line := range lines {
		e.AppendLine(line)
	}
	if err := e.WriteFile(path); err != nil {
		t.Fatalf("write failed: %+v", err)
	}

	loaded := NewEditor()
	if err := loaded.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	if loaded.Count() != len(lines) {
		t.Fatalf("count = %d, want %d", loaded.Count(), len(lines))
	}
	for i, want := range lines {
		if line, _ := loaded.Line(i + 1); line != want {
			t.Errorf("line %d = %q, want %q", i+1, line, want)
		}
	}
}

func TestReadFileCaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	var content strings.Builder
	for i := 0; i < types.MaxLines+5; i++ {
		content.WriteString(fmt.Sprintf("line %d\n", i))
	}
	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}

	e := NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	if e.Count() != types.MaxLines {
		t.Errorf("count = %d, want the %d cap", e.Count(), types.MaxLines)
	}

	long := strings.Repeat("x", types.MaxLineLen+100)
	path = filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(long+"\n"), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}
	e = NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	if line, _ := e.Line(1); len(line) != types.MaxLineLen {
		t.Errorf("line length = %d, want truncation at %d", len(line), types.MaxLineLen)
	}
}

func TestReadFileMissing(t *testing.T) {
	e := NewEditor()
	path := filepath.Join(t.TempDir(), "absent.txt")
	if err := e.ReadFile(path); err == nil {
		t.Error("expected an error for a missing file")
	}
	if e.Count() != 0 {
		t.Errorf("missing file produced %d lines", e.Count())
	}
	if e.FileName() != path {
		t.Errorf("file name = %q, want the requested path", e.FileName())
	}
}

func TestReadFileNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.txt")
	if err := os.WriteFile(path, []byte("one\ntwo"), 0644); err != nil {
		t.Fatalf("setup failed: %+v", err)
	}
	e := NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	if e.Count() != 2 {
		t.Fatalf("count = %d, want 2", e.Count())
	}
	if line, _ := e.Line(2); line != "two" {
		t.Errorf("last line = %q, want %q", line, "two")
	}
}
