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
	"log"

	"github.com/zeptex/zeptex/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  types.Editor
	command string // command as it is being typed at the prompt
	message string // one-line message shown in place of the prompt
	running bool
}

func NewCommander(e types.Editor) *Commander {
	return &Commander{editor: e, running: true}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

// ProcessEvent handles one event from the screen. A nil event means the
// input stream ended and stops the loop.
func (c *Commander) ProcessEvent(event *types.Event) error {
	if event == nil {
		c.running = false
		return nil
	}
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	case types.EventResize:
		c.editor.SetSize(event.Size)
		c.editor.ClampOffset()
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *types.Event) error {
	// any keystroke clears a leftover message before the next redraw
	c.message = ""

	switch event.Key {
	case types.KeyEnter:
		c.PerformCommand()
	case types.KeyBackspace:
		if len(c.command) > 0 {
			c.command = c.command[:len(c.command)-1]
		}
	case types.KeyArrowUp:
		c.editor.ScrollUp()
	case types.KeyArrowDown:
		c.editor.ScrollDown()
	default:
		if event.Ch != 0 && len(c.command) < types.MaxLineLen-1 {
			c.command += string(event.Ch)
		}
	}
	return nil
}

// PerformCommand parses and runs the accumulated command line, then
// clears it. Malformed commands leave their message behind; buffer
// operations with out-of-range arguments are silent no-ops.
func (c *Commander) PerformCommand() {
	cmd, err := Parse(c.command)
	c.command = ""
	if err != nil {
		c.message = err.Error()
		return
	}

	e := c.editor
	switch cmd.Kind {
	case CommandQuit:
		c.running = false
	case CommandInsert:
		e.InsertLine(cmd.Line, cmd.Text)
		e.RevealLine(cmd.Line)
	case CommandAppend:
		e.AppendLine(cmd.Text)
		e.RevealLine(e.Count())
	case CommandDelete:
		e.DeleteLine(cmd.Line)
	case CommandWrite:
		c.writeFile(cmd.File)
	}
}

// writeFile resolves a bare w to the startup file. With neither a name
// nor a startup file it does nothing, and write failures are not shown
// to the user.
func (c *Commander) writeFile(name string) {
	if name == "" {
		name = c.editor.FileName()
	}
	if name == "" {
		return
	}
	if err := c.editor.WriteFile(name); err != nil {
		log.Printf("write %s: %v", name, err)
	}
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
