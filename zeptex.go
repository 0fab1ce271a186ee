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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zeptex/zeptex/commander"
	"github.com/zeptex/zeptex/editor"
	"github.com/zeptex/zeptex/screen"
)

func main() {

	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	// The editor manages the line buffer and the view over it.
	e := editor.NewEditor()

	if filename != "" {
		// A file that can't be read just means an empty buffer;
		// the name still becomes the default save target.
		_ = e.ReadFile(filename)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// The screen owns the terminal while the editor runs. Without raw
	// mode the editor can't work, so failing here is fatal.
	s, err := screen.NewScreen(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer s.Close()

	// The alternate screen owns stdout, so diagnostics go to a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.zeptexlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	run(e, c, s)
}

// run is the main event loop: draw a frame, wait for one event, let the
// commander act on it, until a quit command or the end of input.
func run(e *editor.Editor, c *commander.Commander, s *screen.Screen) {
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
