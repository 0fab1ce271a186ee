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
	"errors"
	"strconv"
	"strings"
)

// Command kinds
const (
	CommandNone = iota
	CommandQuit
	CommandInsert
	CommandAppend
	CommandDelete
	CommandWrite
)

// A Command is one parsed line of prompt input.
type Command struct {
	Kind int
	Line int    // insert, delete
	Text string // insert, append
	File string // write; empty means the startup file
}

// Messages shown at the prompt for malformed commands.
var (
	ErrInsertSyntax    = errors.New("Invalid insert syntax. Use: i <line> <text>")
	ErrInsertLine      = errors.New("Invalid line number. Use: i <line> <text>")
	ErrAppendSyntax    = errors.New("Invalid append syntax. Use: a <text>")
	ErrNothingToAppend = errors.New("No text to append. Use: a <text>")
)

// Parse interprets a submitted command line. A non-nil error carries the
// message to show at the prompt. Unrecognized input and a delete with an
// unparseable argument come back as CommandNone with no error.
//
// The line-number token ends at the first space after the command letter;
// everything past that space is the text payload, taken verbatim so that
// inserted text can itself contain spaces.
func Parse(input string) (Command, error) {
	if input == "q" {
		return Command{Kind: CommandQuit}, nil
	}
	if input == "" {
		return Command{}, nil
	}
	switch input[0] {
	case 'i':
		return parseInsert(input[1:])
	case 'a':
		return parseAppend(input[1:])
	case 'd':
		return parseDelete(input[1:])
	case 'w':
		return parseWrite(input[1:])
	}
	return Command{}, nil
}

func parseInsert(rest string) (Command, error) {
	if !strings.HasPrefix(rest, " ") {
		return Command{}, ErrInsertSyntax
	}
	rest = rest[1:]
	space := strings.IndexByte(rest, ' ')
	if space < 0 {
		// no space after the line number means no text to insert
		return Command{}, ErrInsertSyntax
	}
	line, err := strconv.Atoi(rest[:space])
	if err != nil || line <= 0 {
		return Command{}, ErrInsertLine
	}
	return Command{Kind: CommandInsert, Line: line, Text: rest[space+1:]}, nil
}

func parseAppend(rest string) (Command, error) {
	if !strings.HasPrefix(rest, " ") {
		return Command{}, ErrAppendSyntax
	}
	text := rest[1:]
	if text == "" {
		return Command{}, ErrNothingToAppend
	}
	return Command{Kind: CommandAppend, Text: text}, nil
}

func parseDelete(rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Command{}, nil
	}
	line, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, nil
	}
	return Command{Kind: CommandDelete, Line: line}, nil
}

func parseWrite(rest string) (Command, error) {
	if rest == "" {
		return Command{Kind: CommandWrite}, nil
	}
	if rest[0] != ' ' {
		return Command{}, nil
	}
	return Command{Kind: CommandWrite, File: rest[1:]}, nil
}
