// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package hexprompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// The text of the two questions.
const (
	ProgramPrompt = "Please enter program hex: "
	DebugPrompt   = "Debug? (y/n): "
)

// Answers to the questions asked by Ask().
type Answers struct {
	// the program as entered. will be empty if the user just pressed return
	Hex string

	// whether the instruction trace should be shown
	Debug bool
}

// Prompt asks questions on the output and reads the answers from the input.
type Prompt struct {
	input  io.Reader
	output io.Writer
	reader *bufio.Reader

	// input is a terminal that can be put into cbreak mode
	terminal *os.File
}

// NewPrompt is the preferred method of initialisation for the Prompt type.
func NewPrompt(input io.Reader, output io.Writer) *Prompt {
	p := &Prompt{
		input:  input,
		output: output,
		reader: bufio.NewReader(input),
	}

	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.terminal = f
	}

	return p
}

// Ask both questions.
func (p *Prompt) Ask() (Answers, error) {
	var a Answers
	var err error

	a.Hex, err = p.Program()
	if err != nil {
		return a, err
	}

	a.Debug, err = p.Debug()
	if err != nil {
		return a, err
	}

	return a, nil
}

// Program asks for the program hex. The answer is returned without any
// processing except for the removal of the line ending.
func (p *Prompt) Program() (string, error) {
	if _, err := io.WriteString(p.output, ProgramPrompt); err != nil {
		return "", fmt.Errorf("hexprompt: %w", err)
	}
	return p.readLine()
}

// Debug asks whether the instruction trace should be shown. Any answer
// containing a 'y' is taken as a yes.
func (p *Prompt) Debug() (bool, error) {
	if _, err := io.WriteString(p.output, DebugPrompt); err != nil {
		return false, fmt.Errorf("hexprompt: %w", err)
	}

	if p.terminal != nil && p.reader.Buffered() == 0 {
		k, err := p.readKey()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(p.output, "%c\n", k)
		return k == 'y', nil
	}

	s, err := p.readLine()
	if err != nil {
		return false, err
	}

	return strings.ContainsRune(s, 'y'), nil
}

func (p *Prompt) readLine() (string, error) {
	s, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("hexprompt: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// readKey reads a single key press from the terminal. the terminal is put
// into cbreak mode for the duration of the read.
func (p *Prompt) readKey() (byte, error) {
	fd := p.terminal.Fd()

	var canAttr unix.Termios
	if err := termios.Tcgetattr(fd, &canAttr); err != nil {
		return 0, fmt.Errorf("hexprompt: %w", err)
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &cbreakAttr); err != nil {
		return 0, fmt.Errorf("hexprompt: %w", err)
	}
	defer termios.Tcsetattr(fd, termios.TCSANOW, &canAttr)

	b := make([]byte, 1)
	if _, err := p.terminal.Read(b); err != nil {
		return 0, fmt.Errorf("hexprompt: %w", err)
	}

	return b[0], nil
}
