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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// Write the blessed and executed entries of the disassembly to io.Writer, in
// address order. A gap between sequences is indicated by an empty line.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	gap := false
	written := false

	a := 0
	for a < cpubus.MemorySize {
		e := dsm.entries[a]
		if e == nil || e.Level < EntryLevelBlessed {
			gap = true
			a++
			continue
		}

		if gap && written {
			if _, err := io.WriteString(output, "\n"); err != nil {
				return err
			}
		}
		gap = false
		written = true

		if err := WriteEntry(output, attr, e); err != nil {
			return err
		}

		a += max(e.Result.ByteCount, 1)
	}

	return nil
}

// WriteRange writes a linear disassembly of the memory between start and end
// inclusive. Each entry follows on from the bytes consumed by the previous
// entry, regardless of its level.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, start uint16, end uint16) error {
	if end < start {
		return fmt.Errorf("disassembly: end of range (%#04x) is before start (%#04x)", end, start)
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	a := int(start)
	for a <= int(end) {
		e := dsm.entries[a]
		if err := WriteEntry(output, attr, e); err != nil {
			return err
		}
		a += max(e.Result.ByteCount, 1)
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%-8s  ", e.Bytecode)
	}

	s = fmt.Sprintf("%s%s  %s %-9s", s, e.Address, e.Operator, e.Operand)

	if attr.Cycles {
		s = fmt.Sprintf("%s %-3s", s, e.Cycles())
	}

	if attr.Notes {
		if n := e.Notes(); n != "" {
			s = fmt.Sprintf("%s %s", s, n)
		}
	}

	_, err := fmt.Fprintln(output, strings.TrimRight(s, " "))
	return err
}
