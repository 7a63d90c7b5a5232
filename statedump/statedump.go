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

package statedump

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
)

// Registers returns the single line summary of the CPU registers.
func Registers(mc *cpu.CPU) string {
	return fmt.Sprintf("[ACC: 0x%02X X: 0x%02X Y: 0x%02X PC: 0x%04X SP: 0x%02X ]",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.PC.Address(), mc.SP.Value())
}

// String returns the register line followed by the status flags, one per
// line.
func String(mc *cpu.CPU) string {
	s := strings.Builder{}
	s.WriteString(Registers(mc))
	for _, f := range mc.Status.Flags() {
		s.WriteString("\n")
		s.WriteString(f)
	}
	return s.String()
}

// Write the state of the CPU to the io.Writer.
func Write(output io.Writer, mc *cpu.CPU) error {
	_, err := io.WriteString(output, String(mc)+"\n")
	if err != nil {
		return fmt.Errorf("statedump: %w", err)
	}
	return nil
}

// snapshot is the part of the CPU that is graphed. the CPU itself can't be
// given to memviz because it would follow the reference to the entire
// memory.
type snapshot struct {
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	PC         uint16
	Status     registers.StatusRegister
	Cycles     uint64
	Halted     bool
	LastResult execution.Result
}

// Graph writes the state of the CPU to the io.Writer in the Graphviz dot
// format.
func Graph(output io.Writer, mc *cpu.CPU) {
	s := &snapshot{
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		PC:         mc.PC.Address(),
		Status:     mc.Status,
		Cycles:     mc.Cycles,
		Halted:     mc.Halted,
		LastResult: mc.LastResult,
	}
	memviz.Map(output, s)
}
