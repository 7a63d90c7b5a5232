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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Result records the state/result of the last executed instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// the instruction definition. will be nil if the opcode was not
	// recognised
	Defn *instructions.Definition

	// the operand of the instruction, as found in memory. a byte value for
	// instructions with one operand byte and a word value for instructions with
	// two operand bytes
	InstructionData uint16

	// the number of bytes read from the instruction stream, including the
	// opcode
	ByteCount int

	// the number of cycles taken by the instruction. usually the same as
	// Defn.Cycles but a successful branch takes one more
	Cycles int

	// whether a branch instruction jumped to a new address
	BranchSuccess bool

	// whether the effective address crossed a page boundary. real hardware
	// would take an extra cycle for page sensitive instructions but this is
	// not charged by the emulation
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether the instruction has been completed
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the instruction in a form similar to assembly language.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("0x%04X ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04X %s", r.Address, r.Defn.Mnemonic()))

	if operand := r.Operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	return s.String()
}

// Operand returns the operand of the instruction in assembly language form.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		// implied addressing for a RMW instruction means the instruction is
		// operating on the accumulator
		if r.Defn.Effect == instructions.RMW {
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.BranchTarget())
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return ""
}

// BranchTarget returns the address a relative branch would jump to. The
// operand byte is a signed displacement from the address of the following
// instruction.
func (r Result) BranchTarget() uint16 {
	return r.Address + 2 + uint16(int8(uint8(r.InstructionData)))
}
