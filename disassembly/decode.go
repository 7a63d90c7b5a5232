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

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

var definitions = instructions.GetDefinitions()

// Decode the instruction at the address. The memory is not changed and the
// returned entry has level EntryLevelDecoded.
func Decode(mem cpubus.Memory, address uint16) *Entry {
	opcode := mem.Read(address)
	defn := definitions[opcode]

	result := execution.Result{
		Address: address,
		Defn:    defn,
	}

	if defn == nil {
		e := formatResult(result, EntryLevelDecoded)
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		return e
	}

	switch defn.OperandBytes() {
	case 1:
		result.InstructionData = uint16(mem.Read(address + 1))
	case 2:
		result.InstructionData = uint16(mem.Read(address+1)) | uint16(mem.Read(address+2))<<8
	}

	result.ByteCount = defn.Bytes
	result.Cycles = defn.Cycles
	result.Final = true

	return formatResult(result, EntryLevelDecoded)
}

// decode every address in memory.
func (dsm *Disassembly) decode(mem cpubus.Memory) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for a := 0; a < cpubus.MemorySize; a++ {
		dsm.entries[a] = Decode(mem, uint16(a))
	}
	dsm.counts[EntryLevelDecoded] = cpubus.MemorySize
}

// bless those entries which are reachable from the vectors. entries are
// blessed in sequence until a flow control instruction that does not return
// is reached. the targets of JMP, JSR and branch instructions start new
// sequences.
func (dsm *Disassembly) bless(mem cpubus.Memory) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	vector := func(a uint16) uint16 {
		return uint16(mem.Read(a)) | uint16(mem.Read(a+1))<<8
	}

	blessings := []uint16{
		vector(cpubus.Reset),
		vector(cpubus.NMI),
		vector(cpubus.IRQ),
	}

	for len(blessings) > 0 {
		a := blessings[0]
		blessings = blessings[1:]

		for {
			e := dsm.entries[a]
			if e.Level == EntryLevelBlessed || e.Result.Defn == nil {
				break
			}

			dsm.counts[e.Level]--
			e.Level = EntryLevelBlessed
			dsm.counts[e.Level]++

			defn := e.Result.Defn

			if defn.IsBranch() {
				blessings = append(blessings, e.Result.BranchTarget())
			}

			switch defn.Operator {
			case instructions.Jsr:
				blessings = append(blessings, e.Result.InstructionData)
			case instructions.Jmp:
				if defn.AddressingMode == instructions.Absolute {
					blessings = append(blessings, e.Result.InstructionData)
				}
			}

			// not stopping on JSR because the sequence will continue if the
			// subroutine has an RTS
			if defn.Operator == instructions.Jmp || defn.Operator == instructions.Rts ||
				defn.Operator == instructions.Rti || defn.Operator == instructions.Brk {
				break
			}

			next := a + uint16(e.Result.ByteCount)
			if next < a {
				break
			}
			a = next
		}
	}
}
