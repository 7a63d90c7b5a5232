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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The Memory interface defines the memory
// operations required by the CPU. See the memory package for the flat 64k
// implementation.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Each call services any pending interrupt and then executes exactly one
// instruction.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for !mc.Halted {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//	}
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
//
// Interrupts are requested with RequestInterrupt() and RequestNMInterrupt().
// These functions can be called from any goroutine. The request is serviced
// at the start of the next call to ExecuteInstruction(), subject to the
// interrupt disable flag in the case of IRQ.
//
// The BRK instruction halts the CPU by default. Setting HaltOnBreak to false
// makes BRK behave as a software interrupt, with execution continuing at the
// address in the IRQ vector.
//
// Timing is instruction accurate only. A successful branch takes one extra
// cycle but page crossings by indexed addressing and branches do not. Page
// crossings are noted in LastResult for instructions where the real hardware
// would take the extra cycle.
package cpu
