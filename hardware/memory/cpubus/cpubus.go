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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The address space is flat and every address is readable and writable,
// so neither operation can fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// MemorySize is the number of addressable bytes.
const MemorySize = 0x10000

// Special locations in the address space.
const (
	// the stack occupies page one. the stack pointer is an index into this page
	StackBase = uint16(0x0100)

	// where programs are loaded by convention
	ProgramOrigin = uint16(0x0200)

	// NMI is the address where the non-maskable interrupt address is stored
	NMI = uint16(0xfffa)

	// Reset is the address where the reset address is stored
	Reset = uint16(0xfffc)

	// IRQ is the address where the interrupt address is stored. the BRK
	// instruction uses the same vector
	IRQ = uint16(0xfffe)
	BRK = IRQ
)
