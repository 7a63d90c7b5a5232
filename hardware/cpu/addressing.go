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

package cpu

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// all addressing functions are relative to the address of the opcode. the PC
// is not advanced until the instruction has completed.

// nextByte returns the first operand byte.
func (mc *CPU) nextByte() uint8 {
	return mc.mem.Read(mc.PC.Address() + 1)
}

// next2Bytes returns the two operand bytes as a little-endian word.
func (mc *CPU) next2Bytes() uint16 {
	return mc.read16(mc.PC.Address() + 1)
}

// absolute addressing, optionally indexed. the offset can carry into the next
// page.
func (mc *CPU) absolute(offset uint8) uint16 {
	base := mc.next2Bytes()
	address := base + uint16(offset)
	mc.checkPageFault(base, address)
	return address
}

// zeroPage addressing, optionally indexed. the offset never carries out of
// page zero.
func (mc *CPU) zeroPage(offset uint8) uint16 {
	return uint16(mc.nextByte() + offset)
}

// readZeroPagePointer returns the little-endian word stored in page zero. the
// high byte of a pointer at 0xff is read from 0x00.
func (mc *CPU) readZeroPagePointer(zp uint8) uint16 {
	lo := mc.mem.Read(uint16(zp))
	hi := mc.mem.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// indirectX is the pre-indexed indirect addressing mode: (zp,X).
func (mc *CPU) indirectX() uint16 {
	return mc.readZeroPagePointer(uint8(mc.zeroPage(mc.X.Value())))
}

// indirectY is the post-indexed indirect addressing mode: (zp),Y.
func (mc *CPU) indirectY() uint16 {
	base := mc.readZeroPagePointer(uint8(mc.zeroPage(0)))
	address := base + mc.Y.Address()
	mc.checkPageFault(base, address)
	return address
}

// indirect addressing is only used by the JMP instruction. the NMOS 6502 does
// not carry into the high byte of the pointer when fetching the second byte
// of the address.
func (mc *CPU) indirect() uint16 {
	pointer := mc.next2Bytes()
	hiPointer := pointer&0xff00 | uint16(uint8(pointer)+1)
	if hiPointer != pointer+1 {
		mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
	}
	lo := mc.mem.Read(pointer)
	hi := mc.mem.Read(hiPointer)
	return uint16(hi)<<8 | uint16(lo)
}

// page faults are noted for page sensitive instructions but no extra cycle is
// charged.
func (mc *CPU) checkPageFault(base uint16, address uint16) {
	if mc.LastResult.Defn != nil && mc.LastResult.Defn.PageSensitive {
		mc.LastResult.PageFault = mc.LastResult.PageFault || base&0xff00 != address&0xff00
	}
}

// effectiveAddress resolves the address used by the current instruction
// according to its addressing mode. immediate, implied and relative
// instructions have no effective address.
func (mc *CPU) effectiveAddress() uint16 {
	switch mc.LastResult.Defn.AddressingMode {
	case instructions.Absolute:
		return mc.absolute(0)
	case instructions.ZeroPage:
		return mc.zeroPage(0)
	case instructions.Indirect:
		return mc.indirect()
	case instructions.IndexedIndirect:
		return mc.indirectX()
	case instructions.IndirectIndexed:
		return mc.indirectY()
	case instructions.AbsoluteIndexedX:
		return mc.absolute(mc.X.Value())
	case instructions.AbsoluteIndexedY:
		return mc.absolute(mc.Y.Value())
	case instructions.ZeroPageIndexedX:
		return mc.zeroPage(mc.X.Value())
	case instructions.ZeroPageIndexedY:
		return mc.zeroPage(mc.Y.Value())
	}
	return 0
}

// operand returns the value used by a read instruction. either the immediate
// value or the value at the effective address.
func (mc *CPU) operand() uint8 {
	if mc.LastResult.Defn.AddressingMode == instructions.Immediate {
		return mc.nextByte()
	}
	return mc.mem.Read(mc.effectiveAddress())
}
