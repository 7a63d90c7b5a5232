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

import "github.com/jetsetilly/mos6502/hardware/memory/cpubus"

// pushStack writes the value to the stack and then decrements the stack
// pointer. the stack pointer wraps from 0x00 to 0xff.
func (mc *CPU) pushStack(v uint8) {
	mc.mem.Write(cpubus.StackBase|mc.SP.Address(), v)
	mc.SP.Decrement()
}

// pullStack increments the stack pointer and then reads the value from the
// stack. the stack pointer wraps from 0xff to 0x00.
func (mc *CPU) pullStack() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(cpubus.StackBase | mc.SP.Address())
}

// pushAddress pushes the high byte of the address and then the low byte.
func (mc *CPU) pushAddress(address uint16) {
	mc.pushStack(uint8(address >> 8))
	mc.pushStack(uint8(address))
}

// pullAddress is the reverse of pushAddress.
func (mc *CPU) pullAddress() uint16 {
	lo := mc.pullStack()
	hi := mc.pullStack()
	return uint16(hi)<<8 | uint16(lo)
}
