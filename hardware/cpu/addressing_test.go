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
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/test"
)

func TestZeroPageWrap(t *testing.T) {
	mem := memory.NewMemory()
	mc := NewCPU(mem)
	mc.LoadPC(0x0200)

	mem.Write(0x0201, 0xff)
	test.ExpectEquality(t, mc.zeroPage(2), 0x0001)
	test.ExpectEquality(t, mc.zeroPage(0), 0x00ff)

	// pointer at the top of page zero takes its high byte from 0x00
	mem.Write(0x00ff, 0x34)
	mem.Write(0x0000, 0x12)
	mem.Write(0x0100, 0x56)
	test.ExpectEquality(t, mc.readZeroPagePointer(0xff), 0x1234)

	mc.X.Load(0x01)
	mem.Write(0x0201, 0xfe)
	test.ExpectEquality(t, mc.indirectX(), 0x1234)
}

func TestAbsoluteCarry(t *testing.T) {
	mem := memory.NewMemory()
	mc := NewCPU(mem)
	mc.LoadPC(0x0200)

	mem.Write(0x0201, 0xff)
	mem.Write(0x0202, 0x01)
	test.ExpectEquality(t, mc.next2Bytes(), 0x01ff)
	test.ExpectEquality(t, mc.absolute(0), 0x01ff)
	test.ExpectEquality(t, mc.absolute(1), 0x0200)
}

func TestIndirectBug(t *testing.T) {
	mem := memory.NewMemory()
	mc := NewCPU(mem)
	mc.LoadPC(0x0200)

	mem.Write(0x0201, 0xff)
	mem.Write(0x0202, 0x03)
	mem.Write(0x03ff, 0x00)
	mem.Write(0x0300, 0x04)
	mem.Write(0x0400, 0x05)
	test.ExpectEquality(t, mc.indirect(), 0x0400)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
}

func TestStackWrap(t *testing.T) {
	mem := memory.NewMemory()
	mc := NewCPU(mem)

	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	for i := 0; i < 256; i++ {
		mc.pushStack(uint8(i))
	}
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// every address in the stack page was written once
	test.ExpectEquality(t, mem.Read(0x01ff), 0x00)
	test.ExpectEquality(t, mem.Read(0x0100), 0xff)

	for i := 0; i < 256; i++ {
		mc.pullStack()
	}
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// SP wraps from 0x00 to 0xff on push and back again on pull
	mc.SP.Load(0x00)
	mc.pushStack(0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mem.Read(0x0100), 0xaa)
	test.ExpectEquality(t, mc.pullStack(), 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)

	mc.pushAddress(0xabcd)
	test.ExpectEquality(t, mc.pullAddress(), 0xabcd)
}
