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

// the break bit in the status byte as it appears on the stack
const breakBit = 0x10

// number of cycles taken by the hardware interrupt sequence
const interruptCycles = 7

// RequestInterrupt raises the IRQ line. The interrupt will be serviced at the
// start of the next instruction for which the interrupt disable flag is
// clear. Multiple requests before the interrupt is serviced are coalesced.
//
// Safe to call from any goroutine.
func (mc *CPU) RequestInterrupt() {
	mc.irq.Store(true)
}

// RequestNMInterrupt raises the NMI line. The interrupt will be serviced at
// the start of the next instruction regardless of the interrupt disable flag.
//
// Safe to call from any goroutine.
func (mc *CPU) RequestNMInterrupt() {
	mc.nmi.Store(true)
}

// InterruptPending returns true if either interrupt line is raised.
func (mc *CPU) InterruptPending() bool {
	return mc.nmi.Load() || mc.irq.Load()
}

// serviceInterrupts checks the interrupt lines and runs the interrupt
// sequence for the highest priority line. the IRQ line remains raised while
// the interrupt disable flag is set. returns true if an interrupt was
// serviced.
func (mc *CPU) serviceInterrupts() bool {
	if mc.nmi.CompareAndSwap(true, false) {
		mc.interrupt(cpubus.NMI, mc.PC.Address(), false)
		return true
	}

	if !mc.Status.InterruptDisable && mc.irq.CompareAndSwap(true, false) {
		mc.interrupt(cpubus.IRQ, mc.PC.Address(), false)
		return true
	}

	return false
}

// interrupt pushes the return address and the status byte and then loads the
// PC from the vector. the break bit in the pushed status byte is set only for
// the BRK instruction.
func (mc *CPU) interrupt(vector uint16, returnAddress uint16, brk bool) {
	mc.pushAddress(returnAddress)

	status := mc.Status.Value() &^ breakBit
	if brk {
		status |= breakBit
	}
	mc.pushStack(status)

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))
}
