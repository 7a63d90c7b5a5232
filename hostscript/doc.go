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

// Package hostscript runs Lua scripts alongside the emulated machine. A
// script can inspect and change memory, read the CPU registers and raise
// interrupts while the machine is running.
//
// The following functions are available to the script:
//
//	peek(address)         returns the byte at the address
//	poke(address, value)  writes the byte to the address
//	reg(name)             returns the value of a register (A, X, Y, SP, PC or SR)
//	cycles()              returns the number of cycles executed so far
//	irq()                 raises the interrupt request line
//	nmi()                 raises the non-maskable interrupt line
//	stop()                stops the machine at the next instruction boundary
//	log(message)          adds the message to the central log
//
// The body of the script is run when the script is loaded, before the
// machine starts. If the script defines a function called on_step it is
// called after every instruction. A function called on_halt is called once
// when the machine has finished.
package hostscript
