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
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// CPU implements the MOS 6502. Register logic is implemented by the Register
// type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// read-modify-write instructions that operate on memory use this register
	// as a scratch area
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// interrupt lines. these can be raised from any goroutine
	irq atomic.Bool
	nmi atomic.Bool

	// Cycles is the total number of cycles consumed since the last reset,
	// including the cycles taken to service interrupts
	Cycles uint64

	// last result. the address field is valid even when the opcode was
	// not recognised
	LastResult execution.Result

	// Halted is true once the CPU has stopped running. a halted CPU will not
	// execute any more instructions until it is reset
	Halted bool

	// HaltOnBreak controls the BRK instruction. when true the CPU halts after
	// the interrupt sequence has completed. when false BRK is a forced
	// interrupt and execution continues at the IRQ vector
	HaltOnBreak bool

	// DetectTraps halts the CPU when it reaches an instruction that jumps or
	// branches to itself
	DetectTraps bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zero, except for the stack pointer which is 0xff, and the
// interrupt disable flag is set.
//
// The PC is not loaded from the reset vector. Use Reset() for that.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0xff, "SP"),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
		HaltOnBreak:  true,
	}
	mc.Status.InterruptDisable = true
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Pending interrupts are cleared and the CPU is no longer halted.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.irq.Store(false)
	mc.nmi.Store(false)
	mc.Cycles = 0
	mc.Halted = false
	mc.PC.Load(mc.read16(cpubus.Reset))
}

// LoadPC loads the address into the PC.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// read16 returns the little-endian word at the address.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}
