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
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/logger"
)

// ExecuteInstruction services any pending interrupt and then executes the
// instruction at the PC. The result of the instruction is recorded in
// LastResult.
//
// Returns UnknownOpcodeError if the byte at the PC is not a recognised
// opcode. The CPU will be halted in that case and the PC will still point to
// the unrecognised opcode.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return HaltedError
	}

	mc.LastResult.Reset()

	if mc.serviceInterrupts() {
		mc.Cycles += interruptCycles
	}

	address := mc.PC.Address()
	opcode := mc.mem.Read(address)
	mc.LastResult.Address = address

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.Halted = true
		return &UnknownOpcodeError{Opcode: opcode, PC: address}
	}

	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.Cycles = defn.Cycles

	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.nextByte())
	case 3:
		mc.LastResult.InstructionData = mc.next2Bytes()
	}

	if !mc.execute(defn) {
		mc.PC.Add(uint16(defn.Bytes))
	}

	mc.Cycles += uint64(mc.LastResult.Cycles)
	mc.LastResult.Final = true

	if mc.DetectTraps && mc.trapped() {
		logger.Logf(logger.Allow, "cpu", "TRAPPED at 0x%04X", address)
		mc.Halted = true
	}

	return nil
}

// trapped returns true if the last instruction was a jump or a successful
// branch to itself.
func (mc *CPU) trapped() bool {
	switch {
	case mc.LastResult.Defn.Operator == instructions.Jmp:
		return mc.PC.Address() == mc.LastResult.Address
	case mc.LastResult.BranchSuccess:
		return uint8(mc.LastResult.InstructionData) == 0xfe
	}
	return false
}

// execute the instruction. returns true if the instruction loaded the PC
// itself.
func (mc *CPU) execute(defn *instructions.Definition) bool {
	switch defn.Operator {
	case instructions.Nop:

	case instructions.Lda:
		mc.A.Load(mc.operand())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(mc.operand())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(mc.operand())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		mc.mem.Write(mc.effectiveAddress(), mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(mc.effectiveAddress(), mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(mc.effectiveAddress(), mc.Y.Value())

	case instructions.Tax:
		mc.transfer(&mc.X, mc.A)

	case instructions.Tay:
		mc.transfer(&mc.Y, mc.A)

	case instructions.Tsx:
		mc.transfer(&mc.X, mc.SP)

	case instructions.Txa:
		mc.transfer(&mc.A, mc.X)

	case instructions.Tya:
		mc.transfer(&mc.A, mc.Y)

	case instructions.Txs:
		// the only transfer that does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Adc:
		v := mc.operand()
		if mc.Status.DecimalMode {
			mc.Status.Carry = mc.A.AddDecimal(v, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		}
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sbc:
		v := mc.operand()
		if mc.Status.DecimalMode {
			mc.Status.Carry = mc.A.SubtractDecimal(v, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
		}
		mc.Status.SetZN(mc.A.Value())

	case instructions.Cmp:
		mc.compare(mc.A)

	case instructions.Cpx:
		mc.compare(mc.X)

	case instructions.Cpy:
		mc.compare(mc.Y)

	case instructions.And:
		mc.A.AND(mc.operand())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(mc.operand())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(mc.operand())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Asl:
		mc.readModifyWrite(func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})

	case instructions.Lsr:
		mc.readModifyWrite(func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})

	case instructions.Rol:
		mc.readModifyWrite(func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})

	case instructions.Ror:
		mc.readModifyWrite(func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})

	case instructions.Inc:
		mc.readModifyWrite(func(r *registers.Register) {
			r.Increment()
		})

	case instructions.Dec:
		mc.readModifyWrite(func(r *registers.Register) {
			r.Decrement()
		})

	case instructions.Inx:
		mc.X.Increment()
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Increment()
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Decrement()
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Decrement()
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Bit:
		v := mc.operand()
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.Bcc:
		return mc.branch(!mc.Status.Carry)

	case instructions.Bcs:
		return mc.branch(mc.Status.Carry)

	case instructions.Beq:
		return mc.branch(mc.Status.Zero)

	case instructions.Bne:
		return mc.branch(!mc.Status.Zero)

	case instructions.Bmi:
		return mc.branch(mc.Status.Sign)

	case instructions.Bpl:
		return mc.branch(!mc.Status.Sign)

	case instructions.Bvc:
		return mc.branch(!mc.Status.Overflow)

	case instructions.Bvs:
		return mc.branch(mc.Status.Overflow)

	case instructions.Jmp:
		mc.PC.Load(mc.effectiveAddress())
		return true

	case instructions.Jsr:
		// the return address pushed to the stack is the address of the last
		// byte of the JSR instruction
		mc.pushAddress(mc.PC.Address() + uint16(defn.Bytes) - 1)
		mc.PC.Load(mc.next2Bytes())
		return true

	case instructions.Rts:
		// the PC is advanced past the last byte of the JSR instruction in the
		// normal way
		mc.PC.Load(mc.pullAddress())

	case instructions.Rti:
		mc.Status.Load(mc.pullStack())
		mc.PC.Load(mc.pullAddress())
		return true

	case instructions.Brk:
		// BRK is a two byte instruction as far as the return address is
		// concerned, even though the second byte is never read
		mc.interrupt(cpubus.BRK, mc.PC.Address()+2, true)
		if mc.HaltOnBreak {
			mc.Halted = true
		}
		return true

	case instructions.Pha:
		mc.pushStack(mc.A.Value())

	case instructions.Php:
		mc.pushStack(mc.Status.Value() | breakBit)

	case instructions.Pla:
		mc.A.Load(mc.pullStack())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Plp:
		mc.Status.Load(mc.pullStack())

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true
	}

	return false
}

// transfer the value of one register to another and update the zero and sign
// flags from the result.
func (mc *CPU) transfer(dest *registers.Register, src registers.Register) {
	dest.Load(src.Value())
	mc.Status.SetZN(dest.Value())
}

func (mc *CPU) compare(r registers.Register) {
	mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = r.Compare(mc.operand())
}

// readModifyWrite applies the operation to the accumulator if the instruction
// uses implied addressing, otherwise to the value at the effective address.
// zero and sign flags are set from the result.
func (mc *CPU) readModifyWrite(op func(r *registers.Register)) {
	if mc.LastResult.Defn.AddressingMode == instructions.Implied {
		op(&mc.A)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	address := mc.effectiveAddress()
	mc.acc8.Load(mc.mem.Read(address))
	op(&mc.acc8)
	mc.mem.Write(address, mc.acc8.Value())
	mc.Status.SetZN(mc.acc8.Value())
}

// branch to the relative address if the condition is true. a successful
// branch takes one extra cycle. returns true if the branch was taken.
func (mc *CPU) branch(condition bool) bool {
	if !condition {
		return false
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	next := mc.PC.Address() + uint16(mc.LastResult.Defn.Bytes)
	target := mc.LastResult.BranchTarget()
	mc.checkPageFault(next, target)
	mc.PC.Load(target)

	return true
}
