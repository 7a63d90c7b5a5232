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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/test"
)

func TestDefinitionTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var count int
	for i, defn := range defs {
		if defn == nil {
			continue
		}
		count++

		tag := fmt.Sprintf("opcode %#02x", i)
		test.ExpectEquality(t, int(defn.OpCode), i, tag)

		switch defn.AddressingMode {
		case instructions.Implied:
			test.ExpectEquality(t, defn.Bytes, 1, tag)
		case instructions.Absolute, instructions.Indirect, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			test.ExpectEquality(t, defn.Bytes, 3, tag)
		default:
			test.ExpectEquality(t, defn.Bytes, 2, tag)
		}

		test.ExpectEquality(t, defn.OperandBytes(), defn.Bytes-1, tag)
		test.ExpectInequality(t, defn.Cycles, 0, tag)

		if defn.AddressingMode == instructions.Relative {
			test.ExpectSuccess(t, defn.IsBranch(), tag)
			test.ExpectEquality(t, defn.Cycles, 2, tag)
		} else {
			test.ExpectFailure(t, defn.IsBranch(), tag)
		}
	}

	test.ExpectEquality(t, count, 151)

	// unofficial opcodes are not defined
	for _, op := range []int{0x02, 0x03, 0x1a, 0x80, 0xab, 0xff} {
		test.ExpectSuccess(t, defs[op] == nil, fmt.Sprintf("opcode %#02x", op))
	}
}

func TestSpotDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0x69].Mnemonic(), "ADC")
	test.ExpectEquality(t, defs[0x69].AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defs[0x00].Operator, instructions.Brk)
	test.ExpectEquality(t, defs[0x00].Effect, instructions.Interrupt)
	test.ExpectEquality(t, defs[0x20].Effect, instructions.Subroutine)
	test.ExpectEquality(t, defs[0x6c].AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defs[0x96].AddressingMode, instructions.ZeroPageIndexedY)
	test.ExpectEquality(t, defs[0xfe].Effect, instructions.RMW)
	test.ExpectEquality(t, defs[0xfe].Cycles, 7)
	test.ExpectEquality(t, defs[0x0a].AddressingMode, instructions.Implied)
	test.ExpectEquality(t, defs[0x0a].Effect, instructions.RMW)
	test.ExpectEquality(t, defs[0xa9].String(), "a9 LDA +2bytes (2 cycles) [mode=Immediate pagesens=false effect=Read]")
}

func TestMnemonics(t *testing.T) {
	op, err := instructions.OperatorFromMnemonic("lda")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op, instructions.Lda)
	test.ExpectEquality(t, op.String(), "LDA")
	test.ExpectEquality(t, op.GoString(), "instructions.Lda")

	_, err = instructions.OperatorFromMnemonic("XAA")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, instructions.IndirectIndexed.GoString(), "instructions.IndirectIndexed")
	test.ExpectEquality(t, instructions.Subroutine.String(), "Subroutine")
}
