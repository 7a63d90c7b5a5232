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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/test"
)

func TestResultString(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{Address: 0x0200, Defn: defs[0xa9], InstructionData: 0x01}
	test.ExpectEquality(t, r.String(), "0x0200 LDA #$01")

	r = execution.Result{Address: 0x0300, Defn: defs[0xbd], InstructionData: 0x1234}
	test.ExpectEquality(t, r.String(), "0x0300 LDA $1234,X")

	r = execution.Result{Address: 0x0300, Defn: defs[0xb1], InstructionData: 0x80}
	test.ExpectEquality(t, r.String(), "0x0300 LDA ($80),Y")

	r = execution.Result{Address: 0x0300, Defn: defs[0x0a]}
	test.ExpectEquality(t, r.String(), "0x0300 ASL A")

	r = execution.Result{Address: 0x0300, Defn: defs[0xea]}
	test.ExpectEquality(t, r.String(), "0x0300 NOP")

	// branch operand is shown as the target address
	r = execution.Result{Address: 0x0210, Defn: defs[0xd0], InstructionData: 0xfe}
	test.ExpectEquality(t, r.String(), "0x0210 BNE $0210")
	r = execution.Result{Address: 0x0210, Defn: defs[0xd0], InstructionData: 0x10}
	test.ExpectEquality(t, r.String(), "0x0210 BNE $0222")

	r = execution.Result{Address: 0xabcd}
	test.ExpectEquality(t, r.String(), "0xABCD ???")
}

func TestResultValidity(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{Defn: defs[0xa9], ByteCount: 2, Cycles: 2}
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	// successful branch takes one extra cycle
	r = execution.Result{Defn: defs[0xd0], ByteCount: 2, Cycles: 3, BranchSuccess: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = false
	test.ExpectFailure(t, r.IsValid())

	// page faults are only valid for page sensitive instructions
	r = execution.Result{Defn: defs[0xbd], ByteCount: 3, Cycles: 4, PageFault: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r = execution.Result{Defn: defs[0x9d], ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectFailure(t, r.IsValid())
}
