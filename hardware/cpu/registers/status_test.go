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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/test"
)

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.String(), "sv-bdizc")
	test.ExpectEquality(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.InterruptDisable = true
	test.ExpectEquality(t, sr.String(), "sv-bdIzC")
	test.ExpectEquality(t, sr.Value(), 0x25)

	// the unused bit is ignored when loading
	sr.Load(0xdf)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.SetZN(0x00)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Sign, false)
	sr.SetZN(0x80)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Sign, true)
}

func TestStatusFlags(t *testing.T) {
	var sr registers.StatusRegister
	sr.Zero = true
	sr.Sign = true

	f := sr.Flags()
	test.DemandEquality(t, len(f), 7)
	test.ExpectEquality(t, f[0], "carry: false")
	test.ExpectEquality(t, f[1], "zero: true")
	test.ExpectEquality(t, f[6], "negative: true")
}
