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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")
	test.ExpectEquality(t, r8.String(), "test=0x00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.Value(), 1)

	// adding zero to 255 with carry
	r8.Load(255)
	carry, _ = r8.Add(0, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), 0)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(2, true)
	test.ExpectEquality(t, r8.Value(), 255)

	// signed overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, carry, false)

	// increment and decrement wrap
	r8.Load(0xff)
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), 0x00)
	r8.Decrement()
	test.ExpectEquality(t, r8.Value(), 0xff)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x10, "test")

	carry, zero, negative := r8.Compare(0x10)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, negative, false)

	carry, zero, negative = r8.Compare(0x11)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, true)

	carry, zero, negative = r8.Compare(0x00)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, false)

	// a large gap below val still sets negative
	r8.Load(0x01)
	carry, zero, negative = r8.Compare(0xff)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, true)

	// a large gap above val sets negative from bit 7 of the difference
	r8.Load(0xff)
	carry, zero, negative = r8.Compare(0x01)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, true)

	r8.Load(0x90)
	carry, zero, negative = r8.Compare(0x20)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, negative, false)

	r8.Load(0x10)

	// register is unchanged
	test.ExpectEquality(t, r8.Value(), 0x10)
}

func TestAddOverflow(t *testing.T) {
	// overflow is set when both operands have the same sign and the result
	// has a different sign
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			r8 := registers.NewRegister(uint8(a), "test")
			carry, overflow := r8.Add(uint8(b), false)

			sum := a + b
			res := uint8(sum)
			expected := (a < 0x80 && b < 0x80 && res >= 0x80) || (a >= 0x80 && b >= 0x80 && res < 0x80)

			test.ExpectEquality(t, r8.Value(), res, a, b)
			test.ExpectEquality(t, carry, sum > 0xff, a, b)
			test.ExpectEquality(t, overflow, expected, a, b)
		}
	}
}
