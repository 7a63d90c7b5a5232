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

package registers

// the two nibbles of a register are treated as the two digits of a decimal
// number. nibbles greater than nine are not valid BCD and the result of
// arithmetic on them is not meaningful, although it is well defined.
func fromBCD(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

// AddDecimal adds value to register as though both are two digit decimal
// numbers. The result wraps at 100. Returns new carry state, which is true if
// the sum exceeded 99.
//
// The overflow flag has no meaning in decimal mode and so is not returned.
func (r *Register) AddDecimal(val uint8, carry bool) bool {
	res := fromBCD(r.value) + fromBCD(val)
	if carry {
		res++
	}

	rcarry := res > 99
	if rcarry {
		res -= 100
	}

	r.value = toBCD(res)

	return rcarry
}

// SubtractDecimal subtracts value from the register as though both are two
// digit decimal numbers. A carry value of false means a borrow is taken from
// the result. The result wraps at zero to 99. Returns the new carry state,
// which is false if the subtraction needed to borrow.
func (r *Register) SubtractDecimal(val uint8, carry bool) bool {
	res := fromBCD(r.value) - fromBCD(val)
	if !carry {
		res--
	}

	rcarry := res >= 0
	if !rcarry {
		res += 100
	}

	r.value = toBCD(res)

	return rcarry
}
