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

// Package registers implements the three types of registers found in the 6502.
// The general purpose 8 bit registers, A, X, Y and the stack pointer are
// represented by the Register type. The program counter has its own type, as
// does the status register.
//
// Register operations never touch the status register directly. Instead,
// operations return the carry and overflow state where relevant and the CPU
// decides how to use that information. Zero and sign flags are derived from
// the result with the IsZero() and IsNegative() functions, or in a single call
// with StatusRegister.SetZN(). For example:
//
//	a.Load(10)
//	sr.Carry, _ = a.Subtract(11, true)
//	sr.SetZN(a.Value())
//
// In this case, the zero flag in the status register will be false and the
// carry flag will be false, indicating a borrow.
//
// Decimal mode arithmetic is kept apart from the binary arithmetic, in the
// AddDecimal() and SubtractDecimal() functions.
package registers
