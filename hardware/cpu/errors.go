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
	"errors"
	"fmt"
)

// UnknownOpcodeError is returned by ExecuteInstruction() when the byte at the
// PC is not a recognised opcode. The CPU will be halted.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode (%#02x) at %#04x", e.Opcode, e.PC)
}

// HaltedError is returned by ExecuteInstruction() if the CPU has already
// halted.
var HaltedError = errors.New("cpu: halted")
