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

package instructions

import (
	"fmt"
	"strings"
)

// Operator identifies the operation performed by an instruction, independent
// of the addressing mode.
type Operator int

// List of operators for the legal 6502 instructions.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	numOperators
)

var operatorNames = [numOperators]string{
	Nop: "NOP",
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Brk: "BRK",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jmp: "JMP",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Ora: "ORA",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
	Rol: "ROL",
	Ror: "ROR",
	Rti: "RTI",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
}

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return "???"
	}
	return operatorNames[op]
}

// GoString is used by the instruction table generator.
func (op Operator) GoString() string {
	if op < 0 || op >= numOperators {
		return fmt.Sprintf("instructions.Operator(%d)", int(op))
	}
	n := operatorNames[op]
	return fmt.Sprintf("instructions.%s%s", n[:1], strings.ToLower(n[1:]))
}

// OperatorFromMnemonic returns the Operator for the three letter mnemonic.
// The comparison is case insensitive.
func OperatorFromMnemonic(mnemonic string) (Operator, error) {
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	for op := Operator(0); op < numOperators; op++ {
		if operatorNames[op] == m {
			return op, nil
		}
	}
	return Nop, fmt.Errorf("instructions: unknown mnemonic (%s)", mnemonic)
}
