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

// Generates the table of instruction definitions from the instructions.csv
// file. Run with "go generate" in the parent directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 6502\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "\n}\n}\n"

func parseCSV() (string, error) {
	// open file
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	// treat the file as a CSV file
	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction file can have a variable number of fields per definition.
	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	// create new definitions table
	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		// loop through file until EOF is reached
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		// check for valid record length
		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		// manually trim trailing space from all fields in the record
		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: parse opcode
		opcode := strings.TrimPrefix(strings.ToLower(rec[0]), "0x")
		n, err := strconv.ParseUint(opcode, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: opcode mnemonic
		newDef.Operator, err = instructions.OperatorFromMnemonic(rec[1])
		if err != nil {
			return "", fmt.Errorf("%w [line %d]", err, line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: addressing mode
		//
		// the addressing mode also defines how many bytes an opcode
		// requires
		switch strings.ToUpper(rec[3]) {
		default:
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		case "IMPLIED":
			newDef.AddressingMode = instructions.Implied
			newDef.Bytes = 1
		case "IMMEDIATE":
			newDef.AddressingMode = instructions.Immediate
			newDef.Bytes = 2
		case "RELATIVE":
			newDef.AddressingMode = instructions.Relative
			newDef.Bytes = 2
		case "ABSOLUTE":
			newDef.AddressingMode = instructions.Absolute
			newDef.Bytes = 3
		case "ZERO_PAGE":
			newDef.AddressingMode = instructions.ZeroPage
			newDef.Bytes = 2
		case "INDIRECT":
			newDef.AddressingMode = instructions.Indirect
			newDef.Bytes = 3
		case "PRE_INDEX_INDIRECT":
			newDef.AddressingMode = instructions.IndexedIndirect
			newDef.Bytes = 2
		case "POST_INDEX_INDIRECT":
			newDef.AddressingMode = instructions.IndirectIndexed
			newDef.Bytes = 2
		case "ABSOLUTE_INDEXED_X":
			newDef.AddressingMode = instructions.AbsoluteIndexedX
			newDef.Bytes = 3
		case "ABSOLUTE_INDEXED_Y":
			newDef.AddressingMode = instructions.AbsoluteIndexedY
			newDef.Bytes = 3
		case "INDEXED_ZERO_PAGE_X":
			newDef.AddressingMode = instructions.ZeroPageIndexedX
			newDef.Bytes = 2
		case "INDEXED_ZERO_PAGE_Y":
			newDef.AddressingMode = instructions.ZeroPageIndexedY
			newDef.Bytes = 2
		}

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		}

		// field: effect category
		if len(rec) == 5 {
			// effect field is optional. if it hasn't been included then
			// default instruction effect defaults to 'Read'
			newDef.Effect = instructions.Read
		} else {
			switch strings.ToUpper(rec[5]) {
			default:
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			case "READ":
				newDef.Effect = instructions.Read
			case "WRITE":
				newDef.Effect = instructions.Write
			case "RMW":
				newDef.Effect = instructions.RMW
			case "FLOW":
				newDef.Effect = instructions.Flow
			case "SUB-ROUTINE":
				newDef.Effect = instructions.Subroutine
			case "INTERRUPT":
				newDef.Effect = instructions.Interrupt
			}
		}

		// add new definition to deftable, using opcode as the hash key
		deftable[newDef.OpCode] = newDef
	}

	fmt.Printf("%d opcodes defined, %d undefined\n", len(deftable), 256-len(deftable))

	// output the definitions map as an array
	output := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		def, found := deftable[uint8(opcode)]
		if found {
			output.WriteString(fmt.Sprintf("\n&%#v,", def))
		} else {
			output.WriteString("\nnil,")
		}
	}

	return output.String(), nil
}

func main() {
	// parse definitions files
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// we'll be putting the contents of deftable into the definition package so
	// we need to remove the expicit references to that package
	output = strings.ReplaceAll(output, "instructions.", "")

	// add boiler-plate to output
	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
