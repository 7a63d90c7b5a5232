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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of an
// instruction. Blessed entries have been reached by following the flow of
// the program from one of the vectors. Executed entries have been seen by
// the CPU.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// copy of the CPU execution. the Defn field will be nil if the opcode
	// is not recognised
	Result execution.Result

	// string representations of information in execution.Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

// formatResult creates an Entry for the result with the specified level.
func formatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Level:   level,
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic()
	e.Operand = result.Operand()

	switch result.Defn.Bytes {
	case 3:
		e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, uint8(result.InstructionData), uint8(result.InstructionData>>8))
	case 2:
		e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, uint8(result.InstructionData))
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	return e
}

// Cycles returns the number of cycles for the entry. Entries that have not
// been executed show the range of possible cycles for branch instructions.
func (e *Entry) Cycles() string {
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level == EntryLevelExecuted {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	if e.Result.Defn.IsBranch() {
		return fmt.Sprintf("%d/%d", e.Result.Defn.Cycles, e.Result.Defn.Cycles+1)
	}

	return fmt.Sprintf("%d", e.Result.Defn.Cycles)
}

// Notes returns a string describing the most recent execution of the entry.
// The information is made up of the BranchSuccess, PageFault and CPUBug
// fields of the result.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted || e.Result.Defn == nil {
		return ""
	}

	s := []string{}

	if e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s = append(s, "branch succeeded")
		} else {
			s = append(s, "branch failed")
		}
	}

	if e.Result.PageFault {
		s = append(s, "page-fault")
	}

	if e.Result.CPUBug != execution.NoBug {
		s = append(s, string(e.Result.CPUBug))
	}

	return strings.Join(s, " ")
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand)
}
