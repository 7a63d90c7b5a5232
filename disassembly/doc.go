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

// Package disassembly decodes the contents of 6502 memory into assembly
// language.
//
// Every address in memory is decoded as though it were the start of an
// instruction. Those entries reachable by following the flow of the program
// from the interrupt vectors are then promoted to EntryLevelBlessed. Blessed
// entries are the ones that most likely represent the real program.
//
// A disassembly can be kept up to date with the emulation by passing each
// execution.Result to UpdateEntry(). Executed entries record the actual
// number of cycles and whether a branch was taken.
package disassembly
