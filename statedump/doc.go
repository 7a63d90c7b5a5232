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

// Package statedump writes the state of the CPU in a human readable form. It
// is used for the instruction trace and for reporting the final state of the
// machine once it has halted.
//
// The register line has the form:
//
//	[ACC: 0x00 X: 0x00 Y: 0x00 PC: 0x0200 SP: 0xFF ]
//
// and is followed by one line for each status flag.
//
// The Graph() function writes the same state as a Graphviz dot file, using
// the memviz package.
package statedump
