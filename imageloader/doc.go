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

// Package imageloader prepares the memory image that is loaded into the
// emulated machine.
//
// An image is always exactly the size of the address space. It can be
// created from a complete memory dump, from a program file, from a string of
// hex digits or it can be blank. Unused memory is filled with 0xFF.
//
// Programs are placed at the program origin (0x0200) and the reset vector is
// pointed at them. For example:
//
//	image, err := imageloader.FromHexString("a9 01 8d 00 10 00")
//	if errors.Is(err, imageloader.MemoryLoadFailure) {
//		...
//	}
//
// The Loader type handles reading from a local file or over HTTP. Most of the
// time the FromDump() and FromProgramFile() functions are simpler to use.
package imageloader
