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

// Package memory implements the flat 64k address space of the 6502. There is
// no memory mapped I/O. Every address is readable and writable and reads
// always return the last value written.
//
// The cpubus package defines the interface through which the CPU accesses
// memory, along with the addresses that have special meaning to the CPU: the
// stack page and the NMI, reset and IRQ vectors.
package memory
