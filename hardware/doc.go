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

// Package hardware is the base package for the 6502 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// the memory, the CPU and the preferences that govern them. From here, the
// emulation can either be started to run continuously (with an optional
// callback to check for continuation) or it can be stepped instruction by
// instruction.
//
// The Machine can be stopped from any goroutine with the Stop() function.
// Interrupts can be raised from any goroutine through the CPU's
// RequestInterrupt() and RequestNMInterrupt() functions.
package hardware
