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

// Package hexprompt asks the user for a program when one has not been
// specified on the command line.
//
// The program is entered as a string of hex digits. The user is then asked
// whether the instruction trace should be shown. When the input is a
// terminal the answer to that question is a single key press and does not
// need the return key.
//
// The Clipboard() function can be used instead of the prompt to take the
// program from the system clipboard.
package hexprompt
