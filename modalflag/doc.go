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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PROMPT", "PERFORMANCE", "VERSION")
//	p, err := md.Parse()
//
// After parsing, the selected mode is returned by Mode(). The first sub-mode
// in the list is the default and is selected if the first argument after the
// flags is not a recognised mode. Mode comparisons are case insensitive.
//
// The flags for the selected mode are then added before calling NewMode()
// and Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		traps := md.AddBool("traps", false, "halt on jump-to-self")
//		p, err := md.Parse()
//		...
//	}
//
// Help messages are printed automatically when the -help flag is seen and
// Parse() returns ParseHelp. Arguments that are neither flags nor a mode
// selector are available through RemainingArgs() and GetArg().
package modalflag
