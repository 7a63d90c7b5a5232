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

// Package prefs implements preference values that can be saved to disk and
// overridden from the command line.
//
// The Bool, Int, Float and String types are safe to read from one goroutine
// while being set from another. Callback hooks can be attached to a value
// with SetHookPre() and SetHookPost(). A pre hook that returns an error
// prevents the value from changing.
//
// Values are collated under a key by a Disk. A Disk with an empty path is
// useful for collating values that will never be saved.
//
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("cpu.haltonbreak", &haltOnBreak)
//	dsk.Load()
//
// Values on the command line stack (see PushCommandLineStack()) are applied
// when the value is added to the Disk and take priority over values loaded
// from the file.
package prefs
