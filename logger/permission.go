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
package logger

// Permission is consulted by Log() and Logf() before an entry is added. The
// machine preferences implement it through the trace setting.
type Permission interface {
	AllowLogging() bool
}

// fixed is a Permission that never changes its answer.
type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow is for log entries that should always be made. Log() recognises it
// without calling AllowLogging().
var Allow Permission = fixed(true)

// Deny is for log entries that should never be made. Useful where a function
// takes a Permission but the caller wants it to be quiet.
var Deny Permission = fixed(false)
