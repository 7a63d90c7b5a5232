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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare like-typed
// values. The ExpectSuccess() and ExpectFailure() functions test for success
// and failure under generic conditions, the documentation for those functions
// describe the currently supported types.
//
// It is worth describing how the success and failure functions handle nil
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because errors usually work this way (nil to indicate no error).
//
// All Expect functions return true if the expectation was met. The Demand
// variants are a testing fatality if the expectation is not met.
//
// The optional tags arguments are printed as a prefix to any failure message.
// This is useful when the expectation is tested inside a loop.
//
// The RingWriter and CappedWriter types implement the io.Writer interface
// and can be used to capture output for later comparison.
package test
