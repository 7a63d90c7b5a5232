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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising is the state of the machine while the memory image is being
// loaded and the CPU is being reset.
//
// Halted is entered when the CPU stops of its own accord. Ending is entered
// when the machine is stopped from outside.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Halted
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Ending:
		return "Ending"
	}

	return ""
}

// Finished returns true if the state is one that the machine can not leave
// without being reset.
func (s State) Finished() bool {
	return s == Halted || s == Ending
}
