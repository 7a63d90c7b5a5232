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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/mos6502/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running until the CPU halts, the Machine is stopped
// or the continueCheck() function returns govern.Ending. A nil continueCheck
// runs the emulation until the CPU halts or Stop() is called.
//
// Returns the state the Machine finished in. An unrecognised opcode halts the
// CPU and the error is returned alongside govern.Halted. Once stopped, Run()
// returns immediately until the Machine is Reset().
func (m *Machine) Run(continueCheck func() (govern.State, error)) (govern.State, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for !state.Finished() {
		if m.stop.Load() {
			return govern.Ending, nil
		}

		switch state {
		case govern.Running:
			err = m.Step()
			if err != nil {
				return m.State(), err
			}
		case govern.Paused:
		default:
			return state, fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		if m.CPU.Halted {
			return govern.Halted, nil
		}

		state, err = continueCheck()
		if err != nil {
			return state, err
		}
	}

	return state, nil
}

// RunForCycles runs the emulation until at least the number of cycles have
// been consumed or the Machine finishes for any other reason.
func (m *Machine) RunForCycles(cycles uint64, continueCheck func() (govern.State, error)) (govern.State, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	target := m.CPU.Cycles + cycles

	return m.Run(func() (govern.State, error) {
		if m.CPU.Cycles >= target {
			return govern.Ending, nil
		}
		return continueCheck()
	})
}
