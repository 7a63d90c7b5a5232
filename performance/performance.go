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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/logger"
)

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time the emulation runs for before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied machine. The
// machine should have been loaded and reset before calling Check().
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. Profile files are named after filenameHeader.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string, filenameHeader string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// measurement starts when the lead time has elapsed. if the machine
	// halts before then the measurement covers the entire run
	startCycles := m.CPU.Cycles
	startTime := time.Now()

	var state govern.State

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished. buffered so that the timers never
		// block if the machine halts early
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions
		performanceBrake := 0

		var err error
		state, err = m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startCycles = m.CPU.Cycles
					startTime = time.Now()
				default:
				}
			}
			return govern.Running, nil
		})
		return err
	}

	err = RunProfiler(profile, filenameHeader, runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	elapsed := time.Since(startTime)

	if state == govern.Halted {
		logger.Logf(logger.Allow, "performance", "machine halted after %.2f seconds", elapsed.Seconds())
	}

	cycles := m.CPU.Cycles - startCycles
	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds(), m.MHz())

	if m.MHz() > 0 {
		_, err = fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)
	} else {
		_, err = fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds)\n", mhz, cycles, elapsed.Seconds())
	}
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
