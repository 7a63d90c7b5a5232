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

// Package limiter provides a rough and ready way of limiting the speed of the
// emulated CPU to a fixed clock rate.
//
// A new Throttle can be created with the clock speed in megahertz:
//
//	lim := limiter.NewThrottle(1.0)
//
// The number of cycles consumed by each instruction is then passed to the
// Consume() function, which will stall until the next millisecond if the
// budget for the current millisecond has been used up. For example:
//
//	for {
//		cycles := executeInstruction()
//		lim.Consume(cycles)
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// Throttle limits the number of cycles per millisecond. The waiting is a busy
// wait rather than a sleep because the resolution of time.Sleep() is too coarse
// on some platforms.
type Throttle struct {
	// the number of cycles allowed in every millisecond. zero or less means
	// unlimited. can be changed from any goroutine with SetMHz()
	budget atomic.Int64

	// the start of the current millisecond and the number of cycles that
	// have been consumed since then
	start time.Time
	used  int64
}

// NewThrottle is the preferred method of initialisation for the Throttle type.
// A speed of zero or less means the throttle never waits.
func NewThrottle(mhz float64) *Throttle {
	lim := &Throttle{}
	lim.SetMHz(mhz)
	return lim
}

// SetMHz changes the clock speed. Safe to call from any goroutine.
func (lim *Throttle) SetMHz(mhz float64) {
	if mhz <= 0 {
		lim.budget.Store(0)
		return
	}

	// always allow at least one cycle per millisecond
	budget := int64(mhz * 1000)
	if budget < 1 {
		budget = 1
	}
	lim.budget.Store(budget)
}

// MHz returns the clock speed the Throttle is set to. Returns zero if the
// Throttle is unlimited.
func (lim *Throttle) MHz() float64 {
	return float64(lim.budget.Load()) / 1000
}

// Unlimited returns true if the Throttle never waits.
func (lim *Throttle) Unlimited() bool {
	return lim.budget.Load() <= 0
}

// Consume the number of cycles. If the budget for the current millisecond has
// been used up then Consume() will not return until the next millisecond has
// begun.
func (lim *Throttle) Consume(cycles int) {
	budget := lim.budget.Load()
	if budget <= 0 {
		return
	}

	if lim.start.IsZero() {
		lim.start = time.Now()
	}

	lim.used += int64(cycles)
	if lim.used < budget {
		return
	}

	for time.Since(lim.start) < time.Millisecond {
	}

	lim.start = time.Now()
	lim.used = 0
}
