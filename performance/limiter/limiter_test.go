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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/mos6502/performance/limiter"
	"github.com/jetsetilly/mos6502/test"
)

func TestUnlimited(t *testing.T) {
	lim := limiter.NewThrottle(-1)
	test.ExpectEquality(t, lim.Unlimited(), true)
	test.ExpectEquality(t, lim.MHz(), 0.0)

	start := time.Now()
	for i := 0; i < 100000; i++ {
		lim.Consume(7)
	}
	if time.Since(start) > time.Second {
		t.Errorf("unlimited throttle is waiting")
	}
}

func TestThrottle(t *testing.T) {
	// ten cycles per millisecond
	lim := limiter.NewThrottle(0.01)
	test.ExpectEquality(t, lim.Unlimited(), false)
	test.ExpectApproximate(t, lim.MHz(), 0.01, 0.0001)

	start := time.Now()
	for i := 0; i < 50; i++ {
		lim.Consume(2)
	}

	// one hundred cycles takes at least ten milliseconds
	elapsed := time.Since(start)
	if elapsed < 9*time.Millisecond {
		t.Errorf("throttle did not wait long enough (%v)", elapsed)
	}

	lim.SetMHz(0)
	test.ExpectEquality(t, lim.Unlimited(), true)
}
