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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.HaltOnBreak.Get().(bool), true)
	test.ExpectEquality(t, p.DetectTraps.Get().(bool), false)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.MHz.Get().(float64), -1.0)
	test.ExpectEquality(t, p.AllowLogging(), false)

	p.Trace.Set(true)
	test.ExpectEquality(t, p.AllowLogging(), true)
	p.SetDefaults()
	test.ExpectEquality(t, p.AllowLogging(), false)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.haltonbreak::false; cpu.mhz::1.5")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.HaltOnBreak.Get().(bool), false)
	test.ExpectEquality(t, p.MHz.Get().(float64), 1.5)
	test.ExpectEquality(t, p.DetectTraps.Get().(bool), false)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	p.DetectTraps.Set(true)
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.DetectTraps.Get().(bool), true)
	test.ExpectEquality(t, q.String(), "cpu.detecttraps :: true\ncpu.haltonbreak :: true\ncpu.mhz :: -1.000\ncpu.trace :: false\n")
}
