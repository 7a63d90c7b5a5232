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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	var w prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Add("bar", &w))

	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectSuccess(t, w.Set("abcdefghij"))
	w.SetMaxLen(5)
	test.ExpectEquality(t, w.String(), "abcde")
	test.ExpectSuccess(t, w.Set("0123456789"))
	test.ExpectEquality(t, w.String(), "01234")

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "bar :: 01234\nfoo :: hello world\n")
}

func TestIntAndFloat(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")
	test.ExpectSuccess(t, v.Set(" 99"))
	test.ExpectEquality(t, v.Get().(int), 99)
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(int), 99)

	var f prefs.Float
	test.ExpectEquality(t, f.String(), "0.000")
	test.ExpectSuccess(t, f.Set(1.79))
	test.ExpectEquality(t, f.Get().(float64), 1.79)
	test.ExpectSuccess(t, f.Set("-1"))
	test.ExpectEquality(t, f.String(), "-1.000")
	test.ExpectSuccess(t, f.Set(2))
	test.ExpectEquality(t, f.Get().(float64), 2.0)
	test.ExpectFailure(t, f.Set("fast"))
	test.ExpectSuccess(t, f.Reset())
	test.ExpectEquality(t, f.Get().(float64), 0.0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// value is not changed if the pre hook fails
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.haltonbreak", &v))
	test.ExpectSuccess(t, dsk.Add("cpu.mhz", &w))

	// adding the same key twice is an error
	test.ExpectFailure(t, dsk.Add("cpu.mhz", &w))

	// file doesn't exist yet
	err = dsk.Load()
	test.ExpectEquality(t, errors.Is(err, prefs.NoPrefsFile), true)

	// keys that are unknown to a Disk are preserved when it is saved
	data := fmt.Sprintf("%s\ncpu.haltonbreak :: true\ncpu.mhz :: 2\nother :: foo\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o644))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, w.Get().(int), 2)

	test.ExpectSuccess(t, w.Set(4))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "cpu.haltonbreak :: true\ncpu.mhz :: 4\nother :: foo\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, dsk.String(), "cpu.haltonbreak :: false\ncpu.mhz :: 0\n")

	// not a preferences file
	test.DemandSuccess(t, os.WriteFile(fn, []byte("foo\n"), 0o644))
	test.ExpectFailure(t, dsk.Load())
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	data := fmt.Sprintf("%s\nfoo :: 10\nbar :: 20\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o644))

	prefs.PushCommandLineStack("foo::5")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var foo prefs.Int
	var bar prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &foo))
	test.ExpectSuccess(t, dsk.Add("bar", &bar))
	test.ExpectEquality(t, foo.Get().(int), 5)

	// value from the command line takes priority over the file
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, foo.Get().(int), 5)
	test.ExpectEquality(t, bar.Get().(int), 20)
}

func TestNoPath(t *testing.T) {
	dsk, err := prefs.NewDisk("")
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectSuccess(t, dsk.Save())

	_, err = prefs.NewDisk(t.TempDir())
	test.ExpectFailure(t, err)
}

func TestBoilerPlate(t *testing.T) {
	test.ExpectEquality(t, prefs.WarningBoilerPlate, "*** mos6502 preferences. edit with care ***")
}
