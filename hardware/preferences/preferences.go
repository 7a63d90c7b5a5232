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

package preferences

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/mos6502/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// stop the machine when the BRK instruction is executed. if false then
	// BRK is a software interrupt
	HaltOnBreak prefs.Bool

	// stop the machine when the CPU jumps or branches to the same instruction
	DetectTraps prefs.Bool

	// log every instruction and the state of the CPU after execution
	Trace prefs.Bool

	// the clock speed of the CPU in megahertz. a value of zero or less means
	// the CPU runs as fast as possible
	MHz prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the file at path unless path
// is empty. A missing file is not an error.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("cpu.haltonbreak", &p.HaltOnBreak)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("cpu.detecttraps", &p.DetectTraps)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("cpu.trace", &p.Trace)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("cpu.mhz", &p.MHz)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.HaltOnBreak.Set(true)
	p.DetectTraps.Set(false)
	p.Trace.Set(false)
	p.MHz.Set(-1.0)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface. Logging is allowed
// when the Trace preference is true.
func (p *Preferences) AllowLogging() bool {
	return p.Trace.Get().(bool)
}
