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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/performance/limiter"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/statedump"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences
	Mem   *memory.Memory
	CPU   *cpu.CPU

	throttle *limiter.Throttle

	// the preferences can be changed from any goroutine. the CPU fields that
	// depend on them are updated at the next instruction boundary
	prefsChanged atomic.Bool

	// set by Stop()
	stop atomic.Bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If prefs is nil then a default set of preferences is used.
func NewMachine(p *preferences.Preferences) (*Machine, error) {
	if p == nil {
		var err error
		p, err = preferences.NewPreferences("")
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	m := &Machine{
		Prefs: p,
		Mem:   memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	m.throttle = limiter.NewThrottle(m.Prefs.MHz.Get().(float64))

	flagChange := func(_ prefs.Value) error {
		m.prefsChanged.Store(true)
		return nil
	}
	m.Prefs.HaltOnBreak.SetHookPost(flagChange)
	m.Prefs.DetectTraps.SetHookPost(flagChange)
	m.Prefs.MHz.SetHookPost(func(v prefs.Value) error {
		m.throttle.SetMHz(v.(float64))
		return nil
	})

	m.applyPrefs()

	return m, nil
}

func (m *Machine) applyPrefs() {
	m.CPU.HaltOnBreak = m.Prefs.HaltOnBreak.Get().(bool)
	m.CPU.DetectTraps = m.Prefs.DetectTraps.Get().(bool)
}

// Load a memory image into the Machine and reset the CPU. The image must be
// exactly the size of the address space.
func (m *Machine) Load(image []uint8) error {
	if err := m.Mem.Load(image); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	m.Reset()
	return nil
}

// Reset the CPU. The PC is loaded from the reset vector. Memory is left
// untouched.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.stop.Store(false)
	m.prefsChanged.Store(false)
	m.applyPrefs()
}

// Stop the Machine at the next instruction boundary. Safe to call from any
// goroutine.
func (m *Machine) Stop() {
	m.stop.Store(true)
}

// State returns the current state of the Machine.
func (m *Machine) State() govern.State {
	switch {
	case m.stop.Load():
		return govern.Ending
	case m.CPU.Halted:
		return govern.Halted
	}
	return govern.Running
}

// MHz returns the clock speed that the Machine is being throttled to. Zero
// means unlimited.
func (m *Machine) MHz() float64 {
	return m.throttle.MHz()
}

// Step the emulation forward one CPU instruction. If the Trace preference is
// set then the instruction and the state of the CPU afterwards are logged.
//
// Returns cpu.HaltedError if the CPU has already halted.
func (m *Machine) Step() error {
	if m.prefsChanged.CompareAndSwap(true, false) {
		m.applyPrefs()
	}

	cycles := m.CPU.Cycles
	err := m.CPU.ExecuteInstruction()

	// the trace is taken from the result so that an instruction reached by
	// servicing an interrupt is reported at its real address
	if m.Prefs.AllowLogging() && !errors.Is(err, cpu.HaltedError) {
		mnemonic := "???"
		if m.CPU.LastResult.Defn != nil {
			mnemonic = m.CPU.LastResult.Defn.Mnemonic()
		}
		logger.Logf(m.Prefs, "cpu", "Executing %s at 0x%04X...", mnemonic, m.CPU.LastResult.Address)
		logger.Log(m.Prefs, "cpu", statedump.Registers(m.CPU))
		for _, f := range m.CPU.Status.Flags() {
			logger.Log(m.Prefs, "cpu", f)
		}
	}

	if err != nil {
		return err
	}

	m.throttle.Consume(int(m.CPU.Cycles - cycles))

	if m.CPU.Halted {
		logger.Logf(logger.Allow, "machine", "halted at 0x%04X after %d cycles", m.CPU.PC.Address(), m.CPU.Cycles)
	}

	return nil
}
