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

package hardware_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/test"
)

// newMachine with the program at the program origin and the reset vector
// pointing to it.
func newMachine(t *testing.T, program ...uint8) *hardware.Machine {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	for i, b := range program {
		m.Mem.Write(cpubus.ProgramOrigin+uint16(i), b)
	}
	m.Mem.Write(cpubus.Reset, uint8(cpubus.ProgramOrigin&0xff))
	m.Mem.Write(cpubus.Reset+1, uint8(cpubus.ProgramOrigin>>8))
	m.Reset()

	test.DemandEquality(t, m.CPU.PC.Address(), cpubus.ProgramOrigin)

	return m
}

func TestRunUntilBreak(t *testing.T) {
	// LDA #$01; STA $10; BRK
	m := newMachine(t, 0xa9, 0x01, 0x85, 0x10, 0x00)

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.State(), govern.Halted)
	test.ExpectEquality(t, m.Mem.Read(0x10), 0x01)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x01)
	test.ExpectEquality(t, m.CPU.Cycles, 12)

	_, err = m.Run(nil)
	test.ExpectEquality(t, errors.Is(err, cpu.HaltedError), true)
}

func TestUnknownOpcode(t *testing.T) {
	m := newMachine(t, 0xea, 0x02)

	state, err := m.Run(nil)
	test.ExpectEquality(t, state, govern.Halted)

	var unknown *cpu.UnknownOpcodeError
	test.DemandEquality(t, errors.As(err, &unknown), true)
	test.ExpectEquality(t, unknown.Opcode, 0x02)
	test.ExpectEquality(t, unknown.PC, 0x0201)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0201)
}

func TestStop(t *testing.T) {
	// JMP $0200
	m := newMachine(t, 0x4c, 0x00, 0x02)

	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Stop()
	}()

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.CPU.Halted, false)

	// reset clears the stop request
	m.Reset()
	test.ExpectEquality(t, m.State(), govern.Running)
}

func TestContinueCheck(t *testing.T) {
	m := newMachine(t, 0x4c, 0x00, 0x02)

	var count int
	state, err := m.Run(func() (govern.State, error) {
		count++
		if count >= hardware.PerformanceBrake {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.CPU.Cycles, uint64(hardware.PerformanceBrake*3))

	_, err = m.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunForCycles(t *testing.T) {
	m := newMachine(t, 0x4c, 0x00, 0x02)

	state, err := m.RunForCycles(30, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.CPU.Cycles, 30)
}

func TestTrapPreference(t *testing.T) {
	m := newMachine(t, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Prefs.DetectTraps.Set(true))

	logger.Clear()

	state, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Contains(w.String(), "cpu: TRAPPED at 0x0200"), true)
}

func TestHaltOnBreakPreference(t *testing.T) {
	// LDA #$01; BRK
	m := newMachine(t, 0xa9, 0x01, 0x00)
	m.Mem.Write(cpubus.IRQ, 0x00)
	m.Mem.Write(cpubus.IRQ+1, 0x03)
	test.DemandSuccess(t, m.Prefs.HaltOnBreak.Set(false))

	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.Halted, false)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0300)
	test.ExpectEquality(t, m.CPU.Status.InterruptDisable, true)

	// status byte on the stack has the break bit set
	test.ExpectEquality(t, m.Mem.Read(0x01fd)&0x10, 0x10)
}

func TestMHzPreference(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.MHz(), 0.0)
	test.DemandSuccess(t, m.Prefs.MHz.Set(2.0))
	test.ExpectEquality(t, m.MHz(), 2.0)
}

func TestTrace(t *testing.T) {
	m := newMachine(t, 0xa9, 0x01)
	test.DemandSuccess(t, m.Prefs.Trace.Set(true))

	logger.Clear()
	test.DemandSuccess(t, m.Step())

	w := &strings.Builder{}
	logger.Write(w)
	s := w.String()
	test.ExpectEquality(t, strings.Contains(s, "cpu: Executing LDA at 0x0200..."), true)
	test.ExpectEquality(t, strings.Contains(s, "cpu: [ACC: 0x01 X: 0x00 Y: 0x00 PC: 0x0202 SP: 0xFF ]"), true)
	test.ExpectEquality(t, strings.Contains(s, "cpu: negative: false"), true)
}

func TestTraceEcho(t *testing.T) {
	// JMP $0200
	m := newMachine(t, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Prefs.Trace.Set(true))

	// the trace for a long run is only interesting at the end
	w, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)
	logger.SetEcho(w, false)
	defer logger.SetEcho(nil, false)

	state, err := m.RunForCycles(3000, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "cpu: negative: false\n"), true)
	test.ExpectEquality(t, len(w.String()), 64)
}

func TestTraceInterrupt(t *testing.T) {
	// NOP with the NMI handler at 0x0500 starting with LDA #$42
	m := newMachine(t, 0xea)
	m.Mem.Write(cpubus.NMI, 0x00)
	m.Mem.Write(cpubus.NMI+1, 0x05)
	m.Mem.Write(0x0500, 0xa9)
	m.Mem.Write(0x0501, 0x42)
	test.DemandSuccess(t, m.Prefs.Trace.Set(true))

	logger.Clear()
	m.CPU.RequestNMInterrupt()
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.A.Value(), 0x42)

	w := &strings.Builder{}
	logger.Write(w)
	s := w.String()
	test.ExpectEquality(t, strings.Contains(s, "cpu: Executing LDA at 0x0500..."), true)
	test.ExpectEquality(t, strings.Contains(s, "Executing NOP"), false)
}
