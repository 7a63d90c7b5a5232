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

package hostscript

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua script attached to a Machine.
type Script struct {
	m *hardware.Machine
	L *lua.LState

	onStep lua.LValue
	onHalt lua.LValue
}

// Load the script from the named file and attach it to the Machine.
func Load(m *hardware.Machine, filename string) (*Script, error) {
	scr := newScript(m)
	if err := scr.L.DoFile(filename); err != nil {
		scr.Close()
		return nil, fmt.Errorf("hostscript: %w", err)
	}
	scr.lookupCallbacks()
	return scr, nil
}

// LoadString attaches the script in the string to the Machine.
func LoadString(m *hardware.Machine, source string) (*Script, error) {
	scr := newScript(m)
	if err := scr.L.DoString(source); err != nil {
		scr.Close()
		return nil, fmt.Errorf("hostscript: %w", err)
	}
	scr.lookupCallbacks()
	return scr, nil
}

func newScript(m *hardware.Machine) *Script {
	scr := &Script{
		m: m,
		L: lua.NewState(),
	}

	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("peek16", scr.L.NewFunction(scr.peek16))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("cycles", scr.L.NewFunction(scr.cycles))
	scr.L.SetGlobal("irq", scr.L.NewFunction(scr.irq))
	scr.L.SetGlobal("nmi", scr.L.NewFunction(scr.nmi))
	scr.L.SetGlobal("stop", scr.L.NewFunction(scr.stop))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr
}

func (scr *Script) lookupCallbacks() {
	if fn := scr.L.GetGlobal("on_step"); fn.Type() == lua.LTFunction {
		scr.onStep = fn
	}
	if fn := scr.L.GetGlobal("on_halt"); fn.Type() == lua.LTFunction {
		scr.onHalt = fn
	}
}

// Close the script. The script should not be used after this.
func (scr *Script) Close() {
	scr.L.Close()
}

func (scr *Script) call(fn lua.LValue) error {
	if fn == nil {
		return nil
	}
	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return fmt.Errorf("hostscript: %w", err)
	}
	return nil
}

// Step calls the on_step function, if the script defines one.
func (scr *Script) Step() error {
	return scr.call(scr.onStep)
}

// Halt calls the on_halt function, if the script defines one.
func (scr *Script) Halt() error {
	return scr.call(scr.onHalt)
}

// ContinueCheck can be used as the continueCheck argument to Machine.Run().
// An error in the script ends the run.
func (scr *Script) ContinueCheck() (govern.State, error) {
	if err := scr.Step(); err != nil {
		return govern.Ending, err
	}
	return govern.Running, nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%d)", v))
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	address := checkAddress(L, 1)
	L.Push(lua.LNumber(scr.m.Mem.Peek(address)))
	return 1
}

// little-endian word. the high byte wraps to address zero
func (scr *Script) peek16(L *lua.LState) int {
	address := checkAddress(L, 1)
	L.Push(lua.LNumber(scr.m.Mem.Read16(address)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range (%d)", v))
	}
	scr.m.Mem.Poke(address, uint8(v))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)

	var v int
	switch strings.ToUpper(name) {
	case "A":
		v = int(scr.m.CPU.A.Value())
	case "X":
		v = int(scr.m.CPU.X.Value())
	case "Y":
		v = int(scr.m.CPU.Y.Value())
	case "SP":
		v = int(scr.m.CPU.SP.Value())
	case "PC":
		v = int(scr.m.CPU.PC.Address())
	case "SR", "P":
		v = int(scr.m.CPU.Status.Value())
	default:
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.Cycles))
	return 1
}

func (scr *Script) irq(L *lua.LState) int {
	scr.m.CPU.RequestInterrupt()
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.CPU.RequestNMInterrupt()
	return 0
}

func (scr *Script) stop(L *lua.LState) int {
	scr.m.Stop()
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "hostscript", L.CheckString(1))
	return 0
}
