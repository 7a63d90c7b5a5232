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

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/test"
)

// prepare a temporary working directory with a local resource directory so
// that the preferences are not read from the user's config directory.
func prepareDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".mos6502", 0o700))
}

// launch with the arguments and return the output and the exit value.
func launchTest(t *testing.T, input string, args ...string) (string, int) {
	t.Helper()

	sync := &mainSync{
		state: make(chan stateRequest, 1),
		input: strings.NewReader(input),
	}

	w := &strings.Builder{}
	launch(sync, args, w)

	req := <-sync.state
	test.DemandEquality(t, req.req, reqQuit)

	exitVal := 0
	if req.args != nil {
		exitVal = req.args.(int)
	}

	return w.String(), exitVal
}

func TestRunProgram(t *testing.T) {
	prepareDir(t)

	// LDA #$42; STA $10; BRK
	test.DemandSuccess(t, os.WriteFile("prog.bin", []uint8{0xa9, 0x42, 0x85, 0x10, 0x00}, 0o644))

	out, exitVal := launchTest(t, "", "RUN", "-program", "-out", "out.hex", "-pages", "00", "prog.bin")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "001- |  42 ff ff"), true)
	test.ExpectEquality(t, strings.Contains(out, "[ACC: 0x42 X: 0x00 Y: 0x00 "), true)
	test.ExpectEquality(t, strings.Contains(out, "negative: false"), true)

	mem, err := os.ReadFile("out.hex")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(mem), 0x10000)
	test.ExpectEquality(t, mem[0x10], 0x42)
	test.ExpectEquality(t, mem[0x0205], 0xff)

	// the memory written by the first run is a complete dump that can be run
	// again. the default mode is RUN
	out, exitVal = launchTest(t, "", "-out", "out2.hex", "out.hex")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "[ACC: 0x42 "), true)
}

func TestPrompt(t *testing.T) {
	prepareDir(t)

	out, exitVal := launchTest(t, "a9 07 00\nn\n", "PROMPT")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.HasPrefix(out, "Please enter program hex: Debug? (y/n): "), true)
	test.ExpectEquality(t, strings.Contains(out, "[ACC: 0x07 "), true)

	// no program entered so memory is booted from the previous run
	out, exitVal = launchTest(t, "\n\n")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "[ACC: 0x07 "), true)
}

func TestDebugTrace(t *testing.T) {
	prepareDir(t)

	out, exitVal := launchTest(t, "a9 07 00\ny\n", "PROMPT")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "cpu: Executing LDA at 0x0200..."), true)
	test.ExpectEquality(t, strings.Contains(out, "cpu: Executing BRK at 0x0202..."), true)
}

func TestUnknownOpcode(t *testing.T) {
	prepareDir(t)

	out, exitVal := launchTest(t, "ea 02\nn\n", "PROMPT")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "ERROR: cpu: unknown opcode (0x02) at 0x0201"), true)
	test.ExpectEquality(t, strings.Contains(out, "PC: 0x0201 "), true)
}

func TestTraps(t *testing.T) {
	prepareDir(t)

	// JMP $0200
	test.DemandSuccess(t, os.WriteFile("prog.bin", []uint8{0x4c, 0x00, 0x02}, 0o644))

	out, exitVal := launchTest(t, "", "RUN", "-program", "-traps", "prog.bin")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "PC: 0x0200 "), true)

	_, err := os.Stat("mem.hex")
	test.ExpectSuccess(t, err)
}

func TestErrors(t *testing.T) {
	prepareDir(t)

	out, exitVal := launchTest(t, "", "RUN", "-program", "missing.bin")
	test.ExpectEquality(t, exitVal, 20)
	test.ExpectEquality(t, strings.HasPrefix(out, "* error in RUN mode: "), true)

	_, exitVal = launchTest(t, "", "-nonsense")
	test.ExpectEquality(t, exitVal, 20)

	// BRK
	test.DemandSuccess(t, os.WriteFile("prog.bin", []uint8{0x00}, 0o644))
	out, exitVal = launchTest(t, "", "RUN", "-program", "-pages", "100", "prog.bin")
	test.ExpectEquality(t, exitVal, 20)
	test.ExpectEquality(t, strings.Contains(out, "pages: "), true)

	_, exitVal = launchTest(t, "", "PERFORMANCE")
	test.ExpectEquality(t, exitVal, 20)

	_, exitVal = launchTest(t, "", "PERFORMANCE", "-profile", "disk", "prog.bin")
	test.ExpectEquality(t, exitVal, 20)
}

func TestDisasm(t *testing.T) {
	prepareDir(t)

	// LDA #$42; STA $10; BRK
	test.DemandSuccess(t, os.WriteFile("prog.bin", []uint8{0xa9, 0x42, 0x85, 0x10, 0x00}, 0o644))

	out, exitVal := launchTest(t, "", "DISASM", "-program", "prog.bin")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "$0200  LDA #$42"), true)
	test.ExpectEquality(t, strings.Contains(out, "$0202  STA $10"), true)
	test.ExpectEquality(t, strings.Contains(out, "$0204  BRK"), true)

	out, exitVal = launchTest(t, "", "DISASM", "-program", "-bytecode", "-range", "0200:0201", "prog.bin")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.HasPrefix(out, "a9 42     $0200  LDA #$42"), true)
	test.ExpectEquality(t, strings.Contains(out, "STA"), false)

	_, exitVal = launchTest(t, "", "DISASM", "-program", "-range", "0200", "prog.bin")
	test.ExpectEquality(t, exitVal, 20)

	// LDX #$02; DEX; BNE $0202; BRK
	test.DemandSuccess(t, os.WriteFile("loop.bin", []uint8{0xa2, 0x02, 0xca, 0xd0, 0xfd, 0x00}, 0o644))

	_, exitVal = launchTest(t, "", "RUN", "-program", "-disasm", "loop.asm", "loop.bin")
	test.ExpectEquality(t, exitVal, 0)

	asm, err := os.ReadFile("loop.asm")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(asm), "$0203  BNE $0202"), true)
	test.ExpectEquality(t, strings.Contains(string(asm), "branch failed"), true)
	test.ExpectEquality(t, strings.Contains(string(asm), "$0205  BRK           7"), true)
}

func TestVersion(t *testing.T) {
	out, exitVal := launchTest(t, "", "VERSION")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.HasPrefix(out, "mos6502 "), true)
}

func TestHelp(t *testing.T) {
	out, exitVal := launchTest(t, "", "-help")
	test.ExpectEquality(t, exitVal, 0)
	test.ExpectEquality(t, strings.Contains(out, "available sub-modes: RUN, PROMPT, DISASM, PERFORMANCE, VERSION"), true)
}
