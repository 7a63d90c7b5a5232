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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/mos6502/disassembly"
	"github.com/jetsetilly/mos6502/govern"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/hexprompt"
	"github.com/jetsetilly/mos6502/hostscript"
	"github.com/jetsetilly/mos6502/imageloader"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/paths"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/statedump"
	"github.com/jetsetilly/mos6502/statsview"
	"github.com/jetsetilly/mos6502/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest

	// where the interactive prompt reads from
	input io.Reader

	// the machine that is currently running. the interrupt signal stops the
	// machine rather than ending the program so that the memory can be saved
	machine atomic.Pointer[hardware.Machine]
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
		input: os.Stdin,
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			if m := sync.machine.Load(); m != nil {
				m.Stop()
			} else {
				fmt.Println("\r")
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string, output io.Writer) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PROMPT", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, false)

	case "PROMPT":
		err = run(md, sync, true)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// machineFlags are the flags shared by the RUN and PERFORMANCE modes.
type machineFlags struct {
	program     *bool
	mhz         *float64
	haltOnBreak *bool
	prefs       *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		program:     md.AddBool("program", false, "file is a program to load at 0x0200 rather than a memory dump"),
		mhz:         md.AddFloat64("mhz", -1, "clock speed in MHz. zero or less is unlimited"),
		haltOnBreak: md.AddBool("haltonbreak", true, "halt when the BRK instruction is executed"),
		prefs:       md.AddString("prefs", "", "preferences to override. eg. \"cpu.mhz::1; cpu.detecttraps::true\""),
	}
}

// newMachine creates the machine with preferences loaded from disk and then
// overridden by the command line.
func newMachine(md *modalflag.Modes, flgs machineFlags) (*hardware.Machine, error) {
	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	pth, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	if md.IsSet("mhz") {
		if err := p.MHz.Set(*flgs.mhz); err != nil {
			return nil, err
		}
	}
	if md.IsSet("haltonbreak") {
		if err := p.HaltOnBreak.Set(*flgs.haltOnBreak); err != nil {
			return nil, err
		}
	}

	return hardware.NewMachine(p)
}

// loadImage returns the memory image for the RUN and PERFORMANCE modes.
func loadImage(filename string, program bool) ([]uint8, error) {
	if program {
		return imageloader.FromProgramFile(filename)
	}
	return imageloader.FromDump(filename)
}

func run(md *modalflag.Modes, sync *mainSync, forcePrompt bool) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	debug := md.AddBool("debug", false, "show every instruction and the state of the CPU")
	traps := md.AddBool("traps", false, "halt when a jump or branch to the same instruction is detected")
	out := md.AddString("out", imageloader.DefaultPath, "file to write memory to when the machine halts")
	memviz := md.AddString("memviz", "", "write a graph of the CPU state to a dot file when the machine halts")
	pages := md.AddString("pages", "", "memory pages to print when the machine halts, as comma separated hex. eg. \"00,01\"")
	dsmOut := md.AddString("disasm", "", "write a disassembly annotated with the executed instructions when the machine halts")
	script := md.AddString("script", "", "lua script to run alongside the machine")
	clip := md.AddBool("clipboard", false, "take the program hex from the clipboard")
	stats := md.AddBool("statsview", false, "run stats server (only available in statsview builds)")
	log := md.AddBool("log", false, "echo debugging log to the output")
	savePrefs := md.AddBool("saveprefs", false, "save the preferences after applying the command line")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, flgs)
	if err != nil {
		return err
	}

	if md.IsSet("traps") {
		if err := m.Prefs.DetectTraps.Set(*traps); err != nil {
			return err
		}
	}
	if md.IsSet("debug") {
		if err := m.Prefs.Trace.Set(*debug); err != nil {
			return err
		}
	}

	var image []uint8

	switch {
	case forcePrompt || (len(md.RemainingArgs()) == 0 && !*clip):
		a, err := hexprompt.NewPrompt(sync.input, md.Output).Ask()
		if err != nil {
			return err
		}
		if a.Hex != "" {
			image, err = imageloader.FromHexString(a.Hex)
		} else {
			image, err = imageloader.Boot(*out)
		}
		if err != nil {
			return err
		}
		if err := m.Prefs.Trace.Set(a.Debug); err != nil {
			return err
		}

	case *clip:
		s, err := hexprompt.Clipboard()
		if err != nil {
			return err
		}
		image, err = imageloader.FromHexString(s)
		if err != nil {
			return err
		}

	case len(md.RemainingArgs()) == 1:
		image, err = loadImage(md.GetArg(0), *flgs.program)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *savePrefs {
		if err := m.Prefs.Save(); err != nil {
			return err
		}
	}

	if err := m.Load(image); err != nil {
		return err
	}

	if *log || m.Prefs.Trace.Get().(bool) {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var continueCheck func() (govern.State, error)

	if *script != "" {
		scr, err := hostscript.Load(m, *script)
		if err != nil {
			return err
		}
		defer scr.Close()
		continueCheck = scr.ContinueCheck
		defer func() {
			if err := scr.Halt(); err != nil {
				logger.Log(logger.Allow, "hostscript", err)
			}
		}()
	}

	var dsm *disassembly.Disassembly

	if *dsmOut != "" {
		dsm = disassembly.FromMemory(m.Mem)
		scriptCheck := continueCheck
		continueCheck = func() (govern.State, error) {
			if err := dsm.UpdateEntry(m.CPU.LastResult); err != nil {
				return govern.Ending, err
			}
			if scriptCheck != nil {
				return scriptCheck()
			}
			return govern.Running, nil
		}
	}

	sync.machine.Store(m)
	_, err = m.Run(continueCheck)
	sync.machine.Store(nil)

	// the instruction that halted the machine is not seen by continueCheck()
	if dsm != nil && m.CPU.LastResult.Final {
		if err := dsm.UpdateEntry(m.CPU.LastResult); err != nil {
			return err
		}
	}

	if err != nil {
		// an unknown opcode halts the machine normally
		var unknown *cpu.UnknownOpcodeError
		if !errors.As(err, &unknown) {
			return err
		}
		fmt.Fprintf(md.Output, "ERROR: %v\n", err)
	}

	fmt.Fprintln(md.Output)
	if err := statedump.Write(md.Output, m.CPU); err != nil {
		return err
	}

	if *pages != "" {
		pg, err := parsePages(*pages)
		if err != nil {
			return err
		}
		for _, p := range pg {
			fmt.Fprintln(md.Output)
			fmt.Fprintln(md.Output, m.Mem.Page(p))
		}
	}

	if err := imageloader.Save(*out, m.Mem); err != nil {
		return err
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		statedump.Graph(f, m.CPU)
	}

	if dsm != nil {
		f, err := os.Create(*dsmOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := dsm.Write(f, disassembly.WriteAttr{ByteCode: true, Cycles: true, Notes: true}); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	program := md.AddBool("program", false, "file is a program to load at 0x0200 rather than a memory dump")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	rng := md.AddString("range", "", "linear disassembly of an address range rather than following program flow. eg. \"0200:02ff\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("memory image required for %s mode", md)
	case 1:
		image, err := loadImage(md.GetArg(0), *program)
		if err != nil {
			return err
		}

		mem := memory.NewMemory()
		if err := mem.Load(image); err != nil {
			return err
		}

		dsm := disassembly.FromMemory(mem)
		attr := disassembly.WriteAttr{ByteCode: *bytecode, Cycles: true}

		if *rng == "" {
			return dsm.Write(md.Output, attr)
		}

		start, end, err := parseRange(*rng)
		if err != nil {
			return err
		}
		return dsm.WriteRange(md.Output, attr, start, end)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

// parsePages parses a comma separated list of hex page numbers.
func parsePages(s string) ([]uint8, error) {
	var pages []uint8
	for _, f := range strings.Split(s, ",") {
		p, err := strconv.ParseUint(strings.TrimSpace(f), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("pages: %w", err)
		}
		pages = append(pages, uint8(p))
	}
	return pages, nil
}

// parseRange parses a string of two hex addresses separated by a colon.
func parseRange(s string) (uint16, uint16, error) {
	st, en, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range should be two addresses separated by a colon (%s)", s)
	}

	start, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(st), "$"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("range: %w", err)
	}
	end, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(en), "$"), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("range: %w", err)
	}

	return uint16(start), uint16(end), nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("memory image required for %s mode", md)
	case 1:
		ld := imageloader.NewLoader(md.GetArg(0), *flgs.program)
		if err := ld.Load(); err != nil {
			return err
		}

		m, err := newMachine(md, flgs)
		if err != nil {
			return err
		}

		if err := m.Load(ld.Data); err != nil {
			return err
		}

		return performance.Check(md.Output, prf, m, *duration, paths.UniqueFilename("performance", ld.ShortName()))
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, r, _ := version.Version()
	fmt.Fprintln(md.Output, version.String())
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
