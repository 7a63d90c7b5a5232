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

package imageloader

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// MemoryLoadFailure is wrapped by all errors returned by the package.
var MemoryLoadFailure = errors.New("imageloader: memory load failure")

// DefaultPath is the file used to boot the machine when no other image is
// specified. It is also where the memory is saved when the machine halts.
const DefaultPath = "mem.hex"

// the value of memory that hasn't been set by a program
const fill = 0xff

// the largest program that fits between the program origin and the
// interrupt vectors
const maxProgramSize = int(cpubus.NMI - cpubus.ProgramOrigin)

// Blank returns a memory image with every location set to 0xFF.
func Blank() []uint8 {
	image := make([]uint8, cpubus.MemorySize)
	for i := range image {
		image[i] = fill
	}
	return image
}

// FromDump loads a complete memory image from a file. A file shorter than the
// address space is padded with 0xFF.
func FromDump(filename string) ([]uint8, error) {
	ld := NewLoader(filename, false)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return ld.Data, nil
}

func fromDump(data []uint8) ([]uint8, error) {
	if len(data) > cpubus.MemorySize {
		return nil, fmt.Errorf("%w: image is %d bytes, maximum is %d bytes", MemoryLoadFailure, len(data), cpubus.MemorySize)
	}
	image := Blank()
	copy(image, data)
	return image, nil
}

// FromProgramFile loads a program from a file and places it in a blank image
// at the program origin.
func FromProgramFile(filename string) ([]uint8, error) {
	ld := NewLoader(filename, true)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return ld.Data, nil
}

// FromProgram places the program in a blank image at the program origin and
// points the reset vector at it.
func FromProgram(program []uint8) ([]uint8, error) {
	if len(program) > maxProgramSize {
		return nil, fmt.Errorf("%w: program is %d bytes, maximum is %d bytes", MemoryLoadFailure, len(program), maxProgramSize)
	}

	image := Blank()
	copy(image[cpubus.ProgramOrigin:], program)
	image[cpubus.Reset] = uint8(cpubus.ProgramOrigin & 0xff)
	image[cpubus.Reset+1] = uint8(cpubus.ProgramOrigin >> 8)

	return image, nil
}

// FromHexString decodes a program from a string of hex digits. Any character
// that is not a hex digit is ignored, so "A9 01 8D 00 10" and "a9018d0010" are
// the same program.
func FromHexString(s string) ([]uint8, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'f':
			return r
		case r >= 'A' && r <= 'F':
			return r
		}
		return -1
	}, s)

	if len(s) == 0 {
		return nil, fmt.Errorf("%w: no program", MemoryLoadFailure)
	}

	program, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", MemoryLoadFailure, err)
	}

	return FromProgram(program)
}

// Boot returns the image in the named file if it exists, otherwise a blank
// image is returned.
func Boot(filename string) ([]uint8, error) {
	if _, err := os.Stat(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Blank(), nil
		}
		return nil, fmt.Errorf("%w: %v", MemoryLoadFailure, err)
	}
	return FromDump(filename)
}

// Save the memory to the named file.
func Save(filename string, mem io.WriterTo) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("imageloader: %w", err)
	}

	_, err = mem.WriteTo(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("imageloader: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("imageloader: %w", err)
	}

	return nil
}
