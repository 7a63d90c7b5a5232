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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// Memory is the entire 64k address space of the 6502.
type Memory struct {
	data [cpubus.MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All bytes are zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Load a complete memory image. The image must be exactly the size of the
// address space.
func (mem *Memory) Load(image []uint8) error {
	if len(image) != cpubus.MemorySize {
		return fmt.Errorf("memory: image is %d bytes, must be %d bytes", len(image), cpubus.MemorySize)
	}
	copy(mem.data[:], image)
	return nil
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek returns the value at the address without it counting as a CPU access.
// There is no difference between Peek and Read for flat memory but the
// distinction is useful for callers who are not the CPU, such as host scripts.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke is the counterpart to Peek.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Read16 returns the little-endian word at the address. The high byte is read
// from the following address, wrapping at the top of memory.
func (mem *Memory) Read16(address uint16) uint16 {
	return uint16(mem.data[address]) | uint16(mem.data[address+1])<<8
}

// WriteTo implements the io.WriterTo interface. The entire image is written.
func (mem *Memory) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(mem.data[:])
	return int64(n), err
}

// Page returns a hex dump of one 256 byte page.
func (mem *Memory) Page(page uint8) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	origin := uint16(page) << 8
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%02X%X- | ", page, y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[origin+uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
