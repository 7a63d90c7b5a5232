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

package disassembly

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/logger"
)

// Disassembly represents the annotated disassembly of 6502 memory.
type Disassembly struct {
	// indexed by address. every address has an entry after FromMemory()
	entries [cpubus.MemorySize]*Entry

	// the number of each level of entry
	counts map[EntryLevel]int

	// UpdateEntry() may be called from the emulation goroutine while the
	// disassembly is being written from another
	crit sync.Mutex
}

// FromMemory decodes the contents of memory and blesses the entries that
// are reachable from the reset and interrupt vectors.
func FromMemory(mem cpubus.Memory) *Disassembly {
	dsm := &Disassembly{
		counts: make(map[EntryLevel]int),
	}

	dsm.decode(mem)
	dsm.bless(mem)

	logger.Logf(logger.Allow, "disassembly", "%d entries blessed", dsm.counts[EntryLevelBlessed])

	return dsm
}

// GetEntryByAddress returns the disassembly entry at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) *Entry {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return dsm.entries[address]
}

// Count returns the number of entries at the level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return dsm.counts[level]
}

// UpdateEntry to more closely resemble the most recent execution.Result.
// Results that are not final are ignored. If the opcode at the address has
// changed since the disassembly was made (self-modifying code) then the entry
// is replaced.
func (dsm *Disassembly) UpdateEntry(result execution.Result) error {
	if !result.Final {
		return nil
	}
	if result.Defn == nil {
		return fmt.Errorf("disassembly: cannot update entry at %#04x without an instruction definition", result.Address)
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if e := dsm.entries[result.Address]; e != nil {
		dsm.counts[e.Level]--
	}

	dsm.entries[result.Address] = formatResult(result, EntryLevelExecuted)
	dsm.counts[EntryLevelExecuted]++

	return nil
}
