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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/mos6502/version"
)

// NoPrefsFile is returned by Disk.Load() when the preferences file does not
// exist.
var NoPrefsFile = errors.New("prefs: no preferences file")

// the separator between key and value in the preferences file
const separator = " :: "

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** " + version.ApplicationName + " preferences. edit with care ***"

// Disk collates preference values under a key and saves them to a file. A
// Disk with an empty path is never written or read but is still useful for
// the command line overrides and for the String() function.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line group when the entry was added
	commandLine map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path is checked to make sure it is not a directory.
func NewDisk(path string) (*Disk, error) {
	if path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return nil, fmt.Errorf("prefs: %s is a directory", path)
		}
	}
	return &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]Value),
	}, nil
}

// Add a preference value to the Disk under the key. If the key is present in
// the current command line group the value is set from that.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) != key || key == "" {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
		dsk.commandLine[key] = v
	}

	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k].String()))
	}
	return s.String()
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// Save the current preference values to disk. Entries in the existing file
// that have not been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	lines, err := dsk.read()
	if err != nil && !errors.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, lines[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk are ignored. Returns NoPrefsFile if the file does not exist.
//
// Values from the command line group take priority over values from the file.
func (dsk *Disk) Load() error {
	if dsk.path == "" {
		return nil
	}

	lines, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range lines {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if _, ok := dsk.commandLine[k]; ok {
			continue
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}

// read the preferences file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	lines := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lines, NoPrefsFile
		}
		return lines, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return lines, fmt.Errorf("prefs: %s is not a preferences file", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if ok {
			lines[k] = v
		}
	}

	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("prefs: %w", err)
	}

	return lines, nil
}
