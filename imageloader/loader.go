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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/mos6502/logger"
)

// Loader is used to specify the file that is to be loaded into the memory
// of the machine.
type Loader struct {
	// filename of the image to load. can be a URL with the http or https
	// scheme
	Filename string

	// the file is a program to be placed at the program origin rather than a
	// complete memory dump
	IsProgram bool

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded file
	Hash string

	// the memory image after a successful call to Load()
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, isProgram bool) Loader {
	return Loader{
		Filename:  filename,
		IsProgram: isProgram,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the file and prepare the memory image. Filenames with a URL scheme
// will use that method to load the data. Currently supported schemes are HTTP
// and local files.
//
// All errors wrap MemoryLoadFailure.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := ld.read()
	if err != nil {
		return fmt.Errorf("%w: %v", MemoryLoadFailure, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("%w: unexpected hash value", MemoryLoadFailure)
	}
	ld.Hash = hash

	if ld.IsProgram {
		ld.Data, err = FromProgram(data)
	} else {
		ld.Data, err = fromDump(data)
	}
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "imageloader", "loaded %s (%d bytes)", ld.ShortName(), len(data))

	return nil
}

func (ld *Loader) read() ([]uint8, error) {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", ld.Filename, resp.Status)
		}

		return io.ReadAll(resp.Body)

	case "file", "":
		return os.ReadFile(ld.Filename)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", scheme)
}
