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

package imageloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/imageloader"
	"github.com/jetsetilly/mos6502/test"
)

func TestBlank(t *testing.T) {
	image := imageloader.Blank()
	test.DemandEquality(t, len(image), cpubus.MemorySize)
	test.ExpectEquality(t, image[0x0000], 0xff)
	test.ExpectEquality(t, image[0xffff], 0xff)
}

func TestFromProgram(t *testing.T) {
	image, err := imageloader.FromProgram([]uint8{0xa9, 0x01, 0x00})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(image), cpubus.MemorySize)
	test.ExpectEquality(t, image[0x01ff], 0xff)
	test.ExpectEquality(t, image[0x0200], 0xa9)
	test.ExpectEquality(t, image[0x0201], 0x01)
	test.ExpectEquality(t, image[0x0202], 0x00)
	test.ExpectEquality(t, image[0x0203], 0xff)
	test.ExpectEquality(t, image[0xfffc], 0x00)
	test.ExpectEquality(t, image[0xfffd], 0x02)

	// largest program that fits below the vectors
	_, err = imageloader.FromProgram(make([]uint8, 0xfdfa))
	test.ExpectSuccess(t, err)

	_, err = imageloader.FromProgram(make([]uint8, 0xfdfb))
	test.ExpectEquality(t, errors.Is(err, imageloader.MemoryLoadFailure), true)
}

func TestFromHexString(t *testing.T) {
	image, err := imageloader.FromHexString("A9 01\n8d-00:10 ?00")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, image[0x0200], 0xa9)
	test.ExpectEquality(t, image[0x0202], 0x8d)
	test.ExpectEquality(t, image[0x0204], 0x10)
	test.ExpectEquality(t, image[0x0205], 0x00)
	test.ExpectEquality(t, image[0x0206], 0xff)

	_, err = imageloader.FromHexString("a9 0")
	test.ExpectEquality(t, errors.Is(err, imageloader.MemoryLoadFailure), true)

	_, err = imageloader.FromHexString("  ")
	test.ExpectEquality(t, errors.Is(err, imageloader.MemoryLoadFailure), true)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	prog := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(prog, []uint8{0xea, 0xea}, 0o644))

	image, err := imageloader.FromProgramFile(prog)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, image[0x0201], 0xea)
	test.ExpectEquality(t, image[0xfffd], 0x02)

	// short dumps are padded
	image, err = imageloader.FromDump(prog)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(image), cpubus.MemorySize)
	test.ExpectEquality(t, image[0x0000], 0xea)
	test.ExpectEquality(t, image[0x0002], 0xff)

	big := filepath.Join(dir, "big.bin")
	test.DemandSuccess(t, os.WriteFile(big, make([]uint8, cpubus.MemorySize+1), 0o644))
	_, err = imageloader.FromDump(big)
	test.ExpectEquality(t, errors.Is(err, imageloader.MemoryLoadFailure), true)

	_, err = imageloader.FromDump(filepath.Join(dir, "missing.bin"))
	test.ExpectEquality(t, errors.Is(err, imageloader.MemoryLoadFailure), true)
}

func TestBootAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), imageloader.DefaultPath)

	// no file so boot a blank image
	image, err := imageloader.Boot(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, image[0x1234], 0xff)

	mem := memory.NewMemory()
	mem.Write(0x1234, 0x56)
	test.DemandSuccess(t, imageloader.Save(path, mem))

	image, err = imageloader.Boot(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, image[0x1234], 0x56)
	test.ExpectEquality(t, image[0x1235], 0x00)
}

func TestLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prog.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write([]uint8{0xa9, 0x02})
	}))
	defer srv.Close()

	ld := imageloader.NewLoader(srv.URL+"/prog.bin", true)
	test.ExpectEquality(t, ld.ShortName(), "prog")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.Data[0x0201], 0x02)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// a second loader with the wrong hash
	bad := imageloader.NewLoader(srv.URL+"/prog.bin", true)
	bad.Hash = "0000"
	test.ExpectEquality(t, errors.Is(bad.Load(), imageloader.MemoryLoadFailure), true)

	missing := imageloader.NewLoader(srv.URL+"/missing.bin", true)
	test.ExpectEquality(t, errors.Is(missing.Load(), imageloader.MemoryLoadFailure), true)

	scheme := imageloader.NewLoader("ftp://example.com/prog.bin", true)
	test.ExpectFailure(t, scheme.Load())
}
