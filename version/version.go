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
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used in the version string and in the boilerplate of
// the preferences file.
const ApplicationName = "mos6502"

// set with -ldflags "-X github.com/jetsetilly/mos6502/version.number=..."
var number string

var version, revision string

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromBuild(number, settings)
}

// fromBuild decides the version and revision strings from the release number
// and the build settings recorded by the go tool.
//
// Without a release number the version is "unreleased" when vcs information is
// present and "local" when it is not (as with "go run ."). A revision with
// uncommitted changes is suffixed with "+dirty".
func fromBuild(number string, settings []debug.BuildSetting) (string, string) {
	var vcs, modified bool
	rev := ""

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// Version returns the version string, the revision string and whether the
// build is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String is the application name followed by the version. For example,
// "mos6502 unreleased".
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}
