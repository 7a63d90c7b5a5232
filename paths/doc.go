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

// Package paths contains functions to prepare paths to mos6502 resources.
//
// The ResourcePath() function returns the path to a file in the resource
// directory. For example, the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() is simple: if the base resource path, ".mos6502",
// is present in the program's current directory then that is the base path
// that will be used. If it is not present then the user's config directory is
// used, as returned by os.UserConfigDir(). On a modern Linux system the above
// example will return:
//
//	/home/user/.config/mos6502/preferences
//
// Directories are created as required.
package paths
