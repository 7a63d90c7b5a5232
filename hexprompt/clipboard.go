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

package hexprompt

import (
	"errors"
	"fmt"
	"strings"

	"golang.design/x/clipboard"
)

// ClipboardEmpty is returned by Clipboard() when there is no text in the
// clipboard.
var ClipboardEmpty = errors.New("hexprompt: clipboard is empty")

// Clipboard returns the text content of the system clipboard.
func Clipboard() (string, error) {
	if err := clipboard.Init(); err != nil {
		return "", fmt.Errorf("hexprompt: %w", err)
	}

	s := strings.TrimSpace(string(clipboard.Read(clipboard.FmtText)))
	if s == "" {
		return "", ClipboardEmpty
	}

	return s, nil
}
