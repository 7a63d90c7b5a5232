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

package hexprompt_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/hexprompt"
	"github.com/jetsetilly/mos6502/test"
)

func TestAsk(t *testing.T) {
	out := &strings.Builder{}
	p := hexprompt.NewPrompt(strings.NewReader("a9 01 00\nyes\n"), out)

	a, err := p.Ask()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Hex, "a9 01 00")
	test.ExpectEquality(t, a.Debug, true)
	test.ExpectEquality(t, out.String(), hexprompt.ProgramPrompt+hexprompt.DebugPrompt)
}

func TestEmptyAnswers(t *testing.T) {
	out := &strings.Builder{}
	p := hexprompt.NewPrompt(strings.NewReader("\r\nn\n"), out)

	a, err := p.Ask()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Hex, "")
	test.ExpectEquality(t, a.Debug, false)
}

func TestEndOfInput(t *testing.T) {
	// no line ending on the final answer
	p := hexprompt.NewPrompt(strings.NewReader("ea\ny"), &strings.Builder{})
	a, err := p.Ask()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Hex, "ea")
	test.ExpectEquality(t, a.Debug, true)

	// no input at all
	p = hexprompt.NewPrompt(strings.NewReader(""), &strings.Builder{})
	a, err = p.Ask()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Hex, "")
	test.ExpectEquality(t, a.Debug, false)
}
