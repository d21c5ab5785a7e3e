// This file is part of Minplayer.
//
// Minplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minplayer.  If not, see <https://www.gnu.org/licenses/>.

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/minplayer/minplayer/modalflag"
	"github.com/minplayer/minplayer/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestFlagsAndArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "game.gb", "extra"})
	log := md.AddBool("log", false, "echo log")
	test.ExpectedFailure(t, *log)

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectedSuccess(t, *log)
	test.Equate(t, md.GetArg(0), "game.gb")
	test.Equate(t, md.GetArg(1), "extra")
	test.Equate(t, md.GetArg(2), "")

	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	test.Equate(t, strings.Join(set, ","), "log")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"options", "-wide", "core.so"})
	md.AddSubModes("RUN", "OPTIONS", "VERSION")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "OPTIONS")

	md.NewMode()
	wide := md.AddBool("wide", false, "wide table")
	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, *wide)
	test.Equate(t, md.GetArg(0), "core.so")
	test.Equate(t, md.Path(), "OPTIONS")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"core.so", "game.gb"})
	md.AddSubModes("run", "version")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, len(md.RemainingArgs()), 2)
	test.Equate(t, md.GetArg(0), "core.so")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseHelp)
	test.ExpectedSuccess(t, tw.Compare("No help available\n"))

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "VERSION")
	md.AdditionalHelp("more")
	_, _ = md.Parse()
	test.ExpectedSuccess(t, tw.Compare("Usage:\n  available sub-modes: RUN, VERSION\n    default: RUN\n\nmore\n"))
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.DemandEquality(t, p, modalflag.ParseError)
}
