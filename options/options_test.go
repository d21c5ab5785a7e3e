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

package options_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/test"
)

var definitions = []environment.VariableDefinition{
	{Key: "gambatte_gb_colorization", Value: "GB Colorization; disabled|auto|GBC|SGB|internal"},
	{Key: "gambatte_mix_frames", Value: "Interframe Blending; disabled|mix|lcd_ghosting"},
	{Key: "pcsx_rearmed_analog_combo", Value: "Analog Combo; l1+r1+select|l1+r1+start"},
}

// the list must satisfy the interface used by the environment dispatcher
var _ environment.Variables = &options.OptionList{}

func TestDefine(t *testing.T) {
	l := options.NewOptionList(nil)
	l.Define(definitions)

	test.DemandEquality(t, len(l.Options), 3)
	test.Equate(t, l.Options[0].Name, "GB Colorization")
	test.Equate(t, len(l.Options[0].Values), 5)
	test.Equate(t, l.Options[2].Name, "DualShock Toggle Combo")

	v, ok := l.Value("gambatte_gb_colorization")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, "disabled")

	_, ok = l.Value("unknown")
	test.ExpectedFailure(t, ok)

	// defining the options counts as a change
	test.ExpectedSuccess(t, l.Changed())
	test.ExpectedFailure(t, l.Changed())
}

func TestSetValue(t *testing.T) {
	l := options.NewOptionList(nil)
	l.Define(definitions)
	l.Changed()

	l.SetValue("gambatte_mix_frames", "lcd_ghosting")
	v, _ := l.Value("gambatte_mix_frames")
	test.Equate(t, v, "lcd_ghosting")
	test.ExpectedSuccess(t, l.Changed())

	l.SetValue("gambatte_mix_frames", "not a value")
	v, _ = l.Value("gambatte_mix_frames")
	test.Equate(t, v, "lcd_ghosting")
	test.ExpectedFailure(t, l.Changed())

	l.SetRawValue("gambatte_mix_frames", 3)
	test.ExpectedFailure(t, l.Changed())
	l.SetRawValue("gambatte_mix_frames", 1)
	test.ExpectedSuccess(t, l.Changed())

	opt := l.Find("gambatte_mix_frames")
	test.Equate(t, opt.ValueIndex("mix"), 1)
	test.Equate(t, opt.ValueIndex("missing"), 0)

	l.Reset()
	test.Equate(t, opt.Value, 0)
}

func TestVisible(t *testing.T) {
	l := options.NewOptionList(nil)
	l.Define(definitions)
	test.Equate(t, len(l.Enabled()), 3)

	l.SetVisible("gambatte_mix_frames", false)
	test.DemandEquality(t, len(l.Enabled()), 2)
	test.Equate(t, l.Enabled()[1].Key, "pcsx_rearmed_analog_combo")

	l.SetVisible("gambatte_mix_frames", true)
	test.Equate(t, len(l.Enabled()), 3)
}

func TestConfig(t *testing.T) {
	cfg, err := options.ParseConfig(strings.NewReader(
		"gambatte_gb_colorization = GBC\r\n" +
			"-gambatte_mix_frames = mix\n" +
			"malformed line\n" +
			"gambatte_gb_colorization = SGB\n"))
	test.DemandSuccess(t, err)

	v, lock, ok := cfg.Get("gambatte_gb_colorization")
	test.ExpectedSuccess(t, ok)
	test.ExpectedFailure(t, lock)
	test.Equate(t, v, "SGB")

	v, lock, ok = cfg.Get("gambatte_mix_frames")
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, lock)
	test.Equate(t, v, "mix")

	l := options.NewOptionList(cfg)
	l.Define(definitions)
	v, _ = l.Value("gambatte_gb_colorization")
	test.Equate(t, v, "SGB")
	test.ExpectedSuccess(t, l.Find("gambatte_mix_frames").Lock)

	// locked options are not changed through the menu
	m := l.MenuList()
	test.DemandEquality(t, len(m.Items), 3)
	m.Items[1].Cycle(1)
	m.OnChange(m, 1)
	v, _ = l.Value("gambatte_mix_frames")
	test.Equate(t, v, "mix")
	test.Equate(t, m.Items[1].Value, 1)

	m.Items[0].Cycle(1)
	m.OnChange(m, 0)
	v, _ = l.Value("gambatte_gb_colorization")
	test.Equate(t, v, "internal")

	// locked options are not reset
	l.Reset()
	v, _ = l.Value("gambatte_mix_frames")
	test.Equate(t, v, "mix")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, state, err := options.LoadConfig(dir, "Tetris", "")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, state, options.ConfigNone)
	_, _, ok := cfg.Get("anything")
	test.ExpectedFailure(t, ok)

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "player.cfg"), []byte("a = 1\n"), 0o644))
	_, state, err = options.LoadConfig(dir, "Tetris", "")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, state, options.ConfigConsole)

	l := options.NewOptionList(nil)
	l.Define(definitions)
	l.SetValue("gambatte_gb_colorization", "auto")
	l.Find("gambatte_mix_frames").Lock = true
	test.DemandSuccess(t, options.Save(filepath.Join(dir, "Tetris.cfg"), l))

	cfg, state, err = options.LoadConfig(dir, "Tetris", "")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, state, options.ConfigGame)
	v, _, _ := cfg.Get("gambatte_gb_colorization")
	test.Equate(t, v, "auto")
	_, lock, _ := cfg.Get("gambatte_mix_frames")
	test.ExpectedSuccess(t, lock)

	test.Equate(t, options.ConfigGame.String(), "Using game config.")
}
