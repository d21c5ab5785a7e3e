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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/minplayer/minplayer/prefs"
	"github.com/minplayer/minplayer/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "minplayer_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, dsk.Add("testB", &w))
	test.ExpectedSuccess(t, dsk.Add("testC", &x))

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, w.Set("foo"))
	test.ExpectedSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedSuccess(t, dsk.Add("numberB", &w))

	test.ExpectedSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectedSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectedFailure(t, v.Set("---"))
	test.ExpectedFailure(t, v.Set(1.0))
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedFailure(t, dsk.Add("number", &w))
}

// write bool and then a choice from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndChoice(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	c := prefs.NewChoice("bar", "baz")
	test.ExpectedSuccess(t, dsk.Add("foo", c))
	test.ExpectedSuccess(t, c.Set("baz"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: baz\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("player.maxFFSpeed", &v))
	test.ExpectedSuccess(t, v.Set(3))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectedSuccess(t, v.Set(0))
	test.ExpectedSuccess(t, dsk.Load(false))
	test.Equate(t, v.Get(), 3)

	// command line takes priority over disk
	prefs.PushCommandLineStack("player.maxFFSpeed::5")
	test.ExpectedSuccess(t, dsk.Load(false))
	test.Equate(t, v.Get(), 5)
	test.Equate(t, prefs.PopCommandLineStack(), "")
}

func TestChoice(t *testing.T) {
	c := prefs.NewChoice("native", "aspect", "fullscreen")
	test.Equate(t, c.String(), "native")

	test.ExpectedSuccess(t, c.Set("ASPECT"))
	test.Equate(t, c.String(), "aspect")
	test.Equate(t, c.Index(), 1)

	test.ExpectedFailure(t, c.Set("stretched"))
	test.Equate(t, c.String(), "aspect")

	test.ExpectedSuccess(t, c.Reset())
	test.Equate(t, c.Index(), 0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})

	test.ExpectedSuccess(t, v.Set(2))
	test.Equate(t, seen, 2)
	test.ExpectedFailure(t, v.Set(-1))
	test.Equate(t, v.Get(), 2)
}
