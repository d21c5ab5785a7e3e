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

package logger_test

import (
	"testing"

	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/test"
)

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)
}

func TestRepeats(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()

	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Logf(logger.Allow, "tag", "%s", "detail")
	logger.Write(tw)
	test.Equate(t, tw.Compare("tag: detail (repeat x3)\n"), true)
}

func TestPermission(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()

	var v logger.Verbose
	logger.Log(&v, "tag", "denied")
	test.Equate(t, logger.Write(tw), false)

	v.Enabled = true
	logger.Log(&v, "tag", "allowed")
	logger.Write(tw)
	test.Equate(t, tw.Compare("tag: allowed\n"), true)
}

func TestWriteRecent(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()

	logger.Log(logger.Allow, "a", "1")
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare("a: 1\n"), true)

	tw.Clear()
	logger.Log(logger.Allow, "b", "2")
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare("b: 2\n"), true)

	tw.Clear()
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare(""), true)
}
