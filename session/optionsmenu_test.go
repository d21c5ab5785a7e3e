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

package session

import (
	"path/filepath"
	"testing"

	"github.com/minplayer/minplayer/menu"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/test"
)

func TestFrontendList(t *testing.T) {
	f := newFixture(t, newFakePlatform())
	s := f.s
	s.ctx.Renderer.DstPitch = 1280

	l := s.frontendList()
	test.Equate(t, len(l.Items), 4)
	test.Equate(t, l.Items[0].Value, int(player.ScaleAspect))

	change := func(i int, v int) {
		l.Items[i].Value = v
		test.DemandEquality(t, l.Items[i].OnChange(l, i), menu.CallbackNop)
	}

	change(0, int(player.ScaleFullscreen))
	test.DemandEquality(t, s.ctx.Flags.Scaling, player.ScaleFullscreen)
	test.Equate(t, s.ctx.Renderer.DstPitch, 0)

	change(1, 1)
	test.Equate(t, s.ctx.Flags.Sharpness, 1)

	change(2, int(player.CPUPerformance))
	test.DemandEquality(t, s.ctx.Flags.Overclock, player.CPUPerformance)

	change(3, 5)
	test.Equate(t, s.ctx.Throttle.MaxFFSpeed, 5)
}

func TestSaveChanges(t *testing.T) {
	f := newFixture(t, newFakePlatform())
	s := f.s

	pth := filepath.Join(t.TempDir(), "player.prefs")
	var err error
	s.prefs, err = NewPreferences(pth)
	test.DemandSuccess(t, err)

	s.ctx.Flags.Scaling = player.ScaleNative
	s.ctx.Throttle.MaxFFSpeed = 1
	s.saveChanges()

	p, err := NewPreferences(pth)
	test.DemandSuccess(t, err)
	ctx := player.NewContext()
	p.Apply(ctx)
	test.DemandEquality(t, ctx.Flags.Scaling, player.ScaleNative)
	test.Equate(t, ctx.Throttle.MaxFFSpeed, 1)
}
