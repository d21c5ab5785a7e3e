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

	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/scaler"
	"github.com/minplayer/minplayer/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := NewPreferences(filepath.Join(t.TempDir(), "player.prefs"))
	test.DemandSuccess(t, err)

	ctx := player.NewContext()
	p.Apply(ctx)
	test.DemandEquality(t, ctx.Flags.Scaling, player.ScaleAspect)
	test.Equate(t, ctx.Flags.Sharpness, int(scaler.SharpnessSoft))
	test.DemandEquality(t, ctx.Flags.Overclock, player.CPUNormal)
	test.Equate(t, ctx.Throttle.MaxFFSpeed, 3)
	test.ExpectedFailure(t, ctx.Flags.SimpleMode)
	test.Equate(t, p.Thumbnails.Get().(bool), true)
}

func TestPreferencesClamp(t *testing.T) {
	p, err := NewPreferences(filepath.Join(t.TempDir(), "player.prefs"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Sharpness.Set(10))
	test.DemandSuccess(t, p.MaxFFSpeed.Set(-1))
	test.DemandSuccess(t, p.Overclock.Set(int(player.CPUIdle)))
	test.DemandFailure(t, p.Scaling.Set("stretched"))

	ctx := player.NewContext()
	p.Apply(ctx)
	test.Equate(t, ctx.Flags.Sharpness, int(scaler.SharpnessSoft))
	test.Equate(t, ctx.Throttle.MaxFFSpeed, 0)

	// the menu's idle speed is never a preference
	test.DemandEquality(t, ctx.Flags.Overclock, player.CPUPerformance)
}

func TestPreferencesRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "player.prefs")
	p, err := NewPreferences(pth)
	test.DemandSuccess(t, err)

	ctx := player.NewContext()
	ctx.Flags.Scaling = player.ScaleCropped
	ctx.Flags.Sharpness = int(scaler.SharpnessCrisp)
	ctx.Flags.Overclock = player.CPUPowersave
	ctx.Throttle.MaxFFSpeed = 6
	p.Update(ctx)
	test.DemandSuccess(t, p.Save())

	q, err := NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.Equate(t, q.Scaling.Index(), int(player.ScaleCropped))

	ctx = player.NewContext()
	q.Apply(ctx)
	test.DemandEquality(t, ctx.Flags.Scaling, player.ScaleCropped)
	test.Equate(t, ctx.Flags.Sharpness, int(scaler.SharpnessCrisp))
	test.DemandEquality(t, ctx.Flags.Overclock, player.CPUPowersave)
	test.Equate(t, ctx.Throttle.MaxFFSpeed, 6)

	// simple mode from the launcher is not overridden
	ctx.Flags.SimpleMode = true
	q.Apply(ctx)
	test.ExpectedSuccess(t, ctx.Flags.SimpleMode)
}
