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
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/prefs"
	"github.com/minplayer/minplayer/scaler"
)

// Preferences are the frontend settings that persist between sessions.
type Preferences struct {
	dsk *prefs.Disk

	Scaling    *prefs.Choice
	Sharpness  prefs.Int
	MaxFFSpeed prefs.Int
	Overclock  prefs.Int
	SimpleMode prefs.Bool
	Thumbnails prefs.Bool
}

// labels for the scaling preference, in the order of the player.Scaling values
var scalingLabels = []string{"native", "aspect", "fullscreen", "cropped"}

const (
	sharpness  = int(scaler.SharpnessSoft)
	maxFFSpeed = 3
	overclock  = int(player.CPUNormal)
	simpleMode = false
	thumbnails = true
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at path, which is created
// if it does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		Scaling: prefs.NewChoice(scalingLabels...),
	}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("player.scaling", p.Scaling)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.sharpness", &p.Sharpness)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.maxFFSpeed", &p.MaxFFSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.overclock", &p.Overclock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.simpleMode", &p.SimpleMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.thumbnails", &p.Thumbnails)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scaling.Set(player.ScaleAspect.String())
	_ = p.Sharpness.Set(sharpness)
	_ = p.MaxFFSpeed.Set(maxFFSpeed)
	_ = p.Overclock.Set(overclock)
	_ = p.SimpleMode.Set(simpleMode)
	_ = p.Thumbnails.Set(thumbnails)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// clamp returns v limited to the range lo to hi inclusive.
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Apply copies the preferences into the flags of the context. Values out of
// range are clamped.
func (p *Preferences) Apply(ctx *player.Context) {
	ctx.Flags.Scaling = player.Scaling(p.Scaling.Index())
	ctx.Flags.Sharpness = clamp(p.Sharpness.Get().(int), int(scaler.SharpnessSharp), int(scaler.SharpnessSoft))
	ctx.Flags.Overclock = player.Overclock(clamp(p.Overclock.Get().(int), int(player.CPUPowersave), int(player.CPUPerformance)))
	ctx.Flags.SimpleMode = ctx.Flags.SimpleMode || p.SimpleMode.Get().(bool)
	if ctx.Throttle != nil {
		ctx.Throttle.MaxFFSpeed = clamp(p.MaxFFSpeed.Get().(int), 0, 7)
	}
}

// Update copies the flags of the context back into the preferences.
func (p *Preferences) Update(ctx *player.Context) {
	_ = p.Scaling.Set(ctx.Flags.Scaling.String())
	_ = p.Sharpness.Set(ctx.Flags.Sharpness)
	_ = p.Overclock.Set(int(ctx.Flags.Overclock))
	if ctx.Throttle != nil {
		_ = p.MaxFFSpeed.Set(ctx.Throttle.MaxFFSpeed)
	}
}
