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
	"fmt"

	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/menu"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/player"
)

var (
	scalingValues   = []string{"Native", "Aspect", "Fullscreen", "Cropped"}
	sharpnessValues = []string{"Sharp", "Crisp", "Soft"}
	overclockValues = []string{"Powersave", "Normal", "Performance"}
	ffSpeedValues   = []string{"2x", "3x", "4x", "5x", "6x", "7x", "8x"}
)

// frontendList is the menu of frontend settings. Changes take effect when
// the pause menu closes.
func (s *Session) frontendList() *menu.List {
	flags := &s.ctx.Flags
	throttle := s.ctx.Throttle

	return &menu.List{
		Type: menu.TypeVar,
		Items: []menu.Item{
			{
				Name:   "Screen Scaling",
				Desc:   "Native uses integer scaling. Aspect scales\nto fit the screen. Fullscreen stretches.\nCropped fills the screen.",
				Values: scalingValues,
				Value:  int(flags.Scaling),
				OnChange: func(list *menu.List, i int) menu.CallbackResult {
					flags.Scaling = player.Scaling(list.Items[i].Value)
					s.ctx.Renderer.Invalidate()
					return menu.CallbackNop
				},
			},
			{
				Name:   "Screen Sharpness",
				Desc:   "Sharp uses nearest neighbour sampling.\nCrisp and Soft blend pixels.",
				Values: sharpnessValues,
				Value:  flags.Sharpness,
				OnChange: func(list *menu.List, i int) menu.CallbackResult {
					flags.Sharpness = list.Items[i].Value
					return menu.CallbackNop
				},
			},
			{
				Name:   "CPU Speed",
				Desc:   "Over- or underclock the CPU to prioritize\nprecision or battery life.",
				Values: overclockValues,
				Value:  int(flags.Overclock),
				OnChange: func(list *menu.List, i int) menu.CallbackResult {
					flags.Overclock = player.Overclock(list.Items[i].Value)
					return menu.CallbackNop
				},
			},
			{
				Name:   "Max FF Speed",
				Desc:   "Fast forward will not exceed the\nselected speed.",
				Values: ffSpeedValues,
				Value:  throttle.MaxFFSpeed,
				OnChange: func(list *menu.List, i int) menu.CallbackResult {
					throttle.MaxFFSpeed = list.Items[i].Value
					return menu.CallbackNop
				},
			},
		},
	}
}

// MenuOptions implements the player.Callbacks interface.
func (s *Session) MenuOptions() {
	items := []menu.Item{
		{
			Name:    "Frontend",
			Desc:    "Screen and performance settings.",
			Submenu: s.frontendList(),
		},
	}

	if s.options != nil && len(s.options.Enabled()) > 0 {
		items = append(items, menu.Item{
			Name:    "Emulator",
			Desc:    fmt.Sprintf("%s %s", s.ctx.Core.Name, s.ctx.Core.Version),
			Submenu: s.options.MenuList(),
		})
	}

	items = append(items, menu.Item{
		Name: "Save Changes",
		Desc: "Keep these settings for this game.",
		OnConfirm: func(*menu.List, int) menu.CallbackResult {
			s.saveChanges()
			return menu.CallbackExit
		},
	})

	s.menu.Options("Options", &menu.List{
		Type:  menu.TypeList,
		Items: items,
	})
}

// saveChanges writes the frontend preferences and the core options of the
// game to disk.
func (s *Session) saveChanges() {
	if s.prefs != nil {
		s.prefs.Update(s.ctx)
		if err := s.prefs.Save(); err != nil {
			logger.Logf(logger.Allow, "session", "preferences: %v", err)
		}
	}

	if s.options != nil && s.ctx.Game != nil {
		pth := paths.Config(s.ctx.Core.ConfigDir, s.ctx.Game.DisplayName(), "")
		if err := options.Save(pth, s.options); err != nil {
			logger.Logf(logger.Allow, "session", "options: %v", err)
		}
	}
}
