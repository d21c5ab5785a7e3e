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
	"image"

	"github.com/minplayer/minplayer/libretro"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/platform"
)

// joypad maps platform buttons to the core's joypad button IDs.
var joypad = []struct {
	button platform.Button
	id     uint
}{
	{platform.ButtonUp, libretro.JoypadUp},
	{platform.ButtonDown, libretro.JoypadDown},
	{platform.ButtonLeft, libretro.JoypadLeft},
	{platform.ButtonRight, libretro.JoypadRight},
	{platform.ButtonA, libretro.JoypadA},
	{platform.ButtonB, libretro.JoypadB},
	{platform.ButtonX, libretro.JoypadX},
	{platform.ButtonY, libretro.JoypadY},
	{platform.ButtonL1, libretro.JoypadL},
	{platform.ButtonR1, libretro.JoypadR},
	{platform.ButtonL2, libretro.JoypadL2},
	{platform.ButtonR2, libretro.JoypadR2},
	{platform.ButtonStart, libretro.JoypadStart},
	{platform.ButtonSelect, libretro.JoypadSelect},
}

// pollInput reads the platform's input once per frame. Buttons pressed
// while the menu button is held are shortcuts and are not passed to the
// core.
func (s *Session) pollInput() {
	if s.polled {
		return
	}
	s.polled = true

	plt := s.plt
	if !plt.Poll() {
		s.ctx.SetQuit(true)
		return
	}

	if plt.JustPressed(platform.ButtonPower) {
		s.sleep()
		return
	}

	flags := &s.ctx.Flags
	if plt.JustPressed(platform.ButtonMenu) {
		flags.IgnoreMenu = false
	}

	if plt.IsPressed(platform.ButtonMenu) {
		switch {
		case plt.JustPressed(platform.ButtonR1):
			s.ctx.Throttle.FastForward = !s.ctx.Throttle.FastForward
			s.ffFrames = 0
			flags.IgnoreMenu = true
		case plt.JustPressed(platform.ButtonX):
			s.quickSave()
			flags.IgnoreMenu = true
		case plt.JustPressed(platform.ButtonY):
			s.quickLoad()
			flags.IgnoreMenu = true
		}
	}

	if !flags.IgnoreMenu && plt.JustReleased(platform.ButtonMenu) {
		s.ctx.SetShowMenu(true)
	}

	s.buttons = 0
	if plt.IsPressed(platform.ButtonMenu) {
		return
	}
	for _, j := range joypad {
		if plt.IsPressed(j.button) {
			s.buttons |= 1 << j.id
		}
	}
}

// inputState answers the core's query about the state of an input. Only the
// joypad of the first port is supported.
func (s *Session) inputState(port, device, index, id uint) int16 {
	if port != 0 || device != libretro.DeviceJoypad || index != 0 {
		return 0
	}
	if id == libretro.JoypadMask {
		return int16(s.buttons)
	}
	if id >= libretro.NumJoypadButtons {
		return 0
	}
	return int16((s.buttons >> id) & 1)
}

// thumbnail returns the frame to save with a save state. It is nil when the
// core renders with the GPU.
func (s *Session) thumbnail() image.Image {
	if s.hwEnabled() || s.frame == nil {
		return nil
	}
	return s.frame
}

func (s *Session) quickSave() {
	ms := s.menu.Session()
	ms.InitState()
	ms.Save(s.thumbnail())
	s.notify(notifications.NotifyStateSaved, "")
}

func (s *Session) quickLoad() {
	ms := s.menu.Session()
	ms.InitState()
	if ms.Load() {
		s.notify(notifications.NotifyStateLoaded, "")
	}
}

// sleep suspends the device until the player wakes it.
func (s *Session) sleep() {
	ms := s.menu.Session()
	s.notify(notifications.NotifySleep, "")
	ms.BeforeSleep()
	s.plt.Sleep()
	ms.AfterSleep()
	s.notify(notifications.NotifyWake, "")
	s.plt.ResetInput()
}
