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

package platform

import (
	"image"

	"github.com/minplayer/minplayer/player"
)

// Platform is the device the player runs on.
type Platform interface {
	// Poll reads pending input events and starts a new input frame. It
	// returns false if the user has asked to close the application
	Poll() bool
	JustPressed(b Button) bool
	JustReleased(b Button) bool
	IsPressed(b Button) bool
	ResetInput()

	// Screen returns the back buffer for software drawing
	Screen() *image.RGBA

	// Present shows the back buffer
	Present(screen *image.RGBA)

	// Sync waits until the next frame is due
	Sync()

	SetCPUSpeed(speed player.Overclock)
	EnableSleep(enable bool)

	// Sleep suspends the device and returns when it wakes
	Sleep()

	// Battery returns the charge as a percentage, rounded to one of a
	// small number of levels, and whether the device is charging
	Battery() (charge int, charging bool)

	// HDMI returns true if an external display is connected
	HDMI() bool

	Destroy()
}
