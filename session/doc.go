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

// Package session runs one game in one core.
//
// A Session is the ownership root for everything a running game needs. It
// implements player.Callbacks so that the pause menu can save states, change
// discs and rescale the display without knowing how that is done. Through a
// small adapter it also implements libretro.Frontend, so environment
// requests, frames, audio and input queries from the core arrive here.
//
// Open() loads the core and the game and wires everything together. Run()
// drives the core one frame at a time until the player quits. Close()
// flushes battery RAM and releases the core.
//
// Hardware rendering is optional. When the core asks for a GL context, the
// request is recorded by the environment dispatcher and the render pipeline
// is initialised once the game has loaded. A failure at that point is
// reported with NotifyHWRenderDisabled and the session carries on without
// it.
package session
