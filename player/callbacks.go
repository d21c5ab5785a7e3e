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

package player

// Callbacks are the frontend services that components call without knowing
// how they are implemented. A single implementation exists for the lifetime
// of a session. It is installed with Context.SetCallbacks() and may be
// replaced when a new core is loaded.
type Callbacks interface {
	// flush battery backed RAM and the real time clock to disk
	SRAMWrite()
	RTCWrite()

	// the path of the save state for the slot in Context.Flags.StateSlot
	StatePath() string

	// read and write the save state for the slot in Context.Flags.StateSlot
	StateRead()
	StateWrite()

	// write the save state used to resume the game
	StateAutosave()

	// insert the disc image at path
	ChangeDisc(path string)

	// recompute the software scaling for a source frame
	SelectScaler(srcWidth, srcHeight, srcPitch int)

	// present a software frame. a nil data slice repeats the previous frame
	VideoRefresh(data []byte, width, height, pitch int)

	// apply a CPU speed
	SetOverclock(level Overclock)

	// show the options menu. returns when the user leaves it
	MenuOptions()

	// returns true if an external display is connected
	HDMI() bool
}
