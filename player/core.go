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

import "github.com/minplayer/minplayer/environment"

// CoreInfo describes the active core.
type CoreInfo struct {
	// the library name reported by the core
	Name    string
	Version string

	// short name of the emulator. for example, "GB" or "PS"
	Tag string

	// file extensions the core accepts, without the leading period
	Extensions   []string
	NeedFullPath bool

	// directories in which the session reads and writes files
	ConfigDir string
	StatesDir string
	SavesDir  string
	BiosDir   string

	// geometry and timing negotiated with the core
	AV environment.AVState

	// resets the emulated system. may be nil
	Reset func()
}

// AspectRatio returns the display aspect ratio of the core.
func (c *CoreInfo) AspectRatio() float64 {
	if c == nil {
		return 0
	}
	return c.AV.AspectRatio
}
