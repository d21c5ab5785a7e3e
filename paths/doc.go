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

// Package paths contains functions to prepare paths to player resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "player.prefs")
//
// For development builds the base path is ".minplayer" in the current
// directory. For release builds (build tag "release") the user's config
// directory is used, as reported by os.UserConfigDir().
//
// The Root type describes the layout of the SD card that the player runs
// from. It provides the paths to save files, save states, config files and
// the BIOS directory for a game. The naming of these files must not change
// because they are shared with the launcher.
package paths
