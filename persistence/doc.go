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

// Package persistence reads and writes the battery backed RAM, the real time
// clock and the save states of a core.
//
// Functions return a Result rather than an error. A missing file is the normal
// state of affairs for a game that has never been played and is reported as
// FileNotFound, which callers can ignore, separately from FileError, which
// they should not. A core that returns no memory, or memory of zero size, is
// reported as NoSupport or NullPointer and is not an error either.
package persistence
