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

// Package player holds the Context of a game session.
//
// A Context is constructed once per process with NewContext() and rebound
// with Bind() whenever a new game and core are loaded. Components receive the
// Context explicitly. The Context is not safe for concurrent use: it is only
// changed by the session's main loop.
//
// The frontend services that components may call without knowing how they are
// implemented are described by the Callbacks interface.
package player
