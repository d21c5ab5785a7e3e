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

// Package statsview serves runtime statistics over HTTP. It is only built
// when the statsview build tag is present. Without the tag, Available()
// returns false and Launch() does nothing.
//
// With the tag, charts are served at
//
//	localhost:12600/debug/statsview
//
// and the standard pprof pages at
//
//	localhost:12600/debug/pprof/
package statsview
