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

// Package environment answers the capability-negotiation requests that a
// hosted core makes of the frontend.
//
// Requests arrive as values of the Request sum type. Each concrete request
// type carries a strongly typed payload, decoded from core memory by the
// libretro package, so nothing in this package handles raw pointers. A nil
// payload field means the core supplied no data.
//
// Every handler takes only the narrow state it needs and returns a Result.
// The Dispatcher binds the handlers to the state of a session through a
// lookup table keyed by RequestID. Requests with no entry in the table
// resolve to Unhandled.
package environment
