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

// Package libretro loads an emulation core from a shared object and bridges
// the calls the core makes back into the frontend.
//
// The core's ABI is C. Functions exported by the core are bound with purego
// and the callbacks the core is given are created with purego.NewCallback.
// Because C callbacks carry no user data only one Bridge can be attached at
// any one time.
//
// Environment requests arrive from the core as a command number and a
// pointer. The decoder in this package turns the pair into one of the typed
// requests of the environment package and writes any answer back into core
// memory once the request has been dispatched. The environment package never
// sees a pointer into core memory.
package libretro
