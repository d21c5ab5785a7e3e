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

package libretro

import "unsafe"

// goString copies a NUL terminated string from C memory.
func goString(p *byte) string {
	if p == nil {
		return ""
	}

	var n uintptr
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}

	return string(unsafe.Slice(p, n))
}

// cstrings keeps NUL terminated copies of strings that have been handed to
// the core. The core may hold on to a string for as long as it likes so an
// entry is never removed.
type cstrings map[string]*byte

func (c cstrings) get(s string) *byte {
	if p, ok := c[s]; ok {
		return p
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	c[s] = &b[0]
	return &b[0]
}

// buffer returns a pointer to a NUL terminated copy of s that is not
// retained. The caller must keep the returned slice alive for as long as
// the pointer is in use.
func buffer(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
