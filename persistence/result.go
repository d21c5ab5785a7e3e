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

package persistence

// Result is the outcome of a persistence operation.
type Result int

// List of valid Result values.
const (
	OK Result = iota
	NoSupport
	FileNotFound
	FileError
	NullPointer
	SizeMismatch
	AllocError
	SerializeError
)

func (r Result) String() string {
	switch r {
	case OK:
		return "success"
	case NoSupport:
		return "not supported by core"
	case FileNotFound:
		return "file not found"
	case FileError:
		return "file i/o error"
	case NullPointer:
		return "core returned no memory"
	case SizeMismatch:
		return "size mismatch"
	case AllocError:
		return "memory allocation failed"
	case SerializeError:
		return "core serialisation failed"
	}
	return "unknown result"
}

// Failed returns true if the result indicates a condition worth reporting to
// the user. Missing files and unsupported features are not failures.
func (r Result) Failed() bool {
	switch r {
	case OK, NoSupport, FileNotFound, NullPointer:
		return false
	}
	return true
}
