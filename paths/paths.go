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

package paths

import (
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The directory part
// of the resource is created if it does not exist.
//
// The first argument is the sub-path (a directory) and the second is the
// filename. Either may be empty.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}
