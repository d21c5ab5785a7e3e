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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for audio recordings and session dumps.
//
// Format of returned string is:
//
//	prepend_gamename_YYYYMMDD_HHMMSS
//
// If there is no game name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, gameName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	g := strings.TrimSpace(gameName)
	if len(g) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, g, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}

// OutputFile resolves the name of a file the user asked to be written. If the
// name is empty or names an existing directory then a unique filename is
// created in that directory with UniqueFilename(). The extension is added to
// generated names only.
func OutputFile(name string, prepend string, gameName string, ext string) string {
	if name != "" {
		if fi, err := os.Stat(name); err != nil || !fi.IsDir() {
			return name
		}
	}
	return filepath.Join(name, UniqueFilename(prepend, gameName)+ext)
}
