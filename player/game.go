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

package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/minplayer/minplayer/curated"
)

// Game is the content loaded into a core.
type Game struct {
	// path of the file selected by the user
	Path string

	// file name of Path without the directory
	Name string

	// the playlist of a multi-disc game. empty if the game has only one disc
	M3UPath string

	// path of a file extracted from an archive. the file lives in TmpDir,
	// which is removed by Close()
	TmpPath string
	TmpDir  string

	// the content in memory. nil for cores that need the full path
	Data []byte

	IsOpen bool
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(path string) *Game {
	return &Game{
		Path: path,
		Name: filepath.Base(path),
	}
}

// LoadPath returns the path that should be handed to the core.
func (g *Game) LoadPath() string {
	if g.TmpPath != "" {
		return g.TmpPath
	}
	return g.Path
}

// DisplayName returns Name without its extension.
func (g *Game) DisplayName() string {
	return strings.TrimSuffix(g.Name, filepath.Ext(g.Name))
}

// MultiDisc returns true if the game has a playlist.
func (g *Game) MultiDisc() bool {
	return g.M3UPath != ""
}

// Close releases the in-memory content and removes any temporary files.
func (g *Game) Close() error {
	if g == nil {
		return nil
	}
	g.Data = nil
	g.IsOpen = false
	if g.TmpDir != "" {
		err := os.RemoveAll(g.TmpDir)
		g.TmpDir = ""
		g.TmpPath = ""
		if err != nil {
			return curated.Errorf("game: %v", err)
		}
	}
	return nil
}
