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

package archivefs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/player"
)

// Sentinel error patterns.
const (
	NoMatch           = "archivefs: no file in archive with extension %s"
	NoEntry           = "archivefs: no entry named %s in archive"
	UnsupportedFormat = "archivefs: unsupported format (%v)"
)

// Options for Open().
type Options struct {
	// extensions supported by the core, without the leading dot
	Extensions []string

	// the core needs the path of the game and not the data
	NeedFullPath bool

	// directory in which temporary directories for extracted files are
	// created. the system temporary directory is used if empty
	TmpRoot string
}

// Open the game at path. If the file is an archive that the core does not
// support natively, the first entry with an extension in the options is
// extracted.
//
// The game's data is read into memory unless the core needs the full path.
func Open(path string, opts Options) (*player.Game, error) {
	game := player.NewGame(path)

	format, err := DetectFormat(path)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	if format.IsArchive() && !MatchesExtension(path, opts.Extensions) {
		logger.Logf(logger.Allow, "archivefs", "extracting from %s archive: %s", format, path)
		if err := extract(game, format, opts); err != nil {
			_ = game.Close()
			return nil, err
		}
	}

	if !opts.NeedFullPath {
		game.Data, err = os.ReadFile(game.LoadPath())
		if err != nil {
			_ = game.Close()
			return nil, curated.Errorf("archivefs: %v", err)
		}
	}

	if m3u, ok := DetectM3U(path); ok {
		game.M3UPath = m3u
		game.Name = filepath.Base(m3u)
	}

	game.IsOpen = true

	return game, nil
}

func extract(game *player.Game, format Format, opts Options) error {
	a, err := openArchive(game.Path, format)
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}
	defer a.close()

	ents, err := a.entries()
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	var match *Entry
	for i := range ents {
		if !ents[i].IsDir && MatchesExtension(ents[i].Name, opts.Extensions) {
			match = &ents[i]
			break
		}
	}
	if match == nil {
		return curated.Errorf(NoMatch, "."+strings.Join(opts.Extensions, ", ."))
	}

	game.TmpDir, err = os.MkdirTemp(opts.TmpRoot, "minplayer-")
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	tmp := filepath.Join(game.TmpDir, filepath.Base(match.Name))
	f, err := os.Create(tmp)
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	err = a.extract(match.Name, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	game.TmpPath = tmp
	logger.Logf(logger.Allow, "archivefs", "extracted %s (%d bytes)", match.Name, match.Size)

	return nil
}

// M3UPath returns the path of the playlist for a disc image stored in a
// folder of its own. The playlist is a sibling of the folder with the same
// name. For example
//
//	/Roms/PS/Game (Disc 1)/image.cue -> /Roms/PS/Game (Disc 1).m3u
//
// Returns false if the image is not deep enough in the file system for a
// playlist to be possible.
func M3UPath(romPath string) (string, bool) {
	romPath = filepath.Clean(romPath)

	dir := filepath.Dir(romPath)
	if dir == "." || dir == string(filepath.Separator) {
		return "", false
	}

	parent := filepath.Dir(dir)
	if parent == "." || parent == string(filepath.Separator) {
		return "", false
	}

	return filepath.Join(parent, filepath.Base(dir)+".m3u"), true
}

// DetectM3U is like M3UPath() but only returns true if the playlist exists.
func DetectM3U(romPath string) (string, bool) {
	m3u, ok := M3UPath(romPath)
	if !ok {
		return "", false
	}
	if _, err := os.Stat(m3u); err != nil {
		return "", false
	}
	return m3u, true
}
