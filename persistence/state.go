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

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/paths"
)

// maxStateSize is the largest save state that will be allocated.
const maxStateSize = 256 * 1024 * 1024

// Serializer is implemented by a core that supports save states.
type Serializer interface {
	// zero if the core does not support save states
	SerializeSize() int
	Serialize(data []byte) bool
	Unserialize(data []byte) bool
}

func stateBuffer(core Serializer) ([]byte, Result) {
	if core == nil {
		return nil, NoSupport
	}
	size := core.SerializeSize()
	if size == 0 {
		return nil, NoSupport
	}
	if size < 0 || size > maxStateSize {
		return nil, AllocError
	}
	return make([]byte, size), OK
}

// ReadState restores the core from the save state at path. A file shorter than
// the core's state size is passed to the core padded with zero bytes.
func ReadState(path string, core Serializer) Result {
	buf, res := stateBuffer(core)
	if res != OK {
		return res
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileNotFound
		}
		logger.Logf(logger.Allow, "persistence", "state: %v", err)
		return FileError
	}
	defer f.Close()

	n, err := io.ReadFull(f, buf)
	if n == 0 && err != nil && !errors.Is(err, io.EOF) {
		logger.Logf(logger.Allow, "persistence", "state: %v", err)
		return FileError
	}

	if !core.Unserialize(buf) {
		return SerializeError
	}

	return OK
}

// WriteState saves the state of the core to path. The state is written to a
// temporary file in the same directory and renamed into place so that an
// interrupted write never leaves a truncated state behind.
func WriteState(path string, core Serializer) Result {
	buf, res := stateBuffer(core)
	if res != OK {
		return res
	}

	if !core.Serialize(buf) {
		return SerializeError
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		logger.Logf(logger.Allow, "persistence", "state: %v", err)
		return FileError
	}
	tmp := f.Name()

	n, err := f.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		logger.Logf(logger.Allow, "persistence", "state: %v", err)
		return FileError
	}

	return OK
}

// AutoSave writes the save state used to resume the game.
func AutoSave(statesDir string, game string, core Serializer) Result {
	return WriteState(paths.State(statesDir, game, paths.AutoResumeSlot), core)
}

// Resume restores the save state in the slot.
func Resume(statesDir string, game string, slot int, core Serializer) Result {
	return ReadState(paths.State(statesDir, game, slot), core)
}

// WriteAutoResume records the game so that the launcher can resume it after
// sleep or power off. The path is stored relative to the root of the SD card.
func WriteAutoResume(root paths.Root, gamePath string) error {
	marker := root.AutoResume()
	if err := os.MkdirAll(filepath.Dir(marker), 0o755); err != nil {
		return err
	}
	return os.WriteFile(marker, []byte(root.Relative(gamePath)), 0o644)
}

// ClearAutoResume removes the auto-resume marker. A missing marker is not an
// error.
func ClearAutoResume(root paths.Root) error {
	err := os.Remove(root.AutoResume())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
