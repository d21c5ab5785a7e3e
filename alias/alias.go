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

// Package alias resolves the names shown for ROM files.
//
// An alias map is a text file of tab separated lines:
//
//	filename<TAB>display name
//
// Blank lines and lines without a tab are skipped. When a file name appears
// more than once the last entry is used.
//
// Maps from three places are merged for a ROM directory. The map shipped for
// all platforms is read first, then the map bundled with the platform's
// emulator pak, and finally the user's own map.txt in the ROM directory.
// Later maps take precedence.
package alias

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/paths"
)

// MapFile is the name of an alias map file.
const MapFile = "map.txt"

// Map of file names to display names.
type Map map[string]string

// Parse alias map entries from r into the map.
func (m Map) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		m[key] = value
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf("alias: %v", err)
	}
	return nil
}

// LoadFile parses the alias map file at path into the map. A missing file is
// not an error.
func (m Map) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return curated.Errorf("alias: %v", err)
	}
	defer f.Close()
	return m.Parse(f)
}

// Lookup returns the alias of the file name.
func (m Map) Lookup(fileName string) (string, bool) {
	v, ok := m[fileName]
	return v, ok
}

// DisplayName returns the alias of the file at romPath, or fallback if there
// is no alias.
func (m Map) DisplayName(romPath string, fallback string) string {
	if v, ok := m.Lookup(filepath.Base(romPath)); ok {
		return v
	}
	return fallback
}

// EmuName returns the emulator tag for a ROM path or ROM directory. The tag is
// the text inside the last parentheses of the ROM folder name, for example
// "GB" for "Roms/Game Boy (GB)/Tetris.gb". The folder name itself is returned
// if it has no tag.
func EmuName(path string) string {
	folder := romFolder(path)

	open := strings.LastIndex(folder, "(")
	if open >= 0 {
		end := strings.Index(folder[open:], ")")
		if end > 1 {
			return folder[open+1 : open+end]
		}
	}
	return folder
}

// romFolder returns the name of the folder directly below the Roms directory,
// or the name of the innermost directory if the path is not below Roms.
func romFolder(path string) string {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	for i := len(parts) - 2; i >= 0; i-- {
		if parts[i] == "Roms" {
			return parts[i+1]
		}
	}

	// a path without an extension is taken to be a directory
	if filepath.Ext(path) == "" {
		return filepath.Base(path)
	}
	return filepath.Base(filepath.Dir(path))
}

// PakMapPath returns the path of the map bundled with the emulator pak in the
// system directory.
func PakMapPath(systemDir string, emu string) string {
	return filepath.Join(systemDir, "paks", "Emus", emu+".pak", MapFile)
}

// Load merges the alias maps that apply to the ROM directory.
func Load(root paths.Root, romDir string) (Map, error) {
	m := make(Map)
	emu := EmuName(romDir)

	for _, p := range []string{
		PakMapPath(root.CommonSystem(), emu),
		PakMapPath(root.System(), emu),
		filepath.Join(romDir, MapFile),
	} {
		if err := m.LoadFile(p); err != nil {
			return m, err
		}
	}

	logger.Logf(logger.Allow, "alias", "%d aliases for %s", len(m), emu)
	return m, nil
}

// Resolve returns the display name for a single ROM file. The file name
// without its extension is returned if there is no alias.
func Resolve(root paths.Root, romPath string) string {
	name := filepath.Base(romPath)
	fallback := strings.TrimSuffix(name, filepath.Ext(name))

	m, err := Load(root, filepath.Dir(romPath))
	if err != nil {
		logger.Log(logger.Allow, "alias", err.Error())
	}
	return m.DisplayName(romPath, fallback)
}
