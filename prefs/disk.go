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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/minplayer/minplayer/curated"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in a prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk. The key must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "::") {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read all key/value pairs from the prefs file. a missing file results in an
// empty map and no error.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() {
		return data, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: %s is not a prefs file", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0600)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values on disk. If saveOnFirstUse is true and the
// file does not exist then the current values are written to disk.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	if _, err := os.Stat(dsk.path); os.IsNotExist(err) && saveOnFirstUse {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}
