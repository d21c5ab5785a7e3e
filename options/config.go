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

package options

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/paths"
)

// ConfigState describes where the current configuration came from.
type ConfigState int

// List of valid ConfigState values.
const (
	ConfigNone ConfigState = iota
	ConfigConsole
	ConfigGame
)

func (s ConfigState) String() string {
	switch s {
	case ConfigNone:
		return "Using defaults."
	case ConfigConsole:
		return "Using console config."
	case ConfigGame:
		return "Using game config."
	}
	return ""
}

type entry struct {
	value string
	lock  bool
}

// Config is the content of a configuration file.
type Config struct {
	entries map[string]entry
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{entries: make(map[string]entry)}
}

// ParseConfig reads a configuration. Lines that are not of the form
// "key = value" are ignored. When a key appears more than once the last
// occurrence is used.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := NewConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, value, ok := strings.Cut(line, " = ")
		if !ok || key == "" {
			continue
		}
		var lock bool
		if strings.HasPrefix(key, "-") {
			lock = true
			key = key[1:]
		}
		cfg.entries[key] = entry{value: value, lock: lock}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	return cfg, nil
}

// LoadConfig reads the configuration for the game. The game configuration is
// preferred over the console configuration. A missing configuration is not
// an error and results in an empty configuration with a state of ConfigNone.
func LoadConfig(configDir string, game string, deviceTag string) (*Config, ConfigState, error) {
	for _, c := range []struct {
		path  string
		state ConfigState
	}{
		{path: paths.Config(configDir, game, deviceTag), state: ConfigGame},
		{path: paths.Config(configDir, "", deviceTag), state: ConfigConsole},
	} {
		f, err := os.Open(c.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return NewConfig(), ConfigNone, curated.Errorf("config: %v", err)
		}
		cfg, err := ParseConfig(f)
		_ = f.Close()
		if err != nil {
			return NewConfig(), ConfigNone, err
		}
		return cfg, c.state, nil
	}
	return NewConfig(), ConfigNone, nil
}

// Get returns the value for the key and whether it is locked.
func (c *Config) Get(key string) (value string, lock bool, ok bool) {
	if c == nil {
		return "", false, false
	}
	e, ok := c.entries[key]
	return e.value, e.lock, ok
}

// Apply the configuration to the options. The values of options not
// mentioned in the configuration are left alone.
func (c *Config) Apply(l *OptionList) {
	if c == nil || l == nil {
		return
	}
	for i := range l.Options {
		opt := &l.Options[i]
		e, ok := c.entries[opt.Key]
		if !ok {
			continue
		}
		opt.Value = opt.ValueIndex(e.value)
		opt.Lock = e.lock
	}
}

// Save writes the current value of every option to the file at path. Locked
// options keep their lock.
func Save(path string, l *OptionList) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}

	w := bufio.NewWriter(f)
	err = Write(w, l)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("config: %v", err)
	}
	return nil
}

// Write the options in configuration format. Options are written in key order.
func Write(w io.Writer, l *OptionList) error {
	opts := make([]*Option, 0, len(l.Options))
	for i := range l.Options {
		opts = append(opts, &l.Options[i])
	}
	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Key < opts[j].Key
	})

	for _, o := range opts {
		var lock string
		if o.Lock {
			lock = "-"
		}
		if _, err := fmt.Fprintf(w, "%s%s = %s\n", lock, o.Key, o.Current()); err != nil {
			return err
		}
	}
	return nil
}
