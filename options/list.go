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
	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/logger"
)

// OptionList is the set of options declared by a core.
type OptionList struct {
	Options []Option

	// the options that are currently visible
	enabled []*Option

	// an option has changed since the core last asked
	changed bool

	// applied to options when they are defined
	config *Config
}

// NewOptionList is the preferred method of initialisation for the OptionList
// type. The configuration may be nil.
func NewOptionList(cfg *Config) *OptionList {
	return &OptionList{config: cfg}
}

// SetConfig changes the configuration applied to the options. The
// configuration is applied immediately to any options already defined.
func (l *OptionList) SetConfig(cfg *Config) {
	l.config = cfg
	if cfg != nil {
		cfg.Apply(l)
	}
}

// Find returns the option with the key or nil if there is no such option.
func (l *OptionList) Find(key string) *Option {
	if l == nil || key == "" {
		return nil
	}
	for i := range l.Options {
		if l.Options[i].Key == key {
			return &l.Options[i]
		}
	}
	return nil
}

// Value implements the environment.Variables interface.
func (l *OptionList) Value(key string) (string, bool) {
	opt := l.Find(key)
	if opt == nil || opt.Value < 0 || opt.Value >= len(opt.Values) {
		return "", false
	}
	return opt.Values[opt.Value], true
}

// SetValue selects the value of the option with the key. A value that the
// option cannot take is ignored.
func (l *OptionList) SetValue(key string, value string) {
	opt := l.Find(key)
	if opt == nil {
		return
	}
	for i, v := range opt.Values {
		if v == value {
			opt.Value = i
			l.changed = true
			return
		}
	}
}

// SetRawValue selects the value of the option by index. An index out of range
// is ignored.
func (l *OptionList) SetRawValue(key string, index int) {
	opt := l.Find(key)
	if opt == nil {
		return
	}
	if index >= 0 && index < len(opt.Values) {
		opt.Value = index
		l.changed = true
	}
}

// Define implements the environment.Variables interface.
func (l *OptionList) Define(defs []environment.VariableDefinition) {
	l.Options = l.Options[:0]
	for _, d := range defs {
		if d.Key == "" {
			continue
		}
		l.Options = append(l.Options, parseDefinition(d))
	}

	if l.config != nil {
		l.config.Apply(l)
	}

	l.refresh()
	l.changed = true

	logger.Logf(logger.Allow, "options", "%d options defined by core", len(l.Options))
}

// Changed implements the environment.Variables interface.
func (l *OptionList) Changed() bool {
	c := l.changed
	l.changed = false
	return c
}

// SetVisible implements the environment.Variables interface.
func (l *OptionList) SetVisible(key string, visible bool) {
	opt := l.Find(key)
	if opt == nil {
		return
	}
	opt.Visible = visible
	l.refresh()
}

// Enabled returns the visible options.
func (l *OptionList) Enabled() []*Option {
	return l.enabled
}

// Reset restores every unlocked option to its default value.
func (l *OptionList) Reset() {
	for i := range l.Options {
		opt := &l.Options[i]
		if !opt.Lock && opt.Value != opt.Default {
			opt.Value = opt.Default
			l.changed = true
		}
	}
}

func (l *OptionList) refresh() {
	l.enabled = l.enabled[:0]
	for i := range l.Options {
		if l.Options[i].Visible {
			l.enabled = append(l.enabled, &l.Options[i])
		}
	}
}
