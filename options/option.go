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
	"strings"

	"github.com/minplayer/minplayer/environment"
)

// Option is a single core option.
type Option struct {
	Key  string
	Name string

	// short and full description. either may be empty
	Desc string
	Full string

	// the values the option can take and the labels shown for them
	Values []string
	Labels []string

	Default int
	Value   int

	// set by a configuration file. a locked option cannot be changed by the user
	Lock bool

	// set by the core
	Visible bool
}

// ValueIndex returns the index of value in the option's values. Zero is
// returned if the value is not found.
func (o *Option) ValueIndex(value string) int {
	if o == nil {
		return 0
	}
	for i, v := range o.Values {
		if v == value {
			return i
		}
	}
	return 0
}

// Current returns the current value of the option.
func (o *Option) Current() string {
	if o.Value < 0 || o.Value >= len(o.Values) {
		return ""
	}
	return o.Values[o.Value]
}

// parseDefinition splits a legacy variable definition of the form
// "Description; first|second|third".
func parseDefinition(def environment.VariableDefinition) Option {
	opt := Option{
		Key:     def.Key,
		Visible: true,
	}

	desc, values, ok := strings.Cut(def.Value, "; ")
	if !ok {
		desc, values, _ = strings.Cut(def.Value, ";")
	}
	opt.Name = DisplayName(def.Key, strings.TrimSpace(desc))

	if values != "" {
		opt.Values = strings.Split(values, "|")
	}
	opt.Labels = opt.Values
	return opt
}

// the names of some options are unhelpful when shown on a small screen
var displayNames = map[string]string{
	"pcsx_rearmed_analog_combo": "DualShock Toggle Combo",
}

// DisplayName returns the name to show for the option key. The name supplied
// by the core is returned if there is no better name.
func DisplayName(key string, name string) string {
	if n, ok := displayNames[key]; ok {
		return n
	}
	return name
}
