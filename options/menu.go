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

import "github.com/minplayer/minplayer/menu"

// MenuList builds a menu of the visible options. Changing the value of an
// item changes the option. Items for locked options cannot be changed.
func (l *OptionList) MenuList() *menu.List {
	enabled := l.Enabled()

	list := &menu.List{
		Type:  menu.TypeVar,
		Items: make([]menu.Item, 0, len(enabled)),
		OnChange: func(list *menu.List, i int) menu.CallbackResult {
			it := &list.Items[i]
			opt := l.Find(it.Key)
			if opt == nil {
				return menu.CallbackNop
			}
			if opt.Lock {
				it.Value = opt.Value
				return menu.CallbackNop
			}
			l.SetRawValue(it.Key, it.Value)
			return menu.CallbackNop
		},
	}

	for _, opt := range enabled {
		desc := opt.Desc
		if opt.Lock {
			desc = "Locked by config file."
		}
		list.Items = append(list.Items, menu.Item{
			Name:   opt.Name,
			Desc:   desc,
			Key:    opt.Key,
			Values: opt.Labels,
			Value:  opt.Value,
		})
	}

	return list
}
