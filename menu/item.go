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

package menu

// CallbackResult tells the menu loop what to do after an item callback.
type CallbackResult int

// List of valid CallbackResult values.
const (
	// stay on the current item
	CallbackNop CallbackResult = iota

	// leave the current menu
	CallbackExit

	// move to the next item
	CallbackNextItem
)

// Callback is called when an item is confirmed or its value is changed. The i
// argument is the index of the item in the list.
type Callback func(list *List, i int) CallbackResult

// Item is a single entry in a List.
type Item struct {
	Name string
	Desc string

	// labels for the values the item can take. nil for items without a value
	Values []string

	// current index into Values
	Value int

	// identifies the option or binding the item controls
	Key string
	ID  int

	// a list opened when the item is confirmed
	Submenu *List

	OnConfirm Callback
	OnChange  Callback
}

// Label returns the label of the item's current value, or the empty string
// if the item has no values.
func (it *Item) Label() string {
	if it.Value < 0 || it.Value >= len(it.Values) {
		return ""
	}
	return it.Values[it.Value]
}

// Cycle moves the item's value one step in the direction, wrapping at either
// end. It returns false if the direction is zero or the item has no values.
func (it *Item) Cycle(direction int) bool {
	if len(it.Values) == 0 {
		return false
	}

	switch {
	case direction < 0:
		if it.Value > 0 {
			it.Value--
		} else {
			it.Value = len(it.Values) - 1
		}
	case direction > 0:
		if it.Value+1 < len(it.Values) {
			it.Value++
		} else {
			it.Value = 0
		}
	default:
		return false
	}

	return true
}

// ListType changes how a list is drawn and how it responds to input.
type ListType int

// List of valid ListType values.
const (
	// a plain list of actions
	TypeList ListType = iota

	// left and right change the value of the selected item
	TypeVar

	// values are shown but are changed in a submenu
	TypeFixed

	// button bindings. drawn like TypeVar
	TypeInput
)

// List is a menu of items.
type List struct {
	Type ListType
	Desc string

	Items []Item

	// used for items that have no callback of their own
	OnConfirm Callback
	OnChange  Callback

	// width of the widest item. zero until the list is first drawn
	MaxWidth int

	// the items have been rebuilt and the menu loop must reset its NavState
	Dirty bool
}

// sameList returns true if a and b are the same slice. Equal contents in
// different slices are not the same.
func sameList(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	return &a[0] == &b[0]
}
