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

// Action is what the menu loop should do in response to a button press.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionExit
	ActionConfirm
	ActionSubmenu
	ActionAwaitInput
	ActionClearInput
	ActionValueLeft
	ActionValueRight
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionExit:
		return "exit"
	case ActionConfirm:
		return "confirm"
	case ActionSubmenu:
		return "submenu"
	case ActionAwaitInput:
		return "await input"
	case ActionClearInput:
		return "clear input"
	case ActionValueLeft:
		return "value left"
	case ActionValueRight:
		return "value right"
	}
	return "unknown action"
}

// Buttons are the buttons pressed this frame that GetAction() is interested in.
type Buttons struct {
	A bool
	B bool
	X bool
}

// GetAction resolves the buttons pressed for the item of the list.
//
// An item whose Values field is the buttonLabels slice itself is a button
// binding, and confirming it waits for a button press. An item with a copy of
// the labels is not a binding.
func GetAction(list *List, item *Item, buttons Buttons, buttonLabels []string) Action {
	if buttons.B {
		return ActionExit
	}

	if buttons.A {
		if item.OnConfirm != nil {
			return ActionConfirm
		}
		if item.Submenu != nil {
			return ActionSubmenu
		}
		if list.OnConfirm != nil {
			if sameList(item.Values, buttonLabels) {
				return ActionAwaitInput
			}
			return ActionConfirm
		}
	}

	if buttons.X && list.Type == TypeInput {
		return ActionClearInput
	}

	return ActionNone
}
