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

// NavState is the selection and visible window of a paginated list.
type NavState struct {
	Selected int

	// the window of visible items is Start up to but not including End
	Start int
	End   int

	Count       int
	VisibleRows int
	MaxVisible  int

	// the menu should be redrawn
	Dirty bool

	// the menu is waiting for a button to bind
	AwaitInput bool

	// the menu should close
	ShouldExit bool
}

// Init resets the navigation for a list of count items with room for
// maxVisible items on screen.
func (n *NavState) Init(count int, maxVisible int) {
	n.Count = count
	n.MaxVisible = maxVisible
	n.Selected = 0
	n.Start = 0
	n.End = min(count, maxVisible)
	n.VisibleRows = n.End
	n.Dirty = true
	n.AwaitInput = false
	n.ShouldExit = false
}

// Navigate moves the selection up for negative direction and down for a
// positive direction, wrapping at either end. Returns false if nothing
// changed.
func (n *NavState) Navigate(direction int) bool {
	if n.Count <= 0 {
		return false
	}

	switch {
	case direction < 0:
		n.Selected--
		if n.Selected < 0 {
			n.Selected = n.Count - 1
			if n.Count > n.MaxVisible {
				n.Start = n.Count - n.MaxVisible
			} else {
				n.Start = 0
			}
			n.End = n.Count
		} else if n.Selected < n.Start {
			n.Start--
			n.End--
		}
	case direction > 0:
		n.down()
	default:
		return false
	}

	return true
}

// AdvanceItem moves the selection down by one. Used after a button binding
// has been captured.
func (n *NavState) AdvanceItem() {
	n.down()
}

func (n *NavState) down() {
	n.Selected++
	if n.Selected >= n.Count {
		n.Selected = 0
		n.Start = 0
		n.End = n.VisibleRows
	} else if n.Selected >= n.End {
		n.Start++
		n.End++
	}
}

// Visible returns true if the item at index i is inside the visible window.
func (n *NavState) Visible(i int) bool {
	return i >= n.Start && i < n.End
}
