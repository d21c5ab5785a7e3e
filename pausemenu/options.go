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

package pausemenu

import (
	"image"

	"github.com/minplayer/minplayer/menu"
	"github.com/minplayer/minplayer/platform"
)

// maxVisible returns how many rows of a list fit between the title and the
// description at the bottom of the screen.
func maxVisible(height int) int {
	m := newMetrics(height)
	rows := (height - (m.edgePadding+m.pillHeight)*2 - m.padding*2) / m.pillHeight
	return max(1, rows)
}

// Options shows the list and returns when the user leaves it. Changes are
// made to the list's items as they happen and reported through the list's
// callbacks.
func (m *Menu) Options(title string, list *menu.List) {
	screen := m.plt.Screen()
	if screen == nil || list == nil {
		return
	}

	var nav menu.NavState
	nav.Init(len(list.Items), maxVisible(screen.Bounds().Dy()))

	m.plt.ResetInput()

	for !nav.ShouldExit {
		if !m.plt.Poll() {
			m.ctx.SetQuit(true)
			return
		}

		if list.Dirty {
			nav.Init(len(list.Items), nav.MaxVisible)
			list.Dirty = false
		}

		switch {
		case m.plt.JustPressed(platform.ButtonUp):
			nav.Dirty = nav.Navigate(-1) || nav.Dirty
		case m.plt.JustPressed(platform.ButtonDown):
			nav.Dirty = nav.Navigate(1) || nav.Dirty
		case m.plt.JustPressed(platform.ButtonLeft):
			nav.Dirty = m.change(list, nav.Selected, -1) || nav.Dirty
		case m.plt.JustPressed(platform.ButtonRight):
			nav.Dirty = m.change(list, nav.Selected, 1) || nav.Dirty
		}

		if nav.Count > 0 || m.plt.JustPressed(platform.ButtonB) {
			var item *menu.Item
			if nav.Count > 0 {
				item = &list.Items[nav.Selected]
			} else {
				item = &menu.Item{}
			}

			buttons := menu.Buttons{
				A: m.plt.JustPressed(platform.ButtonA),
				B: m.plt.JustPressed(platform.ButtonB),
				X: m.plt.JustPressed(platform.ButtonX),
			}

			switch menu.GetAction(list, item, buttons, nil) {
			case menu.ActionExit:
				nav.ShouldExit = true
			case menu.ActionConfirm:
				cb := item.OnConfirm
				if cb == nil {
					cb = list.OnConfirm
				}
				switch cb(list, nav.Selected) {
				case menu.CallbackExit:
					nav.ShouldExit = true
				case menu.CallbackNextItem:
					nav.AdvanceItem()
				}
				nav.Dirty = true
			case menu.ActionSubmenu:
				m.Options(item.Name, item.Submenu)
				m.plt.ResetInput()
				nav.Dirty = true
			}
		}

		if nav.ShouldExit || m.ctx.IsQuitting() {
			break
		}

		if nav.Dirty {
			drawList(screen, title, list, &nav)
			m.present(screen)
			nav.Dirty = false
		} else {
			m.plt.Sync()
		}
	}

	m.plt.ResetInput()
}

// change cycles the value of the item and calls the change callback. Items
// of a plain list have no values to change.
func (m *Menu) change(list *menu.List, i int, direction int) bool {
	if list.Type == menu.TypeList || i < 0 || i >= len(list.Items) {
		return false
	}
	it := &list.Items[i]
	if !it.Cycle(direction) {
		return false
	}
	cb := it.OnChange
	if cb == nil {
		cb = list.OnChange
	}
	if cb != nil {
		cb(list, i)
	}
	return true
}

// drawList draws the visible window of the list.
func drawList(dst *image.RGBA, title string, list *menu.List, nav *menu.NavState) {
	b := dst.Bounds()
	m := newMetrics(b.Dy())
	scale := m.unit

	fill(dst, b, colorBlack)

	maxWidth := b.Dx() - m.edgePadding*2
	t := truncate(title, maxWidth-m.buttonPadding*2, scale)
	titleRect := image.Rect(b.Min.X+m.edgePadding, b.Min.Y+m.edgePadding, b.Min.X+m.edgePadding+textWidth(t, scale)+m.buttonPadding*2, b.Min.Y+m.edgePadding+m.pillHeight)
	fill(dst, titleRect, colorDarkGray)
	drawText(dst, titleRect.Min.X+m.buttonPadding, titleRect.Min.Y+m.textOffset, t, colorWhite, scale)

	oy := b.Min.Y + m.edgePadding + m.pillHeight + m.padding
	for i := nav.Start; i < nav.End && i < len(list.Items); i++ {
		it := &list.Items[i]
		y := oy + (i-nav.Start)*m.pillHeight
		x := b.Min.X + m.edgePadding

		col := colorWhite
		if i == nav.Selected {
			fill(dst, image.Rect(x, y, b.Max.X-m.edgePadding, y+m.pillHeight), colorDarkGray)
			w := textWidth(it.Name, scale) + m.buttonPadding*2
			fill(dst, image.Rect(x, y, x+w, y+m.pillHeight), colorWhite)
			col = colorBlack
		}
		drawText(dst, x+m.buttonPadding, y+m.textOffset, it.Name, col, scale)

		if label := it.Label(); label != "" && list.Type != menu.TypeList {
			lw := textWidth(label, scale)
			drawText(dst, b.Max.X-m.edgePadding-m.buttonPadding-lw, y+m.textOffset, label, colorWhite, scale)
		}
	}

	// description of the selected item
	if nav.Selected >= 0 && nav.Selected < len(list.Items) {
		desc := list.Items[nav.Selected].Desc
		if desc == "" {
			desc = list.Desc
		}
		desc = truncate(desc, maxWidth, scale)
		y := b.Max.Y - m.edgePadding - m.pillHeight + m.textOffset
		drawText(dst, b.Min.X+(b.Dx()-textWidth(desc, scale))/2, y, desc, colorGray, scale)
	}
}
