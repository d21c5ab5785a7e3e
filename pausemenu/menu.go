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
	"fmt"
	"image"

	"github.com/minplayer/minplayer/alias"
	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/platform"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/scaler"
	"golang.org/x/image/draw"
)

// List of menu items in the order they are shown.
const (
	ItemContinue = iota
	ItemSave
	ItemLoad
	ItemOptions
	ItemQuit
	itemCount
)

// Renderer is the hardware render pipeline as used by the menu.
type Renderer interface {
	IsEnabled() bool
	FramebufferSize() (uint32, uint32)
	Capture(width, height uint32) (*hwrender.Frame, error)
	PresentImage(img *image.RGBA)
}

// Menu is the pause menu of a game session.
type Menu struct {
	ctx     *player.Context
	plt     platform.Platform
	rnd     Renderer
	session *Session
	root    paths.Root

	// optional receiver of notices about saved and loaded states
	Notify notifications.Notify

	items [itemCount]string

	// the game frame that is saved as the thumbnail of a save state. nil if
	// no frame is available
	bitmap image.Image
}

// NewMenu is the preferred method of initialisation for the Menu type. The
// renderer may be nil if the core does not render with the GPU.
func NewMenu(ctx *player.Context, plt platform.Platform, rnd Renderer, root paths.Root) (*Menu, error) {
	s, err := NewSession(ctx, root)
	if err != nil {
		return nil, err
	}

	m := &Menu{
		ctx:     ctx,
		plt:     plt,
		rnd:     rnd,
		session: s,
		root:    root,
		items:   [itemCount]string{"Continue", "Save", "Load", "Options", "Quit"},
	}
	if ctx.Flags.SimpleMode {
		m.items[ItemOptions] = "Reset"
	}

	return m, nil
}

// Session returns the slot and disc state of the menu.
func (m *Menu) Session() *Session {
	return m.session
}

func (m *Menu) hwEnabled() bool {
	return m.rnd != nil && m.rnd.IsEnabled()
}

func (m *Menu) notify(notice notifications.Notice, detail string) {
	if m.Notify == nil {
		return
	}
	if err := m.Notify.Notify(notice, detail); err != nil {
		logger.Logf(logger.Allow, "pausemenu", "%v", err)
	}
}

// capture returns the frame to use for a save state thumbnail. If the GPU
// frame cannot be read back a black frame of the same size is used instead.
func (m *Menu) capture(frame image.Image) image.Image {
	if !m.hwEnabled() {
		return frame
	}

	w, h := m.rnd.FramebufferSize()
	if core := m.ctx.Core; core != nil && core.AV.Geometry.BaseWidth > 0 {
		w = core.AV.Geometry.BaseWidth
		h = core.AV.Geometry.BaseHeight
	}
	img, err := m.rnd.Capture(w, h)
	if err != nil {
		logger.Logf(logger.Allow, "pausemenu", "%v", err)
		if w == 0 || h == 0 {
			return nil
		}
		blank := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		draw.Draw(blank, blank.Bounds(), image.Black, image.Point{}, draw.Src)
		return blank
	}
	return img
}

func (m *Menu) present(screen *image.RGBA) {
	if m.hwEnabled() {
		m.rnd.PresentImage(screen)
		return
	}
	m.plt.Present(screen)
}

// Loop shows the menu and returns when the user leaves it. The frame argument
// is the last software frame of the core. It should be nil when the core
// renders with the GPU.
//
// Loop returns when the context's ShowMenu flag is cleared. The flag is set
// by Loop on entry.
func (m *Menu) Loop(frame image.Image) {
	ctx := m.ctx
	cb := ctx.Callbacks()
	screen := m.plt.Screen()
	if screen == nil {
		return
	}

	ctx.SetShowMenu(true)

	m.bitmap = m.capture(frame)

	backing := image.NewRGBA(screen.Bounds())
	if !m.hwEnabled() {
		scaler.Into(backing, frame, ctx.Core.AspectRatio(), ctx.Flags.Scaling, scaler.Sharpness(ctx.Flags.Sharpness))
	}

	if cb != nil {
		cb.SRAMWrite()
		cb.RTCWrite()
	}
	m.plt.EnableSleep(true)
	m.plt.SetCPUSpeed(player.CPUIdle)
	m.plt.ResetInput()

	title := alias.Resolve(m.root, ctx.Game.Path)

	s := m.session
	romDisc := s.Disc()
	s.InitState()

	selected := ItemContinue
	dirty := true

	for ctx.IsMenuShown() {
		if !m.plt.Poll() {
			ctx.SetShowMenu(false)
			ctx.SetQuit(true)
			break
		}

		switch {
		case m.plt.JustPressed(platform.ButtonUp):
			selected = (selected + itemCount - 1) % itemCount
			dirty = true
		case m.plt.JustPressed(platform.ButtonDown):
			selected = (selected + 1) % itemCount
			dirty = true
		case m.plt.JustPressed(platform.ButtonLeft), m.plt.JustPressed(platform.ButtonRight):
			dir := 1
			if m.plt.JustPressed(platform.ButtonLeft) {
				dir = -1
			}
			if selected == ItemContinue {
				dirty = s.CycleDisc(dir) || dirty
			} else if selected == ItemSave || selected == ItemLoad {
				s.CycleSlot(dir)
				dirty = true
			}
		}

		if dirty && (selected == ItemSave || selected == ItemLoad) {
			s.UpdateState()
		}

		if m.plt.JustPressed(platform.ButtonB) || m.plt.JustReleased(platform.ButtonMenu) {
			ctx.SetShowMenu(false)
		} else if m.plt.JustPressed(platform.ButtonA) {
			switch selected {
			case ItemContinue:
				if s.ChangeDisc(romDisc) {
					m.notify(notifications.NotifyDiscChanged, s.Discs()[s.Disc()])
				}
				ctx.SetShowMenu(false)

			case ItemSave:
				s.Save(m.bitmap)
				m.notify(notifications.NotifyStateSaved, fmt.Sprintf("slot %d", s.Slot()+1))
				ctx.SetShowMenu(false)

			case ItemLoad:
				if s.Load() {
					m.notify(notifications.NotifyStateLoaded, fmt.Sprintf("slot %d", s.Slot()+1))
				}
				ctx.SetShowMenu(false)

			case ItemOptions:
				if ctx.Flags.SimpleMode {
					if ctx.Core != nil && ctx.Core.Reset != nil {
						ctx.Core.Reset()
					}
					ctx.SetShowMenu(false)
					break
				}

				scaling := ctx.Flags.Scaling
				if cb != nil {
					cb.MenuOptions()
				}
				if ctx.Flags.Scaling != scaling && !m.hwEnabled() {
					if cb != nil && ctx.Renderer != nil {
						cb.SelectScaler(ctx.Renderer.SrcWidth, ctx.Renderer.SrcHeight, ctx.Renderer.SrcPitch)
					}
					scaler.Into(backing, frame, ctx.Core.AspectRatio(), ctx.Flags.Scaling, scaler.Sharpness(ctx.Flags.Sharpness))
				}
				m.plt.ResetInput()
				dirty = true

			case ItemQuit:
				ctx.SetShowMenu(false)
				ctx.SetQuit(true)
			}
			if !ctx.IsMenuShown() {
				break
			}
		}

		if m.plt.JustPressed(platform.ButtonPower) {
			m.sleep()
			dirty = true
		}

		if dirty {
			m.draw(screen, backing, title, selected)
			m.present(screen)
			dirty = false
		} else {
			m.plt.Sync()
		}
	}

	m.plt.ResetInput()

	if !ctx.IsQuitting() {
		if cb != nil {
			cb.VideoRefresh(nil, 0, 0, 0)
			cb.SetOverclock(ctx.Flags.Overclock)
		}
		m.plt.EnableSleep(false)
	}

	m.bitmap = nil
}

// sleep suspends the device from the menu.
func (m *Menu) sleep() {
	m.notify(notifications.NotifySleep, "")
	m.session.BeforeSleep()
	m.plt.SetCPUSpeed(player.CPUIdle)
	m.plt.Sleep()
	m.session.AfterSleep()
	m.plt.SetCPUSpeed(player.CPUIdle)
	m.notify(notifications.NotifyWake, "")
}

func (m *Menu) draw(screen *image.RGBA, backing *image.RGBA, title string, selected int) {
	s := m.session
	v := view{
		title:    title,
		items:    m.items[:],
		selected: selected,
		slot:     s.Slot(),
	}
	v.battery, v.charging = m.plt.Battery()

	if len(s.Discs()) > 1 {
		v.discLabel = fmt.Sprintf("Disc %d", s.Disc()+1)
	}

	if selected == ItemSave || selected == ItemLoad {
		v.showSlot = true
		switch {
		case s.PreviewExists:
			img, err := readThumbnail(s.ThumbnailPath())
			if err != nil {
				logger.Logf(logger.Allow, "pausemenu", "%v", err)
				v.message = "No Preview"
			} else {
				v.preview = img
			}
		case s.SaveExists:
			v.message = "No Preview"
		default:
			v.message = "Empty Slot"
		}
	}

	drawMenu(screen, backing, v)
}
