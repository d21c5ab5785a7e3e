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

package pausemenu_test

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/menu"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/pausemenu"
	"github.com/minplayer/minplayer/platform"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/test"
	"golang.org/x/image/bmp"
)

// fakePlatform plays back a script of button presses. Each entry in the
// script is the set of buttons pressed during one frame. Poll() returns false
// when the script runs out.
type fakePlatform struct {
	screen  *image.RGBA
	script  [][]platform.Button
	pressed map[platform.Button]bool

	presents int
	syncs    int
	speeds   []player.Overclock
	sleeping bool
	sleeps   int
}

func newFakePlatform(script ...[]platform.Button) *fakePlatform {
	return &fakePlatform{
		screen: image.NewRGBA(image.Rect(0, 0, 320, 240)),
		script: script,
	}
}

func press(b ...platform.Button) []platform.Button {
	return b
}

func (p *fakePlatform) Poll() bool {
	p.pressed = make(map[platform.Button]bool)
	if len(p.script) == 0 {
		return false
	}
	for _, b := range p.script[0] {
		p.pressed[b] = true
	}
	p.script = p.script[1:]
	return true
}

func (p *fakePlatform) JustPressed(b platform.Button) bool  { return p.pressed[b] }
func (p *fakePlatform) JustReleased(b platform.Button) bool { return false }
func (p *fakePlatform) IsPressed(b platform.Button) bool    { return p.pressed[b] }
func (p *fakePlatform) ResetInput()                         {}
func (p *fakePlatform) Screen() *image.RGBA                 { return p.screen }
func (p *fakePlatform) Present(screen *image.RGBA)          { p.presents++ }
func (p *fakePlatform) Sync()                               { p.syncs++ }
func (p *fakePlatform) EnableSleep(enable bool)             { p.sleeping = enable }
func (p *fakePlatform) Sleep()                              { p.sleeps++ }
func (p *fakePlatform) Battery() (int, bool)                { return 80, false }
func (p *fakePlatform) HDMI() bool                          { return false }
func (p *fakePlatform) Destroy()                            {}

func (p *fakePlatform) SetCPUSpeed(speed player.Overclock) {
	p.speeds = append(p.speeds, speed)
}

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice, detail string) error {
	*n = append(*n, notice)
	return nil
}

func newMenu(t *testing.T, f *fixture, plt *fakePlatform) (*pausemenu.Menu, *notices) {
	t.Helper()
	m, err := pausemenu.NewMenu(f.ctx, plt, nil, f.root)
	test.DemandSuccess(t, err)
	n := &notices{}
	m.Notify = n
	return m, n
}

func frame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 160, 144))
}

func TestMenuContinue(t *testing.T) {
	f := newFixture(t, "Game.bin")
	f.ctx.Flags.Overclock = player.CPUPowersave
	plt := newFakePlatform(press(), press(platform.ButtonB))
	m, _ := newMenu(t, f, plt)

	m.Loop(frame())
	test.ExpectedFailure(t, f.ctx.IsMenuShown())
	test.ExpectedFailure(t, f.ctx.IsQuitting())

	// battery and rtc are flushed on entry
	test.Equate(t, f.cb.sram, 1)
	test.Equate(t, f.cb.rtc, 1)

	// cpu is idled in the menu and restored on exit
	test.Equate(t, len(plt.speeds), 1)
	test.DemandEquality(t, plt.speeds[0], player.CPUIdle)
	test.Equate(t, len(f.cb.overclock), 1)
	test.DemandEquality(t, f.cb.overclock[0], player.CPUPowersave)
	test.ExpectedFailure(t, plt.sleeping)

	// the last frame is shown again
	test.Equate(t, f.cb.refreshes, 1)
	test.Equate(t, plt.presents, 1)
	test.Equate(t, plt.syncs, 1)
}

func TestMenuSave(t *testing.T) {
	f := newFixture(t, "Game.bin")
	plt := newFakePlatform(
		press(platform.ButtonDown),
		press(platform.ButtonRight),
		press(platform.ButtonRight),
		press(platform.ButtonA),
	)
	m, n := newMenu(t, f, plt)

	m.Loop(frame())
	test.ExpectedFailure(t, f.ctx.IsQuitting())
	test.Equate(t, len(f.cb.writes), 1)
	test.Equate(t, f.cb.writes[0], 2)
	test.Equate(t, len(*n), 1)
	test.Equate(t, string((*n)[0]), string(notifications.NotifyStateSaved))

	_, err := os.Stat(filepath.Join(f.launcher(), "Game.bin.2.bmp"))
	test.ExpectedSuccess(t, err)

	// the slot is remembered for the next visit to the menu
	plt.script = [][]platform.Button{press(platform.ButtonDown), press(platform.ButtonDown), press(platform.ButtonA)}
	m.Loop(frame())
	test.Equate(t, len(f.cb.reads), 1)
	test.Equate(t, f.cb.reads[0], 2)
	test.Equate(t, string((*n)[1]), string(notifications.NotifyStateLoaded))
}

// fakeRenderer is an enabled GPU pipeline that cannot read back its frame.
type fakeRenderer struct {
	presents int
}

func (r *fakeRenderer) IsEnabled() bool                   { return true }
func (r *fakeRenderer) FramebufferSize() (uint32, uint32) { return 320, 240 }
func (r *fakeRenderer) PresentImage(img *image.RGBA)      { r.presents++ }

func (r *fakeRenderer) Capture(width, height uint32) (*hwrender.Frame, error) {
	return nil, errors.New("read back failed")
}

func TestMenuSaveCaptureFailed(t *testing.T) {
	f := newFixture(t, "Game.bin")
	f.ctx.Core.AV.Geometry.BaseWidth = 256
	f.ctx.Core.AV.Geometry.BaseHeight = 224

	plt := newFakePlatform(
		press(platform.ButtonDown),
		press(platform.ButtonA),
	)
	rnd := &fakeRenderer{}
	m, err := pausemenu.NewMenu(f.ctx, plt, rnd, f.root)
	test.DemandSuccess(t, err)

	m.Loop(nil)
	test.Equate(t, len(f.cb.writes), 1)
	test.Equate(t, plt.presents, 0)
	test.ExpectedSuccess(t, rnd.presents > 0)

	// the slot still gets a thumbnail the size of the core's frame
	fl, err := os.Open(filepath.Join(f.launcher(), "Game.bin.0.bmp"))
	test.DemandSuccess(t, err)
	defer fl.Close()
	img, err := bmp.Decode(fl)
	test.DemandSuccess(t, err)
	test.Equate(t, img.Bounds().Dx(), 256)
	test.Equate(t, img.Bounds().Dy(), 224)
}

func TestMenuLoadEmptySlot(t *testing.T) {
	f := newFixture(t, "Game.bin")
	plt := newFakePlatform(
		press(platform.ButtonUp),
		press(platform.ButtonUp),
		press(platform.ButtonUp),
		press(platform.ButtonA),
	)
	m, n := newMenu(t, f, plt)

	m.Loop(frame())
	test.Equate(t, len(f.cb.reads), 0)
	test.Equate(t, len(*n), 0)
	test.ExpectedFailure(t, f.ctx.IsMenuShown())
}

func TestMenuQuit(t *testing.T) {
	f := newFixture(t, "Game.bin")
	plt := newFakePlatform(press(platform.ButtonUp), press(platform.ButtonA))
	m, _ := newMenu(t, f, plt)

	m.Loop(frame())
	test.ExpectedSuccess(t, f.ctx.IsQuitting())
	test.Equate(t, f.cb.refreshes, 0)
	test.Equate(t, len(f.cb.overclock), 0)
}

func TestMenuWindowClosed(t *testing.T) {
	f := newFixture(t, "Game.bin")
	plt := newFakePlatform()
	m, _ := newMenu(t, f, plt)

	m.Loop(nil)
	test.ExpectedSuccess(t, f.ctx.IsQuitting())
	test.ExpectedFailure(t, f.ctx.IsMenuShown())
}

func TestMenuReset(t *testing.T) {
	f := newFixture(t, "Game.bin")
	f.ctx.Flags.SimpleMode = true
	var resets int
	f.ctx.Core.Reset = func() { resets++ }

	plt := newFakePlatform(press(platform.ButtonUp), press(platform.ButtonUp), press(platform.ButtonA))
	m, _ := newMenu(t, f, plt)

	m.Loop(frame())
	test.Equate(t, resets, 1)
	test.Equate(t, f.cb.options, 0)
	test.ExpectedFailure(t, f.ctx.IsQuitting())
}

func TestMenuOptions(t *testing.T) {
	f := newFixture(t, "Game.bin")
	f.cb.onOptions = func() {
		f.ctx.Flags.Scaling = player.ScaleFullscreen
	}

	plt := newFakePlatform(
		press(platform.ButtonUp),
		press(platform.ButtonUp),
		press(platform.ButtonA),
		press(platform.ButtonB),
	)
	m, _ := newMenu(t, f, plt)

	m.Loop(frame())
	test.Equate(t, f.cb.options, 1)
	test.Equate(t, f.cb.scalers, 1)
	test.ExpectedFailure(t, f.ctx.IsQuitting())
}

func TestMenuDiscChange(t *testing.T) {
	f := newFixture(t, "Game (Disc 1).cue")
	f.ctx.Game.M3UPath = writeDiscs(t, f)

	plt := newFakePlatform(press(platform.ButtonRight), press(platform.ButtonA))
	m, n := newMenu(t, f, plt)

	m.Loop(frame())
	test.Equate(t, len(f.cb.discs), 1)
	test.Equate(t, filepath.Base(f.cb.discs[0]), "Game (Disc 3).cue")
	test.Equate(t, string((*n)[0]), string(notifications.NotifyDiscChanged))

	// continuing with the disc in use does not change disc
	plt.script = [][]platform.Button{press(platform.ButtonA)}
	m.Loop(frame())
	test.Equate(t, len(f.cb.discs), 1)
}

func TestMenuSleep(t *testing.T) {
	f := newFixture(t, "Game.bin")
	plt := newFakePlatform(press(platform.ButtonPower), press(platform.ButtonB))
	m, n := newMenu(t, f, plt)

	m.Loop(frame())
	test.Equate(t, plt.sleeps, 1)
	test.Equate(t, f.cb.autosaves, 1)
	test.Equate(t, len(*n), 2)
	test.Equate(t, string((*n)[0]), string(notifications.NotifySleep))
	test.Equate(t, string((*n)[1]), string(notifications.NotifyWake))

	_, err := os.Stat(f.root.AutoResume())
	test.ExpectedSuccess(t, os.IsNotExist(err))
}

func TestOptionsList(t *testing.T) {
	f := newFixture(t, "Game.bin")

	var changes []int
	list := &menu.List{
		Type: menu.TypeVar,
		Items: []menu.Item{
			{Name: "Scaling", Values: []string{"Native", "Aspect", "Fullscreen"}},
			{Name: "Sharpness", Values: []string{"Sharp", "Crisp", "Soft"}},
		},
		OnChange: func(list *menu.List, i int) menu.CallbackResult {
			changes = append(changes, i)
			return menu.CallbackNop
		},
	}

	plt := newFakePlatform(
		press(platform.ButtonDown),
		press(platform.ButtonLeft),
		press(platform.ButtonUp),
		press(platform.ButtonRight),
		press(platform.ButtonB),
	)
	m, _ := newMenu(t, f, plt)

	m.Options("Options", list)
	test.Equate(t, len(changes), 2)
	test.Equate(t, changes[0], 1)
	test.Equate(t, changes[1], 0)
	test.Equate(t, list.Items[0].Value, 1)
	test.Equate(t, list.Items[1].Value, 2)
	test.ExpectedFailure(t, f.ctx.IsQuitting())
}

func TestOptionsSubmenu(t *testing.T) {
	f := newFixture(t, "Game.bin")

	var confirmed int
	sub := &menu.List{
		Type: menu.TypeList,
		Items: []menu.Item{
			{Name: "Restore Defaults", OnConfirm: func(list *menu.List, i int) menu.CallbackResult {
				confirmed++
				return menu.CallbackExit
			}},
		},
	}
	list := &menu.List{
		Type:  menu.TypeList,
		Items: []menu.Item{{Name: "Core", Submenu: sub}},
	}

	plt := newFakePlatform(press(platform.ButtonA), press(platform.ButtonA), press(platform.ButtonB))
	m, _ := newMenu(t, f, plt)

	m.Options("Options", list)
	test.Equate(t, confirmed, 1)
	test.Equate(t, len(plt.script), 0)
	test.ExpectedFailure(t, f.ctx.IsQuitting())
}
