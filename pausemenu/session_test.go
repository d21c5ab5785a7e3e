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
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/pausemenu"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/test"
)

// callbacks records calls made by the pause menu.
type callbacks struct {
	ctx       *player.Context
	statesDir string

	sram      int
	rtc       int
	reads     []int
	writes    []int
	autosaves int
	discs     []string
	overclock []player.Overclock
	refreshes int
	options   int
	scalers   int

	// slots seen by StatePath()
	queried []int

	// called by MenuOptions()
	onOptions func()
}

func (cb *callbacks) SRAMWrite() { cb.sram++ }
func (cb *callbacks) RTCWrite()  { cb.rtc++ }

func (cb *callbacks) StatePath() string {
	cb.queried = append(cb.queried, cb.ctx.Flags.StateSlot)
	return paths.State(cb.statesDir, cb.ctx.Game.Name, cb.ctx.Flags.StateSlot)
}

func (cb *callbacks) StateRead() {
	cb.reads = append(cb.reads, cb.ctx.Flags.StateSlot)
}

func (cb *callbacks) StateWrite() {
	cb.writes = append(cb.writes, cb.ctx.Flags.StateSlot)
	_ = os.WriteFile(cb.StatePath(), []byte("state"), 0o644)
}

func (cb *callbacks) StateAutosave()                                     { cb.autosaves++ }
func (cb *callbacks) ChangeDisc(path string)                             { cb.discs = append(cb.discs, path) }
func (cb *callbacks) SelectScaler(srcWidth, srcHeight, srcPitch int)     { cb.scalers++ }
func (cb *callbacks) VideoRefresh(data []byte, width, height, pitch int) { cb.refreshes++ }
func (cb *callbacks) SetOverclock(level player.Overclock)                { cb.overclock = append(cb.overclock, level) }
func (cb *callbacks) HDMI() bool                                         { return false }

func (cb *callbacks) MenuOptions() {
	cb.options++
	if cb.onOptions != nil {
		cb.onOptions()
	}
}

// fixture is an SD card with a game in a temporary directory.
type fixture struct {
	root paths.Root
	ctx  *player.Context
	cb   *callbacks
}

func newFixture(t *testing.T, rom string) *fixture {
	t.Helper()

	sd := t.TempDir()
	root := paths.Root{SDCard: sd, Platform: "test"}

	romPath := filepath.Join(root.Roms(), "Sony PlayStation (PS)", rom)
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(romPath), 0o755))
	test.DemandSuccess(t, os.WriteFile(romPath, []byte{0}, 0o644))

	states := root.States("PS", "test")
	test.DemandSuccess(t, os.MkdirAll(states, 0o755))

	ctx := player.NewContext()
	ctx.Bind(player.NewGame(romPath), &player.CoreInfo{Tag: "PS"})

	cb := &callbacks{ctx: ctx, statesDir: states}
	ctx.SetCallbacks(cb)

	return &fixture{root: root, ctx: ctx, cb: cb}
}

func (f *fixture) launcher() string {
	return f.root.Launcher("PS")
}

func (f *fixture) writeSlotFile(t *testing.T, content string) {
	t.Helper()
	pth := filepath.Join(f.launcher(), f.ctx.Game.Name+".txt")
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(pth), 0o755))
	test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0o644))
}

func TestSlotInit(t *testing.T) {
	f := newFixture(t, "Game.bin")

	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	// launcher directory is created by NewSession()
	_, err = os.Stat(f.launcher())
	test.ExpectedSuccess(t, err)

	// no slot file
	s.InitState()
	test.Equate(t, s.Slot(), 0)

	for _, c := range []struct {
		content string
		slot    int
	}{
		{"3", 3},
		{"7\n", 7},
		{" 5 and some text", 5},
		{"8", 0},
		{"12", 0},
		{"junk", 0},
		{"", 0},
	} {
		f.writeSlotFile(t, c.content)
		s.CycleSlot(1)
		s.InitState()
		test.Equate(t, s.Slot(), c.slot)
		test.ExpectedFailure(t, s.SaveExists)
		test.ExpectedFailure(t, s.PreviewExists)
	}
}

func TestCycleSlot(t *testing.T) {
	f := newFixture(t, "Game.bin")
	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	s.CycleSlot(-1)
	test.Equate(t, s.Slot(), pausemenu.SlotCount-1)
	s.CycleSlot(1)
	test.Equate(t, s.Slot(), 0)

	for i := 0; i < pausemenu.SlotCount; i++ {
		s.CycleSlot(1)
	}
	test.Equate(t, s.Slot(), 0)
}

func TestUpdateStateRestoresSlot(t *testing.T) {
	f := newFixture(t, "Game.bin")
	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	f.ctx.Flags.StateSlot = 2
	s.CycleSlot(5)
	s.UpdateState()

	// the state path was asked for slot 5 but the context is unchanged
	test.Equate(t, len(f.cb.queried), 1)
	test.Equate(t, f.cb.queried[0], 5)
	test.Equate(t, f.ctx.Flags.StateSlot, 2)
	test.ExpectedFailure(t, s.SaveExists)
	test.Equate(t, filepath.Base(s.ThumbnailPath()), "Game.bin.5.bmp")
}

func TestSaveAndLoad(t *testing.T) {
	f := newFixture(t, "Game.bin")
	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	// nothing to load in an empty slot
	test.ExpectedFailure(t, s.Load())
	test.Equate(t, len(f.cb.reads), 0)

	s.CycleSlot(3)
	s.Save(image.NewRGBA(image.Rect(0, 0, 16, 12)))
	test.Equate(t, len(f.cb.writes), 1)
	test.Equate(t, f.cb.writes[0], 3)
	test.Equate(t, f.ctx.Flags.StateSlot, 3)

	b, err := os.ReadFile(filepath.Join(f.launcher(), "Game.bin.txt"))
	test.DemandSuccess(t, err)
	test.Equate(t, string(b), "3")

	s.UpdateState()
	test.ExpectedSuccess(t, s.SaveExists)
	test.ExpectedSuccess(t, s.PreviewExists)

	// single disc games have no disc record
	_, err = os.Stat(filepath.Join(f.launcher(), "Game.bin.3.txt"))
	test.ExpectedSuccess(t, os.IsNotExist(err))

	f.ctx.Flags.StateSlot = 0
	test.ExpectedSuccess(t, s.Load())
	test.Equate(t, len(f.cb.reads), 1)
	test.Equate(t, f.cb.reads[0], 3)
	test.Equate(t, len(f.cb.discs), 0)

	// a save without a thumbnail has no preview
	s.CycleSlot(1)
	s.Save(nil)
	s.UpdateState()
	test.ExpectedSuccess(t, s.SaveExists)
	test.ExpectedFailure(t, s.PreviewExists)
}

// writeDiscs creates a playlist for a three disc game. The second disc is
// listed but missing.
func writeDiscs(t *testing.T, f *fixture) string {
	t.Helper()

	dir := filepath.Dir(f.ctx.Game.Path)
	for _, d := range []string{"Game (Disc 1).cue", "Game (Disc 3).cue"} {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, d), []byte{0}, 0o644))
	}
	m3u := filepath.Join(dir, "Game.m3u")
	test.DemandSuccess(t, os.WriteFile(m3u, []byte("Game (Disc 1).cue\r\n\nGame (Disc 2).cue\nGame (Disc 3).cue\n"), 0o644))
	return m3u
}

func TestPlaylist(t *testing.T) {
	f := newFixture(t, "Game (Disc 3).cue")
	f.ctx.Game.M3UPath = writeDiscs(t, f)

	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	discs := s.Discs()
	test.Equate(t, len(discs), 2)
	test.Equate(t, filepath.Base(discs[0]), "Game (Disc 1).cue")
	test.Equate(t, filepath.Base(discs[1]), "Game (Disc 3).cue")
	test.Equate(t, s.Disc(), 1)

	test.ExpectedSuccess(t, s.CycleDisc(1))
	test.Equate(t, s.Disc(), 0)
	test.ExpectedSuccess(t, s.CycleDisc(-1))
	test.Equate(t, s.Disc(), 1)

	// the disc in use is not changed
	test.ExpectedFailure(t, s.ChangeDisc(1))
	s.CycleDisc(1)
	test.ExpectedSuccess(t, s.ChangeDisc(1))
	test.Equate(t, len(f.cb.discs), 1)
	test.Equate(t, f.cb.discs[0], discs[0])
}

func TestSingleDisc(t *testing.T) {
	f := newFixture(t, "Game.bin")
	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	test.Equate(t, s.Disc(), -1)
	test.ExpectedFailure(t, s.CycleDisc(1))
	test.ExpectedFailure(t, s.ChangeDisc(-1))
}

func TestLoadChangesDisc(t *testing.T) {
	f := newFixture(t, "Game (Disc 1).cue")
	f.ctx.Game.M3UPath = writeDiscs(t, f)

	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)
	test.Equate(t, s.Disc(), 0)

	// save with the third disc in use. the disc record is relative to the
	// playlist
	s.SetDisc(1)
	s.Save(nil)
	b, err := os.ReadFile(filepath.Join(f.launcher(), "Game (Disc 1).cue.0.txt"))
	test.DemandSuccess(t, err)
	test.Equate(t, string(b), "Game (Disc 3).cue")

	// loading with the first disc in use changes disc before the state is read
	s.SetDisc(0)
	test.ExpectedSuccess(t, s.Load())
	test.Equate(t, len(f.cb.discs), 1)
	test.Equate(t, filepath.Base(f.cb.discs[0]), "Game (Disc 3).cue")
	test.Equate(t, s.Disc(), 1)
	test.Equate(t, len(f.cb.reads), 1)

	// loading again with the same disc does not change disc
	test.ExpectedSuccess(t, s.Load())
	test.Equate(t, len(f.cb.discs), 1)
}

func TestSleep(t *testing.T) {
	f := newFixture(t, "Game.bin")
	f.ctx.Flags.Overclock = player.CPUPerformance

	s, err := pausemenu.NewSession(f.ctx, f.root)
	test.DemandSuccess(t, err)

	s.BeforeSleep()
	test.Equate(t, f.cb.sram, 1)
	test.Equate(t, f.cb.rtc, 1)
	test.Equate(t, f.cb.autosaves, 1)

	b, err := os.ReadFile(f.root.AutoResume())
	test.DemandSuccess(t, err)
	test.Equate(t, string(b), "/Roms/Sony PlayStation (PS)/Game.bin")

	s.AfterSleep()
	_, err = os.Stat(f.root.AutoResume())
	test.ExpectedSuccess(t, os.IsNotExist(err))
	test.Equate(t, len(f.cb.overclock), 1)
	test.DemandEquality(t, f.cb.overclock[0], player.CPUPerformance)
}

func TestNoGame(t *testing.T) {
	_, err := pausemenu.NewSession(player.NewContext(), paths.Root{SDCard: t.TempDir()})
	test.ExpectedFailure(t, err)
}
