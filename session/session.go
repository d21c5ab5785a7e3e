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

package session

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/minplayer/minplayer/archivefs"
	"github.com/minplayer/minplayer/audio"
	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/pausemenu"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/persistence"
	"github.com/minplayer/minplayer/platform"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/scaler"
	"golang.org/x/image/draw"
)

// Core is the part of a loaded core that a Session drives.
type Core interface {
	persistence.Memory
	persistence.Serializer
	Run()
	Reset()
}

// Session is a game running in a core.
type Session struct {
	ctx  *player.Context
	root paths.Root
	plt  platform.Platform
	core Core

	dispatcher  *environment.Dispatcher
	controllers environment.Controllers
	hwRequest   environment.HWRenderRequest
	audioStatus environment.AudioBufferStatusFunc

	// nil if the platform has no GL support
	pipeline *hwrender.Pipeline

	options *options.OptionList
	prefs   *Preferences
	mixer   audio.Mixers
	menu    *pausemenu.Menu

	// most recent software frame as sent by the core and after rotation
	raw   *image.RGBA
	frame *image.RGBA

	// area of the screen the frame is drawn into. set by SelectScaler()
	dst image.Rectangle

	// size of the most recent hardware rendered frame
	hwWidth  uint32
	hwHeight uint32

	// an audio error has been logged
	audioFailed bool

	// joypad state reported to the core. one bit per joypad button ID
	buttons uint16

	// input has been polled since the start of the frame
	polled bool

	// frames run since the last sync while fast-forwarding
	ffFrames int

	// receives notices raised by the session and the core. it may be nil
	Notices notifications.Notify

	// set by Interrupt()
	interrupted atomic.Bool

	// set by Open()
	release func()
}

// newSession creates a session around a core that has not yet been
// initialised. The context must be bound to a game and core.
func newSession(ctx *player.Context, core Core, list *options.OptionList, cfg Config) (*Session, error) {
	s := &Session{
		ctx:      ctx,
		root:     cfg.Root,
		plt:      cfg.Platform,
		core:     core,
		pipeline: cfg.Pipeline,
		options:  list,
		prefs:    cfg.Preferences,
		mixer:    cfg.Mixers,
	}

	if ctx.Core != nil && ctx.Core.Reset == nil {
		ctx.Core.Reset = core.Reset
	}

	state := environment.State{
		Video:             ctx.Video,
		AV:                &ctx.Core.AV,
		Renderer:          ctx.Renderer,
		PixelFormat:       ctx.PixelFormat,
		Throttle:          ctx.Throttle,
		Controllers:       &s.controllers,
		DiskControl:       ctx.DiskControl,
		AudioBufferStatus: &s.audioStatus,
		HWRender:          &s.hwRequest,
		Quit:              &ctx.Flags.Quit,
		SystemDirectory:   ctx.Core.BiosDir,
		SaveDirectory:     ctx.Core.SavesDir,
		Reinit:            s.reinit,
		Variables:         list,
		Notify:            s,
	}
	if s.pipeline != nil {
		state.Pipeline = s.pipeline
	}
	s.dispatcher = environment.NewDispatcher(state)

	var rnd pausemenu.Renderer
	if s.pipeline != nil {
		rnd = s.pipeline
	}

	var err error
	s.menu, err = pausemenu.NewMenu(ctx, s.plt, rnd, s.root)
	if err != nil {
		return nil, err
	}
	s.menu.Notify = s

	ctx.SetCallbacks(s)

	return s, nil
}

// Context returns the context of the session.
func (s *Session) Context() *player.Context {
	return s.ctx
}

// Options returns the core options of the session.
func (s *Session) Options() *options.OptionList {
	return s.options
}

// Notify implements the notifications.Notify interface. Notices are logged
// and passed on to the Notices field.
func (s *Session) Notify(notice notifications.Notice, detail string) error {
	logger.Logf(logger.Allow, "session", "%s %s", notice, detail)
	if s.Notices == nil {
		return nil
	}
	return s.Notices.Notify(notice, detail)
}

// notify is Notify() for notices raised by the session itself. Errors are
// logged.
func (s *Session) notify(notice notifications.Notice, detail string) {
	if err := s.Notify(notice, detail); err != nil {
		logger.Logf(logger.Allow, "session", "%v", err)
	}
}

func (s *Session) hwEnabled() bool {
	return s.pipeline.IsEnabled()
}

// reinit is called by the dispatcher when the core changes its timing.
func (s *Session) reinit(oldRate, newRate, fps float64) {
	s.mixer.Reinit(oldRate, newRate, fps)
	if fr, ok := s.plt.(interface{ SetFrameRate(float64) }); ok {
		fr.SetFrameRate(fps)
	}
}

// GameName is the name used for battery, state and recording files.
func (s *Session) GameName() string {
	if s.ctx.Game == nil {
		return ""
	}
	return s.ctx.Game.Name
}

// SRAMWrite implements the player.Callbacks interface.
func (s *Session) SRAMWrite() {
	res := persistence.WriteSRAM(paths.SRAM(s.ctx.Core.SavesDir, s.GameName()), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "sram write: %s", res)
	}
}

// RTCWrite implements the player.Callbacks interface.
func (s *Session) RTCWrite() {
	res := persistence.WriteRTC(paths.RTC(s.ctx.Core.SavesDir, s.GameName()), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "rtc write: %s", res)
	}
}

func (s *Session) sramRead() {
	res := persistence.ReadSRAM(paths.SRAM(s.ctx.Core.SavesDir, s.GameName()), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "sram read: %s", res)
	}
	res = persistence.ReadRTC(paths.RTC(s.ctx.Core.SavesDir, s.GameName()), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "rtc read: %s", res)
	}
}

// StatePath implements the player.Callbacks interface.
func (s *Session) StatePath() string {
	return paths.State(s.ctx.Core.StatesDir, s.GameName(), s.ctx.Flags.StateSlot)
}

// StateRead implements the player.Callbacks interface.
func (s *Session) StateRead() {
	res := persistence.ReadState(s.StatePath(), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "state read (slot %d): %s", s.ctx.Flags.StateSlot, res)
	}
}

// StateWrite implements the player.Callbacks interface.
func (s *Session) StateWrite() {
	if err := os.MkdirAll(s.ctx.Core.StatesDir, 0o755); err != nil {
		logger.Logf(logger.Allow, "session", "state write: %v", err)
		return
	}
	res := persistence.WriteState(s.StatePath(), s.core)
	if res.Failed() {
		logger.Logf(logger.Allow, "session", "state write (slot %d): %s", s.ctx.Flags.StateSlot, res)
	}
}

// StateAutosave implements the player.Callbacks interface.
func (s *Session) StateAutosave() {
	last := s.ctx.Flags.StateSlot
	s.ctx.Flags.StateSlot = paths.AutoResumeSlot
	s.StateWrite()
	s.ctx.Flags.StateSlot = last
}

// resume loads the slot requested by the launcher. The request is removed
// so that it happens only once.
func (s *Session) resume() {
	data, err := os.ReadFile(s.root.ResumeSlot())
	if err != nil {
		return
	}
	_ = os.Remove(s.root.ResumeSlot())

	slot, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Logf(logger.Allow, "session", "resume slot: %v", err)
		return
	}

	last := s.ctx.Flags.StateSlot
	s.ctx.Flags.StateSlot = slot
	s.StateRead()
	s.ctx.Flags.StateSlot = last
}

// ChangeDisc implements the player.Callbacks interface. The disc image
// replaces the first image of the core's disk control interface.
func (s *Session) ChangeDisc(path string) {
	game := s.ctx.Game
	if game == nil || path == game.Path {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	dc := s.ctx.DiskControl
	if !dc.Registered() || dc.ReplaceImageIndex == nil {
		logger.Log(logger.Allow, "session", "core does not support changing disc")
		return
	}

	disc, err := archivefs.Open(path, archivefs.Options{
		Extensions:   s.ctx.Core.Extensions,
		NeedFullPath: s.ctx.Core.NeedFullPath,
	})
	if err != nil {
		logger.Logf(logger.Allow, "session", "change disc: %v", err)
		return
	}

	if err := game.Close(); err != nil {
		logger.Logf(logger.Allow, "session", "change disc: %v", err)
	}
	if disc.M3UPath == "" {
		disc.M3UPath = game.M3UPath
		disc.Name = game.Name
	}
	s.ctx.Game = disc

	if !dc.ReplaceImageIndex(0, disc.LoadPath()) {
		logger.Logf(logger.Allow, "session", "core refused disc %s", path)
	}

	// the launcher reads this to update its list of recent games
	if err := os.MkdirAll(filepath.Dir(s.root.ChangeDisc()), 0o755); err != nil {
		logger.Logf(logger.Allow, "session", "change disc: %v", err)
		return
	}
	if err := os.WriteFile(s.root.ChangeDisc(), []byte(path), 0o644); err != nil {
		logger.Logf(logger.Allow, "session", "change disc: %v", err)
	}
}

// aspect returns the aspect ratio of the frame after rotation.
func (s *Session) aspect() float64 {
	a := s.ctx.Core.AspectRatio()
	if a > 0 && s.ctx.Video.Rotation%2 == 1 {
		return 1 / a
	}
	return a
}

// SelectScaler implements the player.Callbacks interface.
func (s *Session) SelectScaler(srcWidth, srcHeight, srcPitch int) {
	r := s.ctx.Renderer
	r.SrcWidth = srcWidth
	r.SrcHeight = srcHeight
	r.SrcPitch = srcPitch

	screen := s.plt.Screen()
	if screen == nil {
		return
	}

	w, h := srcWidth, srcHeight
	if s.ctx.Video.Rotation%2 == 1 {
		w, h = h, w
	}
	s.dst = scaler.Rect(w, h, screen.Bounds(), s.aspect(), s.ctx.Flags.Scaling)
	r.DstPitch = screen.Stride

	logger.Logf(logger.Allow, "session", "%s scaling of %dx%d to %v", s.ctx.Flags.Scaling, w, h, s.dst)
}

// VideoRefresh implements the player.Callbacks interface. A nil data slice
// shows the most recent frame again.
func (s *Session) VideoRefresh(data []byte, width, height, pitch int) {
	if data == nil && s.hwEnabled() {
		s.pipeline.Present(s.hwWidth, s.hwHeight, s.ctx.Video.Rotation)
		return
	}
	if data != nil {
		r := s.ctx.Renderer
		if r.DstPitch == 0 || r.SrcWidth != width || r.SrcHeight != height || r.SrcPitch != pitch {
			s.SelectScaler(width, height, pitch)
		}
		s.raw = convert(s.raw, data, width, height, pitch, *s.ctx.PixelFormat)
		s.frame = rotate(s.raw, s.ctx.Video.Rotation)
	}
	s.present()
}

// present draws the most recent frame to the screen.
func (s *Session) present() {
	screen := s.plt.Screen()
	if screen == nil {
		return
	}
	draw.Draw(screen, screen.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if s.frame != nil {
		k := scaler.Kernel(s.ctx.Flags.Scaling, scaler.Sharpness(s.ctx.Flags.Sharpness))
		k.Scale(screen, s.dst, s.frame, s.frame.Bounds(), draw.Src, nil)
	}
	s.plt.Present(screen)
}

// SetOverclock implements the player.Callbacks interface.
func (s *Session) SetOverclock(level player.Overclock) {
	s.plt.SetCPUSpeed(level)
}

// HDMI implements the player.Callbacks interface.
func (s *Session) HDMI() bool {
	return s.plt.HDMI()
}
