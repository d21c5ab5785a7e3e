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
	"os"
	"path/filepath"
	"strings"

	"github.com/minplayer/minplayer/alias"
	"github.com/minplayer/minplayer/archivefs"
	"github.com/minplayer/minplayer/audio"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/libretro"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/platform"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/wavwriter"
)

// Config is the part of a session provided by the frontend.
type Config struct {
	Root     paths.Root
	Platform platform.Platform

	// the render pipeline is only used if the core asks for it. it may be nil
	Pipeline *hwrender.Pipeline

	// may be nil
	Preferences *Preferences

	// receivers of the core's audio in addition to those created by Open()
	Mixers audio.Mixers

	// play the core's audio through SDL
	Audio bool

	// write the core's audio to a WAV file when the session closes
	WavFile string

	// where archives are extracted. the system temporary directory if empty
	TmpRoot string
}

// coreName returns the name of the core from the file name of its shared
// object. For example, "gambatte_libretro.so" is "gambatte".
func coreName(corePath string) string {
	n := filepath.Base(corePath)
	n = strings.TrimSuffix(n, filepath.Ext(n))
	return strings.TrimSuffix(n, "_libretro")
}

// Open loads the core and the game. The returned Session is ready to Run().
func Open(corePath string, romPath string, cfg Config) (*Session, error) {
	if cfg.Platform == nil {
		return nil, curated.Errorf("session: %v", "no platform")
	}

	lib, err := libretro.Load(corePath)
	if err != nil {
		return nil, err
	}

	si := lib.SystemInfo()
	tag := alias.EmuName(romPath)

	info := &player.CoreInfo{
		Name:         si.Name,
		Version:      si.Version,
		Tag:          tag,
		Extensions:   si.Extensions,
		NeedFullPath: si.NeedFullPath,
		StatesDir:    cfg.Root.States(tag, coreName(corePath)),
		SavesDir:     cfg.Root.Saves(tag),
		BiosDir:      paths.BiosDir(cfg.Root.Bios(), tag),
		Reset:        lib.Reset,
	}
	info.ConfigDir = info.StatesDir

	logger.Logf(logger.Allow, "session", "core %s %s for %s", info.Name, info.Version, tag)

	for _, d := range []string{info.StatesDir, info.SavesDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			_ = lib.Close()
			return nil, curated.Errorf("session: %v", err)
		}
	}

	game, err := archivefs.Open(romPath, archivefs.Options{
		Extensions:   si.Extensions,
		NeedFullPath: si.NeedFullPath,
		TmpRoot:      cfg.TmpRoot,
	})
	if err != nil {
		_ = lib.Close()
		return nil, err
	}

	ctx := player.NewContext()
	ctx.Bind(game, info)
	ctx.SetScreen(cfg.Platform.Screen())
	if _, err := os.Stat(cfg.Root.SimpleMode()); err == nil {
		ctx.Flags.SimpleMode = true
	}
	if cfg.Preferences != nil {
		cfg.Preferences.Apply(ctx)
	}

	conf, state, err := options.LoadConfig(info.ConfigDir, game.DisplayName(), "")
	if err != nil {
		logger.Logf(logger.Allow, "session", "%v", err)
	}
	logger.Logf(logger.Allow, "session", "config: %s", state)

	s, err := newSession(ctx, lib, options.NewOptionList(conf), cfg)
	if err != nil {
		_ = game.Close()
		_ = lib.Close()
		return nil, err
	}

	var hw libretro.HWPipeline
	if cfg.Pipeline != nil {
		hw = cfg.Pipeline
	}
	bridge := libretro.NewBridge(frontend{s: s}, hw)
	if err := bridge.Attach(lib); err != nil {
		_ = game.Close()
		_ = lib.Close()
		return nil, err
	}

	lib.Init()

	if err := lib.LoadGame(game, si.NeedFullPath); err != nil {
		lib.Deinit()
		bridge.Detach()
		_ = game.Close()
		_ = lib.Close()
		return nil, err
	}

	info.AV.Set(lib.SystemAVInfo())

	s.release = func() {
		if s.pipeline != nil {
			s.pipeline.Shutdown()
		}
		lib.UnloadGame()
		lib.Deinit()
		bridge.Detach()
		if err := lib.Close(); err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		}
		if err := s.ctx.Game.Close(); err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		}
	}

	s.initHWRender()

	lib.SetControllerPortDevice(0, libretro.DeviceJoypad)
	s.sramRead()
	s.openAudio(cfg)

	if fr, ok := cfg.Platform.(interface{ SetFrameRate(float64) }); ok {
		fr.SetFrameRate(info.AV.FPS)
	}

	s.SetOverclock(ctx.Flags.Overclock)
	s.resume()
	s.menu.Session().InitState()

	return s, nil
}

// initHWRender creates the render pipeline if the core asked for it while it
// was loading.
func (s *Session) initHWRender() {
	if s.hwRequest.ContextType == environment.HWContextNone {
		return
	}
	g := s.ctx.Core.AV.Geometry
	if s.pipeline == nil || !s.pipeline.Init(&s.hwRequest, g.MaxWidth, g.MaxHeight) {
		s.notify(notifications.NotifyHWRenderDisabled, s.hwRequest.ContextType.String())
	}
}

func (s *Session) openAudio(cfg Config) {
	av := s.ctx.Core.AV

	if cfg.Audio {
		aud, err := audio.NewAudio(av.SampleRate, av.FPS)
		if err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		} else {
			s.mixer = append(s.mixer, aud)
		}
	}

	if cfg.WavFile != "" {
		ww, err := wavwriter.New(paths.OutputFile(cfg.WavFile, "audio", s.GameName(), ".wav"), av.SampleRate)
		if err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		} else {
			s.mixer = append(s.mixer, ww)
		}
	}
}

// Close flushes battery RAM and releases the core and the game.
func (s *Session) Close() error {
	s.SRAMWrite()
	s.RTCWrite()
	err := s.mixer.EndMixing()
	if s.release != nil {
		s.release()
		s.release = nil
	}
	return err
}
