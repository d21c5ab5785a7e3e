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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/minplayer/minplayer/alias"
	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/hwrender/gles"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/modalflag"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/platform"
	"github.com/minplayer/minplayer/prefs"
	"github.com/minplayer/minplayer/session"
	"github.com/minplayer/minplayer/statsview"
	"github.com/minplayer/minplayer/version"
)

const prefsFile = "player.prefs"

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// SDL and the GL context must be used from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "OPTIONS", "ALIAS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "OPTIONS":
		err = listOptions(md)

	case "ALIAS":
		err = resolveAlias(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// common flags of the modes that load a core
type sessionFlags struct {
	platform *string
	width    *int
	height   *int
	log      *bool
}

func addSessionFlags(md *modalflag.Modes) sessionFlags {
	md.AdditionalHelp("arguments: <core> <game>")
	return sessionFlags{
		platform: md.AddString("platform", "desktop", "platform name used for the layout of the SD card"),
		width:    md.AddInt("width", 640, "width of the display"),
		height:   md.AddInt("height", 480, "height of the display"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

func (f sessionFlags) echo() {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}
}

// open the SD card layout, the display and the session named by the
// remaining arguments
func openSession(md *modalflag.Modes, f sessionFlags, cfg session.Config) (*session.Session, *platform.SDL, error) {
	switch len(md.RemainingArgs()) {
	case 0, 1:
		return nil, nil, fmt.Errorf("core and game required for %s mode", md)
	case 2:
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	plt, err := platform.NewSDL(*f.width, *f.height, platform.DefaultSysfs)
	if err != nil {
		return nil, nil, err
	}

	pipeline := hwrender.NewPipeline(platform.NewGLContext(plt.Window()), gles.Load)
	pipeline.SetDisplaySize(*f.width, *f.height)

	cfg.Root = paths.NewRoot(*f.platform)
	cfg.Platform = plt
	cfg.Pipeline = pipeline

	s, err := session.Open(md.GetArg(0), md.GetArg(1), cfg)
	if err != nil {
		plt.Destroy()
		return nil, nil, err
	}

	return s, plt, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	f := addSessionFlags(md)
	noAudio := md.AddBool("noaudio", false, "do not play audio")
	wav := md.AddString("wav", "", "record audio to wav file. a directory creates a uniquely named file")
	prefsArgs := md.AddString("prefs", "", "preferences for this session. for example, \"player.scaling::native\"")
	memvizFile := md.AddString("memviz", "", "write a graph of the session to a DOT file on start. a directory creates a uniquely named file")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	f.echo()

	if *prefsArgs != "" {
		prefs.PushCommandLineStack(*prefsArgs)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return err
	}
	pref, err := session.NewPreferences(pth)
	if err != nil {
		return err
	}

	if *prefsArgs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	s, plt, err := openSession(md, f, session.Config{
		Preferences: pref,
		Audio:       !*noAudio,
		WavFile:     *wav,
	})
	if err != nil {
		return err
	}
	defer plt.Destroy()

	if *memvizFile != "" {
		if err := writeMemviz(paths.OutputFile(*memvizFile, "memviz", s.GameName(), ".dot"), s); err != nil {
			logger.Logf(logger.Allow, "minplayer", "%v", err)
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		s.Interrupt()
	}()

	s.Run()

	signal.Stop(intChan)

	return s.Close()
}

func writeMemviz(filename string, s *session.Session) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, s.Context())
	return nil
}

// listOptions loads the core and game and prints the core options with the
// values that apply to the game.
func listOptions(md *modalflag.Modes) error {
	md.NewMode()

	f := addSessionFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	f.echo()

	s, plt, err := openSession(md, f, session.Config{})
	if err != nil {
		return err
	}
	defer plt.Destroy()

	ctx := s.Context()
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s", ctx.Core.Name, ctx.Core.Version)))
	err = options.Write(os.Stdout, s.Options())

	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

// resolveAlias prints the name the launcher shows for each game.
func resolveAlias(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <game>...")

	platformName := md.AddString("platform", "desktop", "platform name used for the layout of the SD card")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("game required for %s mode", md)
	}

	root := paths.NewRoot(*platformName)
	for _, g := range md.RemainingArgs() {
		fmt.Printf("%s: %s\n", alias.EmuName(g), alias.Resolve(root, g))
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(titleStyle.Render(version.ApplicationName), v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
