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

package player

import (
	"image"

	"github.com/minplayer/minplayer/environment"
)

// Scaling is the method used to fit the game's frame to the screen.
type Scaling int

// List of valid Scaling values.
const (
	ScaleNative Scaling = iota
	ScaleAspect
	ScaleFullscreen
	ScaleCropped
)

func (s Scaling) String() string {
	switch s {
	case ScaleNative:
		return "native"
	case ScaleAspect:
		return "aspect"
	case ScaleFullscreen:
		return "fullscreen"
	case ScaleCropped:
		return "cropped"
	}
	return "unknown"
}

// Overclock is a CPU speed setting.
type Overclock int

// List of valid Overclock values. CPUIdle is used by the pause menu and is
// never chosen by the user.
const (
	CPUPowersave Overclock = iota
	CPUNormal
	CPUPerformance
	CPUIdle
)

// Flags are the scalar runtime flags of a session.
type Flags struct {
	Quit       bool
	ShowMenu   bool
	SimpleMode bool
	ShowDebug  bool

	// the save state slot in use. the pause menu swaps this temporarily when
	// it needs the path of a different slot
	StateSlot int

	Scaling   Scaling
	Sharpness int
	Overclock Overclock

	// suppress the menu button until it is released
	IgnoreMenu bool
}

// Device is the size of the display.
type Device struct {
	Width  int
	Height int
	Pitch  int
}

// Context is the aggregate of session state that components share.
//
// The Context owns none of the things it refers to. The game, the core and
// the screen are owned by the session and the platform, and are rebound with
// Bind() and SetScreen().
type Context struct {
	Game *Game
	Core *CoreInfo

	// the back buffer of the display
	Screen *image.RGBA

	Video       *environment.VideoState
	Renderer    *environment.Renderer
	PixelFormat *environment.PixelFormat
	Throttle    *environment.ThrottleInfo
	DiskControl *environment.DiskControl

	Flags  Flags
	Device Device

	callbacks Callbacks
}

// NewContext is the preferred method of initialisation for the Context type.
// The video, renderer, pixel format, throttle and disk control state are
// allocated with default values.
func NewContext() *Context {
	format := environment.Format0RGB1555
	return &Context{
		Video:       &environment.VideoState{},
		Renderer:    &environment.Renderer{},
		PixelFormat: &format,
		Throttle:    &environment.ThrottleInfo{},
		DiskControl: &environment.DiskControl{},
		Flags: Flags{
			Scaling:   ScaleAspect,
			Overclock: CPUNormal,
		},
	}
}

// Bind the game and core of a new session to the context. Session state that
// belongs to the previous core is reset.
func (ctx *Context) Bind(game *Game, core *CoreInfo) {
	if ctx == nil {
		return
	}
	ctx.Game = game
	ctx.Core = core
	if ctx.Video != nil {
		ctx.Video.Reset()
	}
	if ctx.Renderer != nil {
		*ctx.Renderer = environment.Renderer{}
	}
	if ctx.DiskControl != nil {
		*ctx.DiskControl = environment.DiskControl{}
	}
	ctx.Flags.Quit = false
	ctx.Flags.ShowMenu = false
}

// SetScreen sets the display's back buffer and the device dimensions.
func (ctx *Context) SetScreen(screen *image.RGBA) {
	if ctx == nil || screen == nil {
		return
	}
	ctx.Screen = screen
	ctx.Device = Device{
		Width:  screen.Rect.Dx(),
		Height: screen.Rect.Dy(),
		Pitch:  screen.Stride,
	}
}

// SetCallbacks installs the frontend services. A nil context or nil callbacks
// are ignored.
func (ctx *Context) SetCallbacks(cb Callbacks) {
	if ctx == nil || cb == nil {
		return
	}
	ctx.callbacks = cb
}

// Callbacks returns the frontend services. It returns nil if none have been
// installed.
func (ctx *Context) Callbacks() Callbacks {
	if ctx == nil {
		return nil
	}
	return ctx.callbacks
}

// IsQuitting returns true if the session should end.
func (ctx *Context) IsQuitting() bool {
	return ctx != nil && ctx.Flags.Quit
}

// IsMenuShown returns true if the pause menu has been requested.
func (ctx *Context) IsMenuShown() bool {
	return ctx != nil && ctx.Flags.ShowMenu
}

// SetQuit sets the quit flag.
func (ctx *Context) SetQuit(quit bool) {
	if ctx == nil {
		return
	}
	ctx.Flags.Quit = quit
}

// SetShowMenu sets the show menu flag.
func (ctx *Context) SetShowMenu(show bool) {
	if ctx == nil {
		return
	}
	ctx.Flags.ShowMenu = show
}
