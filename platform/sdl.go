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

package platform

import (
	"image"
	"runtime"
	"time"
	"unsafe"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL implements the Platform interface with an SDL2 window. Power
// management goes through the embedded Sysfs.
type SDL struct {
	Sysfs

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	screen   *image.RGBA

	pad         Pad
	controllers []*sdl.GameController

	// use ticker to synchronise with the core's frame rate
	syncTicker *time.Ticker

	sleepEnabled bool
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// window is the size of the device's display.
func NewSDL(width, height int, sysfs Sysfs) (*SDL, error) {
	// the SDL package calls LockOSThread() but we call it here too. the GL
	// context of the hardware render pipeline must stay on this thread
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &SDL{
		Sysfs:  sysfs,
		screen: image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	plt.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	plt.renderer, err = sdl.CreateRenderer(plt.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	plt.texture, err = plt.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		pad := sdl.GameControllerOpen(i)
		if pad != nil && pad.Attached() {
			logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
			plt.controllers = append(plt.controllers, pad)
		}
	}
	if len(plt.controllers) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return plt, nil
}

// Window returns the SDL window. Used to create a GLContext.
func (plt *SDL) Window() *sdl.Window {
	return plt.window
}

// Destroy cleans up the resources.
func (plt *SDL) Destroy() {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}
	for _, c := range plt.controllers {
		c.Close()
	}
	plt.controllers = nil
	if plt.texture != nil {
		_ = plt.texture.Destroy()
		plt.texture = nil
	}
	if plt.renderer != nil {
		_ = plt.renderer.Destroy()
		plt.renderer = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}

// SetFrameRate sets the rate at which Sync() returns. A rate of zero or less
// means Sync() returns immediately.
func (plt *SDL) SetFrameRate(fps float64) {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}
	if fps <= 0 {
		return
	}
	plt.syncTicker = time.NewTicker(time.Duration(float64(time.Second) / fps))
}

// Sync implements the Platform interface.
func (plt *SDL) Sync() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}
}

// Poll implements the Platform interface.
func (plt *SDL) Poll() bool {
	plt.pad.Frame()

	running := true
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			running = false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if b, ok := keyboardButton(ev.Keysym.Scancode); ok {
				plt.pad.Set(b, ev.Type == sdl.KEYDOWN)
			}

		case *sdl.ControllerButtonEvent:
			if b, ok := controllerButton(int(ev.Button)); ok {
				plt.pad.Set(b, ev.State == 1)
			}

		case *sdl.ControllerAxisEvent:
			switch int(ev.Axis) {
			case int(sdl.CONTROLLER_AXIS_TRIGGERLEFT):
				plt.pad.Set(ButtonL2, ev.Value > triggerThreshold)
			case int(sdl.CONTROLLER_AXIS_TRIGGERRIGHT):
				plt.pad.Set(ButtonR2, ev.Value > triggerThreshold)
			}

		case *sdl.ControllerDeviceEvent:
			if ev.Type == sdl.CONTROLLERDEVICEADDED {
				pad := sdl.GameControllerOpen(int(ev.Which))
				if pad != nil && pad.Attached() {
					logger.Logf(logger.Allow, "sdl", "gamepad added: %s", pad.Name())
					plt.controllers = append(plt.controllers, pad)
				}
			}
		}
	}

	return running
}

const triggerThreshold = 16384

func keyboardButton(code sdl.Scancode) (Button, bool) {
	switch code {
	case sdl.SCANCODE_UP:
		return ButtonUp, true
	case sdl.SCANCODE_DOWN:
		return ButtonDown, true
	case sdl.SCANCODE_LEFT:
		return ButtonLeft, true
	case sdl.SCANCODE_RIGHT:
		return ButtonRight, true
	case sdl.SCANCODE_SPACE:
		return ButtonA, true
	case sdl.SCANCODE_LCTRL:
		return ButtonB, true
	case sdl.SCANCODE_LSHIFT:
		return ButtonX, true
	case sdl.SCANCODE_LALT:
		return ButtonY, true
	case sdl.SCANCODE_E:
		return ButtonL1, true
	case sdl.SCANCODE_T:
		return ButtonR1, true
	case sdl.SCANCODE_TAB:
		return ButtonL2, true
	case sdl.SCANCODE_BACKSPACE:
		return ButtonR2, true
	case sdl.SCANCODE_RETURN:
		return ButtonStart, true
	case sdl.SCANCODE_RCTRL:
		return ButtonSelect, true
	case sdl.SCANCODE_ESCAPE:
		return ButtonMenu, true
	case sdl.SCANCODE_POWER:
		return ButtonPower, true
	}
	return 0, false
}

func controllerButton(button int) (Button, bool) {
	switch button {
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return ButtonUp, true
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return ButtonDown, true
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return ButtonLeft, true
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return ButtonRight, true

	// the east face button is A on the handhelds the player targets
	case int(sdl.CONTROLLER_BUTTON_B):
		return ButtonA, true
	case int(sdl.CONTROLLER_BUTTON_A):
		return ButtonB, true
	case int(sdl.CONTROLLER_BUTTON_Y):
		return ButtonX, true
	case int(sdl.CONTROLLER_BUTTON_X):
		return ButtonY, true

	case int(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):
		return ButtonL1, true
	case int(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER):
		return ButtonR1, true
	case int(sdl.CONTROLLER_BUTTON_START):
		return ButtonStart, true
	case int(sdl.CONTROLLER_BUTTON_BACK):
		return ButtonSelect, true
	case int(sdl.CONTROLLER_BUTTON_GUIDE):
		return ButtonMenu, true
	}
	return 0, false
}

// JustPressed implements the Platform interface.
func (plt *SDL) JustPressed(b Button) bool {
	return plt.pad.JustPressed(b)
}

// JustReleased implements the Platform interface.
func (plt *SDL) JustReleased(b Button) bool {
	return plt.pad.JustReleased(b)
}

// IsPressed implements the Platform interface.
func (plt *SDL) IsPressed(b Button) bool {
	return plt.pad.IsPressed(b)
}

// ResetInput implements the Platform interface.
func (plt *SDL) ResetInput() {
	plt.pad.Reset()
}

// Screen implements the Platform interface.
func (plt *SDL) Screen() *image.RGBA {
	return plt.screen
}

// Present implements the Platform interface.
func (plt *SDL) Present(screen *image.RGBA) {
	if screen == nil || len(screen.Pix) == 0 {
		return
	}

	err := plt.texture.Update(nil, unsafe.Pointer(&screen.Pix[0]), screen.Stride)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "present: %v", err)
		return
	}
	_ = plt.renderer.Clear()
	_ = plt.renderer.Copy(plt.texture, nil, nil)
	plt.renderer.Present()
}

// EnableSleep implements the Platform interface.
func (plt *SDL) EnableSleep(enable bool) {
	if plt.sleepEnabled == enable {
		return
	}
	plt.sleepEnabled = enable
	if enable {
		sdl.EnableScreenSaver()
	} else {
		sdl.DisableScreenSaver()
	}
}

// SetCPUSpeed implements the Platform interface.
func (plt *SDL) SetCPUSpeed(speed player.Overclock) {
	plt.Sysfs.SetCPUSpeed(speed)
}

// Sleep implements the Platform interface. The window is hidden until the
// power or menu button is pressed.
func (plt *SDL) Sleep() {
	logger.Log(logger.Allow, "sdl", "sleeping")
	plt.window.Hide()
	plt.pad.Reset()
	for plt.Poll() {
		if plt.pad.JustPressed(ButtonPower) || plt.pad.JustPressed(ButtonMenu) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	plt.window.Show()
	plt.pad.Reset()
	logger.Log(logger.Allow, "sdl", "awake")
}
