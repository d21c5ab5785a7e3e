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

package libretro

import (
	"testing"
	"unsafe"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/options"
	"github.com/minplayer/minplayer/test"
)

type session struct {
	video       environment.VideoState
	av          environment.AVState
	renderer    environment.Renderer
	format      environment.PixelFormat
	throttle    environment.ThrottleInfo
	controllers environment.Controllers
	disk        environment.DiskControl
	status      environment.AudioBufferStatusFunc
	hw          environment.HWRenderRequest
	quit        bool
}

type pipeline struct{}

func (pipeline) Supported(t environment.HWContextType, major, minor uint32) bool {
	return t == environment.HWContextOpenGLES2
}

// frontend dispatches requests to a real dispatcher and records everything
// else
type frontend struct {
	dispatcher *environment.Dispatcher

	frames   int
	hwFrames int
	dupes    int
	samples  []int16
	buttons  map[uint]bool
}

func (f *frontend) Environment(req environment.Request) environment.Result {
	return f.dispatcher.Dispatch(req)
}

func (f *frontend) VideoRefresh(frame []byte, width, height, pitch uint) {
	if frame == nil {
		f.dupes++
		return
	}
	f.frames++
}

func (f *frontend) HWVideoRefresh(width, height uint) {
	f.hwFrames++
}

func (f *frontend) AudioSampleBatch(samples []int16) {
	f.samples = append(f.samples, samples...)
}

func (f *frontend) InputPoll() {}

func (f *frontend) InputState(port, device, index, id uint) int16 {
	if f.buttons[id] {
		return 1
	}
	return 0
}

func newBridge(s *session) (*Bridge, *frontend) {
	f := &frontend{
		buttons: make(map[uint]bool),
	}
	f.dispatcher = environment.NewDispatcher(environment.State{
		Video:             &s.video,
		AV:                &s.av,
		Renderer:          &s.renderer,
		PixelFormat:       &s.format,
		Throttle:          &s.throttle,
		Controllers:       &s.controllers,
		DiskControl:       &s.disk,
		AudioBufferStatus: &s.status,
		HWRender:          &s.hw,
		Quit:              &s.quit,
		SystemDirectory:   "/mnt/SDCARD/Bios/PS",
		SaveDirectory:     "/mnt/SDCARD/Saves/PS",
		Pipeline:          pipeline{},
		Variables:         options.NewOptionList(nil),
	})
	return NewBridge(f, nil), f
}

func cstr(s string) *byte {
	return &buffer(s)[0]
}

func TestGoString(t *testing.T) {
	test.Equate(t, goString(nil), "")
	test.Equate(t, goString(cstr("")), "")
	test.Equate(t, goString(cstr("pcsx_rearmed")), "pcsx_rearmed")

	c := make(cstrings)
	p := c.get("abc")
	test.ExpectedSuccess(t, p == c.get("abc"))
	test.Equate(t, goString(p), "abc")
}

func TestRotationAndPixelFormat(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	rot := uint32(3)
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetRotation), unsafe.Pointer(&rot)))
	test.Equate(t, s.video.Rotation, 3)

	rot = 4
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetRotation), unsafe.Pointer(&rot)))
	test.Equate(t, s.video.Rotation, 3)

	// no data is a failure for every request that needs data
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetRotation), nil))
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetPixelFormat), nil))
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetGeometry), nil))
	test.ExpectedFailure(t, b.environment(uint32(environment.IDGetVariable), nil))

	pf := uint32(environment.FormatRGB565)
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetPixelFormat), unsafe.Pointer(&pf)))
	test.DemandEquality(t, s.format, environment.FormatRGB565)

	pf = 3
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetPixelFormat), unsafe.Pointer(&pf)))
	test.DemandEquality(t, s.format, environment.FormatRGB565)
}

func TestAnswers(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	var dir *byte
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetSystemDirectory), unsafe.Pointer(&dir)))
	test.Equate(t, goString(dir), "/mnt/SDCARD/Bios/PS")
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetSaveDirectory), unsafe.Pointer(&dir)))
	test.Equate(t, goString(dir), "/mnt/SDCARD/Saves/PS")

	var dupe bool
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetCanDupe), unsafe.Pointer(&dupe)))
	test.ExpectedSuccess(t, dupe)

	lang := uint32(99)
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetLanguage), unsafe.Pointer(&lang)))
	test.Equate(t, lang, 0)

	var av int32
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetAudioVideoEnable), unsafe.Pointer(&av)))
	test.Equate(t, int(av), 3)

	s.throttle.FastForward = true
	s.throttle.MaxFFSpeed = 3
	var ts throttleState
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetThrottleState), unsafe.Pointer(&ts)))
	test.Equate(t, ts.mode, uint32(environment.ThrottleFastForward))
	test.Equate(t, ts.rate, float32(4))

	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetInputBitmasks), nil))

	// the core's log interface is not supported
	test.ExpectedFailure(t, b.environment(uint32(environment.IDGetLogInterface), nil))

	// unknown requests are not handled
	test.ExpectedFailure(t, b.environment(12345, nil))

	test.ExpectedSuccess(t, b.environment(uint32(environment.IDShutdown), nil))
	test.ExpectedSuccess(t, s.quit)
}

func TestGeometry(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	av := systemAVInfo{
		geometry: gameGeometry{
			baseWidth:  320,
			baseHeight: 240,
			maxWidth:   640,
			maxHeight:  480,
		},
		timing: systemTiming{
			fps:        59.94,
			sampleRate: 44100,
		},
	}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetSystemAVInfo), unsafe.Pointer(&av)))
	test.Equate(t, s.av.FPS, 59.94)
	test.Equate(t, s.av.SampleRate, 44100.0)
	test.Equate(t, s.av.AspectRatio, 320.0/240.0)
	test.ExpectedSuccess(t, s.video.AVInfoChanged)

	g := gameGeometry{
		baseWidth:   256,
		baseHeight:  224,
		aspectRatio: 4.0 / 3.0,
	}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetGeometry), unsafe.Pointer(&g)))
	test.Equate(t, s.av.Geometry.BaseWidth, uint32(256))
	test.ExpectedSuccess(t, s.video.GeometryChanged)
}

func TestVariables(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	vars := []variable{
		{key: cstr("pcsx_rearmed_frameskip"), value: cstr("Frameskip; 0|1|2")},
		{key: cstr("pcsx_rearmed_dithering"), value: cstr("Dithering; enabled|disabled")},
		{},
	}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetVariables), unsafe.Pointer(&vars[0])))

	v := variable{key: cstr("pcsx_rearmed_dithering")}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetVariable), unsafe.Pointer(&v)))
	test.Equate(t, goString(v.value), "enabled")

	v = variable{key: cstr("no_such_option"), value: cstr("stale")}
	test.ExpectedFailure(t, b.environment(uint32(environment.IDGetVariable), unsafe.Pointer(&v)))
	test.ExpectedSuccess(t, v.value == nil)

	var update bool
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetVariableUpdate), unsafe.Pointer(&update)))

	var version uint32 = 99
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDGetCoreOptionsVersion), unsafe.Pointer(&version)))
	test.Equate(t, version, 0)
}

func TestControllerInfo(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	types := []controllerDescription{
		{desc: cstr("Standard"), id: 1},
		{desc: cstr("dualshock"), id: 261},
	}
	ports := []controllerInfo{
		{types: &types[0], numTypes: uint32(len(types))},
		{},
	}

	// the request is consumed but always reported as a failure
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetControllerInfo), unsafe.Pointer(&ports[0])))
	test.ExpectedSuccess(t, s.controllers.HasCustom)
}

func TestInputDescriptors(t *testing.T) {
	var s session
	b, _ := newBridge(&s)

	descs := []inputDescriptor{
		{device: DeviceJoypad, id: JoypadA, description: cstr("Circle")},
		{device: DeviceJoypad, id: JoypadB, description: cstr("Cross")},
		{},
	}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetInputDescriptors), unsafe.Pointer(&descs[0])))
	test.DemandEquality(t, len(s.controllers.Descriptors), 2)
	test.Equate(t, s.controllers.Descriptors[1].Description, "Cross")
}

func TestHWRender(t *testing.T) {
	var s session
	b, _ := newBridge(&s)
	b.decoder.framebufferCallback = 0x1000
	b.decoder.procAddressCallback = 0x2000

	cb := hwRenderCallback{
		contextType:  uint32(environment.HWContextOpenGLES2),
		versionMajor: 2,
		depth:        true,
	}
	test.ExpectedSuccess(t, b.environment(uint32(environment.IDSetHWRender), unsafe.Pointer(&cb)))
	test.DemandEquality(t, cb.getCurrentFramebuffer, uintptr(0x1000))
	test.DemandEquality(t, cb.getProcAddress, uintptr(0x2000))
	test.DemandEquality(t, s.hw.ContextType, environment.HWContextOpenGLES2)
	test.ExpectedSuccess(t, s.hw.Depth)
	test.ExpectedSuccess(t, s.hw.ContextReset == nil)

	// unsupported requests leave the core's structure untouched
	cb = hwRenderCallback{
		contextType: uint32(environment.HWContextVulkan),
	}
	test.ExpectedFailure(t, b.environment(uint32(environment.IDSetHWRender), unsafe.Pointer(&cb)))
	test.DemandEquality(t, cb.getCurrentFramebuffer, uintptr(0))
}

func TestRefreshAndInput(t *testing.T) {
	var s session
	b, f := newBridge(&s)

	b.audioSample(1, -1)
	b.audioSample(2, -2)
	test.Equate(t, len(f.samples), 0)

	frame := make([]byte, 16)
	b.videoRefresh(uintptr(unsafe.Pointer(&frame[0])), 2, 2, 8)
	test.Equate(t, f.frames, 1)
	test.Equate(t, len(f.samples), 4)

	b.videoRefresh(0, 2, 2, 8)
	test.Equate(t, f.dupes, 1)

	b.videoRefresh(hwFrameBufferValid, 320, 240, 0)
	test.Equate(t, f.hwFrames, 1)

	f.buttons[JoypadA] = true
	f.buttons[JoypadStart] = true
	test.Equate(t, int(b.inputState(0, DeviceJoypad, 0, JoypadA)), 1)
	test.Equate(t, int(b.inputState(0, DeviceJoypad, 0, JoypadB)), 0)
	test.Equate(t, int(b.inputState(0, DeviceJoypad, 0, JoypadMask)), 1<<JoypadA|1<<JoypadStart)
}
