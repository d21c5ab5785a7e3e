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
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/environment"
)

// Frontend receives the calls a core makes. All calls happen on the thread
// that is running the core.
type Frontend interface {
	// Environment resolves a decoded environment request
	Environment(req environment.Request) environment.Result

	// VideoRefresh is called with a software rendered frame. A nil frame
	// means the previous frame should be shown again
	VideoRefresh(frame []byte, width, height, pitch uint)

	// HWVideoRefresh is called when the core has rendered into the hardware
	// framebuffer
	HWVideoRefresh(width, height uint)

	// AudioSampleBatch is called with interleaved stereo samples
	AudioSampleBatch(samples []int16)

	InputPoll()
	InputState(port, device, index, id uint) int16
}

// HWPipeline is the part of the hardware render pipeline that a core can
// call.
type HWPipeline interface {
	CurrentFramebuffer() uintptr
	ProcAddress(name string) unsafe.Pointer
}

// Bridge connects a Core to a Frontend.
type Bridge struct {
	frontend Frontend
	pipeline HWPipeline
	decoder  *decoder
	core     *Core

	// single samples are collected and passed on in batches
	samples []int16
}

// the C callbacks are created once per process. the number of callbacks
// that purego can create is limited and they are never released
var (
	callbacksOnce sync.Once
	callbacks     struct {
		environment      uintptr
		videoRefresh     uintptr
		audioSample      uintptr
		audioSampleBatch uintptr
		inputPoll        uintptr
		inputState       uintptr
		framebuffer      uintptr
		procAddress      uintptr
	}

	// the bridge currently attached to a core
	active *Bridge
)

func createCallbacks() {
	callbacks.environment = purego.NewCallback(func(cmd uint32, data unsafe.Pointer) bool {
		if active == nil {
			return false
		}
		return active.environment(cmd, data)
	})
	// the data pointer may be the hwFrameBufferValid marker so it is not
	// received as a pointer type
	callbacks.videoRefresh = purego.NewCallback(func(data uintptr, width, height uint32, pitch uintptr) {
		if active == nil {
			return
		}
		active.videoRefresh(data, uint(width), uint(height), uint(pitch))
	})
	callbacks.audioSample = purego.NewCallback(func(left, right int16) {
		if active == nil {
			return
		}
		active.audioSample(left, right)
	})
	callbacks.audioSampleBatch = purego.NewCallback(func(data unsafe.Pointer, frames uintptr) uintptr {
		if active == nil || data == nil {
			return frames
		}
		active.frontend.AudioSampleBatch(unsafe.Slice((*int16)(data), frames*2))
		return frames
	})
	callbacks.inputPoll = purego.NewCallback(func() {
		if active == nil {
			return
		}
		active.flushAudio()
		active.frontend.InputPoll()
	})
	callbacks.inputState = purego.NewCallback(func(port, device, index, id uint32) uintptr {
		if active == nil {
			return 0
		}
		return uintptr(uint16(active.inputState(uint(port), uint(device), uint(index), uint(id))))
	})
	callbacks.framebuffer = purego.NewCallback(func() uintptr {
		if active == nil || active.pipeline == nil {
			return 0
		}
		return active.pipeline.CurrentFramebuffer()
	})
	callbacks.procAddress = purego.NewCallback(func(sym *byte) unsafe.Pointer {
		if active == nil || active.pipeline == nil {
			return nil
		}
		return active.pipeline.ProcAddress(goString(sym))
	})
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The pipeline argument can be nil if hardware rendering is not available.
func NewBridge(frontend Frontend, pipeline HWPipeline) *Bridge {
	return &Bridge{
		frontend: frontend,
		pipeline: pipeline,
		decoder:  newDecoder(),
	}
}

// Attach installs the bridge's callbacks in the core. It must be called
// before the core is initialised. Only one bridge may be attached at a time.
func (b *Bridge) Attach(core *Core) error {
	if active != nil && active != b {
		return curated.Errorf("libretro: another core is already attached")
	}

	callbacksOnce.Do(createCallbacks)
	b.decoder.framebufferCallback = callbacks.framebuffer
	b.decoder.procAddressCallback = callbacks.procAddress

	active = b
	b.core = core

	core.retroSetEnvironment(callbacks.environment)
	core.retroSetVideoRefresh(callbacks.videoRefresh)
	core.retroSetAudioSample(callbacks.audioSample)
	core.retroSetAudioSampleBatch(callbacks.audioSampleBatch)
	core.retroSetInputPoll(callbacks.inputPoll)
	core.retroSetInputState(callbacks.inputState)

	return nil
}

// Detach the bridge from the core. Calls made by the core after Detach() are
// ignored.
func (b *Bridge) Detach() {
	if active == b {
		active = nil
	}
	b.core = nil
}

// environment handles a raw request from the core.
func (b *Bridge) environment(cmd uint32, data unsafe.Pointer) bool {
	req, wb := b.decoder.decode(cmd, data)
	r := b.frontend.Environment(req)
	wb(r)
	return r.Succeeded()
}

func (b *Bridge) videoRefresh(data uintptr, width, height, pitch uint) {
	b.flushAudio()

	if data == hwFrameBufferValid {
		b.frontend.HWVideoRefresh(width, height)
		return
	}
	if data == 0 {
		b.frontend.VideoRefresh(nil, width, height, pitch)
		return
	}
	b.frontend.VideoRefresh(unsafe.Slice((*byte)(unsafe.Pointer(data)), pitch*height), width, height, pitch)
}

func (b *Bridge) audioSample(left, right int16) {
	b.samples = append(b.samples, left, right)
}

func (b *Bridge) flushAudio() {
	if len(b.samples) == 0 {
		return
	}
	b.frontend.AudioSampleBatch(b.samples)
	b.samples = b.samples[:0]
}

func (b *Bridge) inputState(port, device, index, id uint) int16 {
	if device == DeviceJoypad && id == JoypadMask {
		var mask int16
		for i := uint(0); i < NumJoypadButtons; i++ {
			if b.frontend.InputState(port, device, index, i) != 0 {
				mask |= 1 << i
			}
		}
		return mask
	}
	return b.frontend.InputState(port, device, index, id)
}
