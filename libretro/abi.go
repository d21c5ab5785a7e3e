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

import "unsafe"

// APIVersion is the version of the core ABI supported by the frontend.
const APIVersion = 1

// Device types.
const (
	DeviceNone   = 0
	DeviceJoypad = 1
	DeviceAnalog = 5
)

// Joypad button IDs.
const (
	JoypadB = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
	JoypadL2
	JoypadR2
	JoypadL3
	JoypadR3

	// NumJoypadButtons is the number of buttons on the joypad device
	NumJoypadButtons

	// JoypadMask requests the state of all buttons as a bitmask
	JoypadMask = 256
)

// Memory IDs. The same values are used by persistence.MemoryType.
const (
	MemorySaveRAM = 0
	MemoryRTC     = 1
)

// hwFrameBufferValid is the data pointer passed to the video refresh callback
// when the core has rendered into the hardware framebuffer.
const hwFrameBufferValid = ^uintptr(0)

// the types below mirror the layout of the structures in the C ABI

type systemInfo struct {
	libraryName     *byte
	libraryVersion  *byte
	validExtensions *byte
	needFullpath    bool
	blockExtract    bool
}

type gameGeometry struct {
	baseWidth   uint32
	baseHeight  uint32
	maxWidth    uint32
	maxHeight   uint32
	aspectRatio float32
}

type systemTiming struct {
	fps        float64
	sampleRate float64
}

type systemAVInfo struct {
	geometry gameGeometry
	timing   systemTiming
}

type gameInfo struct {
	path *byte
	data unsafe.Pointer
	size uintptr
	meta *byte
}

type message struct {
	msg    *byte
	frames uint32
}

type variable struct {
	key   *byte
	value *byte
}

type inputDescriptor struct {
	port        uint32
	device      uint32
	index       uint32
	id          uint32
	description *byte
}

type controllerDescription struct {
	desc *byte
	id   uint32
}

type controllerInfo struct {
	types    *controllerDescription
	numTypes uint32
}

type frameTimeCallback struct {
	callback  uintptr
	reference int64
}

type hwRenderCallback struct {
	contextType           uint32
	contextReset          uintptr
	getCurrentFramebuffer uintptr
	getProcAddress        uintptr
	depth                 bool
	stencil               bool
	bottomLeftOrigin      bool
	versionMajor          uint32
	versionMinor          uint32
	cacheContext          bool
	contextDestroy        uintptr
	debugContext          bool
}

type diskControlCallback struct {
	setEjectState     uintptr
	getEjectState     uintptr
	getImageIndex     uintptr
	setImageIndex     uintptr
	getNumImages      uintptr
	replaceImageIndex uintptr
	addImageIndex     uintptr
}

type diskControlExtCallback struct {
	diskControlCallback
	setInitialImage uintptr
	getImagePath    uintptr
	getImageLabel   uintptr
}

type audioBufferStatusCallback struct {
	callback uintptr
}

type throttleState struct {
	mode uint32
	rate float32
}

type coreOptionDisplay struct {
	key     *byte
	visible bool
}
