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

package environment

import "fmt"

// PixelFormat is the format of the frames a core sends to the frontend.
type PixelFormat uint32

// List of valid PixelFormat values.
const (
	Format0RGB1555 PixelFormat = iota
	FormatXRGB8888
	FormatRGB565
)

func (f PixelFormat) String() string {
	switch f {
	case Format0RGB1555:
		return "0RGB1555"
	case FormatXRGB8888:
		return "XRGB8888"
	case FormatRGB565:
		return "RGB565"
	}
	return fmt.Sprintf("unknown (%d)", uint32(f))
}

// Valid returns true if the pixel format is one that the frontend can
// convert for display.
func (f PixelFormat) Valid() bool {
	return f <= FormatRGB565
}

// BytesPerPixel returns the size of a single pixel in the format.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatXRGB8888 {
		return 4
	}
	return 2
}

// RotationDescription returns a human readable description of a rotation value.
func RotationDescription(rotation uint) string {
	switch rotation {
	case 0:
		return "0 degrees"
	case 1:
		return "90 degrees CCW"
	case 2:
		return "180 degrees"
	case 3:
		return "270 degrees CCW"
	}
	return "invalid"
}

// HWContextType is the graphics API a core asks for when it renders with
// hardware acceleration.
type HWContextType uint32

// List of valid HWContextType values.
const (
	HWContextNone HWContextType = iota
	HWContextOpenGL
	HWContextOpenGLES2
	HWContextOpenGLCore
	HWContextOpenGLES3
	HWContextOpenGLESVersion
	HWContextVulkan
	HWContextD3D11
	HWContextD3D10
	HWContextD3D12
	HWContextD3D9
)

func (t HWContextType) String() string {
	switch t {
	case HWContextNone:
		return "none"
	case HWContextOpenGL:
		return "OpenGL"
	case HWContextOpenGLES2:
		return "OpenGL ES 2"
	case HWContextOpenGLCore:
		return "OpenGL core"
	case HWContextOpenGLES3:
		return "OpenGL ES 3"
	case HWContextOpenGLESVersion:
		return "OpenGL ES (versioned)"
	case HWContextVulkan:
		return "Vulkan"
	case HWContextD3D11:
		return "Direct3D 11"
	case HWContextD3D10:
		return "Direct3D 10"
	case HWContextD3D12:
		return "Direct3D 12"
	case HWContextD3D9:
		return "Direct3D 9"
	}
	return fmt.Sprintf("unknown (%d)", uint32(t))
}

// HWRenderRequest is the frontend's copy of a core's request for a hardware
// rendering context.
//
// The ContextReset and ContextDestroy functions are supplied by the core. The
// render pipeline calls ContextReset once the context is ready and
// ContextDestroy when it is about to be torn down. Either may be nil.
type HWRenderRequest struct {
	ContextType      HWContextType
	VersionMajor     uint32
	VersionMinor     uint32
	Depth            bool
	Stencil          bool
	BottomLeftOrigin bool
	CacheContext     bool
	DebugContext     bool

	ContextReset   func()
	ContextDestroy func()
}

// GameGeometry describes the dimensions of the frames a core produces.
type GameGeometry struct {
	BaseWidth   uint32
	BaseHeight  uint32
	MaxWidth    uint32
	MaxHeight   uint32
	AspectRatio float32
}

// Aspect returns the display aspect ratio of the geometry. If the core reports
// an aspect ratio of zero or less the ratio is derived from the base width
// and height.
func (g GameGeometry) Aspect() float64 {
	if g.AspectRatio > 0 {
		return float64(g.AspectRatio)
	}
	if g.BaseHeight == 0 {
		return 0
	}
	return float64(g.BaseWidth) / float64(g.BaseHeight)
}

// SystemTiming is the frame and sample rate of a core.
type SystemTiming struct {
	FPS        float64
	SampleRate float64
}

// SystemAVInfo combines the geometry and timing of a core.
type SystemAVInfo struct {
	Geometry GameGeometry
	Timing   SystemTiming
}

// FrameTimeCallback is registered by a core that wants to be told the time
// since the previous frame, in microseconds.
type FrameTimeCallback struct {
	Callback  func(usec int64)
	Reference int64
}

// ThrottleMode describes how the frontend is currently pacing emulation.
type ThrottleMode uint32

// List of valid ThrottleMode values.
const (
	ThrottleNone ThrottleMode = iota
	ThrottleFrameStepping
	ThrottleFastForward
	ThrottleSlowMotion
	ThrottleRewinding
	ThrottleVSync
	ThrottleUnblocked
)

// ThrottleState is the answer to a throttle state query.
type ThrottleState struct {
	Mode ThrottleMode
	Rate float32
}

// ControllerDescription names one type of device that can be plugged into a port.
type ControllerDescription struct {
	Description string
	ID          uint32
}

// ControllerInfo lists the device types a core supports for one port.
type ControllerInfo struct {
	Types []ControllerDescription
}

// DiskControl is the frontend's copy of the disk control interface supplied
// by a core.
//
// The SetInitialImage, GetImagePath and GetImageLabel functions are part of
// the extended interface and are nil when the core registered the legacy
// interface.
type DiskControl struct {
	SetEjectState     func(ejected bool) bool
	GetEjectState     func() bool
	GetImageIndex     func() uint
	SetImageIndex     func(index uint) bool
	GetNumImages      func() uint
	ReplaceImageIndex func(index uint, path string) bool
	AddImageIndex     func() bool

	SetInitialImage func(index uint, path string) bool
	GetImagePath    func(index uint) (string, bool)
	GetImageLabel   func(index uint) (string, bool)
}

// Registered returns true if a core has supplied a disk control interface.
func (dc *DiskControl) Registered() bool {
	return dc != nil && dc.GetNumImages != nil
}

// Extended returns true if the core supplied the extended disk control interface.
func (dc *DiskControl) Extended() bool {
	return dc.Registered() && dc.GetImagePath != nil
}

// AudioBufferStatusFunc is registered by a core that wants to know how full
// the frontend's audio buffer is. Occupancy is a percentage.
type AudioBufferStatusFunc func(active bool, occupancy uint, underrunLikely bool)

// VariableDefinition is a core option as declared by the legacy variables
// interface. The Value field has the form "Description; first|second|third".
type VariableDefinition struct {
	Key   string
	Value string
}

// InputDescriptor describes the purpose of one input of one device.
type InputDescriptor struct {
	Port        uint32
	Device      uint32
	Index       uint32
	ID          uint32
	Description string
}

// Message is a short notice a core wants shown to the user for a number of frames.
type Message struct {
	Text   string
	Frames uint32
}

// CoreOptionDisplay sets the visibility of a core option.
type CoreOptionDisplay struct {
	Key     string
	Visible bool
}

// LanguageEnglish is the only language the frontend reports.
const LanguageEnglish = 0
