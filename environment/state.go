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

// Result is the outcome of a request handler.
type Result int

// List of valid Result values.
const (
	// the dispatcher has no handler for the request. the core is told that the
	// request failed
	Unhandled Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Unhandled:
		return "unhandled"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "invalid result"
}

// Handled returns true if a handler consumed the request, whether or not it
// succeeded.
func (r Result) Handled() bool {
	return r != Unhandled
}

// Succeeded is the value returned to the core.
func (r Result) Succeeded() bool {
	return r == Success
}

func result(ok bool) Result {
	if ok {
		return Success
	}
	return Failure
}

// VideoState is the dynamic video configuration negotiated with a core.
type VideoState struct {
	// quarter turns counter-clockwise. always in the range 0 to 3
	Rotation uint

	GeometryChanged bool
	AVInfoChanged   bool

	FrameTime FrameTimeCallback

	// timestamp of the previous call to the frame time callback in microseconds
	FrameTimeLast int64
}

// Reset puts the video state into its default condition.
func (v *VideoState) Reset() {
	*v = VideoState{}
}

// ThrottleInfo is read by the dispatcher when answering questions about speed.
type ThrottleInfo struct {
	FastForward bool

	// the fast-forward multiplier less one. a value of 0 means 2x
	MaxFFSpeed int
}

// AVState holds the geometry and timing of the running core.
type AVState struct {
	Geometry    GameGeometry
	FPS         float64
	SampleRate  float64
	AspectRatio float64
}

// Set copies a full SystemAVInfo into the AVState.
func (av *AVState) Set(info SystemAVInfo) {
	av.Geometry = info.Geometry
	av.FPS = info.Timing.FPS
	av.SampleRate = info.Timing.SampleRate
	av.AspectRatio = info.Geometry.Aspect()
}

// Renderer is the part of the software renderer's cached layout that is
// invalidated by changes to the geometry. When DstPitch is zero the renderer
// recomputes its scaling before drawing the next frame.
type Renderer struct {
	SrcWidth  int
	SrcHeight int
	SrcPitch  int
	DstPitch  int
}

// Invalidate forces the renderer to recompute its layout.
func (r *Renderer) Invalidate() {
	r.DstPitch = 0
}

// Controllers records what the core told the frontend about its input devices.
type Controllers struct {
	// the core supports an enhanced controller for which the frontend has a
	// dedicated input mapping
	HasCustom bool

	Descriptors []InputDescriptor
}

// ReinitFunc is called when the sample rate of the core changes.
type ReinitFunc func(oldRate, newRate, fps float64)

// HWRenderer is the render pipeline as seen by the dispatcher.
type HWRenderer interface {
	// Supported returns true if the pipeline can create a context of the type
	// and version.
	Supported(contextType HWContextType, major, minor uint32) bool
}

// Variables is the store of core options.
type Variables interface {
	// Value returns the current value of the option with the key.
	Value(key string) (string, bool)

	// Define replaces the option set with the definitions supplied by the core.
	Define(defs []VariableDefinition)

	// Changed reports whether an option has changed since the previous call
	// and clears the changed flag.
	Changed() bool

	// SetVisible shows or hides the option with the key.
	SetVisible(key string, visible bool)
}
