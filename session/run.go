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
	"time"

	"github.com/minplayer/minplayer/notifications"
)

// Run the core one frame at a time until the player quits. The pause menu is
// shown between frames when requested.
func (s *Session) Run() {
	for !s.ctx.IsQuitting() {
		if s.interrupted.Load() {
			s.ctx.SetQuit(true)
			break // for loop
		}
		s.step()
	}
}

// Interrupt asks Run() to return at the end of the current frame. It is safe
// to call from any goroutine.
func (s *Session) Interrupt() {
	s.interrupted.Store(true)
}

// step runs a single frame of the core and handles the pause menu if it was
// requested during the frame.
func (s *Session) step() {
	s.polled = false
	s.frameTime()
	s.core.Run()
	s.geometryChange()

	// cores that do not poll input every frame still need the menu button
	s.pollInput()

	if s.ctx.IsQuitting() {
		return
	}

	if s.ctx.IsMenuShown() {
		s.showMenu()
		return
	}

	s.sync()
}

// geometryChange consumes the geometry and timing notices raised by the core
// during the frame. The GPU framebuffer grows to fit a larger frame.
func (s *Session) geometryChange() {
	v := s.ctx.Video
	if !v.GeometryChanged && !v.AVInfoChanged {
		return
	}
	v.GeometryChanged = false
	v.AVInfoChanged = false

	if !s.hwEnabled() {
		return
	}
	g := s.ctx.Core.AV.Geometry
	if !s.pipeline.GrowFBO(g.BaseWidth, g.BaseHeight) {
		s.notify(notifications.NotifyHWRenderDisabled, s.hwRequest.ContextType.String())
	}
}

// frameTime calls the core's frame time callback with the time since the
// previous frame. The reference time is used for the first frame and while
// fast-forwarding.
func (s *Session) frameTime() {
	v := s.ctx.Video
	if v.FrameTime.Callback == nil {
		return
	}
	now := time.Now().UnixMicro()
	delta := v.FrameTime.Reference
	if v.FrameTimeLast != 0 && !s.ctx.Throttle.FastForward {
		delta = now - v.FrameTimeLast
	}
	v.FrameTimeLast = now
	v.FrameTime.Callback(delta)
}

// sync waits for the display. While fast-forwarding the wait is skipped for
// all but one in every MaxFFSpeed+2 frames.
func (s *Session) sync() {
	if s.ctx.Throttle.FastForward {
		s.ffFrames++
		if s.ffFrames <= s.ctx.Throttle.MaxFFSpeed+1 {
			return
		}
		s.ffFrames = 0
	}
	s.plt.Sync()
}

func (s *Session) showMenu() {
	var frame image.Image
	if !s.hwEnabled() && s.frame != nil {
		frame = s.frame
	}
	s.menu.Loop(frame)

	s.ffFrames = 0
	s.ctx.Flags.IgnoreMenu = false
	s.plt.ResetInput()
}
