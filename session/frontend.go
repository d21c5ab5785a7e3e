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
	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/logger"
)

// frontend adapts a Session to the libretro.Frontend interface.
type frontend struct {
	s *Session
}

func (f frontend) Environment(req environment.Request) environment.Result {
	return f.s.dispatcher.Dispatch(req)
}

func (f frontend) VideoRefresh(frame []byte, width, height, pitch uint) {
	if frame == nil && f.s.hwEnabled() {
		// nothing new to show
		return
	}
	f.s.VideoRefresh(frame, int(width), int(height), int(pitch))
}

func (f frontend) HWVideoRefresh(width, height uint) {
	f.s.hwWidth = uint32(width)
	f.s.hwHeight = uint32(height)
	f.s.pipeline.Present(f.s.hwWidth, f.s.hwHeight, f.s.ctx.Video.Rotation)
}

func (f frontend) AudioSampleBatch(samples []int16) {
	if err := f.s.mixer.SetAudio(samples); err != nil && !f.s.audioFailed {
		f.s.audioFailed = true
		logger.Logf(logger.Allow, "session", "audio: %v", err)
	}
}

func (f frontend) InputPoll() {
	f.s.pollInput()
}

func (f frontend) InputState(port, device, index, id uint) int16 {
	return f.s.inputState(port, device, index, id)
}
