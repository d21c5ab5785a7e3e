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

package audio

import (
	"encoding/binary"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of frames of audio that can be queued before new samples are
// dropped
const maxQueuedFrames = 4

// bytes in one stereo sample frame
const bytesPerFrame = 4

// the number of sample frames in the device's own buffer. the value is not
// critical
const bufferLength = 512

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	sampleRate float64
	fps        float64

	// queued bytes above which new samples are dropped
	limit uint32

	buffer  []byte
	dropped int
}

// queueLimit returns the number of bytes in maxQueuedFrames video frames of
// audio.
func queueLimit(sampleRate float64, fps float64) uint32 {
	if sampleRate <= 0 || fps <= 0 {
		return 0
	}
	return uint32(sampleRate/fps) * bytesPerFrame * maxQueuedFrames
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate float64, fps float64) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}

	aud := &Audio{}
	if err := aud.open(sampleRate, fps); err != nil {
		return nil, err
	}
	return aud, nil
}

func (aud *Audio) open(sampleRate float64, fps float64) error {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return curated.Errorf("audio: %v", err)
	}

	aud.id = id
	aud.spec = actual
	aud.sampleRate = sampleRate
	aud.fps = fps
	aud.limit = queueLimit(sampleRate, fps)

	logger.Logf(logger.Allow, "audio", "device opened at %dHz", actual.Freq)

	sdl.PauseAudioDevice(aud.id, false)
	return nil
}

func (aud *Audio) close() {
	if aud.id == 0 {
		return
	}
	sdl.CloseAudioDevice(aud.id)
	aud.id = 0
}

// Reinit reopens the device at a new sample rate. It is called when the core
// changes its timing.
func (aud *Audio) Reinit(oldRate float64, newRate float64, fps float64) {
	logger.Logf(logger.Allow, "audio", "sample rate %.0f -> %.0f", oldRate, newRate)
	aud.close()
	if err := aud.open(newRate, fps); err != nil {
		logger.Log(logger.Allow, "audio", err.Error())
	}
}

// encode converts the samples to little-endian bytes in the buffer.
func encode(buffer []byte, samples []int16) []byte {
	n := len(samples) * 2
	if cap(buffer) < n {
		buffer = make([]byte, n)
	}
	buffer = buffer[:n]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buffer[i*2:], uint16(s))
	}
	return buffer
}

// SetAudio implements the Mixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if aud.id == 0 || len(samples) == 0 {
		return nil
	}

	if aud.limit > 0 && sdl.GetQueuedAudioSize(aud.id) > aud.limit {
		aud.dropped++
		return nil
	}

	aud.buffer = encode(aud.buffer, samples)
	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("audio: %v", err)
	}
	return nil
}

// EndMixing implements the Mixer interface.
func (aud *Audio) EndMixing() error {
	if aud.dropped > 0 {
		logger.Logf(logger.Allow, "audio", "%d batches dropped", aud.dropped)
	}
	aud.close()
	return nil
}
