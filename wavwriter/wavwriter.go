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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
)

// WavWriter implements the audio.Mixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate float64) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: int(sampleRate),
	}, nil
}

// Reinit changes the sample rate written to the file header. Samples already
// buffered are not resampled.
func (aw *WavWriter) Reinit(_ float64, newRate float64, _ float64) {
	if len(aw.buffer) > 0 {
		logger.Logf(logger.Allow, "wavwriter", "sample rate changed after %d samples", len(aw.buffer))
	}
	aw.sampleRate = int(newRate)
}

// SetAudio implements the audio.Mixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// EndMixing implements the audio.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// 16bit stereo PCM
	enc := wav.NewEncoder(f, aw.sampleRate, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
