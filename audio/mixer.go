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

// Mixer is implemented by anything that consumes the sound of the core.
type Mixer interface {
	// SetAudio receives a batch of interleaved stereo samples
	SetAudio(samples []int16) error

	// EndMixing is called when no more samples will be sent
	EndMixing() error
}

// Mixers sends samples to more than one Mixer.
type Mixers []Mixer

// SetAudio implements the Mixer interface. The first error is returned after
// every mixer has received the samples.
func (m Mixers) SetAudio(samples []int16) error {
	var err error
	for _, mx := range m {
		if e := mx.SetAudio(samples); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// EndMixing implements the Mixer interface.
func (m Mixers) EndMixing() error {
	var err error
	for _, mx := range m {
		if e := mx.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Reiniter is implemented by a Mixer that must be told when the sample rate
// changes.
type Reiniter interface {
	Reinit(oldRate float64, newRate float64, fps float64)
}

// Reinit calls Reinit() on every mixer that implements Reiniter.
func (m Mixers) Reinit(oldRate float64, newRate float64, fps float64) {
	for _, mx := range m {
		if r, ok := mx.(Reiniter); ok {
			r.Reinit(oldRate, newRate, fps)
		}
	}
}
