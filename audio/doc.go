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

// Package audio plays the sound produced by the core.
//
// The core hands over batches of interleaved stereo samples through the
// Mixer interface. Audio implements Mixer by queueing the samples on an SDL
// audio device. Samples are dropped rather than queued when the device is
// more than a few frames behind, which keeps the latency between picture and
// sound bounded when the core runs faster than real time.
//
// The sample rate is negotiated by the core and may change while a game is
// running. Reinit() reopens the device at the new rate.
package audio
