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

package archivefs

import (
	"github.com/minplayer/minplayer/player"
)

// AsyncResult is the outcome of an AsyncOpen.
type AsyncResult struct {
	Game *player.Game
	Err  error
}

// AsyncOpen opens a game in the background. Large archives can take many
// seconds to extract and the caller will want to keep servicing its window
// while that happens.
type AsyncOpen struct {
	results chan AsyncResult

	// the result once the open has completed
	Result AsyncResult
	done   bool
}

// NewAsyncOpen starts opening the game at path. Process() must be called to
// retrieve the result.
func NewAsyncOpen(path string, opts Options) *AsyncOpen {
	a := &AsyncOpen{
		results: make(chan AsyncResult, 1),
	}
	go func() {
		g, err := Open(path, opts)
		a.results <- AsyncResult{Game: g, Err: err}
	}()
	return a
}

// Process returns true once the open has completed, after which the Result
// field is valid. Suitable to be called as part of a render loop.
func (a *AsyncOpen) Process() bool {
	if a.done {
		return true
	}
	select {
	case a.Result = <-a.results:
		a.done = true
	default:
	}
	return a.done
}

// Wait blocks until the open has completed.
func (a *AsyncOpen) Wait() AsyncResult {
	if !a.done {
		a.Result = <-a.results
		a.done = true
	}
	return a.Result
}
