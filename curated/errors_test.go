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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.Equate(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedFailure(t, curated.Is(e, testErrorB))

	f := curated.Errorf(testErrorB, e)
	test.ExpectedFailure(t, curated.Is(f, testError))
	test.ExpectedSuccess(t, curated.Has(f, testError))
	test.ExpectedSuccess(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.IsAny(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	_, err := os.Open("this file does not exist")
	e := curated.Errorf("persistence: %v", err)
	test.ExpectedSuccess(t, errors.Is(e, os.ErrNotExist))
}
