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

package test

import (
	"fmt"
	"testing"
)

// expect returns true if v represents a success value for its type.
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// id formats the optional tags into a prefix for failure messages.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", fmt.Sprint(tags...))
}

// ExpectedFailure tests argument v for a failure condition suitable for it's
// type. Currentlly support types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	if expect(t, v) {
		switch v.(type) {
		case bool:
			t.Errorf("expected failure (bool)")
		case nil:
			t.Errorf("expected failure (nil)")
		default:
			t.Errorf("expected failure (error)")
		}
		return false
	}

	return true
}

// ExpectedSuccess tests argument v for a success condition suitable for it's
// type. Currentlly support types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	if !expect(t, v) {
		switch v := v.(type) {
		case bool:
			t.Errorf("expected success (bool)")
		default:
			t.Errorf("expected success (error: %v)", v)
		}
		return false
	}

	return true
}
