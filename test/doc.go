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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// It is worth describing how the "Expected" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectedFailure to fail and ExpectedSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The Demand functions are stricter versions that stop the test immediately
// on failure. They should be used when later parts of the test rely on the
// value being correct.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint32) can be compared against int for convenience. See Equate()
// documentation for discussion why.
package test
