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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for are
// exported as constants by the package that creates them. For example:
//
//	const NoCore = "libretro: no core loaded: %s"
//
//	e := curated.Errorf(NoCore, path)
//
//	if curated.Is(e, NoCore) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. For example:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("hwrender: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("hwrender: %v", "fbo incomplete")
//	}
//
// The message for the error returned by A() will be:
//
//	hwrender: fbo incomplete
//
// and not:
//
//	hwrender: hwrender: fbo incomplete
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
//
// Curated errors also implement Unwrap(), returning the first error value in
// the list of placeholder values. This means that the errors.Is() function of
// the standard library can find sentinal errors such as os.ErrNotExist through
// a curated error.
package curated
