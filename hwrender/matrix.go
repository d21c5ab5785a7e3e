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

package hwrender

import "math"

// matrices are 4x4 and stored in column-major order

func identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// orthographic projection with near and far fixed at -1 and 1
func ortho(left, right, bottom, top float32) [16]float32 {
	var m [16]float32
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -1
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[15] = 1
	return m
}

func rotateZ(degrees float32) [16]float32 {
	r := float64(degrees) * math.Pi / 180
	c := float32(math.Cos(r))
	s := float32(math.Sin(r))

	var m [16]float32
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	m[10] = 1
	m[15] = 1
	return m
}

// multiply returns a * b
func multiply(a, b [16]float32) [16]float32 {
	var m [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			m[col*4+row] = sum
		}
	}
	return m
}

// mvp returns the model-view-projection matrix for a unit quad and a
// rotation value. The rotation value is counter-clockwise in steps of 90
// degrees.
func mvp(rotation uint) [16]float32 {
	return multiply(rotateZ(float32(rotation%4)*90), ortho(0, 1, 0, 1))
}
