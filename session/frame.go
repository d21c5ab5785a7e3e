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

package session

import (
	"encoding/binary"
	"image"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/hwrender"
)

// expand5 widens a five bit colour component to eight bits.
func expand5(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

// convert copies a frame from the core into dst. A new image is allocated if
// dst is nil or the wrong size. Rows beyond the end of data are left
// untouched.
func convert(dst *image.RGBA, data []byte, width, height, pitch int, format environment.PixelFormat) *image.RGBA {
	bpp := format.BytesPerPixel()
	if pitch > 0 && width*bpp > pitch {
		width = pitch / bpp
	}

	if dst == nil || dst.Rect.Dx() != width || dst.Rect.Dy() != height {
		dst = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	for y := 0; y < height; y++ {
		o := y * pitch
		if o+width*bpp > len(data) {
			break // for loop
		}
		row := data[o : o+width*bpp]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		switch format {
		case environment.FormatXRGB8888:
			for x := 0; x < width; x++ {
				out[x*4] = row[x*4+2]
				out[x*4+1] = row[x*4+1]
				out[x*4+2] = row[x*4]
				out[x*4+3] = 0xff
			}
		case environment.FormatRGB565:
			for x := 0; x < width; x++ {
				c := hwrender.RGB565ToRGBA(binary.LittleEndian.Uint16(row[x*2:]))
				out[x*4] = c.R
				out[x*4+1] = c.G
				out[x*4+2] = c.B
				out[x*4+3] = 0xff
			}
		default:
			for x := 0; x < width; x++ {
				p := binary.LittleEndian.Uint16(row[x*2:])
				out[x*4] = expand5(p >> 10)
				out[x*4+1] = expand5(p >> 5)
				out[x*4+2] = expand5(p)
				out[x*4+3] = 0xff
			}
		}
	}

	return dst
}

// rotate returns the image turned counter-clockwise by the number of quarter
// turns. The source image is returned unchanged for a rotation of zero.
func rotate(src *image.RGBA, rotation uint) *image.RGBA {
	rotation %= 4
	if rotation == 0 || src == nil {
		return src
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	dw, dh := w, h
	if rotation%2 == 1 {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dx, dy int
			switch rotation {
			case 1:
				dx, dy = y, w-1-x
			case 2:
				dx, dy = w-1-x, h-1-y
			case 3:
				dx, dy = h-1-y, x
			}
			so := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
			do := dst.PixOffset(dx, dy)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		}
	}

	return dst
}
