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

// Package scaler fits frames produced by the core onto the display.
package scaler

import (
	"image"
	"image/color"

	"github.com/minplayer/minplayer/player"
	"golang.org/x/image/draw"
)

// Sharpness selects the filter used when a frame is scaled by a
// non-integer amount.
type Sharpness int

// List of valid Sharpness values.
const (
	SharpnessSharp Sharpness = iota
	SharpnessCrisp
	SharpnessSoft
)

func (s Sharpness) String() string {
	switch s {
	case SharpnessSharp:
		return "sharp"
	case SharpnessCrisp:
		return "crisp"
	case SharpnessSoft:
		return "soft"
	}
	return "unknown"
}

// Rect returns the area of dst that a source frame of the given size should
// be drawn into. The area may be larger than dst for cropped scaling.
//
// An aspect ratio of zero or less means the frame's own ratio.
func Rect(srcWidth, srcHeight int, dst image.Rectangle, aspect float64, scaling player.Scaling) image.Rectangle {
	dw, dh := dst.Dx(), dst.Dy()
	if srcWidth <= 0 || srcHeight <= 0 || dw <= 0 || dh <= 0 {
		return dst
	}

	var w, h int

	switch scaling {
	case player.ScaleFullscreen:
		return dst

	case player.ScaleNative, player.ScaleCropped:
		sx := dw / srcWidth
		sy := dh / srcHeight
		scale := min(sx, sy)
		if scaling == player.ScaleCropped {
			scale = max(sx, sy)
		}
		if scale < 1 {
			// frame is larger than the display
			return Rect(srcWidth, srcHeight, dst, aspect, player.ScaleAspect)
		}
		w = srcWidth * scale
		h = srcHeight * scale

	default:
		if aspect <= 0 {
			aspect = float64(srcWidth) / float64(srcHeight)
		}
		w = dw
		h = int(float64(dw) / aspect)
		if h > dh {
			h = dh
			w = int(float64(dh) * aspect)
		}
	}

	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Kernel returns the interpolator for the scaling and sharpness. Integer
// scaling never blends pixels.
func Kernel(scaling player.Scaling, sharpness Sharpness) draw.Scaler {
	if scaling == player.ScaleNative || scaling == player.ScaleCropped {
		return draw.NearestNeighbor
	}
	switch sharpness {
	case SharpnessSharp:
		return draw.NearestNeighbor
	case SharpnessCrisp:
		return draw.CatmullRom
	}
	return draw.ApproxBiLinear
}

// Into clears dst to black and draws the source frame into it. A nil source
// leaves dst black.
func Into(dst *image.RGBA, src image.Image, aspect float64, scaling player.Scaling, sharpness Sharpness) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if src == nil {
		return
	}
	sb := src.Bounds()
	r := Rect(sb.Dx(), sb.Dy(), dst.Bounds(), aspect, scaling)
	Kernel(scaling, sharpness).Scale(dst, r, src, sb, draw.Src, nil)
}
