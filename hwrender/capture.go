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

import (
	"image"
	"image/color"

	"github.com/minplayer/minplayer/curated"
)

// Frame is an image with 16bit RGB565 pixels. It implements the image.Image
// interface.
type Frame struct {
	Width  int
	Height int
	Pix    []uint16
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{}
	}
	return RGB565ToRGBA(f.Pix[y*f.Width+x])
}

// RGB565ToRGBA expands a 16bit pixel to an opaque colour.
func RGB565ToRGBA(p uint16) color.RGBA {
	r := uint8(p>>11) & 0x1f
	g := uint8(p>>5) & 0x3f
	b := uint8(p) & 0x1f
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// RGBToRGB565 packs a colour into 16 bits.
func RGBToRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Capture reads the most recent frame from the core's framebuffer. The
// returned frame has the top row first.
func (p *Pipeline) Capture(width, height uint32) (*Frame, error) {
	if !p.IsEnabled() {
		return nil, curated.Errorf("hwrender: capture: pipeline not ready")
	}
	if width == 0 || height == 0 {
		return nil, curated.Errorf("hwrender: capture: no frame rendered")
	}

	p.MakeCurrent()
	p.gl.BindFramebuffer(p.fb.fbo)
	defer p.gl.BindFramebuffer(0)

	rgba, err := p.gl.ReadPixels(int32(width), int32(height))
	if err != nil {
		return nil, curated.Errorf("hwrender: capture: %v", err)
	}

	w := int(width)
	h := int(height)
	if len(rgba) < w*h*4 {
		return nil, curated.Errorf("hwrender: capture: short read (%d bytes)", len(rgba))
	}

	f := &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, w*h),
	}

	for y := 0; y < h; y++ {
		src := rgba[(h-1-y)*w*4:]
		dst := f.Pix[y*w:]
		for x := 0; x < w; x++ {
			dst[x] = RGBToRGB565(src[x*4], src[x*4+1], src[x*4+2])
		}
	}

	return f, nil
}
