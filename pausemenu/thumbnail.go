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

package pausemenu

import (
	"bufio"
	"image"
	"image/color"
	"os"

	"github.com/minplayer/minplayer/curated"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// opaque returns a copy of the image composited over black.
func opaque(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// writeThumbnail encodes the image as a 24-bit bitmap. The launcher reads the
// same file to show a preview of the save state.
func writeThumbnail(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("thumbnail: %v", err)
	}

	w := bufio.NewWriter(f)
	err = bmp.Encode(w, opaque(img))
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return curated.Errorf("thumbnail: %v", err)
	}
	return nil
}

// readThumbnail decodes the bitmap at path.
func readThumbnail(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("thumbnail: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, curated.Errorf("thumbnail: %v", err)
	}
	return img, nil
}
