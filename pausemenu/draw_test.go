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
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/minplayer/minplayer/test"
	"golang.org/x/image/draw"
)

func solid(w, h int, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return img
}

func TestDrawMenu(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 320, 240))
	backing := solid(320, 240, color.White)

	drawMenu(dst, backing, view{
		title:    "Game",
		items:    []string{"Continue", "Save", "Load", "Options", "Quit"},
		selected: 0,
		battery:  80,
	})

	// backing is darkened by the overlay
	c := dst.RGBAAt(300, 120)
	test.ExpectedSuccess(t, c.R > 120 && c.R < 135)

	// title pill
	test.DemandEquality(t, dst.RGBAAt(11, 11), colorDarkGray)

	// selected item pill
	test.DemandEquality(t, dst.RGBAAt(11, 81), colorWhite)
}

func TestDrawSlot(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 320, 240))

	v := view{
		items:    []string{"Continue", "Save", "Load", "Options", "Quit"},
		selected: 1,
		showSlot: true,
		slot:     2,
		message:  "Empty Slot",
	}
	drawMenu(dst, nil, v)

	// empty preview and the dot of the selected slot
	test.DemandEquality(t, dst.RGBAAt(147, 56), colorBlack)
	test.DemandEquality(t, dst.RGBAAt(197, 180), colorWhite)

	v.preview = solid(16, 12, color.RGBA{0xff, 0, 0, 0xff})
	drawMenu(dst, nil, v)
	test.DemandEquality(t, dst.RGBAAt(200, 100), color.RGBA{0xff, 0, 0, 0xff})
}

func TestTruncate(t *testing.T) {
	test.Equate(t, truncate("Game", 100, 1), "Game")
	test.Equate(t, truncate("A Very Long Game Name", 70, 1), "A Very...")
	test.Equate(t, truncate("Game", 0, 1), "")
}

func TestThumbnail(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "thumb.bmp")

	// transparent pixels are written as black
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.SetRGBA(1, 1, color.RGBA{0x10, 0x20, 0x30, 0xff})
	test.DemandSuccess(t, writeThumbnail(pth, img))

	rd, err := readThumbnail(pth)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, rd.Bounds(), image.Rect(0, 0, 8, 4))

	r, g, b, a := rd.At(1, 1).RGBA()
	test.Equate(t, int(r>>8), 0x10)
	test.Equate(t, int(g>>8), 0x20)
	test.Equate(t, int(b>>8), 0x30)
	test.Equate(t, int(a>>8), 0xff)

	r, _, _, a = rd.At(0, 0).RGBA()
	test.Equate(t, int(r), 0)
	test.Equate(t, int(a>>8), 0xff)

	_, err = readThumbnail(filepath.Join(t.TempDir(), "missing.bmp"))
	test.ExpectedFailure(t, err)
}
