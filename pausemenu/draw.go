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
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/minplayer/minplayer/player"
	"github.com/minplayer/minplayer/scaler"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorWhite    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBlack    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorDarkGray = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorGray     = color.RGBA{0x99, 0x99, 0x99, 0xff}
	colorOverlay  = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

var face = basicfont.Face7x13

// metrics are the sizes used to lay out the menu. they grow in whole steps
// with the height of the display so the bitmap font stays sharp.
type metrics struct {
	unit          int
	edgePadding   int
	padding       int
	buttonPadding int
	pillHeight    int
	textOffset    int
	windowRadius  int
	pagination    int
	dotSpacing    int
}

func newMetrics(height int) metrics {
	u := max(1, height/240)
	return metrics{
		unit:          u,
		edgePadding:   10 * u,
		padding:       2 * u,
		buttonPadding: 6 * u,
		pillHeight:    16 * u,
		textOffset:    2 * u,
		windowRadius:  4 * u,
		pagination:    6 * u,
		dotSpacing:    15 * u,
	}
}

// textWidth returns the width of the string when drawn at the scale.
func textWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

// drawText draws the string with its top left corner at x, y.
func drawText(dst *image.RGBA, x, y int, s string, col color.Color, scale int) {
	if s == "" {
		return
	}

	w := font.MeasureString(face, s).Ceil()
	h := face.Height
	txt := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  txt,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	r := image.Rect(x, y, x+w*scale, y+h*scale)
	draw.NearestNeighbor.Scale(dst, r, txt, txt.Bounds(), draw.Over, nil)
}

// truncate shortens the string with an ellipsis so that it fits the width.
func truncate(s string, width int, scale int) string {
	if textWidth(s, scale) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		t := strings.TrimRight(string(r), " ") + "..."
		if textWidth(t, scale) <= width {
			return t
		}
	}
	return ""
}

func fill(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// view is everything the menu needs to draw a frame.
type view struct {
	title    string
	items    []string
	selected int

	// shown on the continue item of a multi-disc game. empty otherwise
	discLabel string

	// preview of the selected slot, shown when the save or load item is
	// selected
	showSlot bool
	slot     int
	preview  image.Image
	message  string

	battery  int
	charging bool
}

// drawMenu draws the menu over the backing frame.
func drawMenu(dst *image.RGBA, backing *image.RGBA, v view) {
	b := dst.Bounds()
	m := newMetrics(b.Dy())
	scale := m.unit

	if backing != nil {
		draw.Draw(dst, b, backing, backing.Bounds().Min, draw.Src)
	} else {
		draw.Draw(dst, b, image.NewUniform(colorBlack), image.Point{}, draw.Src)
	}
	fill(dst, b, colorOverlay)

	// battery in the top right corner
	bat := fmt.Sprintf("%d%%", v.battery)
	if v.charging {
		bat = fmt.Sprintf("+%s", bat)
	}
	batWidth := textWidth(bat, scale) + m.buttonPadding*2
	batRect := image.Rect(b.Max.X-m.edgePadding-batWidth, b.Min.Y+m.edgePadding, b.Max.X-m.edgePadding, b.Min.Y+m.edgePadding+m.pillHeight)
	fill(dst, batRect, colorDarkGray)
	drawText(dst, batRect.Min.X+m.buttonPadding, batRect.Min.Y+m.textOffset, bat, colorWhite, scale)

	// title
	maxWidth := b.Dx() - m.edgePadding*3 - batWidth
	title := truncate(v.title, maxWidth-m.buttonPadding*2, scale)
	titleWidth := min(maxWidth, textWidth(title, scale)+m.buttonPadding*2)
	titleRect := image.Rect(b.Min.X+m.edgePadding, b.Min.Y+m.edgePadding, b.Min.X+m.edgePadding+titleWidth, b.Min.Y+m.edgePadding+m.pillHeight)
	fill(dst, titleRect, colorDarkGray)
	drawText(dst, titleRect.Min.X+m.buttonPadding, titleRect.Min.Y+m.textOffset, title, colorWhite, scale)

	// button hints
	hints := "B BACK  A OKAY"
	hintWidth := textWidth(hints, scale) + m.buttonPadding*2
	hintRect := image.Rect(b.Max.X-m.edgePadding-hintWidth, b.Max.Y-m.edgePadding-m.pillHeight, b.Max.X-m.edgePadding, b.Max.Y-m.edgePadding)
	fill(dst, hintRect, colorDarkGray)
	drawText(dst, hintRect.Min.X+m.buttonPadding, hintRect.Min.Y+m.textOffset, hints, colorWhite, scale)

	// items are centred vertically between the title and the hints
	header := b.Min.Y + m.edgePadding + m.pillHeight
	footer := b.Max.Y - m.edgePadding - m.pillHeight
	oy := header + (footer-header-len(v.items)*m.pillHeight)/2 - m.padding

	for i, item := range v.items {
		y := oy + m.padding + i*m.pillHeight
		x := b.Min.X + m.edgePadding

		col := colorWhite
		if i == v.selected {
			if i == 0 && v.discLabel != "" {
				fill(dst, image.Rect(x, y, b.Max.X-m.edgePadding, y+m.pillHeight), colorDarkGray)
				lw := textWidth(v.discLabel, scale)
				drawText(dst, b.Max.X-m.edgePadding-m.buttonPadding-lw, y+m.textOffset, v.discLabel, colorWhite, scale)
			}
			w := textWidth(item, scale) + m.buttonPadding*2
			fill(dst, image.Rect(x, y, x+w, y+m.pillHeight), colorWhite)
			col = colorBlack
		} else {
			// drop shadow
			drawText(dst, x+m.buttonPadding+m.unit, y+m.textOffset+m.unit, item, colorBlack, scale)
		}
		drawText(dst, x+m.buttonPadding, y+m.textOffset, item, col, scale)
	}

	if v.showSlot {
		drawSlot(dst, m, v)
	}
}

// drawSlot draws the preview window of the selected save slot with a row of
// dots showing which slot is selected.
func drawSlot(dst *image.RGBA, m metrics, v view) {
	b := dst.Bounds()
	hw := b.Dx() / 2
	hh := b.Dy() / 2
	pw := hw + m.windowRadius*2
	ph := hh + m.windowRadius*3 + m.pagination

	ox := b.Max.X - pw - m.edgePadding
	oy := b.Min.Y + (b.Dy()-ph)/2
	fill(dst, image.Rect(ox, oy, ox+pw, oy+ph), colorDarkGray)

	ox += m.windowRadius
	oy += m.windowRadius
	previewRect := image.Rect(ox, oy, ox+hw, oy+hh)

	if v.preview != nil {
		sub := dst.SubImage(previewRect).(*image.RGBA)
		scaler.Into(sub, v.preview, 0, player.ScaleAspect, scaler.SharpnessSoft)
	} else {
		draw.Draw(dst, previewRect, image.NewUniform(colorBlack), image.Point{}, draw.Src)
		w := textWidth(v.message, m.unit)
		h := face.Height * m.unit
		drawText(dst, ox+(hw-w)/2, oy+(hh-h)/2, v.message, colorWhite, m.unit)
	}

	// pagination dots
	dot := m.pagination / 2
	ox += (hw - m.dotSpacing*SlotCount) / 2
	oy += hh + m.windowRadius
	for i := 0; i < SlotCount; i++ {
		x := ox + i*m.dotSpacing
		if i == v.slot {
			fill(dst, image.Rect(x, oy, x+m.pagination*2, oy+m.pagination), colorWhite)
		} else {
			fill(dst, image.Rect(x+dot, oy+dot/2, x+dot*2, oy+dot/2+dot), colorGray)
		}
	}
}
