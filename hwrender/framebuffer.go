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
	"fmt"

	"github.com/minplayer/minplayer/logger"
)

// framebuffer is the render target handed to the core. The colour
// attachment is a texture so that it can be drawn to the display.
type framebuffer struct {
	fbo          uint32
	texture      uint32
	renderbuffer uint32

	width  uint32
	height uint32
}

// create allocates the framebuffer objects. On error any objects that were
// allocated will have been deleted.
func (f *framebuffer) create(gl GL, width, height uint32, depth, stencil bool) (err error) {
	defer func() {
		if err != nil {
			f.destroy(gl)
		}
	}()

	f.fbo = gl.GenFramebuffer()
	gl.BindFramebuffer(f.fbo)
	defer gl.BindFramebuffer(0)

	f.texture = gl.GenTexture(int32(width), int32(height))
	gl.AttachTexture(f.texture)

	if depth || stencil {
		switch {
		case depth && stencil:
			f.renderbuffer = gl.GenRenderbuffer(Depth24Stencil8, int32(width), int32(height))
			gl.AttachRenderbuffer(DepthAttachment, f.renderbuffer)
			gl.AttachRenderbuffer(StencilAttachment, f.renderbuffer)
		case depth:
			f.renderbuffer = gl.GenRenderbuffer(DepthComponent16, int32(width), int32(height))
			gl.AttachRenderbuffer(DepthAttachment, f.renderbuffer)
		default:
			// no stencil-only format in GLES2 so a combined buffer is used
			logger.Log(logger.Allow, "hwrender", "stencil requested without depth. using combined depth/stencil buffer")
			f.renderbuffer = gl.GenRenderbuffer(Depth24Stencil8, int32(width), int32(height))
			gl.AttachRenderbuffer(StencilAttachment, f.renderbuffer)
		}
	}

	if status := gl.CheckFramebufferStatus(); status != FramebufferComplete {
		return fmt.Errorf("framebuffer incomplete (%#04x)", status)
	}

	f.width = width
	f.height = height

	return nil
}

// destroy deletes the framebuffer objects in the reverse order of creation.
func (f *framebuffer) destroy(gl GL) {
	if f.renderbuffer != 0 {
		gl.DeleteRenderbuffer(f.renderbuffer)
	}
	if f.texture != 0 {
		gl.DeleteTexture(f.texture)
	}
	if f.fbo != 0 {
		gl.DeleteFramebuffer(f.fbo)
	}
	*f = framebuffer{}
}
