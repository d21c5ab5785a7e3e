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

package platform

import (
	"unsafe"

	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// GLContext implements hwrender.Context for an SDL window.
type GLContext struct {
	window  *sdl.Window
	context sdl.GLContext
}

// NewGLContext is the preferred method of initialisation for the GLContext
// type. The context itself is not created until CreateContext() is called.
func NewGLContext(window *sdl.Window) *GLContext {
	return &GLContext{window: window}
}

// CreateContext creates an OpenGL ES context with a depth and stencil buffer
// on the window.
func (c *GLContext) CreateContext(major, minor int) error {
	if c.window == nil {
		return curated.Errorf("sdl: no window")
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES},
		{sdl.GL_CONTEXT_MAJOR_VERSION, major},
		{sdl.GL_CONTEXT_MINOR_VERSION, minor},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}

	ctx, err := c.window.GLCreateContext()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	c.context = ctx

	if v, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION); err == nil {
		w, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
		logger.Logf(logger.Allow, "sdl", "using GL ES version %d.%d", v, w)
	}

	return nil
}

// MakeCurrent implements the hwrender.Context interface.
func (c *GLContext) MakeCurrent() error {
	if c.context == nil {
		return curated.Errorf("sdl: no GL context")
	}
	if err := c.window.GLMakeCurrent(c.context); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// DeleteContext implements the hwrender.Context interface.
func (c *GLContext) DeleteContext() {
	if c.context == nil {
		return
	}
	sdl.GLDeleteContext(c.context)
	c.context = nil
}

// Swap implements the hwrender.Context interface.
func (c *GLContext) Swap() {
	c.window.GLSwap()
}

// GetProcAddress implements the hwrender.Context interface.
func (c *GLContext) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}
