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

package hwrender_test

import (
	"errors"
	"image"
	"testing"
	"unsafe"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/hwrender"
	"github.com/minplayer/minplayer/test"
)

// fakeGL records the objects that are alive and the calls that matter to the
// tests
type fakeGL struct {
	next  uint32
	alive map[uint32]string

	// framebuffer status returned after the given number of calls to
	// CheckFramebufferStatus
	failFramebufferAfter int
	checks               int

	failVertex bool
	failLink   bool

	bound     uint32
	viewport  [4]int32
	quads     []hwrender.Quad
	pixels    []byte
	renderbuf []uint32
	uploads   [][]byte
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		alive:                make(map[uint32]string),
		failFramebufferAfter: -1,
	}
}

func (g *fakeGL) gen(kind string) uint32 {
	g.next++
	g.alive[g.next] = kind
	return g.next
}

func (g *fakeGL) del(h uint32) {
	delete(g.alive, h)
}

func (g *fakeGL) GenFramebuffer() uint32       { return g.gen("framebuffer") }
func (g *fakeGL) BindFramebuffer(fbo uint32)   { g.bound = fbo }
func (g *fakeGL) DeleteFramebuffer(fbo uint32) { g.del(fbo) }
func (g *fakeGL) GenTexture(w, h int32) uint32 { return g.gen("texture") }
func (g *fakeGL) DeleteTexture(tex uint32)     { g.del(tex) }
func (g *fakeGL) AttachTexture(tex uint32)     {}

func (g *fakeGL) UpdateTexture(tex uint32, w, h int32, pix []byte) {
	g.uploads = append(g.uploads, pix)
}

func (g *fakeGL) DeleteRenderbuffer(rb uint32)     { g.del(rb) }
func (g *fakeGL) DeleteShader(shader uint32)       { g.del(shader) }
func (g *fakeGL) DeleteProgram(program uint32)     { g.del(program) }
func (g *fakeGL) Viewport(x, y, w, h int32)        { g.viewport = [4]int32{x, y, w, h} }
func (g *fakeGL) Clear(r, gr, b, a float32)        {}
func (g *fakeGL) DrawTexturedQuad(q hwrender.Quad) { g.quads = append(g.quads, q) }

func (g *fakeGL) CheckFramebufferStatus() uint32 {
	g.checks++
	if g.failFramebufferAfter >= 0 && g.checks > g.failFramebufferAfter {
		return 0
	}
	return hwrender.FramebufferComplete
}

func (g *fakeGL) GenRenderbuffer(format uint32, w, h int32) uint32 {
	g.renderbuf = append(g.renderbuf, format)
	return g.gen("renderbuffer")
}

func (g *fakeGL) AttachRenderbuffer(attachment uint32, rb uint32) {}

func (g *fakeGL) CompileShader(kind uint32, source string) (uint32, string) {
	if kind == hwrender.VertexShader && g.failVertex {
		return 0, "syntax error"
	}
	return g.gen("shader"), ""
}

func (g *fakeGL) LinkProgram(vertex uint32, fragment uint32) (uint32, string) {
	if g.failLink {
		return 0, "link error"
	}
	return g.gen("program"), ""
}

func (g *fakeGL) UniformLocation(program uint32, name string) int32 {
	return int32(len(name))
}

func (g *fakeGL) AttribLocation(program uint32, name string) int32 {
	return int32(len(name)) + 100
}

func (g *fakeGL) ReadPixels(w, h int32) ([]byte, error) {
	if g.pixels == nil {
		return nil, errors.New("no pixels")
	}
	return g.pixels, nil
}

type fakeContext struct {
	created bool
	deleted bool
	swaps   int
	missing bool
}

func (c *fakeContext) CreateContext(major, minor int) error {
	c.created = true
	return nil
}

func (c *fakeContext) MakeCurrent() error { return nil }
func (c *fakeContext) DeleteContext()     { c.deleted = true }
func (c *fakeContext) Swap()              { c.swaps++ }

func (c *fakeContext) GetProcAddress(name string) unsafe.Pointer {
	if c.missing && name == "glReadPixels" {
		return nil
	}
	var x int
	return unsafe.Pointer(&x)
}

func newPipeline(g *fakeGL, c *fakeContext) *hwrender.Pipeline {
	return hwrender.NewPipeline(c, func(getProcAddress func(string) unsafe.Pointer) (hwrender.GL, error) {
		if n := hwrender.MissingFunction(getProcAddress); n != "" {
			return nil, errors.New(n)
		}
		return g, nil
	})
}

func TestSupported(t *testing.T) {
	p := hwrender.NewPipeline(nil, nil)
	test.ExpectedSuccess(t, p.Supported(environment.HWContextOpenGLES2, 2, 0))
	test.ExpectedFailure(t, p.Supported(environment.HWContextOpenGLES3, 3, 0))
	test.ExpectedFailure(t, p.Supported(environment.HWContextOpenGL, 2, 1))
	test.ExpectedFailure(t, p.Supported(environment.HWContextVulkan, 1, 0))
	test.ExpectedFailure(t, p.Supported(environment.HWContextNone, 0, 0))
}

func TestInitAndShutdown(t *testing.T) {
	g := newFakeGL()
	c := &fakeContext{}
	p := newPipeline(g, c)

	var resets, destroys int
	req := &environment.HWRenderRequest{
		ContextType:    environment.HWContextOpenGLES2,
		VersionMajor:   2,
		Depth:          true,
		Stencil:        true,
		ContextReset:   func() { resets++ },
		ContextDestroy: func() { destroys++ },
	}

	test.ExpectedSuccess(t, p.Init(req, 640, 480))
	test.ExpectedSuccess(t, p.IsEnabled())
	test.Equate(t, resets, 1)
	test.ExpectedSuccess(t, p.CurrentFramebuffer() != 0)
	test.Equate(t, len(g.renderbuf), 1)
	test.Equate(t, g.renderbuf[0], hwrender.Depth24Stencil8)

	// shaders are deleted once linked. framebuffer, texture, renderbuffer
	// and program remain
	test.Equate(t, len(g.alive), 4)

	w, h := p.FramebufferSize()
	test.Equate(t, w, 640)
	test.Equate(t, h, 480)

	// a second init is refused
	test.ExpectedFailure(t, p.Init(req, 640, 480))

	p.Shutdown()
	test.Equate(t, destroys, 1)
	test.ExpectedFailure(t, p.IsEnabled())
	test.Equate(t, len(g.alive), 0)
	test.ExpectedSuccess(t, c.deleted)

	// shutdown is idempotent
	p.Shutdown()
	test.Equate(t, destroys, 1)
}

func TestInitFailure(t *testing.T) {
	req := &environment.HWRenderRequest{
		ContextType: environment.HWContextOpenGLES2,
		Depth:       true,
	}

	t.Run("unsupported", func(t *testing.T) {
		g := newFakeGL()
		c := &fakeContext{}
		p := newPipeline(g, c)
		test.ExpectedFailure(t, p.Init(&environment.HWRenderRequest{ContextType: environment.HWContextVulkan}, 640, 480))
		test.ExpectedFailure(t, c.created)
	})

	t.Run("missing function", func(t *testing.T) {
		g := newFakeGL()
		c := &fakeContext{missing: true}
		p := newPipeline(g, c)
		test.ExpectedFailure(t, p.Init(req, 640, 480))
		test.ExpectedSuccess(t, c.deleted)
		test.ExpectedFailure(t, p.IsEnabled())
	})

	t.Run("incomplete framebuffer", func(t *testing.T) {
		g := newFakeGL()
		g.failFramebufferAfter = 0
		c := &fakeContext{}
		p := newPipeline(g, c)
		test.ExpectedFailure(t, p.Init(req, 640, 480))
		test.Equate(t, len(g.alive), 0)
		test.ExpectedSuccess(t, c.deleted)
	})

	t.Run("shader compilation", func(t *testing.T) {
		g := newFakeGL()
		g.failVertex = true
		c := &fakeContext{}
		p := newPipeline(g, c)
		test.ExpectedFailure(t, p.Init(req, 640, 480))
		test.Equate(t, len(g.alive), 0)
		test.ExpectedSuccess(t, c.deleted)
	})

	t.Run("program link", func(t *testing.T) {
		g := newFakeGL()
		g.failLink = true
		c := &fakeContext{}
		p := newPipeline(g, c)
		test.ExpectedFailure(t, p.Init(req, 640, 480))
		test.Equate(t, len(g.alive), 0)
	})
}

func TestRenderbufferFormats(t *testing.T) {
	for _, tc := range []struct {
		depth, stencil bool
		formats        []uint32
	}{
		{false, false, nil},
		{true, false, []uint32{hwrender.DepthComponent16}},
		{false, true, []uint32{hwrender.Depth24Stencil8}},
		{true, true, []uint32{hwrender.Depth24Stencil8}},
	} {
		g := newFakeGL()
		p := newPipeline(g, &fakeContext{})
		req := &environment.HWRenderRequest{
			ContextType: environment.HWContextOpenGLES2,
			Depth:       tc.depth,
			Stencil:     tc.stencil,
		}
		test.ExpectedSuccess(t, p.Init(req, 320, 240))
		test.Equate(t, len(g.renderbuf), len(tc.formats))
		for i := range tc.formats {
			test.Equate(t, g.renderbuf[i], tc.formats[i])
		}
	}
}

func TestPresent(t *testing.T) {
	g := newFakeGL()
	c := &fakeContext{}
	p := newPipeline(g, c)

	// present before init does nothing
	p.Present(320, 240, 0)
	test.Equate(t, len(g.quads), 0)
	test.Equate(t, c.swaps, 0)

	req := &environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2}
	test.ExpectedSuccess(t, p.Init(req, 640, 480))

	// 4:3 frame on a 16:9 display is pillarboxed
	p.Present(320, 240, 0)
	test.Equate(t, c.swaps, 1)
	test.Equate(t, g.bound, 0)
	test.DemandEquality(t, g.viewport, [4]int32{160, 0, 960, 720})

	q := g.quads[0]
	test.Equate(t, q.TexCoord[2], float32(0.5))
	test.Equate(t, q.TexCoord[5], float32(0.5))
	test.Equate(t, q.MVP[0], float32(2))
	test.Equate(t, q.MVP[5], float32(2))
	test.Equate(t, q.MVP[10], float32(-1))
	test.Equate(t, q.MVP[12], float32(-1))
	test.Equate(t, q.MVP[13], float32(-1))
	test.Equate(t, q.MVP[15], float32(1))

	// wide frame is letterboxed
	p.Present(640, 160, 0)
	test.DemandEquality(t, g.viewport, [4]int32{0, 200, 1280, 320})

	// rotation by 90 degrees swaps the aspect ratio
	p.Present(640, 160, 1)
	test.DemandEquality(t, g.viewport, [4]int32{550, 0, 180, 720})
	q = g.quads[len(g.quads)-1]
	test.Equate(t, q.MVP[0], float32(0))
	test.Equate(t, q.MVP[1], float32(2))
	test.Equate(t, q.MVP[4], float32(-2))
	test.Equate(t, q.MVP[5], float32(0))
}

func TestPresentImage(t *testing.T) {
	g := newFakeGL()
	c := &fakeContext{}
	p := newPipeline(g, c)

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Pix[0] = 0xff

	p.PresentImage(img)
	test.Equate(t, len(g.uploads), 0)

	req := &environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2}
	test.DemandSuccess(t, p.Init(req, 640, 480))
	textures := 0
	for _, k := range g.alive {
		if k == "texture" {
			textures++
		}
	}

	p.PresentImage(img)
	p.PresentImage(img)
	test.Equate(t, len(g.uploads), 2)
	test.Equate(t, int(g.uploads[0][0]), 0xff)
	test.Equate(t, c.swaps, 2)
	test.DemandEquality(t, g.viewport, [4]int32{0, 0, 1280, 720})

	// the overlay texture is created once and is not the framebuffer's texture
	q := g.quads[len(g.quads)-1]
	test.Equate(t, g.alive[q.Texture], "texture")
	n := 0
	for _, k := range g.alive {
		if k == "texture" {
			n++
		}
	}
	test.Equate(t, n, textures+1)

	// a sub-image with a stride wider than the image is packed
	sub := image.NewRGBA(image.Rect(0, 0, 8, 2)).SubImage(image.Rect(2, 0, 4, 2)).(*image.RGBA)
	p.PresentImage(sub)
	test.Equate(t, len(g.uploads[2]), 2*2*4)

	p.Shutdown()
	test.Equate(t, len(g.alive), 0)
}

func TestGrowFBO(t *testing.T) {
	g := newFakeGL()
	c := &fakeContext{}
	p := newPipeline(g, c)

	test.ExpectedFailure(t, p.GrowFBO(640, 480))

	req := &environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2}
	test.ExpectedSuccess(t, p.Init(req, 640, 480))

	// a smaller frame fits without recreating the framebuffer
	test.ExpectedSuccess(t, p.GrowFBO(320, 240))
	test.Equate(t, g.checks, 1)

	// only the dimension that is too small grows
	test.ExpectedSuccess(t, p.GrowFBO(512, 512))
	test.Equate(t, g.checks, 2)
	w, h := p.FramebufferSize()
	test.Equate(t, w, 640)
	test.Equate(t, h, 512)

	p.Shutdown()
	test.Equate(t, len(g.alive), 0)
}

func TestResizeFailure(t *testing.T) {
	g := newFakeGL()
	c := &fakeContext{}
	p := newPipeline(g, c)

	req := &environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2}
	test.ExpectedSuccess(t, p.Init(req, 640, 480))

	// same size is not a resize
	test.ExpectedSuccess(t, p.ResizeFBO(640, 480))
	test.Equate(t, g.checks, 1)

	test.ExpectedSuccess(t, p.ResizeFBO(800, 600))
	w, h := p.FramebufferSize()
	test.Equate(t, w, 800)
	test.Equate(t, h, 600)

	g.failFramebufferAfter = g.checks
	test.ExpectedFailure(t, p.ResizeFBO(1024, 768))
	test.ExpectedFailure(t, p.IsEnabled())

	// subsequent presents are no-ops
	swaps := c.swaps
	p.Present(320, 240, 0)
	test.Equate(t, c.swaps, swaps)

	// and further resizes are refused
	test.ExpectedFailure(t, p.ResizeFBO(640, 480))

	p.Shutdown()
	test.Equate(t, len(g.alive), 0)
	test.ExpectedSuccess(t, c.deleted)
}

func TestCapture(t *testing.T) {
	g := newFakeGL()
	p := newPipeline(g, &fakeContext{})

	_, err := p.Capture(2, 2)
	test.ExpectedFailure(t, err)

	req := &environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2}
	test.ExpectedSuccess(t, p.Init(req, 2, 2))

	_, err = p.Capture(0, 0)
	test.ExpectedFailure(t, err)

	// bottom row is red, top row is blue
	g.pixels = []byte{
		0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff,
		0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff,
	}

	f, err := p.Capture(2, 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, f.Pix[0], uint16(0x001f))
	test.Equate(t, f.Pix[1], uint16(0x001f))
	test.Equate(t, f.Pix[2], uint16(0xf800))
	test.Equate(t, f.Pix[3], uint16(0xf800))
	test.Equate(t, g.bound, 0)

	c := hwrender.RGB565ToRGBA(f.Pix[2])
	test.Equate(t, int(c.R), 0xff)
	test.Equate(t, int(c.G), 0)
	test.Equate(t, int(c.B), 0)

	test.ExpectedSuccess(t, f.Bounds().Dx() == 2)
}
