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
	"image"
	"unsafe"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/logger"
)

// default size of the display the framebuffer is composited onto.
const (
	DefaultDisplayWidth  = 1280
	DefaultDisplayHeight = 720
)

// Pipeline owns the GL context, the framebuffer the core draws into and the
// program used to draw the framebuffer to the display. A Pipeline is not safe
// for concurrent use; all methods must be called from the thread that owns
// the window.
type Pipeline struct {
	ctx  Context
	load Loader
	gl   GL

	// copy of the core's request. the context reset and destroy functions
	// are called through this
	request environment.HWRenderRequest

	fb   framebuffer
	prog program

	// texture used by PresentImage(). created on first use
	overlay       uint32
	overlayWidth  int32
	overlayHeight int32

	hasContext   bool
	enabled      bool
	contextReady bool

	displayWidth  int32
	displayHeight int32
}

// NewPipeline is the preferred method of initialisation for the Pipeline type.
func NewPipeline(ctx Context, load Loader) *Pipeline {
	return &Pipeline{
		ctx:           ctx,
		load:          load,
		displayWidth:  DefaultDisplayWidth,
		displayHeight: DefaultDisplayHeight,
	}
}

// SetDisplaySize changes the size of the area the framebuffer is composited
// onto. Values of zero or less are ignored.
func (p *Pipeline) SetDisplaySize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.displayWidth = int32(width)
	p.displayHeight = int32(height)
}

// Supported implements the environment.HWRenderer interface. Only OpenGL ES
// 2.0 is supported.
func (p *Pipeline) Supported(t environment.HWContextType, major, minor uint32) bool {
	switch t {
	case environment.HWContextOpenGLES2:
		return true
	case environment.HWContextOpenGLES3, environment.HWContextOpenGLESVersion:
		logger.Logf(logger.Allow, "hwrender", "%s not supported. core may fall back to OpenGL ES 2", t)
	}
	return false
}

// Init creates the context, framebuffer and program for the request. The
// framebuffer is created with the maximum size the core will render at. If
// initialisation fails at any point then everything created up to that
// point is released and the Pipeline is left disabled.
//
// The core's context reset function is called on success.
func (p *Pipeline) Init(req *environment.HWRenderRequest, maxWidth, maxHeight uint32) bool {
	if req == nil {
		return false
	}
	if p.enabled {
		logger.Log(logger.Allow, "hwrender", "already initialised")
		return false
	}
	if !p.Supported(req.ContextType, req.VersionMajor, req.VersionMinor) {
		logger.Logf(logger.Allow, "hwrender", "unsupported context type %s", req.ContextType)
		return false
	}

	logger.Logf(logger.Allow, "hwrender", "initialising %s context (v%d.%d depth=%v stencil=%v max=%dx%d)",
		req.ContextType, req.VersionMajor, req.VersionMinor, req.Depth, req.Stencil, maxWidth, maxHeight)

	if err := p.init(req, maxWidth, maxHeight); err != nil {
		logger.Logf(logger.Allow, "hwrender", "%v", err)
		p.release()
		return false
	}

	p.request = *req
	p.enabled = true
	p.contextReady = true

	logger.Logf(logger.Allow, "hwrender", "framebuffer %dx%d ready", maxWidth, maxHeight)

	p.ContextReset()

	return true
}

func (p *Pipeline) init(req *environment.HWRenderRequest, maxWidth, maxHeight uint32) error {
	if p.ctx == nil || p.load == nil {
		return fmt.Errorf("no context available")
	}

	if err := p.ctx.CreateContext(2, 0); err != nil {
		return fmt.Errorf("context: %w", err)
	}
	p.hasContext = true

	if err := p.ctx.MakeCurrent(); err != nil {
		return fmt.Errorf("context: %w", err)
	}

	var err error
	p.gl, err = p.load(p.ctx.GetProcAddress)
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	if err := p.fb.create(p.gl, maxWidth, maxHeight, req.Depth, req.Stencil); err != nil {
		return fmt.Errorf("framebuffer: %w", err)
	}

	if err := p.prog.create(p.gl); err != nil {
		return fmt.Errorf("shader: %w", err)
	}

	return nil
}

// release deletes GL objects and the context in the reverse order of
// creation. It is safe to call on a partially initialised Pipeline.
func (p *Pipeline) release() {
	if p.gl != nil {
		p.deleteOverlay()
		p.prog.destroy(p.gl)
		p.fb.destroy(p.gl)
	}
	if p.hasContext {
		p.ctx.DeleteContext()
	}

	p.gl = nil
	p.hasContext = false
	p.enabled = false
	p.contextReady = false
	p.request = environment.HWRenderRequest{}
}

// Shutdown calls the core's context destroy function and releases all
// resources. It is safe to call Shutdown more than once.
func (p *Pipeline) Shutdown() {
	if !p.enabled && !p.hasContext {
		return
	}

	logger.Log(logger.Allow, "hwrender", "shutting down")

	if p.contextReady && p.request.ContextDestroy != nil {
		p.MakeCurrent()
		p.request.ContextDestroy()
	}

	p.release()
}

// IsEnabled returns true if the Pipeline has been initialised and the context
// is ready for use.
func (p *Pipeline) IsEnabled() bool {
	return p != nil && p.enabled && p.contextReady
}

// CurrentFramebuffer returns the framebuffer the core should draw into.
func (p *Pipeline) CurrentFramebuffer() uintptr {
	return uintptr(p.fb.fbo)
}

// ProcAddress returns the address of the named GL function.
func (p *Pipeline) ProcAddress(name string) unsafe.Pointer {
	if p.ctx == nil {
		return nil
	}
	return p.ctx.GetProcAddress(name)
}

// MakeCurrent makes the pipeline's context current. It does nothing if no
// context has been created.
func (p *Pipeline) MakeCurrent() {
	if !p.hasContext {
		return
	}
	if err := p.ctx.MakeCurrent(); err != nil {
		logger.Logf(logger.Allow, "hwrender", "%v", err)
	}
}

// ContextReset calls the core's context reset function.
func (p *Pipeline) ContextReset() {
	if !p.IsEnabled() || p.request.ContextReset == nil {
		return
	}
	p.MakeCurrent()
	p.request.ContextReset()
}

// BindFBO binds the core's framebuffer.
func (p *Pipeline) BindFBO() {
	if !p.IsEnabled() {
		return
	}
	p.gl.BindFramebuffer(p.fb.fbo)
}

// FramebufferSize returns the current size of the core's framebuffer.
func (p *Pipeline) FramebufferSize() (uint32, uint32) {
	return p.fb.width, p.fb.height
}

// viewport returns the largest area of the display with the same aspect
// ratio as the source, centred on the display.
func viewport(srcWidth, srcHeight, dstWidth, dstHeight int32) (x, y, w, h int32) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0, 0, dstWidth, dstHeight
	}

	srcAspect := float32(srcWidth) / float32(srcHeight)
	dstAspect := float32(dstWidth) / float32(dstHeight)

	if srcAspect > dstAspect {
		// letterbox
		w = dstWidth
		h = int32(float32(dstWidth) / srcAspect)
		y = (dstHeight - h) / 2
	} else {
		// pillarbox
		h = dstHeight
		w = int32(float32(dstHeight) * srcAspect)
		x = (dstWidth - w) / 2
	}

	return x, y, w, h
}

// Present draws the region of the framebuffer the core rendered into onto the
// display and swaps buffers. The rotation value is the number of 90 degree
// steps counter-clockwise.
//
// Present does nothing if the pipeline is not enabled.
func (p *Pipeline) Present(width, height uint32, rotation uint) {
	if !p.IsEnabled() {
		return
	}

	p.MakeCurrent()
	p.gl.BindFramebuffer(0)

	srcWidth, srcHeight := int32(width), int32(height)
	if rotation%2 == 1 {
		srcWidth, srcHeight = srcHeight, srcWidth
	}
	p.gl.Viewport(viewport(srcWidth, srcHeight, p.displayWidth, p.displayHeight))
	p.gl.Clear(0, 0, 0, 1)

	// portion of the framebuffer texture that contains the frame
	var sx, sy float32
	if p.fb.width > 0 && p.fb.height > 0 {
		sx = float32(width) / float32(p.fb.width)
		sy = float32(height) / float32(p.fb.height)
	}

	p.gl.DrawTexturedQuad(Quad{
		Program:        p.prog.handle,
		Texture:        p.fb.texture,
		MVP:            mvp(rotation),
		Vertices:       [8]float32{0, 0, 1, 0, 0, 1, 1, 1},
		TexCoord:       [8]float32{0, 0, sx, 0, 0, sy, sx, sy},
		UniformMVP:     p.prog.mvp,
		UniformTexture: p.prog.texture,
		AttribPosition: p.prog.position,
		AttribTexCoord: p.prog.texcoord,
	})

	p.ctx.Swap()
}

// ResizeFBO recreates the framebuffer with a new size. If the framebuffer
// cannot be recreated the Pipeline is disabled and false is returned.
func (p *Pipeline) ResizeFBO(width, height uint32) bool {
	if !p.enabled {
		return false
	}
	if width == p.fb.width && height == p.fb.height {
		return true
	}

	logger.Logf(logger.Allow, "hwrender", "resizing framebuffer %dx%d -> %dx%d", p.fb.width, p.fb.height, width, height)

	p.MakeCurrent()
	p.fb.destroy(p.gl)

	if err := p.fb.create(p.gl, width, height, p.request.Depth, p.request.Stencil); err != nil {
		logger.Logf(logger.Allow, "hwrender", "framebuffer: %v", err)
		p.enabled = false
		return false
	}

	return true
}

// GrowFBO resizes the framebuffer if it is smaller than the requested size in
// either dimension. The framebuffer is never made smaller.
func (p *Pipeline) GrowFBO(width, height uint32) bool {
	if !p.IsEnabled() {
		return false
	}
	if width <= p.fb.width && height <= p.fb.height {
		return true
	}
	return p.ResizeFBO(max(width, p.fb.width), max(height, p.fb.height))
}

func (p *Pipeline) deleteOverlay() {
	if p.overlay != 0 {
		p.gl.DeleteTexture(p.overlay)
	}
	p.overlay = 0
	p.overlayWidth = 0
	p.overlayHeight = 0
}

// PresentImage draws a software image over the whole display and swaps
// buffers. It is used to show the pause menu while the core renders with the
// GPU. The image is stretched to the display.
//
// PresentImage does nothing if the pipeline is not enabled.
func (p *Pipeline) PresentImage(img *image.RGBA) {
	if !p.IsEnabled() || img == nil {
		return
	}

	w := int32(img.Rect.Dx())
	h := int32(img.Rect.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	p.MakeCurrent()

	if w != p.overlayWidth || h != p.overlayHeight {
		p.deleteOverlay()
		p.overlay = p.gl.GenTexture(w, h)
		p.overlayWidth = w
		p.overlayHeight = h
	}

	pix := img.Pix
	if img.Stride != int(w)*4 {
		pix = make([]byte, 0, w*h*4)
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			i := img.PixOffset(img.Rect.Min.X, y)
			pix = append(pix, img.Pix[i:i+int(w)*4]...)
		}
	}
	p.gl.UpdateTexture(p.overlay, w, h, pix)

	p.gl.BindFramebuffer(0)
	p.gl.Viewport(0, 0, p.displayWidth, p.displayHeight)
	p.gl.Clear(0, 0, 0, 1)

	// the first row of the texture is the top of the image
	p.gl.DrawTexturedQuad(Quad{
		Program:        p.prog.handle,
		Texture:        p.overlay,
		MVP:            mvp(0),
		Vertices:       [8]float32{0, 0, 1, 0, 0, 1, 1, 1},
		TexCoord:       [8]float32{0, 1, 1, 1, 0, 0, 1, 0},
		UniformMVP:     p.prog.mvp,
		UniformTexture: p.prog.texture,
		AttribPosition: p.prog.position,
		AttribTexCoord: p.prog.texcoord,
	})

	p.ctx.Swap()
}
