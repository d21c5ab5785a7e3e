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

import "unsafe"

// GL enumerations used by the pipeline. The values are those defined by the
// OpenGL ES 2.0 specification so implementations of GL can pass them
// straight through.
const (
	FramebufferComplete   = 0x8cd5
	DepthAttachment       = 0x8d00
	StencilAttachment     = 0x8d20
	DepthComponent16      = 0x81a5
	Depth24Stencil8       = 0x88f0
	VertexShader          = 0x8b31
	FragmentShader        = 0x8b30
	ColorBufferBit        = 0x4000
	InvalidLocation int32 = -1
)

// GL is the subset of OpenGL ES 2.0 needed by the Pipeline. Object handles
// of zero mean no object.
type GL interface {
	GenFramebuffer() uint32
	BindFramebuffer(fbo uint32)
	DeleteFramebuffer(fbo uint32)
	CheckFramebufferStatus() uint32

	// GenTexture creates a texture with the given dimensions. The texture
	// is RGBA, linear filtered and clamped at the edges. It is left bound
	GenTexture(width, height int32) uint32
	DeleteTexture(tex uint32)
	AttachTexture(tex uint32)

	// UpdateTexture replaces the content of the texture. The pixel data is
	// RGBA with the first row being the top row of the image
	UpdateTexture(tex uint32, width, height int32, pix []byte)

	GenRenderbuffer(format uint32, width, height int32) uint32
	DeleteRenderbuffer(rb uint32)
	AttachRenderbuffer(attachment uint32, rb uint32)

	// CompileShader returns the handle of the compiled shader. A handle of
	// zero means the compilation failed and the returned string will
	// contain the info log
	CompileShader(kind uint32, source string) (uint32, string)
	DeleteShader(shader uint32)

	// LinkProgram returns the handle of the linked program. A handle of
	// zero means the link failed and the returned string will contain the
	// info log
	LinkProgram(vertex uint32, fragment uint32) (uint32, string)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	Viewport(x, y, width, height int32)
	Clear(r, g, b, a float32)

	// DrawTexturedQuad draws a triangle strip of four vertices with the
	// program and texture bound to unit zero
	DrawTexturedQuad(q Quad)

	// ReadPixels returns the RGBA content of the bound framebuffer. The
	// first row returned is the bottom row
	ReadPixels(width, height int32) ([]byte, error)
}

// Quad is the information required by DrawTexturedQuad.
type Quad struct {
	Program  uint32
	Texture  uint32
	MVP      [16]float32
	Vertices [8]float32
	TexCoord [8]float32

	// locations in the program
	UniformMVP     int32
	UniformTexture int32
	AttribPosition int32
	AttribTexCoord int32
}

// Context is the windowing layer's GL context.
type Context interface {
	// CreateContext creates an OpenGL ES context with the requested
	// version. The context must be made current with MakeCurrent()
	CreateContext(major, minor int) error
	MakeCurrent() error
	DeleteContext()
	Swap()

	// GetProcAddress returns nil if the function is not available
	GetProcAddress(name string) unsafe.Pointer
}

// Loader prepares a GL implementation with the function entry points made
// available by the Context. An error is returned if any required entry point
// is missing.
type Loader func(getProcAddress func(name string) unsafe.Pointer) (GL, error)

// RequiredFunctions lists the entry points that must be available through
// the Context for the Pipeline to work.
var RequiredFunctions = []string{
	"glGenFramebuffers", "glBindFramebuffer", "glGenTextures", "glBindTexture",
	"glTexImage2D", "glTexSubImage2D", "glTexParameteri", "glFramebufferTexture2D", "glGenRenderbuffers",
	"glBindRenderbuffer", "glRenderbufferStorage", "glFramebufferRenderbuffer",
	"glCheckFramebufferStatus", "glDeleteFramebuffers", "glDeleteTextures",
	"glDeleteRenderbuffers", "glCreateShader", "glShaderSource", "glCompileShader",
	"glGetShaderiv", "glGetShaderInfoLog", "glDeleteShader", "glCreateProgram",
	"glAttachShader", "glLinkProgram", "glGetProgramiv", "glGetProgramInfoLog",
	"glDeleteProgram", "glClearColor", "glClear", "glUseProgram",
	"glGetUniformLocation", "glUniformMatrix4fv", "glUniform1i", "glActiveTexture",
	"glGetAttribLocation", "glEnableVertexAttribArray", "glDisableVertexAttribArray",
	"glVertexAttribPointer", "glDrawArrays", "glViewport", "glDisable",
	"glColorMask", "glBindBuffer", "glReadPixels",
}

// MissingFunction returns the name of the first function in RequiredFunctions
// that is not available. Returns the empty string if all functions are
// available.
func MissingFunction(getProcAddress func(name string) unsafe.Pointer) string {
	for _, n := range RequiredFunctions {
		if getProcAddress(n) == nil {
			return n
		}
	}
	return ""
}
