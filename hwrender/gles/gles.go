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

// Package gles implements the hwrender.GL interface with OpenGL ES.
package gles

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/hwrender"
)

type gles struct{}

// Load implements the hwrender.Loader type. Every function listed in
// hwrender.RequiredFunctions must be available.
func Load(getProcAddress func(name string) unsafe.Pointer) (hwrender.GL, error) {
	if n := hwrender.MissingFunction(getProcAddress); n != "" {
		return nil, curated.Errorf("gles: missing function %s", n)
	}
	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return nil, curated.Errorf("gles: %v", err)
	}
	return gles{}, nil
}

func (gles) GenFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return fbo
}

func (gles) BindFramebuffer(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
}

func (gles) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (gles) CheckFramebufferStatus() uint32 {
	return gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
}

func (gles) GenTexture(width, height int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

func (gles) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (gles) UpdateTexture(tex uint32, width, height int32, pix []byte) {
	if len(pix) < int(width*height*4) {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (gles) AttachTexture(tex uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
}

func (gles) GenRenderbuffer(format uint32, width, height int32) uint32 {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb)
	gl.RenderbufferStorage(gl.RENDERBUFFER, format, width, height)
	return rb
}

func (gles) DeleteRenderbuffer(rb uint32) {
	gl.DeleteRenderbuffers(1, &rb)
}

func (gles) AttachRenderbuffer(attachment uint32, rb uint32) {
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rb)
}

// infoLog is the maximum length of the shader and program logs
const infoLog = 512

func (gles) CompileShader(kind uint32, source string) (uint32, string) {
	shader := gl.CreateShader(kind)
	if shader == 0 {
		return 0, "cannot create shader"
	}

	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := strings.Repeat("\x00", infoLog)
		gl.GetShaderInfoLog(shader, infoLog, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, strings.TrimRight(log, "\x00")
	}

	return shader, ""
}

func (gles) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (gles) LinkProgram(vertex uint32, fragment uint32) (uint32, string) {
	program := gl.CreateProgram()
	if program == 0 {
		return 0, "cannot create program"
	}

	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := strings.Repeat("\x00", infoLog)
		gl.GetProgramInfoLog(program, infoLog, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, strings.TrimRight(log, "\x00")
	}

	return program, ""
}

func (gles) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (gles) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (gles) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (gles) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (gles) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (gles) DrawTexturedQuad(q hwrender.Quad) {
	gl.UseProgram(q.Program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.Texture)
	gl.Uniform1i(q.UniformTexture, 0)
	gl.UniformMatrix4fv(q.UniformMVP, 1, false, &q.MVP[0])

	// vertex data is in client memory
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	position := uint32(q.AttribPosition)
	texcoord := uint32(q.AttribTexCoord)

	gl.EnableVertexAttribArray(position)
	gl.EnableVertexAttribArray(texcoord)
	gl.VertexAttribPointer(position, 2, gl.FLOAT, false, 0, gl.Ptr(&q.Vertices[0]))
	gl.VertexAttribPointer(texcoord, 2, gl.FLOAT, false, 0, gl.Ptr(&q.TexCoord[0]))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.DisableVertexAttribArray(position)
	gl.DisableVertexAttribArray(texcoord)
}

func (gles) ReadPixels(width, height int32) ([]byte, error) {
	pix := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if err := gl.GetError(); err != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels error %#04x", err)
	}
	return pix, nil
}
