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
)

const vertexShader = `#version 100
attribute vec2 a_position;
attribute vec2 a_texcoord;
uniform mat4 u_mvp;
varying vec2 v_texcoord;
void main() {
	gl_Position = u_mvp * vec4(a_position, 0.0, 1.0);
	v_texcoord = a_texcoord;
}
`

const fragmentShader = `#version 100
precision mediump float;
varying vec2 v_texcoord;
uniform sampler2D u_texture;
void main() {
	gl_FragColor = texture2D(u_texture, v_texcoord);
}
`

// program is the shader program used to draw the framebuffer texture to the
// display.
type program struct {
	handle uint32

	mvp      int32
	texture  int32
	position int32
	texcoord int32
}

func (p *program) create(gl GL) error {
	vert, log := gl.CompileShader(VertexShader, vertexShader)
	if vert == 0 {
		return fmt.Errorf("vertex shader: %s", log)
	}
	defer gl.DeleteShader(vert)

	frag, log := gl.CompileShader(FragmentShader, fragmentShader)
	if frag == 0 {
		return fmt.Errorf("fragment shader: %s", log)
	}
	defer gl.DeleteShader(frag)

	p.handle, log = gl.LinkProgram(vert, frag)
	if p.handle == 0 {
		return fmt.Errorf("link: %s", log)
	}

	p.mvp = gl.UniformLocation(p.handle, "u_mvp")
	p.texture = gl.UniformLocation(p.handle, "u_texture")
	p.position = gl.AttribLocation(p.handle, "a_position")
	p.texcoord = gl.AttribLocation(p.handle, "a_texcoord")

	return nil
}

func (p *program) destroy(gl GL) {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
	}
	*p = program{}
}
