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

// Package hwrender hosts cores that draw with the GPU. The core renders into
// a framebuffer owned by the Pipeline and the Pipeline composites that
// framebuffer onto the display, scaled to fit and optionally rotated.
//
// Only OpenGL ES 2.0 contexts are supported. The GL interface abstracts the
// subset of GLES2 that the pipeline uses. The real implementation is in the
// gles sub-package and loads the entry points through the windowing layer
// with the Context interface.
package hwrender
