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

// Package platform is the seam between the player and the device it runs on.
//
// The Platform interface covers the small set of things the player needs
// from the device: polling the buttons, presenting a software frame,
// changing the CPU speed and enabling or disabling sleep. The SDL type
// implements Platform with SDL2 for the window and input and with sysfs for
// power management.
//
// GLContext implements hwrender.Context for an SDL window so that the
// hardware render pipeline can create an OpenGL ES context.
package platform
