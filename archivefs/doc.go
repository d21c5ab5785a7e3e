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

// Package archivefs opens the game selected by the user. Games can be stored
// in ZIP, 7z or RAR archives, in which case the first file in the archive
// with an extension supported by the core is extracted to a temporary
// directory.
//
// Archives are recognised by the magic bytes at the start of the file and
// then by the file extension.
package archivefs
