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

// Package options holds the options declared by a core and the per-game
// configuration files that override them.
//
// An OptionList implements the environment.Variables interface and so serves
// the core's variable requests directly. Options that are locked by a
// configuration file are shown to the user but cannot be changed.
//
// Configuration files have one option per line:
//
//	key = value
//	-key = value
//
// A leading hyphen locks the option.
package options
