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

// Package pausemenu is the menu shown when the game is paused.
//
// The menu offers Continue, Save, Load, Options and Quit. Left and right
// change the disc of a multi-disc game when Continue is selected, and change
// the save slot when Save or Load is selected. In simple mode the Options
// item is replaced by Reset.
//
// Session holds the state that outlives a single visit to the menu: the
// selected save slot, the discs of the game's playlist and the paths of the
// files that accompany a save state. For each slot there is a bitmap
// thumbnail and, for multi-disc games, a text file recording the disc that
// was in use when the state was saved. The slot last used is recorded in a
// slot tracking file so that it is selected again next time. These files are
// shared with the launcher and their names must not change.
//
// Slot 8 is reserved by the launcher to mark a game that should be resumed.
// It is never offered as a save slot and reads as slot 0.
package pausemenu
