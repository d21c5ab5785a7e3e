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

// Package menu is the pagination and action resolution used by the pause
// menu and by the options lists.
//
// NavState knows nothing about what it paginates. It tracks the selected
// item and the window of visible items, and scrolls the window one row at a
// time. Wrapping from the bottom of the list to the top, or the top to the
// bottom, snaps the window to the first or last page.
//
// List and Item describe what is being paginated. GetAction() decides what a
// button press means for the selected item.
package menu
