// This file is part of padnotes.
//
// padnotes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padnotes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padnotes.  If not, see <https://www.gnu.org/licenses/>.

// Package replay holds the in-memory shape of a game replay: the static
// participant information, the per-port frame sequences and the note store
// that accompanies the replay.
//
// The Notes type is a column store. Text notes are held in four parallel
// sequences and image notes in another four. The data offsets of each note
// refer to the position in the shared data blob at the moment the note was
// added, so notes must only ever be appended:
//
//	notes.AddRange(100, 400, replay.Text("Auto-inserted note"))
//
// The container package is responsible for reading and writing these types
// to disk.
package replay
