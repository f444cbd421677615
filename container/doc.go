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

// Package container reads and writes replay files. A replay file holds a
// replay.Recording and the replay.Notes that accompany it.
//
// There are two variants of the file. The primary variant is the plain
// binary layout described in fileformat.go. The compressed variant is the
// primary layout wrapped in an xz stream. Decode() accepts either variant,
// trying the primary variant first.
//
// WriteNotes() replaces the notes of an existing replay file. The recording
// in the file is preserved as it is and the file keeps its variant.
package container
