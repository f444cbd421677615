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

package annotate

import (
	"github.com/padnotes/padnotes/replay"
)

// ClipRange returns the range of frames covered by a note for a press at the
// frame. The clip ends at the press and is shortened rather than starting
// before frame zero.
func ClipRange(frame int, clipLength int) (start int, end int) {
	return max(0, frame-clipLength), frame
}

// Collides returns true if any existing text note starts or ends at the
// frame.
func Collides(notes *replay.Notes, frame int) bool {
	f := int32(frame)
	for i := range notes.StartFrames {
		start := notes.StartFrames[i]
		if start == f || start+notes.FrameLengths[i] == f {
			return true
		}
	}
	return false
}

// Append adds a text note for the press at the frame. Returns false if the
// note was not added because it collides with an existing note.
func Append(notes *replay.Notes, frame int, clipLength int, message string) bool {
	if Collides(notes, frame) {
		return false
	}
	start, end := ClipRange(frame, clipLength)
	notes.AddRange(int32(start), int32(end), replay.Text(message))
	return true
}
