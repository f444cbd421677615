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

package replay

// NumPorts is the number of controller ports in a replay. Not every port
// will be in use.
const NumPorts = 4

// NameLen is the size of the fixed display-name buffer for each port.
const NameLen = 31

// Frame is one tick of the game for a single participant.
type Frame struct {
	Buttons Buttons
}

// Pressed returns true if any of the buttons in the mask are held during
// the frame.
func (f Frame) Pressed(mask Buttons) bool {
	return f.Buttons&mask != 0
}

// Recording is the static information and the frame data of a replay. The
// index of a frame in its sequence is the frame number used throughout the
// package.
type Recording struct {
	// display names of each participant. the names are zero padded and are
	// not guaranteed to be valid UTF-8
	Names [NumPorts][NameLen]byte

	// frame sequence for each port. the slice is nil if the port was not used
	Frames [NumPorts][]Frame
}

// SetName copies the name into the name buffer for the port. Names longer
// than NameLen are truncated.
func (rec *Recording) SetName(port int, name string) {
	rec.Names[port] = [NameLen]byte{}
	copy(rec.Names[port][:], name)
}
