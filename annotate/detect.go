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
	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// NoFramesForParticipant is the pattern of the error returned when the
// selected port has no frames.
const NoFramesForParticipant = "annotate: no frames for port %d"

// FramesForParticipant returns the frame sequence for the port.
func FramesForParticipant(rec *replay.Recording, port int) ([]replay.Frame, error) {
	if port < 0 || port >= replay.NumPorts || rec.Frames[port] == nil {
		return nil, curated.Errorf(NoFramesForParticipant, port)
	}
	return rec.Frames[port], nil
}

// DetectPresses returns the index of every frame where the button is held
// and was not held on the previous frame. The first frame can never be a
// press.
func DetectPresses(frames []replay.Frame, button replay.Buttons) []int {
	var presses []int
	for i := 1; i < len(frames); i++ {
		if !frames[i-1].Pressed(button) && frames[i].Pressed(button) {
			presses = append(presses, i)
		}
	}
	return presses
}
