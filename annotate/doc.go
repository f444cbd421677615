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

// Package annotate finds the frames at which a participant pressed the
// trigger button and adds a text note for each of them to the replay's note
// store.
//
// The work is in three stages. SelectParticipant() finds the port of the
// participant whose name matches the identity filter. DetectPresses() finds
// the rising edges of the trigger button in the frames for that port. Append()
// adds a note ending at each press, unless a note already starts or ends at
// that frame. Run() performs all three stages in order.
//
// Append() is what makes re-running the tool on an already annotated replay
// harmless: every press collides with the note added on the previous run and
// is skipped.
package annotate
