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
	"fmt"

	"github.com/padnotes/padnotes/logger"
	"github.com/padnotes/padnotes/replay"
)

// Result is a summary of the work done by Run().
type Result struct {
	// the port of the selected participant
	Port int

	// the frames at which the trigger button was pressed
	Presses []int

	// number of notes added to the store and the number of presses skipped
	// because of a collision with an existing note
	Added   int
	Skipped int
}

func (r Result) String() string {
	return fmt.Sprintf("port %d: %d presses, %d added, %d skipped", r.Port, len(r.Presses), r.Added, r.Skipped)
}

// Run adds a note to the store for every press of the trigger button by the
// participant selected by the configuration. The store is only changed if
// the participant and their frames are found.
func Run(rec *replay.Recording, notes *replay.Notes, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	port, err := SelectParticipant(rec.Names, cfg.IdentityFilter)
	if err != nil {
		return Result{}, err
	}
	logger.Logf(logger.Allow, "annotate", "participant %q at port %d", DecodeName(rec.Names[port]), port)

	frames, err := FramesForParticipant(rec, port)
	if err != nil {
		return Result{Port: port}, err
	}

	res := Result{
		Port:    port,
		Presses: DetectPresses(frames, cfg.TriggerButton),
	}
	logger.Logf(logger.Allow, "annotate", "%d frames, %d presses of %s", len(frames), len(res.Presses), cfg.TriggerButton)

	for _, f := range res.Presses {
		if Append(notes, f, cfg.ClipLength, cfg.Message) {
			res.Added++
		} else {
			res.Skipped++
			logger.Logf(logger.Allow, "annotate", "note already present at frame %d", f)
		}
	}

	return res, nil
}
