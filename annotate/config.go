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

// Config for the annotation of a replay.
type Config struct {
	// the participant whose presses are to be noted is the first whose
	// display name starts with this string
	IdentityFilter string

	// the button that triggers a note
	TriggerButton replay.Buttons

	// number of frames before the press that the note covers
	ClipLength int

	// the text of each note
	Message string
}

// DefaultConfig returns the configuration used when no preferences have been
// saved.
func DefaultConfig() Config {
	return Config{
		IdentityFilter: "pineapple",
		TriggerButton:  replay.DPadDown,
		ClipLength:     300,
		Message:        "Auto-inserted note for d-pad down press",
	}
}

// InvalidConfig is the pattern of the error returned by Config.Validate().
const InvalidConfig = "annotate: invalid config: %s"

// Validate returns an error if the configuration can not be used.
func (cfg Config) Validate() error {
	if cfg.TriggerButton == 0 {
		return curated.Errorf(InvalidConfig, "no trigger button")
	}
	if cfg.ClipLength < 0 {
		return curated.Errorf(InvalidConfig, "negative clip length")
	}
	return nil
}
