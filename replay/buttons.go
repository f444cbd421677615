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

import (
	"fmt"
	"strings"

	"github.com/padnotes/padnotes/curated"
)

// Buttons is the bitmask of held controller buttons for a frame.
type Buttons uint32

// List of buttons as they appear in the button mask.
const (
	DPadLeft  Buttons = 0x0001
	DPadRight Buttons = 0x0002
	DPadDown  Buttons = 0x0004
	DPadUp    Buttons = 0x0008
	Z         Buttons = 0x0010
	R         Buttons = 0x0020
	L         Buttons = 0x0040
	A         Buttons = 0x0100
	B         Buttons = 0x0200
	X         Buttons = 0x0400
	Y         Buttons = 0x0800
	Start     Buttons = 0x1000
)

var buttonNames = []struct {
	name string
	mask Buttons
}{
	{"DPADLEFT", DPadLeft},
	{"DPADRIGHT", DPadRight},
	{"DPADDOWN", DPadDown},
	{"DPADUP", DPadUp},
	{"Z", Z},
	{"R", R},
	{"L", L},
	{"A", A},
	{"B", B},
	{"X", X},
	{"Y", Y},
	{"START", Start},
}

// UnknownButton is the pattern of the error returned by ParseButton().
const UnknownButton = "replay: unknown button (%s)"

// ParseButton returns the mask for the named button. The comparison is case
// insensitive and ignores hyphens and underscores, so "dpad-down" and
// "DPAD_DOWN" are both accepted.
func ParseButton(name string) (Buttons, error) {
	n := strings.ToUpper(name)
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	n = strings.ReplaceAll(n, " ", "")
	for _, b := range buttonNames {
		if b.name == n {
			return b.mask, nil
		}
	}
	return 0, curated.Errorf(UnknownButton, name)
}

func (b Buttons) String() string {
	if b == 0 {
		return "NONE"
	}

	s := strings.Builder{}
	for _, n := range buttonNames {
		if b&n.mask == n.mask {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(n.name)
			b &^= n.mask
		}
	}

	// bits not in the table
	if b != 0 {
		if s.Len() > 0 {
			s.WriteString("+")
		}
		s.WriteString(fmt.Sprintf("%#04x", uint32(b)))
	}

	return s.String()
}
