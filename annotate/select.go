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
	"bytes"
	"strings"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// ParticipantNotFound is the pattern of the error returned when no name
// matches the identity filter.
const ParticipantNotFound = "annotate: no participant matching %q"

// DecodeName interprets a name buffer as text. Invalid UTF-8 is replaced with
// the unicode replacement character and the zero padding is removed.
func DecodeName(name [replay.NameLen]byte) string {
	b := bytes.TrimRight(name[:], "\x00")
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// SelectParticipant returns the port of the first participant whose name
// starts with the filter.
func SelectParticipant(names [replay.NumPorts][replay.NameLen]byte, filter string) (int, error) {
	for port := range names {
		if strings.HasPrefix(DecodeName(names[port]), filter) {
			return port, nil
		}
	}
	return -1, curated.Errorf(ParticipantNotFound, filter)
}
