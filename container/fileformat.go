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

package container

// replay file format
// ------------------
//
// all integers are big-endian
//
//	magic     [4]byte                "PNRP"
//	version   uint8
//	names     [NumPorts][NameLen]byte
//
//	for each port:
//	  present uint8                  0 or 1
//	  if present:
//	    count   uint32
//	    buttons [count]uint32
//
//	text notes:
//	  count   uint32
//	  entries [count]{start int32, length int32, offset int32}
//	  size    uint32
//	  data    [size]byte
//
//	image notes:
//	  (same layout as text notes)

var magic = [4]byte{'P', 'N', 'R', 'P'}

const version = 1

// Variant of the replay file.
type Variant int

// List of valid Variant values.
const (
	Primary Variant = iota
	Compressed
)

func (v Variant) String() string {
	switch v {
	case Primary:
		return "primary"
	case Compressed:
		return "compressed"
	}
	return "unknown"
}

// Extension returns the conventional filename extension for the variant.
func (v Variant) Extension() string {
	if v == Compressed {
		return ".pnrpx"
	}
	return ".pnrp"
}

// size of each note entry in bytes
const noteEntrySize = 12
