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

package export

import (
	"strings"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// Record is a single text note prepared for export.
type Record struct {
	Index  int
	Start  int
	End    int
	Length int
	Text   string
}

// Records returns the text notes in the store in the order they were added.
func Records(notes *replay.Notes) []Record {
	r := make([]Record, notes.NumText())
	for i := range r {
		n := notes.Text(i)
		r[i] = Record{
			Index:  i,
			Start:  int(n.Start),
			End:    int(n.End()),
			Length: int(n.Length),
			Text:   n.Text,
		}
	}
	return r
}

// Format of an export.
type Format string

// List of supported formats.
const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// UnknownFormat is the pattern of the error returned by ParseFormat().
const UnknownFormat = "export: unknown format (%s)"

// ParseFormat returns the Format for the name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", curated.Errorf(UnknownFormat, name)
}
