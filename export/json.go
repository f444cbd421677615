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
	"io"
	"path/filepath"

	"github.com/ohler55/ojg/oj"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// JSON writes the text notes as a JSON document of the form:
//
//	{
//	  "replay": "game.pnrp",
//	  "notes": [
//	    {"index": 0, "start": 100, "end": 400, "length": 300, "text": "..."}
//	  ]
//	}
func JSON(w io.Writer, replayFile string, notes *replay.Notes) error {
	records := Records(notes)

	list := make([]any, 0, len(records))
	for _, r := range records {
		list = append(list, map[string]any{
			"index":  r.Index,
			"start":  r.Start,
			"end":    r.End,
			"length": r.Length,
			"text":   r.Text,
		})
	}

	doc := map[string]any{
		"replay": filepath.Base(replayFile),
		"notes":  list,
	}

	s := oj.JSON(doc, &oj.Options{Indent: 2, Sort: true})
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return curated.Errorf("export: %v", err)
	}

	return nil
}
