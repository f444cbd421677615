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

package export_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/xuri/excelize/v2"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/export"
	"github.com/padnotes/padnotes/replay"
	"github.com/padnotes/padnotes/test"
)

func notes() *replay.Notes {
	n := &replay.Notes{}
	n.AddRange(100, 400, replay.Text("first"))
	n.AddRange(0, 50, replay.Text("second"))
	n.AddPoint(60, replay.Image{1})
	return n
}

func TestRecords(t *testing.T) {
	r := export.Records(notes())
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0], export.Record{Index: 0, Start: 100, End: 400, Length: 300, Text: "first"})
	test.ExpectEquality(t, r[1], export.Record{Index: 1, Start: 0, End: 50, Length: 50, Text: "second"})
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat("JSON")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, export.FormatJSON)

	f, err = export.ParseFormat(".xlsx")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, export.FormatXLSX)

	_, err = export.ParseFormat("csv")
	test.ExpectSuccess(t, curated.Is(err, export.UnknownFormat))
}

func TestJSON(t *testing.T) {
	var w strings.Builder
	test.DemandSuccess(t, export.JSON(&w, "/replays/game.pnrp", notes()))

	v, err := oj.ParseString(w.String())
	test.DemandSuccess(t, err)

	doc := v.(map[string]any)
	test.ExpectEquality(t, doc["replay"].(string), "game.pnrp")

	list := doc["notes"].([]any)
	test.DemandEquality(t, len(list), 2)

	first := list[0].(map[string]any)
	test.ExpectEquality(t, first["start"].(int64), int64(100))
	test.ExpectEquality(t, first["end"].(int64), int64(400))
	test.ExpectEquality(t, first["length"].(int64), int64(300))
	test.ExpectEquality(t, first["text"].(string), "first")
}

func TestXLSX(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notes.xlsx")
	test.DemandSuccess(t, export.XLSX(fn, notes()))

	f, err := excelize.OpenFile(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(rows), 3)
	test.ExpectEquality(t, strings.Join(rows[0], ","), "index,start,end,length,text")
	test.ExpectEquality(t, strings.Join(rows[1], ","), "0,100,400,300,first")
	test.ExpectEquality(t, strings.Join(rows[2], ","), "1,0,50,50,second")
}
