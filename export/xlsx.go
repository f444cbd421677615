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
	"github.com/xuri/excelize/v2"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// SheetName is the name of the sheet in the XLSX file.
const SheetName = "notes"

var header = []any{"index", "start", "end", "length", "text"}

// XLSX writes the text notes to a spreadsheet at the path. The first row of
// the sheet is a header.
func XLSX(path string, notes *replay.Notes) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return curated.Errorf("export: %v", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return curated.Errorf("export: %v", err)
	}

	for i, r := range Records(notes) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return curated.Errorf("export: %v", err)
		}
		row := []any{r.Index, r.Start, r.End, r.Length, r.Text}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return curated.Errorf("export: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return curated.Errorf("export: %v", err)
	}

	return nil
}
