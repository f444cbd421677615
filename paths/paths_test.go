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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/padnotes/padnotes/paths"
	"github.com/padnotes/padnotes/test"
)

func TestResourcePath(t *testing.T) {
	// a .padnotes directory in the working directory takes priority
	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".padnotes"), 0o700))
	t.Chdir(dir)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".padnotes", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("", "preferences.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".padnotes", "preferences.yaml"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".padnotes")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("notes", "/replays/Game_20240101.pnrp", "json")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "notes_Game_20240101_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".json"))

	fn = paths.UniqueFilename("notes", "", ".xlsx")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "notes_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".xlsx"))
	test.ExpectFailure(t, strings.Contains(fn, ".."))
}
