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

package batch

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/padnotes/padnotes/curated"
)

// NoMatches is the pattern of the error returned by Expand() when a glob
// pattern matches no files.
const NoMatches = "batch: no replay files match %s"

// BadPattern is the pattern of the error returned by Expand() when a glob
// pattern is malformed.
const BadPattern = "batch: bad pattern %s: %v"

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// Expand the list of arguments into a list of files. Arguments that are not
// glob patterns are returned as they are, whether the file exists or not.
// A file is only listed once, at the position it was first found.
func Expand(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}

	for _, arg := range args {
		if !isPattern(arg) {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, curated.Errorf(BadPattern, arg, err)
		}
		if len(matches) == 0 {
			return nil, curated.Errorf(NoMatches, arg)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return files, nil
}
