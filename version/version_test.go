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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/padnotes/padnotes/test"
)

func settings(kv ...string) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		bi := &debug.BuildInfo{}
		for i := 0; i+1 < len(kv); i += 2 {
			bi.Settings = append(bi.Settings, debug.BuildSetting{Key: kv[i], Value: kv[i+1]})
		}
		return bi, true
	}
}

func TestVersion(t *testing.T) {
	inf := fromBuildInfo("", func() (*debug.BuildInfo, bool) { return nil, false })
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Revision, "no revision information")
	test.ExpectFailure(t, inf.Release)

	inf = fromBuildInfo("", settings("vcs", "git", "vcs.revision", "abc123", "vcs.modified", "true"))
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")

	inf = fromBuildInfo("v1.2.0", settings("vcs", "git", "vcs.revision", "abc123", "vcs.modified", "false"))
	test.ExpectEquality(t, inf.Version, "v1.2.0")
	test.ExpectEquality(t, inf.Revision, "abc123")
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "padnotes v1.2.0 (abc123)")
}
