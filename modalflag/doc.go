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

// Package modalflag wraps the flag package of the Go standard library and
// adds program modes. Each mode has its own set of flags.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("ANNOTATE", "LIST", "EXPORT")
//	p, err := md.Parse()
//
// The first sub-mode is the default. If the first argument after the flags
// names a sub-mode then that mode is selected and the argument is consumed.
// Sub-mode names are case insensitive.
//
// Once the mode has been decided, NewMode() prepares for the flags of that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "LIST":
//		md.NewMode()
//		memviz := md.AddString("memviz", "", "write note store graph to file")
//		p, err := md.Parse()
//		...
//		replays := md.RemainingArgs()
//	}
//
// The help flag is handled automatically and Parse() returns ParseHelp after
// printing the help message to the Output writer.
package modalflag
