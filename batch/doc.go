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

// Package batch expands the replay arguments given on the command line and
// runs a function for each replay file.
//
// Arguments that contain glob characters are expanded with doublestar, so
// "replays/**/*.pnrp" finds every replay under the replays directory.
//
// Run() processes files side by side, up to a limit. Every file is handled
// independently and the failure of one file does not stop the others. The
// outcomes are returned in the same order as the files.
package batch
