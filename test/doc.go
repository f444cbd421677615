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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect* functions report a failed test but allow the test to continue.
// The Demand* functions stop the test immediately.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values. A nil
// value is considered a success because of how errors are usually returned.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output. The Compare() function can then be used to test for equality.
package test
