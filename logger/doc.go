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

// Package logger is the central log for padnotes. Entries are made up of a
// tag and a detail string. The tag is normally the name of the package or
// the replay file that the entry concerns.
//
//	logger.Logf(logger.Allow, "annotate", "participant %q at port %d", name, port)
//
// Repeated entries are folded into the previous entry and the log is capped
// to a maximum number of entries. The log can be echoed to an io.Writer as
// entries are made with SetEcho().
package logger
