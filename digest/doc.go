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

// Package digest creates hashes of a replay's note store. Two stores with the
// same notes in the same order have the same hash, so the hash before and
// after an annotation pass shows whether anything was changed.
//
// The hash is HighwayHash-256 with a fixed key. It is not intended for
// cryptographic use.
package digest
