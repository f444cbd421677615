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

// Package paths returns the location of resources used by padnotes, such as
// the preferences file.
//
// Resources are kept in the .padnotes directory of the current working
// directory if that directory exists. Otherwise they are kept in the padnotes
// directory of the user's configuration directory (see os.UserConfigDir()).
package paths
