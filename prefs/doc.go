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

// Package prefs holds typed preference values and saves them to disk.
//
// Values are registered with a Disk under a key. Keys are dotted names, the
// first part being the package that owns the value:
//
//	var clip prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("annotate.clip", &clip)
//	dsk.Load()
//
// The file on disk is YAML. Saving a Disk does not remove keys from the file
// that have not been registered with that Disk instance, so more than one
// Disk can share a file.
//
// Preferences can also be given on the command line as a string of the form
// "key::value; key::value". PushCommandLineStack() makes these values
// available to the next call to Disk.Load(), where they take priority over
// the values in the file.
package prefs
