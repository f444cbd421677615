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

// Package curated wraps the plain Go error type with a "pattern" that can be
// tested for later. Curated errors are created with Errorf(), which takes the
// same arguments as fmt.Errorf(). The formatting pattern is remembered and
// can be checked for with the Is() and Has() functions:
//
//	const NotFound = "annotate: no participant matching %q"
//
//	err := curated.Errorf(NotFound, "pineapple")
//
//	if curated.Is(err, NotFound) {
//		fmt.Println("true")
//	}
//
// Has() searches the entire chain. An error wrapped as the value of another
// curated error will be found:
//
//	f := curated.Errorf("padnotes: %v", err)
//	curated.Has(f, NotFound) // true
//	curated.Is(f, NotFound)  // false
//
// Sentinel patterns should be stored as const strings next to the code that
// raises them.
//
// The Error() implementation normalises the message by removing a duplicated
// leading part. A chain of the form "container: container: bad magic" is
// printed as "container: bad magic". Chains are thought of as parts separated
// by ": ".
package curated
