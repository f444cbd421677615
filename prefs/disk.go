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

package prefs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/padnotes/padnotes/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# padnotes preferences. edit with care"

// DiskError is the pattern of errors returned by the Disk type.
const DiskError = "prefs: %v"

// Disk saves and loads registered preference values to and from a file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk under the key.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, "key already registered ("+key+")")
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the sorted list of registered keys.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the entire preferences file. a missing file is not an error
func (dsk *Disk) read() (map[string]any, error) {
	m := make(map[string]any)

	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}

	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	// an empty file unmarshals to a nil map
	if m == nil {
		m = make(map[string]any)
	}

	return m, nil
}

// Load the registered values from the file. Values on the command line stack
// take priority over values in the file. Registered values not found in
// either place are left as they are.
func (dsk *Disk) Load() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for _, key := range dsk.Keys() {
		p := dsk.entries[key]

		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, curated.Errorf("%s: %v", key, err))
			}
			continue
		}

		if v, ok := m[key]; ok && v != nil {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, curated.Errorf("%s: %v", key, err))
			}
		}
	}

	return nil
}

// Save the registered values to the file. Other values already in the file
// are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		m[key] = p.Get()
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	var buf bytes.Buffer
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")
	buf.Write(b)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(DiskError, err)
	}
	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Reset all registered values to their zero value.
func (dsk *Disk) Reset() error {
	for _, key := range dsk.Keys() {
		if err := dsk.entries[key].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}
