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

package annotate

import (
	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/paths"
	"github.com/padnotes/padnotes/prefs"
	"github.com/padnotes/padnotes/replay"
)

// Preferences is the disk backed version of Config.
type Preferences struct {
	dsk *prefs.Disk

	Filter  prefs.String
	Button  *prefs.Generic
	Clip    prefs.Int
	Message prefs.String

	// the value behind the Button preference
	button replay.Buttons
}

// NewPreferences loads the preferences from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile loads the preferences from the named file. Values
// missing from the file take the value in DefaultConfig().
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Button = prefs.NewGeneric(
		func(s string) error {
			b, err := replay.ParseButton(s)
			if err != nil {
				return err
			}
			p.button = b
			return nil
		},
		func() string {
			return p.button.String()
		},
	)

	p.Clip.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidConfig, "negative clip length")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}

	err = p.dsk.Add("annotate.filter", &p.Filter)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}
	err = p.dsk.Add("annotate.button", p.Button)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}
	err = p.dsk.Add("annotate.clip", &p.Clip)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}
	err = p.dsk.Add("annotate.message", &p.Message)
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, curated.Errorf("annotate: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to the values in DefaultConfig().
func (p *Preferences) SetDefaults() error {
	def := DefaultConfig()
	if err := p.Filter.Set(def.IdentityFilter); err != nil {
		return err
	}
	p.button = def.TriggerButton
	if err := p.Clip.Set(def.ClipLength); err != nil {
		return err
	}
	return p.Message.Set(def.Message)
}

// Config returns the current preferences as a Config value.
func (p *Preferences) Config() Config {
	return Config{
		IdentityFilter: p.Filter.String(),
		TriggerButton:  p.button,
		ClipLength:     p.Clip.Get().(int),
		Message:        p.Message.String(),
	}
}

// Save the current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
