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

package container

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/logger"
	"github.com/padnotes/padnotes/replay"
)

// ReadError is the pattern of the error returned when a replay file cannot
// be read from disk.
const ReadError = "container: cannot read replay: %v"

// WriteError is the pattern of the error returned by WriteNotes().
const WriteError = "container: cannot write notes: %v"

// File is a decoded replay file.
type File struct {
	Path      string
	Variant   Variant
	Recording *replay.Recording
	Notes     *replay.Notes
}

// Load and decode the replay file at the path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	rec, notes, variant, err := Decode(b)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "container", "%s: %d text notes, %d image notes", filepath.Base(path), notes.NumText(), notes.NumImage())

	return &File{
		Path:      path,
		Variant:   variant,
		Recording: rec,
		Notes:     notes,
	}, nil
}

// Save the replay to the path in the specified variant. An existing file at
// the path is replaced.
func Save(path string, rec *replay.Recording, notes *replay.Notes, variant Variant) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rec, notes, variant); err != nil {
		return err
	}
	return replaceFile(path, buf.Bytes())
}

// WriteNotes replaces the notes in the replay file at the path. The recording
// in the file is not changed and the file keeps its variant.
//
// The file is only replaced once the new contents have been written in full.
// If an error is returned the file on disk is unchanged.
func WriteNotes(path string, notes *replay.Notes) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	rec, _, variant, err := Decode(b)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rec, notes, variant); err != nil {
		return curated.Errorf(WriteError, err)
	}

	if err := replaceFile(path, buf.Bytes()); err != nil {
		return curated.Errorf(WriteError, err)
	}

	logger.Logf(logger.Allow, "container", "%s: wrote %d text notes (%s variant)", filepath.Base(path), notes.NumText(), variant)

	return nil
}

// replaceFile writes the data to a temporary file in the same directory as
// the path and then renames it over the path.
func replaceFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	// remove the temporary file if anything goes wrong. after a successful
	// rename this does nothing
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
