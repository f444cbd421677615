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

package digest

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/minio/highwayhash"

	"github.com/padnotes/padnotes/replay"
)

// Digest implementations compute a hash of the data given to them.
type Digest interface {
	Hash() string
	ResetDigest()
}

// key for the highwayhash. the value is arbitrary but must never change
// because hashes are compared between runs
var key = []byte("padnotes-note-store-digest-key!!")

// Notes is a digest of a note store.
type Notes struct {
	h hash.Hash
}

// NewNotes is the preferred method of initialisation for the Notes type.
func NewNotes() (*Notes, error) {
	h, err := highwayhash.New(key)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}
	return &Notes{h: h}, nil
}

// Hash implements the Digest interface.
func (dig *Notes) Hash() string {
	return fmt.Sprintf("%x", dig.h.Sum(nil))
}

// ResetDigest implements the Digest interface.
func (dig *Notes) ResetDigest() {
	dig.h.Reset()
}

// AddNotes adds the contents of the note store to the digest.
func (dig *Notes) AddNotes(notes *replay.Notes) {
	column := func(tag byte, v []int32) {
		dig.h.Write([]byte{tag})
		binary.Write(dig.h, binary.BigEndian, uint32(len(v)))
		binary.Write(dig.h, binary.BigEndian, v)
	}
	blob := func(tag byte, b []byte) {
		dig.h.Write([]byte{tag})
		binary.Write(dig.h, binary.BigEndian, uint32(len(b)))
		dig.h.Write(b)
	}

	column('s', notes.StartFrames)
	column('l', notes.FrameLengths)
	column('o', notes.DataIdx)
	blob('d', notes.Data)
	column('S', notes.ImageStartFrames)
	column('L', notes.ImageFrameLengths)
	column('O', notes.ImageDataOffsets)
	blob('D', notes.ImageData)
}

// Hash is a convenience function that returns the hash of a single note
// store.
func Hash(notes *replay.Notes) (string, error) {
	dig, err := NewNotes()
	if err != nil {
		return "", err
	}
	dig.AddNotes(notes)
	return dig.Hash(), nil
}
