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
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/logger"
	"github.com/padnotes/padnotes/replay"
)

// DecodeError is the pattern of the error returned by Decode() when neither
// variant of the file format can be decoded.
const DecodeError = "container: cannot decode replay: %v (as compressed: %v)"

// Sentinel patterns for the errors wrapped by DecodeError.
const (
	NotReplay          = "not a replay file"
	UnsupportedVersion = "unsupported version (%d)"
	Truncated          = "truncated data: %v"
	TrailingData       = "%d bytes of trailing data"
)

// Decode the bytes of a replay file. The primary variant of the format is
// tried first and then the compressed variant.
func Decode(b []byte) (*replay.Recording, *replay.Notes, Variant, error) {
	rec, notes, err := decodePrimary(b)
	if err == nil {
		logger.Log(logger.Allow, "container", "decoded primary variant")
		return rec, notes, Primary, nil
	}

	rec, notes, cerr := decodeCompressed(b)
	if cerr == nil {
		logger.Log(logger.Allow, "container", "decoded compressed variant")
		return rec, notes, Compressed, nil
	}

	return nil, nil, Primary, curated.Errorf(DecodeError, err, cerr)
}

func decodeCompressed(b []byte) (*replay.Recording, *replay.Notes, error) {
	r, err := xz.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, nil, curated.Errorf("xz: %v", err)
	}

	p, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, curated.Errorf("xz: %v", err)
	}

	return decodePrimary(p)
}

// decoder wraps a bytes.Reader and remembers the first error that occurs. once
// an error has occurred all further reads are ignored.
type decoder struct {
	r   *bytes.Reader
	err error
}

func (d *decoder) read(v any) {
	if d.err != nil {
		return
	}
	if err := binary.Read(d.r, binary.BigEndian, v); err != nil {
		d.err = curated.Errorf(Truncated, err)
	}
}

// count reads a uint32 count of elements of the given size. the count is
// checked against the remaining data so that a corrupt count does not cause
// an unreasonable allocation.
func (d *decoder) count(size int) int {
	var n uint32
	d.read(&n)
	if d.err != nil {
		return 0
	}
	if uint64(n)*uint64(size) > uint64(d.r.Len()) {
		d.err = curated.Errorf(Truncated, curated.Errorf("count of %d exceeds data", n))
		return 0
	}
	return int(n)
}

func (d *decoder) int32s(n int) []int32 {
	if n == 0 || d.err != nil {
		return nil
	}
	v := make([]int32, n)
	d.read(v)
	return v
}

func (d *decoder) blob() []byte {
	n := d.count(1)
	if n == 0 || d.err != nil {
		return nil
	}
	v := make([]byte, n)
	d.read(v)
	return v
}

// notes reads one set of note columns. entries are stored as rows in the file
// and split into columns here.
func (d *decoder) notes() (starts, lengths, offsets []int32, data []byte) {
	n := d.count(noteEntrySize)
	rows := d.int32s(n * 3)
	if d.err != nil {
		return
	}

	if n > 0 {
		starts = make([]int32, n)
		lengths = make([]int32, n)
		offsets = make([]int32, n)
		for i := 0; i < n; i++ {
			starts[i] = rows[i*3]
			lengths[i] = rows[i*3+1]
			offsets[i] = rows[i*3+2]
		}
	}

	data = d.blob()
	return
}

func decodePrimary(b []byte) (*replay.Recording, *replay.Notes, error) {
	if len(b) < len(magic)+1 || !bytes.Equal(b[:len(magic)], magic[:]) {
		return nil, nil, curated.Errorf(NotReplay)
	}
	if b[len(magic)] != version {
		return nil, nil, curated.Errorf(UnsupportedVersion, b[len(magic)])
	}

	d := &decoder{r: bytes.NewReader(b[len(magic)+1:])}

	rec := &replay.Recording{}
	d.read(&rec.Names)

	for port := range rec.Frames {
		var present uint8
		d.read(&present)
		if d.err != nil || present == 0 {
			continue
		}

		n := d.count(4)
		buttons := make([]uint32, n)
		if n > 0 {
			d.read(buttons)
		}

		rec.Frames[port] = make([]replay.Frame, n)
		for i := range buttons {
			rec.Frames[port][i].Buttons = replay.Buttons(buttons[i])
		}
	}

	notes := &replay.Notes{}
	notes.StartFrames, notes.FrameLengths, notes.DataIdx, notes.Data = d.notes()
	notes.ImageStartFrames, notes.ImageFrameLengths, notes.ImageDataOffsets, notes.ImageData = d.notes()

	if d.err != nil {
		return nil, nil, d.err
	}

	if d.r.Len() > 0 {
		return nil, nil, curated.Errorf(TrailingData, d.r.Len())
	}

	if err := notes.Validate(); err != nil {
		return nil, nil, err
	}

	return rec, notes, nil
}
