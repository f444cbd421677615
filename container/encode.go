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
	"bufio"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
)

// EncodeError is the pattern of the error returned by Encode().
const EncodeError = "container: cannot encode replay: %v"

// encoder is the writing equivalent of the decoder type.
type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) write(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, binary.BigEndian, v)
}

func (e *encoder) notes(starts, lengths, offsets []int32, data []byte) {
	e.write(uint32(len(starts)))
	rows := make([]int32, 0, len(starts)*3)
	for i := range starts {
		rows = append(rows, starts[i], lengths[i], offsets[i])
	}
	e.write(rows)
	e.write(uint32(len(data)))
	e.write(data)
}

// Encode the recording and notes to the io.Writer in the specified variant.
// The notes must be valid (see replay.Notes.Validate()).
func Encode(w io.Writer, rec *replay.Recording, notes *replay.Notes, variant Variant) error {
	if err := notes.Validate(); err != nil {
		return curated.Errorf(EncodeError, err)
	}

	var xzw *xz.Writer
	if variant == Compressed {
		var err error
		xzw, err = xz.NewWriter(w)
		if err != nil {
			return curated.Errorf(EncodeError, err)
		}
		w = xzw
	}

	e := &encoder{w: bufio.NewWriter(w)}

	e.write(magic)
	e.write(uint8(version))
	e.write(rec.Names)

	for _, frames := range rec.Frames {
		if frames == nil {
			e.write(uint8(0))
			continue
		}
		e.write(uint8(1))
		e.write(uint32(len(frames)))
		buttons := make([]uint32, len(frames))
		for i := range frames {
			buttons[i] = uint32(frames[i].Buttons)
		}
		e.write(buttons)
	}

	e.notes(notes.StartFrames, notes.FrameLengths, notes.DataIdx, notes.Data)
	e.notes(notes.ImageStartFrames, notes.ImageFrameLengths, notes.ImageDataOffsets, notes.ImageData)

	if e.err == nil {
		e.err = e.w.Flush()
	}

	if xzw != nil {
		// the xz stream must be closed even if there was an error
		if err := xzw.Close(); e.err == nil {
			e.err = err
		}
	}

	if e.err != nil {
		return curated.Errorf(EncodeError, e.err)
	}

	return nil
}
