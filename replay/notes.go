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

package replay

import (
	"github.com/padnotes/padnotes/curated"
)

// Note is the content of an entry in the note store. It is either Text or
// Image.
type Note interface {
	note()
}

// Text is the content of a text note.
type Text string

// Image is the content of an image note. The bytes are stored as given; the
// image is expected to be compressed already.
type Image []byte

func (Text) note()  {}
func (Image) note() {}

// Notes is the append only, column oriented note store of a replay. The
// exported fields are exposed for the benefit of the container package and
// should not be modified directly.
//
// For every i the four text columns (and the four image columns) are index
// aligned. DataIdx[i] is the length of Data immediately before the text of
// note i was appended.
type Notes struct {
	Data         []byte
	StartFrames  []int32
	FrameLengths []int32
	DataIdx      []int32

	ImageData         []byte
	ImageStartFrames  []int32
	ImageFrameLengths []int32
	ImageDataOffsets  []int32
}

// Add a note starting at the start frame and running for length frames. A
// length of zero is a point note.
func (n *Notes) Add(start int32, length int32, note Note) {
	switch note := note.(type) {
	case Text:
		idx := int32(len(n.Data))
		n.Data = append(n.Data, note...)
		n.StartFrames = append(n.StartFrames, start)
		n.FrameLengths = append(n.FrameLengths, length)
		n.DataIdx = append(n.DataIdx, idx)
	case Image:
		idx := int32(len(n.ImageData))
		n.ImageData = append(n.ImageData, note...)
		n.ImageStartFrames = append(n.ImageStartFrames, start)
		n.ImageFrameLengths = append(n.ImageFrameLengths, length)
		n.ImageDataOffsets = append(n.ImageDataOffsets, idx)
	}
}

// AddPoint adds a note at a single frame.
func (n *Notes) AddPoint(frame int32, note Note) {
	n.Add(frame, 0, note)
}

// AddRange adds a note covering the frames from start to end.
func (n *Notes) AddRange(start int32, end int32, note Note) {
	n.Add(start, end-start, note)
}

// NumText returns the number of text notes in the store.
func (n *Notes) NumText() int {
	return len(n.StartFrames)
}

// NumImage returns the number of image notes in the store.
func (n *Notes) NumImage() int {
	return len(n.ImageStartFrames)
}

// TextNote is a single text note resolved from the store.
type TextNote struct {
	Start  int32
	Length int32
	Text   string
}

// End returns the last frame covered by the note.
func (t TextNote) End() int32 {
	return t.Start + t.Length
}

// Text returns text note i. The text of a note runs from its data offset to
// the data offset of the next note, or to the end of the data blob for the
// last note.
func (n *Notes) Text(i int) TextNote {
	from := n.DataIdx[i]
	to := int32(len(n.Data))
	if i+1 < len(n.DataIdx) {
		to = n.DataIdx[i+1]
	}
	return TextNote{
		Start:  n.StartFrames[i],
		Length: n.FrameLengths[i],
		Text:   string(n.Data[from:to]),
	}
}

// Image returns the data and range of image note i.
func (n *Notes) Image(i int) (start int32, length int32, data []byte) {
	from := n.ImageDataOffsets[i]
	to := int32(len(n.ImageData))
	if i+1 < len(n.ImageDataOffsets) {
		to = n.ImageDataOffsets[i+1]
	}
	return n.ImageStartFrames[i], n.ImageFrameLengths[i], n.ImageData[from:to]
}

// InvalidNotes is the pattern of the error returned by Validate().
const InvalidNotes = "replay: invalid notes: %s"

// Validate checks that the columns of the note store are aligned and that the
// data offsets are ordered and within the data blob.
func (n *Notes) Validate() error {
	if len(n.StartFrames) != len(n.FrameLengths) || len(n.StartFrames) != len(n.DataIdx) {
		return curated.Errorf(InvalidNotes, "text columns are not aligned")
	}
	if err := validateOffsets(n.DataIdx, len(n.Data)); err != nil {
		return curated.Errorf(InvalidNotes, "text "+err.Error())
	}

	if len(n.ImageStartFrames) != len(n.ImageFrameLengths) || len(n.ImageStartFrames) != len(n.ImageDataOffsets) {
		return curated.Errorf(InvalidNotes, "image columns are not aligned")
	}
	if err := validateOffsets(n.ImageDataOffsets, len(n.ImageData)); err != nil {
		return curated.Errorf(InvalidNotes, "image "+err.Error())
	}

	return nil
}

func validateOffsets(offsets []int32, size int) error {
	var prev int32
	for i, o := range offsets {
		if o < prev || int(o) > size {
			return curated.Errorf("offset %d out of order (%d)", i, o)
		}
		prev = o
	}
	return nil
}

// Clone returns a deep copy of the note store.
func (n *Notes) Clone() *Notes {
	return &Notes{
		Data:              append([]byte{}, n.Data...),
		StartFrames:       append([]int32{}, n.StartFrames...),
		FrameLengths:      append([]int32{}, n.FrameLengths...),
		DataIdx:           append([]int32{}, n.DataIdx...),
		ImageData:         append([]byte{}, n.ImageData...),
		ImageStartFrames:  append([]int32{}, n.ImageStartFrames...),
		ImageFrameLengths: append([]int32{}, n.ImageFrameLengths...),
		ImageDataOffsets:  append([]int32{}, n.ImageDataOffsets...),
	}
}
