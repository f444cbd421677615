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

package replay_test

import (
	"testing"

	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
	"github.com/padnotes/padnotes/test"
)

func TestTextNotes(t *testing.T) {
	var n replay.Notes

	n.AddRange(100, 400, replay.Text("first"))
	n.AddPoint(50, replay.Text("second"))
	n.Add(0, 10, replay.Text(""))
	n.Add(10, 20, replay.Text("fourth"))

	test.DemandEquality(t, n.NumText(), 4)
	test.ExpectEquality(t, len(n.FrameLengths), 4)
	test.ExpectEquality(t, len(n.DataIdx), 4)
	test.ExpectSuccess(t, n.Validate())

	test.ExpectEquality(t, n.Text(0), replay.TextNote{Start: 100, Length: 300, Text: "first"})
	test.ExpectEquality(t, n.Text(0).End(), int32(400))
	test.ExpectEquality(t, n.Text(1), replay.TextNote{Start: 50, Length: 0, Text: "second"})
	test.ExpectEquality(t, n.Text(2).Text, "")
	test.ExpectEquality(t, n.Text(3).Text, "fourth")

	// offsets are the length of the blob before each append
	test.ExpectEquality(t, n.DataIdx[0], int32(0))
	test.ExpectEquality(t, n.DataIdx[1], int32(5))
	test.ExpectEquality(t, n.DataIdx[2], int32(11))
	test.ExpectEquality(t, n.DataIdx[3], int32(11))

	// image notes are untouched by text notes
	test.ExpectEquality(t, n.NumImage(), 0)
}

func TestImageNotes(t *testing.T) {
	var n replay.Notes

	n.AddRange(0, 60, replay.Image{1, 2, 3})
	n.AddPoint(90, replay.Image{4, 5})

	test.DemandEquality(t, n.NumImage(), 2)
	test.ExpectEquality(t, n.NumText(), 0)
	test.ExpectSuccess(t, n.Validate())

	start, length, data := n.Image(1)
	test.ExpectEquality(t, start, int32(90))
	test.ExpectEquality(t, length, int32(0))
	test.ExpectEquality(t, string(data), string([]byte{4, 5}))
	test.ExpectEquality(t, n.ImageDataOffsets[1], int32(3))
}

func TestValidate(t *testing.T) {
	var n replay.Notes
	n.AddRange(0, 10, replay.Text("a"))
	n.AddRange(10, 20, replay.Text("b"))

	broken := n.Clone()
	broken.DataIdx = broken.DataIdx[:1]
	test.ExpectSuccess(t, curated.Is(broken.Validate(), replay.InvalidNotes))

	broken = n.Clone()
	broken.DataIdx[1] = 10
	test.ExpectFailure(t, broken.Validate())

	// the original is not changed by changes to the clone
	test.ExpectSuccess(t, n.Validate())
}

func TestParseButton(t *testing.T) {
	for _, name := range []string{"dpaddown", "DPAD_DOWN", "d-pad-down", "DPadDown"} {
		b, err := replay.ParseButton(name)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, b, replay.DPadDown, name)
	}

	_, err := replay.ParseButton("turbo")
	test.ExpectSuccess(t, curated.Is(err, replay.UnknownButton))
}

func TestButtonsString(t *testing.T) {
	test.ExpectEquality(t, replay.DPadDown.String(), "DPADDOWN")
	test.ExpectEquality(t, (replay.A | replay.B).String(), "A+B")
	test.ExpectEquality(t, replay.Buttons(0).String(), "NONE")
	test.ExpectEquality(t, (replay.Start | 0x2000).String(), "START+0x2000")
}

func TestFramePressed(t *testing.T) {
	f := replay.Frame{Buttons: replay.DPadDown | replay.A}
	test.ExpectSuccess(t, f.Pressed(replay.DPadDown))
	test.ExpectFailure(t, f.Pressed(replay.DPadUp))
}

func TestSetName(t *testing.T) {
	var rec replay.Recording
	rec.SetName(2, "pineapple_x")
	test.ExpectEquality(t, string(rec.Names[2][:11]), "pineapple_x")
	test.ExpectEquality(t, rec.Names[2][11], byte(0))

	rec.SetName(2, "abc")
	test.ExpectEquality(t, rec.Names[2][3], byte(0))
}
