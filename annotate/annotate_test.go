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

package annotate_test

import (
	"testing"

	"github.com/padnotes/padnotes/annotate"
	"github.com/padnotes/padnotes/curated"
	"github.com/padnotes/padnotes/replay"
	"github.com/padnotes/padnotes/test"
)

// frames creates a frame sequence from a list of held/not-held values for
// the button
func frames(button replay.Buttons, held ...bool) []replay.Frame {
	f := make([]replay.Frame, len(held))
	for i, h := range held {
		// other buttons are held on every frame and should make no
		// difference
		f[i].Buttons = replay.A
		if h {
			f[i].Buttons |= button
		}
	}
	return f
}

func recording() *replay.Recording {
	rec := &replay.Recording{}
	rec.SetName(0, "someone")
	rec.SetName(1, "somebody")
	rec.SetName(2, "pineapple_x")
	rec.Frames[0] = frames(replay.DPadDown, true, true, true)
	rec.Frames[1] = frames(replay.DPadDown, false, true)
	rec.Frames[2] = frames(replay.DPadDown, false, false, true, true, false, true)
	return rec
}

func TestSelectParticipant(t *testing.T) {
	rec := recording()

	port, err := annotate.SelectParticipant(rec.Names, "pineapple")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, port, 2)

	// first match wins
	port, err = annotate.SelectParticipant(rec.Names, "some")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, port, 0)

	_, err = annotate.SelectParticipant(rec.Names, "banana")
	test.ExpectSuccess(t, curated.Is(err, annotate.ParticipantNotFound))
}

func TestDecodeName(t *testing.T) {
	var name [replay.NameLen]byte
	copy(name[:], []byte{'p', 'i', 0xff, 'e'})
	test.ExpectEquality(t, annotate.DecodeName(name), "pi\uFFFDe")

	// invalid bytes do not prevent a prefix match
	var names [replay.NumPorts][replay.NameLen]byte
	names[3] = name
	port, err := annotate.SelectParticipant(names, "pi")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, port, 3)
}

func TestDetectPresses(t *testing.T) {
	rec := recording()

	presses := annotate.DetectPresses(rec.Frames[2], replay.DPadDown)
	test.DemandEquality(t, len(presses), 2)
	test.ExpectEquality(t, presses[0], 2)
	test.ExpectEquality(t, presses[1], 5)

	// button held from the first frame is never a press
	test.ExpectEquality(t, len(annotate.DetectPresses(rec.Frames[0], replay.DPadDown)), 0)

	// a different button
	test.ExpectEquality(t, len(annotate.DetectPresses(rec.Frames[2], replay.DPadUp)), 0)

	// degenerate sequences
	test.ExpectEquality(t, len(annotate.DetectPresses(nil, replay.DPadDown)), 0)
	test.ExpectEquality(t, len(annotate.DetectPresses(frames(replay.DPadDown, true), replay.DPadDown)), 0)
}

func TestDetectPressesProperties(t *testing.T) {
	// every pattern of eight frames
	for pattern := 0; pattern < 256; pattern++ {
		held := make([]bool, 8)
		for i := range held {
			held[i] = pattern&(1<<i) != 0
		}
		f := frames(replay.DPadDown, held...)

		prev := 0
		for _, p := range annotate.DetectPresses(f, replay.DPadDown) {
			test.ExpectInequality(t, p, 0, pattern)
			test.ExpectSuccess(t, p > prev, pattern)
			test.ExpectFailure(t, held[p-1], pattern)
			test.ExpectSuccess(t, held[p], pattern)
			prev = p
		}
	}
}

func TestFramesForParticipant(t *testing.T) {
	rec := recording()

	f, err := annotate.FramesForParticipant(rec, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(f), 6)

	_, err = annotate.FramesForParticipant(rec, 3)
	test.ExpectSuccess(t, curated.Is(err, annotate.NoFramesForParticipant))
}

func TestClipRange(t *testing.T) {
	start, end := annotate.ClipRange(400, 300)
	test.ExpectEquality(t, start, 100)
	test.ExpectEquality(t, end, 400)

	start, end = annotate.ClipRange(50, 300)
	test.ExpectEquality(t, start, 0)
	test.ExpectEquality(t, end, 50)

	for f := 0; f < 1000; f += 7 {
		for _, c := range []int{0, 1, 60, 300, 999} {
			start, end := annotate.ClipRange(f, c)
			test.ExpectSuccess(t, start >= 0 && start <= end)
			test.ExpectEquality(t, end, f)
		}
	}
}

func TestAppend(t *testing.T) {
	var notes replay.Notes

	test.ExpectSuccess(t, annotate.Append(&notes, 400, 300, "press"))
	test.DemandEquality(t, notes.NumText(), 1)
	test.ExpectEquality(t, notes.Text(0), replay.TextNote{Start: 100, Length: 300, Text: "press"})

	// end collision
	test.ExpectFailure(t, annotate.Append(&notes, 400, 300, "press"))

	// start collision
	test.ExpectFailure(t, annotate.Append(&notes, 100, 300, "press"))

	// inside the range of an existing note is not a collision
	test.ExpectSuccess(t, annotate.Append(&notes, 250, 300, "press"))

	// near the start of the replay
	test.ExpectSuccess(t, annotate.Append(&notes, 50, 300, "press"))
	test.DemandEquality(t, notes.NumText(), 3)
	test.ExpectEquality(t, notes.Text(2), replay.TextNote{Start: 0, Length: 50, Text: "press"})

	test.ExpectSuccess(t, notes.Validate())
	for i := range notes.DataIdx {
		test.ExpectEquality(t, notes.DataIdx[i], int32(i*len("press")))
	}
}

func TestAppendToLoadedNotes(t *testing.T) {
	var notes replay.Notes
	notes.AddRange(100, 400, replay.Text("hand written"))

	test.ExpectFailure(t, annotate.Append(&notes, 400, 300, "auto"))
	test.ExpectEquality(t, notes.NumText(), 1)

	test.ExpectSuccess(t, annotate.Append(&notes, 900, 300, "auto"))
	test.ExpectEquality(t, notes.DataIdx[1], int32(len("hand written")))
	test.ExpectEquality(t, notes.Text(1).Text, "auto")
}

func TestRun(t *testing.T) {
	rec := recording()
	var notes replay.Notes

	cfg := annotate.DefaultConfig()
	res, err := annotate.Run(rec, &notes, cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Port, 2)
	test.ExpectEquality(t, len(res.Presses), 2)
	test.ExpectEquality(t, res.Added, 2)
	test.ExpectEquality(t, res.Skipped, 0)
	test.DemandEquality(t, notes.NumText(), 2)
	test.ExpectEquality(t, notes.Text(0), replay.TextNote{Start: 0, Length: 2, Text: cfg.Message})
	test.ExpectEquality(t, notes.Text(1), replay.TextNote{Start: 0, Length: 5, Text: cfg.Message})

	// running again changes nothing
	once := notes.Clone()
	res, err = annotate.Run(rec, &notes, cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Added, 0)
	test.ExpectEquality(t, res.Skipped, 2)
	test.ExpectEquality(t, string(notes.Data), string(once.Data))
	test.ExpectEquality(t, notes.NumText(), once.NumText())
	for i := 0; i < notes.NumText(); i++ {
		test.ExpectEquality(t, notes.Text(i), once.Text(i))
	}
}

func TestRunFailures(t *testing.T) {
	rec := recording()
	var notes replay.Notes

	cfg := annotate.DefaultConfig()
	cfg.IdentityFilter = "banana"
	_, err := annotate.Run(rec, &notes, cfg)
	test.ExpectSuccess(t, curated.Is(err, annotate.ParticipantNotFound))

	rec.Frames[2] = nil
	cfg = annotate.DefaultConfig()
	_, err = annotate.Run(rec, &notes, cfg)
	test.ExpectSuccess(t, curated.Is(err, annotate.NoFramesForParticipant))

	cfg.ClipLength = -1
	_, err = annotate.Run(rec, &notes, cfg)
	test.ExpectSuccess(t, curated.Is(err, annotate.InvalidConfig))

	// nothing was added by any of the failures
	test.ExpectEquality(t, notes.NumText(), 0)
}
