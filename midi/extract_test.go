package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func makeSMF(tracks ...smf.Track) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(480)
	for _, t := range tracks {
		t.Close(0)
		s.Tracks = append(s.Tracks, t)
	}
	return &s
}

func TestExtractPairsNotesWithOnVelocity(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track.Add(0, gomidi.NoteOn(3, 60, 100))
	track.Add(480, gomidi.NoteOff(3, 60))
	track.Add(0, gomidi.NoteOn(3, 64, 80))
	track.Add(240, gomidi.NoteOff(3, 64))

	notes := ExtractNotes(makeSMF(track))

	assert.Len(notes, 2)
	assert.Equal(uint8(60), notes[0].Pitch)
	assert.Equal(uint8(100), notes[0].Velocity)
	assert.Equal(int64(0), notes[0].StartTick)
	assert.Equal(int64(480), notes[0].EndTick)
	assert.Equal(uint8(3), notes[0].Channel)
	assert.Equal(0, notes[0].TrackIdx)

	assert.Equal(uint8(64), notes[1].Pitch)
	assert.Equal(int64(480), notes[1].StartTick)
	assert.Equal(int64(720), notes[1].EndTick)
}

func TestExtractTreatsVelocityZeroNoteOnAsNoteOff(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(240, gomidi.NoteOn(0, 60, 0))

	notes := ExtractNotes(makeSMF(track))

	assert.Len(notes, 1)
	assert.Equal(int64(0), notes[0].StartTick)
	assert.Equal(int64(240), notes[0].EndTick)
	assert.Equal(uint8(100), notes[0].Velocity)
}

// Overlapping retriggers of the same key pair most-recent-first: the inner
// on/off close first, the outer pair spans the whole range.
func TestExtractMatchesRetriggersMostRecentFirst(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(10, gomidi.NoteOn(0, 60, 90))
	track.Add(10, gomidi.NoteOff(0, 60))
	track.Add(10, gomidi.NoteOff(0, 60))

	notes := ExtractNotes(makeSMF(track))

	assert.Len(notes, 2)
	assert.Equal(int64(10), notes[0].StartTick)
	assert.Equal(int64(20), notes[0].EndTick)
	assert.Equal(uint8(90), notes[0].Velocity)

	assert.Equal(int64(0), notes[1].StartTick)
	assert.Equal(int64(30), notes[1].EndTick)
	assert.Equal(uint8(100), notes[1].Velocity)
}

func TestExtractDropsUnmatchedTrailingOns(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(480, gomidi.NoteOff(0, 60))
	track.Add(0, gomidi.NoteOn(0, 64, 100)) // never released

	notes := ExtractNotes(makeSMF(track))

	assert.Len(notes, 1)
	assert.Equal(uint8(60), notes[0].Pitch)
}

func TestExtractIgnoresUnmatchedOffs(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track.Add(0, gomidi.NoteOff(0, 60))
	track.Add(100, gomidi.NoteOn(0, 60, 100))
	track.Add(100, gomidi.NoteOff(0, 60))

	notes := ExtractNotes(makeSMF(track))

	assert.Len(notes, 1)
	assert.Equal(int64(100), notes[0].StartTick)
	assert.Equal(int64(200), notes[0].EndTick)
}

func TestExtractKeysOnTrackAndChannel(t *testing.T) {
	assert := assert.New(t)

	var track0, track1 smf.Track
	track0.Add(0, gomidi.NoteOn(0, 60, 100))
	track0.Add(0, gomidi.NoteOn(1, 60, 90))
	track0.Add(100, gomidi.NoteOff(0, 60))
	track0.Add(100, gomidi.NoteOff(1, 60))
	track1.Add(50, gomidi.NoteOn(0, 60, 80))
	track1.Add(100, gomidi.NoteOff(0, 60))

	notes := ExtractNotes(makeSMF(track0, track1))

	assert.Len(notes, 3)
	assert.Equal(uint8(0), notes[0].Channel)
	assert.Equal(int64(100), notes[0].EndTick)
	assert.Equal(uint8(1), notes[1].Channel)
	assert.Equal(int64(200), notes[1].EndTick)
	assert.Equal(1, notes[2].TrackIdx)
	assert.Equal(int64(50), notes[2].StartTick)
}
