package midi

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/slemfisk/midi-clean-v3/model"
)

var tempoMeta = smf.Message([]byte{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20})

type noteTuple struct {
	pitch   uint8
	start   int64
	end     int64
	channel uint8
}

func tuples(notes []*model.NoteEvent) []noteTuple {
	res := make([]noteTuple, 0, len(notes))
	for _, n := range notes {
		res = append(res, noteTuple{n.Pitch, n.StartTick, n.EndTick, n.Channel})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].start != res[j].start {
			return res[i].start < res[j].start
		}
		return res[i].pitch < res[j].pitch
	})
	return res
}

func TestReconstructRoundTripKeepsNoteTuples(t *testing.T) {
	assert := assert.New(t)

	var track0, track1 smf.Track
	track0.Add(0, tempoMeta)
	src := makeSMF(track0, track1)

	notes := []*model.NoteEvent{
		{Pitch: 60, Velocity: 100, StartTick: 0, EndTick: 480, Channel: 0, TrackIdx: 0},
		{Pitch: 64, Velocity: 90, StartTick: 240, EndTick: 720, Channel: 2, TrackIdx: 0},
		{Pitch: 36, Velocity: 80, StartTick: 120, EndTick: 600, Channel: 9, TrackIdx: 1},
	}

	rebuilt := Reconstruct(src, notes)
	assert.Equal(src.TimeFormat, rebuilt.TimeFormat)
	assert.Len(rebuilt.Tracks, 2)

	assert.Equal(tuples(notes), tuples(ExtractNotes(rebuilt)))
}

func TestReconstructEmitsNoteOnBeforeNoteOffAtSameTick(t *testing.T) {
	assert := assert.New(t)

	src := makeSMF(smf.Track{})
	notes := []*model.NoteEvent{
		{Pitch: 60, Velocity: 100, StartTick: 0, EndTick: 480, Channel: 0, TrackIdx: 0},
		{Pitch: 64, Velocity: 100, StartTick: 480, EndTick: 960, Channel: 0, TrackIdx: 0},
	}

	rebuilt := Reconstruct(src, notes)

	type ev struct {
		tick  int64
		pitch uint8
		off   bool
	}
	var events []ev
	var absTicks int64
	for _, evt := range rebuilt.Tracks[0] {
		absTicks += int64(evt.Delta)
		var ch, pitch, vel uint8
		switch {
		case evt.Message.GetNoteOn(&ch, &pitch, &vel) && vel > 0:
			events = append(events, ev{absTicks, pitch, false})
		case evt.Message.GetNoteOff(&ch, &pitch, &vel):
			events = append(events, ev{absTicks, pitch, true})
		}
	}

	assert.Equal([]ev{
		{0, 60, false},
		{480, 64, false}, // the new onset precedes the release at tick 480
		{480, 60, true},
		{960, 64, true},
	}, events)
}

func TestReconstructKeepsMetaEventsVerbatimBeforeNotes(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	track = append(track, smf.Event{Delta: 100, Message: tempoMeta})
	src := makeSMF(track)

	notes := []*model.NoteEvent{
		{Pitch: 60, Velocity: 100, StartTick: 50, EndTick: 250, Channel: 0, TrackIdx: 0},
	}
	rebuilt := Reconstruct(src, notes)
	out := rebuilt.Tracks[0]

	// Meta first with its original delta, then the note chain from tick 0,
	// then the fresh end-of-track.
	assert.True(out[0].Message.IsMeta())
	assert.Equal(uint32(100), out[0].Delta)
	assert.Equal(uint32(50), out[1].Delta)
	var ch, pitch, vel uint8
	assert.True(out[1].Message.GetNoteOn(&ch, &pitch, &vel))
	assert.Equal(uint32(200), out[2].Delta)
	assert.True(out[2].Message.GetNoteOff(&ch, &pitch, &vel))
	assert.True(out[len(out)-1].Message.Is(smf.MetaEndOfTrackMsg))
}

func TestReconstructGroupsNotesByOriginalTrack(t *testing.T) {
	assert := assert.New(t)

	src := makeSMF(smf.Track{}, smf.Track{})
	notes := []*model.NoteEvent{
		{Pitch: 60, Velocity: 100, StartTick: 0, EndTick: 100, Channel: 0, TrackIdx: 1},
	}

	rebuilt := Reconstruct(src, notes)
	extracted := ExtractNotes(rebuilt)

	assert.Len(extracted, 1)
	assert.Equal(1, extracted[0].TrackIdx)
}
