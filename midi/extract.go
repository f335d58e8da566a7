package midi

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/slemfisk/midi-clean-v3/model"
)

type noteKey struct {
	track     int
	ch, pitch uint8
}

type openNote struct {
	startTick int64
	velocity  uint8
}

// ExtractNotes pairs every note-on with the nearest subsequent note-off for
// the same (track, channel, pitch) and returns the closed intervals. A
// note-on carrying velocity 0 counts as a note-off. Each key keeps a stack
// of open notes so overlapping retriggers match most-recent-first. Note-ons
// still open at end of track are dropped; note-offs with nothing open are
// ignored.
func ExtractNotes(s *smf.SMF) []*model.NoteEvent {
	var notes []*model.NoteEvent
	active := make(map[noteKey][]openNote)

	for trackIdx, track := range s.Tracks {
		var absTicks int64

		for _, evt := range track {
			absTicks += int64(evt.Delta)

			var ch, pitch, vel uint8
			switch {
			case evt.Message.GetNoteOn(&ch, &pitch, &vel) && vel > 0:
				k := noteKey{trackIdx, ch, pitch}
				active[k] = append(active[k], openNote{absTicks, vel})

			case evt.Message.GetNoteOff(&ch, &pitch, &vel),
				evt.Message.GetNoteOn(&ch, &pitch, &vel):
				k := noteKey{trackIdx, ch, pitch}
				open := active[k]
				if len(open) == 0 {
					continue
				}
				last := open[len(open)-1]
				active[k] = open[:len(open)-1]
				notes = append(notes, &model.NoteEvent{
					Pitch:     pitch,
					Velocity:  last.velocity,
					StartTick: last.startTick,
					EndTick:   absTicks,
					Channel:   ch,
					TrackIdx:  trackIdx,
				})
			}
		}
	}

	return notes
}
