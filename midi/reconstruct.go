package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/slemfisk/midi-clean-v3/model"
)

type trackEvent struct {
	tick int64
	off  bool
	note *model.NoteEvent
}

// Reconstruct rebuilds an SMF from processed notes, keeping the source
// file's resolution and track count. Each track re-emits its meta events
// verbatim and in original order (end-of-track excluded; the track is
// closed again at the end), then the track's notes as on/off pairs. At an
// identical tick note-on sorts before note-off, so a note ending exactly
// where another starts never opens a gap. Deltas for the note events are
// computed against a fresh absolute-tick chain starting at 0.
func Reconstruct(src *smf.SMF, notes []*model.NoteEvent) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = src.TimeFormat

	trackNotes := make(map[int][]*model.NoteEvent)
	for _, n := range notes {
		trackNotes[n.TrackIdx] = append(trackNotes[n.TrackIdx], n)
	}

	for trackIdx, oldTrack := range src.Tracks {
		var newTrack smf.Track

		for _, evt := range oldTrack {
			if evt.Message.IsMeta() && !evt.Message.Is(smf.MetaEndOfTrackMsg) {
				newTrack = append(newTrack, evt)
			}
		}

		var events []trackEvent
		for _, n := range trackNotes[trackIdx] {
			events = append(events, trackEvent{n.StartTick, false, n})
			events = append(events, trackEvent{n.EndTick, true, n})
		}
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].tick != events[j].tick {
				return events[i].tick < events[j].tick
			}
			return !events[i].off && events[j].off
		})

		var currentTick int64
		for _, e := range events {
			delta := uint32(e.tick - currentTick)
			if e.off {
				newTrack.Add(delta, midi.NoteOff(e.note.Channel, e.note.Pitch))
			} else {
				newTrack.Add(delta, midi.NoteOn(e.note.Channel, e.note.Pitch, e.note.Velocity))
			}
			currentTick = e.tick
		}

		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
