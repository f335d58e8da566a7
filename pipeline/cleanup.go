package pipeline

import (
	"sort"

	"github.com/slemfisk/midi-clean-v3/model"
)

type dupKey struct {
	pitch   uint8
	start   int64
	channel uint8
}

type pitchKey struct {
	channel uint8
	pitch   uint8
}

// deduplicate drops notes repeating a (pitch, start, channel) key. The
// first occurrence in the store's current order survives; that order
// depends on whatever passes ran before.
func deduplicate(notes []*model.NoteEvent) []*model.NoteEvent {
	seen := make(map[dupKey]bool)
	unique := make([]*model.NoteEvent, 0, len(notes))
	for _, n := range notes {
		k := dupKey{n.Pitch, n.StartTick, n.Channel}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, n)
	}
	return unique
}

// fixLegato truncates any note that overlaps the next note of the same
// (channel, pitch). One adjacent-only pass per start-sorted group is
// enough: truncation only shortens, so it cannot create a new overlap with
// a later note. Notes are mutated through the group index, so the store
// order stays as it was.
func fixLegato(notes []*model.NoteEvent) {
	groups := make(map[pitchKey][]*model.NoteEvent)
	for _, n := range notes {
		k := pitchKey{n.Channel, n.Pitch}
		groups[k] = append(groups[k], n)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTick < group[j].StartTick
		})
		for i := 0; i < len(group)-1; i++ {
			if group[i].EndTick > group[i+1].StartTick {
				group[i].EndTick = group[i+1].StartTick
			}
		}
	}
}
