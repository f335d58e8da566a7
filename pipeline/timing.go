package pipeline

import (
	"math"
	"math/rand"
	"sort"

	"github.com/slemfisk/midi-clean-v3/model"
	"github.com/slemfisk/midi-clean-v3/util"
)

// straightenChords snaps near-simultaneous onsets to their cluster's mean.
// Clustering is chain linkage over the onset-sorted notes: a note joins the
// current cluster when its onset is within window ticks of the previous
// member, not of the cluster head. Clusters of two or more notes move to
// the integer-truncated mean onset; durations are preserved. The returned
// store is sorted by original onset.
func straightenChords(notes []*model.NoteEvent, window int64) []*model.NoteEvent {
	if len(notes) == 0 {
		return notes
	}

	sorted := append([]*model.NoteEvent{}, notes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTick < sorted[j].StartTick
	})

	var clusters [][]*model.NoteEvent
	current := []*model.NoteEvent{sorted[0]}
	for _, n := range sorted[1:] {
		if n.StartTick-current[len(current)-1].StartTick <= window {
			current = append(current, n)
		} else {
			clusters = append(clusters, current)
			current = []*model.NoteEvent{n}
		}
	}
	clusters = append(clusters, current)

	aligned := make([]*model.NoteEvent, 0, len(sorted))
	for _, cluster := range clusters {
		if len(cluster) > 1 {
			var sum int64
			for _, n := range cluster {
				sum += n.StartTick
			}
			mean := sum / int64(len(cluster))
			for _, n := range cluster {
				duration := n.Duration()
				n.StartTick = mean
				n.EndTick = mean + duration
			}
		}
		aligned = append(aligned, cluster...)
	}
	return aligned
}

// quantizeNotes moves each onset to the nearest grid multiple, preserving
// the duration exactly. Grid multiples of a non-negative start are never
// negative, so no clamp is needed here.
func quantizeNotes(notes []*model.NoteEvent, grid int64) {
	for _, n := range notes {
		duration := n.Duration()
		n.StartTick = quantizeTick(n.StartTick, grid)
		n.EndTick = n.StartTick + duration
	}
}

// quantizeTick rounds the grid quotient half away from zero.
func quantizeTick(tick, grid int64) int64 {
	return int64(math.Round(float64(tick)/float64(grid))) * grid
}

// applySwing delays off-beat notes by amount*grid ticks on a fixed 16th
// grid. A note is off-beat when its position within a pair of grid cells
// reaches 0.9 of a cell. amount is deliberately not clamped; values above
// 1.0 just push harder.
func applySwing(notes []*model.NoteEvent, amount float64, grid int64) {
	for _, n := range notes {
		beatPosition := n.StartTick % (grid * 2)
		if float64(beatPosition) >= float64(grid)*0.9 {
			offset := int64(float64(grid) * amount)
			duration := n.Duration()
			n.StartTick += offset
			n.EndTick = n.StartTick + duration
		}
	}
}

// humanizeTiming perturbs each onset by a uniform integer in
// [-amount, amount], keeping durations and never letting a start go
// negative.
func humanizeTiming(notes []*model.NoteEvent, amount int, rng *rand.Rand) {
	for _, n := range notes {
		offset := int64(rng.Intn(2*amount+1) - amount)
		duration := n.Duration()
		n.StartTick = util.Max(0, n.StartTick+offset)
		n.EndTick = n.StartTick + duration
	}
}
