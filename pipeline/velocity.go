package pipeline

import (
	"math/rand"

	"github.com/slemfisk/midi-clean-v3/constants"
	"github.com/slemfisk/midi-clean-v3/model"
	"github.com/slemfisk/midi-clean-v3/util"
)

// scaleVelocity multiplies every velocity by factor, truncating to integer
// and clamping into [1, 127].
func scaleVelocity(notes []*model.NoteEvent, factor float64) {
	for _, n := range notes {
		scaled := int(float64(n.Velocity) * factor)
		n.Velocity = uint8(util.Clamp(scaled, constants.MinVelocity, constants.MaxVelocity))
	}
}

// clampVelocity bounds every velocity into [minVel, maxVel] as
// max(minVel, min(maxVel, v)). The range is taken as given: when inverted
// (minVel > maxVel) every velocity collapses to minVel, because the upper
// bound is applied first.
func clampVelocity(notes []*model.NoteEvent, minVel, maxVel int) {
	for _, n := range notes {
		n.Velocity = uint8(util.Clamp(int(n.Velocity), minVel, maxVel))
	}
}

// humanizeVelocity perturbs each velocity by a uniform integer in
// [-variance, variance], clamped into [1, 127].
func humanizeVelocity(notes []*model.NoteEvent, variance int, rng *rand.Rand) {
	for _, n := range notes {
		offset := rng.Intn(2*variance+1) - variance
		n.Velocity = uint8(util.Clamp(int(n.Velocity)+offset, constants.MinVelocity, constants.MaxVelocity))
	}
}
