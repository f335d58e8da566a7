package pipeline

import (
	"github.com/slemfisk/midi-clean-v3/constants"
	"github.com/slemfisk/midi-clean-v3/model"
	"github.com/slemfisk/midi-clean-v3/scale"
	"github.com/slemfisk/midi-clean-v3/util"
)

// forceToScale moves every out-of-scale pitch to the nearest scale tone.
// Distance is the raw pitch-class difference, ties going to the lower scale
// degree; the resulting shift is wrapped into [-6, 6] so the shorter
// enharmonic direction is taken, then the pitch is clamped to [0, 127].
// In-scale notes are untouched, which makes the pass idempotent.
func forceToScale(notes []*model.NoteEvent, root int, mode scale.Mode) {
	tones := mode.PitchClasses(root)
	for _, n := range notes {
		pitchClass := int(n.Pitch) % 12
		if scale.Contains(tones, pitchClass) {
			continue
		}
		shift := scale.ShiftTo(pitchClass, scale.NearestTone(pitchClass, tones))
		n.Pitch = uint8(util.Clamp(int(n.Pitch)+shift, 0, constants.MaxPitch))
	}
}
