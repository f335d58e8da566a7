package constants

// StraightenWindowTicks is the chord straightening cluster window: a note
// joins the current cluster if its onset is within this many ticks of the
// previous note in the cluster.
const StraightenWindowTicks = 20

// HumanizeTimingTicks bounds the uniform onset jitter applied by --humanize.
const HumanizeTimingTicks = 10

// HumanizeVelocityRange bounds the uniform velocity jitter applied by --vel-human.
const HumanizeVelocityRange = 15

// SwingDivision is the grid swing operates on, independent of --quantize.
const SwingDivision = "1/16"

const (
	MinVelocity = 1
	MaxVelocity = 127
	MaxPitch    = 127
)
