package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/slemfisk/midi-clean-v3/constants"
	"github.com/slemfisk/midi-clean-v3/model"
	"github.com/slemfisk/midi-clean-v3/scale"
)

// Options selects which passes run. The zero value runs nothing. The YAML
// tags let preset files carry the same fields as the CLI flags.
type Options struct {
	Straighten  bool    `yaml:"straighten"`
	Quantize    string  `yaml:"quantize"`
	Swing       float64 `yaml:"swing"`
	Humanize    bool    `yaml:"humanize"`
	VelScale    float64 `yaml:"vel_scale"`
	VelClamp    []int   `yaml:"vel_clamp"`
	VelHumanize bool    `yaml:"vel_human"`
	ForceKey    string  `yaml:"force_key"`
	Dedupe      bool    `yaml:"dedupe"`
	LegatoFix   bool    `yaml:"legato_fix"`
}

// Validate rejects option values the passes cannot interpret.
func (o *Options) Validate() error {
	if o.Quantize != "" {
		if _, _, err := parseDivision(o.Quantize); err != nil {
			return err
		}
	}
	if len(o.VelClamp) != 0 && len(o.VelClamp) != 2 {
		return fmt.Errorf("vel clamp wants exactly MIN,MAX, got %d values", len(o.VelClamp))
	}
	return nil
}

// Run applies the enabled passes to notes in their fixed order: straighten,
// quantize, swing, humanize timing, velocity scale, velocity clamp,
// velocity humanize, force to key, dedupe, legato fix. It consumes the
// incoming store and returns the processed one; callers must not keep
// aliases to the argument. rng drives both humanize passes.
func Run(notes []*model.NoteEvent, ticksPerBeat int, opts Options, rng *rand.Rand) ([]*model.NoteEvent, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Straighten {
		fmt.Println("  Straightening chords...")
		notes = straightenChords(notes, constants.StraightenWindowTicks)
	}

	if opts.Quantize != "" {
		fmt.Printf("  Quantizing to %v...\n", opts.Quantize)
		grid, err := gridTicks(ticksPerBeat, opts.Quantize)
		if err != nil {
			return nil, err
		}
		quantizeNotes(notes, grid)
	}

	if opts.Swing != 0 {
		fmt.Printf("  Applying swing (%v)...\n", opts.Swing)
		grid, err := gridTicks(ticksPerBeat, constants.SwingDivision)
		if err != nil {
			return nil, err
		}
		applySwing(notes, opts.Swing, grid)
	}

	if opts.Humanize {
		fmt.Println("  Humanizing timing...")
		humanizeTiming(notes, constants.HumanizeTimingTicks, rng)
	}

	if opts.VelScale != 0 {
		fmt.Printf("  Scaling velocity by %v...\n", opts.VelScale)
		scaleVelocity(notes, opts.VelScale)
	}

	if len(opts.VelClamp) == 2 {
		fmt.Printf("  Clamping velocity to %d-%d...\n", opts.VelClamp[0], opts.VelClamp[1])
		clampVelocity(notes, opts.VelClamp[0], opts.VelClamp[1])
	}

	if opts.VelHumanize {
		fmt.Println("  Humanizing velocity...")
		humanizeVelocity(notes, constants.HumanizeVelocityRange, rng)
	}

	if opts.ForceKey != "" {
		root, mode := scale.ParseKey(opts.ForceKey)
		fmt.Printf("  Forcing to %v %v...\n", scale.NoteNames[root], mode.Name)
		forceToScale(notes, root, mode)
	}

	if opts.Dedupe {
		fmt.Println("  Removing duplicates...")
		before := len(notes)
		notes = deduplicate(notes)
		fmt.Printf("    Removed %d duplicates\n", before-len(notes))
	}

	if opts.LegatoFix {
		fmt.Println("  Fixing legato overlaps...")
		fixLegato(notes)
	}

	return notes, nil
}

func parseDivision(division string) (int, int, error) {
	var num, denom int
	if _, err := fmt.Sscanf(division, "%d/%d", &num, &denom); err != nil {
		return 0, 0, fmt.Errorf("bad division %q, want N/D like 1/16", division)
	}
	if num <= 0 || denom <= 0 {
		return 0, 0, fmt.Errorf("bad division %q, want positive N/D", division)
	}
	return num, denom, nil
}

// gridTicks converts a division string like "1/16" to its tick resolution,
// assuming a quarter note per beat.
func gridTicks(ticksPerBeat int, division string) (int64, error) {
	num, denom, err := parseDivision(division)
	if err != nil {
		return 0, err
	}
	grid := int64(float64(ticksPerBeat) * 4 * float64(num) / float64(denom))
	if grid <= 0 {
		return 0, fmt.Errorf("division %v is finer than the file resolution (%d ticks per beat)", division, ticksPerBeat)
	}
	return grid, nil
}
