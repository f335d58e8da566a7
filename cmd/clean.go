package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/slemfisk/midi-clean-v3/midi"
	"github.com/slemfisk/midi-clean-v3/pipeline"
	"github.com/slemfisk/midi-clean-v3/preset"
)

var cleanFlags struct {
	overwrite  bool
	dryRun     bool
	presetFile string
	opts       pipeline.Options
}

func init() {
	f := cleanCmd.Flags()
	f.BoolVar(&cleanFlags.overwrite, "overwrite", false, "replace existing output")
	f.BoolVar(&cleanFlags.dryRun, "dry-run", false, "execute logic without writing")
	f.StringVar(&cleanFlags.presetFile, "preset", "", "YAML preset file; explicit flags override its values")

	f.StringVar(&cleanFlags.opts.Quantize, "quantize", "", "grid-lock notes to division (e.g., 1/16, 1/32)")
	f.BoolVar(&cleanFlags.opts.Straighten, "straighten", false, "align chord onsets vertically")
	f.Float64Var(&cleanFlags.opts.Swing, "swing", 0, "apply swing offset (0.0-1.0)")
	f.BoolVar(&cleanFlags.opts.Humanize, "humanize", false, "inject micro-timing variance")
	f.Float64Var(&cleanFlags.opts.VelScale, "vel-scale", 0, "scale velocities by factor")
	f.IntSliceVar(&cleanFlags.opts.VelClamp, "vel-clamp", nil, "clamp velocity range as MIN,MAX")
	f.BoolVar(&cleanFlags.opts.VelHumanize, "vel-human", false, "randomize velocity")
	f.StringVar(&cleanFlags.opts.ForceKey, "force-key", "", "constrain notes to scale (e.g., Dminor, Fmajor)")
	f.BoolVar(&cleanFlags.opts.Dedupe, "dedupe", false, "remove stacked duplicates")
	f.BoolVar(&cleanFlags.opts.LegatoFix, "legato-fix", false, "repair overlapping notes")

	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean <input> <output>",
	Short: "Runs a MIDI file through the reconstruction pipeline",
	Long: `Reads a MIDI file, rebuilds its note stream, applies the enabled
passes in a fixed order (straighten, quantize, swing, humanize,
velocity scale/clamp/humanize, force-key, dedupe, legato-fix)
and writes the reconstructed file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, args[0], args[1])
	},
}

// mergeOptions builds the effective pipeline options: the preset (if any)
// is the base, flags the user explicitly set win.
func mergeOptions(cmd *cobra.Command) (pipeline.Options, error) {
	if cleanFlags.presetFile == "" {
		return cleanFlags.opts, nil
	}
	base, err := preset.Read(cleanFlags.presetFile)
	if err != nil {
		return pipeline.Options{}, err
	}

	merged := *base
	flags := cmd.Flags()
	if flags.Changed("quantize") {
		merged.Quantize = cleanFlags.opts.Quantize
	}
	if flags.Changed("straighten") {
		merged.Straighten = cleanFlags.opts.Straighten
	}
	if flags.Changed("swing") {
		merged.Swing = cleanFlags.opts.Swing
	}
	if flags.Changed("humanize") {
		merged.Humanize = cleanFlags.opts.Humanize
	}
	if flags.Changed("vel-scale") {
		merged.VelScale = cleanFlags.opts.VelScale
	}
	if flags.Changed("vel-clamp") {
		merged.VelClamp = cleanFlags.opts.VelClamp
	}
	if flags.Changed("vel-human") {
		merged.VelHumanize = cleanFlags.opts.VelHumanize
	}
	if flags.Changed("force-key") {
		merged.ForceKey = cleanFlags.opts.ForceKey
	}
	if flags.Changed("dedupe") {
		merged.Dedupe = cleanFlags.opts.Dedupe
	}
	if flags.Changed("legato-fix") {
		merged.LegatoFix = cleanFlags.opts.LegatoFix
	}
	return merged, nil
}

func runClean(cmd *cobra.Command, input, output string) error {
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %v", input)
	}
	if _, err := os.Stat(output); err == nil && !cleanFlags.overwrite && !cleanFlags.dryRun {
		return fmt.Errorf("output file exists: %v (use --overwrite to replace)", output)
	}

	opts, err := mergeOptions(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Loading: %v\n", input)
	mid, err := midi.ReadMidiFile(input)
	if err != nil {
		return err
	}
	ticksPerBeat, err := midi.TicksPerBeat(mid)
	if err != nil {
		return err
	}

	fmt.Println("Parsing MIDI file...")
	notes := midi.ExtractNotes(mid)
	fmt.Printf("  Found %d notes\n", len(notes))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	notes, err = pipeline.Run(notes, ticksPerBeat, opts, rng)
	if err != nil {
		return err
	}

	if cleanFlags.dryRun {
		fmt.Println("\n[DRY RUN] No file written")
		fmt.Printf("Would output %d notes to: %v\n", len(notes), output)
		return nil
	}

	fmt.Println("\nReconstructing MIDI file...")
	if err := midi.WriteMidiFile(midi.Reconstruct(mid, notes), output); err != nil {
		return err
	}
	fmt.Printf("Saved: %v\n", output)
	return nil
}
