package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slemfisk/midi-clean-v3/midi"
	"github.com/slemfisk/midi-clean-v3/model"
	"github.com/slemfisk/midi-clean-v3/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Prints a per-track note summary of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	mid, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	ticksPerBeat, err := midi.TicksPerBeat(mid)
	if err != nil {
		return err
	}
	notes := midi.ExtractNotes(mid)

	byTrack := make(map[int][]*model.NoteEvent)
	for _, n := range notes {
		byTrack[n.TrackIdx] = append(byTrack[n.TrackIdx], n)
	}

	fmt.Printf("ticks per beat: %d\n", ticksPerBeat)
	fmt.Printf("tracks: %d, notes: %d\n", len(mid.Tracks), len(notes))
	for _, trackIdx := range util.GetKeysSorted(byTrack) {
		trackNotes := byTrack[trackIdx]
		lo, hi := trackNotes[0].Pitch, trackNotes[0].Pitch
		var lastTick int64
		for _, n := range trackNotes {
			lo = util.Min(lo, n.Pitch)
			hi = util.Max(hi, n.Pitch)
			lastTick = util.Max(lastTick, n.EndTick)
		}
		fmt.Printf("track %d: %d notes, pitch %d-%d, last tick %d\n",
			trackIdx, len(trackNotes), lo, hi, lastTick)
	}
	return nil
}
