package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "midiclean",
	Short:        "Algorithmic MIDI reconstruction",
	Long:         `Surgical MIDI reconstruction: deterministic quantization, harmonic forcing, velocity conditioning, and vertical chord alignment.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
