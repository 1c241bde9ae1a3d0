package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordeye",
	Short: "Realtime MIDI chord recognition",
	Long:  `Listens to a MIDI input and names the chord you are holding.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
