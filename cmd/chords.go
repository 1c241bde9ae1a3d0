package cmd

import (
	"fmt"

	"github.com/jsphweid/chordeye/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Prints the chord catalog",
	Long:  `Prints the chord catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		printChords()
	},
}

func printChords() {
	for _, ct := range catalog.All() {
		symbol := ct.Symbol
		if symbol == "" {
			symbol = "-"
		}
		fmt.Printf("%-28v %-8v %v\n", ct.Name, symbol, ct.Intervals)
	}
}
