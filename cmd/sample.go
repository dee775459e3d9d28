package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/midi"
	"github.com/jsphweid/blockbeat/sample"
)

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Writes a trimmed excerpt of a midi file",
	Long:  `Writes a trimmed excerpt of a midi file, for isolating conversion bugs`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need at least 2 args...")
		}
		fromTick, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			panic(err)
		}
		maxNotes := 10
		if len(args) == 3 {
			maxNotes, err = strconv.Atoi(args[2])
			if err != nil {
				panic(err)
			}
		}
		runSample(args[0], fromTick, maxNotes)
	},
}

func runSample(path string, fromTick uint64, maxNotes int) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file because: " + err.Error())
	}
	excerpt := sample.Create(parsed, fromTick, maxNotes)
	out := path + ".sample.mid"
	if err := excerpt.WriteFile(out); err != nil {
		panic("Could not write excerpt because: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
