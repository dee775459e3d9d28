package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/batch"
	"github.com/jsphweid/blockbeat/render"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	grid, err := gridFromFlags()
	if err != nil {
		panic("Could not read grid flags because: " + err.Error())
	}
	doc, err := batch.ConvertFile(path, grid, pairOptsFromFlags())
	if err != nil {
		panic("Could not convert because: " + err.Error())
	}

	fmt.Printf("file: %v\n", path)
	fmt.Printf("ticksPerQuarter: %v\n", doc.TicksPerQuarter)
	if len(doc.TrackNames) > 0 {
		fmt.Printf("tracks: %v\n", strings.Join(doc.TrackNames, ", "))
	}
	fmt.Printf("blocks: %v\n", len(doc.Blocks))
	fmt.Print(render.Text(doc))
}
