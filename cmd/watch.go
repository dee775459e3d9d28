package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/batch"
	"github.com/jsphweid/blockbeat/render"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-converts a midi file whenever it changes",
	Long:  `Re-converts a midi file whenever it changes, for DAW export round-trips`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		watch(args[0])
	},
}

func watch(path string) {
	grid, err := gridFromFlags()
	if err != nil {
		panic("Could not read grid flags because: " + err.Error())
	}
	opts := pairOptsFromFlags()

	reconvert := func() {
		doc, err := batch.ConvertFile(path, grid, opts)
		if err != nil {
			fmt.Printf("Conversion failed: %v\n", err)
			return
		}
		fmt.Print(render.Text(doc))
	}
	reconvert()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	// DAW exports rewrite the file several times in a burst
	debounced := debounce.New(500 * time.Millisecond)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			debounced(reconvert)
		}
	}
}
