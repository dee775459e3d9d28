package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/batch"
	"github.com/jsphweid/blockbeat/file"
	"github.com/jsphweid/blockbeat/util"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Converts a directory of midi files",
	Long:  `Converts a directory of midi files`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}
		runBatch(args[0], maxNum)
	},
}

func runBatch(dir string, maxNum int) {
	grid, err := gridFromFlags()
	if err != nil {
		panic("Could not read grid flags because: " + err.Error())
	}
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(dir, maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	batch.ProcessAllMidiFiles(fileNumMap, grid, pairOptsFromFlags())
}
