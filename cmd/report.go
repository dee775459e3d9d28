package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/constants"
	"github.com/jsphweid/blockbeat/file"
	"github.com/jsphweid/blockbeat/render"
	"github.com/jsphweid/blockbeat/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report over the documents of a batch run`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type outDirReport struct {
	numDocs     int64
	numBlocks   int64
	numChords   int64
	numTriplets int64
	numRests    int64
	numBytes    int64
	blockCounts []int64
}

func analyzeOutDir() outDirReport {
	var rep outDirReport

	outDir := constants.GetOutDir()
	entries, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r, _ := regexp.Compile(`^\d{6}\.blocks\.json$`)
	for _, entry := range entries {
		filename := entry.Name()
		if !r.MatchString(filename) {
			continue
		}
		rep.numDocs += 1

		dat, err := os.ReadFile(filepath.Join(outDir, filename))
		if err != nil {
			panic("Could not read file because: " + err.Error())
		}
		rep.numBytes += int64(len(dat))

		var doc render.Document
		if err := json.Unmarshal(dat, &doc); err != nil {
			panic("Could not decode document because: " + err.Error())
		}
		rep.numBlocks += int64(len(doc.Blocks))
		rep.blockCounts = append(rep.blockCounts, int64(len(doc.Blocks)))
		for _, block := range doc.Blocks {
			switch block.Kind {
			case "chord":
				rep.numChords += 1
			case "rest":
				rep.numRests += 1
			}
			if block.Triplet {
				rep.numTriplets += 1
			}
		}
	}

	return rep
}

func report() {
	rep := analyzeOutDir()
	fmt.Printf("report.numDocs: %v\n", rep.numDocs)
	fmt.Printf("report.numBlocks: %v\n", rep.numBlocks)
	fmt.Printf("report.numChords: %v\n", rep.numChords)
	fmt.Printf("report.numTriplets: %v\n", rep.numTriplets)
	fmt.Printf("report.numRests: %v\n", rep.numRests)
	fmt.Printf("report.numBytes: %v\n", rep.numBytes)
	fmt.Printf("blocks per doc: %v\n", rep.blockCounts)

	manifest := file.ReadManifest(constants.GetOutDir())
	var fromManifest []int
	for _, num := range util.GetKeys(manifest.Blocks) {
		fromManifest = append(fromManifest, manifest.Blocks[num])
	}
	fmt.Printf("manifest.numDocs: %v\n", len(manifest.Blocks))
	fmt.Printf("manifest.numBlocks: %v\n", util.Sum(fromManifest))
	fmt.Printf("manifest.numSkipped: %v\n", len(manifest.Skipped))
}
