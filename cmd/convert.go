package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/batch"
	"github.com/jsphweid/blockbeat/render"
)

var (
	flagFormat string
	flagOut    string
)

func init() {
	convertCmd.Flags().StringVar(&flagFormat, "format", "json", "output format: json or text")
	convertCmd.Flags().StringVar(&flagOut, "out", "", "output path, - for stdout (default <file>.blocks.json)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts a midi file to blocks",
	Long:  `Converts a midi file to blocks`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		convert(args[0])
	},
}

func convert(path string) {
	grid, err := gridFromFlags()
	if err != nil {
		panic("Could not read grid flags because: " + err.Error())
	}
	doc, err := batch.ConvertFile(path, grid, pairOptsFromFlags())
	if err != nil {
		panic("Could not convert because: " + err.Error())
	}

	if flagFormat == "text" {
		fmt.Print(render.Text(doc))
		return
	}

	dat, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic("Could not encode document because: " + err.Error())
	}
	out := flagOut
	if out == "" {
		out = strings.TrimSuffix(strings.TrimSuffix(path, ".mid"), ".midi") + ".blocks.json"
	}
	if out == "-" {
		fmt.Println(string(dat))
		return
	}
	if err := os.WriteFile(out, dat, 0644); err != nil {
		panic("Could not write document because: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
