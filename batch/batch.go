package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/jsphweid/blockbeat/constants"
	"github.com/jsphweid/blockbeat/file"
	"github.com/jsphweid/blockbeat/midi"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/render"
	"github.com/jsphweid/blockbeat/sequence"
	"github.com/jsphweid/blockbeat/util"
)

// ConvertFile reads one SMF and runs the full conversion, returning the
// renderable document.
func ConvertFile(path string, grid model.Grid, opts model.PairOptions) (render.Document, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return render.Document{}, err
	}
	hdr, tracks, err := midi.Extract(parsed)
	if err != nil {
		return render.Document{}, err
	}
	events, err := sequence.Convert(tracks, hdr, grid, opts)
	if err != nil {
		return render.Document{}, err
	}
	return render.Build(hdr, grid, events, filepath.Base(path)), nil
}

func writeDocument(path string, doc render.Document) error {
	dat, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	return os.WriteFile(path, dat, 0644)
}

func processMidiFile(fileNum uint32, path string, grid model.Grid, opts model.PairOptions, manifest *file.Manifest) {
	doc, err := ConvertFile(path, grid, opts)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		manifest.Skipped = append(manifest.Skipped, path)
		return
	}
	outPath := filepath.Join(constants.GetOutDir(), fmt.Sprintf("%06d.blocks.json", fileNum))
	if err := writeDocument(outPath, doc); err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		manifest.Skipped = append(manifest.Skipped, path)
		return
	}
	manifest.Blocks[fileNum] = len(doc.Blocks)
}

// ProcessAllMidiFiles converts every file in the map into the out dir
// and writes the run manifest. Files that fail to convert are skipped,
// never fatal.
func ProcessAllMidiFiles(m model.FileNumToMidiPath, grid model.Grid, opts model.PairOptions) file.Manifest {
	manifest := file.Manifest{
		Files:  m,
		Blocks: make(map[uint32]int),
	}
	keys := util.GetKeys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i, num := range keys {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
		processMidiFile(num, m[num], grid, opts, &manifest)
	}
	file.WriteManifest(manifest)
	return manifest
}
