package file

import (
	"path/filepath"

	"github.com/jsphweid/blockbeat/constants"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/util"
)

// Manifest records what a batch run produced: which source each file
// number refers to, how many blocks each document holds, and which
// sources were skipped.
type Manifest struct {
	Files   model.FileNumToMidiPath
	Blocks  map[uint32]int
	Skipped []string
}

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

func WriteManifest(m Manifest) {
	util.CreateBinary(filepath.Join(constants.GetOutDir(), constants.ManifestFilename), m)
}

func ReadManifest(dir string) Manifest {
	return util.ReadBinaryOrPanic[Manifest](filepath.Join(dir, constants.ManifestFilename))
}
