package model

import (
	"strings"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/pkg/errors"
)

type Precision uint8

const (
	Whole Precision = iota
	Half
	Quarter
	Eighth
	Sixteenth
)

// Step is the grid step implied by the precision, in quarter-note beats.
func (p Precision) Step() beat.Beat {
	switch p {
	case Whole:
		return beat.FromInt(4)
	case Half:
		return beat.FromInt(2)
	case Quarter:
		return beat.FromInt(1)
	case Eighth:
		return beat.New(1, 2)
	case Sixteenth:
		return beat.New(1, 4)
	}
	panic("unknown precision")
}

func (p Precision) String() string {
	switch p {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	}
	return "unknown"
}

func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "whole":
		return Whole, nil
	case "half":
		return Half, nil
	case "quarter":
		return Quarter, nil
	case "eighth":
		return Eighth, nil
	case "sixteenth":
		return Sixteenth, nil
	}
	return 0, errors.Errorf("unknown precision %q", s)
}

// Grid configures quantization. FuzzTicks is the snap tolerance in ticks and
// carries no implied default; callers always set it explicitly.
type Grid struct {
	Precision      Precision
	TripletEnabled bool
	FuzzTicks      uint32
}

// PairOptions configures note pairing. TieEpsilonTicks is the largest gap
// between a NoteOff and the next NoteOn of the same pitch and channel for the
// two to merge into one sustained note.
type PairOptions struct {
	TieEpsilonTicks uint32
}
