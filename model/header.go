package model

import "fmt"

type TimeSig struct {
	Numerator   uint8
	Denominator uint8
}

func (t TimeSig) String() string {
	return fmt.Sprintf("%d/%d", t.Numerator, t.Denominator)
}

// Header carries the file-level fields the pipeline needs. A single constant
// time signature and tempo are assumed for the whole file; the adapter keeps
// the first of each it sees.
type Header struct {
	TicksPerQuarter uint16
	TimeSig         TimeSig
	TrackCount      uint16
	BPM             float64
	TrackNames      []string
}
