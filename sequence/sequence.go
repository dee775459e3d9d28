package sequence

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/chord"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/note"
	"github.com/jsphweid/blockbeat/quantize"
	"github.com/jsphweid/blockbeat/stream"
)

var third = beat.New(1, 3)

// Emit finalizes grouped events into the sequence handed to output
// adapters. Events whose notes were stitched from tied segments get
// TiedFromPrevious set. The output must be sorted and grid-aligned;
// anything else fails the whole run rather than emitting a partial
// sequence.
func Emit(events []model.BeatEvent, grid model.Grid) ([]model.BeatEvent, error) {
	step := grid.Precision.Step()
	prev := beat.Zero
	for i := range events {
		ev := &events[i]
		if ev.GridStart.Cmp(prev) < 0 {
			return nil, errors.Errorf("event %v starts at %v, before the previous event at %v", i, ev.GridStart, prev)
		}
		prev = ev.GridStart
		if ev.GridStart.Sign() < 0 {
			return nil, errors.Errorf("event %v starts before the first beat: %v", i, ev.GridStart)
		}
		if ev.GridDuration.Sign() <= 0 {
			return nil, errors.Errorf("event %v at %v has duration %v", i, ev.GridStart, ev.GridDuration)
		}
		unit := step
		if ev.Triplet {
			unit = third
		}
		if ev.GridStart.Div(unit).Den != 1 {
			return nil, errors.Errorf("event %v starts at %v, off the %v grid", i, ev.GridStart, unit)
		}
		for _, n := range ev.Notes {
			if n.Tied {
				ev.TiedFromPrevious = true
				break
			}
		}
	}
	return events, nil
}

// Convert runs the full pipeline over extracted track events: normalize,
// pair, quantize, group, emit.
func Convert(tracks [][]model.RawEvent, hdr model.Header, grid model.Grid, opts model.PairOptions) ([]model.BeatEvent, error) {
	nevents, err := stream.Normalize(tracks)
	if err != nil {
		return nil, err
	}
	notes := note.Pair(nevents, opts)
	qnotes := quantize.Apply(notes, hdr, grid)
	return Emit(chord.Group(qnotes), grid)
}
