package quantize

import (
	"github.com/sirupsen/logrus"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/note"
)

type candidate struct {
	note    model.Note
	raw     beat.Beat // raw onset in beats
	rawDur  beat.Beat // raw duration in beats
	start   beat.Beat
	dur     beat.Beat
	triplet bool
	flagged bool
}

// Apply snaps every note onto the grid implied by the precision. Onset and
// duration quantize independently; duration clamps to at least one grid
// step. An onset further than FuzzTicks from its grid point is flagged and
// the beat window around it is re-examined for an eighth-triplet pattern.
// Notes whose raw duration is zero are dropped here, before clamping could
// inflate them into something that was never played.
func Apply(notes []model.Note, hdr model.Header, grid model.Grid) []model.QuantizedNote {
	step := grid.Precision.Step()
	fuzz := beat.New(int64(grid.FuzzTicks), int64(hdr.TicksPerQuarter))

	cands := make([]*candidate, 0, len(notes))
	for _, n := range notes {
		if n.EndTick <= n.StartTick {
			logrus.Debugf("dropping zero-length note %s ch=%d at tick %d", note.Name(n.Pitch), n.Channel, n.StartTick)
			continue
		}
		raw := beat.FromTicks(n.StartTick, hdr.TicksPerQuarter)
		rawDur := beat.FromTicks(n.EndTick-n.StartTick, hdr.TicksPerQuarter)

		start := raw.NearestMultiple(step)
		dur := rawDur.NearestMultiple(step)
		if dur.IsZero() {
			dur = step
		}

		dev := raw.Sub(start).Abs()
		flagged := dev.Cmp(fuzz) > 0
		if flagged {
			logrus.Debugf("onset %v sits %.3g beats off the straight grid", raw, dev.Float64())
		}

		cands = append(cands, &candidate{
			note:    n,
			raw:     raw,
			rawDur:  rawDur,
			start:   start,
			dur:     dur,
			flagged: flagged,
		})
	}

	if grid.TripletEnabled {
		relabelTriplets(cands, fuzz)
	}

	res := make([]model.QuantizedNote, 0, len(cands))
	for _, c := range cands {
		res = append(res, model.QuantizedNote{
			Note:         c.note,
			GridStart:    c.start,
			GridDuration: c.dur,
			Triplet:      c.triplet,
		})
	}
	return res
}
