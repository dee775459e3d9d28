package note

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jsphweid/blockbeat/model"
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns the human-readable version of a pitch value, e.g. 60 -> C4.
func Name(pitch uint8) string {
	octave := int(pitch)/12 - 1
	return names[int(pitch)%12] + strconv.Itoa(octave)
}

const numSlots = 16 * 128

// openEnd marks a note whose NoteOff has not arrived yet.
const openEnd = ^uint64(0)

func slot(channel, pitch uint8) int {
	return int(channel)<<7 | int(pitch)
}

// Pair matches NoteOn events with their NoteOff to build complete notes.
// Events must already be normalized and time-ordered.
//
// Per (channel, pitch) slot the oldest unmatched NoteOn closes first, so
// overlapping retriggers of one pitch resolve deterministically. A NoteOff
// with no open note is ignored. A NoteOn still open at end-of-stream is
// dropped. Both are warnings, not errors.
//
// A NoteOn arriving within TieEpsilonTicks of the previous close on the same
// slot does not start a new note: the closed note is reopened and its
// eventual NoteOff extends it, marking the note as tied. This reconstructs
// sustains that DAW exports split into back-to-back note events. A reopened
// note that never closes again keeps its earlier release point.
func Pair(events []model.NoteEvent, opts model.PairOptions) []model.Note {
	var all []model.Note

	// FIFO queues of open note indexes per slot
	open := make([][]int, numSlots)
	lastClosed := make([]int, numSlots)
	for i := range lastClosed {
		lastClosed[i] = -1
	}

	for _, ev := range events {
		s := slot(ev.Channel, ev.Pitch)
		if ev.On {
			if j := lastClosed[s]; j >= 0 && ev.Tick-all[j].EndTick <= uint64(opts.TieEpsilonTicks) {
				all[j].Tied = true
				open[s] = append(open[s], j)
				lastClosed[s] = -1
				continue
			}
			all = append(all, model.Note{
				Pitch:     ev.Pitch,
				Velocity:  ev.Velocity,
				Channel:   ev.Channel,
				Track:     ev.Track,
				StartTick: ev.Tick,
				EndTick:   openEnd,
			})
			open[s] = append(open[s], len(all)-1)
			continue
		}

		q := open[s]
		if len(q) == 0 {
			logrus.Warnf("note off for unpressed note: %s ch=%d at tick %d", Name(ev.Pitch), ev.Channel, ev.Tick)
			continue
		}
		j := q[0]
		open[s] = q[1:]
		all[j].EndTick = ev.Tick
		lastClosed[s] = j
	}

	dropped := make(map[int]bool)
	for _, q := range open {
		for _, j := range q {
			n := all[j]
			if n.EndTick == openEnd {
				logrus.Warnf("missing note off for note: %s ch=%d started at tick %d, dropping it",
					Name(n.Pitch), n.Channel, n.StartTick)
				dropped[j] = true
			} else {
				logrus.Warnf("missing note off for re-struck note: %s ch=%d, keeping release at tick %d",
					Name(n.Pitch), n.Channel, n.EndTick)
			}
		}
	}
	if len(dropped) == 0 {
		return all
	}

	res := make([]model.Note, 0, len(all)-len(dropped))
	for i, n := range all {
		if !dropped[i] {
			res = append(res, n)
		}
	}
	return res
}
