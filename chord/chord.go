package chord

import (
	"sort"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/model"
)

type key struct {
	start    beat.Beat
	duration beat.Beat
	triplet  bool
	channel  uint8
}

// Group merges quantized notes that share a grid position, duration,
// triplet label and channel into one event. Notes inside an event are
// sorted by ascending pitch. Duplicate pitches collapse into a single
// note that keeps the loudest velocity.
func Group(qnotes []model.QuantizedNote) []model.BeatEvent {
	buckets := make(map[key][]model.QuantizedNote)
	for _, q := range qnotes {
		k := key{start: q.GridStart, duration: q.GridDuration, triplet: q.Triplet, channel: q.Channel}
		buckets[k] = append(buckets[k], q)
	}

	var events []model.BeatEvent
	for k, members := range buckets {
		events = append(events, model.BeatEvent{
			GridStart:    k.start,
			GridDuration: k.duration,
			Triplet:      k.triplet,
			Channel:      k.channel,
			Notes:        dedupe(members),
		})
	}

	sort.Slice(events, func(i, j int) bool {
		if c := events[i].GridStart.Cmp(events[j].GridStart); c != 0 {
			return c < 0
		}
		if events[i].Channel != events[j].Channel {
			return events[i].Channel < events[j].Channel
		}
		if events[i].Notes[0].Pitch != events[j].Notes[0].Pitch {
			return events[i].Notes[0].Pitch < events[j].Notes[0].Pitch
		}
		return events[i].GridDuration.Cmp(events[j].GridDuration) < 0
	})
	return events
}

func dedupe(members []model.QuantizedNote) []model.QuantizedNote {
	sort.Slice(members, func(i, j int) bool {
		if members[i].Pitch != members[j].Pitch {
			return members[i].Pitch < members[j].Pitch
		}
		return members[i].Velocity > members[j].Velocity
	})
	var notes []model.QuantizedNote
	for _, m := range members {
		if len(notes) > 0 && notes[len(notes)-1].Pitch == m.Pitch {
			if m.Tied {
				notes[len(notes)-1].Tied = true
			}
			continue
		}
		notes = append(notes, m)
	}
	return notes
}
