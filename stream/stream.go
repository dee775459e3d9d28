package stream

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jsphweid/blockbeat/model"
)

type ordered struct {
	event model.NoteEvent
	index int
}

// Normalize merges the per-track event streams into one list sorted by
// (tick, track, original index), so repeated runs over the same file come
// out identical. NoteOn with velocity 0 becomes a NoteOff. Non-note events
// are dropped. A note event whose payload disagrees with its status byte
// aborts the whole conversion; there is no partial output.
func Normalize(tracks [][]model.RawEvent) ([]model.NoteEvent, error) {
	var all []ordered
	for _, events := range tracks {
		for i, event := range events {
			switch event.Kind {
			case model.EventNoteOn, model.EventNoteOff:
			default:
				logrus.Debugf("dropping %v event at tick %d", event.Kind, event.Tick)
				continue
			}
			if err := validate(event); err != nil {
				return nil, err
			}
			ne := model.NoteEvent{
				Tick:     event.Tick,
				On:       event.Kind == model.EventNoteOn && event.Data[1] > 0,
				Pitch:    event.Data[0],
				Velocity: event.Data[1],
				Channel:  event.Channel,
				Track:    event.Track,
			}
			all = append(all, ordered{event: ne, index: i})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.event.Tick != b.event.Tick {
			return a.event.Tick < b.event.Tick
		}
		if a.event.Track != b.event.Track {
			return a.event.Track < b.event.Track
		}
		return a.index < b.index
	})

	res := make([]model.NoteEvent, 0, len(all))
	for _, o := range all {
		res = append(res, o.event)
	}
	return res, nil
}

func validate(event model.RawEvent) error {
	if len(event.Data) != 2 {
		return errors.Wrapf(model.ErrMalformedEvent,
			"track %d tick %d: note event with payload length %d", event.Track, event.Tick, len(event.Data))
	}
	if event.Data[0] > 0x7F || event.Data[1] > 0x7F {
		return errors.Wrapf(model.ErrMalformedEvent,
			"track %d tick %d: note event payload byte out of range", event.Track, event.Tick)
	}
	if event.Channel > 15 {
		return errors.Wrapf(model.ErrMalformedEvent,
			"track %d tick %d: channel %d out of range", event.Track, event.Tick, event.Channel)
	}
	return nil
}
