package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/blockbeat/constants"
	"github.com/jsphweid/blockbeat/model"
)

// Read parses raw SMF bytes. gomidi can panic on truncated input, so the
// panic is converted into an error here.
// https://github.com/gomidi/midi/issues/20
func Read(dat []byte) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			e = errors.Errorf("parsing midi data: %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi data")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return Read(dat)
}

// Extract converts a parsed SMF into the header fields and per-track raw
// event streams the pipeline consumes. Ticks are made absolute per track.
// Only the first time signature and the first tempo are honored; later
// changes are logged and ignored since the output assumes both stay constant.
func Extract(s *smf.SMF) (model.Header, [][]model.RawEvent, error) {
	var hdr model.Header

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return hdr, nil, errors.Wrapf(model.ErrUnsupportedTimeFormat, "time format %v", s.TimeFormat)
	}
	hdr.TicksPerQuarter = uint16(ticks)
	if hdr.TicksPerQuarter == 0 {
		return hdr, nil, errors.Wrap(model.ErrUnsupportedTimeFormat, "zero ticks per quarter")
	}
	hdr.TimeSig = model.TimeSig{Numerator: 4, Denominator: 4}
	hdr.TrackCount = uint16(len(s.Tracks))
	hdr.TrackNames = make([]string, len(s.Tracks))
	hdr.BPM = constants.DefaultBPM

	if tempos := s.TempoChanges(); len(tempos) > 0 {
		hdr.BPM = tempos[0].BPM
		if len(tempos) > 1 {
			logrus.Debugf("ignoring %d tempo changes after the first", len(tempos)-1)
		}
	}

	var sawTimeSig bool
	tracks := make([][]model.RawEvent, len(s.Tracks))
	for i, track := range s.Tracks {
		var absTicks uint64
		var events []model.RawEvent
		var instrument string
		for _, event := range track {
			absTicks += uint64(event.Delta)

			var channel, key, velocity uint8
			var num, denom, clocksPerClick, dsqpq uint8
			var name string
			var data []byte
			msg := event.Message
			switch {
			case msg.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.RawEvent{
					Track:   uint16(i),
					Tick:    absTicks,
					Kind:    model.EventNoteOn,
					Channel: channel,
					Data:    []byte{key, velocity},
				})
			case msg.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.RawEvent{
					Track:   uint16(i),
					Tick:    absTicks,
					Kind:    model.EventNoteOff,
					Channel: channel,
					Data:    []byte{key, velocity},
				})
			case msg.GetControlChange(&channel, &key, &velocity):
				events = append(events, model.RawEvent{
					Track:   uint16(i),
					Tick:    absTicks,
					Kind:    model.EventControlChange,
					Channel: channel,
					Data:    []byte{key, velocity},
				})
			case msg.GetSysEx(&data):
				events = append(events, model.RawEvent{
					Track: uint16(i),
					Tick:  absTicks,
					Kind:  model.EventSysEx,
					Data:  data,
				})
			case msg.GetMetaTimeSig(&num, &denom, &clocksPerClick, &dsqpq):
				if !sawTimeSig {
					hdr.TimeSig = model.TimeSig{Numerator: num, Denominator: denom}
					sawTimeSig = true
				} else {
					logrus.Debugf("ignoring time signature change to %d/%d at tick %d", num, denom, absTicks)
				}
			case msg.GetMetaTrackName(&name):
				if hdr.TrackNames[i] == "" {
					hdr.TrackNames[i] = name
				}
			case msg.GetMetaInstrument(&name):
				if instrument == "" {
					instrument = name
				}
			}
		}
		// the track name wins over the instrument name when both appear
		if hdr.TrackNames[i] == "" {
			hdr.TrackNames[i] = instrument
		}
		tracks[i] = events
	}

	return hdr, tracks, nil
}
