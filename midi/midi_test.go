package midi

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/blockbeat/model"
)

func makeTestSMF() *smf.SMF {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(480)

	var track0 smf.Track
	track0.Add(0, smf.MetaMeter(3, 4))
	track0.Add(0, smf.MetaTempo(90))
	track0.Close(0)
	sm.Add(track0)

	var track1 smf.Track
	track1.Add(0, gomidi.NoteOn(0, 60, 100))
	track1.Add(480, gomidi.NoteOff(0, 60))
	track1.Add(0, gomidi.NoteOn(2, 64, 0)) // zero velocity, the note-off convention
	track1.Close(0)
	sm.Add(track1)

	return sm
}

// readBack pushes the SMF through a file write and read so it arrives the
// same way production files do.
func readBack(t *testing.T, sm *smf.SMF) *smf.SMF {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mid")
	if err := sm.WriteFile(path); err != nil {
		t.Fatalf("could not write test midi file: %v", err)
	}
	parsed, err := ReadMidiFile(path)
	if err != nil {
		t.Fatalf("could not read test midi file back: %v", err)
	}
	return parsed
}

func TestExtractHeader(t *testing.T) {
	hdr, _, err := Extract(readBack(t, makeTestSMF()))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(hdr.TicksPerQuarter, uint16(480))
	assert.Equal(hdr.TimeSig, model.TimeSig{Numerator: 3, Denominator: 4})
	assert.Equal(hdr.TrackCount, uint16(2))
	assert.InDelta(90, hdr.BPM, 0.01)
}

func TestExtractEvents(t *testing.T) {
	_, tracks, err := Extract(readBack(t, makeTestSMF()))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tracks, 2)
	assert.Empty(tracks[0])

	events := tracks[1]
	assert.Len(events, 3)

	assert.Equal(events[0], model.RawEvent{
		Track: 1, Tick: 0, Kind: model.EventNoteOn, Channel: 0, Data: []byte{60, 100},
	})
	assert.Equal(events[1], model.RawEvent{
		Track: 1, Tick: 480, Kind: model.EventNoteOff, Channel: 0, Data: []byte{60, 0},
	})
	// velocity 0 stays a NoteOn here; the normalizer owns the folding
	assert.Equal(events[2], model.RawEvent{
		Track: 1, Tick: 480, Kind: model.EventNoteOn, Channel: 2, Data: []byte{64, 0},
	})
}

func TestExtractTrackNames(t *testing.T) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(480)

	var lead smf.Track
	lead.Add(0, smf.MetaInstrument("Piano"))
	lead.Add(0, smf.MetaTrackSequenceName("Lead"))
	lead.Add(0, gomidi.NoteOn(0, 60, 100))
	lead.Add(480, gomidi.NoteOff(0, 60))
	lead.Close(0)
	sm.Add(lead)

	var pad smf.Track
	pad.Add(0, smf.MetaInstrument("Strings"))
	pad.Add(0, gomidi.NoteOn(1, 48, 80))
	pad.Add(480, gomidi.NoteOff(1, 48))
	pad.Close(0)
	sm.Add(pad)

	hdr, _, err := Extract(readBack(t, sm))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(hdr.TrackNames, []string{"Lead", "Strings"})
}

func TestExtractRejectsMissingTickResolution(t *testing.T) {
	var blank smf.SMF
	_, _, err := Extract(&blank)

	assert := assert.New(t)
	assert.Error(err)
	assert.True(errors.Is(err, model.ErrUnsupportedTimeFormat))
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}

func TestReadGarbage(t *testing.T) {
	_, err := Read([]byte("this is not a midi file"))
	assert.Error(t, err)
}
