package sample

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/blockbeat/midi"
)

func fixture(numNotes int) *smf.SMF {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(480)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(90))
	for i := 0; i < numNotes; i++ {
		pitch := uint8(60 + i%12)
		tr.Add(0, gomidi.NoteOn(0, pitch, 100))
		tr.Add(240, gomidi.NoteOff(0, pitch))
	}
	tr.Close(0)
	sm.Add(tr)
	return sm
}

func countNoteEvents(s *smf.SMF) int {
	var n int
	for _, track := range s.Tracks {
		for _, evt := range track {
			if evt.Message.Is(gomidi.NoteOnMsg) || evt.Message.Is(gomidi.NoteOffMsg) {
				n++
			}
		}
	}
	return n
}

func TestCreateKeepsAtMostMaxNotes(t *testing.T) {
	excerpt := Create(fixture(20), 0, 10)
	assert.Equal(t, countNoteEvents(excerpt), 10)
}

func TestCreateDropsNotesBeforeOffset(t *testing.T) {
	excerpt := Create(fixture(4), 100000, 10)
	assert.Equal(t, countNoteEvents(excerpt), 0)
}

func TestCreatePreservesTimeFormat(t *testing.T) {
	src := fixture(2)
	excerpt := Create(src, 0, 10)
	assert.Equal(t, excerpt.TimeFormat, src.TimeFormat)
}

func TestExcerptRoundTripsThroughFile(t *testing.T) {
	excerpt := Create(fixture(20), 0, 6)
	path := filepath.Join(t.TempDir(), "excerpt.mid")

	assert := assert.New(t)
	assert.Nil(excerpt.WriteFile(path))

	loaded, err := midi.ReadMidiFile(path)
	assert.Nil(err)
	assert.Equal(countNoteEvents(loaded), 6)
}
