package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/model"
)

var hdr = model.Header{
	TicksPerQuarter: 480,
	TimeSig:         model.TimeSig{Numerator: 4, Denominator: 4},
}

func mknote(start, end uint64, pitch uint8) model.Note {
	return model.Note{Pitch: pitch, Velocity: 100, StartTick: start, EndTick: end}
}

func TestSnapsFuzzyOnsetToSixteenthGrid(t *testing.T) {
	grid := model.Grid{Precision: model.Sixteenth, FuzzTicks: 5}
	qnotes := Apply([]model.Note{mknote(241, 481, 60)}, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 1)
	// tick 241 lands on the sixteenth at tick 240
	assert.Equal(qnotes[0].GridStart, beat.New(1, 2))
	assert.Equal(qnotes[0].GridDuration, beat.New(1, 2))
	assert.False(qnotes[0].Triplet)
}

func TestQuantizingAlignedPositionsIsIdempotent(t *testing.T) {
	grid := model.Grid{Precision: model.Eighth, FuzzTicks: 5}
	notes := []model.Note{
		mknote(0, 240, 60),
		mknote(240, 480, 62),
		mknote(960, 1920, 64),
	}
	qnotes := Apply(notes, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 3)
	for i, q := range qnotes {
		assert.Equal(q.GridStart, beat.FromTicks(notes[i].StartTick, hdr.TicksPerQuarter))
		assert.Equal(q.GridDuration, beat.FromTicks(notes[i].EndTick-notes[i].StartTick, hdr.TicksPerQuarter))
	}
}

func TestShortDurationClampsToOneStep(t *testing.T) {
	grid := model.Grid{Precision: model.Eighth, FuzzTicks: 5}
	qnotes := Apply([]model.Note{mknote(0, 10, 60)}, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 1)
	assert.Equal(qnotes[0].GridDuration, beat.New(1, 2))
}

func TestZeroLengthNoteIsDropped(t *testing.T) {
	grid := model.Grid{Precision: model.Eighth, FuzzTicks: 5}
	qnotes := Apply([]model.Note{
		mknote(0, 0, 60),
		mknote(0, 480, 62),
	}, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 1)
	assert.Equal(qnotes[0].Pitch, uint8(62))
}

func TestDeviationBeyondFuzzStillSnapsToNearestPoint(t *testing.T) {
	grid := model.Grid{Precision: model.Eighth, FuzzTicks: 5}
	qnotes := Apply([]model.Note{mknote(100, 340, 60)}, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 1)
	assert.Equal(qnotes[0].GridStart, beat.Zero)
	assert.False(qnotes[0].Triplet)
}

func TestCoarsePrecisionSnapsToWholeNotes(t *testing.T) {
	grid := model.Grid{Precision: model.Whole, FuzzTicks: 30}
	qnotes := Apply([]model.Note{mknote(1900, 3840, 60)}, hdr, grid)

	assert := assert.New(t)
	assert.Len(qnotes, 1)
	// 1900 ticks is just shy of beat 4, the whole-note point
	assert.Equal(qnotes[0].GridStart, beat.FromInt(4))
	assert.Equal(qnotes[0].GridDuration, beat.FromInt(4))
}
