package render

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/model"
)

var hdr = model.Header{
	TicksPerQuarter: 480,
	TimeSig:         model.TimeSig{Numerator: 4, Denominator: 4},
	BPM:             120,
}

var grid = model.Grid{Precision: model.Eighth}

func ev(start, dur beat.Beat, pitches ...uint8) model.BeatEvent {
	e := model.BeatEvent{GridStart: start, GridDuration: dur}
	for _, p := range pitches {
		e.Notes = append(e.Notes, model.QuantizedNote{
			Note:         model.Note{Pitch: p, Velocity: 100},
			GridStart:    start,
			GridDuration: dur,
		})
	}
	return e
}

func TestSynthesizesRestsBetweenEvents(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.New(1, 2), 60),
		ev(beat.FromInt(1), beat.FromInt(1), 62),
	}
	doc := Build(hdr, grid, events, "test.mid")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 3)
	assert.Equal(doc.Blocks[0].Kind, "note")
	assert.Equal(doc.Blocks[1].Kind, "rest")
	assert.Equal(doc.Blocks[1].Start, "1/2")
	assert.Equal(doc.Blocks[1].Duration, "1/2")
	assert.Equal(doc.Blocks[1].DurationName, "eighth rest")
	assert.Empty(doc.Blocks[1].Notes)
	assert.Equal(doc.Blocks[2].Kind, "note")
}

func TestOverlappingEventsDoNotCreateRests(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.FromInt(4), 48),
		ev(beat.FromInt(1), beat.FromInt(1), 60),
		ev(beat.FromInt(4), beat.FromInt(1), 62),
	}
	doc := Build(hdr, grid, events, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 3)
	for _, block := range doc.Blocks {
		assert.NotEqual(block.Kind, "rest")
	}
}

func TestChordBlocks(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.FromInt(1), 60, 64, 67),
	}
	doc := Build(hdr, grid, events, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 1)
	assert.Equal(doc.Blocks[0].Kind, "chord")
	assert.Len(doc.Blocks[0].Notes, 3)
	assert.Equal(doc.Blocks[0].Notes[0].Name, "C4")
	assert.Equal(doc.Blocks[0].DurationName, "quarter note")
}

func TestBarIndexesFollowTimeSignature(t *testing.T) {
	waltz := model.Header{
		TicksPerQuarter: 480,
		TimeSig:         model.TimeSig{Numerator: 3, Denominator: 4},
		BPM:             90,
	}
	events := []model.BeatEvent{
		ev(beat.Zero, beat.FromInt(3), 60),
		ev(beat.FromInt(3), beat.FromInt(3), 62),
		ev(beat.FromInt(6), beat.FromInt(3), 64),
	}
	doc := Build(waltz, grid, events, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 3)
	assert.Equal(doc.Blocks[0].Bar, int64(1))
	assert.Equal(doc.Blocks[1].Bar, int64(2))
	assert.Equal(doc.Blocks[2].Bar, int64(3))
}

func TestDocumentIDIsValid(t *testing.T) {
	doc := Build(hdr, grid, nil, "")
	_, err := uuid.Parse(doc.ID)
	assert.Nil(t, err)
}

func TestDurationNames(t *testing.T) {
	cases := []struct {
		dur     beat.Beat
		triplet bool
		rest    bool
		want    string
	}{
		{beat.FromInt(4), false, false, "whole note"},
		{beat.FromInt(2), false, false, "half note"},
		{beat.FromInt(1), false, false, "quarter note"},
		{beat.New(1, 2), false, false, "eighth note"},
		{beat.New(1, 4), false, false, "sixteenth note"},
		{beat.New(3, 2), false, false, "dotted quarter note"},
		{beat.New(3, 4), false, false, "dotted eighth note"},
		{beat.New(7, 4), false, false, "double dotted quarter note"},
		{beat.New(1, 3), true, false, "triplet eighth note"},
		{beat.New(2, 3), true, false, "triplet quarter note"},
		{beat.New(1, 2), false, true, "eighth rest"},
		{beat.FromInt(1), false, true, "quarter rest"},
		{beat.New(5, 2), false, false, ""},
		{beat.New(1, 3), false, false, ""},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%v triplet=%v rest=%v", c.dur, c.triplet, c.rest)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, DurationName(c.dur, c.triplet, c.rest), c.want)
		})
	}
}

func TestUnnameableDurationSplitsIntoTiedBlocks(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.New(5, 2), 60),
	}
	doc := Build(hdr, grid, events, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 2)
	assert.Equal(doc.Blocks[0].Duration, "2")
	assert.Equal(doc.Blocks[0].DurationName, "half note")
	assert.False(doc.Blocks[0].Tied)
	assert.Equal(doc.Blocks[1].Start, "2")
	assert.Equal(doc.Blocks[1].Duration, "1/2")
	assert.Equal(doc.Blocks[1].DurationName, "eighth note")
	assert.True(doc.Blocks[1].Tied)
	assert.Equal(doc.Blocks[1].Notes, doc.Blocks[0].Notes)
}

func TestSplitBlocksInheritTieFromMerge(t *testing.T) {
	e := ev(beat.Zero, beat.New(5, 2), 60)
	e.TiedFromPrevious = true
	doc := Build(hdr, grid, []model.BeatEvent{e}, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 2)
	assert.True(doc.Blocks[0].Tied)
	assert.True(doc.Blocks[1].Tied)
}

func TestUnnameableRestSplitsIntoNamedRests(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.New(1, 2), 60),
		ev(beat.FromInt(3), beat.FromInt(1), 62),
	}
	doc := Build(hdr, grid, events, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 4)
	assert.Equal(doc.Blocks[1].Kind, "rest")
	assert.Equal(doc.Blocks[1].Start, "1/2")
	assert.Equal(doc.Blocks[1].Duration, "2")
	assert.Equal(doc.Blocks[1].DurationName, "half rest")
	assert.False(doc.Blocks[1].Tied)
	assert.Equal(doc.Blocks[2].Kind, "rest")
	assert.Equal(doc.Blocks[2].Start, "5/2")
	assert.Equal(doc.Blocks[2].Duration, "1/2")
	assert.Equal(doc.Blocks[2].DurationName, "eighth rest")
	assert.False(doc.Blocks[2].Tied)
}

func TestTripletDurationSplitsOnTripletTable(t *testing.T) {
	e := ev(beat.Zero, beat.FromInt(1), 60)
	e.Triplet = true
	doc := Build(hdr, grid, []model.BeatEvent{e}, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 2)
	assert.Equal(doc.Blocks[0].Duration, "2/3")
	assert.Equal(doc.Blocks[0].DurationName, "triplet quarter note")
	assert.Equal(doc.Blocks[1].Start, "2/3")
	assert.Equal(doc.Blocks[1].Duration, "1/3")
	assert.Equal(doc.Blocks[1].DurationName, "triplet eighth note")
	assert.True(doc.Blocks[1].Tied)
}

func TestTripletGapRestsUseTripletNames(t *testing.T) {
	e := ev(beat.Zero, beat.New(1, 3), 60)
	e.Triplet = true
	next := ev(beat.FromInt(1), beat.New(1, 2), 62)
	doc := Build(hdr, grid, []model.BeatEvent{e, next}, "")

	assert := assert.New(t)
	assert.Len(doc.Blocks, 3)
	assert.Equal(doc.Blocks[1].Kind, "rest")
	assert.Equal(doc.Blocks[1].Start, "1/3")
	assert.Equal(doc.Blocks[1].Duration, "2/3")
	assert.Equal(doc.Blocks[1].DurationName, "triplet quarter rest")
	assert.True(doc.Blocks[1].Triplet)
}

func TestTextRendering(t *testing.T) {
	events := []model.BeatEvent{
		ev(beat.Zero, beat.New(1, 2), 60),
		ev(beat.FromInt(4), beat.FromInt(1), 64, 67),
	}
	out := Text(Build(hdr, grid, events, "test.mid"))

	assert := assert.New(t)
	assert.Contains(out, "4/4 | 120 BPM | eighth grid")
	assert.Contains(out, "bar 1")
	assert.Contains(out, "bar 2")
	assert.Contains(out, "C4(100)")
	assert.Contains(out, "chord")
	assert.Contains(out, "rest")
}
