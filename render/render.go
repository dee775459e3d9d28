package render

import (
	"github.com/google/uuid"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/note"
)

type BlockNote struct {
	Pitch    uint8  `json:"pitch"`
	Name     string `json:"name"`
	Velocity uint8  `json:"velocity"`
}

type Block struct {
	Kind         string      `json:"kind"`
	Start        string      `json:"start"`
	Duration     string      `json:"duration"`
	DurationName string      `json:"durationName,omitempty"`
	Triplet      bool        `json:"triplet,omitempty"`
	Tied         bool        `json:"tied,omitempty"`
	Channel      uint8       `json:"channel"`
	Bar          int64       `json:"bar"`
	Notes        []BlockNote `json:"notes,omitempty"`
}

type Document struct {
	ID              string              `json:"id"`
	Source          string              `json:"source,omitempty"`
	TicksPerQuarter uint16              `json:"ticksPerQuarter"`
	TimeSignature   string              `json:"timeSignature"`
	BPM             float64             `json:"bpm"`
	Precision       string              `json:"precision"`
	TripletEnabled  bool                `json:"tripletEnabled"`
	TrackNames      []string            `json:"trackNames,omitempty"`
	Metadata        *model.MidiMetadata `json:"metadata,omitempty"`
	Blocks          []Block             `json:"blocks"`
}

// Build lays a converted sequence out as editor blocks. Rests are
// synthesized here from gaps between events; the conversion pipeline
// never emits them. A duration with no single conventional name is split
// into a run of tied blocks, longest named value first. Start and duration
// are exact rationals in beats, serialized as strings.
func Build(hdr model.Header, grid model.Grid, events []model.BeatEvent, source string) Document {
	doc := Document{
		ID:              uuid.NewString(),
		Source:          source,
		TicksPerQuarter: hdr.TicksPerQuarter,
		TimeSignature:   hdr.TimeSig.String(),
		BPM:             hdr.BPM,
		Precision:       grid.Precision.String(),
		TripletEnabled:  grid.TripletEnabled,
		TrackNames:      hdr.TrackNames,
		Blocks:          []Block{},
	}
	beatsPerBar := beat.New(int64(hdr.TimeSig.Numerator)*4, int64(hdr.TimeSig.Denominator))
	cursor := beat.Zero
	for _, ev := range events {
		if ev.GridStart.Cmp(cursor) > 0 {
			doc.Blocks = append(doc.Blocks, restBlocks(cursor, ev.GridStart.Sub(cursor), ev.Channel, beatsPerBar)...)
		}
		doc.Blocks = append(doc.Blocks, eventBlocks(ev, beatsPerBar)...)
		if end := ev.GridStart.Add(ev.GridDuration); end.Cmp(cursor) > 0 {
			cursor = end
		}
	}
	return doc
}

// restBlocks fills a timeline gap with rest blocks. A gap that divides into
// thirds but not into sixteenths takes triplet rest names.
func restBlocks(start, gap beat.Beat, channel uint8, beatsPerBar beat.Beat) []Block {
	triplet := isMultiple(gap, beat.New(1, 3)) && !isMultiple(gap, beat.New(1, 4))
	var blocks []Block
	pos := start
	for _, piece := range splitDuration(gap, triplet) {
		blocks = append(blocks, Block{
			Kind:         "rest",
			Start:        pos.String(),
			Duration:     piece.String(),
			DurationName: DurationName(piece, triplet, true),
			Triplet:      triplet,
			Channel:      channel,
			Bar:          barIndex(pos, beatsPerBar),
		})
		pos = pos.Add(piece)
	}
	return blocks
}

// eventBlocks renders one note or chord event. Every piece after the first
// carries the tied flag so a split value reads as one held sound.
func eventBlocks(ev model.BeatEvent, beatsPerBar beat.Beat) []Block {
	kind := "note"
	if ev.IsChord() {
		kind = "chord"
	}
	var notes []BlockNote
	for _, n := range ev.Notes {
		notes = append(notes, BlockNote{
			Pitch:    n.Pitch,
			Name:     note.Name(n.Pitch),
			Velocity: n.Velocity,
		})
	}
	var blocks []Block
	pos := ev.GridStart
	for i, piece := range splitDuration(ev.GridDuration, ev.Triplet) {
		blocks = append(blocks, Block{
			Kind:         kind,
			Start:        pos.String(),
			Duration:     piece.String(),
			DurationName: DurationName(piece, ev.Triplet, false),
			Triplet:      ev.Triplet,
			Tied:         ev.TiedFromPrevious || i > 0,
			Channel:      ev.Channel,
			Bar:          barIndex(pos, beatsPerBar),
			Notes:        notes,
		})
		pos = pos.Add(piece)
	}
	return blocks
}

func isMultiple(d, unit beat.Beat) bool {
	return d.Div(unit).Den == 1
}

func barIndex(pos, beatsPerBar beat.Beat) int64 {
	return pos.Div(beatsPerBar).Floor() + 1
}
