package model

import (
	"github.com/jsphweid/blockbeat/beat"
)

// Note is a paired NoteOn/NoteOff. Tied is set when the note was merged from
// several back-to-back MIDI notes of the same pitch and channel.
type Note struct {
	Pitch     uint8
	Velocity  uint8
	Channel   uint8
	Track     uint16
	StartTick uint64
	EndTick   uint64
	Tied      bool
}

// QuantizedNote is a Note snapped onto the grid. GridStart and GridDuration
// are in quarter-note beats. Triplet notes sit on thirds of a beat instead of
// the binary grid.
type QuantizedNote struct {
	Note
	GridStart    beat.Beat
	GridDuration beat.Beat
	Triplet      bool
}

// BeatEvent is one emitted slot of the output sequence: a single note or a
// chord of notes sharing start, duration, triplet flag and channel.
type BeatEvent struct {
	GridStart        beat.Beat
	GridDuration     beat.Beat
	Triplet          bool
	Channel          uint8
	Notes            []QuantizedNote
	TiedFromPrevious bool
}

func (e BeatEvent) IsChord() bool {
	return len(e.Notes) > 1
}
