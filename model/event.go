package model

type EventKind uint8

const (
	EventNoteOn EventKind = iota
	EventNoteOff
	EventControlChange
	EventProgramChange
	EventSysEx
)

func (k EventKind) String() string {
	switch k {
	case EventNoteOn:
		return "note-on"
	case EventNoteOff:
		return "note-off"
	case EventControlChange:
		return "control-change"
	case EventProgramChange:
		return "program-change"
	case EventSysEx:
		return "sysex"
	}
	return "unknown"
}

// RawEvent is one byte-decoded track event as handed over by the chunk
// reader. Tick is absolute within the track. For note events Data holds the
// two payload bytes {pitch, velocity}; the normalizer rejects anything else.
type RawEvent struct {
	Track   uint16
	Tick    uint64
	Kind    EventKind
	Channel uint8
	Data    []byte
}

// NoteEvent is a normalized note event: tracks merged, zero-velocity NoteOn
// already folded into On=false.
type NoteEvent struct {
	Tick     uint64
	On       bool
	Pitch    uint8
	Velocity uint8
	Channel  uint8
	Track    uint16
}
