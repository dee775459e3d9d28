package model

// MidiMetadata is the song-level metadata stored per source filename.
type MidiMetadata struct {
	Year    uint   `json:"year,omitempty"`
	Artist  string `json:"artist,omitempty"`
	Release string `json:"release,omitempty"`
	Title   string `json:"title,omitempty"`
}

type FileNumToMidiPath = map[uint32]string
