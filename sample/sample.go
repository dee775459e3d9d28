package sample

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/blockbeat/util"
)

// Create copies an SMF keeping only the first maxNotes note events per
// track at or after ticksOffset. Other events are kept with their
// deltas collapsed so the excerpt stays short but parses with the same
// header fields. Useful for isolating conversion bugs in large files.
func Create(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks >= ticksOffset {
					newTrack = append(newTrack, evt)
					numNoteOnOff += 1
					if numNoteOnOff >= maxNotes {
						newTrack.Close(0)
						break TrackEventLoop
					}
				}
			default:
				evt.Delta = util.Min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
