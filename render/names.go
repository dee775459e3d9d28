package render

import (
	"sort"

	"github.com/jsphweid/blockbeat/beat"
)

var straightBases = map[beat.Beat]string{
	beat.FromInt(4): "whole",
	beat.FromInt(2): "half",
	beat.FromInt(1): "quarter",
	beat.New(1, 2):  "eighth",
	beat.New(1, 4):  "sixteenth",
	beat.FromInt(6): "dotted whole",
	beat.FromInt(3): "dotted half",
	beat.New(3, 2):  "dotted quarter",
	beat.New(3, 4):  "dotted eighth",
	beat.New(3, 8):  "dotted sixteenth",
	beat.FromInt(7): "double dotted whole",
	beat.New(7, 2):  "double dotted half",
	beat.New(7, 4):  "double dotted quarter",
	beat.New(7, 8):  "double dotted eighth",
}

var tripletBases = map[beat.Beat]string{
	beat.New(1, 3): "triplet eighth",
	beat.New(2, 3): "triplet quarter",
}

var straightSplits = splitCandidates(straightBases)
var tripletSplits = splitCandidates(tripletBases)

func splitCandidates(bases map[beat.Beat]string) []beat.Beat {
	res := make([]beat.Beat, 0, len(bases))
	for d := range bases {
		res = append(res, d)
	}
	sort.Slice(res, func(i, j int) bool { return res[j].Less(res[i]) })
	return res
}

// splitDuration breaks a duration into nameable pieces, longest first, so a
// value with no single symbol can render as a run of tied blocks. A remainder
// smaller than every base comes back as one final unnamed piece.
func splitDuration(d beat.Beat, triplet bool) []beat.Beat {
	candidates := straightSplits
	if triplet {
		candidates = tripletSplits
	}
	var parts []beat.Beat
	rest := d
	for rest.Sign() > 0 {
		picked := false
		for _, c := range candidates {
			if c.Cmp(rest) <= 0 {
				parts = append(parts, c)
				rest = rest.Sub(c)
				picked = true
				break
			}
		}
		if !picked {
			parts = append(parts, rest)
			break
		}
	}
	return parts
}

// DurationName names a duration in beats, e.g. "dotted quarter note" or
// "eighth rest". Durations without a conventional name return "".
func DurationName(d beat.Beat, triplet bool, rest bool) string {
	bases := straightBases
	if triplet {
		bases = tripletBases
	}
	base, ok := bases[d]
	if !ok {
		return ""
	}
	if rest {
		return base + " rest"
	}
	return base + " note"
}
