package quantize

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/jsphweid/blockbeat/beat"
	"github.com/jsphweid/blockbeat/util"
)

type classification uint8

const (
	straight classification = iota
	triplet
	unsupported
)

var third = beat.New(1, 3)

// relabelTriplets re-examines whole-beat windows that contain flagged
// onsets. A window whose onsets all sit on the three thirds of the beat
// becomes a triplet run: starts move to exact thirds and durations become
// multiples of a third. Sixth-spaced onsets (sixteenth triplets) and partial
// third patterns are recognized but unsupported; they keep the straight
// grid, as does anything ambiguous.
func relabelTriplets(cands []*candidate, fuzz beat.Beat) {
	windows := make(map[int64][]*candidate)
	for _, c := range cands {
		w := c.raw.Floor()
		windows[w] = append(windows[w], c)
	}

	keys := util.GetKeys(windows)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, w := range keys {
		group := windows[w]
		windowStart := beat.FromInt(w)
		if classify(group, windowStart, fuzz) != triplet {
			continue
		}
		for _, c := range group {
			k := c.raw.Sub(windowStart).MulInt(3).Round()
			c.start = windowStart.Add(beat.New(k, 3))
			c.dur = c.rawDur.NearestMultiple(third)
			if c.dur.IsZero() {
				c.dur = third
			}
			c.triplet = true
		}
	}
}

func classify(group []*candidate, windowStart beat.Beat, fuzz beat.Beat) classification {
	flagged := false
	for _, c := range group {
		if c.flagged {
			flagged = true
			break
		}
	}
	// everything within tolerance of the straight grid needs no
	// reinterpretation
	if !flagged {
		return straight
	}

	thirds := make(map[int64]bool)
	onThirds := true
	for _, c := range group {
		off := c.raw.Sub(windowStart)
		k := off.MulInt(3).Round()
		if k > 2 || off.Sub(beat.New(k, 3)).Abs().Cmp(fuzz) > 0 {
			onThirds = false
			break
		}
		thirds[k] = true
	}
	if onThirds {
		if len(thirds) == 3 {
			return triplet
		}
		logrus.Infof("partial triplet pattern in beat %v, keeping the straight grid", windowStart)
		return unsupported
	}

	onSixths := true
	for _, c := range group {
		off := c.raw.Sub(windowStart)
		k := off.MulInt(6).Round()
		if k > 5 || off.Sub(beat.New(k, 6)).Abs().Cmp(fuzz) > 0 {
			onSixths = false
			break
		}
	}
	if onSixths {
		logrus.Infof("sixteenth-note triplet pattern in beat %v is unsupported, keeping the straight grid", windowStart)
		return unsupported
	}

	return straight
}
