package beat

import "fmt"

// Beat is an exact count of quarter-note beats stored as a rational number.
// Values are always normalized (reduced, denominator > 0) so that == is value
// equality and Beats can appear inside comparable map keys. Quantization
// decisions must never go through floating point.
type Beat struct {
	Num int64
	Den int64
}

var Zero = Beat{Num: 0, Den: 1}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func New(num, den int64) Beat {
	if den == 0 {
		panic("beat: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return Beat{Num: num / g, Den: den / g}
}

func FromInt(n int64) Beat {
	return Beat{Num: n, Den: 1}
}

// FromTicks maps an absolute tick position to beats: beat = tick / tpq.
func FromTicks(tick uint64, ticksPerQuarter uint16) Beat {
	return New(int64(tick), int64(ticksPerQuarter))
}

func (b Beat) Add(o Beat) Beat {
	return New(b.Num*o.Den+o.Num*b.Den, b.Den*o.Den)
}

func (b Beat) Sub(o Beat) Beat {
	return New(b.Num*o.Den-o.Num*b.Den, b.Den*o.Den)
}

func (b Beat) Mul(o Beat) Beat {
	return New(b.Num*o.Num, b.Den*o.Den)
}

func (b Beat) MulInt(n int64) Beat {
	return New(b.Num*n, b.Den)
}

func (b Beat) Div(o Beat) Beat {
	if o.Num == 0 {
		panic("beat: division by zero")
	}
	return New(b.Num*o.Den, b.Den*o.Num)
}

// Cmp returns -1, 0 or 1. Denominators are positive by construction so the
// cross product keeps the sign.
func (b Beat) Cmp(o Beat) int {
	d := b.Num*o.Den - o.Num*b.Den
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (b Beat) Less(o Beat) bool {
	return b.Cmp(o) < 0
}

func (b Beat) Abs() Beat {
	if b.Num < 0 {
		return Beat{Num: -b.Num, Den: b.Den}
	}
	return b
}

func (b Beat) Sign() int {
	switch {
	case b.Num < 0:
		return -1
	case b.Num > 0:
		return 1
	default:
		return 0
	}
}

func (b Beat) IsZero() bool {
	return b.Num == 0
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Floor returns the largest integer not greater than b.
func (b Beat) Floor() int64 {
	return floorDiv(b.Num, b.Den)
}

// Round returns the nearest integer, halves rounding up.
func (b Beat) Round() int64 {
	return floorDiv(2*b.Num+b.Den, 2*b.Den)
}

// NearestMultiple snaps b to the closest multiple of step, halves rounding
// up. This is the grid snapping primitive: with step = 1/2 (eighth precision)
// a position of 241/480 snaps to 1/2.
func (b Beat) NearestMultiple(step Beat) Beat {
	if step.Num == 0 {
		panic("beat: zero step")
	}
	k := b.Div(step).Round()
	return step.MulInt(k)
}

func (b Beat) Float64() float64 {
	return float64(b.Num) / float64(b.Den)
}

func (b Beat) String() string {
	if b.Den == 1 {
		return fmt.Sprintf("%d", b.Num)
	}
	return fmt.Sprintf("%d/%d", b.Num, b.Den)
}
