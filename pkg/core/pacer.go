package core

import "time"

// Pacer converts elapsed wall time into a number of due steps at a fixed
// rate. Unlike a frame-locked loop it can report several steps per call
// when the rate exceeds the caller's polling frequency.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
}

// NewPacer constructs a Pacer targeting rate steps per second. Non-positive
// rates fall back to 60.
func NewPacer(rate int) *Pacer {
	p := &Pacer{maxBurst: 64}
	p.SetRate(rate)
	return p
}

// SetRate changes the step rate.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	p.step = time.Second / time.Duration(rate)
}

// Due reports how many steps have accrued since the previous call. The
// first call only records the start time. At most maxBurst steps are
// returned; excess backlog is dropped so a stalled host does not spiral.
func (p *Pacer) Due(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	if n > p.maxBurst {
		n = p.maxBurst
	}
	return n
}
