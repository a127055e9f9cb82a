package floor

import (
	"math/rand"
	"time"
)

// RandomizerPhase is the lifecycle stage of the highlight sweep.
type RandomizerPhase string

const (
	// RandomizerIdle means no sweep has started.
	RandomizerIdle RandomizerPhase = "idle"
	// RandomizerRunning means the highlight is jumping between tiles.
	RandomizerRunning RandomizerPhase = "running"
	// RandomizerFinished means the sweep has landed on its final tile.
	RandomizerFinished RandomizerPhase = "finished"
)

// Randomizer drives the timed, decelerating highlight sweep that
// selects the duel origin tile. Timing is supplied by the frame driver
// as elapsed wall-clock milliseconds; the engine keeps no threads.
//
// The switch interval is interpolated from the elapsed-time fraction,
// not the switch count, so the sweep always lands exactly at the total
// duration regardless of how many jumps occurred.
type Randomizer struct {
	phase     RandomizerPhase
	tileCount int

	totalMs       int64
	minIntervalMs int64
	maxIntervalMs int64

	highlighted  int
	startAt      int64
	nextSwitchAt int64
	finalIndex   int

	rng *rand.Rand
}

// NewRandomizer creates an idle randomizer over tileCount tiles.
func NewRandomizer(tileCount int, totalMs, minIntervalMs, maxIntervalMs int64) *Randomizer {
	return &Randomizer{
		phase:         RandomizerIdle,
		tileCount:     tileCount,
		totalMs:       totalMs,
		minIntervalMs: minIntervalMs,
		maxIntervalMs: maxIntervalMs,
		highlighted:   -1,
		finalIndex:    -1,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Phase returns the current lifecycle stage.
func (r *Randomizer) Phase() RandomizerPhase { return r.phase }

// Highlighted returns the currently highlighted tile index, or -1 when
// idle.
func (r *Randomizer) Highlighted() int { return r.highlighted }

// FinalIndex returns the chosen origin tile index. ok is true only
// once the sweep has finished.
func (r *Randomizer) FinalIndex() (int, bool) {
	if r.phase != RandomizerFinished {
		return -1, false
	}
	return r.finalIndex, true
}

// Start begins a new sweep at the given frame time. Valid only from
// idle or after a prior sweep finished; a start during a running sweep
// is ignored. Reports whether the sweep started.
func (r *Randomizer) Start(now int64) bool {
	if r.phase == RandomizerRunning || r.tileCount == 0 {
		return false
	}
	r.phase = RandomizerRunning
	r.startAt = now
	r.highlighted = r.rng.Intn(r.tileCount)
	r.nextSwitchAt = now + r.minIntervalMs
	r.finalIndex = -1
	return true
}

// Tick advances the sweep to the given frame time. Call once per
// rendered frame while the sweep runs; calls in other phases are
// no-ops.
func (r *Randomizer) Tick(now int64) {
	if r.phase != RandomizerRunning {
		return
	}

	elapsed := now - r.startAt
	if elapsed >= r.totalMs {
		r.phase = RandomizerFinished
		r.finalIndex = r.highlighted
		return
	}

	if now >= r.nextSwitchAt {
		t := clamp(float64(elapsed)/float64(r.totalMs), 0, 1)
		eased := t * t // quadratic ease-out: fast jumps early, slow near the end
		interval := r.minIntervalMs +
			int64(float64(r.maxIntervalMs-r.minIntervalMs)*eased)

		r.highlighted = r.pickNext(r.highlighted)
		r.nextSwitchAt = now + interval
	}
}

// pickNext returns a uniformly random tile index different from
// current, guaranteeing visible movement on every switch.
func (r *Randomizer) pickNext(current int) int {
	if r.tileCount <= 1 {
		return 0
	}
	for {
		idx := r.rng.Intn(r.tileCount)
		if idx != current {
			return idx
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
