package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var theClock struct {
	timer  time.Duration
	real   time.Duration
	paused bool
}

func UpdateDelta() time.Duration {
	tps := eb.TPS()
	if tps <= 0 {
		tps = eb.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// UpdateGlobalTimer advances the animation clock by one tick.
// While paused the clock holds still, so resuming continues seamlessly.
func UpdateGlobalTimer() {
	theClock.real += UpdateDelta()
	if !theClock.paused {
		theClock.timer += UpdateDelta()
	}
}

func GlobalTimerNow() time.Duration {
	return theClock.timer
}

// RealTimerNow keeps counting while the animation clock is paused.
// Input repeat runs off this one.
func RealTimerNow() time.Duration {
	return theClock.real
}

func ElapsedSeconds() float64 {
	return GlobalTimerNow().Seconds()
}

func ResetGlobalTimer() {
	theClock.timer = 0
}

func SetPaused(paused bool) {
	theClock.paused = paused
}

func TogglePaused() {
	theClock.paused = !theClock.paused
}

func IsPaused() bool {
	return theClock.paused
}

// =================================
// animation phases
// =================================

const (
	GrowthPhaseEnd = 8.0 // seconds

	LockPhaseStart = 60.0
	LockPhaseEnd   = 62.0

	// once locked, animation time advances at 5% speed.
	// it settles, it doesn't hard stop.
	LockDamping = 0.95
)

// Phases is the per frame time snapshot every effect reads from.
// Computed once per frame, passed by value, never mutated by the core.
type Phases struct {
	// raw elapsed seconds
	Elapsed float64

	// smooth 0 to 1 ramp over the first GrowthPhaseEnd seconds
	Growth float64

	// smooth 0 to 1 ramp over [LockPhaseStart, LockPhaseEnd]
	Lock float64

	// elapsed time with the post lock damping applied,
	// continuous through the lock window
	ActiveTime float64
}

func ComputePhases(elapsed float64) Phases {
	return Phases{
		Elapsed:    elapsed,
		Growth:     SmoothStep(0, GrowthPhaseEnd, elapsed),
		Lock:       SmoothStep(LockPhaseStart, LockPhaseEnd, elapsed),
		ActiveTime: activeTime(elapsed),
	}
}

// activeTime integrates a clock rate of 1 before the lock window and
// 1-LockDamping after it, ramping between the two with the same smoothstep
// the lock phase uses. Integral of 3t^2-2t^3 over [0,x] is x^3 - x^4/2.
func activeTime(elapsed float64) float64 {
	if elapsed <= LockPhaseStart {
		return elapsed
	}

	window := LockPhaseEnd - LockPhaseStart

	if elapsed < LockPhaseEnd {
		x := (elapsed - LockPhaseStart) / window
		deficit := LockDamping * window * (x*x*x - x*x*x*x/2)
		return elapsed - deficit
	}

	atEnd := LockPhaseEnd - LockDamping*window*0.5
	return atEnd + (1-LockDamping)*(elapsed-LockPhaseEnd)
}

// =================================
// Timer
// =================================

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickDown() {
	t.Current -= UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}
