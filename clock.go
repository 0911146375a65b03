package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

// UpdateDelta is the game time one Update call stands for.
func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// Timer measures progress through an animation of length Duration.
// A negative Current means the animation has not started yet.
type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) Started() bool {
	return t.Current >= 0
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}

// ScheduledTimer starts an animation delay after the stage began,
// with elapsed time since then.
func ScheduledTimer(duration, delay, elapsed time.Duration) Timer {
	return Timer{
		Duration: duration,
		Current:  elapsed - delay,
	}
}
