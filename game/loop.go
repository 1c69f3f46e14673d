package game

import (
	"time"

	"the-snake/game/types"
)

type EventKind int

const (
	KeyDown EventKind = iota + 1
	Quit
)

// Event is an input event already translated by the frontend. Keys other than
// the four arrows never reach the game.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

// Window is the windowing collaborator the loop drives.
type Window interface {
	types.Canvas
	// WaitTick blocks until the next tick boundary.
	WaitTick()
	// PollEvents drains every event buffered since the last call.
	PollEvents() []Event
	BeginFrame()
	Present()
}

// Run drives the game until a quit event arrives.
func Run(w Window, g *Game) error {
	for {
		w.WaitTick()

		for _, ev := range w.PollEvents() {
			if !g.HandleEvent(ev) {
				g.End()
				return nil
			}
		}

		g.Step()

		w.BeginFrame()
		g.Draw(w)
		w.Present()
	}
}

// Ticker paces a loop at a fixed rate, independent of how long each tick's
// work takes.
type Ticker struct {
	interval time.Duration
	next     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewTicker(speed int) *Ticker {
	return &Ticker{
		interval: time.Second / time.Duration(speed),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Wait sleeps until the next tick boundary. When the loop has fallen behind
// it returns at once and restarts the schedule from now.
func (t *Ticker) Wait() {
	now := t.now()
	if t.next.IsZero() || now.After(t.next) {
		t.next = now.Add(t.interval)
		return
	}
	t.sleep(t.next.Sub(now))
	t.next = t.next.Add(t.interval)
}
