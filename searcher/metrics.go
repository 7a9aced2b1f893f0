package searcher

import "time"

// counters tracks the two cost dimensions of a run: expansions and peak storage.
type counters struct {
	startTime time.Time
	expanded  int
	storage   int
}

func startCounters() *counters {
	return &counters{startTime: time.Now()}
}

func (c *counters) addExpansion() {
	c.expanded++
}

func (c *counters) observeStorage(size int) {
	c.storage = max(c.storage, size)
}

func solved[S comparable, A any](c *counters, goal Node[S, A]) Result[S, A] {
	return Result[S, A]{
		Outcome:     Solved,
		Goal:        goal,
		MaxFrontier: c.storage,
		Expanded:    c.expanded,
		Duration:    time.Since(c.startTime),
	}
}

func failed[S comparable, A any](c *counters, reason Reason) Result[S, A] {
	return Result[S, A]{
		Outcome:     Failed,
		Reason:      reason,
		MaxFrontier: c.storage,
		Expanded:    c.expanded,
		Duration:    time.Since(c.startTime),
	}
}
