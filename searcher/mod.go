package searcher

import (
	"errors"
	"time"
)

// ErrEmptyFrontier is returned by Frontier.PopMin when nothing is queued. Engines treat
// it as "no solution" and never return it to callers.
var ErrEmptyFrontier = errors.New("frontier is empty")

// Problem declares a search instance. Implementations should be immutable: every
// operation on a state returns a new state.
type Problem[S comparable, A any] interface {
	Initial() S
	Actions(state S) []A
	// Result must only be called with an action returned by Actions(state)
	Result(state S, action A) (S, error)
	GoalTest(state S) bool
	StepCost(from S, action A, to S) float64
	// H estimates the remaining cost from the node's state to a goal
	H(node Node[S, A]) float64
}

// Base gives a Problem unit step costs and a zero heuristic. Embed it and override
// what the problem defines.
type Base[S comparable, A any] struct{}

func (Base[S, A]) StepCost(S, A, S) float64 { return 1 }
func (Base[S, A]) H(Node[S, A]) float64     { return 0 }

// Evaluation orders the frontier, smaller values are expanded first.
type Evaluation[S comparable, A any] func(Node[S, A]) float64

// PathCost is the uniform-cost evaluation g(n).
func PathCost[S comparable, A any]() Evaluation[S, A] {
	return func(n Node[S, A]) float64 { return n.PathCost() }
}

// Informed is the A* evaluation g(n) + h(n).
func Informed[S comparable, A any](problem Problem[S, A]) Evaluation[S, A] {
	return func(n Node[S, A]) float64 { return n.PathCost() + problem.H(n) }
}

type Outcome int

const (
	Failed Outcome = iota
	Solved
)

func (o Outcome) String() string {
	if o == Solved {
		return "solved"
	}
	return "failed"
}

// Reason explains a failed outcome.
type Reason int

const (
	None           Reason = iota
	Exhausted             // Search space exhausted without reaching a goal
	ExpansionLimit        // Caller-supplied expansion cap reached
	BoundExceeded         // RBFS root bound exceeded the caller-supplied cost limit
)

func (r Reason) String() string {
	switch r {
	case Exhausted:
		return "exhausted"
	case ExpansionLimit:
		return "expansion_limit"
	case BoundExceeded:
		return "bound_exceeded"
	default:
		return "none"
	}
}

type Result[S comparable, A any] struct {
	Outcome     Outcome
	Reason      Reason
	Goal        Node[S, A] // Zero value unless Outcome == Solved
	MaxFrontier int
	Expanded    int
	Duration    time.Duration
}

// Solution returns the actions leading to the goal, or nil if the search failed.
func (r Result[S, A]) Solution() []A {
	if r.Outcome != Solved {
		return nil
	}
	return r.Goal.Solution()
}
