package searcher

import (
	"fmt"
	"math"
	"sort"
)

type successor[S comparable, A any] struct {
	node Node[S, A]
	f    float64 // Backed-up value, revised as subtrees are explored
}

type rbfs[S comparable, A any] struct {
	problem  Problem[S, A]
	f        Evaluation[S, A]
	args     *args
	counters *counters
	tree     *tree[S, A]
	maxDepth int
	maxWidth int
	cutoff   bool
}

// RecursiveBestFirst searches in space linear in the solution depth. Each frame keeps
// only its own children and the best alternative f-value elsewhere in the tree; when a
// subtree's backed-up value exceeds that bound the frame unwinds and its nodes are
// released from the arena.
func RecursiveBestFirst[S comparable, A any](problem Problem[S, A], f Evaluation[S, A], options ...Option) (Result[S, A], error) {
	if problem == nil || f == nil {
		panic("recursive best-first search needs a problem and an evaluation function")
	}
	r := &rbfs[S, A]{
		problem:  problem,
		f:        f,
		args:     newArgs(options),
		counters: startCounters(),
		tree:     newTree[S, A](64),
		maxWidth: 1,
	}

	r.args.logger.Debug().Msgf("starting recursive best-first search with bound %v", r.args.costLimit)

	root := r.tree.root(problem.Initial())
	goal, bound, err := r.search(root, f(root), r.args.costLimit, 1)
	if err != nil {
		return failed[S, A](r.counters, None), err
	}

	switch {
	case goal.Valid():
		r.args.logger.Debug().Msgf("goal found at depth %d after %d expansions", goal.Depth(), r.counters.expanded)
		return solved(r.counters, goal), nil
	case r.cutoff:
		r.args.logger.Debug().Msgf("expansion limit %d reached", r.args.maxExpansions)
		return failed[S, A](r.counters, ExpansionLimit), nil
	case math.IsInf(bound, 1):
		return failed[S, A](r.counters, Exhausted), nil
	default:
		r.args.logger.Debug().Msgf("root bound %v exceeds limit %v", bound, r.args.costLimit)
		return failed[S, A](r.counters, BoundExceeded), nil
	}
}

// RBFS is recursive best-first search ordered by f(n) = g(n) + h(n).
func RBFS[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return RecursiveBestFirst(problem, Informed(problem), options...)
}

// search returns the goal below node if one is reachable within limit. Otherwise it
// returns the zero Node and the smallest f-value that exceeded the limit, which the
// caller stores as node's backed-up value.
func (r *rbfs[S, A]) search(node Node[S, A], nodeF, limit float64, depth int) (Node[S, A], float64, error) {
	if r.args.limitReached(r.counters.expanded) {
		r.cutoff = true
		return Node[S, A]{}, math.Inf(1), nil
	}
	r.counters.addExpansion()
	r.maxDepth = max(r.maxDepth, depth)
	r.counters.observeStorage(r.maxDepth * r.maxWidth)

	if r.problem.GoalTest(node.State()) {
		return node, nodeF, nil
	}

	mark := r.tree.mark()
	children, err := node.Expand(r.problem)
	if err != nil {
		return Node[S, A]{}, 0, fmt.Errorf("expanding node at depth %d: %w", node.Depth(), err)
	}
	if len(children) == 0 {
		return Node[S, A]{}, math.Inf(1), nil
	}
	r.maxWidth = max(r.maxWidth, len(children))
	r.counters.observeStorage(r.maxDepth * r.maxWidth)

	successors := make([]successor[S, A], len(children))
	for i, child := range children {
		// Path-max: a child is never more promising than its parent
		successors[i] = successor[S, A]{node: child, f: max(r.f(child), nodeF)}
	}

	for {
		sort.SliceStable(successors, func(i, j int) bool {
			return successors[i].f < successors[j].f
		})
		best := &successors[0]
		if best.f > limit || math.IsInf(best.f, 1) {
			bound := best.f
			r.tree.truncate(mark)
			return Node[S, A]{}, bound, nil
		}

		alternative := math.Inf(1)
		if len(successors) > 1 {
			alternative = successors[1].f
		}

		goal, backedUp, err := r.search(best.node, best.f, min(limit, alternative), depth+1)
		if err != nil {
			return Node[S, A]{}, 0, err
		}
		if goal.Valid() {
			return goal, backedUp, nil
		}
		best.f = backedUp
		if r.cutoff {
			r.tree.truncate(mark)
			return Node[S, A]{}, math.Inf(1), nil
		}
	}
}
