package searcher

import (
	"errors"
	"fmt"
)

// BestFirst runs graph search, always expanding the frontier node with the smallest f.
// The goal test is applied when a node is popped, so with an admissible and consistent
// heuristic the first goal returned by AStar has minimal path cost.
func BestFirst[S comparable, A any](problem Problem[S, A], f Evaluation[S, A], options ...Option) (Result[S, A], error) {
	if problem == nil || f == nil {
		panic("best-first search needs a problem and an evaluation function")
	}
	a := newArgs(options)
	c := startCounters()
	t := newTree[S, A](64)

	frontier := NewFrontier(f)
	frontier.Insert(t.root(problem.Initial()))
	c.observeStorage(frontier.Len())
	explored := make(map[S]struct{})

	a.logger.Debug().Msg("starting best-first search")

	for {
		if a.limitReached(c.expanded) {
			a.logger.Debug().Msgf("expansion limit %d reached", a.maxExpansions)
			return failed[S, A](c, ExpansionLimit), nil
		}

		node, err := frontier.PopMin()
		if errors.Is(err, ErrEmptyFrontier) {
			a.logger.Debug().Msgf("frontier exhausted after %d expansions", c.expanded)
			return failed[S, A](c, Exhausted), nil
		}
		c.addExpansion()

		state := node.State()
		if problem.GoalTest(state) {
			a.logger.Debug().Msgf("goal found at depth %d after %d expansions", node.Depth(), c.expanded)
			return solved(c, node), nil
		}
		explored[state] = struct{}{}

		for _, action := range problem.Actions(state) {
			child, err := node.Child(problem, action)
			if err != nil {
				return failed[S, A](c, None), fmt.Errorf("expanding node at depth %d: %w", node.Depth(), err)
			}

			childState := child.State()
			if _, ok := explored[childState]; ok {
				continue
			}
			queued, queuedF, ok := frontier.Get(childState)
			if !ok {
				frontier.Insert(child)
				c.observeStorage(frontier.Len())
			} else if queuedF > f(child) {
				frontier.Replace(queued.State(), child)
			}
		}
	}
}

// AStar is best-first search ordered by f(n) = g(n) + h(n).
func AStar[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return BestFirst(problem, Informed(problem), options...)
}

// UniformCost is best-first search ordered by path cost alone.
func UniformCost[S comparable, A any](problem Problem[S, A], options ...Option) (Result[S, A], error) {
	return BestFirst(problem, PathCost[S, A](), options...)
}
