package searcher

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestAStar(t *testing.T) {
	t.Run("finds the cheapest path", func(t *testing.T) {
		result, err := AStar[string, string](newMockProblem())

		require.NoError(t, err)
		require.Equal(t, Solved, result.Outcome)
		require.Equal(t, None, result.Reason)
		require.Equal(t, []string{"A", "B", "C", "G"}, result.Solution())
		require.Equal(t, 8.0, result.Goal.PathCost())
		require.Equal(t, 5, result.Expanded, "S, A, B, C, G should each be popped once")
		require.Equal(t, 4, result.MaxFrontier, "Frontier peaks at B, D, C, G after expanding A")
	})

	t.Run("initial state is a goal", func(t *testing.T) {
		p := newMockProblem()
		p.goal = "S"

		result, err := AStar[string, string](p)

		require.NoError(t, err)
		require.Equal(t, Solved, result.Outcome)
		require.Empty(t, result.Solution())
		require.Equal(t, 1, result.Expanded)
		require.Equal(t, 1, result.MaxFrontier)
	})

	t.Run("unreachable goal exhausts the frontier", func(t *testing.T) {
		p := newMockProblem()
		p.goal = "Z"

		result, err := AStar[string, string](p)

		require.NoError(t, err, "Exhaustion is an outcome, not an error")
		require.Equal(t, Failed, result.Outcome)
		require.Equal(t, Exhausted, result.Reason)
		require.Nil(t, result.Solution())
		require.False(t, result.Goal.Valid())
		require.Equal(t, 6, result.Expanded, "Every reachable state should be expanded exactly once")
	})

	t.Run("expansion limit fails the search", func(t *testing.T) {
		result, err := AStar[string, string](newMockProblem(), WithMaxExpansions(2))

		require.NoError(t, err)
		require.Equal(t, Failed, result.Outcome)
		require.Equal(t, ExpansionLimit, result.Reason)
		require.Equal(t, 2, result.Expanded)
	})

	t.Run("invalid action aborts with an error", func(t *testing.T) {
		p := newMockProblem()
		p.extra = []string{"nowhere"}

		result, err := AStar[string, string](p, WithLogger(zerolog.Nop()))

		require.ErrorIs(t, err, errBadAction)
		require.Equal(t, Failed, result.Outcome)
	})

	t.Run("panics without a problem", func(t *testing.T) {
		require.Panics(t, func() {
			_, _ = AStar[string, string](nil)
		})
	})
}

func TestUniformCost(t *testing.T) {
	t.Run("matches A* cost without a heuristic", func(t *testing.T) {
		ucs, err := UniformCost[string, string](newMockProblem())
		require.NoError(t, err)
		astar, err := AStar[string, string](newMockProblem())
		require.NoError(t, err)

		require.Equal(t, Solved, ucs.Outcome)
		require.Equal(t, astar.Goal.PathCost(), ucs.Goal.PathCost())
		require.GreaterOrEqual(t, ucs.Expanded, astar.Expanded,
			"An informed search should not expand more nodes than an uninformed one")
	})

	t.Run("default step cost counts moves", func(t *testing.T) {
		result, err := UniformCost[int, int](unitProblem{})

		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 1}, result.Solution())
		require.Equal(t, 3.0, result.Goal.PathCost())
		require.Equal(t, 4, result.Expanded)
		require.Equal(t, 1, result.MaxFrontier)
	})
}

func TestBestFirstReplacesWorsePaths(t *testing.T) {
	// B is first queued through S at cost 4, then reached through A at cost 3
	result, err := BestFirst[string, string](newMockProblem(), PathCost[string, string]())

	require.NoError(t, err)
	require.Equal(t, Solved, result.Outcome)
	states := []string{}
	for n := range result.Goal.Path() {
		states = append(states, n.State())
	}
	require.Equal(t, []string{"S", "A", "B", "C", "G"}, states)
}
