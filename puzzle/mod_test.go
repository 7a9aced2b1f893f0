package puzzle

import (
	"testing"

	"github.com/corey-kipp/cs171/searcher"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestHeuristics(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		require.Zero(t, Manhattan(Goal))
		require.Equal(t, 2, Manhattan(easyBoard))
		require.Equal(t, 2, Misplaced(easyBoard))
		require.Zero(t, Zero(easyBoard))
		// Tile 8 at index 0 is four cells from index 8, the blank is not counted
		require.Equal(t, 4, Manhattan(Board{8, 1, 2, 3, 4, 5, 6, 7, 0}))
	})

	t.Run("admissible and consistent on every reachable board", func(t *testing.T) {
		for b, d := range distances() {
			m := Manhattan(b)
			if m > d || Misplaced(b) > m {
				t.Fatalf("%v: manhattan %d, misplaced %d, true distance %d", b.Tiles(), m, Misplaced(b), d)
			}
			for _, move := range b.Moves() {
				next, _ := b.Apply(move)
				if diff := Manhattan(next) - m; diff > 1 || diff < -1 {
					t.Fatalf("%v: manhattan changes by %d after %s", b.Tiles(), diff, move)
				}
			}
		}
	})

	t.Run("parse by name", func(t *testing.T) {
		for _, name := range []string{"", "manhattan", "Misplaced", "zero"} {
			h, err := ParseHeuristic(name)
			require.NoError(t, err)
			require.NotNil(t, h)
		}
		_, err := ParseHeuristic("euclid")
		require.Error(t, err)
	})
}

func TestNewEightPuzzle(t *testing.T) {
	t.Run("rejects malformed initial boards", func(t *testing.T) {
		_, err := NewEightPuzzle(Board{0, 0, 2, 3, 4, 5, 6, 7, 8})
		require.ErrorIs(t, err, ErrMalformedState)
	})

	t.Run("presets", func(t *testing.T) {
		easy, err := NewPreset(Easy, nil)
		require.NoError(t, err)
		require.Equal(t, easyBoard, easy.Initial())

		hard, err := NewPreset(Hard, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.True(t, hard.Initial().Solvable())

		_, err = NewPreset(Hardness("medium"), nil)
		require.Error(t, err)
		_, err = ParseHardness("medium")
		require.Error(t, err)
	})

	t.Run("result rejects illegal moves", func(t *testing.T) {
		p, err := NewEightPuzzle(Goal)
		require.NoError(t, err)

		_, err = p.Result(Goal, Left)
		require.ErrorIs(t, err, ErrInvalidAction)
		require.True(t, p.GoalTest(Goal))
		require.False(t, p.GoalTest(easyBoard))
		require.Equal(t, 1.0, p.StepCost(easyBoard, Left, Board{1, 0, 2, 3, 4, 5, 6, 7, 8}))
	})
}

func TestSolveEasy(t *testing.T) {
	p, err := NewPreset(Easy, nil)
	require.NoError(t, err)

	result, err := searcher.AStar[Board, Move](p)

	require.NoError(t, err)
	require.Equal(t, searcher.Solved, result.Outcome)
	require.Equal(t, []Move{Left, Left}, result.Solution())
	require.LessOrEqual(t, result.Expanded, 5)
	require.LessOrEqual(t, result.MaxFrontier, 6)
	for n := range result.Goal.Path() {
		require.Equal(t, float64(Manhattan(n.State())), p.H(n))
	}
}

func TestSolveGoal(t *testing.T) {
	p, err := NewEightPuzzle(Goal)
	require.NoError(t, err)

	for name, search := range map[string]func(searcher.Problem[Board, Move], ...searcher.Option) (searcher.Result[Board, Move], error){
		"astar": searcher.AStar[Board, Move],
		"rbfs":  searcher.RBFS[Board, Move],
	} {
		result, err := search(p)

		require.NoError(t, err, name)
		require.Equal(t, searcher.Solved, result.Outcome, name)
		require.Empty(t, result.Solution(), name)
		require.Equal(t, 1, result.Expanded, name)
		require.Equal(t, 1, result.MaxFrontier, name)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	p, err := NewEightPuzzle(Board{2, 1, 0, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	result, err := searcher.AStar[Board, Move](p)

	require.NoError(t, err)
	require.Equal(t, searcher.Failed, result.Outcome)
	require.Equal(t, searcher.Exhausted, result.Reason)
	require.Equal(t, 181440, result.Expanded, "Only the odd-parity half of the boards can be reached")
}

func TestSolveOptimal(t *testing.T) {
	dist := distances()
	rng := rand.New(rand.NewSource(171))

	t.Run("A* and RBFS find shortest solutions", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			b := Generate(rng)
			p, err := NewEightPuzzle(b)
			require.NoError(t, err)

			astar, err := searcher.AStar[Board, Move](p)
			require.NoError(t, err)
			rbfs, err := searcher.RBFS[Board, Move](p, searcher.WithMaxExpansions(20_000_000))
			require.NoError(t, err)

			require.Equal(t, searcher.Solved, astar.Outcome)
			require.Equal(t, searcher.Solved, rbfs.Outcome)
			require.Equal(t, float64(dist[b]), astar.Goal.PathCost(), "board %v", b.Tiles())
			require.Equal(t, astar.Goal.PathCost(), rbfs.Goal.PathCost(), "board %v", b.Tiles())
			requireSolves(t, b, astar.Solution())
			requireSolves(t, b, rbfs.Solution())
		}
	})

	t.Run("A* matches uniform-cost search", func(t *testing.T) {
		b := Generate(rng)
		manhattan, err := NewEightPuzzle(b)
		require.NoError(t, err)
		misplaced, err := NewEightPuzzle(b, WithHeuristic(Misplaced))
		require.NoError(t, err)

		astar, err := searcher.AStar[Board, Move](manhattan)
		require.NoError(t, err)
		weaker, err := searcher.AStar[Board, Move](misplaced)
		require.NoError(t, err)
		ucs, err := searcher.UniformCost[Board, Move](manhattan)
		require.NoError(t, err)

		require.Equal(t, ucs.Goal.PathCost(), astar.Goal.PathCost())
		require.Equal(t, ucs.Goal.PathCost(), weaker.Goal.PathCost())
		require.LessOrEqual(t, astar.Expanded, ucs.Expanded)
	})
}

func requireSolves(t *testing.T, b Board, moves []Move) {
	t.Helper()
	var err error
	for _, m := range moves {
		b, err = b.Apply(m)
		require.NoError(t, err)
	}
	require.Equal(t, Goal, b)
}
