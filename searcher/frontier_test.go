package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Frontier:
- pop order: smallest f, then smallest path cost, then insertion order
- one entry per state: insert and replace supersede the queued node
- lookup by state: contains / get
- edge case: pop on empty frontier -> ErrEmptyFrontier
- peak size survives pops
*/

func zeroEvaluation(Node[string, string]) float64 { return 0 }

func TestFrontierPopMin(t *testing.T) {
	p := newMockProblem()

	t.Run("pops smallest evaluation first", func(t *testing.T) {
		root := newTree[string, string](4).root("S")
		children, err := root.Expand(p)
		require.NoError(t, err)
		q := NewFrontier(Informed[string, string](p))
		for _, child := range children {
			q.Insert(child)
		}

		got := []string{}
		for !q.IsEmpty() {
			n, err := q.PopMin()
			require.NoError(t, err)
			got = append(got, n.State())
		}

		// f(A)=1+6, f(B)=4+4, f(D)=1+10
		require.Equal(t, []string{"A", "B", "D"}, got)
	})

	t.Run("ties broken by path cost then insertion order", func(t *testing.T) {
		root := newTree[string, string](4).root("S")
		a, _ := root.Child(p, "A")
		b, _ := root.Child(p, "B")
		d, _ := root.Child(p, "D")
		q := NewFrontier[string, string](zeroEvaluation)
		q.Insert(b)
		q.Insert(a)
		q.Insert(d)

		first, _ := q.PopMin()
		second, _ := q.PopMin()
		third, _ := q.PopMin()

		require.Equal(t, "A", first.State(), "Cheaper path should win an f tie")
		require.Equal(t, "D", second.State(), "Equal cost should fall back to insertion order")
		require.Equal(t, "B", third.State())
	})

	t.Run("empty frontier", func(t *testing.T) {
		q := NewFrontier[string, string](zeroEvaluation)

		_, err := q.PopMin()

		require.ErrorIs(t, err, ErrEmptyFrontier)
		require.True(t, q.IsEmpty())
	})

	t.Run("panics without an evaluation function", func(t *testing.T) {
		require.Panics(t, func() {
			NewFrontier[string, string](nil)
		})
	})
}

func TestFrontierReplace(t *testing.T) {
	p := newMockProblem()
	root := newTree[string, string](8).root("S")
	a, _ := root.Child(p, "A")
	direct, _ := root.Child(p, "B") // g=4
	viaA, _ := a.Child(p, "B")      // g=3

	t.Run("replace supersedes queued entry for the state", func(t *testing.T) {
		q := NewFrontier(PathCost[string, string]())
		q.Insert(direct)
		q.Insert(a)

		q.Replace("B", viaA)

		require.Equal(t, 2, q.Len(), "Replacement should not grow the frontier")
		got, f, ok := q.Get("B")
		require.True(t, ok)
		require.Equal(t, 3.0, got.PathCost())
		require.Equal(t, 3.0, f)
	})

	t.Run("inserting a queued state keeps one entry", func(t *testing.T) {
		q := NewFrontier(PathCost[string, string]())
		q.Insert(direct)
		q.Insert(viaA)

		require.Equal(t, 1, q.Len())
		n, err := q.PopMin()
		require.NoError(t, err)
		require.Equal(t, 3.0, n.PathCost(), "Latest insert should be the active entry")
		require.True(t, q.IsEmpty())
	})

	t.Run("lookup by state", func(t *testing.T) {
		q := NewFrontier(PathCost[string, string]())
		q.Insert(a)

		require.True(t, q.Contains("A"))
		require.False(t, q.Contains("B"))
		_, _, ok := q.Get("B")
		require.False(t, ok)

		_, err := q.PopMin()
		require.NoError(t, err)
		require.False(t, q.Contains("A"), "Popped state should no longer be queued")
	})

	t.Run("peak is the largest size reached", func(t *testing.T) {
		q := NewFrontier(PathCost[string, string]())
		q.Insert(a)
		q.Insert(direct)
		_, _ = q.PopMin()
		_, _ = q.PopMin()
		q.Insert(viaA)

		require.Equal(t, 1, q.Len())
		require.Equal(t, 2, q.Peak())
	})
}
