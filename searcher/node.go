package searcher

import "iter"

const noParent = -1

type record[S comparable, A any] struct {
	state    S
	action   A
	parent   int
	pathCost float64
	depth    int
}

// tree is the node arena of a single search run. Parents are referenced by index, so
// the arena never holds reference cycles and can be reset in bulk.
type tree[S comparable, A any] struct {
	records []record[S, A]
}

func newTree[S comparable, A any](capacity int) *tree[S, A] {
	return &tree[S, A]{records: make([]record[S, A], 0, capacity)}
}

func (t *tree[S, A]) root(state S) Node[S, A] {
	return t.add(record[S, A]{state: state, parent: noParent})
}

func (t *tree[S, A]) add(r record[S, A]) Node[S, A] {
	t.records = append(t.records, r)
	return Node[S, A]{tree: t, id: len(t.records) - 1}
}

func (t *tree[S, A]) mark() int {
	return len(t.records)
}

// truncate drops every node created at or after mark. Handles to those nodes become
// invalid, so callers must only truncate subtrees they have abandoned.
func (t *tree[S, A]) truncate(mark int) {
	clear(t.records[mark:])
	t.records = t.records[:mark]
}

// Node is an immutable handle to a search node: a state plus the path that reached it.
type Node[S comparable, A any] struct {
	tree *tree[S, A]
	id   int
}

func (n Node[S, A]) get() *record[S, A] {
	return &n.tree.records[n.id]
}

func (n Node[S, A]) State() S {
	return n.get().state
}

// Action returns the action that produced this node from its parent. The root has none.
func (n Node[S, A]) Action() (A, bool) {
	r := n.get()
	return r.action, r.parent != noParent
}

func (n Node[S, A]) Parent() (Node[S, A], bool) {
	r := n.get()
	if r.parent == noParent {
		return Node[S, A]{}, false
	}
	return Node[S, A]{tree: n.tree, id: r.parent}, true
}

func (n Node[S, A]) PathCost() float64 {
	return n.get().pathCost
}

func (n Node[S, A]) Depth() int {
	return n.get().depth
}

// Valid reports whether n refers to a node, as opposed to the zero Node.
func (n Node[S, A]) Valid() bool {
	return n.tree != nil
}

// Equal compares nodes by state; the path that reached the state is irrelevant.
func (n Node[S, A]) Equal(other Node[S, A]) bool {
	return n.State() == other.State()
}

// Child applies action to the node's state and records the resulting node in the arena.
func (n Node[S, A]) Child(problem Problem[S, A], action A) (Node[S, A], error) {
	r := n.get()
	state := r.state
	next, err := problem.Result(state, action)
	if err != nil {
		return Node[S, A]{}, err
	}
	return n.tree.add(record[S, A]{
		state:    next,
		action:   action,
		parent:   n.id,
		pathCost: r.pathCost + problem.StepCost(state, action, next),
		depth:    r.depth + 1,
	}), nil
}

// Expand returns a child for every action available in the node's state.
func (n Node[S, A]) Expand(problem Problem[S, A]) ([]Node[S, A], error) {
	actions := problem.Actions(n.State())
	children := make([]Node[S, A], 0, len(actions))
	for _, action := range actions {
		child, err := n.Child(problem, action)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// Path yields the nodes from the root to n. The chain is walked again on every
// iteration.
func (n Node[S, A]) Path() iter.Seq[Node[S, A]] {
	return func(yield func(Node[S, A]) bool) {
		ids := make([]int, n.Depth()+1)
		for i, id := len(ids)-1, n.id; i >= 0; i-- {
			ids[i] = id
			id = n.tree.records[id].parent
		}
		for _, id := range ids {
			if !yield(Node[S, A]{tree: n.tree, id: id}) {
				return
			}
		}
	}
}

// Solution returns the actions along Path, excluding the root.
func (n Node[S, A]) Solution() []A {
	actions := make([]A, 0, n.Depth())
	for node := range n.Path() {
		if action, ok := node.Action(); ok {
			actions = append(actions, action)
		}
	}
	return actions
}
