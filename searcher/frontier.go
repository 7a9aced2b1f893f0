package searcher

import "container/heap"

type entry[S comparable, A any] struct {
	node  Node[S, A]
	f     float64
	g     float64
	seq   uint64 // Insertion order, breaks remaining ties
	index int    // Maintained by heap.Interface
}

type entries[S comparable, A any] []*entry[S, A]

func (q entries[S, A]) Len() int { return len(q) }

func (q entries[S, A]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].seq < q[j].seq
}

func (q entries[S, A]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *entries[S, A]) Push(x any) {
	e := x.(*entry[S, A])
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *entries[S, A]) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Frontier is a min-priority queue of nodes keyed by an evaluation function, holding at
// most one node per state.
type Frontier[S comparable, A any] struct {
	f       Evaluation[S, A]
	queue   entries[S, A]
	byState map[S]*entry[S, A]
	seq     uint64
	peak    int
}

func NewFrontier[S comparable, A any](f Evaluation[S, A]) *Frontier[S, A] {
	if f == nil {
		panic("frontier needs an evaluation function")
	}
	return &Frontier[S, A]{
		f:       f,
		byState: make(map[S]*entry[S, A]),
	}
}

// Insert queues node. A node already queued for the same state is superseded.
func (q *Frontier[S, A]) Insert(node Node[S, A]) {
	state := node.State()
	if old, ok := q.byState[state]; ok {
		heap.Remove(&q.queue, old.index)
	}
	e := &entry[S, A]{node: node, f: q.f(node), g: node.PathCost(), seq: q.seq}
	q.seq++
	heap.Push(&q.queue, e)
	q.byState[state] = e
	q.peak = max(q.peak, len(q.queue))
}

// Replace removes any entry queued for old and inserts node.
func (q *Frontier[S, A]) Replace(old S, node Node[S, A]) {
	if e, ok := q.byState[old]; ok {
		heap.Remove(&q.queue, e.index)
		delete(q.byState, old)
	}
	q.Insert(node)
}

// PopMin removes and returns the node with the smallest evaluation.
func (q *Frontier[S, A]) PopMin() (Node[S, A], error) {
	if len(q.queue) == 0 {
		return Node[S, A]{}, ErrEmptyFrontier
	}
	e := heap.Pop(&q.queue).(*entry[S, A])
	delete(q.byState, e.node.State())
	return e.node, nil
}

func (q *Frontier[S, A]) Contains(state S) bool {
	_, ok := q.byState[state]
	return ok
}

// Get returns the node queued for state together with its evaluation.
func (q *Frontier[S, A]) Get(state S) (Node[S, A], float64, bool) {
	e, ok := q.byState[state]
	if !ok {
		return Node[S, A]{}, 0, false
	}
	return e.node, e.f, true
}

func (q *Frontier[S, A]) Len() int { return len(q.queue) }

func (q *Frontier[S, A]) IsEmpty() bool { return len(q.queue) == 0 }

// Peak is the largest size the frontier has reached.
func (q *Frontier[S, A]) Peak() int { return q.peak }
