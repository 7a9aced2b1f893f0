package puzzle

import (
	"fmt"

	"github.com/corey-kipp/cs171/searcher"
	"golang.org/x/exp/rand"
)

// EightPuzzle is the sliding-tile search problem: reach Goal from an initial board with
// unit-cost moves of the blank.
type EightPuzzle struct {
	searcher.Base[Board, Move]
	initial   Board
	heuristic Heuristic
}

var _ searcher.Problem[Board, Move] = (*EightPuzzle)(nil)

type Option func(p *EightPuzzle)

func WithHeuristic(h Heuristic) Option {
	return func(p *EightPuzzle) {
		if h != nil {
			p.heuristic = h
		}
	}
}

// NewEightPuzzle rejects malformed boards. Unsolvable boards are accepted; searching
// them exhausts the reachable half of the state space.
func NewEightPuzzle(initial Board, options ...Option) (*EightPuzzle, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	p := &EightPuzzle{ // Default values
		initial:   initial,
		heuristic: Manhattan,
	}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

func (p *EightPuzzle) Initial() Board {
	return p.initial
}

func (p *EightPuzzle) Actions(state Board) []Move {
	return state.Moves()
}

func (p *EightPuzzle) Result(state Board, action Move) (Board, error) {
	return state.Apply(action)
}

func (p *EightPuzzle) GoalTest(state Board) bool {
	return state == Goal
}

func (p *EightPuzzle) H(node searcher.Node[Board, Move]) float64 {
	return float64(p.heuristic(node.State()))
}

// Hardness selects how the initial board is chosen.
type Hardness string

const (
	Easy Hardness = "easy" // Two moves from the goal
	Hard Hardness = "hard" // Uniformly random solvable board
)

var easyBoard = Board{1, 2, 0, 3, 4, 5, 6, 7, 8}

func ParseHardness(s string) (Hardness, error) {
	switch h := Hardness(s); h {
	case Easy, Hard:
		return h, nil
	default:
		return "", fmt.Errorf("unknown hardness %q", s)
	}
}

// NewPreset builds a puzzle for the given hardness, drawing hard boards from rng.
func NewPreset(hardness Hardness, rng *rand.Rand, options ...Option) (*EightPuzzle, error) {
	switch hardness {
	case Easy:
		return NewEightPuzzle(easyBoard, options...)
	case Hard:
		return NewEightPuzzle(Generate(rng), options...)
	default:
		return nil, fmt.Errorf("unknown hardness %q", hardness)
	}
}

// Generate draws uniform permutations of 0..8 until one is solvable.
func Generate(rng *rand.Rand) Board {
	if rng == nil {
		panic("board generation needs a random source")
	}
	for {
		b := Goal
		rng.Shuffle(Size, func(i, j int) {
			b[i], b[j] = b[j], b[i]
		})
		if b.Solvable() {
			return b
		}
	}
}
