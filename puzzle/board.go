package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corey-kipp/cs171/utils"
)

const (
	Width = 3
	Size  = Width * Width
	blank = 0
)

var (
	ErrMalformedState = errors.New("malformed puzzle state")
	ErrInvalidAction  = errors.New("invalid action")
)

// Board is a 3x3 grid read row-major. Tile 0 is the blank. Boards are values, so
// every move produces a new board.
type Board [Size]int8

// Goal is the solved board: every tile sits at its own index.
var Goal = Board{0, 1, 2, 3, 4, 5, 6, 7, 8}

// NewBoard checks that tiles hold each label 0..8 exactly once.
func NewBoard(tiles ...int) (Board, error) {
	var b Board
	if len(tiles) != Size {
		return b, fmt.Errorf("%w: want %d tiles, got %d", ErrMalformedState, Size, len(tiles))
	}
	for i, tile := range tiles {
		if tile < 0 || tile >= Size {
			return b, fmt.Errorf("%w: tile %d out of range", ErrMalformedState, tile)
		}
		b[i] = int8(tile)
	}
	return b, b.Validate()
}

// ParseBoard reads nine labels separated by commas or spaces, e.g. "1,2,0,3,4,5,6,7,8".
func ParseBoard(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	tiles := make([]int, 0, len(fields))
	for _, field := range fields {
		tile, err := strconv.Atoi(field)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q is not a tile", ErrMalformedState, field)
		}
		tiles = append(tiles, tile)
	}
	return NewBoard(tiles...)
}

func (b Board) Validate() error {
	var seen [Size]bool
	for _, tile := range b {
		if tile < 0 || int(tile) >= Size {
			return fmt.Errorf("%w: tile %d out of range", ErrMalformedState, tile)
		}
		if seen[tile] {
			return fmt.Errorf("%w: duplicate tile %d", ErrMalformedState, tile)
		}
		seen[tile] = true
	}
	return nil
}

// Blank returns the index of the blank, or -1 for a malformed board.
func (b Board) Blank() int {
	return utils.FindIndex(b[:], blank)
}

// Inversions counts pairs of tiles, ignoring the blank, that appear out of order.
func (b Board) Inversions() int {
	count := 0
	for i := 0; i < Size; i++ {
		for j := i + 1; j < Size; j++ {
			if b[i] != blank && b[j] != blank && b[i] > b[j] {
				count++
			}
		}
	}
	return count
}

// Solvable reports whether the goal is reachable. On a 3x3 grid a move never changes
// the parity of the inversion count, and the goal has none.
func (b Board) Solvable() bool {
	return b.Inversions()%2 == 0
}

// Apply slides the blank. The move must be legal for the blank's position.
func (b Board) Apply(move Move) (Board, error) {
	from := b.Blank()
	if from < 0 {
		return b, fmt.Errorf("%w: no blank on board %v", ErrMalformedState, b.Tiles())
	}
	if !isLegal(from, move) {
		return b, fmt.Errorf("%w: %s with blank at %d", ErrInvalidAction, move, from)
	}
	to := from + move.offset()
	b[from], b[to] = b[to], b[from]
	return b, nil
}

// Moves lists the legal moves, in a fixed order per blank position.
func (b Board) Moves() []Move {
	from := b.Blank()
	if from < 0 {
		return nil
	}
	return legalMoves[from]
}

func (b Board) Tiles() []int {
	tiles := make([]int, Size)
	for i, tile := range b {
		tiles[i] = int(tile)
	}
	return tiles
}

func (b Board) String() string {
	var sb strings.Builder
	for i, tile := range b {
		if tile == blank {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(int(tile)))
		}
		switch {
		case i == Size-1:
		case i%Width == Width-1:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
