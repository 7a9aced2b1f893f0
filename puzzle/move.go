package puzzle

import (
	"fmt"

	"github.com/corey-kipp/cs171/utils"
)

// Move slides the blank one cell in a direction.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveNames = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

func (m Move) String() string {
	if m < Up || m > Right {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// offset is the change in the blank's index.
func (m Move) offset() int {
	switch m {
	case Up:
		return -Width
	case Down:
		return Width
	case Left:
		return -1
	default:
		return 1
	}
}

func ParseMove(s string) (Move, error) {
	for m, name := range moveNames {
		if name == s {
			return Move(m), nil
		}
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

// legalMoves lists the moves that keep the blank on the grid, by blank index.
var legalMoves = [Size][]Move{
	0: {Right, Down},
	1: {Left, Right, Down},
	2: {Left, Down},
	3: {Up, Right, Down},
	4: {Up, Left, Right, Down},
	5: {Up, Left, Down},
	6: {Up, Right},
	7: {Left, Up, Right},
	8: {Left, Up},
}

func isLegal(index int, move Move) bool {
	return utils.FindIndex(legalMoves[index], move) >= 0
}
