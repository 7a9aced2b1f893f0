package puzzle

import (
	"fmt"
	"strings"
)

// Heuristic estimates the number of moves left to reach Goal.
type Heuristic func(Board) int

// Manhattan sums, over tiles 1..8, the grid distance between each tile and its goal
// cell. Every move shifts one tile by one cell, so it never overestimates, and it
// changes by at most one per move.
func Manhattan(b Board) int {
	sum := 0
	for i, tile := range b {
		if tile == blank {
			continue
		}
		sum += abs(i/Width-int(tile)/Width) + abs(i%Width-int(tile)%Width)
	}
	return sum
}

// Misplaced counts the tiles, ignoring the blank, that are not at their goal cell.
func Misplaced(b Board) int {
	count := 0
	for i, tile := range b {
		if tile != blank && int(tile) != i {
			count++
		}
	}
	return count
}

// Zero turns informed search into uniform-cost search.
func Zero(Board) int { return 0 }

func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(name) {
	case "", "manhattan":
		return Manhattan, nil
	case "misplaced":
		return Misplaced, nil
	case "zero", "none":
		return Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
