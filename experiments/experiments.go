package experiments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corey-kipp/cs171/experiments/metrics"
	"github.com/corey-kipp/cs171/meta"
	"github.com/corey-kipp/cs171/puzzle"
	"github.com/corey-kipp/cs171/searcher"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Search func(searcher.Problem[puzzle.Board, puzzle.Move], ...searcher.Option) (searcher.Result[puzzle.Board, puzzle.Move], error)

var solvers = map[string]Search{
	"astar": searcher.AStar[puzzle.Board, puzzle.Move],
	"rbfs":  searcher.RBFS[puzzle.Board, puzzle.Move],
	"ucs":   searcher.UniformCost[puzzle.Board, puzzle.Move],
}

// Solver returns the engine registered under name.
func Solver(name string) (Search, error) {
	search, ok := solvers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	return search, nil
}

// Seed returns the configured seed, or a time-based one when it is unset.
func Seed(config meta.Config) uint64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Run solves config.Trials boards with every configured algorithm. Trial i draws its board
// from a generator seeded with seed+i, so all algorithms are compared on the same boards.
func Run(ctx context.Context, config meta.Config, seed uint64, collector metrics.Collector) ([]metrics.TrialRecord, []metrics.Summary, error) {
	hardness, err := puzzle.ParseHardness(config.Hardness)
	if err != nil {
		return nil, nil, err
	}
	heuristic, err := puzzle.ParseHeuristic(config.Heuristic)
	if err != nil {
		return nil, nil, err
	}

	problems := make([]*puzzle.EightPuzzle, config.Trials)
	for i := range problems {
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		problems[i], err = puzzle.NewPreset(hardness, rng, puzzle.WithHeuristic(heuristic))
		if err != nil {
			return nil, nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
	}

	log.Info().Msgf("starting benchmark with %d trials of %v on %s boards (seed %d)...", config.Trials, config.Algorithms, hardness, seed)

	records := make([]metrics.TrialRecord, 0, len(config.Algorithms)*config.Trials)
	for _, name := range config.Algorithms {
		search, err := Solver(name)
		if err != nil {
			return nil, nil, err
		}

		log.Info().Msgf("starting %s trials...", name)
		results, err := runTrials(ctx, config, name, search, problems, collector)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		records = append(records, results...)
		log.Info().Msgf("completed %s trials", name)
	}

	summaries := metrics.Summarize(records)
	log.Info().Msg("completed benchmark")
	return records, summaries, nil
}

func runTrials(ctx context.Context, config meta.Config, name string, search Search, problems []*puzzle.EightPuzzle, collector metrics.Collector) ([]metrics.TrialRecord, error) {
	records := make([]metrics.TrialRecord, len(problems))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Goroutines)
	for i, problem := range problems {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := search(problem, searcher.WithMaxExpansions(config.MaxExpansions))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i+1, err)
			}

			records[i] = record(i+1, name, problem.Initial(), result)
			collector.Observe(records[i])
			log.Debug().Msgf("completed %s trial %d of %d: %s after %d expansions", name, i+1, len(problems), result.Outcome, result.Expanded)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func record(trial int, algorithm string, board puzzle.Board, result searcher.Result[puzzle.Board, puzzle.Move]) metrics.TrialRecord {
	r := metrics.TrialRecord{
		Trial:       trial,
		Algorithm:   algorithm,
		Board:       FormatTiles(board),
		Outcome:     result.Outcome.String(),
		Reason:      result.Reason.String(),
		Expanded:    result.Expanded,
		MaxFrontier: result.MaxFrontier,
		Duration:    result.Duration,
	}
	if result.Outcome == searcher.Solved {
		r.SolutionLength = len(result.Solution())
		r.Cost = result.Goal.PathCost()
	}
	return r
}

// FormatTiles renders a board as comma separated tiles, the form ParseBoard accepts.
func FormatTiles(board puzzle.Board) string {
	tiles := board.Tiles()
	parts := make([]string, len(tiles))
	for i, tile := range tiles {
		parts[i] = fmt.Sprint(tile)
	}
	return strings.Join(parts, ",")
}
