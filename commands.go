package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/corey-kipp/cs171/experiments"
	"github.com/corey-kipp/cs171/experiments/metrics"
	"github.com/corey-kipp/cs171/puzzle"
	"github.com/corey-kipp/cs171/searcher"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

type solveFlags struct {
	tiles     string
	hardness  string
	seed      uint64
	algorithm string
	heuristic string
}

func newSolveCmd() *cobra.Command {
	flags := solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single board and print the moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("hardness") {
				flags.hardness = config.Hardness
			}
			if !cmd.Flags().Changed("heuristic") {
				flags.heuristic = config.Heuristic
			}
			if !cmd.Flags().Changed("seed") {
				flags.seed = config.Seed
			}
			return runSolve(cmd.OutOrStdout(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.tiles, "tiles", "", "Board as 9 comma separated tiles, 0 for the blank")
	cmd.Flags().StringVar(&flags.hardness, "hardness", "", "Preset used when --tiles is empty (easy, hard)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for hard boards, 0 picks one from the clock")
	cmd.Flags().StringVar(&flags.algorithm, "algorithm", "astar", "Search engine (astar, rbfs, ucs)")
	cmd.Flags().StringVar(&flags.heuristic, "heuristic", "", "Heuristic (manhattan, misplaced, zero)")
	return cmd
}

func runSolve(out io.Writer, flags solveFlags) error {
	search, err := experiments.Solver(flags.algorithm)
	if err != nil {
		return err
	}
	heuristic, err := puzzle.ParseHeuristic(flags.heuristic)
	if err != nil {
		return err
	}

	var problem *puzzle.EightPuzzle
	if flags.tiles != "" {
		board, err := puzzle.ParseBoard(flags.tiles)
		if err != nil {
			return err
		}
		problem, err = puzzle.NewEightPuzzle(board, puzzle.WithHeuristic(heuristic))
		if err != nil {
			return err
		}
	} else {
		hardness, err := puzzle.ParseHardness(flags.hardness)
		if err != nil {
			return err
		}
		seed := flags.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		log.Debug().Msgf("generating %s board with seed %d", hardness, seed)
		problem, err = puzzle.NewPreset(hardness, rand.New(rand.NewSource(seed)), puzzle.WithHeuristic(heuristic))
		if err != nil {
			return err
		}
	}

	initial := problem.Initial()
	fmt.Fprintf(out, "%s\n\n", initial)
	if !initial.Solvable() {
		log.Warn().Msg("board has odd parity and cannot reach the goal")
	}

	result, err := search(problem, searcher.WithMaxExpansions(config.MaxExpansions), searcher.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	if result.Outcome == searcher.Solved {
		moves := make([]string, 0, result.Goal.Depth())
		for _, m := range result.Solution() {
			moves = append(moves, m.String())
		}
		fmt.Fprintf(out, "moves:        %s\n", strings.Join(moves, " "))
		fmt.Fprintf(out, "cost:         %g\n", result.Goal.PathCost())
	} else {
		fmt.Fprintf(out, "no solution:  %s\n", result.Reason)
	}
	fmt.Fprintf(out, "expanded:     %d\n", result.Expanded)
	fmt.Fprintf(out, "max frontier: %d\n", result.MaxFrontier)
	fmt.Fprintf(out, "time:         %s\n", result.Duration)
	return nil
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Compare algorithms on the same random boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runBench(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)
	seed := experiments.Seed(config)

	start := time.Now()
	records, summaries, err := experiments.Run(ctx, config, seed, collector)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-6s %7s %14s %14s %12s %14s\n", "algo", "solved", "avg expanded", "avg frontier", "avg length", "avg time")
	for _, s := range summaries {
		fmt.Fprintf(out, "%-6s %3d/%-3d %14.1f %14.1f %12.1f %14s\n",
			s.Algorithm, s.Solved, s.Trials, s.MeanExpanded, s.MeanMaxFrontier, s.MeanSolutionLength, s.MeanDuration)
	}

	if config.OutputDir != "" {
		writer, err := metrics.NewWriter(config.OutputDir)
		if err != nil {
			return err
		}
		cfg := config
		cfg.Seed = seed
		if err := writer.WriteSetup(metrics.NewSetup(cfg, start)); err != nil {
			return err
		}
		if err := writer.WriteTrials(records); err != nil {
			return err
		}
		if err := writer.WriteSummaries(summaries); err != nil {
			return err
		}
		log.Info().Msgf("stored records in %s", writer.Dir())
	}

	if config.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(config.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
		log.Info().Msgf("stored metrics in %s", config.MetricsFile)
	}
	return nil
}
