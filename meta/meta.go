// meta/meta.go
package meta

import "time"

// TRIALS is the number of boards each algorithm solves in a benchmark.
const TRIALS = 5

// GOROUTINES is the number of trials solved concurrently.
const GOROUTINES = 1

// MAX_EXPANSIONS caps a single search; 0 disables the cap.
const MAX_EXPANSIONS = 0

// HARDNESS is the default puzzle preset.
const HARDNESS = "hard"

// HEURISTIC is the default heuristic for informed engines.
const HEURISTIC = "manhattan"

// LOG_LEVEL is the default zerolog level.
const LOG_LEVEL = "info"

// TRIAL_TIMEOUT bounds a whole benchmark run.
const TRIAL_TIMEOUT = 10 * time.Minute

// ALGORITHMS are the engines compared by default.
var ALGORITHMS = []string{"astar", "rbfs"}
