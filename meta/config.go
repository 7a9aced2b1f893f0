package meta

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config drives the benchmark harness and the CLI.
type Config struct {
	Trials        int           `yaml:"trials" json:"trials" validate:"gte=1,lte=10000"`
	Goroutines    int           `yaml:"goroutines" json:"goroutines" validate:"gte=1,lte=1024"`
	Seed          uint64        `yaml:"seed" json:"seed"` // 0 picks a time-based seed
	Hardness      string        `yaml:"hardness" json:"hardness" validate:"oneof=easy hard"`
	Algorithms    []string      `yaml:"algorithms" json:"algorithms" validate:"required,min=1,dive,oneof=astar rbfs ucs"`
	Heuristic     string        `yaml:"heuristic" json:"heuristic" validate:"oneof=manhattan misplaced zero"`
	MaxExpansions int           `yaml:"max_expansions" json:"max_expansions" validate:"gte=0"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
	LogLevel      string        `yaml:"log_level" json:"log_level" validate:"oneof=trace debug info warn error disabled"`
	OutputDir     string        `yaml:"output_dir" json:"output_dir"`     // Empty skips CSV/JSON records
	MetricsFile   string        `yaml:"metrics_file" json:"metrics_file"` // Empty skips the Prometheus text file
}

func Default() Config {
	return Config{
		Trials:        TRIALS,
		Goroutines:    GOROUTINES,
		Hardness:      HARDNESS,
		Algorithms:    append([]string(nil), ALGORITHMS...),
		Heuristic:     HEURISTIC,
		MaxExpansions: MAX_EXPANSIONS,
		Timeout:       TRIAL_TIMEOUT,
		LogLevel:      LOG_LEVEL,
	}
}

// Load merges configuration with priority env > file > defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&config); err != nil {
		return config, fmt.Errorf("load config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) error {
	ints := map[string]*int{
		"PUZZLE_TRIALS":         &config.Trials,
		"PUZZLE_GOROUTINES":     &config.Goroutines,
		"PUZZLE_MAX_EXPANSIONS": &config.MaxExpansions,
	}
	for name, field := range ints {
		if v := os.Getenv(name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*field = i
		}
	}
	if v := os.Getenv("PUZZLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PUZZLE_SEED: %w", err)
		}
		config.Seed = seed
	}
	if v := os.Getenv("PUZZLE_HARDNESS"); v != "" {
		config.Hardness = v
	}
	if v := os.Getenv("PUZZLE_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	return nil
}
