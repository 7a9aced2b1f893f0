package metrics

import (
	"time"

	"github.com/corey-kipp/cs171/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type TrialRecord struct {
	Trial          int
	Algorithm      string
	Board          string // Comma separated tiles, row-major
	Outcome        string
	Reason         string
	Expanded       int
	MaxFrontier    int
	SolutionLength int
	Cost           float64
	Duration       time.Duration
}

type Summary struct {
	Algorithm          string
	Trials             int
	Solved             int
	MeanExpanded       float64
	MeanMaxFrontier    float64
	MeanSolutionLength float64 // Over solved trials only
	MeanDuration       time.Duration
}

// Summarize groups records by algorithm, keeping the order in which algorithms first appear.
func Summarize(records []TrialRecord) []Summary {
	order := []string{}
	groups := map[string][]TrialRecord{}
	for _, r := range records {
		if _, ok := groups[r.Algorithm]; !ok {
			order = append(order, r.Algorithm)
		}
		groups[r.Algorithm] = append(groups[r.Algorithm], r)
	}

	summaries := make([]Summary, 0, len(order))
	for _, algorithm := range order {
		group := groups[algorithm]
		expanded := make([]int, len(group))
		frontier := make([]int, len(group))
		durations := make([]time.Duration, len(group))
		lengths := []int{}
		for i, r := range group {
			expanded[i] = r.Expanded
			frontier[i] = r.MaxFrontier
			durations[i] = r.Duration
			if r.Outcome == "solved" {
				lengths = append(lengths, r.SolutionLength)
			}
		}
		summaries = append(summaries, Summary{
			Algorithm:          algorithm,
			Trials:             len(group),
			Solved:             len(lengths),
			MeanExpanded:       utils.Mean(expanded),
			MeanMaxFrontier:    utils.Mean(frontier),
			MeanSolutionLength: utils.Mean(lengths),
			MeanDuration:       time.Duration(utils.Mean(durations)),
		})
	}
	return summaries
}

// Collector observes finished trials. Implementations must be safe for concurrent use.
type Collector interface {
	Observe(record TrialRecord)
}

type collector struct {
	trials      *prometheus.CounterVec
	expanded    *prometheus.HistogramVec
	maxFrontier *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// NewPrometheusCollector registers the trial metrics with reg.
func NewPrometheusCollector(reg prometheus.Registerer) Collector {
	factory := promauto.With(reg)
	buckets := prometheus.ExponentialBuckets(1, 4, 12)
	return &collector{
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "puzzle",
			Name:      "trials_total",
			Help:      "Number of finished search trials",
		}, []string{"algorithm", "outcome"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "puzzle",
			Name:      "nodes_expanded",
			Help:      "Nodes expanded per trial",
			Buckets:   buckets,
		}, []string{"algorithm"}),
		maxFrontier: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "puzzle",
			Name:      "max_frontier",
			Help:      "Peak nodes held per trial",
			Buckets:   buckets,
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "puzzle",
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock time per trial",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
	}
}

func (c *collector) Observe(record TrialRecord) {
	c.trials.WithLabelValues(record.Algorithm, record.Outcome).Inc()
	c.expanded.WithLabelValues(record.Algorithm).Observe(float64(record.Expanded))
	c.maxFrontier.WithLabelValues(record.Algorithm).Observe(float64(record.MaxFrontier))
	c.duration.WithLabelValues(record.Algorithm).Observe(record.Duration.Seconds())
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Observe(record TrialRecord) {}
