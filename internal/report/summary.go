package report

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the chunk stats of a run.
type Summary struct {
	Chunks     int
	Decisions  int
	TopBlocks  int
	LavaBlocks int
	// Mean and spread of the per-chunk decision percentage.
	MeanDecisionPct   float64
	StdDevDecisionPct float64
}

// Summarize aggregates stats. The spread of fewer than two chunks is zero.
func Summarize(stats []ChunkStat) Summary {
	s := Summary{Chunks: len(stats)}
	if len(stats) == 0 {
		return s
	}

	pct := make([]float64, len(stats))
	for i, cs := range stats {
		s.Decisions += cs.Decisions
		s.TopBlocks += cs.TopBlocks
		s.LavaBlocks += cs.LavaBlocks
		pct[i] = cs.DecisionPercent
	}

	if len(pct) < 2 {
		s.MeanDecisionPct = pct[0]
		return s
	}
	s.MeanDecisionPct, s.StdDevDecisionPct = stat.MeanStdDev(pct, nil)
	return s
}

// LogAttrs returns the summary as slog key/value pairs.
func (s Summary) LogAttrs() []any {
	return []any{
		"chunks", s.Chunks,
		"decisions", s.Decisions,
		"top_blocks", s.TopBlocks,
		"lava_blocks", s.LavaBlocks,
		"decision_mean_pct", s.MeanDecisionPct,
		"decision_stddev_pct", s.StdDevDecisionPct,
	}
}
