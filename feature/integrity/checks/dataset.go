package checks

import (
	"fmt"

	"ua-capabilities/core/classifier"
)

// DatasetReport summarizes the loaded dataset and its index.
type DatasetReport struct {
	Source         string  `json:"source"`
	Entries        int     `json:"entries"`
	Properties     int     `json:"properties"`
	Roots          int     `json:"roots"`
	MaxDepth       int     `json:"max_depth"`
	Buckets        int     `json:"buckets"`
	LargestBucket  int     `json:"largest_bucket"`
	CatchAll       int     `json:"catch_all"`
	GramIndexed    int     `json:"gram_indexed"`
	DefaultPattern bool    `json:"default_pattern"`
	BuildTimeMs    float64 `json:"build_time_ms"`
	Status         string  `json:"status"`
}

// CheckDataset reports on a built engine. An engine only exists once the
// dataset passed validation, so a non-nil engine is always "ok".
func CheckDataset(eng *classifier.Engine) (*DatasetReport, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is not initialized")
	}

	stats := eng.Stats()
	return &DatasetReport{
		Source:         stats.Source,
		Entries:        stats.Entries,
		Properties:     stats.Properties,
		Roots:          stats.Inheritance.Roots,
		MaxDepth:       stats.Inheritance.MaxDepth,
		Buckets:        stats.Index.Buckets,
		LargestBucket:  stats.Index.LargestBucket,
		CatchAll:       stats.Index.CatchAll,
		GramIndexed:    stats.Index.GramIndexed,
		DefaultPattern: stats.Index.DefaultPattern != "",
		BuildTimeMs:    float64(stats.BuildTime.Microseconds()) / 1000,
		Status:         "ok",
	}, nil
}
