package dux

import (
	"sync/atomic"
	"time"
)

// Entry summarizes one expanded root path.
type Entry struct {
	// Path is the root path this entry summarizes.
	Path string `json:"path"`
	// Size is the cumulative size in bytes of everything under Path.
	Size uint64 `json:"size"`
	// Count is the number of filesystem entries under Path, inclusive of Path itself.
	Count uint64 `json:"count"`
	// IsDir indicates whether Path is a directory.
	IsDir bool `json:"is_dir"`
}

// Report holds the aggregated result of a run.
type Report struct {
	// TotalSize is the cumulative size in bytes over all expanded paths,
	// whether or not they produced a visible Entry.
	TotalSize uint64 `json:"total_size"`
	// TotalCount is the cumulative entry count over all expanded paths.
	TotalCount uint64 `json:"total_count"`
	// Entries contains one element per expanded path that still existed
	// after its aggregation completed, in the requested order.
	Entries []Entry `json:"entries"`
	// ErrorCount is the number of entries skipped due to walk errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for aggregation.
	Elapsed time.Duration `json:"elapsed"`
}

// Percent returns size as a percentage of the report's total size.
// A zero total yields 0 rather than NaN, so a zero threshold keeps
// every entry and any positive threshold drops them all.
func (r *Report) Percent(size uint64) float64 {
	if r.TotalSize == 0 {
		return 0
	}

	return 100 * float64(size) / float64(r.TotalSize)
}

// Options configures aggregation and CLI behavior.
type Options struct {
	// Pattern is the glob pattern to expand. Empty means "*".
	Pattern string
	// Reverse reverses the final ordering.
	Reverse bool
	// Percentages indicates whether to show the percentage column.
	Percentages bool
	// SortByPath sorts entries by path instead of by size.
	SortByPath bool
	// MinPercentage omits entries below this percentage of the total.
	MinPercentage float64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
}

// collector accumulates grand totals from concurrent fastwalk callbacks.
// Atomic counters keep the sums order-independent across roots.
type collector struct {
	totalBytes atomic.Uint64
	totalCount atomic.Uint64
	errorCount atomic.Int64
}

// snapshot returns the running totals for progress reporting.
func (c *collector) snapshot() (entries, bytes int64) {
	//nolint:gosec // Counts never exceed int64 in practice
	return int64(c.totalCount.Load()), int64(c.totalBytes.Load())
}
