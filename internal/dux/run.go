package dux

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// walkRoot walks the tree rooted at root and returns its cumulative size
// and entry count, folding both into the collector's grand totals as it
// goes. Every reachable node counts, the root included; non-directories
// additionally contribute their own link metadata length, so symlinks
// are sized without being dereferenced. Entries that cannot be stat'd
// (permission errors, races, broken links) are skipped silently.
//
// A root that is a single file yields (fileSize, 1); a symlink root
// yields (linkLen, 1) from its own metadata, never the target's. A root
// that does not exist yields (0, 0) without error.
//
//nolint:varnamelen // c and d are idiomatic here
func (c *collector) walkRoot(ctx context.Context, conf *fastwalk.Config, root string, log logger) (uint64, uint64, error) {
	// fastwalk stats the root through the link, so symlink roots are
	// accounted here from their own metadata and never handed to the
	// walk. A broken link still folds (linkLen, 1) into the totals.
	info, err := os.Lstat(root)
	if err != nil {
		log.printf("[debug]: error accessing path %s: %v\n", root, err)
		c.errorCount.Add(1)

		return 0, 0, nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		n := uint64(info.Size()) //nolint:gosec // Size is never negative
		c.totalCount.Add(1)
		c.totalBytes.Add(n)

		return n, 1, nil
	}

	var size, count atomic.Uint64

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			c.errorCount.Add(1)

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		info, err := d.Info()
		if err != nil {
			log.printf("[debug]: error reading metadata for %s: %v\n", path, err)
			c.errorCount.Add(1)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		count.Add(1)
		c.totalCount.Add(1)

		// Directories count as entries but their stat length is not usage.
		if !info.IsDir() {
			n := uint64(info.Size()) //nolint:gosec // Size is never negative
			size.Add(n)
			c.totalBytes.Add(n)
		}

		return nil
	})

	return size.Load(), count.Load(), walkErr
}

// sortEntries orders entries by path or size ascending, then optionally
// reverses the result. The sort is unstable; size ties land in
// unspecified order.
func sortEntries(entries []Entry, opt Options) {
	if opt.SortByPath {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Path < entries[j].Path
		})
	} else {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Size < entries[j].Size
		})
	}

	if opt.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

// Run expands opt.Pattern and aggregates disk usage for every match.
// Each matched root is walked once; its size and count are folded into
// the grand totals regardless of whether the root still exists when the
// walk finishes, but only roots that pass a post-walk stat produce a
// visible Entry. Entries are returned sorted per opt.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Pattern == "" {
		opt.Pattern = "*"
	}

	roots, err := doublestar.FilepathGlob(opt.Pattern)
	if err != nil {
		return nil, fmt.Errorf("could not use pattern %q: %w", opt.Pattern, err)
	}

	log.printf("[debug]: pattern %q expanded to %d paths\n", opt.Pattern, len(roots))

	var c collector

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, &c, progressHook, opt.ProgressInterval)

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	start := time.Now()

	entries := make([]Entry, 0, len(roots))

	for _, root := range roots {
		size, count, err := c.walkRoot(ctx, conf, root, log)
		if err != nil {
			return nil, err
		}

		// A root that vanished mid-run stays in the grand totals but
		// produces no visible row. The same stat records IsDir for the
		// trailing-separator rendering.
		info, err := os.Stat(root)
		if err != nil {
			log.printf("[debug]: dropping vanished path %s: %v\n", root, err)

			continue
		}

		entries = append(entries, Entry{
			Path:  root,
			Size:  size,
			Count: count,
			IsDir: info.IsDir(),
		})
	}

	sortEntries(entries, opt)

	return &Report{
		TotalSize:  c.totalBytes.Load(),
		TotalCount: c.totalCount.Load(),
		Entries:    entries,
		ErrorCount: c.errorCount.Load(),
		Elapsed:    time.Since(start),
	}, nil
}
