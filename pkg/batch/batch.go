// Package batch walks a base directory and builds one video per numbered
// event subdirectory.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/user/eventreel/pkg/builder"
	"github.com/user/eventreel/pkg/ports"
)

// VideoBuilder produces one video from an event directory.
type VideoBuilder interface {
	Build(ctx context.Context, eventDir, outDir string) (builder.Result, error)
}

// RunStats aggregates per-event outcomes for the final summary.
type RunStats struct {
	Events         int
	Created        int
	Failed         int
	SkippedEntries int
	TotalBytes     int64
}

// Runner processes every event directory under a base directory,
// sequentially and in ascending numeric order.
type Runner struct {
	fs        ports.FileSystem
	vb        VideoBuilder
	log       ports.Logger
	outputDir string
}

// New creates a Runner. outputDir is the name of the output subdirectory
// created under the base directory, e.g. "videos".
func New(fs ports.FileSystem, vb VideoBuilder, log ports.Logger, outputDir string) *Runner {
	return &Runner{
		fs:        fs,
		vb:        vb,
		log:       log,
		outputDir: outputDir,
	}
}

// Run is the top-level batch entry point. Only base-level setup failures
// (creating the output directory, listing the base directory) abort the
// run; per-event failures are logged, counted, and skipped over.
func (r *Runner) Run(ctx context.Context, baseDir string) (RunStats, error) {
	var stats RunStats

	outDir := filepath.Join(baseDir, r.outputDir)
	if err := r.fs.MkdirAll(outDir); err != nil {
		return stats, fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	events, err := r.discoverEvents(baseDir)
	if err != nil {
		return stats, fmt.Errorf("list base directory %s: %w", baseDir, err)
	}
	stats.Events = len(events)
	r.log.Info("Found %d event directories under %s", len(events), baseDir)

	for _, dir := range events {
		if ctx.Err() != nil {
			r.log.Warn("Interrupted")
			break
		}

		res, err := r.vb.Build(ctx, dir, outDir)
		stats.SkippedEntries += res.SkippedEntries
		if err != nil {
			r.log.Error("Skipping %s: %s", dir, err)
			stats.Failed++
			continue
		}
		if !res.Encoded {
			stats.Failed++
			continue
		}
		stats.Created++
		stats.TotalBytes += res.OutputSize
	}

	r.log.Info("Done: %d of %d videos created (%s), %d failed",
		stats.Created, stats.Events, humanize.Bytes(uint64(stats.TotalBytes)), stats.Failed)
	return stats, nil
}

// discoverEvents returns baseDir's immediate all-digit subdirectories,
// sorted ascending by numeric value for deterministic processing order.
// Nested directories and plain files are never considered.
func (r *Runner) discoverEvents(baseDir string) ([]string, error) {
	entries, err := r.fs.ReadDir(baseDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && isEventName(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return lessEventID(names[i], names[j])
	})

	dirs := make([]string, len(names))
	for i, name := range names {
		dirs[i] = filepath.Join(baseDir, name)
	}
	return dirs, nil
}

// isEventName reports whether name is a non-empty run of decimal digits.
func isEventName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// lessEventID compares two all-digit names by numeric value without
// parsing, so ids beyond the int64 range still order correctly. Leading
// zeros are ignored for the comparison; equal values fall back to the
// raw names so the order stays total.
func lessEventID(a, b string) bool {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) < len(tb)
	}
	if ta != tb {
		return ta < tb
	}
	return a < b
}
