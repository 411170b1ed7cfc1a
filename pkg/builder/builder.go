// Package builder turns one event directory of JPEG frames into a video
// file via the encoder port.
package builder

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/user/eventreel/pkg/ports"
)

const (
	frameExt     = ".jpg"
	outputSuffix = "-video.webm"

	// Staged frames are named <index>-capture.jpg so the encoder's %d
	// input pattern picks them up in order, starting at 0.
	stagedSuffix = "-capture.jpg"
)

// RateEstimator yields a playback rate for an ordered frame sequence.
// ok is false when no rate can be estimated.
type RateEstimator interface {
	Estimate(paths []string) (float64, bool)
}

// Builder produces one video per event directory.
type Builder struct {
	fs          ports.FileSystem
	encoder     ports.Encoder
	estimator   RateEstimator
	log         ports.Logger
	defaultRate float64
}

// New creates a Builder. defaultRate is used whenever no sane rate can be
// estimated from the frame timestamps.
func New(fs ports.FileSystem, encoder ports.Encoder, estimator RateEstimator, log ports.Logger, defaultRate float64) *Builder {
	return &Builder{
		fs:          fs,
		encoder:     encoder,
		estimator:   estimator,
		log:         log.WithComponent("builder"),
		defaultRate: defaultRate,
	}
}

// Result reports the outcome of building one event directory.
type Result struct {
	EventDir   string
	OutputPath string
	FrameRate  float64
	FrameCount int

	// SkippedEntries counts directory entries whose metadata could not
	// be read and which were therefore left out of the video.
	SkippedEntries int

	// Encoded is false when the encoder process reported failure. That
	// outcome is logged, not escalated, so the batch can continue.
	Encoded bool

	// OutputSize is the size in bytes of the created video file.
	OutputSize int64
}

// Build lists the event directory's JPEG frames, orders them by their
// embedded sequence number, estimates a frame rate from their timestamps,
// and invokes the encoder. I/O failures are returned as errors; an
// unsuccessful encoder exit is reported through Result.Encoded instead.
func (b *Builder) Build(ctx context.Context, eventDir, outDir string) (Result, error) {
	res := Result{EventDir: eventDir}

	entries, err := b.fs.ReadDir(eventDir)
	if err != nil {
		return res, fmt.Errorf("list event directory %s: %w", eventDir, err)
	}

	var frames []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != frameExt {
			continue
		}
		if _, err := entry.Info(); err != nil {
			res.SkippedEntries++
			b.log.Warn("Skipping unreadable entry %s: %s", entry.Name(), err)
			continue
		}
		frames = append(frames, filepath.Join(eventDir, entry.Name()))
	}
	sortFrames(frames)
	res.FrameCount = len(frames)

	res.FrameRate = b.frameRate(eventDir, frames)

	staging, err := b.stageFrames(frames)
	if err != nil {
		return res, err
	}
	defer b.fs.RemoveAll(staging)

	res.OutputPath = filepath.Join(outDir, filepath.Base(eventDir)+outputSuffix)
	job := ports.EncodeJob{
		FrameRate:    res.FrameRate,
		InputPattern: filepath.Join(staging, "%d"+stagedSuffix),
		OutputPath:   res.OutputPath,
	}
	if err := b.encoder.Encode(ctx, job); err != nil {
		b.log.Error("Failed to create video for %s: %s", eventDir, err)
		return res, nil
	}
	res.Encoded = true

	if fi, err := b.fs.Stat(res.OutputPath); err == nil {
		res.OutputSize = fi.Size()
		b.log.Info("Created video: %s (%s)", res.OutputPath, humanize.Bytes(uint64(fi.Size())))
	} else {
		b.log.Info("Created video: %s", res.OutputPath)
	}
	return res, nil
}

// frameRate picks the playback rate for an event. A degenerate estimate
// (non-positive or non-finite, from zero or out-of-order timestamp
// deltas) is treated exactly like "cannot estimate": the default applies.
func (b *Builder) frameRate(eventDir string, frames []string) float64 {
	est, ok := b.estimator.Estimate(frames)
	if !ok {
		b.log.Debug("Cannot estimate frame rate for %s, using default %v fps", eventDir, b.defaultRate)
		return b.defaultRate
	}
	if est <= 0 || math.IsInf(est, 0) || math.IsNaN(est) {
		b.log.Warn("Degenerate frame rate %v for %s, using default %v fps", est, eventDir, b.defaultRate)
		return b.defaultRate
	}
	b.log.Debug("Estimated frame rate %v fps for %s", est, eventDir)
	return est
}

// stageFrames links the ordered frames into a fresh temporary directory
// under the sequential names the encoder's input pattern expects, so the
// encoder receives exactly the discovered frames regardless of how they
// were named originally.
func (b *Builder) stageFrames(frames []string) (string, error) {
	dir, err := b.fs.MkdirTemp("", "eventreel-*")
	if err != nil {
		return "", fmt.Errorf("create staging directory: %w", err)
	}
	for i, frame := range frames {
		abs, err := filepath.Abs(frame)
		if err != nil {
			b.fs.RemoveAll(dir)
			return "", fmt.Errorf("resolve frame path %s: %w", frame, err)
		}
		name := filepath.Join(dir, strconv.Itoa(i)+stagedSuffix)
		if err := b.fs.Symlink(abs, name); err != nil {
			b.fs.RemoveAll(dir)
			return "", fmt.Errorf("stage frame %s: %w", frame, err)
		}
	}
	return dir, nil
}

// sortFrames orders frames by the numeric sequence embedded in the
// filename, so frame 2 sorts before frame 10 whether or not the names are
// zero padded. Frames without a number, and ties, fall back to plain
// string comparison and sort after numbered ones.
func sortFrames(frames []string) {
	sort.SliceStable(frames, func(i, j int) bool {
		ni, oki := frameNumber(frames[i])
		nj, okj := frameNumber(frames[j])
		switch {
		case oki && okj && ni != nj:
			return ni < nj
		case oki != okj:
			return oki
		}
		return frames[i] < frames[j]
	})
}

// frameNumber extracts the first run of decimal digits from the base name.
func frameNumber(path string) (int64, bool) {
	name := filepath.Base(path)
	start := -1
	for i, r := range name {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.ParseInt(name[start:i], 10, 64)
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.ParseInt(name[start:], 10, 64)
		return n, err == nil
	}
	return 0, false
}
