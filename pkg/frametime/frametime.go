// Package frametime derives capture times and playback rates from frame
// file metadata.
package frametime

import (
	"os"
	"time"

	"github.com/djherbis/times"

	"github.com/user/eventreel/pkg/ports"
)

// Resolve returns the best available capture time for a file: its birth
// time when the filesystem records one, otherwise its modification time.
// ok is false when the metadata carries no usable time.
func Resolve(fi os.FileInfo) (time.Time, bool) {
	if fi == nil {
		return time.Time{}, false
	}
	ts := times.Get(fi)
	if ts.HasBirthTime() {
		return ts.BirthTime(), true
	}
	if ts.ModTime().IsZero() {
		return time.Time{}, false
	}
	return ts.ModTime(), true
}

// Estimator computes an approximate playback rate from the spacing of
// frame file timestamps.
type Estimator struct {
	fs ports.FileSystem
}

// NewEstimator creates an Estimator that reads metadata through fs.
func NewEstimator(fs ports.FileSystem) *Estimator {
	return &Estimator{fs: fs}
}

// Estimate returns 1 / mean(consecutive capture time deltas in seconds)
// for the given frame paths, in the given order.
//
// ok is false when fewer than two frames are supplied or any timestamp
// cannot be resolved; no partial result is produced. The division itself
// is not validated: a zero mean delta yields +Inf and a negative mean a
// negative rate. Clamping is the caller's policy.
func (e *Estimator) Estimate(paths []string) (float64, bool) {
	if len(paths) < 2 {
		return 0, false
	}

	var sum float64
	for i := 1; i < len(paths); i++ {
		prev, ok := e.captureTime(paths[i-1])
		if !ok {
			return 0, false
		}
		curr, ok := e.captureTime(paths[i])
		if !ok {
			return 0, false
		}
		sum += curr.Sub(prev).Seconds()
	}

	mean := sum / float64(len(paths)-1)
	return 1 / mean, true
}

func (e *Estimator) captureTime(path string) (time.Time, bool) {
	fi, err := e.fs.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return Resolve(fi)
}
