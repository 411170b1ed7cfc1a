package ports

import (
	"context"
)

// EncodeJob describes one invocation of the external encoder.
type EncodeJob struct {
	// FrameRate is the playback rate in frames per second.
	FrameRate float64

	// InputPattern is the image sequence pattern handed to the encoder,
	// e.g. /tmp/stage123/%d-capture.jpg.
	InputPattern string

	// OutputPath is the video file the encoder writes.
	OutputPath string
}

// Encoder abstracts the external video encoding process so tests can
// substitute a fake process runner.
type Encoder interface {
	// Encode runs the encoder for one job, blocking until the process
	// exits. A non-zero exit is returned as an error.
	Encode(ctx context.Context, job EncodeJob) error
}
