package ffmpegencoder

import "errors"

var (
	// ErrFFmpegNotFound is returned when no usable ffmpeg executable can
	// be located.
	ErrFFmpegNotFound = errors.New("ffmpegencoder: ffmpeg not found")

	// ErrEncodingFailed is returned when the ffmpeg process exits
	// unsuccessfully.
	ErrEncodingFailed = errors.New("ffmpegencoder: encoding failed")
)
