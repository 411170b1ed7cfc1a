// Package ffmpegencoder runs ffmpeg as an external process to stitch JPEG
// frame sequences into WebM video files.
package ffmpegencoder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/user/eventreel/pkg/ports"
)

const (
	videoCodec  = "libvpx-vp9"
	pixelFormat = "yuv420p"

	// Keep only the end of ffmpeg's stderr in error messages; the start
	// is mostly banner and stream metadata.
	stderrTailBytes = 2048
)

// Encoder implements ports.Encoder by invoking an ffmpeg subprocess with a
// fixed argument list per job.
type Encoder struct {
	customPath string
	log        ports.Logger
}

// New creates a new Encoder. customPath, when non-empty, takes priority
// over the usual executable discovery.
func New(customPath string, log ports.Logger) *Encoder {
	return &Encoder{
		customPath: customPath,
		log:        log.WithComponent("ffmpeg"),
	}
}

// FindFFmpeg searches for ffmpeg.
// Priority: 1) customPath, 2) FFMPEG_PATH env, 3) PATH, 4) common locations.
func FindFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not usable", ErrFFmpegNotFound, customPath)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not usable", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// Encode runs ffmpeg for one job and blocks until it exits.
func (e *Encoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	ffmpegPath, err := FindFFmpeg(e.customPath)
	if err != nil {
		return err
	}

	args := buildArgs(job)
	e.log.Debug("Running %s %s", ffmpegPath, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v\nstderr: %s", ErrEncodingFailed, err, stderrTail(&stderr))
	}
	return nil
}

// buildArgs constructs the fixed, ordered ffmpeg argument list:
// frame rate, input pattern, codec, pixel format, output path.
func buildArgs(job ports.EncodeJob) []string {
	return []string{
		"-framerate", formatRate(job.FrameRate),
		"-i", job.InputPattern,
		"-c:v", videoCodec,
		"-pix_fmt", pixelFormat,
		job.OutputPath,
	}
}

// formatRate renders the rate with the fewest digits that round-trip, so
// whole rates appear as plain integers (24.0 -> "24").
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

func stderrTail(buf *bytes.Buffer) string {
	s := buf.String()
	if len(s) > stderrTailBytes {
		s = "..." + s[len(s)-stderrTailBytes:]
	}
	return strings.TrimSpace(s)
}

// Ensure Encoder implements ports.Encoder
var _ ports.Encoder = (*Encoder)(nil)
