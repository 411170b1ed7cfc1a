package builder

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/user/eventreel/pkg/adapters/logger"
	"github.com/user/eventreel/pkg/mocks"
	"github.com/user/eventreel/pkg/ports"
)

// fakeEstimator returns a canned rate and records the paths it was asked
// about.
type fakeEstimator struct {
	rate  float64
	ok    bool
	calls [][]string
}

func (f *fakeEstimator) Estimate(paths []string) (float64, bool) {
	f.calls = append(f.calls, append([]string(nil), paths...))
	return f.rate, f.ok
}

func jpgEntries(names ...string) []os.DirEntry {
	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, mocks.DirEntry{EntryName: name})
	}
	return entries
}

func TestBuild_StagesFramesInSequenceOrder(t *testing.T) {
	fs := &mocks.FileSystem{
		ReadDirFunc: func(path string) ([]os.DirEntry, error) {
			return []os.DirEntry{
				mocks.DirEntry{EntryName: "10-capture.jpg"},
				mocks.DirEntry{EntryName: "2-capture.jpg"},
				mocks.DirEntry{EntryName: "1-capture.jpg"},
				mocks.DirEntry{EntryName: "notes.txt"},
				mocks.DirEntry{EntryName: "nested", Dir: true},
			}, nil
		},
	}
	enc := &mocks.Encoder{}
	est := &fakeEstimator{rate: 12.5, ok: true}

	b := New(fs, enc, est, logger.NewNoop(), 24.0)
	res, err := b.Build(context.Background(), "/events/42", "/out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Encoded {
		t.Error("expected Encoded")
	}
	if res.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", res.FrameCount)
	}
	if res.FrameRate != 12.5 {
		t.Errorf("expected estimated rate 12.5, got %v", res.FrameRate)
	}

	// Estimator sees the frames in sequence order.
	if len(est.calls) != 1 {
		t.Fatalf("expected 1 estimator call, got %d", len(est.calls))
	}
	wantOrder := []string{
		filepath.Join("/events/42", "1-capture.jpg"),
		filepath.Join("/events/42", "2-capture.jpg"),
		filepath.Join("/events/42", "10-capture.jpg"),
	}
	for i, want := range wantOrder {
		if est.calls[0][i] != want {
			t.Errorf("estimator path %d: expected %s, got %s", i, want, est.calls[0][i])
		}
	}

	// Staged links carry sequential names in the same order.
	if len(fs.SymlinkCalls) != 3 {
		t.Fatalf("expected 3 symlinks, got %d", len(fs.SymlinkCalls))
	}
	for i, call := range fs.SymlinkCalls {
		wantOld, _ := filepath.Abs(wantOrder[i])
		if call.Oldname != wantOld {
			t.Errorf("symlink %d: expected target %s, got %s", i, wantOld, call.Oldname)
		}
		wantNew := filepath.Join("/tmp/mockstage", strconv.Itoa(i)+stagedSuffix)
		if call.Newname != wantNew {
			t.Errorf("symlink %d: expected name %s, got %s", i, wantNew, call.Newname)
		}
	}

	// Encoder receives the staging pattern and the fixed output path.
	if len(enc.EncodeCalls) != 1 {
		t.Fatalf("expected 1 encode call, got %d", len(enc.EncodeCalls))
	}
	job := enc.EncodeCalls[0]
	if want := filepath.Join("/tmp/mockstage", "%d-capture.jpg"); job.InputPattern != want {
		t.Errorf("expected input pattern %s, got %s", want, job.InputPattern)
	}
	if want := filepath.Join("/out", "42-video.webm"); job.OutputPath != want {
		t.Errorf("expected output path %s, got %s", want, job.OutputPath)
	}

	// Staging directory is cleaned up.
	if len(fs.RemoveAllCalls) != 1 || fs.RemoveAllCalls[0] != "/tmp/mockstage" {
		t.Errorf("expected staging cleanup, got %v", fs.RemoveAllCalls)
	}
}

func TestBuild_DefaultRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		ok   bool
	}{
		{"cannot estimate", 0, false},
		{"zero rate", 0, true},
		{"negative rate", -3, true},
		{"infinite rate", math.Inf(1), true},
		{"nan rate", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &mocks.FileSystem{
				ReadDirFunc: func(path string) ([]os.DirEntry, error) {
					return jpgEntries("0-capture.jpg", "1-capture.jpg"), nil
				},
			}
			enc := &mocks.Encoder{}
			est := &fakeEstimator{rate: tt.rate, ok: tt.ok}

			b := New(fs, enc, est, logger.NewNoop(), 24.0)
			res, err := b.Build(context.Background(), "/events/7", "/out")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.FrameRate != 24.0 {
				t.Errorf("expected default rate 24, got %v", res.FrameRate)
			}
			if enc.EncodeCalls[0].FrameRate != 24.0 {
				t.Errorf("expected encoder to receive default rate, got %v", enc.EncodeCalls[0].FrameRate)
			}
		})
	}
}

func TestBuild_EncoderFailureIsReportedNotEscalated(t *testing.T) {
	fs := &mocks.FileSystem{
		ReadDirFunc: func(path string) ([]os.DirEntry, error) {
			return jpgEntries("0-capture.jpg", "1-capture.jpg"), nil
		},
	}
	enc := &mocks.Encoder{
		EncodeFunc: func(ctx context.Context, job ports.EncodeJob) error {
			return errors.New("exit status 1")
		},
	}

	b := New(fs, enc, &fakeEstimator{}, logger.NewNoop(), 24.0)
	res, err := b.Build(context.Background(), "/events/7", "/out")
	if err != nil {
		t.Fatalf("encoder failure must not escalate, got: %v", err)
	}
	if res.Encoded {
		t.Error("expected Encoded == false")
	}
	if len(fs.RemoveAllCalls) != 1 {
		t.Errorf("expected staging cleanup after failure, got %v", fs.RemoveAllCalls)
	}
}

func TestBuild_ListErrorEscalates(t *testing.T) {
	fs := &mocks.FileSystem{
		ReadDirFunc: func(path string) ([]os.DirEntry, error) {
			return nil, errors.New("permission denied")
		},
	}
	enc := &mocks.Encoder{}

	b := New(fs, enc, &fakeEstimator{}, logger.NewNoop(), 24.0)
	if _, err := b.Build(context.Background(), "/events/7", "/out"); err == nil {
		t.Fatal("expected error when the event directory cannot be listed")
	}
	if len(enc.EncodeCalls) != 0 {
		t.Error("encoder must not run when listing fails")
	}
}

func TestBuild_UnreadableEntriesCountedAndSkipped(t *testing.T) {
	fs := &mocks.FileSystem{
		ReadDirFunc: func(path string) ([]os.DirEntry, error) {
			return []os.DirEntry{
				mocks.DirEntry{EntryName: "0-capture.jpg"},
				mocks.DirEntry{EntryName: "1-capture.jpg", InfoErr: errors.New("stale handle")},
				mocks.DirEntry{EntryName: "2-capture.jpg"},
			}, nil
		},
	}
	enc := &mocks.Encoder{}

	b := New(fs, enc, &fakeEstimator{rate: 10, ok: true}, logger.NewNoop(), 24.0)
	res, err := b.Build(context.Background(), "/events/7", "/out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SkippedEntries != 1 {
		t.Errorf("expected 1 skipped entry, got %d", res.SkippedEntries)
	}
	if res.FrameCount != 2 {
		t.Errorf("expected 2 frames, got %d", res.FrameCount)
	}
	if len(fs.SymlinkCalls) != 2 {
		t.Errorf("expected 2 staged frames, got %d", len(fs.SymlinkCalls))
	}
}

func TestBuild_EmptyDirectoryStillInvokesEncoder(t *testing.T) {
	fs := &mocks.FileSystem{
		ReadDirFunc: func(path string) ([]os.DirEntry, error) {
			return nil, nil
		},
	}
	enc := &mocks.Encoder{
		EncodeFunc: func(ctx context.Context, job ports.EncodeJob) error {
			// Nothing matches the pattern, so a real encoder fails.
			return errors.New("no frames matched")
		},
	}
	est := &fakeEstimator{}

	b := New(fs, enc, est, logger.NewNoop(), 24.0)
	res, err := b.Build(context.Background(), "/events/7", "/out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enc.EncodeCalls) != 1 {
		t.Fatalf("expected the encoder to run even with no frames, got %d calls", len(enc.EncodeCalls))
	}
	if enc.EncodeCalls[0].FrameRate != 24.0 {
		t.Errorf("expected default rate, got %v", enc.EncodeCalls[0].FrameRate)
	}
	if res.Encoded {
		t.Error("expected the encoder failure to be reported")
	}
}

func TestSortFrames(t *testing.T) {
	frames := []string{
		"/ev/12-capture.jpg",
		"/ev/0005-capture.jpg",
		"/ev/003-capture.jpg",
		"/ev/zback.jpg",
		"/ev/afront.jpg",
	}
	sortFrames(frames)

	want := []string{
		"/ev/003-capture.jpg",
		"/ev/0005-capture.jpg",
		"/ev/12-capture.jpg",
		"/ev/afront.jpg",
		"/ev/zback.jpg",
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], frames[i])
		}
	}
}

func TestFrameNumber(t *testing.T) {
	tests := []struct {
		path string
		n    int64
		ok   bool
	}{
		{"/ev/0-capture.jpg", 0, true},
		{"/ev/0042-capture.jpg", 42, true},
		{"/ev/frame12.jpg", 12, true},
		{"/ev/capture.jpg", 0, false},
		{"/ev123/capture.jpg", 0, false},
	}
	for _, tt := range tests {
		n, ok := frameNumber(tt.path)
		if n != tt.n || ok != tt.ok {
			t.Errorf("frameNumber(%s) = (%d, %v), expected (%d, %v)", tt.path, n, ok, tt.n, tt.ok)
		}
	}
}
