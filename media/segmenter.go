package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pattanan23/elearnnig-it/apperror"
)

// CommandRunner runs an external program and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

// Segmenter splits a video into equal-length parts with ffmpeg.
type Segmenter struct {
	FFmpeg   string
	FFprobe  string
	Segments int
	TempDir  string
	Runner   CommandRunner
}

func NewSegmenter(ffmpeg, ffprobe string, segments int) *Segmenter {
	return &Segmenter{
		FFmpeg:   ffmpeg,
		FFprobe:  ffprobe,
		Segments: segments,
		TempDir:  os.TempDir(),
		Runner:   execRunner{},
	}
}

func (s *Segmenter) Enabled() bool {
	return s != nil && s.Segments > 0
}

// Split writes src to a temporary copy, probes its duration and cuts it into
// s.Segments parts inside outDir. The first failing cut stops the rest. The
// temporary copy is removed on every path.
func (s *Segmenter) Split(ctx context.Context, src io.Reader, outDir string, lessonNo int, ext string) ([]string, error) {
	tmp := filepath.Join(s.TempDir, uuid.NewString()+ext)
	if err := writeTemp(tmp, src); err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	duration, err := s.probe(ctx, tmp)
	if err != nil {
		return nil, apperror.Transcode(err, "Failed to read video duration")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, apperror.Storage(err, "Failed to create upload folder")
	}

	part := duration / float64(s.Segments)
	names := make([]string, 0, s.Segments)
	for i := 1; i <= s.Segments; i++ {
		name := SegmentFileName(lessonNo, i, ext)
		start := part * float64(i-1)
		_, err := s.Runner.Run(ctx, s.FFmpeg,
			"-y",
			"-ss", formatSeconds(start),
			"-t", formatSeconds(part),
			"-i", tmp,
			"-c", "copy",
			filepath.Join(outDir, name),
		)
		if err != nil {
			log.Printf("[UPLOAD] Segment %d of lesson %d failed: %v", i, lessonNo, err)
			return nil, apperror.Transcode(err, fmt.Sprintf("Failed to create video segment %d", i))
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *Segmenter) probe(ctx context.Context, file string) (float64, error) {
	out, err := s.Runner.Run(ctx, s.FFprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		file,
	)
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("video has no duration")
	}
	return duration, nil
}

func writeTemp(path string, src io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return apperror.Storage(err, "Failed to buffer video")
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(path)
		return apperror.Storage(err, "Failed to buffer video")
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return apperror.Storage(err, "Failed to buffer video")
	}
	return nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
