package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Overlay script bounds. Short scripts are padded with blank lines,
// long ones truncated.
const (
	MinOverlayLines = 3
	MaxOverlayLines = 6
)

// Default portrait canvas (9:16).
const (
	DefaultCanvasWidth  = 1080
	DefaultCanvasHeight = 1920
)

var (
	// ErrRenderFailed marks a job whose final output is missing or empty.
	ErrRenderFailed = errors.New("render failed")
	// ErrEncodeFailed marks an abnormal exit of the external encode step.
	ErrEncodeFailed = errors.New("encode failed")
)

// Job describes one caption-overlay render request. Construct it with
// NewJob so field invariants hold before the job ever reaches the worker.
type Job struct {
	ID           string
	SourcePath   string
	Lines        []string
	Credits      string
	CanvasWidth  int
	CanvasHeight int
	OutputPath   string
}

// NewJob validates and normalizes a render request. Zero canvas dimensions
// select the 1080x1920 default; the overlay line count is normalized into
// [MinOverlayLines, MaxOverlayLines].
func NewJob(sourcePath string, lines []string, credits string, canvasWidth, canvasHeight int) (Job, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return Job{}, fmt.Errorf("source path is required")
	}
	if canvasWidth == 0 && canvasHeight == 0 {
		canvasWidth = DefaultCanvasWidth
		canvasHeight = DefaultCanvasHeight
	}
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return Job{}, fmt.Errorf("canvas dimensions must be positive, got %dx%d", canvasWidth, canvasHeight)
	}

	return Job{
		ID:           uuid.NewString(),
		SourcePath:   sourcePath,
		Lines:        NormalizeLines(lines),
		Credits:      credits,
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
	}, nil
}

// NormalizeLines pads the script to the minimum line count with blanks and
// truncates it to the maximum.
func NormalizeLines(lines []string) []string {
	normalized := make([]string, 0, MaxOverlayLines)
	for _, line := range lines {
		normalized = append(normalized, strings.TrimSpace(line))
		if len(normalized) == MaxOverlayLines {
			break
		}
	}
	for len(normalized) < MinOverlayLines {
		normalized = append(normalized, "")
	}
	return normalized
}

// Result is the terminal outcome of a successful render.
type Result struct {
	OutputPath string
	// Duration of the output in seconds, equal to the source duration.
	// Reported so delivery layers can announce playback length without
	// re-probing the file.
	Duration float64
}
