// Package render turns a validated Job into a finished 9:16 caption video:
// it conditions the source, computes placement, rasterizes the text layers
// and drives the composite encode.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nezastore/gambarfb/internal/config"
	"github.com/nezastore/gambarfb/internal/ffmpeg"
	"github.com/nezastore/gambarfb/internal/layout"
	"github.com/nezastore/gambarfb/internal/overlays"
	"github.com/nezastore/gambarfb/pkg/util"
)

// Renderer executes the full caption-overlay pipeline for one job at a
// time. It holds no per-job state; all job-scoped artifacts live in a
// temp directory removed on every exit path.
type Renderer struct {
	logger zerolog.Logger
	exec   *ffmpeg.Executor
	text   *overlays.Engine
	cfg    *config.Config

	// normalize is the best-effort pre-transcode step; a seam so tests can
	// force the fallback-to-source path deterministically.
	normalize func(ctx context.Context, input, output string) string
}

// New creates a renderer from the application configuration.
func New(logger zerolog.Logger, cfg *config.Config) (*Renderer, error) {
	exec, err := ffmpeg.New(logger, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath, cfg.FFmpeg.Threads)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ffmpeg: %w", err)
	}

	if err := util.EnsureDir(cfg.WorkDir); err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}

	return &Renderer{
		logger:    logger.With().Str("component", "render").Logger(),
		exec:      exec,
		text:      overlays.NewEngine(logger, cfg.Fonts.Candidates),
		cfg:       cfg,
		normalize: exec.Normalize,
	}, nil
}

// Render produces the final video for the job and reports its duration.
// The output always matches the source duration; audio is carried over
// when the source has a track.
func (r *Renderer) Render(ctx context.Context, job Job) (Result, error) {
	r.logger.Info().
		Str("job", job.ID).
		Str("source", job.SourcePath).
		Int("lines", len(job.Lines)).
		Msg("starting render")

	tempDir, err := os.MkdirTemp(r.cfg.TempDir, "gambarfb-job-")
	if err != nil {
		return Result{}, fmt.Errorf("%w: create temp dir: %v", ErrRenderFailed, err)
	}
	defer os.RemoveAll(tempDir)

	source := r.normalize(ctx, job.SourcePath, filepath.Join(tempDir, "normalized.mp4"))

	info, err := r.exec.ProbeVideo(ctx, source)
	if err != nil {
		return Result{}, fmt.Errorf("%w: probe source: %v", ErrRenderFailed, err)
	}

	placement := layout.Fit(info.Width, info.Height, job.CanvasWidth, job.CanvasHeight)
	geom := newGeometry(job, r.cfg.Panel, placement)

	r.logger.Debug().
		Str("job", job.ID).
		Float64("scale", placement.Scale).
		Int("placed_w", placement.Width).
		Int("placed_h", placement.Height).
		Msg("computed canvas placement")

	captionPath := filepath.Join(tempDir, "caption.png")
	caption := r.text.Rasterize(strings.Join(job.Lines, "\n"), overlays.BoxOptions{
		Width:       geom.captionBoxWidth,
		Height:      geom.captionBoxHeight,
		FontSize:    geom.captionFontSize,
		Align:       overlays.AlignCenter,
		StrokeWidth: r.cfg.Fonts.StrokeWidth,
	})
	if err := overlays.SavePNG(caption, captionPath); err != nil {
		return Result{}, fmt.Errorf("%w: write caption layer: %v", ErrRenderFailed, err)
	}

	creditsPath := filepath.Join(tempDir, "credits.png")
	credits := r.text.Rasterize(job.Credits, overlays.BoxOptions{
		Width:       geom.creditsBoxWidth,
		Height:      geom.creditsBoxHeight,
		FontSize:    geom.creditsFontSize,
		Align:       overlays.AlignLeft,
		StrokeWidth: r.cfg.Fonts.StrokeWidth,
	})
	if err := overlays.SavePNG(credits, creditsPath); err != nil {
		return Result{}, fmt.Errorf("%w: write credits layer: %v", ErrRenderFailed, err)
	}

	outputPath := job.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(r.cfg.WorkDir, fmt.Sprintf("render_%s.mp4", job.ID))
	}

	audioMap := ""
	if info.HasAudio {
		audioMap = "0:a?"
	}

	err = r.exec.Compose(ctx, ffmpeg.ComposeOptions{
		Inputs:        []string{source, captionPath, creditsPath},
		FilterComplex: buildFilterGraph(geom),
		VideoLabel:    "[outv]",
		AudioMap:      audioMap,
		FPS:           util.RoundFPS(info.FPS),
		VideoBitrate:  r.cfg.FFmpeg.VideoBitrate,
		Preset:        r.cfg.FFmpeg.Preset,
		Output:        outputPath,
	})
	if err != nil {
		util.CleanupFiles(outputPath)
		return Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	if !util.NonEmptyFile(outputPath) {
		return Result{}, fmt.Errorf("%w: output file missing or empty: %s", ErrRenderFailed, outputPath)
	}

	duration := info.Duration.Seconds()
	if outInfo, err := r.exec.ProbeVideo(ctx, outputPath); err == nil && outInfo.Duration > 0 {
		duration = outInfo.Duration.Seconds()
	}

	r.logger.Info().
		Str("job", job.ID).
		Str("output", outputPath).
		Float64("duration", duration).
		Msg("render completed")

	return Result{OutputPath: outputPath, Duration: duration}, nil
}
