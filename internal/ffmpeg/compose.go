package ffmpeg

import (
	"context"
	"fmt"
)

// ComposeOptions configures a multi-input filter-graph encode.
type ComposeOptions struct {
	Inputs        []string
	FilterComplex string
	VideoLabel    string // output label of the filter graph, e.g. "[outv]"
	AudioMap      string // stream specifier for audio, e.g. "0:a?"; empty for silent output
	FPS           int
	VideoBitrate  string
	Preset        string
	Output        string
	ProgressFunc  ProgressFunc
}

// Compose runs the layered filter graph and encodes the result with the
// fixed streaming-ready output policy: H.264, 4:2:0 chroma, AAC audio and
// the moov atom relocated to the front of the container.
func (e *Executor) Compose(ctx context.Context, opts ComposeOptions) error {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("no input files provided")
	}
	if opts.FilterComplex == "" {
		return fmt.Errorf("filter graph is required")
	}
	if opts.Output == "" {
		return fmt.Errorf("output path is required")
	}

	e.logger.Info().
		Int("inputs", len(opts.Inputs)).
		Str("output", opts.Output).
		Msg("compositing timeline")

	args := make([]string, 0, 2*len(opts.Inputs)+24)
	for _, input := range opts.Inputs {
		args = append(args, "-i", input)
	}

	args = append(args, "-filter_complex", opts.FilterComplex)
	args = append(args, "-map", opts.VideoLabel)
	if opts.AudioMap != "" {
		args = append(args, "-map", opts.AudioMap)
		args = append(args, "-c:a", DefaultAudioCodec, "-ar", fmt.Sprintf("%d", DefaultAudioRate))
	}

	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	args = append(args,
		"-c:v", DefaultVideoCodec,
		"-preset", preset,
		"-pix_fmt", DefaultPixelFormat,
	)

	if opts.VideoBitrate != "" {
		args = append(args, "-b:v", opts.VideoBitrate)
	}
	if opts.FPS > 0 {
		args = append(args, "-r", fmt.Sprintf("%d", opts.FPS))
	}

	args = append(args, "-movflags", "+faststart", opts.Output)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("compositing")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("composite encode failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("composite encode completed")
	return nil
}
