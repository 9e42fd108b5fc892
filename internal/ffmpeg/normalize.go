package ffmpeg

import (
	"context"
	"fmt"

	"github.com/nezastore/gambarfb/pkg/util"
)

// Normalize re-encodes the source into the canonical codec, pixel format,
// frame rate and audio profile so compositing always receives predictable
// input. Normalization is best effort: any failure, or an empty result
// file, falls back to the original path without surfacing an error.
func (e *Executor) Normalize(ctx context.Context, input, output string) string {
	e.logger.Info().
		Str("input", input).
		Str("output", output).
		Msg("normalizing source video")

	args := []string{
		"-i", input,
		"-c:v", DefaultVideoCodec,
		"-preset", DefaultPreset,
		"-pix_fmt", DefaultPixelFormat,
		"-r", fmt.Sprintf("%d", NormalizeFPS),
		"-c:a", DefaultAudioCodec,
		"-ar", fmt.Sprintf("%d", DefaultAudioRate),
		output,
	}

	opts := RunOptions{
		Args: args,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("normalization")
		},
	}

	if err := e.Run(ctx, opts); err != nil {
		e.logger.Warn().Err(err).Str("input", input).Msg("normalization failed, using original source")
		util.CleanupFiles(output)
		return input
	}

	if !util.NonEmptyFile(output) {
		e.logger.Warn().Str("input", input).Msg("normalization produced no usable output, using original source")
		util.CleanupFiles(output)
		return input
	}

	return output
}
