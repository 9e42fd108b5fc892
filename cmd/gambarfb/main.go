package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nezastore/gambarfb/internal/captions"
	"github.com/nezastore/gambarfb/internal/config"
	"github.com/nezastore/gambarfb/internal/ffmpeg"
	"github.com/nezastore/gambarfb/internal/logging"
	"github.com/nezastore/gambarfb/internal/queue"
	"github.com/nezastore/gambarfb/internal/render"
	"github.com/nezastore/gambarfb/pkg/util"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gambarfb",
	Short: "gambarfb - caption-overlay video renderer",
	Long:  "Renders 9:16 videos with a burned-in caption panel and credits line from a background clip and a short script.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
}

var (
	renderLines   []string
	renderCredits string
	renderOutput  string
	renderWidth   int
	renderHeight  int
)

var renderCmd = &cobra.Command{
	Use:   "render [input video]",
	Short: "Render a caption-overlay video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		renderer, err := render.New(log.Logger, cfg)
		if err != nil {
			return err
		}

		job, err := render.NewJob(args[0], renderLines, renderCredits, renderWidth, renderHeight)
		if err != nil {
			return err
		}
		job.OutputPath = renderOutput

		done := make(chan error, 1)
		q := queue.New(log.Logger, renderer)
		q.Submit(job, func(_ render.Job, result render.Result, err error) {
			if err == nil {
				fmt.Printf("%s\t%.3f\n", result.OutputPath, result.Duration)
			}
			done <- err
		})

		return <-done
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe [input video]",
	Short: "Print source video metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		exec, err := ffmpeg.New(log.Logger, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath, cfg.FFmpeg.Threads)
		if err != nil {
			return err
		}

		info, err := exec.ProbeVideo(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		log.Info().
			Int("width", info.Width).
			Int("height", info.Height).
			Float64("fps", info.FPS).
			Str("duration", util.FormatDuration(info.Duration)).
			Str("video_codec", info.VideoCodec).
			Bool("has_audio", info.HasAudio).
			Str("audio_codec", info.AudioCodec).
			Msg("probe complete")

		return nil
	},
}

var (
	variantsCredits string
	variantsOutput  string
)

var variantsCmd = &cobra.Command{
	Use:   "variants [variants yaml]",
	Short: "Format a caption-variants file for delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var variants []captions.Variant
		if err := yaml.Unmarshal(data, &variants); err != nil {
			return fmt.Errorf("parse variants: %w", err)
		}

		if variantsOutput == "" {
			fmt.Print(captions.Format(variants, variantsCredits))
			return nil
		}
		return captions.WriteFile(variantsOutput, variants, variantsCredits)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	renderCmd.Flags().StringArrayVarP(&renderLines, "line", "l", nil, "overlay script line (repeatable, 3-6 kept)")
	renderCmd.Flags().StringVar(&renderCredits, "credits", "", "credits line (may be empty)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: work dir)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "canvas width (default 1080)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "canvas height (default 1920)")

	variantsCmd.Flags().StringVar(&variantsCredits, "credits", "", "trailing credits line")
	variantsCmd.Flags().StringVarP(&variantsOutput, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(variantsCmd)
}
