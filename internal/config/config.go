package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Core settings
	WorkDir string `yaml:"work_dir"`
	TempDir string `yaml:"temp_dir"`

	// Canvas settings
	Canvas CanvasConfig `yaml:"canvas"`

	// FFmpeg settings
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`

	// Caption panel settings
	Panel PanelConfig `yaml:"panel"`

	// Font settings
	Fonts FontConfig `yaml:"fonts"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	Threads      int    `yaml:"threads"`
	Preset       string `yaml:"preset"`
	VideoBitrate string `yaml:"video_bitrate"`
}

type PanelConfig struct {
	HeightFraction float64 `yaml:"height_fraction"`
	CenterFraction float64 `yaml:"center_fraction"`
	Opacity        float64 `yaml:"opacity"`
	Color          string  `yaml:"color"`
}

type FontConfig struct {
	// Candidates are tried in order; the built-in bitmap face is used
	// when none of them can be loaded.
	Candidates  []string `yaml:"candidates"`
	StrokeWidth int      `yaml:"stroke_width"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Panel.HeightFraction <= 0 || c.Panel.HeightFraction >= 1 {
		return fmt.Errorf("panel height_fraction must be in (0,1), got %f", c.Panel.HeightFraction)
	}
	if c.Panel.Opacity < 0 || c.Panel.Opacity > 1 {
		return fmt.Errorf("panel opacity must be in [0,1], got %f", c.Panel.Opacity)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		WorkDir: "./work",
		TempDir: os.TempDir(),
		Canvas: CanvasConfig{
			Width:  1080,
			Height: 1920,
		},
		FFmpeg: FFmpegConfig{
			BinaryPath:   "ffmpeg",
			ProbePath:    "ffprobe",
			Threads:      0,
			Preset:       "veryfast",
			VideoBitrate: "3500k",
		},
		Panel: PanelConfig{
			HeightFraction: 0.32,
			CenterFraction: 0.60,
			Opacity:        0.35,
			Color:          "black",
		},
		Fonts: FontConfig{
			Candidates: []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
				"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
				"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
				"C:\\Windows\\Fonts\\arialbd.ttf",
			},
			StrokeWidth: 2,
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.yml",
		filepath.Join(os.Getenv("HOME"), ".gambarfb", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
