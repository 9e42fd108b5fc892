package ffmpeg

import "time"

// VideoInfo contains metadata about a video file
type VideoInfo struct {
	FilePath     string
	Duration     time.Duration
	Width        int
	Height       int
	FPS          float64
	Bitrate      int64
	VideoCodec   string
	HasAudio     bool
	AudioCodec   string
	AudioBitrate int64
}

// Progress represents ffmpeg progress data
type Progress struct {
	Frame      int
	FPS        float64
	Bitrate    string
	Time       string
	Speed      string
	Percentage float64
}

// RunOptions configures ffmpeg execution
type RunOptions struct {
	Args            []string
	ProgressHandler func(*Progress)
	LogHandler      func(line string)
}

// ProgressFunc is a callback for progress updates during ffmpeg operations.
type ProgressFunc func(*Progress)

// Canonical encode settings. Normalization and the final encode both target
// this profile so every player in the delivery path sees the same thing.
const (
	DefaultVideoCodec  = "libx264"
	DefaultAudioCodec  = "aac"
	DefaultPixelFormat = "yuv420p"
	DefaultPreset      = "veryfast"
	DefaultAudioRate   = 44100
	NormalizeFPS       = 30
)
