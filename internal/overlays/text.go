// Package overlays rasterizes caption and credits text into transparent
// images that the render pipeline composites over video.
package overlays

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Alignment selects horizontal line placement inside the box.
type Alignment string

const (
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
)

// Line height relative to font size. The wrapped block is centered
// vertically using this fixed per-line height.
const lineHeightFactor = 1.25

// BoxOptions describes the target box for one rasterized text layer.
type BoxOptions struct {
	Width       int
	Height      int
	FontSize    float64
	Align       Alignment
	StrokeWidth int
}

// Engine turns text into outlined transparent images.
type Engine struct {
	logger     zerolog.Logger
	candidates []string
	fill       color.Color
	stroke     color.Color
}

// NewEngine creates a text rasterizer that resolves fonts from the given
// candidate file paths.
func NewEngine(logger zerolog.Logger, fontCandidates []string) *Engine {
	return &Engine{
		logger:     logger.With().Str("component", "overlays").Logger(),
		candidates: fontCandidates,
		fill:       color.White,
		stroke:     color.Black,
	}
}

// Rasterize wraps text into the box and paints it with an outline. The
// result is always a transparent image of exactly the (clamped) box size;
// empty text yields a fully transparent image rather than an error.
func (e *Engine) Rasterize(text string, opts BoxOptions) *image.RGBA {
	opts = clampBox(opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	face := e.resolveFace(opts.FontSize)
	defer face.Close()

	lines := wrapText(face, text, opts.Width)
	if allBlank(lines) {
		return img
	}

	lineHeight := int(opts.FontSize * lineHeightFactor)
	if lineHeight < 1 {
		lineHeight = 1
	}
	blockHeight := lineHeight * len(lines)
	startY := (opts.Height - blockHeight) / 2
	ascent := face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		if line == "" {
			continue
		}

		width := font.MeasureString(face, line).Ceil()
		var x int
		switch opts.Align {
		case AlignLeft:
			x = 0
		case AlignRight:
			x = opts.Width - width
		default:
			x = (opts.Width - width) / 2
		}
		y := startY + i*lineHeight + ascent

		e.drawOutlined(img, face, line, x, y, opts.StrokeWidth)
	}

	return img
}

// drawOutlined paints the line at every stroke offset in the outline color,
// then once at the origin in the fill color.
func (e *Engine) drawOutlined(dst *image.RGBA, face font.Face, line string, x, y, strokeWidth int) {
	strokeDrawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(e.stroke),
		Face: face,
	}
	for dy := -strokeWidth; dy <= strokeWidth; dy++ {
		for dx := -strokeWidth; dx <= strokeWidth; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			strokeDrawer.Dot = fixed.P(x+dx, y+dy)
			strokeDrawer.DrawString(line)
		}
	}

	fillDrawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(e.fill),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	fillDrawer.DrawString(line)
}

// wrapText splits text into lines that render within maxWidth. Explicit
// line breaks are hard breaks, an empty paragraph stays a blank line, and
// words pack greedily onto each line. A single word wider than the box is
// emitted on its own line unbroken.
func wrapText(face font.Face, text string, maxWidth int) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if font.MeasureString(face, candidate).Ceil() <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}

	return lines
}

func allBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

func clampBox(opts BoxOptions) BoxOptions {
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	if opts.FontSize < 1 {
		opts.FontSize = 1
	}
	if opts.StrokeWidth < 0 {
		opts.StrokeWidth = 0
	}
	return opts
}

// SavePNG writes a rasterized layer to disk for ffmpeg to consume.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
