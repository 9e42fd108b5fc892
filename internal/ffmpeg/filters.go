package ffmpeg

import (
	"fmt"
	"strings"
)

// FilterBuilder helps construct ffmpeg filter chains for one stream.
type FilterBuilder struct {
	filters []string
}

// NewFilterBuilder creates a new filter builder
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		filters: make([]string, 0),
	}
}

// Scale adds a scale filter
func (fb *FilterBuilder) Scale(width, height int) *FilterBuilder {
	if width <= 0 || height <= 0 {
		// Return self without adding filter - allows chaining to continue
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("scale=%d:%d", width, height))
	return fb
}

// Pad letterboxes the stream onto a canvas of the given size, placing the
// frame at (x, y) and filling the rest with the color.
func (fb *FilterBuilder) Pad(width, height, x, y int, color string) *FilterBuilder {
	if width <= 0 || height <= 0 {
		return fb
	}
	if color == "" {
		color = "black"
	}
	fb.filters = append(fb.filters, fmt.Sprintf("pad=%d:%d:%d:%d:%s", width, height, x, y, color))
	return fb
}

// DrawBox paints a filled rectangle with the given color and opacity.
func (fb *FilterBuilder) DrawBox(x, y, width, height int, color string, opacity float64) *FilterBuilder {
	if width <= 0 || height <= 0 {
		return fb
	}
	if color == "" {
		color = "black"
	}
	fb.filters = append(fb.filters, fmt.Sprintf("drawbox=x=%d:y=%d:w=%d:h=%d:color=%s@%.2f:t=fill",
		x, y, width, height, color, opacity))
	return fb
}

// FPS adds an fps filter
func (fb *FilterBuilder) FPS(fps float64) *FilterBuilder {
	if fps <= 0 {
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("fps=%f", fps))
	return fb
}

// Format adds a pixel format conversion
func (fb *FilterBuilder) Format(pixFmt string) *FilterBuilder {
	if pixFmt == "" {
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("format=%s", pixFmt))
	return fb
}

// Custom adds a custom filter string
func (fb *FilterBuilder) Custom(filter string) *FilterBuilder {
	fb.filters = append(fb.filters, filter)
	return fb
}

// Build returns the complete filter string joined with commas
func (fb *FilterBuilder) Build() string {
	if len(fb.filters) == 0 {
		return ""
	}
	return strings.Join(fb.filters, ",")
}
