// Package layout computes letterbox placement of a source frame inside a
// fixed target canvas.
package layout

// Placement describes where a scaled source frame sits on the canvas.
type Placement struct {
	Scale   float64
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

// Fit computes a "contain" placement: the source is scaled uniformly so the
// whole frame stays visible inside the canvas, centered, with the remaining
// space left for the canvas background. The limiting dimension fills the
// canvas exactly and the other truncates, so the frame never crops.
// Degenerate dimensions are clamped to one pixel so the math never divides
// by zero.
func Fit(srcWidth, srcHeight, canvasWidth, canvasHeight int) Placement {
	srcWidth = clampMin(srcWidth, 1)
	srcHeight = clampMin(srcHeight, 1)
	canvasWidth = clampMin(canvasWidth, 1)
	canvasHeight = clampMin(canvasHeight, 1)

	scaleW := float64(canvasWidth) / float64(srcWidth)
	scaleH := float64(canvasHeight) / float64(srcHeight)

	scale := scaleW
	placedWidth := canvasWidth
	placedHeight := clampMin(int(float64(srcHeight)*scale), 1)
	if scaleH < scaleW {
		scale = scaleH
		placedWidth = clampMin(int(float64(srcWidth)*scale), 1)
		placedHeight = canvasHeight
	}

	return Placement{
		Scale:   scale,
		Width:   placedWidth,
		Height:  placedHeight,
		OffsetX: (canvasWidth - placedWidth) / 2,
		OffsetY: (canvasHeight - placedHeight) / 2,
	}
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
