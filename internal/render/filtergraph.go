package render

import (
	"fmt"
	"math"

	"github.com/nezastore/gambarfb/internal/config"
	"github.com/nezastore/gambarfb/internal/ffmpeg"
	"github.com/nezastore/gambarfb/internal/layout"
)

// Panel and text proportions relative to the canvas. The caption panel is a
// translucent band whose center sits at the configured canvas fraction; the
// credits line lives in the bottom strip with a small left inset.
const (
	captionBoxWidthFraction = 0.90
	creditsHeightFraction   = 0.06
	creditsInsetFraction    = 0.02
	minCaptionFontSize      = 28
	minCreditsFontSize      = 20
	captionFontFraction     = 0.04
	creditsFontFraction     = 0.025
)

// geometry fixes every pixel position of the composite: the letterboxed
// video placement, the panel band and the two text overlay boxes.
type geometry struct {
	canvasWidth  int
	canvasHeight int

	placement layout.Placement

	panelX, panelY int
	panelWidth     int
	panelHeight    int
	panelColor     string
	panelOpacity   float64

	captionBoxWidth  int
	captionBoxHeight int
	captionX         int
	captionY         int
	captionFontSize  float64

	creditsBoxWidth  int
	creditsBoxHeight int
	creditsX         int
	creditsY         int
	creditsFontSize  float64
}

func newGeometry(job Job, panel config.PanelConfig, placement layout.Placement) geometry {
	w, h := job.CanvasWidth, job.CanvasHeight

	panelHeight := int(panel.HeightFraction * float64(h))
	panelY := int(panel.CenterFraction*float64(h)) - panelHeight/2

	captionBoxWidth := int(captionBoxWidthFraction * float64(w))
	creditsBoxHeight := int(creditsHeightFraction * float64(h))
	creditsInset := int(creditsInsetFraction * float64(w))

	return geometry{
		canvasWidth:  w,
		canvasHeight: h,

		placement: placement,

		panelX:       0,
		panelY:       panelY,
		panelWidth:   w,
		panelHeight:  panelHeight,
		panelColor:   panel.Color,
		panelOpacity: panel.Opacity,

		captionBoxWidth:  captionBoxWidth,
		captionBoxHeight: panelHeight,
		captionX:         (w - captionBoxWidth) / 2,
		captionY:         panelY,
		captionFontSize:  math.Max(minCaptionFontSize, captionFontFraction*float64(h)),

		creditsBoxWidth:  w - 2*creditsInset,
		creditsBoxHeight: creditsBoxHeight,
		creditsX:         creditsInset,
		creditsY:         h - creditsBoxHeight,
		creditsFontSize:  math.Max(minCreditsFontSize, creditsFontFraction*float64(h)),
	}
}

// buildFilterGraph assembles the fixed layer stack as one ffmpeg filter
// graph. Inputs: [0] background video, [1] caption image, [2] credits
// image. Bottom to top: black canvas with the letterboxed video, the
// translucent panel, the caption overlay centered in the panel band, the
// credits overlay near the bottom-left.
func buildFilterGraph(g geometry) string {
	base := ffmpeg.NewFilterBuilder().
		Scale(g.placement.Width, g.placement.Height).
		Pad(g.canvasWidth, g.canvasHeight, g.placement.OffsetX, g.placement.OffsetY, "black").
		DrawBox(g.panelX, g.panelY, g.panelWidth, g.panelHeight, g.panelColor, g.panelOpacity).
		Build()

	return fmt.Sprintf("[0:v]%s[base];[base][1:v]overlay=%d:%d[cap];[cap][2:v]overlay=%d:%d[outv]",
		base, g.captionX, g.captionY, g.creditsX, g.creditsY)
}
