package render

import (
	"strings"
	"testing"

	"github.com/nezastore/gambarfb/internal/config"
	"github.com/nezastore/gambarfb/internal/layout"
)

func defaultPanel() config.PanelConfig {
	return config.PanelConfig{
		HeightFraction: 0.32,
		CenterFraction: 0.60,
		Opacity:        0.35,
		Color:          "black",
	}
}

func TestGeometryDefaultCanvas(t *testing.T) {
	job := Job{CanvasWidth: 1080, CanvasHeight: 1920}
	placement := layout.Fit(1280, 720, 1080, 1920)

	g := newGeometry(job, defaultPanel(), placement)

	if g.panelHeight != 614 {
		t.Errorf("expected panel height 614, got %d", g.panelHeight)
	}
	if g.panelY != 845 {
		t.Errorf("expected panel y 845, got %d", g.panelY)
	}
	if g.panelWidth != 1080 || g.panelX != 0 {
		t.Errorf("expected full-width panel, got x=%d w=%d", g.panelX, g.panelWidth)
	}
	if g.captionY != g.panelY {
		t.Errorf("caption band should start at the panel, got %d vs %d", g.captionY, g.panelY)
	}
	if g.captionFontSize != 76.8 {
		t.Errorf("expected caption font size 76.8, got %f", g.captionFontSize)
	}
	if g.creditsFontSize != 48 {
		t.Errorf("expected credits font size 48, got %f", g.creditsFontSize)
	}
	if g.creditsX != 21 {
		t.Errorf("expected credits inset 21, got %d", g.creditsX)
	}
	if g.creditsY != 1920-g.creditsBoxHeight {
		t.Errorf("credits box should sit at the bottom, got y=%d h=%d", g.creditsY, g.creditsBoxHeight)
	}
}

func TestGeometryFontSizeFloors(t *testing.T) {
	job := Job{CanvasWidth: 360, CanvasHeight: 640}
	g := newGeometry(job, defaultPanel(), layout.Fit(640, 360, 360, 640))

	if g.captionFontSize != 28 {
		t.Errorf("expected caption font floor 28, got %f", g.captionFontSize)
	}
	if g.creditsFontSize != 20 {
		t.Errorf("expected credits font floor 20, got %f", g.creditsFontSize)
	}
}

func TestBuildFilterGraph(t *testing.T) {
	job := Job{CanvasWidth: 1080, CanvasHeight: 1920}
	g := newGeometry(job, defaultPanel(), layout.Fit(1280, 720, 1080, 1920))

	graph := buildFilterGraph(g)

	expected := "[0:v]scale=1080:607,pad=1080:1920:0:656:black," +
		"drawbox=x=0:y=845:w=1080:h=614:color=black@0.35:t=fill[base];" +
		"[base][1:v]overlay=54:845[cap];[cap][2:v]overlay=21:1805[outv]"
	if graph != expected {
		t.Errorf("unexpected filter graph:\n got %q\nwant %q", graph, expected)
	}
}

func TestBuildFilterGraphLayerOrder(t *testing.T) {
	job := Job{CanvasWidth: 1080, CanvasHeight: 1920}
	g := newGeometry(job, defaultPanel(), layout.Fit(1080, 1920, 1080, 1920))

	graph := buildFilterGraph(g)

	scaleIdx := strings.Index(graph, "scale=")
	padIdx := strings.Index(graph, "pad=")
	boxIdx := strings.Index(graph, "drawbox=")
	capIdx := strings.Index(graph, "[1:v]overlay")
	credIdx := strings.Index(graph, "[2:v]overlay")

	if !(scaleIdx < padIdx && padIdx < boxIdx && boxIdx < capIdx && capIdx < credIdx) {
		t.Errorf("layers out of order in %q", graph)
	}
}
