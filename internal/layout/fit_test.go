package layout

import "testing"

func TestFitLandscapeIntoPortrait(t *testing.T) {
	p := Fit(1280, 720, 1080, 1920)

	if p.Scale != 0.84375 {
		t.Errorf("expected scale 0.84375, got %f", p.Scale)
	}
	if p.Width != 1080 || p.Height != 607 {
		t.Errorf("expected placed size 1080x607, got %dx%d", p.Width, p.Height)
	}
	if p.OffsetX != 0 {
		t.Errorf("expected offsetX 0, got %d", p.OffsetX)
	}
	if p.OffsetY != 656 {
		t.Errorf("expected offsetY 656, got %d", p.OffsetY)
	}
}

func TestFitTruncatesFractionalDimension(t *testing.T) {
	// 720 * 0.84375 = 607.5; the free dimension truncates rather than
	// rounding up, so the half pixel goes to the letterbox bars.
	if p := Fit(1280, 720, 1080, 1920); p.Height != 607 {
		t.Errorf("expected truncated height 607, got %d", p.Height)
	}

	// The limiting dimension always fills the canvas exactly, even when
	// the scale ratio is not representable.
	if p := Fit(1079, 1921, 1080, 1920); p.Height != 1920 {
		t.Errorf("expected height to fill canvas, got %d", p.Height)
	}
}

func TestFitMatchingAspectHasNoOffsets(t *testing.T) {
	p := Fit(540, 960, 1080, 1920)

	if p.Width != 1080 || p.Height != 1920 {
		t.Errorf("expected placed size 1080x1920, got %dx%d", p.Width, p.Height)
	}
	if p.OffsetX != 0 || p.OffsetY != 0 {
		t.Errorf("expected zero offsets, got %d,%d", p.OffsetX, p.OffsetY)
	}
}

func TestFitNeverCrops(t *testing.T) {
	sizes := []struct {
		srcW, srcH int
	}{
		{1920, 1080},
		{1080, 1920},
		{640, 480},
		{480, 640},
		{3840, 2160},
		{100, 2000},
		{2000, 100},
		{1, 1},
		{1079, 1921},
	}

	for _, s := range sizes {
		p := Fit(s.srcW, s.srcH, 1080, 1920)

		if p.Width > 1080 || p.Height > 1920 {
			t.Errorf("source %dx%d: placed %dx%d exceeds canvas", s.srcW, s.srcH, p.Width, p.Height)
		}
		if p.Width != 1080 && p.Height != 1920 {
			t.Errorf("source %dx%d: neither dimension fills the canvas (%dx%d)", s.srcW, s.srcH, p.Width, p.Height)
		}
		if p.OffsetX < 0 || p.OffsetY < 0 {
			t.Errorf("source %dx%d: negative offsets %d,%d", s.srcW, s.srcH, p.OffsetX, p.OffsetY)
		}
		if p.OffsetX+p.Width > 1080 || p.OffsetY+p.Height > 1920 {
			t.Errorf("source %dx%d: placement extends past canvas", s.srcW, s.srcH)
		}
	}
}

func TestFitClampsDegenerateInput(t *testing.T) {
	p := Fit(0, -5, 1080, 1920)

	if p.Width <= 0 || p.Height <= 0 {
		t.Errorf("expected positive placement for degenerate source, got %dx%d", p.Width, p.Height)
	}
}
