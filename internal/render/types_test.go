package render

import "testing"

func TestNewJobDefaultsCanvas(t *testing.T) {
	job, err := NewJob("video.mp4", []string{"satu"}, "", 0, 0)
	if err != nil {
		t.Fatalf("NewJob failed: %v", err)
	}

	if job.CanvasWidth != 1080 || job.CanvasHeight != 1920 {
		t.Errorf("expected 1080x1920 default canvas, got %dx%d", job.CanvasWidth, job.CanvasHeight)
	}
	if job.ID == "" {
		t.Error("expected a job id")
	}
}

func TestNewJobRejectsBadInput(t *testing.T) {
	if _, err := NewJob("", []string{"a"}, "", 0, 0); err == nil {
		t.Error("expected error for empty source path")
	}
	if _, err := NewJob("video.mp4", nil, "", -1, 1920); err == nil {
		t.Error("expected error for negative canvas width")
	}
	if _, err := NewJob("video.mp4", nil, "", 1080, 0); err == nil {
		t.Error("expected error for partial canvas size")
	}
}

func TestNormalizeLinesPadsShortScript(t *testing.T) {
	lines := NormalizeLines([]string{"cuma satu"})

	if len(lines) != MinOverlayLines {
		t.Fatalf("expected %d lines, got %d", MinOverlayLines, len(lines))
	}
	if lines[0] != "cuma satu" || lines[1] != "" || lines[2] != "" {
		t.Errorf("unexpected padding: %v", lines)
	}
}

func TestNormalizeLinesTruncatesLongScript(t *testing.T) {
	input := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

	lines := NormalizeLines(input)

	if len(lines) != MaxOverlayLines {
		t.Fatalf("expected %d lines, got %d", MaxOverlayLines, len(lines))
	}
	if lines[MaxOverlayLines-1] != "6" {
		t.Errorf("expected truncation after line 6, got %v", lines)
	}
}

func TestNormalizeLinesKeepsMidRangeCount(t *testing.T) {
	lines := NormalizeLines([]string{"a", "b", "c", "d"})

	if len(lines) != 4 {
		t.Errorf("expected 4 lines unchanged, got %d", len(lines))
	}
}
