package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{90 * time.Second, "00:01:30.000"},
		{time.Hour + 2*time.Minute + 3*time.Second + 500*time.Millisecond, "01:02:03.500"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFrameRate(t *testing.T) {
	if got := ParseFrameRate("30/1"); got != 30 {
		t.Errorf("expected 30, got %f", got)
	}
	if got := ParseFrameRate("30000/1001"); got < 29.9 || got > 30.0 {
		t.Errorf("expected NTSC rate near 29.97, got %f", got)
	}
	if got := ParseFrameRate("0/0"); got != 0 {
		t.Errorf("expected 0 for zero denominator, got %f", got)
	}
	if got := ParseFrameRate("garbage"); got != 0 {
		t.Errorf("expected 0 for garbage, got %f", got)
	}
}

func TestRoundFPS(t *testing.T) {
	if got := RoundFPS(29.97); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if got := RoundFPS(23.4); got != 23 {
		t.Errorf("expected 23, got %d", got)
	}
	if got := RoundFPS(0); got != 30 {
		t.Errorf("expected default 30 for unknown rate, got %d", got)
	}
}

func TestNonEmptyFile(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing")
	if NonEmptyFile(missing) {
		t.Error("missing file reported as non-empty")
	}

	empty := filepath.Join(dir, "empty")
	os.WriteFile(empty, nil, 0644)
	if NonEmptyFile(empty) {
		t.Error("empty file reported as non-empty")
	}

	full := filepath.Join(dir, "full")
	os.WriteFile(full, []byte("x"), 0644)
	if !NonEmptyFile(full) {
		t.Error("non-empty file reported as empty")
	}
}

func TestFirstSuccessStopsAtFirstWin(t *testing.T) {
	tried := []string{}
	result, attempts, err := FirstSuccess([]string{"a", "b", "c"}, func(s string) (string, error) {
		tried = append(tried, s)
		if s == "b" {
			return "won-" + s, nil
		}
		return "", errors.New("nope")
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if result != "won-b" {
		t.Errorf("expected won-b, got %q", result)
	}
	if len(tried) != 2 {
		t.Errorf("expected chain to stop after b, tried %v", tried)
	}
	if len(attempts) != 2 || attempts[0].Err == nil || attempts[1].Err != nil {
		t.Errorf("unexpected attempts: %+v", attempts)
	}
}

func TestFirstSuccessCollectsAllFailures(t *testing.T) {
	_, attempts, err := FirstSuccess([]string{"x", "y"}, func(s string) (int, error) {
		return 0, errors.New(s + " failed")
	})

	if err == nil {
		t.Fatal("expected error when everything fails")
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	for _, a := range attempts {
		if a.Err == nil {
			t.Errorf("attempt %s missing error", a.Candidate)
		}
	}
}

func TestFirstSuccessEmptyCandidates(t *testing.T) {
	_, _, err := FirstSuccess(nil, func(string) (int, error) { return 0, nil })
	if err == nil {
		t.Error("expected error for empty candidate list")
	}
}
