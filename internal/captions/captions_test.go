package captions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatLayout(t *testing.T) {
	variants := []Variant{
		{Title: "Judul Pertama", Hashtags: []string{"#viral", "#berita"}},
		{Title: "Judul Kedua", Hashtags: []string{"#info"}},
	}

	got := Format(variants, "sumber: wikipedia")

	want := "[1] Judul Pertama\n#viral #berita\n\n" +
		"[2] Judul Kedua\n#info\n\n" +
		"sumber: wikipedia\n"
	if got != want {
		t.Errorf("unexpected layout:\n got %q\nwant %q", got, want)
	}
}

func TestFormatOmitsEmptyCredits(t *testing.T) {
	got := Format([]Variant{{Title: "Satu", Hashtags: []string{"#a"}}}, "")

	want := "[1] Satu\n#a\n\n"
	if got != want {
		t.Errorf("unexpected layout:\n got %q\nwant %q", got, want)
	}
}

func TestFormatEmptyVariants(t *testing.T) {
	if got := Format(nil, ""); got != "" {
		t.Errorf("expected empty block, got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captions.txt")

	err := WriteFile(path, []Variant{{Title: "Satu", Hashtags: []string{"#a", "#b"}}}, "kredit")
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "[1] Satu\n#a #b\n\nkredit\n" {
		t.Errorf("unexpected file contents %q", string(data))
	}
}
