// Package captions formats the caption-variants text block shared with
// delivery collaborators. The layout is a fixed boundary contract:
//
//	[<index>] <title>
//	<hashtag1> <hashtag2> ...
//
// repeated per variant, with an optional trailing credits line.
package captions

import (
	"fmt"
	"os"
	"strings"
)

// Variant is one rewritten title with its hashtag set.
type Variant struct {
	Title    string   `yaml:"title"`
	Hashtags []string `yaml:"hashtags"`
}

// Format renders the variants block. Indexes are 1-based.
func Format(variants []Variant, credits string) string {
	var b strings.Builder

	for i, v := range variants {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, v.Title)
		b.WriteString(strings.Join(v.Hashtags, " "))
		b.WriteString("\n\n")
	}

	if credits != "" {
		b.WriteString(credits)
		b.WriteString("\n")
	}

	return b.String()
}

// WriteFile renders the variants block to a file for delivery.
func WriteFile(path string, variants []Variant, credits string) error {
	return os.WriteFile(path, []byte(Format(variants, credits)), 0644)
}
