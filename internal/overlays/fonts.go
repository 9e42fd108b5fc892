package overlays

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/nezastore/gambarfb/pkg/util"
)

// resolveFace tries the configured font paths in order and returns the first
// face that loads at the requested size. When every candidate fails the
// built-in bitmap face is returned instead, so rasterization itself can
// never fail on font resolution.
func (e *Engine) resolveFace(size float64) font.Face {
	if size < 1 {
		size = 1
	}

	face, attempts, err := util.FirstSuccess(e.candidates, func(path string) (font.Face, error) {
		return loadFace(path, size)
	})
	if err != nil {
		e.logger.Debug().
			Int("candidates", len(attempts)).
			Msg("no usable font file, using built-in bitmap face")
		return basicfont.Face7x13
	}
	return face
}

func loadFace(path string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}

	parsed, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}
