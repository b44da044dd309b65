package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache hands out Go Regular faces, one per pixel size.
type fontCache struct {
	src   *opentype.Font
	faces map[float64]font.Face
	text  map[float64]*text.GoXFace
}

func newFontCache() (*fontCache, error) {
	src, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fontCache{
		src:   src,
		faces: map[float64]font.Face{},
		text:  map[float64]*text.GoXFace{},
	}, nil
}

func (c *fontCache) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %vpx: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

// textFace wraps the x/image face for ebiten's text renderer.
func (c *fontCache) textFace(size float64) (*text.GoXFace, error) {
	if f, ok := c.text[size]; ok {
		return f, nil
	}
	f, err := c.face(size)
	if err != nil {
		return nil, err
	}
	tf := text.NewGoXFace(f)
	c.text[size] = tf
	return tf, nil
}

func (c *fontCache) measure(s string, size float64) float64 {
	f, err := c.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(f, s)) / 64
}
