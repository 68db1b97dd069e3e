package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// One FontSource serves Faces at any size and should be shared.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	font *sfnt.Font
	name string

	// sfnt.Buffer is not safe for concurrent use; each call borrows one.
	buffers sync.Pool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		font: f,
		buffers: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
	buf := s.buffer()
	defer s.release(buf)
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

func (s *FontSource) buffer() *sfnt.Buffer {
	return s.buffers.Get().(*sfnt.Buffer)
}

func (s *FontSource) release(b *sfnt.Buffer) {
	s.buffers.Put(b)
}

// metrics returns the unhinted font metrics at size pixels per em.
func (s *FontSource) metrics(size float64) (font.Metrics, error) {
	buf := s.buffer()
	defer s.release(buf)
	return s.font.Metrics(buf, toFixed(size), font.HintingNone)
}

// glyphIndex maps a rune to a glyph ID, 0 when the font lacks it.
func (s *FontSource) glyphIndex(r rune) sfnt.GlyphIndex {
	buf := s.buffer()
	defer s.release(buf)
	gid, err := s.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return gid
}

// glyphAdvance returns the advance width of gid at size pixels per em.
func (s *FontSource) glyphAdvance(gid sfnt.GlyphIndex, size float64) float64 {
	buf := s.buffer()
	defer s.release(buf)
	adv, err := s.font.GlyphAdvance(buf, gid, toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
