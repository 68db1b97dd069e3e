package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/graphview/internal/logging"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Glyph is one positioned glyph of a shaped run.
// X and Y are relative to the run origin on the baseline, y pointing down.
type Glyph struct {
	ID      GlyphID
	X, Y    float64
	Advance float64
}

// Run is a shaped line of text. Runs returned by Face.Shape may be shared
// through the run cache and must not be modified.
type Run struct {
	Glyphs  []Glyph
	Advance float64
}

// runCacheSize bounds the number of shaped runs kept per shaper.
const runCacheSize = 1024

type runKey struct {
	src  *FontSource
	size float64
	text string
}

// shaper shapes text with HarfBuzz via go-text/typesetting.
//
// Parsed go-text fonts are cached per FontSource; font.Font is read-only
// and safe to share, font.Face and HarfbuzzShaper are not, so each call
// builds a face and borrows a shaper from the pool.
type shaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*FontSource]*font.Font

	runs *lru.Cache[runKey, *Run]
}

func newShaper() *shaper {
	runs, err := lru.New[runKey, *Run](runCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[*FontSource]*font.Font),
		runs:  runs,
	}
}

var defaultShaper = sync.OnceValue(newShaper)

// shape returns the shaped run for s at size, using the run cache.
func (sh *shaper) shape(src *FontSource, size float64, s string) *Run {
	if s == "" {
		return &Run{}
	}
	s = norm.NFC.String(s)

	key := runKey{src: src, size: size, text: s}
	if run, ok := sh.runs.Get(key); ok {
		return run
	}

	run, err := sh.shapeHarfbuzz(src, size, s)
	if err != nil {
		logging.Logger().Debug("text: harfbuzz unavailable, using cmap shaping",
			"font", src.Name(), "error", err)
		run = shapeSimple(src, size, s)
	}
	sh.runs.Add(key, run)
	return run
}

func (sh *shaper) shapeHarfbuzz(src *FontSource, size float64, s string) (*Run, error) {
	f, err := sh.font(src)
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	sh.pool.Put(hb)

	run := &Run{Glyphs: make([]Glyph, len(out.Glyphs))}
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		run.Glyphs[i] = Glyph{
			ID: GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			X:  x + fromFixed(g.XOffset),
			// go-text offsets are y-up.
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run, nil
}

// font returns the cached go-text font for src.
func (sh *shaper) font(src *FontSource) (*font.Font, error) {
	sh.mu.RLock()
	f, ok := sh.fonts[src]
	sh.mu.RUnlock()
	if ok {
		return f, nil
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if f, ok := sh.fonts[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	sh.fonts[src] = face.Font
	return face.Font, nil
}

// shapeSimple maps runes through the cmap and places glyphs by advance.
func shapeSimple(src *FontSource, size float64, s string) *Run {
	run := &Run{Glyphs: make([]Glyph, 0, len(s))}
	var x float64
	for _, r := range s {
		gid := src.glyphIndex(r)
		adv := src.glyphAdvance(gid, size)
		run.Glyphs = append(run.Glyphs, Glyph{ID: GlyphID(gid), X: x, Advance: adv})
		x += adv
	}
	run.Advance = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
