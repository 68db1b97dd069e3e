package text

import "sync"

// Metrics holds font metrics in pixels. Ascent and Descent are both positive.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Face is a FontSource at a specific size. Faces are cheap and safe for
// concurrent use.
type Face struct {
	src  *FontSource
	size float64

	metricsOnce sync.Once
	metrics     Metrics
}

// NewFace returns src at size pixels per em.
func NewFace(src *FontSource, size float64) *Face {
	return &Face{src: src, size: size}
}

// Source returns the font source.
func (f *Face) Source() *FontSource {
	return f.src
}

// Size returns the size in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the unhinted metrics of the face.
func (f *Face) Metrics() Metrics {
	f.metricsOnce.Do(func() {
		m, err := f.src.metrics(f.size)
		if err != nil {
			// Canvas-like fallback proportions.
			f.metrics = Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2, Height: f.size * 1.2}
			return
		}
		f.metrics = Metrics{
			Ascent:  fromFixed(m.Ascent),
			Descent: fromFixed(m.Descent),
			Height:  fromFixed(m.Height),
		}
	})
	return f.metrics
}

// Shape shapes s into a single left-to-right run.
func (f *Face) Shape(s string) *Run {
	return defaultShaper().shape(f.src, f.size, s)
}

// Measure returns the advance width of s and the font's ascent plus descent.
// The empty string measures zero width with the face's line box height.
func (f *Face) Measure(s string) (width, height float64) {
	m := f.Metrics()
	height = m.Ascent + m.Descent
	if s == "" {
		return 0, height
	}
	return f.Shape(s).Advance, height
}
