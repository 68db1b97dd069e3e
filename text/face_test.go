package text

import (
	"math"
	"sync"
	"testing"

	"github.com/gogpu/graphview/surface"
)

func monoFace(t *testing.T, size float64) *Face {
	t.Helper()
	d := Descriptor{Size: size, Weight: WeightNormal, Families: []string{"monospace"}}
	f, err := DefaultLibrary().Face(d)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	return f
}

func TestFaceMetrics(t *testing.T) {
	f := monoFace(t, 14)
	m := f.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("Metrics = %+v, want positive ascent and descent", m)
	}
	if m.Ascent+m.Descent > 2*14 {
		t.Errorf("ascent+descent = %v, unreasonably large for 14px", m.Ascent+m.Descent)
	}
}

func TestFaceMeasureMonospace(t *testing.T) {
	f := monoFace(t, 14)

	w1, h := f.Measure("a")
	if w1 <= 0 {
		t.Fatalf("Measure(a) width = %v", w1)
	}
	if h <= 0 {
		t.Fatalf("Measure(a) height = %v", h)
	}

	w5, h5 := f.Measure("abcde")
	if math.Abs(w5-5*w1) > 0.05 {
		t.Errorf("Measure(abcde) = %v, want ~%v", w5, 5*w1)
	}
	if h5 != h {
		t.Errorf("height changed with text: %v vs %v", h5, h)
	}

	w0, h0 := f.Measure("")
	if w0 != 0 {
		t.Errorf("Measure(\"\") width = %v, want 0", w0)
	}
	if h0 != h {
		t.Errorf("Measure(\"\") height = %v, want %v", h0, h)
	}
}

func TestFaceMeasureScalesWithSize(t *testing.T) {
	w14, _ := monoFace(t, 14).Measure("hello")
	w28, _ := monoFace(t, 28).Measure("hello")
	if math.Abs(w28-2*w14) > 0.5 {
		t.Errorf("28px width %v is not ~2x 14px width %v", w28, w14)
	}
}

func TestShapeRun(t *testing.T) {
	f := monoFace(t, 16)
	run := f.Shape("Hello")
	if len(run.Glyphs) != 5 {
		t.Fatalf("Shape(Hello) = %d glyphs, want 5", len(run.Glyphs))
	}
	var prev float64 = -1
	var sum float64
	for i, g := range run.Glyphs {
		if g.ID == 0 {
			t.Errorf("glyph %d is .notdef", i)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %d Advance = %v", i, g.Advance)
		}
		if g.X <= prev {
			t.Errorf("glyph %d X = %v not after %v", i, g.X, prev)
		}
		prev = g.X
		sum += g.Advance
	}
	if math.Abs(sum-run.Advance) > 1e-9 {
		t.Errorf("Advance = %v, sum of glyph advances = %v", run.Advance, sum)
	}
}

func TestShapeCachesRuns(t *testing.T) {
	f := monoFace(t, 15)
	a := f.Shape("cached")
	b := f.Shape("cached")
	if a != b {
		t.Error("identical shape calls returned different runs")
	}
	// NFC and NFD spellings share a cache entry.
	if f.Shape("\u00e9") != f.Shape("e\u0301") {
		t.Error("NFD text was not normalized before caching")
	}
}

func TestShapeSimpleMatchesAdvance(t *testing.T) {
	f := monoFace(t, 14)
	hb := f.Shape("abc")
	simple := shapeSimple(f.Source(), 14, "abc")
	if len(simple.Glyphs) != 3 {
		t.Fatalf("shapeSimple = %d glyphs, want 3", len(simple.Glyphs))
	}
	if math.Abs(hb.Advance-simple.Advance) > 0.2 {
		t.Errorf("harfbuzz advance %v, cmap advance %v", hb.Advance, simple.Advance)
	}
}

func TestShapeConcurrent(t *testing.T) {
	f := monoFace(t, 13)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if run := f.Shape("node " + string(rune('A'+i))); len(run.Glyphs) != 6 {
					t.Errorf("got %d glyphs", len(run.Glyphs))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestAppendOutline(t *testing.T) {
	f := monoFace(t, 20)
	run := f.Shape("Hi")
	path := surface.NewPath()
	f.AppendOutline(path, run, 10, 30)
	if path.IsEmpty() {
		t.Fatal("outline is empty")
	}

	minX, minY, maxX, maxY := path.Bounds()
	if minX < 10-1 || maxX > 10+run.Advance+1 {
		t.Errorf("x bounds [%v, %v] outside run [10, %v]", minX, maxX, 10+run.Advance)
	}
	// Capital letters sit above the baseline.
	if maxY > 30+0.5 {
		t.Errorf("maxY = %v, want <= baseline 30", maxY)
	}
	if minY > 30-5 {
		t.Errorf("minY = %v, glyphs should rise above the baseline", minY)
	}

	verbs := path.Verbs()
	if verbs[len(verbs)-1] != surface.VerbClose {
		t.Error("last contour not closed")
	}
}

func TestAppendOutlineSpaceOnly(t *testing.T) {
	f := monoFace(t, 14)
	path := surface.NewPath()
	f.AppendOutline(path, f.Shape("   "), 0, 0)
	if !path.IsEmpty() {
		t.Error("spaces produced outline segments")
	}
	f.AppendOutline(path, nil, 0, 0)
	f.AppendOutline(path, &Run{}, 0, 0)
	if !path.IsEmpty() {
		t.Error("empty runs produced outline segments")
	}
}

func TestDefaultFace(t *testing.T) {
	f := DefaultFace()
	if f.Size() != 14 {
		t.Errorf("DefaultFace size = %v, want 14", f.Size())
	}
}
