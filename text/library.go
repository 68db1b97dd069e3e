package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/graphview/internal/logging"
)

// Variant selects one of the four style/weight combinations of a family.
type Variant uint8

const (
	VariantRegular Variant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
)

// variantOf returns the variant a descriptor asks for.
func variantOf(d Descriptor) Variant {
	switch {
	case d.Weight.IsBold() && d.Style == StyleItalic:
		return VariantBoldItalic
	case d.Weight.IsBold():
		return VariantBold
	case d.Style == StyleItalic:
		return VariantItalic
	default:
		return VariantRegular
	}
}

// fallbacks lists the variants to try for v, best first.
func (v Variant) fallbacks() []Variant {
	switch v {
	case VariantBoldItalic:
		return []Variant{VariantBoldItalic, VariantBold, VariantItalic, VariantRegular}
	case VariantBold, VariantItalic:
		return []Variant{v, VariantRegular}
	default:
		return []Variant{VariantRegular}
	}
}

// Library maps family names to font sources and resolves descriptors to
// faces. A Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	families map[string]*[4]*FontSource
	aliases  map[string]string
	fallback string
}

// NewLibrary creates an empty library. fallback names the family used when
// none of a descriptor's families is known; "" disables the fallback.
func NewLibrary(fallback string) *Library {
	return &Library{
		families: make(map[string]*[4]*FontSource),
		aliases:  make(map[string]string),
		fallback: strings.ToLower(fallback),
	}
}

// Register adds src as the given variant of family.
func (l *Library) Register(family string, v Variant, src *FontSource) {
	family = strings.ToLower(family)
	l.mu.Lock()
	defer l.mu.Unlock()
	fam, ok := l.families[family]
	if !ok {
		fam = new([4]*FontSource)
		l.families[family] = fam
	}
	fam[v] = src
}

// Alias makes name resolve to family.
func (l *Library) Alias(name, family string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.aliases[strings.ToLower(name)] = strings.ToLower(family)
}

// Families returns the registered family names.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.families))
	for name := range l.families {
		out = append(out, name)
	}
	return out
}

// Face resolves d to a face. Families are tried in order, then the library
// fallback. A missing variant falls back to a plainer one of the same family.
func (l *Library) Face(d Descriptor) (*Face, error) {
	if !(d.Size > 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidDescriptor, d.Size)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	v := variantOf(d)
	for _, name := range d.Families {
		if src := l.lookup(name, v); src != nil {
			return NewFace(src, d.Size), nil
		}
	}
	if l.fallback != "" {
		if src := l.lookup(l.fallback, v); src != nil {
			logging.Logger().Debug("text: family fallback",
				"families", d.Families, "fallback", l.fallback)
			return NewFace(src, d.Size), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, strings.Join(d.Families, ", "))
}

// FaceFor parses a descriptor string and resolves it.
func (l *Library) FaceFor(descriptor string) (*Face, error) {
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		return nil, err
	}
	return l.Face(d)
}

// lookup must be called with l.mu held.
func (l *Library) lookup(name string, v Variant) *FontSource {
	if alias, ok := l.aliases[name]; ok {
		name = alias
	}
	fam, ok := l.families[name]
	if !ok {
		return nil
	}
	for _, fv := range v.fallbacks() {
		if fam[fv] != nil {
			return fam[fv]
		}
	}
	return nil
}

// DefaultLibrary returns the shared library holding the embedded Go fonts.
//
// The "go mono" family answers to monospace, consolas, courier,
// "courier new", menlo and monaco. The "go" family answers to sans-serif,
// serif, arial and helvetica, and is the fallback for unknown names.
var DefaultLibrary = sync.OnceValue(func() *Library {
	l := NewLibrary("go")

	embedded := []struct {
		family string
		v      Variant
		data   []byte
	}{
		{"go mono", VariantRegular, gomono.TTF},
		{"go mono", VariantBold, gomonobold.TTF},
		{"go mono", VariantItalic, gomonoitalic.TTF},
		{"go mono", VariantBoldItalic, gomonobolditalic.TTF},
		{"go", VariantRegular, goregular.TTF},
		{"go", VariantBold, gobold.TTF},
		{"go", VariantItalic, goitalic.TTF},
		{"go", VariantBoldItalic, gobolditalic.TTF},
	}
	for _, e := range embedded {
		src, err := NewFontSource(e.data)
		if err != nil {
			// The embedded fonts are known-good.
			panic(err)
		}
		l.Register(e.family, e.v, src)
	}

	for _, name := range []string{"monospace", "consolas", "courier", "courier new", "menlo", "monaco", "gomono"} {
		l.Alias(name, "go mono")
	}
	for _, name := range []string{"sans-serif", "serif", "arial", "helvetica", "system-ui", "goregular"} {
		l.Alias(name, "go")
	}
	return l
})

// DefaultFace returns the 14px monospace face used for measuring text.
func DefaultFace() *Face {
	f, err := DefaultLibrary().FaceFor("14px monospace")
	if err != nil {
		panic(err)
	}
	return f
}
