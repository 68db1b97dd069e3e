package text

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Style is the font slant.
type Style uint8

const (
	// StyleNormal is upright text.
	StyleNormal Style = iota
	// StyleItalic covers both "italic" and "oblique".
	StyleItalic
)

// Weight is the CSS font weight (100..900).
type Weight uint16

const (
	WeightLight  Weight = 300
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// IsBold reports whether the weight selects a bold face.
func (w Weight) IsBold() bool {
	return w >= 600
}

// Descriptor is a parsed font descriptor.
type Descriptor struct {
	Style  Style
	Weight Weight
	// Size is the font size in pixels.
	Size float64
	// Families lists family names in preference order, lower-cased and unquoted.
	Families []string
}

// ParseDescriptor parses the CSS font shorthand subset used by the HTML
// canvas: optional style and weight keywords, a size in px or pt (with an
// optional "/line-height" that is ignored), then a comma-separated family list.
//
//	ParseDescriptor("14px monospace")
//	ParseDescriptor("italic bold 12pt 'DejaVu Sans', sans-serif")
func ParseDescriptor(s string) (Descriptor, error) {
	d := Descriptor{Style: StyleNormal, Weight: WeightNormal}

	rest := strings.TrimSpace(s)
	for rest != "" {
		tok, tail, _ := strings.Cut(rest, " ")
		tail = strings.TrimSpace(tail)

		if size, ok := parseSize(tok); ok {
			d.Size = size
			d.Families = parseFamilies(tail)
			if len(d.Families) == 0 {
				return Descriptor{}, fmt.Errorf("%w: %q: missing family", ErrInvalidDescriptor, s)
			}
			return d, nil
		}

		switch kw := strings.ToLower(tok); kw {
		case "normal", "small-caps":
		case "italic", "oblique":
			d.Style = StyleItalic
		case "bold", "bolder":
			d.Weight = WeightBold
		case "lighter":
			d.Weight = WeightLight
		default:
			n, err := strconv.Atoi(kw)
			if err != nil || n < 1 || n > 1000 {
				return Descriptor{}, fmt.Errorf("%w: %q: unexpected %q", ErrInvalidDescriptor, s, tok)
			}
			d.Weight = Weight(n)
		}
		rest = tail
	}

	return Descriptor{}, fmt.Errorf("%w: %q: missing size", ErrInvalidDescriptor, s)
}

// parseSize accepts "14px", "10.5pt", "14px/1.2".
func parseSize(tok string) (float64, bool) {
	tok, _, _ = strings.Cut(strings.ToLower(tok), "/")

	scale := 1.0
	switch {
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		tok = strings.TrimSuffix(tok, "pt")
		scale = 96.0 / 72.0
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, false
	}
	return v * scale, true
}

func parseFamilies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		name = strings.Join(strings.Fields(strings.ToLower(name)), " ")
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// String formats the descriptor back into shorthand form.
func (d Descriptor) String() string {
	var b strings.Builder
	if d.Style == StyleItalic {
		b.WriteString("italic ")
	}
	if d.Weight != WeightNormal && d.Weight != 0 {
		if d.Weight == WeightBold {
			b.WriteString("bold ")
		} else {
			fmt.Fprintf(&b, "%d ", d.Weight)
		}
	}
	b.WriteString(strconv.FormatFloat(d.Size, 'f', -1, 64))
	b.WriteString("px ")
	for i, f := range d.Families {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.Contains(f, " ") {
			b.WriteString(`"` + f + `"`)
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}
