package graphview

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for tokens it does not recognize.
var ErrInvalidColor = errors.New("graphview: invalid color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]; components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// ParseColor resolves a CSS color token:
//
//   - named colors ("black", "SteelBlue") and "transparent"
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" with channels in 0..255
//     (or percentages) and alpha in 0..1
//
// Tokens are case-insensitive and surrounding space is ignored.
func ParseColor(token string) (RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case s == "":
		return RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	case s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		c, err := parseHexColor(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		return c, nil
	case strings.HasPrefix(s, "rgb"):
		c, err := parseFuncColor(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, token, err)
		}
		return c, nil
	}

	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// parseHexColor handles the four CSS hex forms. go-colorful covers the
// opaque ones; the alpha digits are split off first.
func parseHexColor(s string) (RGBA, error) {
	alpha := 1.0
	switch len(s) {
	case 5:
		a, err := strconv.ParseUint(s[4:], 16, 8)
		if err != nil {
			return RGBA{}, err
		}
		alpha = float64(a*17) / 255
		s = s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, err
		}
		alpha = float64(a) / 255
		s = s[:7]
	case 4, 7:
	default:
		return RGBA{}, fmt.Errorf("bad hex length %d", len(s)-1)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// parseFuncColor handles rgb(...) and rgba(...).
func parseFuncColor(s string) (RGBA, error) {
	name, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return RGBA{}, errors.New("malformed function")
	}
	name = strings.TrimSpace(name)
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return RGBA{}, fmt.Errorf("unknown function %q", name)
	}
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("%s takes %d arguments, got %d", name, want, len(parts))
	}

	var ch [3]float64
	for i := range ch {
		v, err := parseChannel(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGBA{}, err
		}
		ch[i] = v
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, err
		}
		alpha = clampUnit(a)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

// parseChannel parses "0..255" or "0%..100%" into [0, 1].
func parseChannel(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return clampUnit(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clampUnit(v / 255), nil
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	return min(max(x, 0), 255)
}
