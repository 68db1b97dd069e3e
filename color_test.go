package graphview

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		want  color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"SteelBlue", color.NRGBA{70, 130, 180, 255}},
		{"  red ", color.NRGBA{255, 0, 0, 255}},
		{"transparent", color.NRGBA{0, 0, 0, 0}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 136}},
		{"#3366ff", color.NRGBA{0x33, 0x66, 0xff, 255}},
		{"#3366ff80", color.NRGBA{0x33, 0x66, 0xff, 0x80}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgba(255,255,255,0.5)", color.NRGBA{255, 255, 255, 128}},
		{"RGB(300, -5, 0)", color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c, err := ParseColor(tt.token)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.token, err)
			}
			if got := c.Color(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, token := range []string{
		"",
		"notacolor",
		"#12",
		"#12345",
		"#ggg",
		"rgb(1, 2)",
		"rgba(1, 2, 3)",
		"rgb(a, b, c)",
		"rgb(1, 2, 3",
		"rgbx(1, 2, 3)",
	} {
		t.Run(token, func(t *testing.T) {
			if _, err := ParseColor(token); !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", token, err)
			}
		})
	}
}

func TestRGBAColorRoundTrip(t *testing.T) {
	in := color.NRGBA{12, 200, 99, 255}
	if got := FromColor(in).Color(); got != in {
		t.Errorf("round trip = %v, want %v", got, in)
	}
	// Premultiplied inputs are unpremultiplied.
	half := FromColor(color.RGBA{128, 0, 0, 128})
	if math.Abs(half.R-1) > 0.01 || math.Abs(half.A-128.0/255) > 1e-9 {
		t.Errorf("FromColor(premultiplied) = %+v", half)
	}
}
