package graphview

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/gogpu/graphview/text"
)

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme = errors.New("graphview: invalid theme")

// Theme holds the fixed styling the Renderer applies on top of the
// per-call parameters.
//
// A theme file is HCL with any subset of the attributes below; missing
// attributes keep their DefaultTheme values. Colors may be written with the
// rgb() and rgba() functions:
//
//	background_color = "white"
//	border_color     = rgb(40, 40, 40)
//	text_font        = "13px monospace"
//	label_bias       = 5
type Theme struct {
	// BorderColor outlines nodes and replaces unknown color tokens.
	BorderColor string `hcl:"border_color,optional"`
	// BackgroundColor is painted by Clear.
	BackgroundColor string `hcl:"background_color,optional"`
	// TextColor fills node labels and DrawText output.
	TextColor string `hcl:"text_color,optional"`
	// TextFont is the descriptor used by MeasureText and DrawText.
	TextFont string `hcl:"text_font,optional"`
	// LabelBias moves node label baselines below the node center.
	LabelBias float64 `hcl:"label_bias,optional"`
	// MarginDepth is the depth of the margin brackets.
	MarginDepth float64 `hcl:"margin_depth,optional"`
	// MarginLineWidth is the stroke width of the margin brackets.
	MarginLineWidth float64 `hcl:"margin_line_width,optional"`
	// MiterLimit applies to every stroke.
	MiterLimit float64 `hcl:"miter_limit,optional"`
}

// DefaultTheme returns black outlines and text on white, a 14px monospace
// text font, a label bias of 4 and 4px margin brackets drawn 1px wide.
func DefaultTheme() Theme {
	return Theme{
		BorderColor:     "black",
		BackgroundColor: "white",
		TextColor:       "black",
		TextFont:        "14px monospace",
		LabelBias:       4,
		MarginDepth:     4,
		MarginLineWidth: 1,
		MiterLimit:      10,
	}
}

// WithBorderColor returns a copy with the specified border color.
func (t Theme) WithBorderColor(c string) Theme {
	t.BorderColor = c
	return t
}

// WithBackgroundColor returns a copy with the specified background color.
func (t Theme) WithBackgroundColor(c string) Theme {
	t.BackgroundColor = c
	return t
}

// WithTextColor returns a copy with the specified text color.
func (t Theme) WithTextColor(c string) Theme {
	t.TextColor = c
	return t
}

// WithTextFont returns a copy with the specified text font descriptor.
func (t Theme) WithTextFont(font string) Theme {
	t.TextFont = font
	return t
}

// WithLabelBias returns a copy with the specified label bias.
func (t Theme) WithLabelBias(bias float64) Theme {
	t.LabelBias = bias
	return t
}

// WithMargin returns a copy with the specified bracket depth and line width.
func (t Theme) WithMargin(depth, lineWidth float64) Theme {
	t.MarginDepth = depth
	t.MarginLineWidth = lineWidth
	return t
}

// Validate checks that every color and font in the theme parses and that
// the numeric values are usable.
func (t Theme) Validate() error {
	colors := []struct{ name, value string }{
		{"border_color", t.BorderColor},
		{"background_color", t.BackgroundColor},
		{"text_color", t.TextColor},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTheme, c.name, err)
		}
	}
	if _, err := text.ParseDescriptor(t.TextFont); err != nil {
		return fmt.Errorf("%w: text_font: %w", ErrInvalidTheme, err)
	}

	numbers := []struct {
		name  string
		value float64
		min   float64
	}{
		{"label_bias", t.LabelBias, math.Inf(-1)},
		{"margin_depth", t.MarginDepth, 0},
		{"margin_line_width", t.MarginLineWidth, 0},
		{"miter_limit", t.MiterLimit, 1},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) || n.value < n.min {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTheme, n.name, n.value)
		}
	}
	return nil
}

// LoadTheme reads and decodes an HCL theme file.
func LoadTheme(path string) (Theme, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	return ParseTheme(src, path)
}

// ParseTheme decodes an HCL theme over DefaultTheme and validates it.
// filename is used in diagnostics only.
func ParseTheme(src []byte, filename string) (Theme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Theme{}, fmt.Errorf("failed to parse theme file %s: %w", filename, diags)
	}

	theme := DefaultTheme()
	diags = gohcl.DecodeBody(file.Body, themeEvalContext(), &theme)
	if diags.HasErrors() {
		return Theme{}, fmt.Errorf("failed to decode theme file %s: %w", filename, diags)
	}

	if err := theme.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", filename, err)
	}
	Logger().Debug("graphview: theme loaded", "file", filename)
	return theme, nil
}

func themeEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"rgb":  rgbFunc,
			"rgba": rgbaFunc,
		},
	}
}

var channelParams = []function.Parameter{
	{Name: "r", Type: cty.Number},
	{Name: "g", Type: cty.Number},
	{Name: "b", Type: cty.Number},
}

// rgbFunc formats rgb(r, g, b) into a color token.
var rgbFunc = function.New(&function.Spec{
	Params: channelParams,
	Type:   function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		ch, err := channelArgs(args)
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(fmt.Sprintf("rgb(%g, %g, %g)", ch[0], ch[1], ch[2])), nil
	},
})

// rgbaFunc formats rgba(r, g, b, a) into a color token.
var rgbaFunc = function.New(&function.Spec{
	Params: append(channelParams[:3:3], function.Parameter{Name: "a", Type: cty.Number}),
	Type:   function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		ch, err := channelArgs(args[:3])
		if err != nil {
			return cty.NilVal, err
		}
		var a float64
		if err := gocty.FromCtyValue(args[3], &a); err != nil {
			return cty.NilVal, function.NewArgError(3, err)
		}
		if a < 0 || a > 1 {
			return cty.NilVal, function.NewArgErrorf(3, "alpha must be between 0 and 1, got %g", a)
		}
		return cty.StringVal(fmt.Sprintf("rgba(%g, %g, %g, %g)", ch[0], ch[1], ch[2], a)), nil
	},
})

func channelArgs(args []cty.Value) ([3]float64, error) {
	var ch [3]float64
	for i, arg := range args {
		if err := gocty.FromCtyValue(arg, &ch[i]); err != nil {
			return ch, function.NewArgError(i, err)
		}
		if ch[i] < 0 || ch[i] > 255 {
			return ch, function.NewArgErrorf(i, "channel must be between 0 and 255, got %g", ch[i])
		}
	}
	return ch, nil
}
