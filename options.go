package graphview

import "github.com/gogpu/graphview/text"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default theme and the embedded Go fonts
//	r := graphview.NewRenderer(s)
//
//	// Dark background, custom fonts
//	r := graphview.NewRenderer(s,
//	    graphview.WithTheme(graphview.DefaultTheme().WithBackgroundColor("#202020")),
//	    graphview.WithFontLibrary(lib),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	theme   Theme
	library *text.Library
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		theme:   DefaultTheme(),
		library: nil, // text.DefaultLibrary() if nil
	}
}

// WithTheme sets the theme for the Renderer.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithFontLibrary sets the font library used to resolve font descriptors.
// Nil selects text.DefaultLibrary().
func WithFontLibrary(lib *text.Library) Option {
	return func(o *options) {
		o.library = lib
	}
}
