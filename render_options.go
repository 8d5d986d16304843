package rtfconv

// RenderOption configures conversion and rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	theme    Theme
	softWrap bool
	strict   bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.theme == nil {
		cfg.theme = DefaultTheme()
	}
	return cfg
}

// WithTheme sets the theme used by the ANSI target.
func WithTheme(theme Theme) RenderOption {
	return func(cfg *renderConfig) {
		cfg.theme = theme
	}
}

// WithSoftWrap enables hard breaks inside words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithStrict makes unparsed residue an error. The converted output is still
// produced.
func WithStrict(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.strict = enabled
	}
}
