package doctex

// Result holds the outcome of processing one document.
type Result struct {
	// HTML is the fully transformed document text.
	HTML string

	// Changed reports whether HTML differs from the input document.
	Changed bool

	// Injected reports whether a script reference was inserted.
	Injected bool

	// Regions is the number of math regions replaced, across all five
	// region kinds.
	Regions int
}

// serviceConfig holds resolved Service configuration.
type serviceConfig struct {
	scriptURL    string
	injectScript bool
}

// Option customizes a Service.
type Option func(*Service)

// WithScriptURL overrides the MathJax script URL injected into each
// document's header.
func WithScriptURL(url string) Option {
	return func(s *Service) {
		s.cfg.scriptURL = url
	}
}

// WithoutScript disables header script injection. Region conversion still
// runs.
func WithoutScript() Option {
	return func(s *Service) {
		s.cfg.injectScript = false
	}
}
