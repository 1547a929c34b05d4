package doctex

import "context"

// regionPass converts one region kind across a whole document and returns
// the rewritten text plus the number of regions replaced.
type regionPass func(doc string) (string, int)

// regionPasses lists the conversion passes in their fixed order. Each pass
// rescans the output of the previous one, so order is not commutative: the
// literal pass runs last and its directive comments are never seen by the
// math passes.
var regionPasses = []regionPass{
	convertInline,
	convertDisplay,
	convertEqAligned,
	convertImplAligned,
	convertLiteral,
}

// Service runs the per-document math-conversion pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration. Use options to
// customize behavior (e.g., WithScriptURL).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			scriptURL:    DefaultScriptURL,
			injectScript: true,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Process transforms one document: script injection first, then the five
// region passes in order. Documents with no head element and no recognized
// regions come back unchanged; malformed markup is never an error. The
// only error source is context cancellation.
func (s *Service) Process(ctx context.Context, document string) (Result, error) {
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	out := document
	injected := false
	if s.cfg.injectScript {
		out, injected = injectScript(out, s.cfg.scriptURL)
	}

	regions := 0
	for _, pass := range regionPasses {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		var n int
		out, n = pass(out)
		regions += n
	}

	return Result{
		HTML:     out,
		Changed:  out != document,
		Injected: injected,
		Regions:  regions,
	}, nil
}
