package doctex

import (
	"context"
	"strings"
	"testing"
)

const sampleDoc = `<html>
<head><title>VectorNorms</title></head>
<body>
<p>Computes the <span class="latex-inline">&ell;<sup>p</sup></span> norm of
a vector <span class="latex-inline"><b>v</b> &isin; ℝ</span>.</p>
<span class="latex-eq-aligned">a = b
c = d</span>
<span class="latex-replaceable">G<b>v</b></span> <!-- LATEX: {@literal \( G\mathbf{v} \)} -->
</body>
</html>`

func TestServiceProcess(t *testing.T) {
	svc := New()
	result, err := svc.Process(context.Background(), sampleDoc)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if !result.Changed {
		t.Error("expected document to change")
	}
	if !result.Injected {
		t.Error("expected script injection")
	}
	if result.Regions != 4 {
		t.Errorf("Regions = %d, want 4", result.Regions)
	}

	for _, want := range []string{
		`id="MathJax-script"`,
		`\( \ell^{p} \)`,
		`\( \mathbf{v} \in \mathbb{R} \)`,
		"\\begin{align*}\na &= b \\\\\nc &= d\n\\end{align*}",
		`\( G\mathbf{v} \)`,
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("output missing %q:\n%s", want, result.HTML)
		}
	}

	for _, gone := range []string{"latex-inline", "latex-eq-aligned", "latex-replaceable", "<!-- LATEX:"} {
		if strings.Contains(result.HTML, gone) {
			t.Errorf("output still contains %q", gone)
		}
	}
}

// Running the whole pipeline twice on an already-converted file must be a
// no-op: spans are gone and the script reference is never double-inserted.
func TestServiceProcessIdempotent(t *testing.T) {
	svc := New()
	ctx := context.Background()

	first, err := svc.Process(ctx, sampleDoc)
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}

	second, err := svc.Process(ctx, first.HTML)
	if err != nil {
		t.Fatalf("second Process: %v", err)
	}

	if second.Changed {
		t.Error("second run reported a change")
	}
	if second.Injected {
		t.Error("second run re-injected the script reference")
	}
	if second.Regions != 0 {
		t.Errorf("second run converted %d regions, want 0", second.Regions)
	}
	if second.HTML != first.HTML {
		t.Error("second run altered the document")
	}
	if n := strings.Count(second.HTML, scriptID); n != 1 {
		t.Errorf("script reference appears %d times, want 1", n)
	}
}

func TestServiceProcessNoRegions(t *testing.T) {
	svc := New(WithoutScript())
	doc := "<html><head></head><body>No math here.</body></html>"

	result, err := svc.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Changed {
		t.Error("expected unchanged document")
	}
	if result.HTML != doc {
		t.Errorf("HTML = %q, want input unchanged", result.HTML)
	}
}

func TestServiceProcessEmptyDocument(t *testing.T) {
	svc := New()
	result, err := svc.Process(context.Background(), "")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Changed || result.HTML != "" {
		t.Errorf("empty document should pass through unchanged, got %q", result.HTML)
	}
}

func TestServiceOptions(t *testing.T) {
	t.Run("WithScriptURL", func(t *testing.T) {
		url := "https://example.com/tex-chtml.js"
		svc := New(WithScriptURL(url))

		result, err := svc.Process(context.Background(), "<html><head></head></html>")
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if !strings.Contains(result.HTML, url) {
			t.Errorf("output missing custom URL: %q", result.HTML)
		}
	})

	t.Run("WithoutScript", func(t *testing.T) {
		svc := New(WithoutScript())

		result, err := svc.Process(context.Background(), "<html><head></head></html>")
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if result.Injected || strings.Contains(result.HTML, scriptID) {
			t.Errorf("script was injected despite WithoutScript: %q", result.HTML)
		}
	})
}

func TestServiceProcessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	if _, err := svc.Process(ctx, sampleDoc); err == nil {
		t.Error("expected error from cancelled context")
	}
}
