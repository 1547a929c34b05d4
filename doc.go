// Package doctex rewrites generated API-documentation HTML in place,
// replacing HTML-encoded pseudo-math markup with LaTeX source and
// injecting a MathJax script reference into each file's header.
//
// # Quick Start
//
// Create a service and process a document:
//
//	svc := doctex.New()
//	result, err := svc.Process(ctx, htmlContent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.HTML), 0644)
//
// The result reports whether the document changed, how many math regions
// were converted, and whether the script reference was injected.
//
// # Processing Pipeline
//
// Each document goes through a fixed sequence of passes:
//
//  1. MathJax script injection after the <head> opening tag
//  2. Inline math regions (<span class="latex-inline">)
//  3. Display math regions (<span class="latex-display">)
//  4. Equals-aligned regions (<span class="latex-eq-aligned">)
//  5. Implies-aligned regions (<span class="latex-impl-aligned">)
//  6. Literal regions (<span class="latex-replaceable"> + LATEX comment)
//
// The first four region kinds run their inner content through an ordered
// symbol table converting entities, sub/superscript tags, and operator
// idioms to LaTeX. Literal regions are replaced verbatim by the payload of
// their trailing <!-- LATEX: ... --> directive comment.
//
// Pass order is significant: each pass rescans the output of the previous
// one. Unrecognized markup is never an error; it passes through unchanged.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := doctex.New(
//	    doctex.WithScriptURL("https://example.com/mathjax/tex-chtml.js"),
//	)
//
// Processing is idempotent: running a converted document through the
// pipeline again changes nothing, and the script reference is never
// inserted twice.
package doctex
