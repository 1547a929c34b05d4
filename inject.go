package doctex

import "strings"

// DefaultScriptURL is the MathJax bundle referenced from processed files.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"

// scriptID marks an already-injected script reference. Injection checks
// for it so reprocessing a converted file never inserts a second tag.
const scriptID = "MathJax-script"

// injectScript inserts a single script-reference line immediately after
// the opening <head> tag. Matching is case-insensitive and tolerates
// attributes on the tag. Returns the (possibly unchanged) document and
// whether an insertion happened: no head element, or a reference already
// present, is a silent no-op.
func injectScript(htmlContent, url string) (string, bool) {
	if strings.Contains(htmlContent, scriptID) {
		return htmlContent, false
	}

	idx := findHeadOpen(htmlContent)
	if idx == -1 {
		return htmlContent, false
	}

	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return htmlContent, false
	}

	insertPos := idx + closeIdx + 1
	tag := "\n" + `<script defer id="` + scriptID + `" src="` + url + `"></script>`
	return htmlContent[:insertPos] + tag + htmlContent[insertPos:], true
}

// findHeadOpen returns the index of the first <head> opening tag, or -1.
// The tag name must be followed by > or whitespace so <header> elements
// are not mistaken for the document head.
func findHeadOpen(htmlContent string) int {
	lower := strings.ToLower(htmlContent)
	from := 0
	for {
		rel := strings.Index(lower[from:], "<head")
		if rel == -1 {
			return -1
		}
		idx := from + rel
		after := idx + len("<head")
		if after >= len(lower) {
			return -1
		}
		switch lower[after] {
		case '>', ' ', '\t', '\n', '\r':
			return idx
		}
		from = after
	}
}
