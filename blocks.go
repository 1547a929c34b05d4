package doctex

import (
	"regexp"
	"strings"
)

// Region delimiter patterns. All are case-sensitive and match across
// newlines; spans are consumed leftmost-first and never overlap.
var (
	inlinePattern      = regexp.MustCompile(`(?s)<span class="latex-inline">(.*?)</span>`)
	displayPattern     = regexp.MustCompile(`(?s)<span class="latex-display">(.*?)</span>`)
	eqAlignedPattern   = regexp.MustCompile(`(?s)<span class="latex-eq-aligned">(.*?)</span>`)
	implAlignedPattern = regexp.MustCompile(`(?s)<span class="latex-impl-aligned">(.*?)</span>`)

	// A replaceable span and its trailing directive comment, matched
	// separately: the comment must sit immediately after the span's
	// closing tag (whitespace only between them), so a commentless span
	// is never paired with a later span's comment.
	replaceableSpanPattern = regexp.MustCompile(`(?s)<span class="latex-replaceable">.*?</span>`)
	literalCommentPattern  = regexp.MustCompile(`(?s)^\s*<!--\s*LATEX:\s*(.*?)\s*-->`)

	// Optional {@literal ...} wrapper around a directive payload.
	literalWrapperPattern = regexp.MustCompile(`(?s)^\{@literal\s+(.*)\}$`)

	// Block-level wrapper tags stripped from math span content. Generated
	// docs wrap multi-line math in <pre> or <blockquote>.
	blockWrapperPattern = regexp.MustCompile(`</?(?:blockquote|pre)>`)
)

// replaceRegions rewrites every match of pattern in doc using convert on
// the first capture group. Returns the new document and the match count.
func replaceRegions(doc string, pattern *regexp.Regexp, convert func(inner string) string) (string, int) {
	count := 0
	out := pattern.ReplaceAllStringFunc(doc, func(match string) string {
		inner := pattern.FindStringSubmatch(match)[1]
		count++
		return convert(inner)
	})
	return out, count
}

// stripWrappers removes <pre>/<blockquote> wrapper tags and trims the
// surrounding whitespace from a math span's content.
func stripWrappers(inner string) string {
	return strings.TrimSpace(blockWrapperPattern.ReplaceAllString(inner, ""))
}

// convertInline rewrites inline math spans into \( ... \) regions.
func convertInline(doc string) (string, int) {
	return replaceRegions(doc, inlinePattern, func(inner string) string {
		return `\( ` + ConvertFragment(stripWrappers(inner)) + ` \)`
	})
}

// convertDisplay rewrites display math spans into \[ ... \] regions.
func convertDisplay(doc string) (string, int) {
	return replaceRegions(doc, displayPattern, func(inner string) string {
		return `\[ ` + ConvertFragment(stripWrappers(inner)) + ` \]`
	})
}

// convertEqAligned rewrites equals-aligned spans into align* environments:
// every = becomes an alignment-marked &=, and each line break becomes an
// alignment row break.
func convertEqAligned(doc string) (string, int) {
	return replaceRegions(doc, eqAlignedPattern, func(inner string) string {
		body := blockWrapperPattern.ReplaceAllString(inner, "")
		body = strings.ReplaceAll(body, "=", "&=")
		body = strings.TrimSpace(body)
		body = strings.ReplaceAll(body, "\n", " \\\\\n")
		return `\begin{align*}` + "\n" + ConvertFragment(body) + "\n" + `\end{align*}`
	})
}

// convertImplAligned rewrites implies-aligned spans into align*
// environments, aligning on the implication arrow instead of =.
func convertImplAligned(doc string) (string, int) {
	return replaceRegions(doc, implAlignedPattern, func(inner string) string {
		body := blockWrapperPattern.ReplaceAllString(inner, "")
		body = strings.ReplaceAll(body, "&Implies;", `&\implies`)
		body = strings.TrimSpace(body)
		body = strings.ReplaceAll(body, "\n", " \\\\\n")
		return `\begin{align*}` + "\n" + ConvertFragment(body) + "\n" + `\end{align*}`
	})
}

// convertLiteral replaces each replaceable span and its directive comment
// with the comment's payload, verbatim. The payload bypasses the symbol
// table entirely; an {@literal ...} wrapper, if present, is stripped. A
// span with no adjacent comment is not a literal region and passes
// through untouched, as does anything between regions.
func convertLiteral(doc string) (string, int) {
	count := 0
	var out strings.Builder
	last := 0
	for _, loc := range replaceableSpanPattern.FindAllStringIndex(doc, -1) {
		if loc[0] < last {
			continue
		}
		m := literalCommentPattern.FindStringSubmatch(doc[loc[1]:])
		if m == nil {
			continue
		}
		payload := m[1]
		if w := literalWrapperPattern.FindStringSubmatch(payload); w != nil {
			payload = strings.TrimSpace(w[1])
		}
		out.WriteString(doc[last:loc[0]])
		out.WriteString(payload)
		last = loc[1] + len(m[0])
		count++
	}
	if count == 0 {
		return doc, 0
	}
	out.WriteString(doc[last:])
	return out.String(), count
}
