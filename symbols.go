package doctex

import "regexp"

// rewriteRule pairs a matching pattern with its replacement template.
// Templates reference capture groups positionally ($1, $2).
type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// greekLetters lists the Greek alphabet in order. Each name yields two
// entity rules: &name; -> \name and &Name; -> \Name.
var greekLetters = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

// symbolRules is the ordered substitution table converting encoded math
// markup to LaTeX. Order matters: each rule is applied globally before the
// next fires, so later rules see text already rewritten by earlier ones.
// Braces are escaped before any bracket handling, the division idiom is
// recognized before generic paren conversion consumes its parentheses, and
// sub/superscript tags are tokenized before boldface scanning.
var symbolRules = buildSymbolRules()

func buildSymbolRules() []rewriteRule {
	rules := []rewriteRule{
		// Literal braces
		{regexp.MustCompile(`\{`), `\left\{`},
		{regexp.MustCompile(`\}`), `\right\}`},

		// Simple division (A)/(B): only when neither operand contains
		// nested parens, brackets, or angle brackets. More complex
		// expressions stay as literal slash text.
		{regexp.MustCompile(`\(([^()\[\]<>]*)\)/\(([^()\[\]<>]*)\)`), `\frac{$1}{$2}`},

		// Remaining parens and brackets become sized delimiter pairs
		{regexp.MustCompile(`\(`), `\left(`},
		{regexp.MustCompile(`\)`), `\right)`},
		{regexp.MustCompile(`\[`), `\left[`},
		{regexp.MustCompile(`\]`), `\right]`},

		// Summation and product with bounds
		{regexp.MustCompile(`&sum;<sub>(.*?)</sub><sup>(.*?)</sup>`), `\sum_{$1}^{$2}`},
		{regexp.MustCompile(`&prod;<sub>(.*?)</sub><sup>(.*?)</sup>`), `\prod_{$1}^{$2}`},
	}

	for _, name := range greekLetters {
		upper := string(name[0]-'a'+'A') + name[1:]
		rules = append(rules,
			rewriteRule{regexp.MustCompile(`&` + name + `;`), `\` + name},
			rewriteRule{regexp.MustCompile(`&` + upper + `;`), `\` + upper},
		)
	}

	rules = append(rules, []rewriteRule{
		// Sub/superscript tags become group tokens. These are context-free
		// substitutions, not matched pairs: mismatched nesting in the
		// input propagates unchanged into the output.
		{regexp.MustCompile(`<sub>`), `_{`},
		{regexp.MustCompile(`</sub>`), `}`},
		{regexp.MustCompile(`<sup>`), `^{`},
		{regexp.MustCompile(`</sup>`), `}`},

		// Boldface, both tag spellings
		{regexp.MustCompile(`<b>(.*?)</b>`), `\mathbf{$1}`},
		{regexp.MustCompile(`<strong>(.*?)</strong>`), `\mathbf{$1}`},

		// Blackboard-bold set symbols
		{regexp.MustCompile(`ℝ`), `\mathbb{R}`},
		{regexp.MustCompile(`ℚ`), `\mathbb{Q}`},
		{regexp.MustCompile(`ℂ`), `\mathbb{C}`},
		{regexp.MustCompile(`ℤ`), `\mathbb{Z}`},
		{regexp.MustCompile(`ℕ`), `\mathbb{N}`},

		// Relational and operator entities
		{regexp.MustCompile(`&lt;`), `\lt`},
		{regexp.MustCompile(`&gt;`), `\gt`},
		{regexp.MustCompile(`&le;`), `\le`},
		{regexp.MustCompile(`&ge;`), `\ge`},
		{regexp.MustCompile(`&ne;`), `\ne`},
		{regexp.MustCompile(`&plusmn;`), `\pm`},
		{regexp.MustCompile(`&isin;`), `\in`},
		{regexp.MustCompile(`&notin;`), `\notin`},
		// The radicand parens were already converted to sized delimiters
		// above, so the pattern matches the converted spelling. Like the
		// division rule, only nesting-free radicands are recognized;
		// anything deeper stays as-is rather than being split mid-group.
		{regexp.MustCompile(`&radic;\\left\(([^()]*)\\right\)`), `\sqrt{$1}`},
		{regexp.MustCompile(`&asymp;`), `\approx`},
		{regexp.MustCompile(`&oplus;`), `\oplus`},
		{regexp.MustCompile(`&Implies;`), `\implies`},
		{regexp.MustCompile(`&times;`), `\times`},
		{regexp.MustCompile(`&middot;`), `\cdot`},

		// Misc symbols
		{regexp.MustCompile(`&infin;`), `\infty`},
		{regexp.MustCompile(`\.\.\.`), `\cdots`},
		{regexp.MustCompile(`&ell;`), `\ell`},
	}...)

	return rules
}

// ConvertFragment rewrites a fragment of encoded math markup into LaTeX
// source by applying the symbol table in declaration order. Unrecognized
// or malformed constructs pass through unchanged; there are no errors.
func ConvertFragment(text string) string {
	for _, rule := range symbolRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
