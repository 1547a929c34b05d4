package doctex

import (
	"strings"
	"testing"
)

func TestInjectScript(t *testing.T) {
	scriptLine := "\n<script defer id=\"MathJax-script\" src=\"" + DefaultScriptURL + "\"></script>"

	tests := []struct {
		name         string
		html         string
		expected     string
		wantInjected bool
	}{
		{
			name:         "inserts after head opening tag",
			html:         "<html><head><title>Docs</title></head><body></body></html>",
			expected:     "<html><head>" + scriptLine + "<title>Docs</title></head><body></body></html>",
			wantInjected: true,
		},
		{
			name:         "uppercase HEAD matches",
			html:         "<html><HEAD></HEAD><body></body></html>",
			expected:     "<html><HEAD>" + scriptLine + "</HEAD><body></body></html>",
			wantInjected: true,
		},
		{
			name:         "head with attributes",
			html:         `<html><head lang="en"></head></html>`,
			expected:     `<html><head lang="en">` + scriptLine + "</head></html>",
			wantInjected: true,
		},
		{
			name:         "no head element is a no-op",
			html:         "<html><body>content</body></html>",
			expected:     "<html><body>content</body></html>",
			wantInjected: false,
		},
		{
			name:         "header element is not a head",
			html:         "<html><body><header>nav</header></body></html>",
			expected:     "<html><body><header>nav</header></body></html>",
			wantInjected: false,
		},
		{
			name:         "header before head does not shadow it",
			html:         "<html><header></header><head></head></html>",
			expected:     "<html><header></header><head>" + scriptLine + "</head></html>",
			wantInjected: true,
		},
		{
			name:         "existing reference is not duplicated",
			html:         "<html><head>" + scriptLine + "</head></html>",
			expected:     "<html><head>" + scriptLine + "</head></html>",
			wantInjected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, injected := injectScript(tt.html, DefaultScriptURL)
			if got != tt.expected {
				t.Errorf("injectScript(%q) = %q, want %q", tt.html, got, tt.expected)
			}
			if injected != tt.wantInjected {
				t.Errorf("injected = %t, want %t", injected, tt.wantInjected)
			}
		})
	}
}

func TestInjectScriptIdempotent(t *testing.T) {
	html := "<html><head></head><body></body></html>"

	once, injected := injectScript(html, DefaultScriptURL)
	if !injected {
		t.Fatal("expected first injection to happen")
	}

	twice, injected := injectScript(once, DefaultScriptURL)
	if injected {
		t.Error("expected second injection to be skipped")
	}
	if twice != once {
		t.Errorf("second injection changed document: %q", twice)
	}
	if n := strings.Count(twice, scriptID); n != 1 {
		t.Errorf("script reference appears %d times, want 1", n)
	}
}

func TestInjectScriptCustomURL(t *testing.T) {
	html := "<html><head></head></html>"
	url := "https://example.com/mathjax/tex-chtml.js"

	got, injected := injectScript(html, url)
	if !injected {
		t.Fatal("expected injection")
	}
	if !strings.Contains(got, `src="`+url+`"`) {
		t.Errorf("output missing custom URL: %q", got)
	}
}
