package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doctex [flags] [docs-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite generated API-documentation HTML in place, converting encoded")
	fmt.Fprintln(w, "math markup to LaTeX and injecting a MathJax script reference.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  docs-dir    Directory scanned recursively for .html files, or a single")
	fmt.Fprintln(w, "              .html file (default: \"docs\" or config input.docsDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path (YAML)")
	fmt.Fprintln(w, "      --script-url <url>    MathJax script URL to inject")
	fmt.Fprintln(w, "      --dry-run             Process without writing files back")
	fmt.Fprintln(w, "      --write-unchanged     Rewrite files even when content is unchanged")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file detail")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
