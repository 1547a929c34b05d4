package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// rootFlags holds all flags for the doctex command.
type rootFlags struct {
	config         string
	quiet          bool
	verbose        bool
	scriptURL      string
	dryRun         bool
	writeUnchanged bool
	version        bool
}

// parseFlags parses the command line and returns positional args.
func parseFlags(args []string) (*rootFlags, []string, error) {
	fs := flag.NewFlagSet("doctex", flag.ContinueOnError)
	f := &rootFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")
	fs.StringVar(&f.scriptURL, "script-url", "", "MathJax script URL to inject")
	fs.BoolVar(&f.dryRun, "dry-run", false, "process without writing files back")
	fs.BoolVar(&f.writeUnchanged, "write-unchanged", false, "rewrite files even when content is unchanged")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
