package main

import (
	"context"
	"errors"
	"fmt"

	doctex "github.com/alnah/go-doctex"
	"github.com/alnah/go-doctex/internal/config"
	"github.com/alnah/go-doctex/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadHTML    = errors.New("failed to read HTML file")
	ErrWriteHTML   = errors.New("failed to write HTML file")
	ErrTooManyArgs = errors.New("too many arguments")
)

// run orchestrates the whole batch: resolve configuration, discover files,
// process them strictly one at a time. A failure on any file aborts the
// remaining batch.
func run(flags *rootFlags, args []string, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one docs directory, got %d", ErrTooManyArgs, len(args))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	root := cfg.Input.DocsDir
	if len(args) == 1 {
		root = args[0]
	}

	svc := doctex.New(serviceOptions(flags, cfg)...)
	writeUnchanged := flags.writeUnchanged || cfg.Output.WriteUnchanged

	files, err := discoverFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "No HTML files found in %s\n", root)
		}
		return nil
	}

	ctx := context.Background()
	updated := 0
	for _, path := range files {
		content, err := fileutil.ReadTextFile(path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadHTML, err)
		}

		result, err := svc.Process(ctx, content)
		if err != nil {
			return fmt.Errorf("processing %s: %w", path, err)
		}

		if result.Changed || writeUnchanged {
			if !flags.dryRun {
				if err := fileutil.WriteTextFile(path, result.HTML); err != nil {
					return fmt.Errorf("%w: %v", ErrWriteHTML, err)
				}
			}
			updated++
		}

		logFile(env, flags, path, result)
	}

	if !flags.quiet {
		label := "updated"
		if flags.dryRun {
			label = "would update"
		}
		fmt.Fprintf(env.Stdout, "Processed %d files (%d %s)\n", len(files), updated, label)
	}
	return nil
}

// serviceOptions resolves service options from flags and config; the flag
// wins over the config file, which wins over the built-in default.
func serviceOptions(flags *rootFlags, cfg *config.Config) []doctex.Option {
	var opts []doctex.Option
	switch {
	case flags.scriptURL != "":
		opts = append(opts, doctex.WithScriptURL(flags.scriptURL))
	case cfg.Script.URL != "":
		opts = append(opts, doctex.WithScriptURL(cfg.Script.URL))
	}
	return opts
}

// logFile writes the per-file progress line. Progress output is purely
// informational.
func logFile(env *Environment, flags *rootFlags, path string, result doctex.Result) {
	if flags.quiet {
		return
	}
	if flags.verbose {
		fmt.Fprintf(env.Stdout, "%s: %d regions, injected=%t, changed=%t\n",
			path, result.Regions, result.Injected, result.Changed)
		return
	}
	if result.Changed {
		fmt.Fprintf(env.Stdout, "Converted %s (%d regions)\n", path, result.Regions)
	}
}
