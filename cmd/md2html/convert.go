package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// runConvert converts the positional inputs, or stdin when there are none.
func runConvert(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over config.
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	css, err := readCSS(cfg.CSS.File)
	if err != nil {
		return err
	}

	// Resolve "auto" once so every file of the batch shares the date.
	date, err := dateutil.Resolve(cfg.Document.Date, env.Now())
	if err != nil {
		return err
	}

	conv, err := md2html.NewConverter(
		md2html.WithTimeout(flags.timeout),
		md2html.WithStyle(cfg.CSS.Style),
		md2html.WithStrictLanguages(cfg.Languages.Strict),
	)
	if err != nil {
		return err
	}

	params := &conversionParams{
		css:        css,
		standalone: cfg.Document.Standalone,
		title:      cfg.Document.Title,
		lang:       cfg.Document.Lang,
		date:       date,
	}

	inputs := resolveInputs(positionalArgs, cfg)
	if len(inputs) == 0 {
		return convertStdin(ctx, conv, params, resolveOutputDir(flags.output, cfg), flags.common.quiet, env)
	}

	files, err := discoverFiles(inputs, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	workers := md2html.ResolveWorkers(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, conv, files, params, workers, env.Now)
	printResults(results, flags.common.quiet, flags.common.verbose, env)

	return batchErr(results)
}

// mergeFlags applies explicitly set CLI flags over the config.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.document.standaloneSet {
		cfg.Document.Standalone = flags.document.standalone
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.lang != "" {
		cfg.Document.Lang = flags.document.lang
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.css != "" {
		cfg.CSS.File = flags.css
	}
	if flags.style != "" {
		cfg.CSS.Style = flags.style
	}
	if flags.strictSet {
		cfg.Languages.Strict = flags.strictLang
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// resolveInputs returns the positional inputs, falling back to the config's
// default input directory. Nil means stdin.
func resolveInputs(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}
	}
	return nil
}

// resolveOutputDir returns the output path: flag > config > "" (next to source).
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// readCSS loads the stylesheet file, or returns "" when none is configured.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(content), nil
}

// convertStdin converts stdin and writes to stdout, or to output when it
// names an .html file.
func convertStdin(ctx context.Context, conv CLIConverter, params *conversionParams, output string, quiet bool, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrReadMarkdown, err)
	}

	result, err := conv.Convert(ctx, params.input(string(content), ""))
	if err != nil {
		return err
	}

	if !quiet {
		for _, w := range result.Warnings {
			fmt.Fprintf(env.Stderr, "WARNING stdin: %s\n", w)
		}
	}

	if output == "" {
		_, err = env.Stdout.Write(result.HTML)
		return err
	}

	if !strings.HasSuffix(output, ".html") {
		output = filepath.Join(output, fileutil.HTMLPathFor("stdin.md"))
	}
	if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(output, result.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return nil
}
