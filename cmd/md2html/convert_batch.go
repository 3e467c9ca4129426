package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-md2html"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// conversionParams holds the per-run settings applied to every file.
type conversionParams struct {
	css        string
	standalone bool
	title      string
	lang       string
	date       string
}

// input builds the converter input for one document.
func (p *conversionParams) input(markdown, sourceDir string) md2html.Input {
	return md2html.Input{
		Markdown:   markdown,
		SourceDir:  sourceDir,
		Standalone: p.standalone,
		Title:      p.title,
		Lang:       p.lang,
		CSS:        p.css,
		Date:       p.date,
	}
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Warnings   []string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently on a bounded set of workers.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *conversionParams, workers int, now func() time.Time) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))
	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params, now)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams, now func() time.Time) ConversionResult {
	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return finish(fmt.Errorf("creating output directory: %w", err))
	}

	convResult, err := conv.Convert(ctx, params.input(string(content), sourceDirFor(f)))
	if err != nil {
		return finish(err)
	}
	result.Warnings = convResult.Warnings

	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	return finish(nil)
}

// sourceDirFor returns the directory relative paths must be resolved against
// when the output lands somewhere else than its source, or "" when relative
// paths stay valid as written.
func sourceDirFor(f FileToConvert) string {
	srcDir, err := filepath.Abs(filepath.Dir(f.InputPath))
	if err != nil {
		return ""
	}
	outDir, err := filepath.Abs(filepath.Dir(f.OutputPath))
	if err != nil || outDir == srcDir {
		return ""
	}
	return srcDir
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// batchError reports failed conversions. It unwraps to the first failure so
// the exit code reflects its class.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error { return e.first }

// batchErr returns a *batchError for results with failures, or nil.
func batchErr(results []ConversionResult) error {
	summary := countResults(results)
	if summary.Failed == 0 {
		return nil
	}
	var first error
	for _, r := range results {
		if r.Err != nil {
			first = r.Err
			break
		}
	}
	return &batchError{failed: summary.Failed, total: len(results), first: first}
}

// printResults outputs conversion results using the environment writers.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "WARNING %s: %s\n", r.InputPath, w)
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
}
