package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the inputs into markdown files and their outputs.
// Directories are walked recursively; their tree is mirrored under outputDir.
func discoverFiles(inputs []string, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert

	for _, inputPath := range inputs {
		info, err := os.Stat(inputPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !fileutil.IsMarkdownPath(inputPath) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
			}
			outPath := resolveOutputPath(inputPath, outputDir, "", len(inputs) == 1)
			files = append(files, FileToConvert{InputPath: inputPath, OutputPath: outPath})
			continue
		}

		err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsMarkdownPath(path) {
				return nil
			}
			outPath := resolveOutputPath(path, outputDir, inputPath, false)
			files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, strings.Join(inputs, ", "))
	}
	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
// An outputDir ending in ".html" names the output file itself, which is only
// honored for a single file input.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, single bool) string {
	base := filepath.Base(fileutil.HTMLPathFor(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, ".html") {
		if single {
			return outputDir
		}
		outputDir = filepath.Dir(outputDir)
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2html.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2html.MaxWorkers)
	}
	return nil
}
