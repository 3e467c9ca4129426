package md2html

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var _ pipeline.MarkdownPreprocessor = (*pipeline.FrontMatterPreprocessor)(nil)

// Converter runs the compiler with the stages around it: preprocessing,
// language checks, path rewriting and standalone wrapping.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
}

// NewConverter creates a Converter with default configuration.
// Returns error if the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		preprocessor: &pipeline.FrontMatterPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline and returns the HTML with the decoded front
// matter and any warnings. The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	doc, err := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("preprocessing markdown: %w", err)
	}

	root, htmlContent, err := c.compile(ctx, doc.Body)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if unknown := pipeline.UnknownLanguages(root); len(unknown) > 0 {
		if c.cfg.strictLanguages {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, strings.Join(unknown, ", "))
		}
		for _, lang := range unknown {
			warnings = append(warnings, fmt.Sprintf("unknown code language %q", lang))
		}
	}

	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	if input.Standalone {
		cssContent := c.cfg.resolvedStyle
		if input.CSS != "" {
			cssContent += "\n" + input.CSS
		}
		htmlContent = pipeline.WrapDocument(htmlContent, pipeline.DocumentOptions{
			Title: resolveTitle(input.Title, doc.Meta, root),
			Lang:  input.Lang,
			CSS:   cssContent,
			Date:  resolveDate(input.Date, doc.Meta),
		})
	}

	return &ConvertResult{
		HTML:     []byte(htmlContent),
		Meta:     doc.Meta,
		Warnings: warnings,
	}, nil
}

// compile runs the compiler and returns both the tree and the fragment.
// Supports context cancellation via goroutine + select pattern since
// the compiler itself is synchronous.
func (c *Converter) compile(ctx context.Context, body string) (*pipeline.Root, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	type result struct {
		root *pipeline.Root
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("internal error: %v", r)}
			}
		}()

		root, err := pipeline.Build(body)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		html, err := pipeline.Render(root)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		done <- result{root: root, html: html}
	}()

	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	case r := <-done:
		return r.root, r.html, r.err
	}
}

// resolveTitle picks the standalone title.
// Priority: explicit title > front matter "title" > first header > default.
func resolveTitle(title string, meta map[string]any, root *pipeline.Root) string {
	if title != "" {
		return title
	}
	if s, ok := meta["title"].(string); ok && s != "" {
		return s
	}
	if h := pipeline.FirstHeading(root); h != "" {
		return h
	}
	return pipeline.DefaultTitle
}

// resolveDate picks the standalone date: explicit value, then front matter.
func resolveDate(date string, meta map[string]any) string {
	if date != "" {
		return date
	}
	switch v := meta["date"].(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	}
	return ""
}

// resolveStyle resolves the style input (built-in name, path or CSS content)
// to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) && !fileutil.IsCSS(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %v", ErrInvalidStyle, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	content, err := assets.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q is neither a style name, file path nor CSS content: %w", ErrInvalidStyle, input, err)
	}
	c.cfg.resolvedStyle = content
	return nil
}
