package pipeline

import (
	"context"
	"regexp"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessed is a document ready for compilation.
type Preprocessed struct {
	Body string
	Meta map[string]any // YAML front matter; nil when absent
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) (*Preprocessed, error)
}

// FrontMatterPreprocessor normalizes line endings and lifts YAML front matter
// out of the document body.
type FrontMatterPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for compilation.
//
// A leading "---" block is treated as front matter only when it decodes to a
// YAML mapping. Anything else stays in the body, where "---" is a horizontal rule.
func (p *FrontMatterPreprocessor) PreprocessMarkdown(ctx context.Context, content string) (*Preprocessed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content = normalizeLineEndings(content)

	front, body, ok := yamlutil.SplitFrontMatter(content)
	if !ok {
		return &Preprocessed{Body: content}, nil
	}

	meta := make(map[string]any)
	if front != "" {
		if err := yamlutil.Unmarshal([]byte(front), &meta); err != nil {
			return &Preprocessed{Body: content}, nil
		}
	}

	return &Preprocessed{Body: body, Meta: meta}, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
