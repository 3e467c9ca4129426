package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the --config value, used to suggest where to create it.
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var dir string
		if userDir, dirErr := os.UserConfigDir(); dirErr == nil {
			dir = filepath.Join(userDir, "go-md2html")
		}
		return hints.ForConfigNotFound(dir, configName)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2html.ErrUnknownLanguage):
		return hints.ForUnknownLanguage()
	case errors.Is(err, md2html.ErrTokenize):
		return hints.ForTokenize()
	case errors.Is(err, md2html.ErrUnexpectedToken):
		return hints.ForSyntax()
	}
	return ""
}
